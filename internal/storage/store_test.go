package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/polybox/internal/ops"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	st.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return st
}

func mustRun(t *testing.T, kind ops.Kind, a, b string) ops.Outcome {
	t.Helper()
	out, err := ops.Run(kind, a, b)
	require.NoError(t, err)
	return out
}

func TestStoreSaveLoad(t *testing.T) {
	st := newTestStore(t)

	id, err := st.Save(mustRun(t, ops.Addition, "x^2+2x+1", "x^2-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, ops.Addition, meta.Kind)
	assert.Equal(t, [2]string{"x^2+2x+1", "x^2-1"}, meta.Operands)
	assert.Equal(t, "2x^2 + 2x", meta.Summary)
	assert.Equal(t, 6, meta.Steps)

	steps, err := st.LoadSteps(id)
	require.NoError(t, err)
	require.Len(t, steps, 6)
	assert.Equal(t, 1, steps[0].ID)
	assert.Equal(t, ops.VisualQuadrantSetup, steps[0].Visual)
	assert.Equal(t, ops.VisualFinalResult, steps[5].Visual)
	assert.Contains(t, steps[5].Description, "2x^2 + 2x")
}

func TestStoreSaveDivision(t *testing.T) {
	st := newTestStore(t)

	id, err := st.Save(mustRun(t, ops.Division, "x^2-1", "x-1"))
	require.NoError(t, err)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "q = x + 1, r = 0", meta.Summary)
	assert.Equal(t, [2]string{"x^2-1", "x-1"}, meta.Operands)
}

func TestStoreList(t *testing.T) {
	st := newTestStore(t)

	sessions, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	first, err := st.Save(mustRun(t, ops.Multiplication, "x+1", "x-1"))
	require.NoError(t, err)
	second, err := st.Save(mustRun(t, ops.Subtraction, "x", "1"))
	require.NoError(t, err)

	sessions, err = st.List()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first, sessions[0].ID)
	assert.Equal(t, second, sessions[1].ID)
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	sessions, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestStoreLoadNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.LoadSteps("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreFileStructure(t *testing.T) {
	st := newTestStore(t)

	id, err := st.Save(mustRun(t, ops.Addition, "x", "1"))
	require.NoError(t, err)

	for _, name := range []string{"metadata.json", "steps.csv"} {
		_, err := os.Stat(filepath.Join(st.baseDir, id, name))
		assert.NoError(t, err, name)
	}
}

func TestExportSession(t *testing.T) {
	st := newTestStore(t)

	id, err := st.Save(mustRun(t, ops.Multiplication, "x+1", "x-1"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportSession(id, &buf))

	var got struct {
		Kind    string `json:"kind"`
		Summary string `json:"summary"`
		Steps   []struct {
			Visualization struct {
				Type string `json:"type"`
			} `json:"visualization"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "multiplication", got.Kind)
	assert.Equal(t, "x^2 - 1", got.Summary)
	require.Len(t, got.Steps, 6)
	assert.Equal(t, "fill_rectangle", got.Steps[3].Visualization.Type)
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ExportJSON(path, mustRun(t, ops.Division, "x+1", "x^2")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"division_not_possible"`)
	assert.Contains(t, string(data), `"q = 0, r = x+1"`)
}
