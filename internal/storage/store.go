package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/polybox/internal/ops"
)

var ErrNotFound = errors.New("storage: session not found")

// Store keeps one directory per recorded operation under baseDir.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string    `json:"id"`
	Kind      ops.Kind  `json:"kind"`
	Operands  [2]string `json:"operands"`
	Summary   string    `json:"summary"`
	Steps     int       `json:"steps"`
	Timestamp time.Time `json:"timestamp"`
}

// StepRecord is one row of steps.csv.
type StepRecord struct {
	ID          int
	Title       string
	Action      string
	Visual      ops.VisualKind
	Description string
}

var stepHeader = []string{"id", "title", "action", "visual", "description"}

// Save records out under a fresh session ID and returns it.
func (s *Store) Save(out ops.Outcome) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("%s_%d", out.Kind, ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	steps := out.Steps()
	meta := SessionMetadata{
		ID:        id,
		Kind:      out.Kind,
		Operands:  operands(out),
		Summary:   out.Summary(),
		Steps:     len(steps),
		Timestamp: ts,
	}

	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", fmt.Errorf("storage: write metadata: %w", err)
	}
	if err := writeSteps(filepath.Join(dir, "steps.csv"), steps); err != nil {
		return "", fmt.Errorf("storage: write steps: %w", err)
	}
	return id, nil
}

func operands(out ops.Outcome) [2]string {
	if out.Division != nil {
		return out.Division.Operands
	}
	if out.Result != nil {
		return out.Result.Operands
	}
	return [2]string{}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSteps(path string, steps []ops.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(stepHeader); err != nil {
		return err
	}
	for _, st := range steps {
		var visual string
		if st.Visualization != nil {
			visual = string(st.Visualization.Kind())
		}
		row := []string{strconv.Itoa(st.ID), st.Title, st.Action, visual, st.Description}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable session, oldest first. Directories without a
// readable metadata.json are skipped.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		sessions = append(sessions, *meta)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) LoadSteps(id string) ([]StepRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "steps.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read steps %s: %w", id, err)
	}
	if len(records) < 2 {
		return []StepRecord{}, nil
	}

	steps := make([]StepRecord, 0, len(records)-1)
	for _, rec := range records[1:] {
		n, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		steps = append(steps, StepRecord{
			ID:          n,
			Title:       rec[1],
			Action:      rec[2],
			Visual:      ops.VisualKind(rec[3]),
			Description: rec[4],
		})
	}
	return steps, nil
}
