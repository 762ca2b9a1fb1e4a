package storage

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/san-kum/polybox/internal/ops"
)

// ExportData is the self-contained JSON form of an operation, including the
// full visualization payloads that steps.csv leaves out.
type ExportData struct {
	Kind       ops.Kind   `json:"kind"`
	Operands   [2]string  `json:"operands"`
	Summary    string     `json:"summary"`
	ExportedAt time.Time  `json:"exported_at"`
	Steps      []ops.Step `json:"steps"`
}

func newExportData(out ops.Outcome) ExportData {
	return ExportData{
		Kind:       out.Kind,
		Operands:   operands(out),
		Summary:    out.Summary(),
		ExportedAt: time.Now().UTC(),
		Steps:      out.Steps(),
	}
}

func ExportJSON(path string, out ops.Outcome) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSONTo(file, out)
}

func ExportJSONTo(w io.Writer, out ops.Outcome) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(out))
}

// ExportSession rebuilds the export for a saved session by re-running its
// operation, which is deterministic.
func (s *Store) ExportSession(id string, w io.Writer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	out, err := ops.Run(meta.Kind, meta.Operands[0], meta.Operands[1])
	if err != nil {
		return err
	}
	return ExportJSONTo(w, out)
}
