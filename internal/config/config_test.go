package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Notation != "superscript" {
		t.Errorf("expected notation superscript, got %s", cfg.Notation)
	}
	if cfg.DegreeCeiling != 6 {
		t.Errorf("expected ceiling 6, got %d", cfg.DegreeCeiling)
	}
	if cfg.MaxDegree != 12 {
		t.Errorf("expected max degree 12, got %d", cfg.MaxDegree)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("expected loopback address, got %s", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polybox.yaml")
	data := []byte("notation: caret\nserver:\n  addr: \":9090\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Notation != "caret" {
		t.Errorf("expected caret, got %s", cfg.Notation)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Server.Burst != DefaultBurst {
		t.Errorf("expected default burst %d, got %d", DefaultBurst, cfg.Server.Burst)
	}
	if cfg.DegreeCeiling != DefaultDegreeCeiling {
		t.Errorf("expected default ceiling, got %d", cfg.DegreeCeiling)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polybox.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	cfg.DegreeCeiling = 4

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want error
	}{
		{"notation", "notation: roman\n", ErrInvalidNotation},
		{"ceiling", "degree_ceiling: 0\n", ErrInvalidCeiling},
		{"log level", "log_level: loud\n", ErrInvalidLogLevel},
		{"burst", "server:\n  burst: -1\n", ErrInvalidServer},
		{"max degree zero", "max_degree: 0\n", ErrInvalidDegree},
		{"max degree huge", "max_degree: 2000000000\n", ErrInvalidDegree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("division", "exact")
	if !ok {
		t.Fatal("expected preset")
	}
	if p.A != "x^2-1" || p.B != "x-1" {
		t.Errorf("unexpected pair %+v", p)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("addition", "nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
	if _, ok := GetPreset("nonexistent", "squares"); ok {
		t.Error("expected miss for nonexistent operation")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("multiplication")
	want := []string{"conjugates", "scale", "square", "trinomial"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent operation")
	}
}
