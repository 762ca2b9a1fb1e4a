package config

import "sort"

// Pair is a ready-made pair of operands for one operation.
type Pair struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

// Presets maps an operation name to named operand pairs.
var Presets = map[string]map[string]Pair{
	"addition": {
		"squares":   {A: "x^2+2x+1", B: "x^2-1"},
		"cancel":    {A: "3x-2", B: "-3x+2"},
		"mixed":     {A: "2x^2-x+4", B: "-x^2+5x-6"},
		"constants": {A: "7", B: "-3"},
	},
	"subtraction": {
		"squares": {A: "x^2+2x+1", B: "x^2-1"},
		"self":    {A: "x^2-4", B: "x^2-4"},
		"flip":    {A: "3x+5", B: "-2x+1"},
	},
	"multiplication": {
		"conjugates": {A: "x+1", B: "x-1"},
		"square":     {A: "x+2", B: "x+2"},
		"trinomial":  {A: "2x^2-3", B: "x+4"},
		"scale":      {A: "3", B: "x^2-x+1"},
	},
	"division": {
		"exact":     {A: "x^2-1", B: "x-1"},
		"remainder": {A: "x^2+3x+5", B: "x+1"},
		"cubic":     {A: "x^3-2x^2+4", B: "x-3"},
		"too_small": {A: "x+1", B: "x^2"},
	},
}

// GetPreset returns the named pair for op; ok is false when either name is
// unknown.
func GetPreset(op, preset string) (Pair, bool) {
	opPresets, ok := Presets[op]
	if !ok {
		return Pair{}, false
	}
	p, ok := opPresets[preset]
	return p, ok
}

// ListPresets returns the preset names for op in sorted order, or nil when
// op has none.
func ListPresets(op string) []string {
	opPresets, ok := Presets[op]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(opPresets))
	for name := range opPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
