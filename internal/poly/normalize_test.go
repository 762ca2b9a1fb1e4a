package poly

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x^2 + 2x + 1 + x^2 - 1", "2x^2 + 2x"},
		{"1 + x + x^2", "x^2 + x + 1"},
		{"x - x", "0"},
		{"3 - 3 + x³", "x^3"},
		{"2x - 5x", "-3x"},
		{"5x^0 + 1", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeText(tt.input).String(); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"x^2 + 2x + 1 + x^2 - 1",
		"3x³ - x + 2x - 7 + x^3",
		"y + x + 1",
		"0",
		"",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		twice := Normalize(once)
		if !once.Equal(twice) {
			t.Errorf("normalize not idempotent for %q: %v vs %v", in, once, twice)
		}
	}
}

func TestNormalize_OrderIndependent(t *testing.T) {
	a := NewTerm(2, "x", 1)
	b := Constant(-1)
	c := NewTerm(1, "y", 1)

	ab := Normalize(New(a, b, c))
	ba := Normalize(New(c, b, a))
	if !ab.Equal(ba) {
		t.Errorf("expected equal results, got %v and %v", ab, ba)
	}
}

func TestNormalize_SumIgnoresOrder(t *testing.T) {
	orders := []string{
		"0.1x + 0.2x + 0.3x",
		"0.3x + 0.2x + 0.1x",
		"0.2x + 0.3x + 0.1x",
	}
	want := NormalizeText(orders[0]).Coefficient(1)
	for _, in := range orders[1:] {
		if got := NormalizeText(in).Coefficient(1); got != want {
			t.Errorf("%s: coefficient %v, want %v", in, got, want)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	p := New(NewTerm(1, "x", 1), NewTerm(2, "x", 1))
	_ = Normalize(p)
	if p.Term(0).Coefficient() != 1 || p.TermCount() != 2 {
		t.Error("normalize mutated its input")
	}
}

func TestNormalize_StrictlyDescending(t *testing.T) {
	p := NormalizeText("1 + x^4 - x + 3x^2 + x^4")
	for i := 1; i < p.TermCount(); i++ {
		if p.Term(i-1).Exponent() <= p.Term(i).Exponent() {
			t.Fatalf("terms not strictly descending: %v", p)
		}
	}
}
