package ops

import (
	"fmt"
)

// Outcome is the uniform result of Run. Exactly one of Result and Division
// is set.
type Outcome struct {
	Kind     Kind            `json:"kind"`
	Result   *Result         `json:"result,omitempty"`
	Division *DivisionResult `json:"division,omitempty"`
}

// Steps returns the narrative of whichever result is set.
func (o Outcome) Steps() []Step {
	if o.Division != nil {
		return o.Division.Steps
	}
	if o.Result != nil {
		return o.Result.Steps
	}
	return nil
}

// Summary renders a one-line answer, e.g. "x^2 - 1" or "q = x + 1, r = 0".
func (o Outcome) Summary() string {
	if o.Division != nil {
		return fmt.Sprintf("q = %s, r = %s", o.Division.QuotientText, o.Division.RemainderText)
	}
	if o.Result != nil {
		return o.Result.Text
	}
	return ""
}

type runner func(a, b string) (Outcome, error)

var runners = map[Kind]runner{
	Addition:       wrap(Addition, Add),
	Subtraction:    wrap(Subtraction, Subtract),
	Multiplication: wrap(Multiplication, Multiply),
	Division: func(a, b string) (Outcome, error) {
		res, err := Divide(a, b)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Division, Division: res}, nil
	},
}

func wrap(kind Kind, fn func(a, b string) (*Result, error)) runner {
	return func(a, b string) (Outcome, error) {
		res, err := fn(a, b)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: kind, Result: res}, nil
	}
}

// Run dispatches to the operation named by kind.
func Run(kind Kind, a, b string) (Outcome, error) {
	fn, ok := runners[kind]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownOperation, kind)
	}
	return fn(a, b)
}
