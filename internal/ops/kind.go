package ops

import (
	"fmt"
	"strings"
)

// Kind names one of the four operations.
type Kind string

const (
	Addition       Kind = "addition"
	Subtraction    Kind = "subtraction"
	Multiplication Kind = "multiplication"
	Division       Kind = "division"
)

var kindAliases = map[string]Kind{
	"addition": Addition, "add": Addition, "sum": Addition, "+": Addition,
	"subtraction": Subtraction, "subtract": Subtraction, "sub": Subtraction, "-": Subtraction,
	"multiplication": Multiplication, "multiply": Multiplication, "mul": Multiplication, "*": Multiplication, "x": Multiplication,
	"division": Division, "divide": Division, "div": Division, "/": Division,
}

// Kinds lists every operation in display order.
func Kinds() []Kind {
	return []Kind{Addition, Subtraction, Multiplication, Division}
}

// ParseKind resolves a canonical name or alias.
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }

// Symbol returns the arithmetic operator for k.
func (k Kind) Symbol() string {
	switch k {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "×"
	case Division:
		return "÷"
	}
	return "?"
}

func (k Kind) valid() bool {
	switch k {
	case Addition, Subtraction, Multiplication, Division:
		return true
	}
	return false
}
