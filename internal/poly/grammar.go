package poly

import (
	"regexp"
	"strings"
	"unicode"
)

// Building blocks of the polynomial grammar. Input is matched after all
// whitespace has been removed.
const (
	numberPattern   = `(?:\d+(?:\.\d*)?|\.\d+)`
	exponentPattern = `(?:\^\d+|[⁰¹²³⁴⁵⁶⁷⁸⁹]+)`
	atomPattern     = `(?:` + numberPattern + `?[a-zA-Z]` + exponentPattern + `?|` + numberPattern + `)`
)

// Compiled once; read-only afterwards.
var (
	polynomialRE = regexp.MustCompile(`^[+-]?` + atomPattern + `(?:[+-]` + atomPattern + `)*$`)

	quadraticRE = regexp.MustCompile(`^([+-]?` + numberPattern + `?)([a-zA-Z])(?:\^2|²)$`)
	powerRE     = regexp.MustCompile(`^([+-]?` + numberPattern + `?)([a-zA-Z])(\^\d+|[⁰¹²³⁴⁵⁶⁷⁸⁹]+)$`)
	linearRE    = regexp.MustCompile(`^([+-]?` + numberPattern + `?)([a-zA-Z])$`)
	constantRE  = regexp.MustCompile(`^([+-]?` + numberPattern + `)$`)
)

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsWellFormed reports whether text matches the polynomial grammar: an
// optional sign, then one or more atoms separated by '+' or '-'.
func IsWellFormed(text string) bool {
	cleaned := StripSpace(text)
	if cleaned == "" {
		return false
	}
	return polynomialRE.MatchString(cleaned)
}

// SplitTerms cuts text into signed term substrings. A sign at position zero
// binds to the first term; any later sign starts a new term.
func SplitTerms(text string) []string {
	cleaned := StripSpace(text)
	var (
		terms   []string
		current strings.Builder
	)
	for i, r := range cleaned {
		if (r == '+' || r == '-') && i > 0 {
			if current.Len() > 0 {
				terms = append(terms, current.String())
			}
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		terms = append(terms, current.String())
	}
	return terms
}

// ValidateTerm reports whether a single term substring matches one of the
// recognized term shapes.
func ValidateTerm(term string) bool {
	_, ok := ParseTerm(term)
	return ok
}
