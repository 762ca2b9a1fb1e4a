package poly

import "strings"

// suggestionCatalogue is ordered from the most to the least common input.
var suggestionCatalogue = []string{
	"x²", "x^2", "2x²", "3x²", "-x²", "-2x²",
	"x", "2x", "3x", "-x", "-2x", "-3x",
	"1", "2", "3", "-1", "-2", "-3",
	"x² + x + 1", "x² - 1", "2x² + 3x - 5",
	"x² + 2x + 1", "x² - 4x + 4", "x² - 2x - 3",
}

// DefaultSuggestionLimit caps Suggest when limit is not positive.
const DefaultSuggestionLimit = 5

// Suggest returns up to limit catalogue entries starting with prefix,
// compared case-insensitively and ignoring whitespace.
func Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	want := strings.ToLower(StripSpace(prefix))
	var out []string
	for _, s := range suggestionCatalogue {
		if strings.HasPrefix(strings.ToLower(StripSpace(s)), want) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
