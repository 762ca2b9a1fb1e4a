package poly

import "sort"

// Normalize merges like terms, drops groups whose coefficients sum to exactly
// zero and sorts the survivors by descending exponent, breaking ties between
// distinct variable letters alphabetically. Normalize is idempotent and
// independent of the input term order: each group is summed in ascending
// coefficient order, so floating point rounding cannot depend on it.
func Normalize(p Polynomial) Polynomial {
	groups := make(map[Key][]float64, len(p.terms))
	keys := make([]Key, 0, len(p.terms))
	for _, t := range p.terms {
		k := t.Key()
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], t.coefficient)
	}

	out := make([]Term, 0, len(keys))
	for _, k := range keys {
		if c := sum(groups[k]); c != 0 {
			out = append(out, Term{coefficient: c, variable: k.Variable, exponent: k.Exponent})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].exponent != out[j].exponent {
			return out[i].exponent > out[j].exponent
		}
		return out[i].variable < out[j].variable
	})
	if len(out) == 0 {
		return Polynomial{}
	}
	return Polynomial{terms: out}
}

func sum(coeffs []float64) float64 {
	if len(coeffs) > 2 {
		sort.Float64s(coeffs)
	}
	var total float64
	for _, c := range coeffs {
		total += c
	}
	return total
}

// NormalizeText parses and normalizes text.
func NormalizeText(text string) Polynomial {
	return Normalize(Parse(text))
}
