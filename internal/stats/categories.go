package stats

import "sort"

// CategoryCount is one row of a frequency table.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Categories counts exact-equal values, ordered by count descending and
// then by category ascending.
func Categories(values []string) []CategoryCount {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, CategoryCount{Category: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// NonNullNumbers drops nil entries.
func NonNullNumbers(values []*float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// NonNullStrings drops nil entries. Empty strings are kept.
func NonNullStrings(values []*string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
