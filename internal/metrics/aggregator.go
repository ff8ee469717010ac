// internal/metrics/aggregator.go
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/maeplot/internal/catalog"
)

// Summarize computes count, mean, min and max of values. An empty slice
// yields a zero Summary.
func Summarize(category string, values []float64) Summary {
	s := Summary{Category: category, Count: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Mean = stat.Mean(values, nil)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	return s
}

// Summaries returns one Summary per category in first-appearance order.
func (t Table) Summaries() []Summary {
	cats := t.Categories()
	out := make([]Summary, 0, len(cats))
	for _, c := range cats {
		out = append(out, Summarize(c, t.Values(c)))
	}
	return out
}

// Mean returns the arithmetic mean of values, or false when there are none.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return stat.Mean(values, nil), true
}

// BestFilter returns the filter with the strictly lowest mean. Ties keep the
// first-encountered filter. It reports false when means is empty.
func BestFilter(means []FilterMean) (catalog.Filter, bool) {
	if len(means) == 0 {
		return "", false
	}
	best := means[0]
	for _, m := range means[1:] {
		if m.Mean < best.Mean {
			best = m
		}
	}
	return best.Filter, true
}
