// Package stats computes the distributions and summaries shown for a loaded
// file: fixed-bin histograms, category frequencies and describe-style
// summary statistics.
package stats

import (
	"fmt"
	"math"
)

// DefaultBins is the bin count used when a caller does not choose one.
const DefaultBins = 30

// boundPrecision is the number of decimals bin bounds are reported with.
const boundPrecision = 3

// InvalidBinCountError is returned for a bin count below one.
type InvalidBinCountError struct {
	Bins int
}

func (e *InvalidBinCountError) Error() string {
	return fmt.Sprintf("invalid bin count %d: must be at least 1", e.Bins)
}

// InvalidRangeError is returned for an explicit range whose minimum exceeds
// its maximum or whose bounds are not finite.
type InvalidRangeError struct {
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid histogram range [%g, %g]", e.Min, e.Max)
}

// Range is an explicit [Min, Max] histogram range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Bin is one histogram bucket. Every bin is half-open except the last,
// which includes its end.
type Bin struct {
	Start float64 `json:"bin_start"`
	End   float64 `json:"bin_end"`
	Count int     `json:"count"`
}

// Hist is a histogram. An empty Bins slice means there was no data.
type Hist struct {
	Bins  []Bin `json:"bins"`
	Total int   `json:"total"`
}

// Empty reports whether the histogram has no bins.
func (h Hist) Empty() bool { return len(h.Bins) == 0 }

// Histogram counts values into bins uniform bins over rng, or over the
// observed minimum and maximum when rng is nil. With an explicit range,
// values outside it are not counted. A degenerate range yields a single
// bin holding every counted value. NaN and infinite values are ignored.
func Histogram(values []float64, bins int, rng *Range) (Hist, error) {
	if bins < 1 {
		return Hist{}, &InvalidBinCountError{Bins: bins}
	}
	if rng != nil && (rng.Min > rng.Max || !finite(rng.Min) || !finite(rng.Max)) {
		return Hist{}, &InvalidRangeError{Min: rng.Min, Max: rng.Max}
	}
	values = finiteOnly(values)
	if len(values) == 0 {
		return Hist{Bins: []Bin{}}, nil
	}

	var lo, hi float64
	if rng != nil {
		lo, hi = rng.Min, rng.Max
	} else {
		lo, hi = values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	if lo == hi {
		n := 0
		for _, v := range values {
			if v == lo {
				n++
			}
		}
		return Hist{
			Bins:  []Bin{{Start: round(lo), End: round(hi), Count: n}},
			Total: n,
		}, nil
	}

	// Bin on halved values when the span itself overflows float64.
	scale := 1.0
	if math.IsInf(hi-lo, 0) {
		scale = 0.5
	}
	slo := lo * scale
	width := (hi*scale - slo) / float64(bins)

	counts := make([]int, bins)
	total := 0
	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		idx := int(math.Floor((v*scale - slo) / width))
		idx = max(0, min(idx, bins-1))
		counts[idx]++
		total++
	}

	out := make([]Bin, bins)
	for i := range out {
		end := (slo + float64(i+1)*width) / scale
		if i == bins-1 {
			end = hi
		}
		out[i] = Bin{
			Start: round((slo + float64(i)*width) / scale),
			End:   round(end),
			Count: counts[i],
		}
	}
	return Hist{Bins: out, Total: total}, nil
}

// round reports v with boundPrecision decimals. Magnitudes from 2^52 up
// have no fractional part and are returned as is.
func round(v float64) float64 {
	if math.Abs(v) >= 1<<52 {
		return v
	}
	p := math.Pow10(boundPrecision)
	return math.Round(v*p) / p
}

func finiteOnly(values []float64) []float64 {
	for i, v := range values {
		if finite(v) {
			continue
		}
		out := append([]float64(nil), values[:i]...)
		for _, v := range values[i+1:] {
			if finite(v) {
				out = append(out, v)
			}
		}
		return out
	}
	return values
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
