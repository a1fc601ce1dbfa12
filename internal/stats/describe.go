package stats

import (
	"math"
	"sort"
)

// Summary is a point-in-time aggregate of one numeric attribute.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe summarizes values. Std is the sample standard deviation and is
// zero below two values; quartiles interpolate linearly between ranks.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, std := moments(sorted)

	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q1:     percentile(sorted, 25),
		Median: percentile(sorted, 50),
		Q3:     percentile(sorted, 75),
		Max:    sorted[len(sorted)-1],
	}
}

// moments returns the mean and sample standard deviation. When a plain sum
// overflows, values are scaled by their largest magnitude first.
func moments(values []float64) (mean, std float64) {
	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n
	if math.IsInf(mean, 0) || math.IsNaN(mean) {
		s := maxAbs(values)
		sum = 0
		for _, v := range values {
			sum += v / s
		}
		mean = sum / n * s
	}

	if len(values) < 2 {
		return mean, 0
	}

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	if !math.IsInf(sq, 0) && !math.IsNaN(sq) {
		return mean, math.Sqrt(sq / (n - 1))
	}

	s := maxAbs(values)
	sq = 0
	for _, v := range values {
		d := v/s - mean/s
		sq += d * d
	}
	return mean, s * math.Sqrt(sq/(n-1))
}

func maxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func percentile(sortedValues []float64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return sortedValues[0]
	}
	if pct >= 100 {
		return sortedValues[len(sortedValues)-1]
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return sortedValues[lower]
	}
	weight := index - float64(lower)
	lo := sortedValues[lower]
	hi := sortedValues[upper]
	if math.IsInf(hi-lo, 0) {
		return lo*(1-weight) + hi*weight
	}
	return lo + ((hi - lo) * weight)
}
