package stats

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestHistogram_UniformBins(t *testing.T) {
	h, err := Histogram([]float64{1, 2, 2, 3, 10}, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Bins) != 3 {
		t.Fatalf("expected 3 bins, got %d", len(h.Bins))
	}

	want := []Bin{
		{Start: 1, End: 4, Count: 4},
		{Start: 4, End: 7, Count: 0},
		{Start: 7, End: 10, Count: 1},
	}
	for i := range want {
		if h.Bins[i] != want[i] {
			t.Errorf("bin %d: expected %+v, got %+v", i, want[i], h.Bins[i])
		}
	}
	if h.Total != 5 {
		t.Errorf("expected total 5, got %d", h.Total)
	}
}

func TestHistogram_MaxLandsInLastBin(t *testing.T) {
	h, err := Histogram([]float64{0, 10}, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Bins[9].Count != 1 {
		t.Errorf("expected max in last bin, got %+v", h.Bins[9])
	}
}

func TestHistogram_CountsSumToInput(t *testing.T) {
	values := []float64{0.1, 0.2, 3.3, 4.4, 4.4, 9.9, -2, 17, 5, 5, 5}
	for bins := 1; bins <= 40; bins++ {
		h, err := Histogram(values, bins, nil)
		if err != nil {
			t.Fatalf("bins=%d: unexpected error: %v", bins, err)
		}
		sum := 0
		for _, b := range h.Bins {
			sum += b.Count
		}
		if sum != len(values) || h.Total != len(values) {
			t.Errorf("bins=%d: expected %d, got sum=%d total=%d", bins, len(values), sum, h.Total)
		}
	}
}

func TestHistogram_Degenerate(t *testing.T) {
	h, err := Histogram([]float64{7, 7, 7}, 30, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(h.Bins))
	}
	if h.Bins[0].Start != 7 || h.Bins[0].End != 7 || h.Bins[0].Count != 3 {
		t.Errorf("expected [7,7]:3, got %+v", h.Bins[0])
	}
}

func TestHistogram_Empty(t *testing.T) {
	h, err := Histogram(nil, DefaultBins, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.Empty() || h.Total != 0 {
		t.Errorf("expected empty histogram, got %+v", h)
	}
}

func TestHistogram_InvalidBinCount(t *testing.T) {
	_, err := Histogram([]float64{1}, 0, nil)
	var binErr *InvalidBinCountError
	if !errors.As(err, &binErr) {
		t.Fatalf("expected InvalidBinCountError, got %v", err)
	}
}

func TestHistogram_ExplicitRange(t *testing.T) {
	h, err := Histogram([]float64{-5, 0, 5, 10, 50}, 2, &Range{Min: 0, Max: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Bins[0].Count != 1 || h.Bins[1].Count != 2 {
		t.Errorf("expected counts [1 2], got [%d %d]", h.Bins[0].Count, h.Bins[1].Count)
	}
	if h.Total != 3 {
		t.Errorf("expected 3 values in range, got %d", h.Total)
	}

	_, err = Histogram([]float64{1}, 2, &Range{Min: 3, Max: 1})
	var rngErr *InvalidRangeError
	if !errors.As(err, &rngErr) {
		t.Errorf("expected InvalidRangeError, got %v", err)
	}
}

func TestHistogram_BoundsRounded(t *testing.T) {
	h, err := Histogram([]float64{0, 1}, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Bins[0].End != 0.333 || h.Bins[1].End != 0.667 {
		t.Errorf("expected rounded bounds, got %+v", h.Bins)
	}
}

func TestHistogram_SpanOverflow(t *testing.T) {
	h, err := Histogram([]float64{-1e308, 0, 1e308}, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total != 3 {
		t.Fatalf("expected total 3, got %d", h.Total)
	}
	for i, b := range h.Bins {
		if b.Count != 1 {
			t.Errorf("bin %d: expected count 1, got %d", i, b.Count)
		}
		if math.IsInf(b.Start, 0) || math.IsInf(b.End, 0) {
			t.Errorf("bin %d: expected finite bounds, got [%v, %v]", i, b.Start, b.End)
		}
	}
	if h.Bins[0].Start != -1e308 || h.Bins[2].End != 1e308 {
		t.Errorf("expected bounds to span the input, got [%v, %v]", h.Bins[0].Start, h.Bins[2].End)
	}
	if _, err := json.Marshal(h); err != nil {
		t.Errorf("expected histogram to encode: %v", err)
	}
}

func TestHistogram_IgnoresNonFinite(t *testing.T) {
	h, err := Histogram([]float64{math.NaN(), 1, math.Inf(1), 3}, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total != 2 || h.Bins[0].Start != 1 || h.Bins[1].End != 3 {
		t.Errorf("expected two finite values over [1, 3], got %+v", h)
	}
}

func TestCategories_Ordering(t *testing.T) {
	got := Categories([]string{"b", "a", "c", "b", "a", "d", ""})

	want := []CategoryCount{
		{Category: "a", Count: 2},
		{Category: "b", Count: 2},
		{Category: "", Count: 1},
		{Category: "c", Count: 1},
		{Category: "d", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestNonNull(t *testing.T) {
	one, s := 1.0, "x"
	if got := NonNullNumbers([]*float64{nil, &one, nil}); len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
	if got := NonNullStrings([]*string{&s, nil}); len(got) != 1 || got[0] != "x" {
		t.Errorf("expected [x], got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{5, 1, 4, 2, 3})

	if s.Count != 5 {
		t.Fatalf("expected count=5, got %d", s.Count)
	}
	if s.Mean != 3 {
		t.Errorf("expected mean=3, got %f", s.Mean)
	}
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("expected std=%f, got %f", math.Sqrt(2.5), s.Std)
	}
	if s.Min != 1 || s.Q1 != 2 || s.Median != 3 || s.Q3 != 4 || s.Max != 5 {
		t.Errorf("unexpected quartiles: %+v", s)
	}
}

func TestDescribe_Interpolates(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4})
	if s.Q1 != 1.75 || s.Median != 2.5 || s.Q3 != 3.25 {
		t.Errorf("expected q1=1.75 median=2.5 q3=3.25, got %+v", s)
	}
}

func TestDescribe_SingleAndEmpty(t *testing.T) {
	if s := Describe([]float64{4}); s.Std != 0 || s.Min != 4 || s.Max != 4 {
		t.Errorf("unexpected single-value summary: %+v", s)
	}
	if s := Describe(nil); s.Count != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestDescribe_LargeMagnitudes(t *testing.T) {
	s := Describe([]float64{1e308, 1e308})
	if s.Mean != 1e308 || s.Std != 0 {
		t.Errorf("expected mean 1e308 and std 0, got mean %v std %v", s.Mean, s.Std)
	}

	s = Describe([]float64{-1e308, 1e308})
	if s.Mean != 0 {
		t.Errorf("expected mean 0, got %v", s.Mean)
	}
	if math.IsInf(s.Std, 0) || math.Abs(s.Std-math.Sqrt2*1e308)/1e308 > 1e-12 {
		t.Errorf("expected std sqrt(2)*1e308, got %v", s.Std)
	}
	if math.IsInf(s.Q1, 0) || math.IsInf(s.Q3, 0) {
		t.Errorf("expected finite quartiles, got q1 %v q3 %v", s.Q1, s.Q3)
	}
	if _, err := json.Marshal(s); err != nil {
		t.Errorf("expected summary to encode: %v", err)
	}
}
