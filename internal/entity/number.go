package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex accepts integers, decimals and scientific notation once
// separators have been normalized.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// thousandsRegex matches an integer with one comma-grouped thousands block.
// A leading zero ("0,125") keeps the comma decimal.
var thousandsRegex = regexp.MustCompile(`^[+-]?[1-9]\d{0,2},\d{3}$`)

// ParseNumber is a tolerant numeric parse for measurement cells. It trims
// whitespace, drops thousands separators and accepts a single decimal comma
// unless it groups thousands ("1,234" is 1234, "12,5" is 12.5).
// ok is false for empty or non-numeric input.
func ParseNumber(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	switch {
	case strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") == 1 && !thousandsRegex.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
