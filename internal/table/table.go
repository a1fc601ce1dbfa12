package table

import (
	"fmt"

	"github.com/dgallion1/prigest/internal/chunker"
	"github.com/dgallion1/prigest/internal/codes"
	"github.com/dgallion1/prigest/internal/record"
)

// MissingHeaderError means the stream has no record with the header tag.
type MissingHeaderError struct {
	Tag string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("no header record with tag %s", e.Tag)
}

// InvalidHeaderError means the header record exists but has no fields, so
// the family has no width to chunk by.
type InvalidHeaderError struct {
	Tag string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("header record with tag %s has no fields", e.Tag)
}

// Labeled is a fixed-width table: every row has len(Columns) cells.
type Labeled struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Width returns the column count.
func (t *Labeled) Width() int { return len(t.Columns) }

// Len returns the row count.
func (t *Labeled) Len() int { return len(t.Rows) }

// Column returns the index of the first column labelled name, or -1.
func (t *Labeled) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when out of range.
func (t *Labeled) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// LocateHeader returns the first record tagged headerTag.
func LocateHeader(records []record.Record, headerTag string) (record.Record, error) {
	for _, r := range records {
		if r.Tag != headerTag {
			continue
		}
		if len(r.Fields) == 0 {
			return record.Record{}, &InvalidHeaderError{Tag: headerTag}
		}
		return r, nil
	}
	return record.Record{}, &MissingHeaderError{Tag: headerTag}
}

// Labels resolves header codes to column labels, keeping positions.
func Labels(header []string, dict codes.Dictionary) []string {
	labels := make([]string, len(header))
	for i, code := range header {
		labels[i] = dict.Resolve(code)
	}
	return labels
}

// Build projects the family dataTag onto the width of the header headerTag.
// A missing data family yields a table with columns and no rows. On a header
// error no table is returned.
func Build(records []record.Record, dataTag, headerTag string, dict codes.Dictionary) (*Labeled, error) {
	header, err := LocateHeader(records, headerTag)
	if err != nil {
		return nil, err
	}

	width := len(header.Fields)
	return &Labeled{
		Columns: Labels(header.Fields, dict),
		Rows:    chunker.Rows(width, chunker.Flatten(records, dataTag)),
	}, nil
}
