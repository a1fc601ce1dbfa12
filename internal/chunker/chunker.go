package chunker

import "github.com/dgallion1/prigest/internal/record"

// Flatten concatenates the fields of every record tagged dataTag, in stream
// order, into one value sequence.
func Flatten(records []record.Record, dataTag string) []string {
	total := 0
	for _, r := range records {
		if r.Tag == dataTag {
			total += len(r.Fields)
		}
	}
	if total == 0 {
		return nil
	}

	values := make([]string, 0, total)
	for _, r := range records {
		if r.Tag == dataTag {
			values = append(values, r.Fields...)
		}
	}
	return values
}

// Rows slices values into consecutive rows of exactly width cells.
// A trailing partial row is right-padded with empty strings. Record
// boundaries play no part: one row may span several source records and one
// record may be split across rows.
func Rows(width int, values []string) [][]string {
	if width < 1 || len(values) == 0 {
		return [][]string{}
	}

	n := (len(values) + width - 1) / width
	rows := make([][]string, 0, n)

	for start := 0; start < len(values); start += width {
		row := make([]string, width)
		copy(row, values[start:min(start+width, len(values))])
		rows = append(rows, row)
	}

	return rows
}
