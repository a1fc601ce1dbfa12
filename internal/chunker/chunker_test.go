package chunker

import (
	"fmt"
	"testing"

	"github.com/dgallion1/prigest/internal/record"
)

func TestRows_ExactMultiple(t *testing.T) {
	rows := Rows(2, []string{"a", "b", "c", "d"})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "c" || rows[1][1] != "d" {
		t.Errorf("expected second row [c d], got %v", rows[1])
	}
}

func TestRows_PadsTrailingRow(t *testing.T) {
	rows := Rows(3, []string{"A", "B", "C", "D", "E"})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"D", "E", ""}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Errorf("row[1][%d]: expected %q, got %q", i, want[i], rows[1][i])
		}
	}
}

func TestRows_RowCountAndPadding(t *testing.T) {
	for width := 1; width <= 7; width++ {
		for count := 0; count <= 30; count++ {
			values := make([]string, count)
			for i := range values {
				values[i] = fmt.Sprint(i)
			}
			rows := Rows(width, values)

			wantRows := (count + width - 1) / width
			if len(rows) != wantRows {
				t.Fatalf("width=%d count=%d: expected %d rows, got %d", width, count, wantRows, len(rows))
			}
			for i, r := range rows {
				if len(r) != width {
					t.Fatalf("width=%d count=%d: row %d has %d cells", width, count, i, len(r))
				}
			}
			if count == 0 {
				continue
			}

			last := rows[len(rows)-1]
			empty := 0
			for _, c := range last {
				if c == "" {
					empty++
				}
			}
			if pad := wantRows*width - count; empty != pad {
				t.Errorf("width=%d count=%d: expected padding %d, got %d", width, count, pad, empty)
			}
		}
	}
}

func TestRows_PreservesOrder(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5", "6", "7"}
	rows := Rows(3, values)

	idx := 0
	for _, r := range rows {
		for _, c := range r {
			if idx < len(values) && c != values[idx] {
				t.Fatalf("cell %d: expected %q, got %q", idx, values[idx], c)
			}
			idx++
		}
	}
}

func TestRows_EmptyInput(t *testing.T) {
	rows := Rows(4, nil)
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil row set, got %v", rows)
	}
}

func TestRows_DoesNotAliasInput(t *testing.T) {
	values := []string{"a", "b", "c"}
	rows := Rows(3, values)
	rows[0][0] = "z"
	if values[0] != "a" {
		t.Errorf("expected input to stay unchanged, got %q", values[0])
	}
}

func TestFlatten_IgnoresRecordBoundaries(t *testing.T) {
	records := []record.Record{
		{Tag: "266", Fields: []string{"1", "2", "20"}},
		{Tag: "267", Fields: []string{"A", "B"}},
		{Tag: "999", Fields: []string{"x"}},
		{Tag: "267", Fields: []string{"C", "D", "E"}},
	}

	values := Flatten(records, "267")
	want := []string{"A", "B", "C", "D", "E"}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d]: expected %q, got %q", i, want[i], values[i])
		}
	}

	rows := Rows(3, values)
	if len(rows) != 2 || rows[0][2] != "C" || rows[1][2] != "" {
		t.Errorf("expected rows [A B C] [D E \"\"], got %v", rows)
	}
}

func TestFlatten_NoDataRecords(t *testing.T) {
	records := []record.Record{{Tag: "266", Fields: []string{"1"}}}
	if got := Flatten(records, "267"); len(got) != 0 {
		t.Errorf("expected no values, got %v", got)
	}
}
