// Package export writes finalized tables and reports to an io.Writer.
// It never touches the filesystem; callers own where the bytes go.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Tabular is the finalized {columns, rows} pair handed to exporters.
type Tabular struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Format identifies an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// ParseFormat normalizes a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatCSV, FormatDOCX, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// Write renders t in format f.
func Write(w io.Writer, f Format, t Tabular) error {
	switch f {
	case FormatCSV:
		return CSV(w, t)
	case FormatDOCX:
		return DOCX(w, t)
	case FormatHTML:
		return HTML(w, t)
	}
	return fmt.Errorf("unsupported export format: %s", f)
}

// CSV writes a header line followed by every row.
func CSV(w io.Writer, t Tabular) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
