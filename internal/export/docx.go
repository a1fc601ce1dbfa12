package export

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"
)

// DOCX writes t as a Word document holding a title paragraph and one table.
func DOCX(w io.Writer, t Tabular) error {
	doc := docx.New().WithDefaultTheme()

	if t.Title != "" {
		doc.AddParagraph().AddText(t.Title)
	}

	tbl := doc.AddTable(len(t.Rows)+1, len(t.Columns), 0, nil)
	for x, row := range tbl.TableRows {
		for y, cell := range row.TableCells {
			var text string
			if x == 0 {
				text = t.Columns[y]
			} else if y < len(t.Rows[x-1]) {
				text = t.Rows[x-1][y]
			}
			cell.AddParagraph().AddText(text)
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
