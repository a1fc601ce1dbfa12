package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes t as a standalone HTML table.
func HTML(w io.Writer, t Tabular) error {
	tableNode := element(atom.Table)

	thead := element(atom.Thead)
	headRow := element(atom.Tr)
	for _, c := range t.Columns {
		headRow.AppendChild(textElement(atom.Th, c))
	}
	thead.AppendChild(headRow)
	tableNode.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			tr.AppendChild(textElement(atom.Td, cell))
		}
		tbody.AppendChild(tr)
	}
	tableNode.AppendChild(tbody)

	if t.Title != "" {
		if err := html.Render(w, textElement(atom.H1, t.Title)); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	if err := html.Render(w, tableNode); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
