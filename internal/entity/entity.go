// Package entity builds attribute-keyed tables for one entity kind (stems or
// logs) out of a labeled table whose column names vary between machines.
package entity

import "github.com/dgallion1/prigest/internal/table"

type column struct {
	attr    Attribute
	source  string
	numbers []*float64
	texts   []*string
}

// Table holds the recognized attributes of one entity family. All columns
// are aligned by row index. It is never modified after Build returns.
type Table struct {
	order   []string
	columns map[string]*column
	rows    int
}

// Build scans t's columns once and, for each attribute in cfg, takes the
// first column (lowest index) whose label is one of the attribute's
// aliases. Numeric cells that fail to parse become nil; categorical cells
// are copied verbatim.
func Build(t *table.Labeled, cfg Config) *Table {
	et := &Table{
		columns: make(map[string]*column),
		rows:    t.Len(),
	}

	aliasOf := make(map[string][]int)
	for i, a := range cfg {
		for _, alias := range a.Aliases {
			aliasOf[alias] = append(aliasOf[alias], i)
		}
	}

	picked := make([]int, len(cfg))
	for i := range picked {
		picked[i] = -1
	}
	for col, label := range t.Columns {
		for _, ai := range aliasOf[label] {
			if picked[ai] < 0 {
				picked[ai] = col
			}
		}
	}

	for i, a := range cfg {
		col := picked[i]
		if col < 0 {
			continue
		}
		if _, dup := et.columns[a.Name]; dup {
			continue
		}
		c := &column{attr: a, source: t.Columns[col]}
		switch a.Kind {
		case Numeric:
			c.numbers = make([]*float64, t.Len())
			for r := range t.Rows {
				if v, ok := ParseNumber(t.Cell(r, col)); ok {
					c.numbers[r] = &v
				}
			}
		case Categorical:
			c.texts = make([]*string, t.Len())
			for r := range t.Rows {
				s := t.Cell(r, col)
				c.texts[r] = &s
			}
		}
		et.columns[a.Name] = c
		et.order = append(et.order, a.Name)
	}

	return et
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Has reports whether the attribute was recognized.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Attributes lists recognized attributes in configuration order.
func (t *Table) Attributes() []string {
	return append([]string(nil), t.order...)
}

// Kind returns the attribute's kind.
func (t *Table) Kind(name string) (Kind, bool) {
	c, ok := t.columns[name]
	if !ok {
		return 0, false
	}
	return c.attr.Kind, true
}

// Source returns the column label the attribute was read from.
func (t *Table) Source(name string) (string, bool) {
	c, ok := t.columns[name]
	if !ok {
		return "", false
	}
	return c.source, true
}

// Numeric returns the values of a numeric attribute. The slice is shared
// and must not be modified.
func (t *Table) Numeric(name string) ([]*float64, bool) {
	c, ok := t.columns[name]
	if !ok || c.attr.Kind != Numeric {
		return nil, false
	}
	return c.numbers, true
}

// Categorical returns the values of a categorical attribute. The slice is
// shared and must not be modified.
func (t *Table) Categorical(name string) ([]*string, bool) {
	c, ok := t.columns[name]
	if !ok || c.attr.Kind != Categorical {
		return nil, false
	}
	return c.texts, true
}

// Column is the JSON shape of one attribute.
type Column struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Values []any  `json:"values"`
}

// Columns returns every attribute as JSON-friendly columns; nulls are nil.
func (t *Table) Columns() []Column {
	out := make([]Column, 0, len(t.order))
	for _, name := range t.order {
		c := t.columns[name]
		col := Column{Name: name, Kind: c.attr.Kind.String(), Source: c.source, Values: make([]any, t.rows)}
		for i := 0; i < t.rows; i++ {
			switch {
			case c.numbers != nil && c.numbers[i] != nil:
				col.Values[i] = *c.numbers[i]
			case c.texts != nil && c.texts[i] != nil:
				col.Values[i] = *c.texts[i]
			}
		}
		out = append(out, col)
	}
	return out
}
