package dataset

import (
	"github.com/dgallion1/prigest/internal/entity"
	"github.com/dgallion1/prigest/internal/record"
	"github.com/dgallion1/prigest/internal/table"
)

// Location is the position of one stem in decimal degrees. Tree is the
// stem's row index in the tree table; Attributes holds its non-empty cells.
type Location struct {
	Tree       int
	Latitude   float64
	Longitude  float64
	Attributes map[string]string
}

// TreeLocations returns every stem with both coordinates present. A file
// without coordinate columns yields no locations and no error.
func (d *Dataset) TreeLocations() ([]Location, error) {
	t, err := d.Family(record.Tree)
	if err != nil {
		return nil, err
	}
	if !d.normalize {
		t = table.NormalizeCoordinates(t)
	}

	lat, lon := t.Column("Latitude"), t.Column("Longitude")
	out := []Location{}
	if lat < 0 || lon < 0 {
		return out, nil
	}

	for i, row := range t.Rows {
		la, okLat := entity.ParseNumber(t.Cell(i, lat))
		lo, okLon := entity.ParseNumber(t.Cell(i, lon))
		if !okLat || !okLon {
			continue
		}
		attrs := make(map[string]string, len(row))
		for j, cell := range row {
			if cell != "" {
				attrs[t.Columns[j]] = cell
			}
		}
		out = append(out, Location{Tree: i, Latitude: la, Longitude: lo, Attributes: attrs})
	}
	return out, nil
}
