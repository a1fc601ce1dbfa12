package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// Point is one located feature in WGS84 decimal degrees.
type Point struct {
	ID         int
	Latitude   float64
	Longitude  float64
	Properties map[string]string
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// GeoJSON writes points as a FeatureCollection of Point features. Each
// feature's properties carry "id" plus the point's own properties.
func GeoJSON(w io.Writer, points []Point) error {
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(points))}
	for _, p := range points {
		props := make(map[string]any, len(p.Properties)+1)
		for k, v := range p.Properties {
			props[k] = v
		}
		props["id"] = p.ID
		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Geometry:   geometry{Type: "Point", Coordinates: [2]float64{p.Longitude, p.Latitude}},
			Properties: props,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
