package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgallion1/prigest/internal/stats"
)

var sampleTable = Tabular{
	Title:   "Logs",
	Columns: []string{"Species Number", "Length (cm)"},
	Rows:    [][]string{{"1", "430"}, {"2", ""}},
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleTable); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Species Number,Length (cm)\n1,430\n2,\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestHTML_EscapesCells(t *testing.T) {
	tbl := Tabular{Columns: []string{"a<b"}, Rows: [][]string{{"x&y"}}}
	var buf bytes.Buffer
	if err := HTML(&buf, tbl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<th>a&lt;b</th>") {
		t.Errorf("expected escaped header, got %q", out)
	}
	if !strings.Contains(out, "<td>x&amp;y</td>") {
		t.Errorf("expected escaped cell, got %q", out)
	}
}

func TestDOCX_WritesZipArchive(t *testing.T) {
	var buf bytes.Buffer
	if err := DOCX(&buf, sampleTable); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("expected zip signature, got %q", buf.Bytes()[:min(4, buf.Len())])
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"csv", ".CSV", "docx", "html"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", in, err)
		}
	}
	if _, err := ParseFormat("xlsx"); err == nil {
		t.Error("expected error for xlsx")
	}
}

func TestReportHTML(t *testing.T) {
	r := Report{
		Title: "harvest.pri",
		Facts: [][2]string{{"Trees", "2"}},
		Sections: []Section{
			{
				Name:       "Trees",
				Summaries:  map[string]stats.Summary{"dbh": {Count: 2, Mean: 295, Min: 280, Max: 310}},
				Histograms: map[string]stats.Hist{"dbh": {Bins: []stats.Bin{{Start: 280, End: 310, Count: 2}}, Total: 2}},
				Categories: map[string][]stats.CategoryCount{"species": {{Category: "1", Count: 2}}},
			},
			{Name: "Logs", Unavailable: "no header record with tag 256"},
		},
	}

	var buf bytes.Buffer
	if err := ReportHTML(&buf, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>harvest.pri</h1>", "<table>", "<td>dbh</td>", "no header record with tag 256"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	out := string(Markdown(Report{Title: "a|b"}))
	if !strings.Contains(out, `a\|b`) {
		t.Errorf("expected escaped pipe, got %q", out)
	}
}

func TestGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	err := GeoJSON(&buf, []Point{
		{ID: 3, Latitude: 61.5, Longitude: -24.25, Properties: map[string]string{"DBH": "310"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(buf.Bytes(), &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("unexpected collection %+v", fc)
	}
	f := fc.Features[0]
	if f.Geometry.Type != "Point" || f.Geometry.Coordinates[0] != -24.25 || f.Geometry.Coordinates[1] != 61.5 {
		t.Errorf("expected [lon, lat] point, got %+v", f.Geometry)
	}
	if f.Properties["DBH"] != "310" || f.Properties["id"] != 3.0 {
		t.Errorf("unexpected properties %v", f.Properties)
	}
}

func TestGeoJSON_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := GeoJSON(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"features": []`) {
		t.Errorf("expected empty features array, got %s", buf.String())
	}
}
