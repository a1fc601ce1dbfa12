package api

import (
	"fmt"
	"net/http"

	"github.com/dgallion1/prigest/internal/codes"
	"github.com/dgallion1/prigest/internal/dataset"
	"github.com/dgallion1/prigest/internal/entity"
	"github.com/dgallion1/prigest/internal/export"
	"github.com/dgallion1/prigest/internal/logging"
	"github.com/dgallion1/prigest/internal/record"
	"github.com/dgallion1/prigest/internal/stats"
)

// handleReport renders an HTML overview of both families. A family that
// cannot be projected shows as unavailable; the rest still renders.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds := sess.Data
	info := ds.Info()

	rep := export.Report{
		Title: info.FileName,
		Facts: [][2]string{
			{"Size", fmt.Sprintf("%.1f KB", float64(info.SizeBytes)/1024)},
			{"Encoding", info.Encoding},
			{"Trees", fmt.Sprint(info.TreeCount)},
			{"Logs", fmt.Sprint(info.LogCount)},
		},
	}

	if info.Software != "" {
		rep.Facts = append(rep.Facts, [2]string{"Software", info.Software})
	}

	for _, fam := range []record.Family{record.Tree, record.Log} {
		rep.Sections = append(rep.Sections, s.reportSection(ds, fam))
	}

	// Stand position and elevation, from the stem summaries.
	tree := rep.Sections[0].Summaries
	if lat, lon := tree["latitude"], tree["longitude"]; lat.Count > 0 && lon.Count > 0 {
		rep.Facts = append(rep.Facts, [2]string{"Mean coordinates", fmt.Sprintf("(%.6f, %.6f)", lat.Mean, lon.Mean)})
	}
	if alt := tree["altitude"]; alt.Count > 0 {
		rep.Facts = append(rep.Facts, [2]string{"Mean altitude (m)", fmt.Sprintf("%.2f", alt.Mean)})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := export.ReportHTML(w, rep); err != nil {
		logging.FromContext(r.Context(), s.log).Error("report failed", "file_id", sess.ID, "error", err)
	}
}

// reportCategories are the categorical attributes tallied in the report.
// Identifiers such as stem and log numbers are left out.
var reportCategories = map[string]bool{
	"species":   true,
	"stem_type": true,
}

func (s *Server) reportSection(ds *dataset.Dataset, fam record.Family) export.Section {
	sec := export.Section{Name: fam.Name}

	t, err := ds.Family(fam)
	if err != nil {
		sec.Unavailable = err.Error()
		return sec
	}

	et := ds.EntityTable(t, entity.ForFamily(fam.Name))
	sec.Summaries = dataset.SummaryStatistics(et)
	sec.Histograms = make(map[string]stats.Hist)
	sec.Categories = make(map[string][]stats.CategoryCount)

	for _, attr := range et.Attributes() {
		kind, _ := et.Kind(attr)
		switch kind {
		case entity.Numeric:
			if h, err := dataset.NumericHistogram(et, attr, s.cfg.DefaultBins, nil); err == nil {
				sec.Histograms[attr] = h
			}
		case entity.Categorical:
			if !reportCategories[attr] {
				continue
			}
			counts, err := dataset.CategoryCounts(et, attr)
			if err != nil {
				continue
			}
			if attr == "species" {
				for i := range counts {
					if name, ok := codes.Species.Lookup(counts[i].Category); ok {
						counts[i].Category = fmt.Sprintf("%s (%s)", name, counts[i].Category)
					}
				}
			}
			sec.Categories[attr] = counts
		}
	}
	return sec
}
