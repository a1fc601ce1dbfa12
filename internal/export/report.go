package export

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dgallion1/prigest/internal/stats"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Report is the input to the HTML summary report.
type Report struct {
	Title    string
	Facts    [][2]string // key/value lines shown under the title
	Sections []Section
}

// Section covers one entity family. Unavailable, when set, replaces the
// body with a notice; the rest of the report still renders.
type Section struct {
	Name        string
	Unavailable string
	Summaries   map[string]stats.Summary
	Histograms  map[string]stats.Hist
	Categories  map[string][]stats.CategoryCount
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders r as GitHub-flavored Markdown.
func Markdown(r Report) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# %s\n\n", escapeMD(r.Title))
	for _, f := range r.Facts {
		fmt.Fprintf(&b, "- **%s**: %s\n", escapeMD(f[0]), escapeMD(f[1]))
	}
	b.WriteString("\n")

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", escapeMD(s.Name))
		if s.Unavailable != "" {
			fmt.Fprintf(&b, "_%s_\n\n", escapeMD(s.Unavailable))
			continue
		}

		if len(s.Summaries) > 0 {
			b.WriteString("### Summary statistics\n\n")
			b.WriteString("| attribute | count | mean | std | min | 25% | 50% | 75% | max |\n")
			b.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|---:|\n")
			for _, name := range sortedKeys(s.Summaries) {
				sm := s.Summaries[name]
				fmt.Fprintf(&b, "| %s | %d | %.3f | %.3f | %g | %g | %g | %g | %g |\n",
					escapeMD(name), sm.Count, sm.Mean, sm.Std, sm.Min, sm.Q1, sm.Median, sm.Q3, sm.Max)
			}
			b.WriteString("\n")
		}

		for _, name := range sortedKeys(s.Histograms) {
			h := s.Histograms[name]
			fmt.Fprintf(&b, "### %s distribution\n\n", escapeMD(name))
			if h.Empty() {
				b.WriteString("_No data_\n\n")
				continue
			}
			b.WriteString("| bin start | bin end | count |\n|---:|---:|---:|\n")
			for _, bin := range h.Bins {
				fmt.Fprintf(&b, "| %g | %g | %d |\n", bin.Start, bin.End, bin.Count)
			}
			b.WriteString("\n")
		}

		for _, name := range sortedKeys(s.Categories) {
			fmt.Fprintf(&b, "### %s counts\n\n", escapeMD(name))
			b.WriteString("| category | count |\n|---|---:|\n")
			for _, c := range s.Categories[name] {
				fmt.Fprintf(&b, "| %s | %d |\n", escapeMD(c.Category), c.Count)
			}
			b.WriteString("\n")
		}
	}

	return b.Bytes()
}

// ReportHTML renders r to HTML.
func ReportHTML(w io.Writer, r Report) error {
	if err := md.Convert(Markdown(r), w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "|", `\|`, "*", `\*`, "_", `\_`, "<", "&lt;", ">", "&gt;", "`", "\\`",
)

func escapeMD(s string) string {
	return mdEscaper.Replace(s)
}
