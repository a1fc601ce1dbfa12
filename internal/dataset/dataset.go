// Package dataset exposes one loaded measurement file to presentation and
// export collaborators: labeled tables, entity tables, histograms, category
// counts and summary statistics.
package dataset

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dgallion1/prigest/internal/codes"
	"github.com/dgallion1/prigest/internal/entity"
	"github.com/dgallion1/prigest/internal/parser"
	"github.com/dgallion1/prigest/internal/record"
	"github.com/dgallion1/prigest/internal/stats"
	"github.com/dgallion1/prigest/internal/table"
)

// ErrAttributeNotPresent matches any *AttributeNotPresentError.
var ErrAttributeNotPresent = errors.New("attribute not present")

// AttributeNotPresentError reports that a canonical attribute was not
// detected in this file. It is a normal outcome, not a failure.
type AttributeNotPresentError struct {
	Attribute string
}

func (e *AttributeNotPresentError) Error() string {
	return fmt.Sprintf("attribute %q not present", e.Attribute)
}

func (e *AttributeNotPresentError) Is(target error) bool {
	return target == ErrAttributeNotPresent
}

// Info describes a loaded file.
type Info struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
	Encoding  string `json:"encoding"`
	Software  string `json:"software,omitempty"`
	Records   int    `json:"records"`
	TreeCount int    `json:"tree_count"`
	LogCount  int    `json:"log_count"`
}

type cacheKey struct {
	dataTag, headerTag string
}

type cached struct {
	table *table.Labeled
	err   error
}

// Dataset is an immutable snapshot of one file. Derived labeled tables are
// cached; all methods are safe for concurrent use.
type Dataset struct {
	name      string
	size      int64
	encoding  string
	records   record.Stream
	normalize bool

	mu     sync.Mutex
	tables map[cacheKey]cached
}

// Option configures a Dataset.
type Option func(*Dataset)

// WithCoordinateNormalization converts stem coordinates to signed decimal
// degrees in the tree family table.
func WithCoordinateNormalization(on bool) Option {
	return func(d *Dataset) { d.normalize = on }
}

// New wraps a parsed file.
func New(f *parser.File, opts ...Option) *Dataset {
	d := &Dataset{
		name:      f.Name,
		size:      f.SizeBytes,
		encoding:  f.Encoding,
		records:   f.Records,
		normalize: true,
		tables:    make(map[cacheKey]cached),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Records returns the records tagged tag (every record when tag is empty),
// skipping offset and keeping at most limit of them. total is the number
// of matching records. The returned records must not be modified.
func (d *Dataset) Records(tag string, offset, limit int) (page []record.Record, total int) {
	total = len(d.records)
	if tag != "" {
		total = d.records.Count(tag)
	}
	if offset < 0 {
		offset = 0
	}
	page = []record.Record{}
	seen := 0
	for _, r := range d.records {
		if tag != "" && r.Tag != tag {
			continue
		}
		seen++
		if seen <= offset {
			continue
		}
		if limit >= 0 && len(page) >= limit {
			break
		}
		page = append(page, r)
	}
	return page, total
}

// LabeledTable projects dataTag onto the header headerTag, labelling columns
// with the dictionary of the built-in family owning headerTag (the log
// dictionary otherwise). Results, including header errors, are cached.
func (d *Dataset) LabeledTable(dataTag, headerTag string) (*table.Labeled, error) {
	key := cacheKey{dataTag: dataTag, headerTag: headerTag}

	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.tables[key]; ok {
		return c.table, c.err
	}

	fam, _ := record.FamilyByHeader(headerTag)
	normalize := d.normalize && fam.Name == record.Tree.Name

	t, err := table.Build(d.records, dataTag, headerTag, codes.ForFamily(fam.Name))
	if err == nil && normalize {
		t = table.NormalizeCoordinates(t)
	}
	d.tables[key] = cached{table: t, err: err}
	return t, err
}

// Family returns the labeled table of a built-in family.
func (d *Dataset) Family(fam record.Family) (*table.Labeled, error) {
	return d.LabeledTable(fam.DataTag, fam.HeaderTag)
}

// EntityTable builds an attribute-keyed table. Each call builds a fresh one.
func (d *Dataset) EntityTable(t *table.Labeled, cfg entity.Config) *entity.Table {
	return entity.Build(t, cfg)
}

// Info reports file metadata and family row counts. A family whose header
// is missing counts zero rows.
func (d *Dataset) Info() Info {
	info := Info{
		FileName:  d.name,
		SizeBytes: d.size,
		Encoding:  d.encoding,
		Records:   len(d.records),
	}
	if r, ok := d.records.First(record.TagSoftware); ok {
		info.Software = strings.Join(r.Fields, " ")
	}
	if t, err := d.Family(record.Tree); err == nil {
		info.TreeCount = t.Len()
	}
	if t, err := d.Family(record.Log); err == nil {
		info.LogCount = t.Len()
	}
	return info
}

// NumericHistogram bins the non-null values of a numeric attribute.
func NumericHistogram(et *entity.Table, attr string, bins int, rng *stats.Range) (stats.Hist, error) {
	values, ok := et.Numeric(attr)
	if !ok {
		return stats.Hist{}, &AttributeNotPresentError{Attribute: attr}
	}
	return stats.Histogram(stats.NonNullNumbers(values), bins, rng)
}

// CategoryCounts tallies the non-null values of a categorical attribute.
func CategoryCounts(et *entity.Table, attr string) ([]stats.CategoryCount, error) {
	values, ok := et.Categorical(attr)
	if !ok {
		return nil, &AttributeNotPresentError{Attribute: attr}
	}
	return stats.Categories(stats.NonNullStrings(values)), nil
}

// SummaryStatistics describes every numeric attribute of et.
func SummaryStatistics(et *entity.Table) map[string]stats.Summary {
	out := make(map[string]stats.Summary)
	for _, name := range et.Attributes() {
		values, ok := et.Numeric(name)
		if !ok {
			continue
		}
		out[name] = stats.Describe(stats.NonNullNumbers(values))
	}
	return out
}
