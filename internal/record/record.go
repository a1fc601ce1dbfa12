package record

// Well-known record tags (StanForD variable numbers).
const (
	TagLogHeader  = "256"
	TagLogData    = "257"
	TagTreeHeader = "266"
	TagTreeData   = "267"

	// TagSoftware names the program that wrote the file.
	TagSoftware = "5"
)

// Record is one tagged unit of a decoded measurement stream.
type Record struct {
	Tag    string   `json:"tag"`    // Variable number identifying the record type
	Fields []string `json:"fields"` // Field values in stream order
}

// Stream is an ordered sequence of records as produced by the reader.
type Stream []Record

// Count returns how many records carry tag.
func (s Stream) Count(tag string) int {
	n := 0
	for _, r := range s {
		if r.Tag == tag {
			n++
		}
	}
	return n
}

// First returns the first record carrying tag.
func (s Stream) First(tag string) (Record, bool) {
	for _, r := range s {
		if r.Tag == tag {
			return r, true
		}
	}
	return Record{}, false
}

// Family pairs the header tag that fixes a table's width with the data tag
// whose records hold its concatenated cell values.
type Family struct {
	Name      string
	HeaderTag string
	DataTag   string
}

var (
	Log  = Family{Name: "log", HeaderTag: TagLogHeader, DataTag: TagLogData}
	Tree = Family{Name: "tree", HeaderTag: TagTreeHeader, DataTag: TagTreeData}
)

// FamilyByName returns a built-in family.
func FamilyByName(name string) (Family, bool) {
	switch name {
	case Log.Name:
		return Log, true
	case Tree.Name:
		return Tree, true
	}
	return Family{}, false
}

// FamilyByHeader returns the built-in family whose header carries tag.
func FamilyByHeader(tag string) (Family, bool) {
	for _, f := range []Family{Log, Tree} {
		if f.HeaderTag == tag {
			return f, true
		}
	}
	return Family{}, false
}
