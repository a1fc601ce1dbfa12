// Package codes maps StanForD field codes found in header records to the
// column labels shown to users.
package codes

// Dictionary is a read-only code → label mapping. Lookups are total: a code
// without an entry resolves to itself so files written by newer machines,
// carrying codes this table does not know yet, still load.
type Dictionary struct {
	labels map[string]string
}

// New builds a Dictionary from a literal mapping. The map is copied.
func New(labels map[string]string) Dictionary {
	m := make(map[string]string, len(labels))
	for k, v := range labels {
		m[k] = v
	}
	return Dictionary{labels: m}
}

// Resolve returns the label for code, or code itself when unmapped.
func (d Dictionary) Resolve(code string) string {
	if label, ok := d.labels[code]; ok {
		return label
	}
	return code
}

// Lookup reports whether code has an explicit label.
func (d Dictionary) Lookup(code string) (string, bool) {
	label, ok := d.labels[code]
	return label, ok
}

// ForFamily returns the dictionary for a built-in family name. Unknown
// names get the log dictionary, which covers the generic codes.
func ForFamily(name string) Dictionary {
	if name == "tree" {
		return Tree
	}
	return Log
}

// Log labels the columns of the log family (header 256).
var Log = New(map[string]string{
	"1":    "Type",
	"2":    "Species Number",
	"20":   "Unique ID",
	"201":  "Diameter (Top mm ob)",
	"202":  "Diameter (Top mm ub)",
	"203":  "Diameter (Mid mm ob)",
	"204":  "Diameter (Mid mm ub)",
	"205":  "Diameter (Root mm ob)",
	"206":  "Diameter (Root mm ub)",
	"207":  "Middle diameter (HKS measurement mm ob)",
	"208":  "Middle diameter (HKS measurement mm ub)",
	"300":  "Forced cross-cut",
	"301":  "Length (cm)",
	"302":  "Length class",
	"400":  "Volume (Var161)",
	"1400": "Volume (Decimal)",
	"401":  "Volume (m3sob)",
	"1401": "Volume (m3sob Decimal)",
	"402":  "Volume (m3sub)",
	"1402": "Volume (m3sub Decimal)",
	"403":  "Volume (m3topob)",
	"1403": "Volume (m3topob Decimal)",
	"404":  "Volume (m3topub)",
	"1404": "Volume (m3topub Decimal)",
	"405":  "Volume (m3smiob)",
	"1405": "Volume (m3smiob Decimal)",
	"406":  "Volume (m3smiub)",
	"1406": "Volume (m3smiub Decimal)",
	"420":  "Volume (Var161) in dl",
	"421":  "Volume (dlsob)",
	"422":  "Volume (dlsub)",
	"423":  "Volume (dltopob)",
	"424":  "Volume (dltopub)",
	"425":  "Volume (dlsmiob)",
	"426":  "Volume (dlsmiub)",
	"500":  "Stem Number",
	"501":  "Stem Log number",
	"600":  "Number of Log",
	"2001": "Reserved",
})

// Tree labels the columns of the stem family (header 266).
var Tree = New(map[string]string{
	"1":    "Type",
	"2":    "Species Number",
	"500":  "Stem Number",
	"505":  "Suitable for Bio Energy",
	"723":  "Reference Diameter for DBH",
	"724":  "Reference Diameter Height",
	"740":  "DBH",
	"741":  "Stem Type",
	"750":  "Operator Number",
	"760":  "Latitude",
	"761":  "North/South Flag",
	"762":  "Longitude",
	"763":  "East/West Flag",
	"764":  "Altitude",
	"765":  "Height (dm)",
	"766":  "Height (m)",
	"767":  "Volume (dm3)",
	"768":  "Volume (m3)",
	"769":  "DBH (mm)",
	"770":  "DBH (cm)",
	"771":  "Log Count",
	"772":  "Number of Log",
	"2001": "Reserved",
})

// Species names the species numbers most machines are configured with.
var Species = New(map[string]string{
	"1":  "Pine",
	"2":  "Spruce",
	"3":  "Birch",
	"4":  "Aspen",
	"5":  "Larch",
	"6":  "Other broadleaf",
	"7":  "Other conifer",
	"8":  "Oak",
	"9":  "Beech",
	"10": "Douglas fir",
})
