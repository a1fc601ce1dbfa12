package entity

// Kind says how an attribute's cells are interpreted.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	if k == Categorical {
		return "categorical"
	}
	return "numeric"
}

// Attribute is a canonical quantity and the column labels it is known by,
// in order of preference.
type Attribute struct {
	Name    string
	Kind    Kind
	Aliases []string
}

// Config is an ordered alias configuration.
type Config []Attribute

// Lookup returns the attribute named name.
func (c Config) Lookup(name string) (Attribute, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// TreeConfig recognizes stem-level attributes.
var TreeConfig = Config{
	{Name: "dbh", Kind: Numeric, Aliases: []string{"DBH", "DBH (mm)"}},
	{Name: "height", Kind: Numeric, Aliases: []string{"Height", "Height (dm)"}},
	{Name: "volume", Kind: Numeric, Aliases: []string{"Volume", "Volume (dm3)", "Volume (Var161)"}},
	{Name: "volume_m3", Kind: Numeric, Aliases: []string{"Volume (m3)"}},
	{Name: "log_count", Kind: Numeric, Aliases: []string{"Log Count", "Number of Log"}},
	{Name: "tree_number", Kind: Categorical, Aliases: []string{"Tree Number", "Stem Number"}},
	{Name: "species", Kind: Categorical, Aliases: []string{"Species", "Species Number"}},
	{Name: "stem_type", Kind: Categorical, Aliases: []string{"Stem Type"}},
	{Name: "altitude", Kind: Numeric, Aliases: []string{"Altitude"}},
	{Name: "latitude", Kind: Numeric, Aliases: []string{"Latitude"}},
	{Name: "longitude", Kind: Numeric, Aliases: []string{"Longitude"}},
}

// LogConfig recognizes log-level attributes.
var LogConfig = Config{
	{Name: "length", Kind: Numeric, Aliases: []string{"Length (cm)", "Physical Length"}},
	{Name: "diameter_top", Kind: Numeric, Aliases: []string{"Diameter Top (mm)", "Diameter (Top mm ob)"}},
	{Name: "diameter_mid", Kind: Numeric, Aliases: []string{"Diameter Mid (mm)", "Diameter (Mid mm ob)"}},
	{Name: "diameter_top_ub", Kind: Numeric, Aliases: []string{"Diameter (Top mm ub)"}},
	{Name: "diameter_mid_ub", Kind: Numeric, Aliases: []string{"Diameter (Mid mm ub)"}},
	{Name: "diameter_butt", Kind: Numeric, Aliases: []string{"Diameter Butt (mm)", "Diameter (Root mm ob)"}},
	{Name: "volume_m3", Kind: Numeric, Aliases: []string{"Volume (m3sob)", "Volume (m3sob Decimal)"}},
	{Name: "volume_dl", Kind: Numeric, Aliases: []string{"Volume (Var161)", "Volume (dlsob)", "Volume (Var161) in dl"}},
	{Name: "tree_number", Kind: Categorical, Aliases: []string{"Tree Number", "Stem Number"}},
	{Name: "log_number", Kind: Categorical, Aliases: []string{"Log Number", "Stem Log number"}},
	{Name: "species", Kind: Categorical, Aliases: []string{"Species", "Species Number"}},
}

// ForFamily returns the default configuration for a built-in family.
func ForFamily(name string) Config {
	if name == "tree" {
		return TreeConfig
	}
	return LogConfig
}
