package table

import (
	"strconv"
	"strings"
)

// Stem files store positions as integer 1e-5 degrees with a separate
// hemisphere flag; "2" marks south or west.
const (
	colLatitude  = "Latitude"
	colLatFlag   = "North/South Flag"
	colLongitude = "Longitude"
	colLonFlag   = "East/West Flag"

	coordScale     = 1e-5
	negativeFlag   = "2"
	coordPrecision = 5
)

// NormalizeCoordinates returns a copy of t with latitude and longitude
// converted to signed decimal degrees. A coordinate is only converted when
// its flag column is present; cells that do not parse stay as they are.
func NormalizeCoordinates(t *Labeled) *Labeled {
	lat, latFlag := t.Column(colLatitude), t.Column(colLatFlag)
	lon, lonFlag := t.Column(colLongitude), t.Column(colLonFlag)

	doLat := lat >= 0 && latFlag >= 0
	doLon := lon >= 0 && lonFlag >= 0
	if !doLat && !doLon {
		return t
	}

	out := &Labeled{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		r := append([]string(nil), row...)
		if doLat {
			r[lat] = signedDegrees(r[lat], r[latFlag])
		}
		if doLon {
			r[lon] = signedDegrees(r[lon], r[lonFlag])
		}
		out.Rows[i] = r
	}
	return out
}

func signedDegrees(raw, flag string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	v := float64(n) * coordScale
	if strings.TrimSpace(flag) == negativeFlag {
		v = -v
	}
	return strconv.FormatFloat(v, 'f', coordPrecision, 64)
}
