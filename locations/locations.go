// Package locations holds the Kenya administrative hierarchy used by the
// signup wizard's cascading selects: County > Sub-County > Ward > Area.
// The tree is immutable; every operation is a pure lookup keyed by path,
// returning only the immediate child level.
package locations

// Kenya bounding box.
const (
	MinLat = -4.7
	MaxLat = 5.5
	MinLng = 33.9
	MaxLng = 41.9
)

type Ward struct {
	Name  string   `json:"name"`
	Areas []string `json:"areas,omitempty"`
}

type SubCounty struct {
	Name  string `json:"name"`
	Wards []Ward `json:"wards"`
}

type County struct {
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	SubCounties []SubCounty `json:"subCounties"`
}

// commonAreas is the generic fallback offered when a ward has no curated
// area list.
var commonAreas = []string{
	"City Center", "Shopping Mall Area", "Residential Estate",
	"Industrial Area", "Commercial District", "Hospital Area",
	"School Zone", "Market Area", "Government Offices", "Estate",
}

// Counties returns all county names in catalog order.
func Counties() []string {
	out := make([]string, 0, len(counties))
	for _, c := range counties {
		out = append(out, c.Name)
	}
	return out
}

// SubCounties returns the sub-county names of a county, empty when unknown.
func SubCounties(county string) []string {
	c := findCounty(county)
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.SubCounties))
	for _, sc := range c.SubCounties {
		out = append(out, sc.Name)
	}
	return out
}

// Wards returns the ward names under a county/sub-county path.
func Wards(county, subCounty string) []string {
	sc := findSubCounty(county, subCounty)
	if sc == nil {
		return nil
	}
	out := make([]string, 0, len(sc.Wards))
	for _, w := range sc.Wards {
		out = append(out, w.Name)
	}
	return out
}

// Areas returns the specific areas of a ward. Wards without curated areas
// fall back to the generic list, matching the original select population.
func Areas(county, subCounty, ward string) []string {
	sc := findSubCounty(county, subCounty)
	if sc == nil {
		return nil
	}
	for _, w := range sc.Wards {
		if w.Name == ward {
			if len(w.Areas) == 0 {
				out := make([]string, len(commonAreas))
				copy(out, commonAreas)
				return out
			}
			out := make([]string, len(w.Areas))
			copy(out, w.Areas)
			return out
		}
	}
	return nil
}

// ValidPath reports whether the county/sub-county/ward triple exists.
func ValidPath(county, subCounty, ward string) bool {
	sc := findSubCounty(county, subCounty)
	if sc == nil {
		return false
	}
	for _, w := range sc.Wards {
		if w.Name == ward {
			return true
		}
	}
	return false
}

// WithinKenya reports whether the coordinate pair falls inside Kenya's
// bounding box.
func WithinKenya(lat, lng float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= MinLng && lng <= MaxLng
}

func findCounty(name string) *County {
	for i := range counties {
		if counties[i].Name == name {
			return &counties[i]
		}
	}
	return nil
}

func findSubCounty(county, subCounty string) *SubCounty {
	c := findCounty(county)
	if c == nil {
		return nil
	}
	for i := range c.SubCounties {
		if c.SubCounties[i].Name == subCounty {
			return &c.SubCounties[i]
		}
	}
	return nil
}
