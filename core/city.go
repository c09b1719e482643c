package core

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityNames is the closed set of supported cities, keyed by canonical
// (lowercase) name. The knowledge store, prayer table, and budget
// multipliers all use these keys.
var cityNames = map[string]struct{}{
	"dubai":          {},
	"abu dhabi":      {},
	"sharjah":        {},
	"ajman":          {},
	"ras al khaimah": {},
	"fujairah":       {},
	"umm al quwain":  {},
}

var titleCaser = cases.Title(language.English)

// NormalizeCity canonicalizes a user-supplied city name: lowercase,
// trimmed, inner whitespace collapsed.
func NormalizeCity(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// IsCity reports whether name (after normalization) is a supported city.
func IsCity(name string) bool {
	_, ok := cityNames[NormalizeCity(name)]
	return ok
}

// Cities returns the supported canonical city names in sorted order.
func Cities() []string {
	out := make([]string, 0, len(cityNames))
	for name := range cityNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DisplayName renders a canonical city name for user-facing text,
// e.g. "ras al khaimah" -> "Ras Al Khaimah".
func DisplayName(city string) string {
	return titleCaser.String(NormalizeCity(city))
}

// CityList renders the supported cities as a comma-separated display
// string for clarification messages.
func CityList() string {
	names := Cities()
	for i, n := range names {
		names[i] = DisplayName(n)
	}
	return strings.Join(names, ", ")
}

// FindCityIn scans free text for the earliest mention of a supported
// city and returns its canonical name with the byte index of the match.
// The earliest mention wins when several cities appear.
func FindCityIn(text string) (city string, index int, ok bool) {
	lowered := strings.ToLower(text)
	index = -1
	for name := range cityNames {
		if i := strings.Index(lowered, name); i >= 0 && (index == -1 || i < index) {
			city, index = name, i
		}
	}
	return city, index, index >= 0
}
