package schedule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeName trims surrounding whitespace and title-cases a stop or
// school name for display, so minor ingestion inconsistencies ("JFK
// elementary  ", "jfk ELEMENTARY") collapse to one canonical form. No
// pipeline stage calls it; the LNS refiner's "same school" relatedness
// compares Route.SchoolID, not names.
func NormalizeName(name string) string {
	trimmed := strings.Join(strings.Fields(name), " ")

	return titleCaser.String(trimmed)
}

// NormalizeStops applies NormalizeName to every stop's Name in place and
// returns stops for chaining.
func NormalizeStops(stops []Stop) []Stop {
	for i := range stops {
		stops[i].Name = NormalizeName(stops[i].Name)
	}

	return stops
}
