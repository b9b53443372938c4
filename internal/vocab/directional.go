// Package vocab defines the closed component vocabularies used to normalize
// address records, with case-insensitive matching over postal abbreviations
// and full-word spellings.
package vocab

import "strings"

// Directional represents a street name pre or post directional.
type Directional int

const (
	North Directional = iota
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
)

var directionalLabels = map[Directional]string{
	North:     "NORTH",
	South:     "SOUTH",
	East:      "EAST",
	West:      "WEST",
	Northeast: "NORTHEAST",
	Northwest: "NORTHWEST",
	Southeast: "SOUTHEAST",
	Southwest: "SOUTHWEST",
}

var directionalAbbrevs = map[Directional]string{
	North:     "N",
	South:     "S",
	East:      "E",
	West:      "W",
	Northeast: "NE",
	Northwest: "NW",
	Southeast: "SE",
	Southwest: "SW",
}

// directionalAbbrevLookup is keyed by lower-cased postal abbreviation.
var directionalAbbrevLookup = map[string]Directional{
	"n":  North,
	"s":  South,
	"e":  East,
	"w":  West,
	"ne": Northeast,
	"nw": Northwest,
	"se": Southeast,
	"sw": Southwest,
}

// directionalMixedLookup covers the full-word and period-punctuated spellings
// seen in agency exports.
var directionalMixedLookup = map[string]Directional{
	"north":     North,
	"n.":        North,
	"south":     South,
	"s.":        South,
	"east":      East,
	"e.":        East,
	"west":      West,
	"w.":        West,
	"northeast": Northeast,
	"n.e.":      Northeast,
	"ne.":       Northeast,
	"northwest": Northwest,
	"n.w.":      Northwest,
	"nw.":       Northwest,
	"southeast": Southeast,
	"s.e.":      Southeast,
	"se.":       Southeast,
	"southwest": Southwest,
	"s.w.":      Southwest,
	"sw.":       Southwest,
}

// Label returns the fully spelled-out form.
func (d Directional) Label() string {
	return directionalLabels[d]
}

// Abbreviation returns the standard postal abbreviation.
func (d Directional) Abbreviation() string {
	return directionalAbbrevs[d]
}

// MatchDirectionalAbbreviated recognizes only the official postal
// abbreviations. The parser relies on this strictness so that street names
// spelled like directionals are not misread.
func MatchDirectionalAbbreviated(input string) (Directional, bool) {
	d, ok := directionalAbbrevLookup[strings.ToLower(strings.TrimSpace(input))]
	return d, ok
}

// MatchDirectional recognizes full words and punctuated forms, falling back
// to the postal abbreviations.
func MatchDirectional(input string) (Directional, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if d, ok := directionalMixedLookup[key]; ok {
		return d, true
	}
	return MatchDirectionalAbbreviated(key)
}
