package vocab

import "strings"

// SubaddressType represents the type element of a subaddress, following the
// NENA unit type set.
type SubaddressType int

const (
	Apartment SubaddressType = iota
	Basement
	Building
	Department
	Floor
	Front
	Hanger
	Key
	Laundry
	Lobby
	Lot
	Lower
	Office
	Penthouse
	Pier
	Rear
	Rec
	Room
	Side
	Slip
	Space
	Stop
	Suite
	Trailer
	Unit
	Upper
)

type subaddressEntry struct {
	label  string
	abbrev string
}

var subaddressTypes = map[SubaddressType]subaddressEntry{
	Apartment:  {"APARTMENT", "APT"},
	Basement:   {"BASEMENT", "BSMT"},
	Building:   {"BUILDING", "BLDG"},
	Department: {"DEPARTMENT", "DEPT"},
	Floor:      {"FLOOR", "FL"},
	Front:      {"FRONT", "FRNT"},
	Hanger:     {"HANGER", "HNGR"},
	Key:        {"KEY", "KEY"},
	Laundry:    {"LAUNDRY", "LAUN"},
	Lobby:      {"LOBBY", "LBBY"},
	Lot:        {"LOT", "LOT"},
	Lower:      {"LOWER", "LOWR"},
	Office:     {"OFFICE", "OFC"},
	Penthouse:  {"PENTHOUSE", "PH"},
	Pier:       {"PIER", "PIER"},
	Rear:       {"REAR", "REAR"},
	Rec:        {"REC", "REC"},
	Room:       {"ROOM", "RM"},
	Side:       {"SIDE", "SIDE"},
	Slip:       {"SLIP", "SLIP"},
	Space:      {"SPACE", "SPC"},
	Stop:       {"STOP", "STOP"},
	Suite:      {"SUITE", "STE"},
	Trailer:    {"TRAILER", "TRLR"},
	Unit:       {"UNIT", "UNIT"},
	Upper:      {"UPPER", "UPPR"},
}

var (
	subaddressAbbrevLookup = map[string]SubaddressType{}
	subaddressMixedLookup  = map[string]SubaddressType{}
)

func init() {
	for v, e := range subaddressTypes {
		subaddressAbbrevLookup[strings.ToLower(e.abbrev)] = v
		subaddressMixedLookup[strings.ToLower(e.label)] = v
	}
}

// Label returns the fully spelled-out form.
func (s SubaddressType) Label() string {
	return subaddressTypes[s].label
}

// Abbreviation returns the USPS unit designator abbreviation.
func (s SubaddressType) Abbreviation() string {
	return subaddressTypes[s].abbrev
}

// MatchSubaddressTypeAbbreviated recognizes only the USPS unit designators.
func MatchSubaddressTypeAbbreviated(input string) (SubaddressType, bool) {
	s, ok := subaddressAbbrevLookup[strings.ToLower(strings.TrimSpace(input))]
	return s, ok
}

// MatchSubaddressType recognizes full words, falling back to the USPS
// designators.
func MatchSubaddressType(input string) (SubaddressType, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if s, ok := subaddressMixedLookup[key]; ok {
		return s, true
	}
	return MatchSubaddressTypeAbbreviated(key)
}
