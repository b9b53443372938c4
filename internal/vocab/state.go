package vocab

import "strings"

// State represents a US state or territory name component.
type State int

const (
	Oregon State = iota
	Alabama
	Alaska
	Arizona
	Arkansas
	California
	Colorado
	Connecticut
	Delaware
	DistrictOfColumbia
	Florida
	Georgia
	Hawaii
	Idaho
	Illinois
	Indiana
	Iowa
	Kansas
	Kentucky
	Louisiana
	Maine
	Maryland
	Massachusetts
	Michigan
	Minnesota
	Mississippi
	Missouri
	Montana
	Nebraska
	Nevada
	NewHampshire
	NewJersey
	NewMexico
	NewYork
	NorthCarolina
	NorthDakota
	Ohio
	Oklahoma
	Pennsylvania
	RhodeIsland
	SouthCarolina
	SouthDakota
	Tennessee
	Texas
	Utah
	Vermont
	Virginia
	Washington
	WestVirginia
	Wisconsin
	Wyoming
)

type stateEntry struct {
	label  string
	abbrev string
}

var states = map[State]stateEntry{
	Oregon:             {"OREGON", "OR"},
	Alabama:            {"ALABAMA", "AL"},
	Alaska:             {"ALASKA", "AK"},
	Arizona:            {"ARIZONA", "AZ"},
	Arkansas:           {"ARKANSAS", "AR"},
	California:         {"CALIFORNIA", "CA"},
	Colorado:           {"COLORADO", "CO"},
	Connecticut:        {"CONNECTICUT", "CT"},
	Delaware:           {"DELAWARE", "DE"},
	DistrictOfColumbia: {"DISTRICT OF COLUMBIA", "DC"},
	Florida:            {"FLORIDA", "FL"},
	Georgia:            {"GEORGIA", "GA"},
	Hawaii:             {"HAWAII", "HI"},
	Idaho:              {"IDAHO", "ID"},
	Illinois:           {"ILLINOIS", "IL"},
	Indiana:            {"INDIANA", "IN"},
	Iowa:               {"IOWA", "IA"},
	Kansas:             {"KANSAS", "KS"},
	Kentucky:           {"KENTUCKY", "KY"},
	Louisiana:          {"LOUISIANA", "LA"},
	Maine:              {"MAINE", "ME"},
	Maryland:           {"MARYLAND", "MD"},
	Massachusetts:      {"MASSACHUSETTS", "MA"},
	Michigan:           {"MICHIGAN", "MI"},
	Minnesota:          {"MINNESOTA", "MN"},
	Mississippi:        {"MISSISSIPPI", "MS"},
	Missouri:           {"MISSOURI", "MO"},
	Montana:            {"MONTANA", "MT"},
	Nebraska:           {"NEBRASKA", "NE"},
	Nevada:             {"NEVADA", "NV"},
	NewHampshire:       {"NEW HAMPSHIRE", "NH"},
	NewJersey:          {"NEW JERSEY", "NJ"},
	NewMexico:          {"NEW MEXICO", "NM"},
	NewYork:            {"NEW YORK", "NY"},
	NorthCarolina:      {"NORTH CAROLINA", "NC"},
	NorthDakota:        {"NORTH DAKOTA", "ND"},
	Ohio:               {"OHIO", "OH"},
	Oklahoma:           {"OKLAHOMA", "OK"},
	Pennsylvania:       {"PENNSYLVANIA", "PA"},
	RhodeIsland:        {"RHODE ISLAND", "RI"},
	SouthCarolina:      {"SOUTH CAROLINA", "SC"},
	SouthDakota:        {"SOUTH DAKOTA", "SD"},
	Tennessee:          {"TENNESSEE", "TN"},
	Texas:              {"TEXAS", "TX"},
	Utah:               {"UTAH", "UT"},
	Vermont:            {"VERMONT", "VT"},
	Virginia:           {"VIRGINIA", "VA"},
	Washington:         {"WASHINGTON", "WA"},
	WestVirginia:       {"WEST VIRGINIA", "WV"},
	Wisconsin:          {"WISCONSIN", "WI"},
	Wyoming:            {"WYOMING", "WY"},
}

var (
	stateAbbrevLookup = map[string]State{}
	stateMixedLookup  = map[string]State{}
)

func init() {
	for v, e := range states {
		stateAbbrevLookup[strings.ToLower(e.abbrev)] = v
		stateMixedLookup[strings.ToLower(e.label)] = v
	}
}

// Label returns the fully spelled-out form.
func (s State) Label() string {
	return states[s].label
}

// Abbreviation returns the two-letter postal abbreviation.
func (s State) Abbreviation() string {
	return states[s].abbrev
}

// MatchStateAbbreviated recognizes only two-letter postal abbreviations.
func MatchStateAbbreviated(input string) (State, bool) {
	s, ok := stateAbbrevLookup[strings.ToLower(strings.TrimSpace(input))]
	return s, ok
}

// MatchState recognizes full state names, falling back to the postal
// abbreviations.
func MatchState(input string) (State, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if s, ok := stateMixedLookup[key]; ok {
		return s, true
	}
	return MatchStateAbbreviated(key)
}
