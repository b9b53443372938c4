package vocab

import "strings"

// PostType represents a street name post type. The set is open ended; new
// variants are added as county data introduces them. Streets named "Park" and
// "Fall" are deliberately absent, they classify as pre types so the parser
// does not truncate street names at those words.
type PostType int

const (
	Alley PostType = iota
	Avenue
	Bend
	Boulevard
	Branch
	Bridge
	Bypass
	Causeway
	Center
	Circle
	Cliff
	Common
	Corner
	Court
	Cove
	Creek
	Crescent
	Crest
	Crossing
	Cutoff
	Dale
	Drive
	Expressway
	Extension
	Freeway
	Garden
	Gardens
	Gateway
	Glen
	Grove
	Harbor
	Heights
	Highway
	Hill
	Hollow
	Island
	Junction
	Knoll
	Lake
	Landing
	Lane
	Loop
	Meadow
	Meadows
	Mill
	Motorway
	Orchard
	Oval
	Overpass
	Parkway
	Pass
	Path
	Pike
	Place
	Plaza
	Point
	Ridge
	River
	Road
	Row
	Run
	Shore
	Spring
	Springs
	Spur
	Square
	Street
	Summit
	Terrace
	Trail
	Turnpike
	Valley
	View
	Village
	Vista
	Walk
	Way
)

type postTypeEntry struct {
	label  string
	abbrev string
}

var postTypes = map[PostType]postTypeEntry{
	Alley:      {"ALLEY", "ALY"},
	Avenue:     {"AVENUE", "AVE"},
	Bend:       {"BEND", "BND"},
	Boulevard:  {"BOULEVARD", "BLVD"},
	Branch:     {"BRANCH", "BR"},
	Bridge:     {"BRIDGE", "BRG"},
	Bypass:     {"BYPASS", "BYP"},
	Causeway:   {"CAUSEWAY", "CSWY"},
	Center:     {"CENTER", "CTR"},
	Circle:     {"CIRCLE", "CIR"},
	Cliff:      {"CLIFF", "CLF"},
	Common:     {"COMMON", "CMN"},
	Corner:     {"CORNER", "COR"},
	Court:      {"COURT", "CT"},
	Cove:       {"COVE", "CV"},
	Creek:      {"CREEK", "CRK"},
	Crescent:   {"CRESCENT", "CRES"},
	Crest:      {"CREST", "CRST"},
	Crossing:   {"CROSSING", "XING"},
	Cutoff:     {"CUTOFF", "CUTOFF"},
	Dale:       {"DALE", "DL"},
	Drive:      {"DRIVE", "DR"},
	Expressway: {"EXPRESSWAY", "EXPY"},
	Extension:  {"EXTENSION", "EXT"},
	Freeway:    {"FREEWAY", "FWY"},
	Garden:     {"GARDEN", "GDN"},
	Gardens:    {"GARDENS", "GDNS"},
	Gateway:    {"GATEWAY", "GTWY"},
	Glen:       {"GLEN", "GLN"},
	Grove:      {"GROVE", "GRV"},
	Harbor:     {"HARBOR", "HBR"},
	Heights:    {"HEIGHTS", "HTS"},
	Highway:    {"HIGHWAY", "HWY"},
	Hill:       {"HILL", "HL"},
	Hollow:     {"HOLLOW", "HOLW"},
	Island:     {"ISLAND", "IS"},
	Junction:   {"JUNCTION", "JCT"},
	Knoll:      {"KNOLL", "KNL"},
	Lake:       {"LAKE", "LK"},
	Landing:    {"LANDING", "LNDG"},
	Lane:       {"LANE", "LN"},
	Loop:       {"LOOP", "LOOP"},
	Meadow:     {"MEADOW", "MDW"},
	Meadows:    {"MEADOWS", "MDWS"},
	Mill:       {"MILL", "ML"},
	Motorway:   {"MOTORWAY", "MTWY"},
	Orchard:    {"ORCHARD", "ORCH"},
	Oval:       {"OVAL", "OVAL"},
	Overpass:   {"OVERPASS", "OPAS"},
	Parkway:    {"PARKWAY", "PKWY"},
	Pass:       {"PASS", "PASS"},
	Path:       {"PATH", "PATH"},
	Pike:       {"PIKE", "PIKE"},
	Place:      {"PLACE", "PL"},
	Plaza:      {"PLAZA", "PLZ"},
	Point:      {"POINT", "PT"},
	Ridge:      {"RIDGE", "RDG"},
	River:      {"RIVER", "RIV"},
	Road:       {"ROAD", "RD"},
	Row:        {"ROW", "ROW"},
	Run:        {"RUN", "RUN"},
	Shore:      {"SHORE", "SHR"},
	Spring:     {"SPRING", "SPG"},
	Springs:    {"SPRINGS", "SPGS"},
	Spur:       {"SPUR", "SPUR"},
	Square:     {"SQUARE", "SQ"},
	Street:     {"STREET", "ST"},
	Summit:     {"SUMMIT", "SMT"},
	Terrace:    {"TERRACE", "TER"},
	Trail:      {"TRAIL", "TRL"},
	Turnpike:   {"TURNPIKE", "TPKE"},
	Valley:     {"VALLEY", "VLY"},
	View:       {"VIEW", "VW"},
	Village:    {"VILLAGE", "VLG"},
	Vista:      {"VISTA", "VIS"},
	Walk:       {"WALK", "WALK"},
	Way:        {"WAY", "WAY"},
}

// postTypeAlternates holds spellings seen in local data that are neither the
// full word nor the standard abbreviation.
var postTypeAlternates = map[string]PostType{
	"av":   Avenue,
	"avn":  Avenue,
	"boul": Boulevard,
	"crt":  Court,
	"drv":  Drive,
	"hiwy": Highway,
	"hway": Highway,
	"terr": Terrace,
	"tr":   Trail,
	"wy":   Way,
}

var (
	postTypeAbbrevLookup = map[string]PostType{}
	postTypeMixedLookup  = map[string]PostType{}
)

func init() {
	for v, e := range postTypes {
		postTypeAbbrevLookup[strings.ToLower(e.abbrev)] = v
		postTypeMixedLookup[strings.ToLower(e.label)] = v
	}
	for s, v := range postTypeAlternates {
		postTypeMixedLookup[s] = v
	}
}

// Label returns the fully spelled-out form.
func (p PostType) Label() string {
	return postTypes[p].label
}

// Abbreviation returns the standard postal abbreviation.
func (p PostType) Abbreviation() string {
	return postTypes[p].abbrev
}

// MatchPostTypeAbbreviated recognizes only the postal abbreviations.
func MatchPostTypeAbbreviated(input string) (PostType, bool) {
	p, ok := postTypeAbbrevLookup[strings.ToLower(strings.TrimSpace(input))]
	return p, ok
}

// MatchPostType recognizes full words and local alternate spellings, falling
// back to the postal abbreviations.
func MatchPostType(input string) (PostType, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if p, ok := postTypeMixedLookup[key]; ok {
		return p, true
	}
	return MatchPostTypeAbbreviated(key)
}
