package vocab

import "strings"

// PreType represents a street name pre type. Some valid post types live here
// instead, because streets named "Mount" or "Highway" would otherwise
// truncate at the wrong token during parsing.
type PreType int

const (
	PreTypeAvenue PreType = iota
	PreTypeHighway
	PreTypeInterstate
	PreTypeMount
)

var preTypeLabels = map[PreType]string{
	PreTypeAvenue:     "AVENUE",
	PreTypeHighway:    "HIGHWAY",
	PreTypeInterstate: "INTERSTATE",
	PreTypeMount:      "MOUNT",
}

// Label returns the fully spelled-out form.
func (p PreType) Label() string {
	return preTypeLabels[p]
}

// MatchPreType recognizes full words and common abbreviations.
func MatchPreType(input string) (PreType, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "avenue", "ave":
		return PreTypeAvenue, true
	case "highway", "hwy":
		return PreTypeHighway, true
	case "interstate":
		return PreTypeInterstate, true
	case "mount", "mt":
		return PreTypeMount, true
	default:
		return 0, false
	}
}

// PreModifier represents a street name pre modifier.
type PreModifier int

const (
	Old PreModifier = iota
	UpperMod
	LowerMod
	Right
	Left
	Northbound
)

var preModifierLabels = map[PreModifier]string{
	Old:        "OLD",
	UpperMod:   "UPPER",
	LowerMod:   "LOWER",
	Right:      "RIGHT",
	Left:       "LEFT",
	Northbound: "NORTHBOUND",
}

// Label returns the fully spelled-out form.
func (p PreModifier) Label() string {
	return preModifierLabels[p]
}

// MatchPreModifier recognizes the modifier words in local use.
func MatchPreModifier(input string) (PreModifier, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "old":
		return Old, true
	case "upper":
		return UpperMod, true
	case "lower":
		return LowerMod, true
	case "right":
		return Right, true
	case "left":
		return Left, true
	case "northbound":
		return Northbound, true
	default:
		return 0, false
	}
}

// Separator represents the separator element between a pre type and the
// street name, as in "AVENUE OF THE OAKS".
type Separator int

// OfThe is the only separator in local use.
const OfThe Separator = iota

// Label returns the canonical form.
func (s Separator) Label() string {
	return "OF THE"
}

// MatchSeparator recognizes the separator phrase.
func MatchSeparator(input string) (Separator, bool) {
	if strings.ToLower(strings.TrimSpace(input)) == "of the" {
		return OfThe, true
	}
	return 0, false
}
