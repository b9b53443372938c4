package vocab

import "strings"

// PostalCommunity represents the postal community component of an address,
// the incorporated or unincorporated municipality name.
type PostalCommunity int

const (
	GrantsPass PostalCommunity = iota
	Medford
	Merlin
)

var postalCommunityLabels = map[PostalCommunity]string{
	GrantsPass: "GRANTS PASS",
	Medford:    "MEDFORD",
	Merlin:     "MERLIN",
}

// Label returns the canonical upper-case form.
func (p PostalCommunity) Label() string {
	return postalCommunityLabels[p]
}

// MatchPostalCommunity resolves a community name, accepting the local "gp"
// shorthand for Grants Pass.
func MatchPostalCommunity(input string) (PostalCommunity, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "grants pass", "gp":
		return GrantsPass, true
	case "medford":
		return Medford, true
	case "merlin":
		return Merlin, true
	default:
		return 0, false
	}
}
