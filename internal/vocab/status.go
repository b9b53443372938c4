package vocab

import "strings"

// Status represents the local lifecycle status of an address as assigned by
// the addressing authority.
type Status int

const (
	// StatusOther is the default for blank or unclassified status values.
	StatusOther Status = iota
	StatusCurrent
	StatusPending
	StatusRetired
	StatusTemporary
	StatusVirtual
)

var statusLabels = map[Status]string{
	StatusOther:     "OTHER",
	StatusCurrent:   "CURRENT",
	StatusPending:   "PENDING",
	StatusRetired:   "RETIRED",
	StatusTemporary: "TEMPORARY",
	StatusVirtual:   "VIRTUAL",
}

// Label returns the canonical upper-case form.
func (s Status) Label() string {
	return statusLabels[s]
}

// MatchStatus resolves a status value. Unrecognized or blank input maps to
// StatusOther rather than failing, since unclassified is a valid state.
func MatchStatus(input string) Status {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "current":
		return StatusCurrent
	case "pending":
		return StatusPending
	case "retired":
		return StatusRetired
	case "temporary":
		return StatusTemporary
	case "virtual":
		return StatusVirtual
	default:
		return StatusOther
	}
}
