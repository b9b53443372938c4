package address

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// Addresses is a collection of address records. Subsetting operations are
// pure and return new collections.
type Addresses []Address

// Filter is a closed set of collection predicates, validated when parsed
// from user input rather than dispatched on raw strings.
type Filter int

const (
	// FilterDuplicate keeps records whose label occurs more than once.
	FilterDuplicate Filter = iota
	// FilterCurrent keeps records with current status.
	FilterCurrent
	// FilterRetired keeps records with retired status.
	FilterRetired
)

// ParseFilter resolves a filter name from user input.
func ParseFilter(input string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "duplicate", "duplicates":
		return FilterDuplicate, nil
	case "current":
		return FilterCurrent, nil
	case "retired":
		return FilterRetired, nil
	default:
		return 0, errors.Errorf("unknown filter %q", input)
	}
}

// Field names an address field usable for value subsetting.
type Field int

const (
	FieldLabel Field = iota
	FieldStreetName
	FieldPreDirectional
	FieldPostType
)

// ParseField resolves a field name from user input.
func ParseField(input string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "label":
		return FieldLabel, nil
	case "street_name", "street":
		return FieldStreetName, nil
	case "pre_directional", "predir":
		return FieldPreDirectional, nil
	case "post_type", "posttype":
		return FieldPostType, nil
	default:
		return 0, errors.Errorf("unknown field %q", input)
	}
}

// Filter returns the records selected by the predicate.
func (as Addresses) Filter(f Filter) Addresses {
	switch f {
	case FilterDuplicate:
		return as.Duplicates()
	case FilterCurrent:
		return as.filterStatus(vocab.StatusCurrent)
	case FilterRetired:
		return as.filterStatus(vocab.StatusRetired)
	}
	return nil
}

func (as Addresses) filterStatus(status vocab.Status) Addresses {
	var out Addresses
	for i := range as {
		if as[i].Status == status {
			out = append(out, as[i])
		}
	}
	return out
}

// FilterField returns the records whose named field renders equal to value,
// compared case-insensitively.
func (as Addresses) FilterField(f Field, value string) Addresses {
	want := strings.ToUpper(strings.TrimSpace(value))
	var out Addresses
	for i := range as {
		a := &as[i]
		var got string
		switch f {
		case FieldLabel:
			got = a.Label()
		case FieldStreetName:
			got = a.StreetName
		case FieldPreDirectional:
			if a.PreDirectional == nil {
				continue
			}
			got = a.PreDirectional.Abbreviation()
		case FieldPostType:
			got = a.PostType.Abbreviation()
		}
		if strings.ToUpper(got) == want {
			out = append(out, *a)
		}
	}
	return out
}

// Duplicates returns every record whose label occurs more than once in the
// collection. All records sharing a duplicated label are returned, which
// makes the operation idempotent.
func (as Addresses) Duplicates() Addresses {
	seen := make(map[string]int, len(as))
	for i := range as {
		seen[as[i].Label()]++
	}
	var out Addresses
	for i := range as {
		if seen[as[i].Label()] > 1 {
			out = append(out, as[i])
		}
	}
	return out
}

// OrphanStreets returns the complete street names present in this collection
// but absent from other, sorted.
func (as Addresses) OrphanStreets(other Addresses) []string {
	theirs := make(map[string]struct{}, len(other))
	for i := range other {
		theirs[other[i].CompleteStreetName()] = struct{}{}
	}
	orphans := make(map[string]struct{})
	for i := range as {
		name := as[i].CompleteStreetName()
		if _, ok := theirs[name]; !ok {
			orphans[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(orphans))
	for name := range orphans {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// legacyStreets maps legacy street spellings that embed the post type in the
// street name to the current vocabulary.
var legacyStreets = map[string]struct {
	name string
	post vocab.PostType
}{
	"BEAVILLA VIEW":   {"BEAVILLA", vocab.View},
	"COLUMBIA CREST":  {"COLUMBIA", vocab.Crest},
	"FORMOSA GARDENS": {"FORMOSA", vocab.Gardens},
	"HILLTOP VIEW":    {"HILLTOP", vocab.View},
	"MARILEE ROW":     {"MARILEE", vocab.Row},
	"MEADOW GLEN":     {"MEADOW", vocab.Glen},
	"ROBERTSON CREST": {"ROBERTSON", vocab.Crest},
	"QUAIL CROSSING":  {"QUAIL", vocab.Crossing},
}

// Standardize canonicalizes legacy street spellings in place. This is the
// only mutation permitted after import.
func (as Addresses) Standardize() int {
	changed := 0
	for i := range as {
		if repl, ok := legacyStreets[as[i].StreetName]; ok {
			as[i].StreetName = repl.name
			as[i].PostType = repl.post
			changed++
		}
	}
	return changed
}

// Labels returns the label of every record in input order.
func (as Addresses) Labels() []string {
	out := make([]string, len(as))
	for i := range as {
		out[i] = as[i].Label()
	}
	return out
}
