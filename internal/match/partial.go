package match

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grantspass-gis/addrpoint/internal/address"
)

// PartialRecord is one comparison row for a free-text-parsed address.
type PartialRecord struct {
	Status     Status
	Label      string
	OtherLabel string
	Longitude  float64
	Latitude   float64
}

// PartialRecords is a comparison report for partial addresses.
type PartialRecords struct {
	RunID string
	Items []PartialRecord
}

// coincidentPartial grades one partial against one candidate. The partial
// must share the address number to match at all; an explicit directional,
// street name, or post type mismatch means wrong address, so the status
// falls back to Missing rather than Divergent. Descriptive accessories
// downgrade a match to Divergent, checking only the first applicable of
// subaddress, building (when the candidate has no subaddress), and floor
// (when neither has one).
func coincidentPartial(p *address.Partial, a *address.Address) (PartialRecord, bool) {
	status := Missing
	if p.Number != nil && *p.Number == a.Number {
		status = Matching
	}
	if status == Matching && !eq(p.PreDirectional, a.PreDirectional) {
		status = Missing
	}
	if status == Matching && p.StreetName != nil && *p.StreetName != a.StreetName {
		status = Missing
	}
	if status == Matching && p.PostType != nil && *p.PostType != a.PostType {
		status = Missing
	}
	if status == Matching && !eq(p.SubaddressID, a.SubaddressID) {
		status = Divergent
	}
	if status == Matching && a.SubaddressID == nil && !eq(p.Building, a.Building) {
		status = Divergent
	}
	if status == Matching && a.SubaddressID == nil && a.Building == nil && !eq(p.Floor, a.Floor) {
		status = Divergent
	}
	if status == Missing {
		return PartialRecord{}, false
	}
	return PartialRecord{
		Status:     status,
		Label:      p.Label(),
		OtherLabel: a.Label(),
		Longitude:  a.Longitude,
		Latitude:   a.Latitude,
	}, true
}

// NewPartialRecords compares one partial against every candidate, keeping a
// record per coincident candidate. With no coincident candidate it yields
// one Missing record. When any record matches fully, the divergent records
// are dropped.
func NewPartialRecords(p *address.Partial, candidates address.Addresses) []PartialRecord {
	var out []PartialRecord
	for i := range candidates {
		if rec, ok := coincidentPartial(p, &candidates[i]); ok {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return []PartialRecord{{Status: Missing, Label: p.Label()}}
	}
	var matching []PartialRecord
	for _, rec := range out {
		if rec.Status == Matching {
			matching = append(matching, rec)
		}
	}
	if len(matching) > 0 {
		return matching
	}
	return out
}

// ComparePartials reconciles every partial against the candidate collection.
func ComparePartials(subjects []address.Partial, candidates address.Addresses, opts Options) PartialRecords {
	items := mapConcurrent(subjects, opts.Workers, opts.reporter(), "comparing partial addresses",
		func(p *address.Partial) []PartialRecord {
			return NewPartialRecords(p, candidates)
		})
	return PartialRecords{RunID: uuid.NewString(), Items: items}
}

// Filter returns the records with the given status.
func (r PartialRecords) Filter(status Status) PartialRecords {
	out := PartialRecords{RunID: r.RunID}
	for _, rec := range r.Items {
		if rec.Status == status {
			out.Items = append(out.Items, rec)
		}
	}
	return out
}

// Header returns the CSV column names for a partial match report.
func (PartialRecords) Header() []string {
	return []string{"match_status", "label", "other_label", "longitude", "latitude"}
}

// Rows renders the report for CSV export.
func (r PartialRecords) Rows() [][]string {
	out := make([][]string, len(r.Items))
	for i, rec := range r.Items {
		out[i] = []string{
			rec.Status.String(),
			rec.Label,
			rec.OtherLabel,
			fmt.Sprintf("%f", rec.Longitude),
			fmt.Sprintf("%f", rec.Latitude),
		}
	}
	return out
}
