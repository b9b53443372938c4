package match

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grantspass-gis/addrpoint/internal/address"
)

// FireRecord pairs one fire inspection with one partial comparison row, so
// the report keeps the business name next to the address grade.
type FireRecord struct {
	Status     Status
	Name       string
	Label      string
	OtherLabel string
	Longitude  float64
	Latitude   float64
}

// FireRecords is a comparison report for fire inspections.
type FireRecords struct {
	RunID string
	Items []FireRecord
}

// NewFireRecords compares one inspection's parsed address against the
// candidates, reusing the partial state machine.
func NewFireRecords(f *address.FireInspection, candidates address.Addresses) []FireRecord {
	partials := NewPartialRecords(&f.Address, candidates)
	out := make([]FireRecord, len(partials))
	for i, p := range partials {
		out[i] = FireRecord{
			Status:     p.Status,
			Name:       f.Name,
			Label:      p.Label,
			OtherLabel: p.OtherLabel,
			Longitude:  p.Longitude,
			Latitude:   p.Latitude,
		}
	}
	return out
}

// CompareFire reconciles every inspection against the candidate collection.
func CompareFire(fs address.FireInspections, candidates address.Addresses, opts Options) FireRecords {
	items := mapConcurrent(fs, opts.Workers, opts.reporter(), "comparing fire inspections",
		func(f *address.FireInspection) []FireRecord {
			return NewFireRecords(f, candidates)
		})
	return FireRecords{RunID: uuid.NewString(), Items: items}
}

// Filter returns the records with the given status.
func (r FireRecords) Filter(status Status) FireRecords {
	out := FireRecords{RunID: r.RunID}
	for _, rec := range r.Items {
		if rec.Status == status {
			out.Items = append(out.Items, rec)
		}
	}
	return out
}

// Header returns the CSV column names for a fire inspection match report.
func (FireRecords) Header() []string {
	return []string{"match_status", "name", "label", "other_label", "longitude", "latitude"}
}

// Rows renders the report for CSV export.
func (r FireRecords) Rows() [][]string {
	out := make([][]string, len(r.Items))
	for i, rec := range r.Items {
		out[i] = []string{
			rec.Status.String(),
			rec.Name,
			rec.Label,
			rec.OtherLabel,
			fmt.Sprintf("%f", rec.Longitude),
			fmt.Sprintf("%f", rec.Latitude),
		}
	}
	return out
}
