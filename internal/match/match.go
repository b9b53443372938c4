// Package match reconciles address collections pairwise, producing graded
// match records: Matching when identity and descriptive fields agree,
// Divergent when identity fields agree but a descriptive field differs, and
// Missing when no candidate shares the identity fields. Absence of a match
// is a normal result, never an error.
package match

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/progress"
)

// Status grades one comparison result.
type Status int

const (
	Missing Status = iota
	Divergent
	Matching
)

func (s Status) String() string {
	switch s {
	case Matching:
		return "matching"
	case Divergent:
		return "divergent"
	default:
		return "missing"
	}
}

// ParseStatus resolves a status name from user input.
func ParseStatus(input string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "matching":
		return Matching, nil
	case "divergent":
		return Divergent, nil
	case "missing":
		return Missing, nil
	default:
		return 0, errors.Errorf("unknown match status %q", input)
	}
}

// Options configures a batch comparison.
type Options struct {
	// Workers is the parallel worker count; values below one run serially.
	Workers int
	// Reporter receives advisory progress events.
	Reporter progress.Reporter
}

func (o Options) reporter() progress.Reporter {
	if o.Reporter == nil {
		return progress.Nop()
	}
	return o.Reporter
}

// Record is one persisted comparison row.
type Record struct {
	Status     Status
	Label      string
	Mismatches string
	SelfID     string
	OtherID    string
	Longitude  float64
	Latitude   float64
}

// Records is a comparison report. RunID identifies the batch run that
// produced it.
type Records struct {
	RunID string
	Items []Record
}

// NewRecords compares one subject against every candidate. Every coincident
// candidate yields its own record; the scan never exits early. When no
// candidate is coincident the subject collapses to exactly one synthesized
// Missing record, so a subject always yields at least one record.
func NewRecords(subject *address.Address, candidates address.Addresses) []Record {
	var out []Record
	for i := range candidates {
		c := &candidates[i]
		m := subject.Coincident(c)
		if !m.Coincident {
			continue
		}
		status := Matching
		if len(m.Mismatches) > 0 {
			status = Divergent
		}
		out = append(out, Record{
			Status:     status,
			Label:      subject.Label(),
			Mismatches: joinMismatches(m.Mismatches),
			SelfID:     subject.ObjectID,
			OtherID:    c.ObjectID,
			Longitude:  subject.Longitude,
			Latitude:   subject.Latitude,
		})
	}
	if len(out) == 0 {
		out = append(out, Record{
			Status:    Missing,
			Label:     subject.Label(),
			SelfID:    subject.ObjectID,
			Longitude: subject.Longitude,
			Latitude:  subject.Latitude,
		})
	}
	return out
}

func joinMismatches(ms []address.Mismatch) string {
	if len(ms) == 0 {
		return ""
	}
	details := make([]string, len(ms))
	for i, m := range ms {
		details[i] = m.Detail
	}
	return strings.Join(details, "; ")
}

// Compare reconciles every subject against the candidate collection.
// Subjects are partitioned across workers; output concatenates in subject
// input order, with within-subject records in candidate input order.
func Compare(subjects, candidates address.Addresses, opts Options) Records {
	items := mapConcurrent(subjects, opts.Workers, opts.reporter(), "comparing addresses",
		func(subject *address.Address) []Record {
			return NewRecords(subject, candidates)
		})
	return Records{RunID: uuid.NewString(), Items: items}
}

// Filter returns the records with the given status. Pure and idempotent.
func (r Records) Filter(status Status) Records {
	out := Records{RunID: r.RunID}
	for _, rec := range r.Items {
		if rec.Status == status {
			out.Items = append(out.Items, rec)
		}
	}
	return out
}

// Header returns the CSV column names for a match report.
func (Records) Header() []string {
	return []string{"match_status", "label", "mismatches", "self_id", "other_id", "longitude", "latitude"}
}

// Rows renders the report for CSV export.
func (r Records) Rows() [][]string {
	out := make([][]string, len(r.Items))
	for i, rec := range r.Items {
		out[i] = []string{
			rec.Status.String(),
			rec.Label,
			rec.Mismatches,
			rec.SelfID,
			rec.OtherID,
			fmt.Sprintf("%f", rec.Longitude),
			fmt.Sprintf("%f", rec.Latitude),
		}
	}
	return out
}
