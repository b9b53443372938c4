package match

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/grantspass-gis/addrpoint/internal/address"
)

// BusinessRecord is one comparison row for a licensed business.
type BusinessRecord struct {
	Status       Status
	Label        string
	CompanyName  string
	ContactName  string
	BusinessType string
	DBA          string
	License      string
	Expires      string
	OtherLabel   string
	Longitude    float64
	Latitude     float64
}

// BusinessRecords is a comparison report for business licenses.
type BusinessRecords struct {
	RunID string
	Items []BusinessRecord
}

// coincidentBusiness grades one license against one candidate. Identity is
// address number, pre directional, trimmed street name, and post type; the
// city and state on license records are too unreliable to participate. A
// subaddress or zip difference downgrades the match to Divergent.
func coincidentBusiness(b *address.BusinessLicense, a *address.Address) (BusinessRecord, bool) {
	if b.Number != a.Number ||
		!eq(b.PreDirectional, a.PreDirectional) ||
		strings.TrimSpace(b.StreetName) != a.StreetName ||
		b.PostType == nil || *b.PostType != a.PostType {
		return BusinessRecord{}, false
	}
	status := Matching
	if !eq(b.SubaddressID, a.SubaddressID) || b.Zip != a.Zip {
		status = Divergent
	}
	rec := missingBusinessRecord(b)
	rec.Status = status
	rec.OtherLabel = a.Label()
	rec.Longitude = a.Longitude
	rec.Latitude = a.Latitude
	return rec, true
}

func missingBusinessRecord(b *address.BusinessLicense) BusinessRecord {
	return BusinessRecord{
		Status:       Missing,
		Label:        b.Label(),
		CompanyName:  b.Company(),
		ContactName:  deref(b.ContactName),
		BusinessType: b.BusinessType,
		DBA:          deref(b.DBA),
		License:      b.License,
		Expires:      b.Expires,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NewBusinessRecords compares one license against every candidate. The
// result trims to the first fully matching record when one exists, else to
// the divergent set, else to the single synthesized Missing record.
func NewBusinessRecords(b *address.BusinessLicense, candidates address.Addresses) []BusinessRecord {
	var records []BusinessRecord
	for i := range candidates {
		if rec, ok := coincidentBusiness(b, &candidates[i]); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return []BusinessRecord{missingBusinessRecord(b)}
	}
	var divergent []BusinessRecord
	for _, rec := range records {
		if rec.Status == Matching {
			return []BusinessRecord{rec}
		}
		if rec.Status == Divergent {
			divergent = append(divergent, rec)
		}
	}
	return divergent
}

// Chain compares one license against an ordered list of target collections,
// returning the first non-empty matching result, else the first non-empty
// divergent result, else a missing record. Divergent candidates in later
// sources need no inspection once an authoritative source matched.
func Chain(b *address.BusinessLicense, targets []address.Addresses) []BusinessRecord {
	var matching, divergent, missing []BusinessRecord
	for _, t := range targets {
		records := NewBusinessRecords(b, t)
		var matched, diverged, missed []BusinessRecord
		for _, rec := range records {
			switch rec.Status {
			case Matching:
				matched = append(matched, rec)
			case Divergent:
				diverged = append(diverged, rec)
			default:
				missed = append(missed, rec)
			}
		}
		if len(matched) > 0 && matching == nil {
			matching = matched
		} else if len(diverged) > 0 && divergent == nil {
			divergent = diverged
		} else if len(missed) > 0 && missing == nil {
			missing = missed
		}
	}
	if matching != nil {
		return matching
	}
	if divergent != nil {
		return divergent
	}
	return missing
}

// CompareBusinesses reconciles every license against one candidate
// collection.
func CompareBusinesses(bs address.BusinessLicenses, candidates address.Addresses, opts Options) BusinessRecords {
	items := mapConcurrent(bs, opts.Workers, opts.reporter(), "comparing businesses",
		func(b *address.BusinessLicense) []BusinessRecord {
			return NewBusinessRecords(b, candidates)
		})
	return BusinessRecords{RunID: uuid.NewString(), Items: items}
}

// CompareChain reconciles every license against an ordered priority list of
// candidate collections.
func CompareChain(bs address.BusinessLicenses, targets []address.Addresses, opts Options) BusinessRecords {
	items := mapConcurrent(bs, opts.Workers, opts.reporter(), "comparing businesses",
		func(b *address.BusinessLicense) []BusinessRecord {
			return Chain(b, targets)
		})
	return BusinessRecords{RunID: uuid.NewString(), Items: items}
}

// Filter returns the records with the given status.
func (r BusinessRecords) Filter(status Status) BusinessRecords {
	out := BusinessRecords{RunID: r.RunID}
	for _, rec := range r.Items {
		if rec.Status == status {
			out.Items = append(out.Items, rec)
		}
	}
	return out
}

// Header returns the CSV column names for a business match report.
func (BusinessRecords) Header() []string {
	return []string{
		"match_status", "business_address_label", "company_name", "contact_name",
		"business_type", "dba", "license", "expires", "other_address_label",
		"longitude", "latitude",
	}
}

// Rows renders the report for CSV export.
func (r BusinessRecords) Rows() [][]string {
	out := make([][]string, len(r.Items))
	for i, rec := range r.Items {
		out[i] = []string{
			rec.Status.String(),
			rec.Label,
			rec.CompanyName,
			rec.ContactName,
			rec.BusinessType,
			rec.DBA,
			rec.License,
			rec.Expires,
			rec.OtherLabel,
			fmt.Sprintf("%f", rec.Longitude),
			fmt.Sprintf("%f", rec.Latitude),
		}
	}
	return out
}
