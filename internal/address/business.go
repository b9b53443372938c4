package address

import (
	"strconv"
	"strings"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// BusinessLicense is an active business license record with its situs
// address broken into components. The city and state columns on license
// exports are unreliable, so matching ignores them.
type BusinessLicense struct {
	CompanyName    *string
	ContactName    *string
	BusinessType   string
	DBA            *string
	License        string
	Expires        string
	Number         int64
	NumberSuffix   *string
	PreDirectional *vocab.Directional
	StreetName     string
	PostType       *vocab.PostType
	SubaddressID   *string
	City           string
	State          string
	Zip            int64
}

// Label renders the postal form of the license address.
func (b *BusinessLicense) Label() string {
	parts := []string{strconv.FormatInt(b.Number, 10)}
	if b.NumberSuffix != nil {
		parts = append(parts, *b.NumberSuffix)
	}
	if b.PreDirectional != nil {
		parts = append(parts, b.PreDirectional.Abbreviation())
	}
	parts = append(parts, strings.TrimSpace(b.StreetName))
	if b.PostType != nil {
		parts = append(parts, b.PostType.Abbreviation())
	}
	if b.SubaddressID != nil {
		parts = append(parts, "#"+*b.SubaddressID)
	}
	return strings.Join(parts, " ")
}

// Company returns the trimmed company name.
func (b *BusinessLicense) Company() string {
	if b.CompanyName == nil {
		return ""
	}
	return strings.TrimSpace(*b.CompanyName)
}

// BusinessLicenses is a collection of license records.
type BusinessLicenses []BusinessLicense

// DeduplicateLicenses returns the collection with repeated license
// identifiers removed, keeping first occurrence.
func (bs BusinessLicenses) DeduplicateLicenses() BusinessLicenses {
	seen := make(map[string]struct{}, len(bs))
	var out BusinessLicenses
	for i := range bs {
		if _, ok := seen[bs[i].License]; ok {
			continue
		}
		seen[bs[i].License] = struct{}{}
		out = append(out, bs[i])
	}
	return out
}

// Business is an active business license published through the GIS layer,
// with its free-text situs address parsed into a partial address and NAICS
// industry codes attached.
type Business struct {
	CompanyName   string
	ContactName   *string
	DBA           *string
	Address       Partial
	License       string
	IndustryCode  int64
	IndustryName  string
	SectorCode    int64
	SectorName    string
	SubsectorCode int64
	SubsectorName *string
	Tourism       *string
	District      *string
}

// Businesses is a collection of GIS business records.
type Businesses []Business

// Partials returns the parsed situs addresses of the collection.
func (bs Businesses) Partials() []Partial {
	out := make([]Partial, len(bs))
	for i := range bs {
		out[i] = bs[i].Address
	}
	return out
}

// FireInspection is a fire inspection record whose free-text address has
// been parsed into a partial address.
type FireInspection struct {
	Name     string
	Address  Partial
	Class    *string
	Subclass *string
}

// FireInspections is a collection of inspection records.
type FireInspections []FireInspection
