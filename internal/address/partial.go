package address

import (
	"strconv"
	"strings"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// Partial is an address in which every field is optional. It represents a
// free-text parse result or a query template. Absent fields mean unknown;
// no field is ever synthesized.
type Partial struct {
	Number          *int64
	NumberSuffix    *string
	PreDirectional  *vocab.Directional
	PreModifier     *vocab.PreModifier
	PreType         *vocab.PreType
	Separator       *vocab.Separator
	StreetName      *string
	PostType        *vocab.PostType
	SubaddressType  *vocab.SubaddressType
	SubaddressID    *string
	Floor           *int64
	Building        *string
	Zip             *int64
	PostalCommunity *vocab.PostalCommunity
	State           *vocab.State
	Status          *vocab.Status
}

// Label renders the present fields in canonical postal order. A subaddress
// takes precedence over a bare building accessory.
func (p *Partial) Label() string {
	var parts []string
	if p.Number != nil {
		parts = append(parts, strconv.FormatInt(*p.Number, 10))
	}
	if p.NumberSuffix != nil {
		parts = append(parts, *p.NumberSuffix)
	}
	if p.PreDirectional != nil {
		parts = append(parts, p.PreDirectional.Abbreviation())
	}
	if p.PreModifier != nil {
		parts = append(parts, p.PreModifier.Label())
	}
	if p.PreType != nil {
		parts = append(parts, p.PreType.Label())
	}
	if p.Separator != nil {
		parts = append(parts, p.Separator.Label())
	}
	if p.StreetName != nil {
		parts = append(parts, *p.StreetName)
	}
	if p.PostType != nil {
		parts = append(parts, p.PostType.Abbreviation())
	}
	switch {
	case p.SubaddressID != nil && p.SubaddressType != nil:
		parts = append(parts, p.SubaddressType.Abbreviation(), *p.SubaddressID)
	case p.SubaddressID != nil:
		parts = append(parts, "#"+*p.SubaddressID)
	case p.Building != nil:
		parts = append(parts, "BLDG", *p.Building)
	}
	return strings.Join(parts, " ")
}
