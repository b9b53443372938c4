// Package address defines the canonical structured address model shared by
// every data source, the label used as the cross-dataset join key, and the
// semantic equality test used by the match engine.
package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// Ptr returns a pointer to v. Optional fields use pointers so that absence
// means unknown, never empty string or zero.
func Ptr[T any](v T) *T {
	return &v
}

// Address is a fully resolved address record. Mandatory fields are plain
// values; a record only exists when its source row resolved all of them.
// Optional fields are pointers. Records are immutable after import except
// for the explicit Standardize transform.
type Address struct {
	Number          int64
	NumberSuffix    *string
	PreDirectional  *vocab.Directional
	PreModifier     *vocab.PreModifier
	PreType         *vocab.PreType
	Separator       *vocab.Separator
	StreetName      string
	PostType        vocab.PostType
	SubaddressType  *vocab.SubaddressType
	SubaddressID    *string
	Floor           *int64
	Building        *string
	Zip             int64
	PostalCommunity vocab.PostalCommunity
	State           vocab.State
	Status          vocab.Status

	// ObjectID is the source-system identifier for the record.
	ObjectID string
	// Point holds the projected x/y coordinates.
	Point orb.Point
	// Latitude and Longitude hold the geographic coordinates.
	Latitude  float64
	Longitude float64
}

// Label renders the canonical postal form of the address. Two semantically
// identical addresses always render the same label, which makes it the join
// key across datasets. A subaddress takes precedence over a bare building
// accessory.
func (a *Address) Label() string {
	parts := []string{strconv.FormatInt(a.Number, 10)}
	if a.NumberSuffix != nil {
		parts = append(parts, *a.NumberSuffix)
	}
	if a.PreDirectional != nil {
		parts = append(parts, a.PreDirectional.Abbreviation())
	}
	if a.PreModifier != nil {
		parts = append(parts, a.PreModifier.Label())
	}
	if a.PreType != nil {
		parts = append(parts, a.PreType.Label())
	}
	if a.Separator != nil {
		parts = append(parts, a.Separator.Label())
	}
	parts = append(parts, a.StreetName, a.PostType.Abbreviation())
	switch {
	case a.SubaddressID != nil && a.SubaddressType != nil:
		parts = append(parts, a.SubaddressType.Abbreviation(), *a.SubaddressID)
	case a.SubaddressID != nil:
		parts = append(parts, "#"+*a.SubaddressID)
	case a.Building != nil:
		parts = append(parts, "BLDG", *a.Building)
	}
	return strings.Join(parts, " ")
}

// CompleteStreetName renders the complete street name with every element
// fully spelled out, in FGDC order.
func (a *Address) CompleteStreetName() string {
	var parts []string
	if a.PreDirectional != nil {
		parts = append(parts, a.PreDirectional.Label())
	}
	if a.PreModifier != nil {
		parts = append(parts, a.PreModifier.Label())
	}
	if a.PreType != nil {
		parts = append(parts, a.PreType.Label())
	}
	if a.Separator != nil {
		parts = append(parts, a.Separator.Label())
	}
	parts = append(parts, a.StreetName, a.PostType.Label())
	return strings.Join(parts, " ")
}

// Distance returns the Euclidean distance between the projected coordinates
// of two addresses. The data uses a locally projected coordinate system, so
// a planar distance is the intended measure.
func (a *Address) Distance(other *Address) float64 {
	return planar.Distance(a.Point, other.Point)
}

// Mismatch describes one descriptive field that differs between two
// coincident addresses.
type Mismatch struct {
	Field  string
	Detail string
}

func mismatch(field, self, other string) Mismatch {
	return Mismatch{
		Field:  field,
		Detail: fmt.Sprintf("%s %q does not match %q", field, self, other),
	}
}

// Match is the result of comparing two addresses: whether their identity
// fields all agree, plus one Mismatch per descriptive field that differs.
type Match struct {
	Coincident bool
	Mismatches []Mismatch
}

// Coincident reports whether two addresses agree on every identity field
// (number, suffix, pre directional, street name, post type, subaddress
// identifier, zip, postal community, state). When they do, the descriptive
// fields (subaddress type, floor, building, status) are compared separately;
// a descriptive difference does not break coincidence.
func (a *Address) Coincident(other *Address) Match {
	var m Match
	if a.Number != other.Number ||
		!eq(a.NumberSuffix, other.NumberSuffix) ||
		!eq(a.PreDirectional, other.PreDirectional) ||
		a.StreetName != other.StreetName ||
		a.PostType != other.PostType ||
		!eq(a.SubaddressID, other.SubaddressID) ||
		a.Zip != other.Zip ||
		a.PostalCommunity != other.PostalCommunity ||
		a.State != other.State {
		return m
	}
	m.Coincident = true
	if !eq(a.SubaddressType, other.SubaddressType) {
		m.Mismatches = append(m.Mismatches, mismatch("subaddress type",
			optLabel(a.SubaddressType), optLabel(other.SubaddressType)))
	}
	if !eq(a.Floor, other.Floor) {
		m.Mismatches = append(m.Mismatches, mismatch("floor",
			optInt(a.Floor), optInt(other.Floor)))
	}
	if !eq(a.Building, other.Building) {
		m.Mismatches = append(m.Mismatches, mismatch("building",
			optString(a.Building), optString(other.Building)))
	}
	if a.Status != other.Status {
		m.Mismatches = append(m.Mismatches, mismatch("status",
			a.Status.Label(), other.Status.Label()))
	}
	return m
}

// eq compares two optional values; two absent values are equal.
func eq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type labeled interface {
	Label() string
}

func optLabel[T labeled](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).Label()
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
