// Package lexisnexis builds street range exports for the LexisNexis
// Community Crime Map loader. The loader wants one row per contiguous run of
// address numbers on a street, with excluded numbers splitting the run.
package lexisnexis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// Item is one exported street range row. Column names follow the loader's
// import template.
type Item struct {
	StNumFrom       int64
	StNumTo         int64
	StPreDirection  string
	StName          string
	StType          string
	StPostDirection string
	City            string
	Beat            string
	Area            string
	District        string
	Zone            string
	Zipcode         int64
	CommonPlace     string
	StNum           string
}

// Required holds the mandatory fields of a range row.
type Required struct {
	From      int64
	To        int64
	Street    string
	PostType  vocab.PostType
	Community vocab.PostalCommunity
	Zip       int64
}

// Options holds the optional descriptive fields of a range row.
type Options struct {
	PreDirectional  *vocab.Directional
	PostDirectional *vocab.Directional
	Beat            string
	Area            string
	District        string
	Zone            string
	CommonPlace     string
}

// NewItem builds an export row, validating the range bounds.
func NewItem(req Required, opts Options) (Item, error) {
	if req.From > req.To {
		return Item{}, errors.Errorf("range %d-%d is inverted", req.From, req.To)
	}
	if req.Street == "" {
		return Item{}, errors.New("range has no street name")
	}
	item := Item{
		StNumFrom:   req.From,
		StNumTo:     req.To,
		StName:      req.Street,
		StType:      req.PostType.Abbreviation(),
		City:        req.Community.Label(),
		Beat:        opts.Beat,
		Area:        opts.Area,
		District:    opts.District,
		Zone:        opts.Zone,
		Zipcode:     req.Zip,
		CommonPlace: opts.CommonPlace,
	}
	if opts.PreDirectional != nil {
		item.StPreDirection = opts.PreDirectional.Abbreviation()
	}
	if opts.PostDirectional != nil {
		item.StPostDirection = opts.PostDirectional.Abbreviation()
	}
	return item, nil
}

// rangeItem is one address number on a street, tagged with whether the
// number belongs to the export or splits it.
type rangeItem struct {
	Number  int64
	Include bool
}

type numberRange struct {
	From int64
	To   int64
}

// ranges compresses included numbers into contiguous runs. Excluded numbers
// close the open run before themselves. The sort is stable so an include and
// an exclude at the same number keep their appended order, and the include
// still opens a one point range.
func ranges(include, exclude []int64) []numberRange {
	items := make([]rangeItem, 0, len(include)+len(exclude))
	for _, n := range include {
		items = append(items, rangeItem{Number: n, Include: true})
	}
	for _, n := range exclude {
		items = append(items, rangeItem{Number: n, Include: false})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Number < items[j].Number })

	var out []numberRange
	var open *numberRange
	for _, item := range items {
		if item.Include {
			if open == nil {
				open = &numberRange{From: item.Number, To: item.Number}
			} else {
				open.To = item.Number
			}
			continue
		}
		if open != nil {
			out = append(out, *open)
			open = nil
		}
	}
	if open != nil {
		out = append(out, *open)
	}
	return out
}

// streetKey is a complete street identity: pre directional, street name and
// post type. Community and zip do not participate; a street keeps one set of
// ranges even when its addresses span postal boundaries.
type streetKey struct {
	PreDirectional string
	StreetName     string
	PostType       vocab.PostType
}

func keyOf(a *address.Address) streetKey {
	key := streetKey{
		StreetName: a.StreetName,
		PostType:   a.PostType,
	}
	if a.PreDirectional != nil {
		key.PreDirectional = a.PreDirectional.Abbreviation()
	}
	return key
}

// Compress turns an include and an exclude address collection into export
// rows, one set of ranges per street in first-seen include order. The first
// include record on each street supplies the row's community and zip.
// Streets present only in the exclude collection produce no rows.
func Compress(include, exclude address.Addresses) (Items, error) {
	includes := make(map[streetKey][]int64)
	excludes := make(map[streetKey][]int64)
	reps := make(map[streetKey]*address.Address)
	var order []streetKey
	for i := range include {
		key := keyOf(&include[i])
		if _, ok := includes[key]; !ok {
			order = append(order, key)
			reps[key] = &include[i]
		}
		includes[key] = append(includes[key], include[i].Number)
	}
	for i := range exclude {
		key := keyOf(&exclude[i])
		excludes[key] = append(excludes[key], exclude[i].Number)
	}

	var items Items
	for _, key := range order {
		rep := reps[key]
		for _, r := range ranges(includes[key], excludes[key]) {
			item, err := NewItem(Required{
				From:      r.From,
				To:        r.To,
				Street:    key.StreetName,
				PostType:  key.PostType,
				Community: rep.PostalCommunity,
				Zip:       rep.Zip,
			}, Options{PreDirectional: rep.PreDirectional})
			if err != nil {
				return nil, errors.Wrapf(err, "street %s", key.StreetName)
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// Items is a collection of export rows.
type Items []Item

// Header returns the loader's column names.
func (Items) Header() []string {
	return []string{
		"StNumFrom", "StNumTo", "StPreDirection", "StName", "StType",
		"StPostDirection", "City", "Beat", "Area", "District", "Zone",
		"Zipcode", "CommonPlace", "StNum",
	}
}

// Rows renders the collection for CSV export.
func (items Items) Rows() [][]string {
	out := make([][]string, len(items))
	for i, item := range items {
		out[i] = []string{
			strconv.FormatInt(item.StNumFrom, 10),
			strconv.FormatInt(item.StNumTo, 10),
			item.StPreDirection,
			item.StName,
			item.StType,
			item.StPostDirection,
			item.City,
			item.Beat,
			item.Area,
			item.District,
			item.Zone,
			strconv.FormatInt(item.Zipcode, 10),
			item.CommonPlace,
			item.StNum,
		}
	}
	return out
}

// Label renders a human readable form of the row for logging.
func (item Item) Label() string {
	parts := []string{fmt.Sprintf("%d-%d", item.StNumFrom, item.StNumTo)}
	if item.StPreDirection != "" {
		parts = append(parts, item.StPreDirection)
	}
	parts = append(parts, item.StName, item.StType)
	return strings.Join(parts, " ")
}
