package source

import (
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// countyAddress maps one row of the Josephine County ECSO address export.
// The county schema carries the same components as the city layer under
// lower-case column names, with the unincorporated community standing in for
// the postal community.
func countyAddress(r row) (address.Address, error) {
	var a address.Address

	var err error
	if a.Number, err = r.int64Field("add_number"); err != nil {
		return a, err
	}
	a.NumberSuffix = r.opt("addnum_suf")
	if a.PreDirectional, err = optDirectional(r, "st_predir"); err != nil {
		return a, err
	}
	if a.PreModifier, err = optPreModifier(r, "st_premod"); err != nil {
		return a, err
	}
	if a.PreType, err = optPreType(r, "st_pretyp"); err != nil {
		return a, err
	}
	if a.Separator, err = optSeparator(r, "st_presep"); err != nil {
		return a, err
	}
	if a.StreetName, err = r.get("st_name"); err != nil {
		return a, err
	}
	a.StreetName = strings.ToUpper(a.StreetName)
	if a.StreetName == "" {
		return a, errors.New("empty street name")
	}
	if a.PostType, err = mandatoryPostType(r, "st_postyp"); err != nil {
		return a, err
	}
	a.SubaddressType = optSubaddressType(r, "unittype")
	a.SubaddressID = r.opt("unit")
	if a.Floor, err = r.optInt64("floor"); err != nil {
		return a, err
	}
	if a.Zip, err = r.int64Field("post_code"); err != nil {
		return a, err
	}
	state, err := r.get("state")
	if err != nil {
		return a, err
	}
	s, ok := vocab.MatchState(state)
	if !ok {
		s, ok = vocab.MatchStateAbbreviated(state)
	}
	if !ok {
		return a, errors.Errorf("unknown state %q", state)
	}
	a.State = s
	status, err := r.get("status")
	if err != nil {
		return a, err
	}
	a.Status = vocab.MatchStatus(status)
	if a.PostalCommunity, err = mandatoryCommunity(r, "uninc_comm"); err != nil {
		return a, err
	}
	// The county export carries no stable feature identifier, so the full
	// address string stands in.
	a.ObjectID, _ = r.get("st_fullad")
	x, err := r.floatField("x")
	if err != nil {
		return a, err
	}
	y, err := r.floatField("y")
	if err != nil {
		return a, err
	}
	a.Point = orb.Point{x, y}
	if a.Latitude, err = r.floatField("latitude"); err != nil {
		return a, err
	}
	if a.Longitude, err = r.floatField("longitude"); err != nil {
		return a, err
	}
	return a, nil
}

// CountyAddresses reads the Josephine County ECSO address export.
func CountyAddresses(r io.Reader, log *zap.Logger) (address.Addresses, error) {
	return read(r, "county addresses", log, countyAddress)
}

// LoadCountyAddresses reads the county export from a file.
func LoadCountyAddresses(path string, log *zap.Logger) (address.Addresses, error) {
	return open(path, log, CountyAddresses)
}
