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

// cityAddress maps one row of the City of Grants Pass address layer export.
// Mandatory vocabulary fields must resolve or the row is dropped.
func cityAddress(r row) (address.Address, error) {
	a := address.Address{State: vocab.Oregon}

	var err error
	if a.Number, err = r.int64Field("Add_Number"); err != nil {
		return a, err
	}
	a.NumberSuffix = r.opt("AddNum_Suf")
	if a.PreDirectional, err = optDirectional(r, "St_PreDir"); err != nil {
		return a, err
	}
	if a.PreModifier, err = optPreModifier(r, "StreetNamePreModifier"); err != nil {
		return a, err
	}
	if a.PreType, err = optPreType(r, "StreetNamePreType"); err != nil {
		return a, err
	}
	if a.Separator, err = optSeparator(r, "StreetNameSeparator"); err != nil {
		return a, err
	}
	if a.StreetName, err = r.get("St_Name"); err != nil {
		return a, err
	}
	a.StreetName = strings.ToUpper(a.StreetName)
	if a.StreetName == "" {
		return a, errors.New("empty street name")
	}
	if a.PostType, err = mandatoryPostType(r, "St_PosTyp"); err != nil {
		return a, err
	}
	a.SubaddressType = optSubaddressType(r, "SubaddressType")
	a.SubaddressID = r.opt("SubaddressIdentifier")
	if a.Floor, err = r.optInt64("Floor"); err != nil {
		return a, err
	}
	a.Building = r.opt("Building")
	if a.Zip, err = r.int64Field("Post_Code"); err != nil {
		return a, err
	}
	status, err := r.get("STATUS")
	if err != nil {
		return a, err
	}
	a.Status = vocab.MatchStatus(status)
	if a.PostalCommunity, err = mandatoryCommunity(r, "Post_Comm"); err != nil {
		return a, err
	}
	if state := r.opt("StateName"); state != nil {
		s, ok := vocab.MatchState(*state)
		if !ok {
			s, ok = vocab.MatchStateAbbreviated(*state)
		}
		if !ok {
			return a, errors.Errorf("unknown state %q", *state)
		}
		a.State = s
	}
	if a.ObjectID, err = r.get("GlobalID"); err != nil {
		return a, err
	}
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

// CityAddresses reads the City of Grants Pass address layer export.
func CityAddresses(r io.Reader, log *zap.Logger) (address.Addresses, error) {
	return read(r, "city addresses", log, cityAddress)
}

// LoadCityAddresses reads the city export from a file.
func LoadCityAddresses(path string, log *zap.Logger) (address.Addresses, error) {
	return open(path, log, CityAddresses)
}

func optDirectional(r row, name string) (*vocab.Directional, error) {
	v := r.opt(name)
	if v == nil {
		return nil, nil
	}
	d, ok := vocab.MatchDirectional(*v)
	if !ok {
		return nil, errors.Errorf("unknown directional %q", *v)
	}
	return &d, nil
}

func optPreModifier(r row, name string) (*vocab.PreModifier, error) {
	v := r.opt(name)
	if v == nil {
		return nil, nil
	}
	m, ok := vocab.MatchPreModifier(*v)
	if !ok {
		return nil, errors.Errorf("unknown pre modifier %q", *v)
	}
	return &m, nil
}

func optPreType(r row, name string) (*vocab.PreType, error) {
	v := r.opt(name)
	if v == nil {
		return nil, nil
	}
	t, ok := vocab.MatchPreType(*v)
	if !ok {
		return nil, errors.Errorf("unknown pre type %q", *v)
	}
	return &t, nil
}

func optSeparator(r row, name string) (*vocab.Separator, error) {
	v := r.opt(name)
	if v == nil {
		return nil, nil
	}
	s, ok := vocab.MatchSeparator(*v)
	if !ok {
		return nil, errors.Errorf("unknown separator %q", *v)
	}
	return &s, nil
}

// optSubaddressType treats an unrecognized value as absent rather than an
// error, matching how the authority exports stray unit descriptions.
func optSubaddressType(r row, name string) *vocab.SubaddressType {
	v := r.opt(name)
	if v == nil {
		return nil
	}
	t, ok := vocab.MatchSubaddressType(*v)
	if !ok {
		return nil
	}
	return &t
}

func mandatoryPostType(r row, name string) (vocab.PostType, error) {
	v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	t, ok := vocab.MatchPostType(v)
	if !ok {
		return 0, errors.Errorf("unknown post type %q", v)
	}
	return t, nil
}

func mandatoryCommunity(r row, name string) (vocab.PostalCommunity, error) {
	v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	c, ok := vocab.MatchPostalCommunity(v)
	if !ok {
		return 0, errors.Errorf("unknown postal community %q", v)
	}
	return c, nil
}
