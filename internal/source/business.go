package source

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/parse"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// businessLicense maps one row of the EnerGov active business license
// report. The address arrives pre-split across columns rather than as free
// text.
func businessLicense(r row) (address.BusinessLicense, error) {
	b := address.BusinessLicense{
		CompanyName: r.opt("CompanyName"),
		ContactName: r.opt("ContactName"),
		DBA:         r.opt("dba"),
	}

	var err error
	if b.BusinessType, err = r.get("BusinessType"); err != nil {
		return b, err
	}
	if b.License, err = r.get("LICENSENUMBER"); err != nil {
		return b, err
	}
	if b.Expires, err = r.get("EXPIRATIONDATE"); err != nil {
		return b, err
	}
	if b.Number, err = r.int64Field("ADDRESSLINE1"); err != nil {
		return b, err
	}
	if b.StreetName, err = r.get("ADDRESSLINE2"); err != nil {
		return b, err
	}
	b.StreetName = strings.ToUpper(b.StreetName)
	if predir := r.opt("PREDIRECTION"); predir != nil {
		d, ok := vocab.MatchDirectional(*predir)
		if !ok {
			return b, errors.Errorf("unknown directional %q", *predir)
		}
		b.PreDirectional = &d
	}
	if post := r.opt("STREETTYPE"); post != nil {
		t, ok := vocab.MatchPostType(*post)
		if !ok {
			return b, errors.Errorf("unknown post type %q", *post)
		}
		b.PostType = &t
	}
	if unit := r.opt("UNITORSUITE"); unit != nil {
		u := strings.ToUpper(*unit)
		b.SubaddressID = &u
	}
	if b.City, err = r.get("CITY"); err != nil {
		return b, err
	}
	if b.State, err = r.get("STATE"); err != nil {
		return b, err
	}
	if b.Zip, err = r.int64Field("POSTALCODE"); err != nil {
		return b, err
	}
	return b, nil
}

// BusinessLicenses reads the EnerGov active business license report.
func BusinessLicenses(r io.Reader, log *zap.Logger) (address.BusinessLicenses, error) {
	return read(r, "business licenses", log, businessLicense)
}

// LoadBusinessLicenses reads the license report from a file.
func LoadBusinessLicenses(path string, log *zap.Logger) (address.BusinessLicenses, error) {
	return open(path, log, BusinessLicenses)
}

// business maps one row of the GIS business layer export, parsing the
// free-text situs address into a partial address.
func business(r row) (address.Business, error) {
	var b address.Business

	var err error
	if b.CompanyName, err = r.get("company_name"); err != nil {
		return b, err
	}
	b.ContactName = r.opt("contact_name")
	b.DBA = r.opt("dba")
	label, err := r.get("street_address_label")
	if err != nil {
		return b, err
	}
	if b.Address, err = parse.Parse(label); err != nil {
		return b, errors.Wrapf(err, "business %q", b.CompanyName)
	}
	if b.License, err = r.get("license"); err != nil {
		return b, err
	}
	if b.IndustryCode, err = r.int64Field("industry_code"); err != nil {
		return b, err
	}
	if b.IndustryName, err = r.get("industry_name"); err != nil {
		return b, err
	}
	if b.SectorCode, err = r.int64Field("sector_code"); err != nil {
		return b, err
	}
	if b.SectorName, err = r.get("sector_name"); err != nil {
		return b, err
	}
	if b.SubsectorCode, err = r.int64Field("subsector_code"); err != nil {
		return b, err
	}
	b.SubsectorName = r.opt("subsector_name")
	b.Tourism = r.opt("tourism")
	b.District = r.opt("district")
	return b, nil
}

// Businesses reads the GIS business layer export.
func Businesses(r io.Reader, log *zap.Logger) (address.Businesses, error) {
	return read(r, "businesses", log, business)
}

// LoadBusinesses reads the GIS business export from a file.
func LoadBusinesses(path string, log *zap.Logger) (address.Businesses, error) {
	return open(path, log, Businesses)
}
