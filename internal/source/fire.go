package source

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/parse"
)

// fireInspection maps one row of the fire department inspection export. The
// address arrives as a free-text blob and must parse cleanly for the row to
// survive.
func fireInspection(r row) (address.FireInspection, error) {
	var f address.FireInspection

	var err error
	if f.Name, err = r.get("Name"); err != nil {
		return f, err
	}
	blob, err := r.get("Address")
	if err != nil {
		return f, err
	}
	if f.Address, err = parse.Parse(blob); err != nil {
		return f, errors.Wrapf(err, "inspection %q", f.Name)
	}
	f.Class = r.opt("Class")
	f.Subclass = r.opt("Subclass")
	return f, nil
}

// FireInspections reads the fire department inspection export.
func FireInspections(r io.Reader, log *zap.Logger) (address.FireInspections, error) {
	return read(r, "fire inspections", log, fireInspection)
}

// LoadFireInspections reads the inspection export from a file.
func LoadFireInspections(path string, log *zap.Logger) (address.FireInspections, error) {
	return open(path, log, FireInspections)
}
