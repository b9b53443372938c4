package export

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/grantspass-gis/addrpoint/internal/address"
)

// SaveAddresses serializes a normalized address collection so later runs can
// skip the source import and vocabulary resolution.
func SaveAddresses(path string, addresses address.Addresses) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating snapshot directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating snapshot %s", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(addresses); err != nil {
		return errors.Wrapf(err, "encoding snapshot %s", path)
	}
	return f.Close()
}

// LoadAddresses reads a collection written by SaveAddresses.
func LoadAddresses(path string) (address.Addresses, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening snapshot %s", path)
	}
	defer f.Close()

	var addresses address.Addresses
	if err := gob.NewDecoder(f).Decode(&addresses); err != nil {
		return nil, errors.Wrapf(err, "decoding snapshot %s", path)
	}
	return addresses, nil
}
