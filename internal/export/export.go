// Package export writes reports and snapshots to disk.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Tabular is any report that can render itself as CSV rows.
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// WriteCSV writes a report to path, creating parent directories as needed.
func WriteCSV(path string, report Tabular) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(report.Header()); err != nil {
		return errors.Wrapf(err, "writing header to %s", path)
	}
	for _, row := range report.Rows() {
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "flushing %s", path)
	}
	return nil
}
