// Package source reads the flat-file exports that feed the matching engine:
// the City of Grants Pass address layer, the Josephine County ECSO layer,
// business license reports and fire inspection records. Rows that fail
// vocabulary resolution are dropped and counted rather than aborting the
// import.
package source

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// row is one CSV record with access to its columns by header name.
type row struct {
	index  map[string]int
	record []string
}

func (r row) get(name string) (string, error) {
	i, ok := r.index[name]
	if !ok {
		return "", errors.Errorf("missing column %q", name)
	}
	return strings.TrimSpace(r.record[i]), nil
}

// opt returns the trimmed column value, treating the ArcGIS "<Null>"
// sentinel and the empty string as absent.
func (r row) opt(name string) *string {
	i, ok := r.index[name]
	if !ok {
		return nil
	}
	v := strings.TrimSpace(r.record[i])
	if v == "" || v == "<Null>" {
		return nil
	}
	return &v
}

func (r row) int64Field(name string) (int64, error) {
	v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "column %q", name)
	}
	return n, nil
}

func (r row) optInt64(name string) (*int64, error) {
	v := r.opt(name)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", name)
	}
	return &n, nil
}

func (r row) floatField(name string) (float64, error) {
	v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "column %q", name)
	}
	return f, nil
}

// read maps every CSV record through mapRow, dropping rows that fail and
// logging a summary. The header row determines column positions, so column
// order in the export does not matter.
func read[T any](r io.Reader, name string, log *zap.Logger, mapRow func(row) (T, error)) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s header", name)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimPrefix(strings.TrimSpace(col), "\uFEFF")] = i
	}

	var out []T
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("unreadable row", zap.String("source", name), zap.Error(err))
			dropped++
			continue
		}
		item, err := mapRow(row{index: index, record: record})
		if err != nil {
			log.Warn("dropping row", zap.String("source", name), zap.Error(err))
			dropped++
			continue
		}
		out = append(out, item)
	}
	log.Info("import complete",
		zap.String("source", name),
		zap.Int("records", len(out)),
		zap.Int("dropped", dropped))
	return out, nil
}

// open wraps a file-path loader around an io.Reader based reader.
func open[T any](path string, log *zap.Logger, readFn func(io.Reader, *zap.Logger) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return readFn(f, log)
}
