// Package config loads the YAML job configuration that names the input
// files, their schemas and the run parameters, with environment variable
// overrides for the operational knobs.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Schema names accepted in a Source definition.
const (
	SchemaCity     = "city"
	SchemaCounty   = "county"
	SchemaLicense  = "license"
	SchemaBusiness = "business"
	SchemaFire     = "fire"
	SchemaSnapshot = "snapshot"
)

// Source is one input file and the adapter used to read it.
type Source struct {
	Path   string `yaml:"path"`
	Schema string `yaml:"schema"`
}

// Validate checks a source definition.
func (s Source) Validate() error {
	if s.Path == "" {
		return errors.New("source has no path")
	}
	switch s.Schema {
	case SchemaCity, SchemaCounty, SchemaLicense, SchemaBusiness, SchemaFire, SchemaSnapshot:
		return nil
	default:
		return errors.Errorf("unknown schema %q", s.Schema)
	}
}

// Config is a matching job definition.
type Config struct {
	Subject Source   `yaml:"subject"`
	Targets []Source `yaml:"targets"`

	// Output is the report path.
	Output string `yaml:"output"`
	// Workers caps comparison concurrency; zero means one per CPU.
	Workers int `yaml:"workers"`
	// MinDelta is the coordinate drift floor in projection units.
	MinDelta float64 `yaml:"min_delta"`
	// Filter optionally restricts reports to one match status.
	Filter string `yaml:"filter"`
	// Standardize rewrites street names to their abbreviated postal forms
	// before a snapshot is written.
	Standardize bool `yaml:"standardize"`
}

// Load reads a job configuration from path and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	c.Output = GetEnv("ADDRPOINT_OUTPUT", c.Output)
	c.Workers = GetEnvInt("ADDRPOINT_WORKERS", c.Workers)
	c.MinDelta = GetEnvFloat("ADDRPOINT_MIN_DELTA", c.MinDelta)
	c.Filter = GetEnv("ADDRPOINT_FILTER", c.Filter)
	c.Standardize = GetEnvBool("ADDRPOINT_STANDARDIZE", c.Standardize)

	if c.Output == "" {
		c.Output = "output.csv"
	}
	if err := c.Subject.Validate(); err != nil {
		return nil, errors.Wrap(err, "subject")
	}
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "target %d", i)
		}
	}
	return &c, nil
}
