package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/config"
	"github.com/grantspass-gis/addrpoint/internal/export"
	"github.com/grantspass-gis/addrpoint/internal/lexisnexis"
	"github.com/grantspass-gis/addrpoint/internal/match"
	"github.com/grantspass-gis/addrpoint/internal/parse"
	"github.com/grantspass-gis/addrpoint/internal/progress"
	"github.com/grantspass-gis/addrpoint/internal/source"
)

var logger *zap.Logger

func main() {
	config.LoadEnv()

	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:           "addrpoint",
		Short:         "Municipal address normalization and reconciliation",
		Long:          `Normalizes address site points from city and county GIS exports and reconciles business, fire and partner records against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(createCompareCmd())
	rootCmd.AddCommand(createDriftCmd())
	rootCmd.AddCommand(createFilterCmd())
	rootCmd.AddCommand(createDuplicatesCmd())
	rootCmd.AddCommand(createOrphansCmd())
	rootCmd.AddCommand(createLexisNexisCmd())
	rootCmd.AddCommand(createBusinessCmd())
	rootCmd.AddCommand(createSaveCmd())
	rootCmd.AddCommand(createParseCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadAddresses reads a full address collection through the adapter its
// schema names.
func loadAddresses(src config.Source) (address.Addresses, error) {
	switch src.Schema {
	case config.SchemaCity:
		return source.LoadCityAddresses(src.Path, logger)
	case config.SchemaCounty:
		return source.LoadCountyAddresses(src.Path, logger)
	case config.SchemaSnapshot:
		return export.LoadAddresses(src.Path)
	default:
		return nil, errors.Errorf("schema %q does not yield full addresses", src.Schema)
	}
}

func loadTargets(srcs []config.Source) ([]address.Addresses, error) {
	out := make([]address.Addresses, 0, len(srcs))
	for _, src := range srcs {
		t, err := loadAddresses(src)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func matchOptions(c *config.Config) match.Options {
	return match.Options{
		Workers:  c.Workers,
		Reporter: progress.NewZapReporter(logger, 10000),
	}
}

func createCompareCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Reconcile a subject collection against target collections",
		Long: `Compares every subject record against the target collections named in the
job configuration. The subject schema selects the comparison: full address
collections compare field by field, business and fire schemas match their
partial addresses against the first target.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(c.Targets) == 0 {
				return errors.New("compare needs at least one target")
			}
			opts := matchOptions(c)

			switch c.Subject.Schema {
			case config.SchemaBusiness:
				bs, err := source.LoadBusinesses(c.Subject.Path, logger)
				if err != nil {
					return err
				}
				candidates, err := loadAddresses(c.Targets[0])
				if err != nil {
					return err
				}
				records := match.ComparePartials(bs.Partials(), candidates, opts)
				return writeFiltered(c, records.RunID, records, func(s match.Status) export.Tabular {
					return records.Filter(s)
				})
			case config.SchemaFire:
				fs, err := source.LoadFireInspections(c.Subject.Path, logger)
				if err != nil {
					return err
				}
				candidates, err := loadAddresses(c.Targets[0])
				if err != nil {
					return err
				}
				records := match.CompareFire(fs, candidates, opts)
				return writeFiltered(c, records.RunID, records, func(s match.Status) export.Tabular {
					return records.Filter(s)
				})
			default:
				subjects, err := loadAddresses(c.Subject)
				if err != nil {
					return err
				}
				candidates, err := loadAddresses(c.Targets[0])
				if err != nil {
					return err
				}
				records := match.Compare(subjects, candidates, opts)
				return writeFiltered(c, records.RunID, records, func(s match.Status) export.Tabular {
					return records.Filter(s)
				})
			}
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

// writeFiltered writes the report, restricted to one match status when the
// job asks for it.
func writeFiltered(c *config.Config, runID string, full export.Tabular, filter func(match.Status) export.Tabular) error {
	report := full
	if c.Filter != "" {
		status, err := match.ParseStatus(c.Filter)
		if err != nil {
			return err
		}
		report = filter(status)
	}
	if err := export.WriteCSV(c.Output, report); err != nil {
		return err
	}
	logger.Info("report written",
		zap.String("run", runID),
		zap.String("output", c.Output))
	return nil
}

func createBusinessCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Reconcile business licenses against address collections in priority order",
		Long: `Compares each active business license against the target collections in
order, reporting the first matching result, else the first divergent result,
else a missing record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if c.Subject.Schema != config.SchemaLicense {
				return errors.Errorf("business wants a license subject, got %q", c.Subject.Schema)
			}
			if len(c.Targets) == 0 {
				return errors.New("business needs at least one target")
			}
			bs, err := source.LoadBusinessLicenses(c.Subject.Path, logger)
			if err != nil {
				return err
			}
			bs = bs.DeduplicateLicenses()
			targets, err := loadTargets(c.Targets)
			if err != nil {
				return err
			}
			records := match.CompareChain(bs, targets, matchOptions(c))
			return writeFiltered(c, records.RunID, records, func(s match.Status) export.Tabular {
				return records.Filter(s)
			})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

func createDriftCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Report coordinate drift between label-matched records",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(c.Targets) == 0 {
				return errors.New("drift needs a target")
			}
			subjects, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			target, err := loadAddresses(c.Targets[0])
			if err != nil {
				return err
			}
			deltas := subjects.Deltas(target, c.MinDelta, c.Workers, progress.NewZapReporter(logger, 10000))
			if err := export.WriteCSV(c.Output, deltas); err != nil {
				return err
			}
			logger.Info("drift report written",
				zap.Int("records", len(deltas)),
				zap.String("output", c.Output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

// listReport renders a single-column report.
type listReport struct {
	column string
	items  []string
}

func (l listReport) Header() []string { return []string{l.column} }

func (l listReport) Rows() [][]string {
	out := make([][]string, len(l.items))
	for i, item := range l.items {
		out[i] = []string{item}
	}
	return out
}

func createFilterCmd() *cobra.Command {
	var configPath, field, value string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Write the labels of records passing a filter",
		Long: `Restricts the subject collection either by a named filter (duplicate,
current, retired) from the job configuration or by a field equality given
with --field and --value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			subjects, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			switch {
			case field != "":
				f, err := address.ParseField(field)
				if err != nil {
					return err
				}
				subjects = subjects.FilterField(f, value)
			case c.Filter != "":
				f, err := address.ParseFilter(c.Filter)
				if err != nil {
					return err
				}
				subjects = subjects.Filter(f)
			default:
				return errors.New("filter needs --field or a filter in the job configuration")
			}
			return export.WriteCSV(c.Output, listReport{column: "address_label", items: subjects.Labels()})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	cmd.Flags().StringVar(&field, "field", "", "field to filter on (label, street_name, pre_directional, post_type)")
	cmd.Flags().StringVar(&value, "value", "", "value the field must equal")
	return cmd
}

func createDuplicatesCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Write the labels that appear more than once in a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			subjects, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			dupes := subjects.Duplicates()
			logger.Info("duplicates found", zap.Int("records", len(dupes)))
			return export.WriteCSV(c.Output, listReport{column: "address_label", items: dupes.Labels()})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

func createOrphansCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "Write the complete street names absent from the target collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(c.Targets) == 0 {
				return errors.New("orphans needs a target")
			}
			subjects, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			target, err := loadAddresses(c.Targets[0])
			if err != nil {
				return err
			}
			streets := subjects.OrphanStreets(target)
			logger.Info("orphan streets found", zap.Int("streets", len(streets)))
			return export.WriteCSV(c.Output, listReport{column: "complete_street_name", items: streets})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

func createLexisNexisCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "lexisnexis",
		Short: "Export compressed street ranges for the LexisNexis crime map",
		Long: `Builds one row per contiguous run of address numbers on each street of the
subject collection. Records in the first target mark numbers to exclude,
splitting the runs around them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			include, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			var exclude address.Addresses
			if len(c.Targets) > 0 {
				if exclude, err = loadAddresses(c.Targets[0]); err != nil {
					return err
				}
			}
			items, err := lexisnexis.Compress(include, exclude)
			if err != nil {
				return err
			}
			logger.Info("ranges compressed",
				zap.Int("addresses", len(include)),
				zap.Int("ranges", len(items)))
			return export.WriteCSV(c.Output, items)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	return cmd
}

func createSaveCmd() *cobra.Command {
	var configPath string
	var standardize bool
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Import a source and save it as a binary snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			subjects, err := loadAddresses(c.Subject)
			if err != nil {
				return err
			}
			if standardize || c.Standardize {
				changed := subjects.Standardize()
				logger.Info("street names standardized", zap.Int("records", changed))
			}
			if err := export.SaveAddresses(c.Output, subjects); err != nil {
				return err
			}
			logger.Info("snapshot written",
				zap.Int("records", len(subjects)),
				zap.String("output", c.Output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "addrpoint.yaml", "job configuration file")
	cmd.Flags().BoolVar(&standardize, "standardize", false, "apply legacy street name corrections before saving")
	return cmd
}

func createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [address]",
		Short: "Parse a free-text address and print its canonical label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parse.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(p.Label())
			return nil
		},
	}
}
