package main

import (
	"context"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/recent"
	"github.com/sartorproj/tsviz/source"
)

// flagKeys binds command flags to configuration keys so that a flag set on
// the command line wins over the file and the environment.
var flagKeys = map[string]string{
	"mode":      config.KeyMode,
	"smooth":    config.KeySmoothing,
	"window":    config.KeyWindow,
	"hours":     config.KeyHours,
	"baseline":  config.KeyBaseline,
	"width":     config.KeyWidth,
	"height":    config.KeyHeight,
	"delimiter": config.KeyDelimiter,
	"retries":   config.KeyRetries,
}

type rootOptions struct {
	configFile string
	verbose    bool

	v      *viper.Viper
	cfg    *config.Config
	logger logr.Logger
	zap    *zap.Logger

	out io.Writer
}

// NewRootCmd returns the tsviz command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{v: config.New(), out: os.Stdout, logger: logr.Discard()}

	cmd := &cobra.Command{
		Use:           "tsviz",
		Short:         "Explore, chart and summarize time-series tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.zap != nil {
				_ = o.zap.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "Path to a YAML configuration file.")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log debug details to stderr.")
	cmd.PersistentFlags().String("delimiter", ",", "CSV field delimiter.")
	cmd.PersistentFlags().Int("retries", 3, "Retries for failed reads, waiting 1s, 2s, 4s and so on.")

	cmd.AddCommand(
		newColumnsCmd(o),
		newChartCmd(o),
		newStatsCmd(o),
		newInsightsCmd(o),
		newExportCmd(o),
		newRecentCmd(o),
	)
	return cmd
}

func (o *rootOptions) complete(cmd *cobra.Command) error {
	o.out = cmd.OutOrStdout()

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := o.v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "binding flag --%s", name)
			}
		}
	}

	cfg, err := config.Load(o.v, o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	zl, err := newZapLogger(cfg.LogLevel, o.verbose)
	if err != nil {
		return err
	}
	o.zap = zl
	o.logger = zapr.NewLogger(zl)
	return nil
}

// newZapLogger builds a console logger on stderr. Verbose enables logr V(1).
func newZapLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !verbose
	return cfg.Build()
}

func (o *rootOptions) fetcher() *source.Fetcher {
	f := source.NewFetcher(o.logger.WithName("source"))
	f.Retry.MaxRetry = o.cfg.Retries
	f.CSV = o.cfg.CSVOptions()
	return f
}

func (o *rootOptions) store() *recent.Store {
	return recent.NewStore(o.cfg.RecentFile, o.logger.WithName("recent"))
}

// open fetches location and records it as recently used. A failure to record
// is logged only.
func (o *rootOptions) open(ctx context.Context, location string) (*source.Document, error) {
	doc, err := o.fetcher().Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	if _, err := o.store().Record(doc.Name, doc.Size, doc.LastModified); err != nil {
		o.logger.Error(err, "Failed to record recent file", "name", doc.Name)
	}
	return doc, nil
}

// output returns the writer for path; "" and "-" mean the command output.
func (o *rootOptions) output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return o.out, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating %s", path)
	}
	return f, f.Close, nil
}
