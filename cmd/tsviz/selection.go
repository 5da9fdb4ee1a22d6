package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/timerange"
	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/timestamp"
	"github.com/sartorproj/tsviz/trace"
)

// selectionFlags are the column and range flags shared by the analysis
// commands. Unset columns fall back to pipeline.Suggest. The selection is
// validated when the pipeline runs.
type selectionFlags struct {
	x, y, y2  string
	group     string
	noGroup   bool
	from, to  string
	autoRange bool
}

func (s *selectionFlags) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.x, "x", "x", "", "Timestamp column (default: first time-like column).")
	fs.StringVarP(&s.y, "y", "y", "", "Value column (default: first numeric column).")
	fs.StringVar(&s.y2, "y2", "", "Secondary value column, required with --mode dual.")
	fs.StringVar(&s.group, "group", "", "Grouping key column (default: suggested from column names).")
	fs.BoolVar(&s.noGroup, "no-group", false, "Disable grouping.")
	fs.StringVar(&s.from, "from", "", "Keep rows at or after this date or timestamp.")
	fs.StringVar(&s.to, "to", "", "Keep rows at or before this date or timestamp.")
	fs.BoolVar(&s.autoRange, "auto-range", false, "Restrict to the padded data range when --from/--to are unset.")
}

func addChartFlags(fs *pflag.FlagSet) {
	fs.String("mode", "single", "Chart mode: single or dual.")
	fs.String("smooth", "none", "Smoothing: none, count or time.")
	fs.Int("window", 5, "Points in the moving average (count smoothing, 3-20).")
	fs.Float64("hours", 24, "Hours in the moving average (time smoothing, 1-168).")
	fs.Bool("baseline", false, "Rebase every trace so its first value is zero.")
}

func (s *selectionFlags) selection(tbl *timeseries.Table, cfg *config.Config) (pipeline.Selection, error) {
	sel := pipeline.Suggest(tbl)
	if s.x != "" {
		sel.XColumn = s.x
	}
	if s.y != "" {
		sel.YColumn = s.y
	}
	sel.Y2Column = s.y2
	if s.group != "" {
		sel.GroupColumn = s.group
	}
	if s.noGroup {
		sel.GroupColumn = ""
	}

	sel.Mode = trace.Mode(cfg.Mode)
	sel.Smoothing = cfg.SmoothingOptions()
	sel.Baseline = cfg.Baseline
	sel.AutoRange = s.autoRange

	n := timestamp.Default()
	if s.from != "" {
		start, ok := n.Parse(s.from)
		if !ok {
			return sel, errors.Errorf("--from %q is not a date or timestamp", s.from)
		}
		sel.Bounds.Start = &start
	}
	if s.to != "" {
		end, ok := n.Parse(s.to)
		if !ok {
			return sel, errors.Errorf("--to %q is not a date or timestamp", s.to)
		}
		sel.Bounds.End = &end
	}
	return sel, nil
}

// boundsLabel describes the applied range, or "" when nothing was filtered.
func boundsLabel(b timerange.Bounds) string {
	if b.IsZero() {
		return ""
	}
	return b.String()
}
