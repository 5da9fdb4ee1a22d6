package pipeline

import (
	"github.com/sartorproj/tsviz/grouping"
	"github.com/sartorproj/tsviz/pattern"
	"github.com/sartorproj/tsviz/stats"
	"github.com/sartorproj/tsviz/timerange"
	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/timestamp"
	"github.com/sartorproj/tsviz/trace"
)

// Result is the output of one run.
type Result struct {
	Traces     []trace.Trace              `json:"traces"`
	Statistics stats.Statistics           `json:"statistics"`
	Patterns   map[string]pattern.Pattern `json:"patterns"`
	Insights   []string                   `json:"insights"`
	Groups     []string                   `json:"groups"`
	Bounds     timerange.Bounds           `json:"-"`
	Rows       int                        `json:"rows"`
}

// Pipeline holds the collaborators of a run. The zero value is usable.
type Pipeline struct {
	Normalizer *timestamp.Normalizer
	Palette    []string
	Accent     string
}

// New returns a pipeline with the default normalizer and palette.
func New() *Pipeline {
	return &Pipeline{
		Normalizer: timestamp.Default(),
		Palette:    trace.DefaultPalette,
		Accent:     trace.DefaultAccent,
	}
}

// Run executes a pipeline with default collaborators.
func Run(table *timeseries.Table, sel Selection) (*Result, error) {
	return New().Run(table, sel)
}

// Run filters, groups, parses and styles table according to sel, and computes
// statistics and patterns over the filtered y (and y2) values. It fails only
// when sel cannot be applied to table at all; data-quality problems are
// absorbed by dropping or substituting values.
func (p *Pipeline) Run(table *timeseries.Table, sel Selection) (*Result, error) {
	if err := sel.Validate(table); err != nil {
		return nil, err
	}

	n := p.Normalizer
	if n == nil {
		n = timestamp.Default()
	}
	if sel.Mode == "" {
		sel.Mode = trace.ModeSingle
	}

	bounds := sel.Bounds
	if bounds.IsZero() && sel.AutoRange {
		if optimal, ok := timerange.Optimal(table.Rows, sel.XColumn, n); ok {
			bounds = optimal
		}
	}

	rows := timerange.Filter(table.Rows, sel.XColumn, bounds, n)
	groups := grouping.Partition(rows, sel.GroupColumn)

	series := make([]trace.Series, len(groups))
	for i, g := range groups {
		series[i] = trace.Series{
			Key:     g.Key,
			Primary: Points(g.Rows, sel.XColumn, sel.YColumn, n),
		}
		if sel.Mode == trace.ModeDual {
			series[i].Secondary = Points(g.Rows, sel.XColumn, sel.Y2Column, n)
		}
	}

	traces := trace.Build(series, grouping.Grouped(groups), trace.Options{
		Mode:      sel.Mode,
		Smoothing: sel.Smoothing,
		Baseline:  sel.Baseline,
		YLabel:    sel.YColumn,
		Y2Label:   sel.Y2Column,
		Palette:   p.Palette,
		Accent:    p.Accent,
	})

	y := stats.Finite(timeseries.ColumnValues(rows, sel.YColumn))
	columns := map[string][]float64{sel.YColumn: y}
	order := []string{sel.YColumn}
	if sel.Y2Column != "" && sel.Y2Column != sel.YColumn {
		columns[sel.Y2Column] = stats.Finite(timeseries.ColumnValues(rows, sel.Y2Column))
		order = append(order, sel.Y2Column)
	}
	patterns := pattern.DetectColumns(columns)

	return &Result{
		Traces:     traces,
		Statistics: stats.Describe(y),
		Patterns:   patterns,
		Insights:   pattern.InsightsFor(order, patterns),
		Groups:     grouping.Keys(groups),
		Bounds:     bounds,
		Rows:       len(rows),
	}, nil
}

// Points pairs the normalized xColumn instant of each row with its parsed
// yColumn value. Unparseable values are NaN.
func Points(rows []timeseries.RawRow, xColumn, yColumn string, n *timestamp.Normalizer) []timeseries.Point {
	points := make([]timeseries.Point, len(rows))
	for i, row := range rows {
		points[i] = timeseries.Point{
			Instant: n.Normalize(row[xColumn]),
			Value:   timeseries.ParseValue(row[yColumn]),
		}
	}
	return points
}
