// Package tsviz turns tabular time-series data into chartable, analyzable
// series.
//
// A table of raw rows (from CSV, XLSX or any other source) goes through a
// pure pipeline: timestamps are normalized, rows are restricted to a time
// range and split into groups, values are parsed, optionally smoothed and
// rebased, and the result is a list of styled traces plus statistics,
// detected patterns and short insights.
//
// # Quick Start
//
//	table, err := timeseries.LoadCSV("readings.csv", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sel := pipeline.Suggest(table)
//	sel.Smoothing = smoothing.Options{Method: smoothing.MethodCount, Window: 5}
//	result, err := pipeline.Run(table, sel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	render.HTML(os.Stdout, result.Traces, render.DefaultChartOptions())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: rows, tables, instants, CSV and XLSX sources, error kinds
//   - timestamp: normalization of dates and GPS, Unix second and millisecond numbers
//   - timerange: inclusive range filter and padded data range
//   - grouping: partition of rows by a key column
//   - smoothing: trailing moving averages by point count or by hours
//   - baseline: rebasing so the first valid value is zero
//   - stats: descriptive statistics
//   - pattern: volatility, trend, seasonality, outliers, scale and insights
//   - trace: styled traces for single and dual axis charts
//   - pipeline: the full run and column suggestions
//   - source: file and URL acquisition with retries
//   - recent: recently opened files
//   - render: HTML, PNG and terminal charts, tables and CSV export
//   - config: settings from file and environment
//
// The tsviz command in cmd/tsviz wraps all of the above.
package tsviz
