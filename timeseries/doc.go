// Package timeseries provides the tabular data model used by tsviz.
//
// A Table is a list of RawRow values (column name to raw cell text) together
// with the column names found in the source header. Nothing in tsviz mutates
// a RawRow once it has been loaded; every stage derives new values from it.
//
// # Loading rows
//
// Load a CSV file with a header row:
//
//	table, err := timeseries.LoadCSV("data.csv", nil)
//
// Or a workbook sheet:
//
//	table, err := timeseries.LoadXLSX("data.xlsx", &timeseries.XLSXOptions{Sheet: "Readings"})
//
// Both loaders fail with ErrNoRows when the source has no data rows and with
// ErrNoNumericColumns when no column holds a single number. Both wrap ErrParse.
//
// # Values and instants
//
// Cells are converted lazily:
//
//	values := table.Values("temperature") // NaN where a cell is not a number
//	v := timeseries.ParseValue("12.5")
//
// Instant is an epoch-millisecond timestamp in UTC and Point pairs an Instant
// with a value:
//
//	p := timeseries.Point{Instant: timeseries.FromTime(time.Now()), Value: 3}
//	valid := timeseries.DropInvalid(points)
//
// # Errors
//
// ErrParse, ErrConversion and ErrIO are the error kinds. Use errors.Is to
// classify a failure.
package timeseries
