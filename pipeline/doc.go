// Package pipeline runs the full transformation from a table to traces,
// statistics and insights.
//
// Run is pure: it reads the table and selection and returns a new Result.
// Callers re-run it whenever any input changes.
//
//	table, err := timeseries.LoadCSV("readings.csv", nil)
//	if err != nil {
//	    return err
//	}
//	sel := pipeline.Suggest(table)
//	sel.Baseline = true
//	result, err := pipeline.Run(table, sel)
//
// The stages are range filter, grouping, per-group parsing, trace building,
// then statistics and pattern detection over the filtered y values.
package pipeline
