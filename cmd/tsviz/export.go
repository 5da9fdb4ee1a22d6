package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/render"
	"github.com/sartorproj/tsviz/timeseries"
)

const exportExamples = `
  # Normalized timestamps and every numeric column
  tsviz export readings.xlsx -o readings.csv

  # Two columns, each shifted to start at zero
  tsviz export readings.csv --columns load,temperature --rebase`

type exportOptions struct {
	*rootOptions

	x       string
	columns []string
	rebase  bool
	output  string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	o := &exportOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:     "export FILE|URL",
		Short:   "Write normalized timestamps and numeric columns as CSV.",
		Example: exportExamples,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&o.x, "x", "x", "", "Timestamp column (default: first time-like column).")
	cmd.Flags().StringSliceVar(&o.columns, "columns", nil, "Columns to export (default: every numeric column).")
	cmd.Flags().BoolVar(&o.rebase, "rebase", false, "Shift each column so its first valid value is zero.")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write to this file instead of stdout.")
	return cmd
}

func (o *exportOptions) run(cmd *cobra.Command, location string) error {
	doc, err := o.open(cmd.Context(), location)
	if err != nil {
		return err
	}
	tbl := doc.Table

	x := o.x
	if x == "" {
		x = pipeline.Suggest(tbl).XColumn
	}
	if !tbl.HasColumn(x) {
		return errors.Wrapf(timeseries.ErrUnknownColumn, "x column %q", x)
	}

	columns := o.columns
	if len(columns) == 0 {
		for _, c := range tbl.NumericColumns() {
			if c != x {
				columns = append(columns, c)
			}
		}
	}
	for _, c := range columns {
		if !tbl.HasColumn(c) {
			return errors.Wrapf(timeseries.ErrUnknownColumn, "column %q", c)
		}
	}

	w, closeFn, err := o.rootOptions.output(o.output)
	if err != nil {
		return err
	}
	start := time.Now()
	err = render.ColumnsCSV(w, tbl, x, columns, o.rebase, nil)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, "exporting")
	}
	o.logger.V(1).Info("Exported columns", "rows", tbl.Len(), "columns", len(columns), "elapsed", time.Since(start))
	return nil
}
