package main

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/render"
	"github.com/sartorproj/tsviz/trace"
)

const statsExamples = `
  # Statistics of the suggested value column
  tsviz stats readings.csv

  # Statistics of one column during January
  tsviz stats readings.csv -y load --from 2024-01-01 --to 2024-01-31`

const insightsExamples = `
  # Trend, volatility, seasonality and outliers of two columns
  tsviz insights readings.csv -y load --y2 temperature`

type analyzeOptions struct {
	*rootOptions
	selectionFlags
}

func (o *analyzeOptions) result(cmd *cobra.Command, location string) (*pipeline.Result, pipeline.Selection, error) {
	doc, err := o.open(cmd.Context(), location)
	if err != nil {
		return nil, pipeline.Selection{}, err
	}
	sel, err := o.selection(doc.Table, o.cfg)
	if err != nil {
		return nil, sel, err
	}
	if sel.Y2Column == "" {
		sel.Mode = trace.ModeSingle
	}
	result, err := pipeline.Run(doc.Table, sel)
	return result, sel, err
}

func newColumnsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE|URL",
		Short: "List columns, which are numeric and the suggested roles.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := root.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			render.ColumnsTable(root.out, doc.Table, pipeline.Suggest(doc.Table))
			return nil
		},
	}
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	o := &analyzeOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:     "stats FILE|URL",
		Short:   "Print descriptive statistics of a column.",
		Example: statsExamples,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, sel, err := o.result(cmd, args[0])
			if err != nil {
				return err
			}
			render.StatsTable(o.out, sel.YColumn, result.Statistics)
			return nil
		},
	}
	o.selectionFlags.addFlags(cmd.Flags())
	return cmd
}

func newInsightsCmd(root *rootOptions) *cobra.Command {
	o := &analyzeOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:     "insights FILE|URL",
		Short:   "Detect patterns and print insights.",
		Example: insightsExamples,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, sel, err := o.result(cmd, args[0])
			if err != nil {
				return err
			}
			order := []string{sel.YColumn}
			if sel.Y2Column != "" {
				order = append(order, sel.Y2Column)
			}
			render.PatternTable(o.out, order, result.Patterns)
			render.Insights(o.out, result.Insights)
			return nil
		},
	}
	o.selectionFlags.addFlags(cmd.Flags())
	return cmd
}
