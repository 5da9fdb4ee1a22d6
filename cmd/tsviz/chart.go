package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/render"
)

const chartExamples = `
  # Open an interactive chart of the suggested columns
  tsviz chart readings.csv -o readings.html

  # Dual-axis PNG with both axes rebased to zero
  tsviz chart readings.csv -y load --y2 temperature --mode dual --baseline --format png -o readings.png

  # 24 hour trailing average in the terminal
  tsviz chart https://example.com/readings.csv --smooth time --hours 24 --format term`

// Output formats.
const (
	formatHTML = "html"
	formatPNG  = "png"
	formatTerm = "term"
	formatJSON = "json"
	formatCSV  = "csv"
)

type chartOptions struct {
	*rootOptions
	selectionFlags

	format string
	output string
	title  string
}

func newChartCmd(root *rootOptions) *cobra.Command {
	o := &chartOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:     "chart FILE|URL",
		Short:   "Chart a column over time, optionally grouped, smoothed or on two axes.",
		Example: chartExamples,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			return o.run(cmd, args[0])
		},
	}

	o.selectionFlags.addFlags(cmd.Flags())
	addChartFlags(cmd.Flags())
	cmd.Flags().Int("width", 1200, "Chart width (pixels, or cells for --format term).")
	cmd.Flags().Int("height", 600, "Chart height (pixels, or cells for --format term).")
	cmd.Flags().StringVar(&o.format, "format", formatHTML, "Output format: html, png, term, json or csv.")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write to this file instead of stdout.")
	cmd.Flags().StringVar(&o.title, "title", "", "Chart title (default: the source name).")
	return cmd
}

func (o *chartOptions) validate() error {
	switch o.format {
	case formatHTML, formatPNG, formatTerm, formatJSON, formatCSV:
		return nil
	}
	return errors.Errorf("unknown format %q, want one of html, png, term, json, csv", o.format)
}

func (o *chartOptions) run(cmd *cobra.Command, location string) error {
	doc, err := o.open(cmd.Context(), location)
	if err != nil {
		return err
	}
	sel, err := o.selection(doc.Table, o.cfg)
	if err != nil {
		return err
	}

	p := pipeline.New()
	p.Palette = o.cfg.Palette
	p.Accent = o.cfg.Accent
	result, err := p.Run(doc.Table, sel)
	if err != nil {
		return err
	}
	o.logger.V(1).Info("Built traces", "traces", len(result.Traces), "groups", len(result.Groups), "rows", result.Rows, "range", boundsLabel(result.Bounds))

	chartOpts := render.ChartOptions{
		Title:   o.title,
		XLabel:  sel.XColumn,
		YLabel:  sel.YColumn,
		Y2Label: sel.Y2Column,
		Width:   o.cfg.Width,
		Height:  o.cfg.Height,
	}
	if chartOpts.Title == "" {
		chartOpts.Title = doc.Name
	}

	w, closeFn, err := o.rootOptions.output(o.output)
	if err != nil {
		return err
	}

	switch o.format {
	case formatHTML:
		err = render.HTML(w, result.Traces, chartOpts)
	case formatPNG:
		err = render.PNG(w, result.Traces, chartOpts)
	case formatTerm:
		// pixel defaults do not suit a terminal; explicit sizes from any
		// source are kept
		if !o.v.IsSet(config.KeyWidth) {
			chartOpts.Width = 80
		}
		if !o.v.IsSet(config.KeyHeight) {
			chartOpts.Height = 20
		}
		var view string
		view, err = render.Terminal(result.Traces, chartOpts)
		if err == nil {
			_, err = fmt.Fprintln(w, view)
		}
	case formatJSON:
		err = render.JSON(w, result)
	case formatCSV:
		err = render.TracesCSV(w, result.Traces)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "rendering %s", o.format)
}
