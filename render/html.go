package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sartorproj/tsviz/trace"
)

// HTML writes an interactive line chart with a time x-axis. Secondary-axis
// traces are bound to a second y-axis on the right.
func HTML(w io.Writer, traces []trace.Trace, o ChartOptions) error {
	if len(traces) == 0 {
		return ErrNoTraces
	}
	return NewLine(traces, o).Render(w)
}

// NewLine builds the chart rendered by HTML.
func NewLine(traces []trace.Trace, o ChartOptions) *charts.Line {
	width, height := o.size(1200, 600)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: o.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XLabel,
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.YLabel,
			Type: "value",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	if hasSecondary(traces) {
		line.ExtendYAxis(opts.YAxis{
			Name: o.Y2Label,
			Type: "value",
		})
	}

	for _, t := range traces {
		line.AddSeries(t.Label, lineData(t), seriesOpts(t)...)
	}
	return line
}

func lineData(t trace.Trace) []opts.LineData {
	data := make([]opts.LineData, t.Len())
	for i := range t.X {
		data[i] = opts.LineData{Value: []interface{}{int64(t.X[i]), t.Y[i]}}
	}
	return data
}

func seriesOpts(t trace.Trace) []charts.SeriesOpts {
	axis := 0
	if t.Axis == trace.AxisSecondary {
		axis = 1
	}
	color := rgba(t.Color, t.Style.Opacity)

	style := opts.LineStyle{Color: color, Type: "solid", Width: 1}
	if t.Style.Dashed {
		style.Type = "dashed"
	}
	if t.Style.Width >= 2 {
		style.Width = 2
	}

	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(t.Style.Marker != ""),
			Symbol:     t.Style.Marker,
			YAxisIndex: axis,
		}),
		charts.WithLineStyleOpts(style),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	}
}
