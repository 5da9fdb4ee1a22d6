package render

import (
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/tsviz/trace"
)

// PNG writes a static chart. Secondary-axis traces use the right y-axis.
func PNG(w io.Writer, traces []trace.Trace, o ChartOptions) error {
	if len(traces) == 0 {
		return ErrNoTraces
	}
	ch := NewChart(traces, o)
	return ch.Render(chart.PNG, w)
}

// NewChart builds the chart rendered by PNG.
func NewChart(traces []trace.Trace, o ChartOptions) *chart.Chart {
	width, height := o.size(1200, 600)

	series := make([]chart.Series, 0, len(traces))
	for _, t := range traces {
		series = append(series, timeSeries(t))
	}

	ch := &chart.Chart{
		Title:      o.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           o.XLabel,
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		YAxis:  chart.YAxis{Name: o.YLabel},
		Series: series,
	}
	if hasSecondary(traces) {
		ch.YAxisSecondary = chart.YAxis{Name: o.Y2Label}
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

func timeSeries(t trace.Trace) chart.TimeSeries {
	color := parseColor(t.Color, t.Style.Opacity)
	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: t.Style.Width,
	}
	if t.Style.Dashed {
		style.StrokeDashArray = []float64{6, 4}
	}
	if t.Style.Marker != "" {
		style.DotColor = color
		style.DotWidth = 2
	}

	xs := make([]time.Time, t.Len())
	for i, x := range t.X {
		xs[i] = x.Time()
	}
	ys := t.Y

	// a single point has no x range
	if len(xs) == 1 {
		xs = []time.Time{xs[0], xs[0].Add(time.Second)}
		ys = []float64{ys[0], ys[0]}
	}

	ts := chart.TimeSeries{
		Name:    t.Label,
		XValues: xs,
		YValues: ys,
		Style:   style,
	}
	if t.Axis == trace.AxisSecondary {
		ts.YAxis = chart.YAxisSecondary
	}
	return ts
}
