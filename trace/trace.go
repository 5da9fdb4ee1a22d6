package trace

import (
	"fmt"

	"github.com/sartorproj/tsviz/baseline"
	"github.com/sartorproj/tsviz/smoothing"
	"github.com/sartorproj/tsviz/timeseries"
)

// Mode selects single or dual y-axis charts.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeDual   Mode = "dual"
)

// Axis binds a trace to a y-axis.
type Axis string

const (
	AxisPrimary   Axis = "primary"
	AxisSecondary Axis = "secondary"
)

// Marker shapes.
const (
	MarkerCircle  = "circle"
	MarkerDiamond = "diamond"
)

// DefaultPalette is cycled by group index.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultAccent colors every secondary-axis trace.
const DefaultAccent = "#d62728"

// OverlayOpacity is the opacity of grouped smoothing overlays.
const OverlayOpacity = 0.6

// Style holds line and marker styling.
type Style struct {
	Dashed  bool    `json:"dashed"`
	Opacity float64 `json:"opacity"`
	Marker  string  `json:"marker,omitempty"`
	Width   float64 `json:"width"`
}

// Trace is a renderable series. X and Y always have the same, non-zero length.
type Trace struct {
	X        []timeseries.Instant `json:"x"`
	Y        []float64            `json:"y"`
	Label    string               `json:"label"`
	Group    string               `json:"group,omitempty"`
	Axis     Axis                 `json:"axis"`
	Color    string               `json:"color"`
	Style    Style                `json:"style"`
	Smoothed bool                 `json:"smoothed,omitempty"`
}

// Len returns the number of points.
func (t Trace) Len() int {
	return len(t.X)
}

// Series is the parsed data of one group. Secondary is only read in dual mode.
type Series struct {
	Key       string
	Primary   []timeseries.Point
	Secondary []timeseries.Point
}

// Options configures Build.
type Options struct {
	Mode      Mode
	Smoothing smoothing.Options
	Baseline  bool

	// Column names used in labels.
	YLabel  string
	Y2Label string

	Palette []string
	Accent  string
}

func (o Options) palette() []string {
	if len(o.Palette) == 0 {
		return DefaultPalette
	}
	return o.Palette
}

func (o Options) accent() string {
	if o.Accent == "" {
		return DefaultAccent
	}
	return o.Accent
}

// Build turns series into traces. In single mode each series yields a raw
// trace and, when smoothing is enabled and the length gate passes, an
// overlay. In dual mode each series yields a primary and a secondary trace,
// each rebased on its own first value when Baseline is set. Smoothing only
// applies in single mode. Traces without valid points are omitted.
func Build(series []Series, grouped bool, opts Options) []Trace {
	palette := opts.palette()

	var traces []Trace
	for i, s := range series {
		color := palette[i%len(palette)]

		if opts.Mode == ModeDual {
			traces = append(traces, buildDual(s, grouped, color, opts)...)
			continue
		}
		traces = append(traces, buildSingle(s, grouped, color, opts)...)
	}
	return traces
}

func buildSingle(s Series, grouped bool, color string, opts Options) []Trace {
	points := prepare(s.Primary, opts.Baseline)
	if len(points) == 0 {
		return nil
	}

	x := timeseries.Instants(points)
	raw := Trace{
		X:     x,
		Y:     timeseries.Values(points),
		Label: label(s.Key, opts.YLabel, grouped, false),
		Group: s.Key,
		Axis:  AxisPrimary,
		Color: color,
		Style: Style{Opacity: 1, Marker: MarkerCircle, Width: 1},
	}
	traces := []Trace{raw}

	smoothed, ok := smoothing.Apply(points, opts.Smoothing)
	if !ok {
		return traces
	}

	overlay := Trace{
		X:        x,
		Y:        smoothed,
		Label:    fmt.Sprintf("%s (%s)", raw.Label, opts.Smoothing.Label()),
		Group:    s.Key,
		Axis:     AxisPrimary,
		Smoothed: true,
	}
	if grouped {
		overlay.Color = color
		overlay.Style = Style{Dashed: true, Opacity: OverlayOpacity, Width: 1}
	} else {
		palette := opts.palette()
		overlay.Color = palette[1%len(palette)]
		overlay.Style = Style{Opacity: 1, Width: 2}
	}
	return append(traces, overlay)
}

func buildDual(s Series, grouped bool, color string, opts Options) []Trace {
	var traces []Trace

	if points := prepare(s.Primary, opts.Baseline); len(points) > 0 {
		traces = append(traces, Trace{
			X:     timeseries.Instants(points),
			Y:     timeseries.Values(points),
			Label: label(s.Key, opts.YLabel, grouped, true),
			Group: s.Key,
			Axis:  AxisPrimary,
			Color: color,
			Style: Style{Opacity: 1, Marker: MarkerCircle, Width: 1},
		})
	}

	if points := prepare(s.Secondary, opts.Baseline); len(points) > 0 {
		traces = append(traces, Trace{
			X:     timeseries.Instants(points),
			Y:     timeseries.Values(points),
			Label: label(s.Key, opts.Y2Label, grouped, true),
			Group: s.Key,
			Axis:  AxisSecondary,
			Color: opts.accent(),
			Style: Style{Dashed: true, Opacity: 1, Marker: MarkerDiamond, Width: 1},
		})
	}

	return traces
}

// prepare applies the trace baseline policy and drops points that are still
// invalid.
func prepare(points []timeseries.Point, rebase bool) []timeseries.Point {
	if rebase {
		values := baseline.ForTrace(timeseries.Values(points))
		rebased := make([]timeseries.Point, len(points))
		for i, p := range points {
			rebased[i] = timeseries.Point{Instant: p.Instant, Value: values[i]}
		}
		points = rebased
	}
	return timeseries.DropInvalid(points)
}

func label(key, column string, grouped, withColumn bool) string {
	switch {
	case !grouped:
		return column
	case withColumn:
		return fmt.Sprintf("%s: %s", key, column)
	default:
		return key
	}
}
