// Package render draws traces as HTML, PNG and terminal charts, and prints
// statistics, insights and recent files as tables.
package render

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/tsviz/trace"
)

// ErrNoTraces is returned when there is nothing to draw.
var ErrNoTraces = errors.New("no traces to render")

// ChartOptions describes the chart frame.
type ChartOptions struct {
	Title   string
	XLabel  string
	YLabel  string
	Y2Label string
	Width   int
	Height  int
}

// DefaultChartOptions returns a 1200x600 frame.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		XLabel: "time",
		Width:  1200,
		Height: 600,
	}
}

func (o ChartOptions) size(defaultWidth, defaultHeight int) (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func hasSecondary(traces []trace.Trace) bool {
	for _, t := range traces {
		if t.Axis == trace.AxisSecondary {
			return true
		}
	}
	return false
}

// parseColor reads a #rrggbb color and applies opacity.
func parseColor(hex string, opacity float64) drawing.Color {
	c := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	if opacity > 0 && opacity < 1 {
		c = c.WithAlpha(uint8(opacity * 255))
	}
	return c
}

// rgba renders a color for CSS consumers.
func rgba(hex string, opacity float64) string {
	c := parseColor(hex, opacity)
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
