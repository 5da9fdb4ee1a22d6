package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sartorproj/tsviz/trace"
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Terminal renders traces as braille line charts. Secondary-axis traces get
// their own chart below the primary one. Width and Height are in cells.
func Terminal(traces []trace.Trace, o ChartOptions) (string, error) {
	if len(traces) == 0 {
		return "", ErrNoTraces
	}
	width, height := o.size(80, 20)

	var primary, secondary []trace.Trace
	for _, t := range traces {
		if t.Axis == trace.AxisSecondary {
			secondary = append(secondary, t)
		} else {
			primary = append(primary, t)
		}
	}

	var blocks []string
	if o.Title != "" {
		blocks = append(blocks, titleStyle.Render(o.Title))
	}
	if len(primary) > 0 {
		blocks = append(blocks, axisTitle(o.YLabel), terminalChart(primary, width, height), legend(primary))
	}
	if len(secondary) > 0 {
		blocks = append(blocks, axisTitle(o.Y2Label), terminalChart(secondary, width, height), legend(secondary))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), nil
}

func axisTitle(name string) string {
	return labelStyle.Render(name)
}

func terminalChart(traces []trace.Trace, width, height int) string {
	minTime, maxTime, minValue, maxValue := extent(traces)
	if !maxTime.After(minTime) {
		maxTime = minTime.Add(time.Second)
	}
	if maxValue <= minValue {
		maxValue = minValue + 1
	}

	chart := tslc.New(width, height,
		tslc.WithXYSteps(2, 3),
		tslc.WithAxesStyles(axisStyle, labelStyle),
		tslc.WithTimeRange(minTime, maxTime),
		tslc.WithYRange(minValue, maxValue),
		tslc.WithXLabelFormatter(func(_ int, v float64) string {
			return time.Unix(int64(v), 0).UTC().Format("01-02 15:04")
		}),
		tslc.WithYLabelFormatter(func(_ int, v float64) string {
			return fmt.Sprintf("%.4g", v)
		}),
	)

	for i, t := range traces {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
		name := fmt.Sprintf("%d:%s", i, t.Label)
		if i == 0 {
			chart.SetStyle(style)
		} else {
			chart.SetDataSetStyle(name, style)
		}
		for j := range t.X {
			point := tslc.TimePoint{Time: t.X[j].Time(), Value: t.Y[j]}
			if i == 0 {
				chart.Push(point)
			} else {
				chart.PushDataSet(name, point)
			}
		}
	}

	chart.DrawBrailleAll()
	return chart.View()
}

func extent(traces []trace.Trace) (time.Time, time.Time, float64, float64) {
	var minTime, maxTime time.Time
	minValue, maxValue := math.Inf(1), math.Inf(-1)
	seen := false
	for _, t := range traces {
		for i, x := range t.X {
			ts := x.Time()
			if !seen || ts.Before(minTime) {
				minTime = ts
			}
			if !seen || ts.After(maxTime) {
				maxTime = ts
			}
			seen = true
			minValue = math.Min(minValue, t.Y[i])
			maxValue = math.Max(maxValue, t.Y[i])
		}
	}
	return minTime, maxTime, minValue, maxValue
}

func legend(traces []trace.Trace) string {
	entries := make([]string, len(traces))
	for i, t := range traces {
		mark := "━"
		if t.Style.Dashed {
			mark = "╍"
		}
		entries[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(mark+" ") + t.Label
	}
	return strings.Join(entries, "  ")
}
