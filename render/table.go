package render

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sartorproj/tsviz/pattern"
	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/recent"
	"github.com/sartorproj/tsviz/stats"
	"github.com/sartorproj/tsviz/timeseries"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// StatsTable prints statistics with four decimal digits.
func StatsTable(w io.Writer, column string, s stats.Statistics) {
	f := s.Fixed()
	t := newTable(w)
	t.SetTitle(column)
	t.AppendHeader(table.Row{"count", "mean", "std dev", "min", "max", "median"})
	t.AppendRow(table.Row{f.Count, f.Mean, f.StdDev, f.Min, f.Max, f.Median})
	t.Render()
}

// PatternTable prints one row per column, in order.
func PatternTable(w io.Writer, order []string, patterns map[string]pattern.Pattern) {
	t := newTable(w)
	t.AppendHeader(table.Row{"column", "trend", "volatility", "seasonality", "outliers", "range", "scale"})
	for _, name := range order {
		p, ok := patterns[name]
		if !ok {
			continue
		}
		season := "-"
		if p.Seasonality > 0 {
			season = fmt.Sprintf("%d points", int(p.Seasonality))
		}
		t.AppendRow(table.Row{name, p.Trend, p.Volatility, season, len(p.Outliers), stats.FormatFixed(p.Range), p.Scale})
	}
	t.Render()
}

// Insights prints one bullet per message.
func Insights(w io.Writer, messages []string) {
	if len(messages) == 0 {
		fmt.Fprintln(w, color.HiBlackString("no notable patterns"))
		return
	}
	bullet := color.New(color.FgYellow).Sprint("•")
	for _, m := range messages {
		fmt.Fprintf(w, "%s %s\n", bullet, m)
	}
}

// ColumnsTable prints every column with whether it is numeric and the role
// sel gives it.
func ColumnsTable(w io.Writer, tbl *timeseries.Table, sel pipeline.Selection) {
	numeric := make(map[string]bool)
	for _, c := range tbl.NumericColumns() {
		numeric[c] = true
	}

	t := newTable(w)
	t.SetTitle(fmt.Sprintf("%s (%d rows)", tbl.Name, tbl.Len()))
	t.AppendHeader(table.Row{"column", "numeric", "role"})
	for _, c := range tbl.Columns {
		t.AppendRow(table.Row{c, yesNo(numeric[c]), role(c, sel)})
	}
	t.Render()
}

func role(column string, sel pipeline.Selection) string {
	switch column {
	case sel.XColumn:
		return color.CyanString("x")
	case sel.YColumn:
		return color.GreenString("y")
	case sel.Y2Column:
		return color.RedString("y2")
	case sel.GroupColumn:
		return color.MagentaString("group")
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RecentTable prints recent files, sizes humanized and times relative to now.
func RecentTable(w io.Writer, entries []recent.Entry, now time.Time) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "name", "size", "modified", "opened"})
	for i, e := range entries {
		modified := "-"
		if !e.LastModified.IsZero() {
			modified = humanize.RelTime(e.LastModified, now, "ago", "from now")
		}
		t.AppendRow(table.Row{
			i + 1,
			e.Name,
			humanize.Bytes(uint64(e.Size)),
			modified,
			humanize.RelTime(e.Timestamp, now, "ago", "from now"),
		})
	}
	t.Render()
}
