package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsviz/timeseries"
)

const readings = `time,PointName,load,temp
2024-01-01,A,10,1
2024-01-02,A,20,2
2024-01-03,B,30,3
`

func setup(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("TSVIZ_RECENT_FILE", filepath.Join(dir, "recent.yaml"))
	file := filepath.Join(dir, "readings.csv")
	require.NoError(t, os.WriteFile(file, []byte(readings), 0o644))
	return file
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChartJSON(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "chart", file, "-y", "load", "--no-group", "--baseline", "--format", "json")

	require.NoError(t, err)
	var result struct {
		Traces []struct {
			Y []float64 `json:"y"`
		} `json:"traces"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Traces, 1)
	assert.Equal(t, []float64{0, 10, 20}, result.Traces[0].Y)
}

func TestChartDualGrouped(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "chart", file, "-y", "load", "--y2", "temp", "--mode", "dual", "--format", "json")

	require.NoError(t, err)
	var result struct {
		Traces []json.RawMessage `json:"traces"`
		Groups []string          `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Traces, 4)
	assert.Equal(t, []string{"A", "B"}, result.Groups)
}

func TestChartHTMLToFile(t *testing.T) {
	file := setup(t)
	output := filepath.Join(t.TempDir(), "chart.html")

	_, err := execute(t, "chart", file, "-o", output)

	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "readings.csv")
}

func TestChartTerminalSizeFromEnvironment(t *testing.T) {
	file := setup(t)
	t.Setenv("TSVIZ_WIDTH", "40")
	t.Setenv("TSVIZ_HEIGHT", "10")

	out, err := execute(t, "chart", file, "-y", "load", "--no-group", "--format", "term")

	require.NoError(t, err)
	assert.Positive(t, lipgloss.Width(out))
	assert.LessOrEqual(t, lipgloss.Width(out), 40)
}

func TestChartTerminalDefaultSize(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "chart", file, "-y", "load", "--no-group", "--format", "term")

	require.NoError(t, err)
	assert.LessOrEqual(t, lipgloss.Width(out), 80)
	assert.Greater(t, lipgloss.Width(out), 40)
}

func TestChartRejectsFormat(t *testing.T) {
	file := setup(t)

	_, err := execute(t, "chart", file, "--format", "svg")

	assert.Error(t, err)
}

func TestChartInvalidWindow(t *testing.T) {
	file := setup(t)

	_, err := execute(t, "chart", file, "--smooth", "count", "--window", "40")

	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "stats", file, "-y", "load")

	require.NoError(t, err)
	assert.Contains(t, out, "20.0000")
	assert.Contains(t, out, "8.1650")
}

func TestInsights(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "insights", file, "-y", "load", "--no-group")

	require.NoError(t, err)
	assert.Contains(t, out, "load shows an increasing trend")
}

func TestExportRebase(t *testing.T) {
	file := setup(t)

	out, err := execute(t, "export", file, "--columns", "load", "--rebase")

	require.NoError(t, err)
	assert.Equal(t, "time,load\n2024-01-01T00:00:00Z,0\n2024-01-02T00:00:00Z,10\n2024-01-03T00:00:00Z,20\n", out)
}

func TestUnknownColumn(t *testing.T) {
	file := setup(t)

	_, err := execute(t, "stats", file, "-y", "nope")

	assert.ErrorIs(t, err, timeseries.ErrUnknownColumn)
}

func TestRecentAfterOpen(t *testing.T) {
	file := setup(t)

	_, err := execute(t, "columns", file)
	require.NoError(t, err)

	out, err := execute(t, "recent")
	require.NoError(t, err)
	assert.Contains(t, out, "readings.csv")
}

func TestMissingFile(t *testing.T) {
	setup(t)

	_, err := execute(t, "--retries", "0", "stats", filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, timeseries.ErrIO)
}
