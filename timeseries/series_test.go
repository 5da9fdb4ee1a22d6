package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func isNaN(v float64) bool {
	return math.IsNaN(v)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		nan      bool
	}{
		{"123", 123, false},
		{"123.45", 123.45, false},
		{"-100", -100, false},
		{" 7 ", 7, false},
		{`"42"`, 42, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"NA", 0, true},
		{"null", 0, true},
		{"hello", 0, true},
		{"2024-01-01", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseValue(tt.input)
			if tt.nan {
				assert.True(t, math.IsNaN(result), "ParseValue(%q) = %v", tt.input, result)
				return
			}
			assert.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestNumericColumns(t *testing.T) {
	table := &Table{
		Columns: []string{"time", "station", "temp", "empty"},
		Rows: []RawRow{
			{"time": "2024-01-01", "station": "north", "temp": "x", "empty": ""},
			{"time": "2024-01-02", "station": "south", "temp": "4.5", "empty": ""},
		},
	}

	assert.Equal(t, []string{"temp"}, table.NumericColumns())
	assert.True(t, table.HasColumn("station"))
	assert.False(t, table.HasColumn("Station"))
}

func TestInstant(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	i := FromTime(ts)

	assert.Equal(t, Instant(1704164645000), i)
	assert.True(t, i.Time().Equal(ts))
	assert.Equal(t, "2024-01-02T03:04:05Z", i.String())
}

func TestDropInvalid(t *testing.T) {
	points := []Point{
		{Instant: 1, Value: 1},
		{Instant: 2, Value: math.NaN()},
		{Instant: 3, Value: math.Inf(1)},
		{Instant: 4, Value: 4},
	}

	valid := DropInvalid(points)

	assert.Equal(t, []Instant{1, 4}, Instants(valid))
	assert.Equal(t, []float64{1, 4}, Values(valid))
	assert.Len(t, points, 4, "input must not be modified")
}
