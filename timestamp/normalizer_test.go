package timestamp

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sartorproj/tsviz/timeseries"
)

var fallback = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

func TestParseThresholds(t *testing.T) {
	n := Fixed(fallback)

	tests := []struct {
		name     string
		input    string
		kind     Kind
		expected timeseries.Instant
	}{
		{"gps upper edge", "999999999", KindGPSSeconds, timeseries.Instant(315964800000 + 999999999000)},
		{"unix seconds lower edge", "1000000000", KindUnixSeconds, 1000000000000},
		{"unix seconds upper edge", "9999999999", KindUnixSeconds, 9999999999000},
		{"unix millis lower edge", "10000000000", KindUnixMillis, 10000000000},
		{"gps zero", "0", KindGPSSeconds, timeseries.FromTime(GPSEpoch)},
		{"fractional unix", "1700000000.5", KindUnixSeconds, 1700000000500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := timeseries.ParseValue(tt.input)
			assert.Equal(t, tt.kind, Classify(v))

			instant, ok := n.Parse(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, instant)
		})
	}
}

func TestParseCalendarStrings(t *testing.T) {
	n := Fixed(fallback)

	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T12:00:00Z", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"2024-01-01T12:00:00+02:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01 08:30:00", time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"2024/01/02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"01/02/2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"02-Jan-2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{`"2024-03-04"`, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			instant, ok := n.Parse(tt.input)
			assert.True(t, ok)
			assert.Equal(t, timeseries.FromTime(tt.expected), instant)
		})
	}
}

func TestFallbackToNow(t *testing.T) {
	n := Fixed(fallback)
	want := timeseries.FromTime(fallback)

	for _, input := range []any{nil, "", "   ", "not a date", "NaN", time.Time{}} {
		instant, ok := n.Parse(input)
		assert.False(t, ok, "input %#v", input)
		assert.Equal(t, want, instant, "input %#v", input)
		assert.Equal(t, want, n.Normalize(input))
	}
}

func TestParseNativeValues(t *testing.T) {
	n := Fixed(fallback)
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected timeseries.Instant
	}{
		{"int unix seconds", 1700000000, 1700000000000},
		{"int64 millis", int64(1700000000000), 1700000000000},
		{"float gps", 1.5, timeseries.Instant(GPSEpoch.UnixMilli() + 1500)},
		{"time", ts, timeseries.FromTime(ts)},
		{"instant", timeseries.Instant(42), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, ok := n.Parse(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, instant)
		})
	}
}

func TestClassifyNegative(t *testing.T) {
	assert.Equal(t, KindGPSSeconds, Classify(-5))
	assert.Equal(t, KindUnixMillis, Classify(math.MaxFloat64))
}

func TestZeroNormalizerUsesWallClock(t *testing.T) {
	var n Normalizer
	before := time.Now().Add(-time.Second)

	instant := n.Normalize("")

	assert.True(t, instant.Time().After(before))
}
