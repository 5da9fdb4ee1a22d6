// Package timestamp converts heterogeneous raw cell values into instants.
package timestamp

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/sartorproj/tsviz/timeseries"
)

// Numeric classification thresholds. Values below GPSThreshold are GPS
// seconds, values below UnixSecondsThreshold are Unix seconds and anything
// larger is Unix milliseconds.
const (
	GPSThreshold         = 1_000_000_000
	UnixSecondsThreshold = 10_000_000_000
)

// GPSEpoch is the origin of GPS time. Leap seconds are not applied.
var GPSEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// extraLayouts are tried after the layouts understood by cast.
var extraLayouts = []string{
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04:05",
	"02-Jan-2006",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05.000",
}

// Normalizer converts raw values into instants. The zero value uses the wall
// clock for the empty-value fallback.
type Normalizer struct {
	// Now supplies the fallback instant. Defaults to time.Now.
	Now func() time.Time
}

// Default returns a Normalizer backed by the wall clock.
func Default() *Normalizer {
	return &Normalizer{Now: time.Now}
}

// Fixed returns a Normalizer whose fallback is always t.
func Fixed(t time.Time) *Normalizer {
	return &Normalizer{Now: func() time.Time { return t }}
}

// Normalize converts v into an instant, falling back to the current instant
// when v is empty or cannot be interpreted.
func (n *Normalizer) Normalize(v any) timeseries.Instant {
	instant, _ := n.Parse(v)
	return instant
}

// Parse converts v into an instant. The boolean is false when the fallback
// instant was used.
//
// Strings are tried as calendar dates first, then as numbers. Numbers below
// GPSThreshold are GPS seconds, below UnixSecondsThreshold Unix seconds,
// otherwise Unix milliseconds. The classification is a heuristic and values
// close to a threshold may be misclassified.
func (n *Normalizer) Parse(v any) (timeseries.Instant, bool) {
	switch val := v.(type) {
	case nil:
		return n.now(), false
	case time.Time:
		if val.IsZero() {
			return n.now(), false
		}
		return timeseries.FromTime(val), true
	case timeseries.Instant:
		return val, true
	case string:
		return n.parseString(val)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return n.parseString(cast.ToString(v))
	}
	return n.fromNumber(f)
}

func (n *Normalizer) parseString(s string) (timeseries.Instant, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return n.now(), false
	}

	if t, ok := parseCalendar(s); ok {
		return timeseries.FromTime(t), true
	}

	f, err := cast.ToFloat64E(s)
	if err != nil {
		// one more calendar attempt on the unquoted value
		if t, ok := parseCalendar(strings.TrimSpace(strings.Trim(s, `"'`))); ok {
			return timeseries.FromTime(t), true
		}
		return n.now(), false
	}
	return n.fromNumber(f)
}

func (n *Normalizer) now() timeseries.Instant {
	if n == nil || n.Now == nil {
		return timeseries.FromTime(time.Now())
	}
	return timeseries.FromTime(n.Now())
}

// Kind is the numeric interpretation chosen for a value.
type Kind string

const (
	KindGPSSeconds  Kind = "gps_seconds"
	KindUnixSeconds Kind = "unix_seconds"
	KindUnixMillis  Kind = "unix_millis"
)

// Classify reports which numeric interpretation applies to v.
func Classify(v float64) Kind {
	switch {
	case v < GPSThreshold:
		return KindGPSSeconds
	case v < UnixSecondsThreshold:
		return KindUnixSeconds
	default:
		return KindUnixMillis
	}
}

func (n *Normalizer) fromNumber(v float64) (timeseries.Instant, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return n.now(), false
	}
	switch Classify(v) {
	case KindGPSSeconds:
		return timeseries.Instant(GPSEpoch.UnixMilli() + int64(math.Round(v*1000))), true
	case KindUnixSeconds:
		return timeseries.Instant(int64(math.Round(v * 1000))), true
	default:
		return timeseries.Instant(int64(math.Round(v))), true
	}
}

func parseCalendar(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := cast.ToTimeInDefaultLocationE(s, time.UTC); err == nil {
		return t, true
	}
	for _, layout := range extraLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
