// Package smoothing computes trailing moving averages, by point count or by
// time window.
package smoothing

import (
	"fmt"
	"math"

	"github.com/sartorproj/tsviz/stats"
	"github.com/sartorproj/tsviz/timeseries"
)

// Method selects a smoothing algorithm.
type Method string

const (
	MethodNone  Method = "none"
	MethodCount Method = "count"
	MethodTime  Method = "time"
)

// Parameter limits.
const (
	MinWindow = 3
	MaxWindow = 20
	MinHours  = 1
	MaxHours  = 168

	DefaultWindow = 5
	DefaultHours  = 24

	// timeGate is the minimum length, exclusive, for time-based smoothing.
	timeGate = 2
)

const hourMillis = 3600 * 1000

// Options configures smoothing.
type Options struct {
	Method Method  // none, count or time
	Window int     // Points in the trailing window (count mode)
	Hours  float64 // Trailing window length in hours (time mode)
}

// DefaultOptions returns smoothing disabled with default parameters.
func DefaultOptions() Options {
	return Options{
		Method: MethodNone,
		Window: DefaultWindow,
		Hours:  DefaultHours,
	}
}

// Enabled reports whether a smoothing method is selected.
func (o Options) Enabled() bool {
	return o.Method == MethodCount || o.Method == MethodTime
}

// Validate checks the parameter of the selected method.
func (o Options) Validate() error {
	switch o.Method {
	case "", MethodNone:
		return nil
	case MethodCount:
		if o.Window < MinWindow || o.Window > MaxWindow {
			return fmt.Errorf("smoothing window must be in [%d, %d], got %d", MinWindow, MaxWindow, o.Window)
		}
	case MethodTime:
		if o.Hours < MinHours || o.Hours > MaxHours {
			return fmt.Errorf("smoothing hours must be in [%d, %d], got %g", MinHours, MaxHours, o.Hours)
		}
	default:
		return fmt.Errorf("unknown smoothing method %q", o.Method)
	}
	return nil
}

// Label describes the smoothing for trace labels, e.g. "MA 5" or "24h avg".
func (o Options) Label() string {
	switch o.Method {
	case MethodCount:
		return fmt.Sprintf("MA %d", o.Window)
	case MethodTime:
		return fmt.Sprintf("%gh avg", o.Hours)
	}
	return ""
}

// Apply smooths the values of points with the selected method. It returns
// false, and no values, when smoothing is disabled or the series does not
// exceed the length gate: the window size in count mode, 2 in time mode.
func Apply(points []timeseries.Point, opts Options) ([]float64, bool) {
	switch opts.Method {
	case MethodCount:
		if opts.Window < 1 || len(points) <= opts.Window {
			return nil, false
		}
		return ByCount(timeseries.Values(points), opts.Window), true
	case MethodTime:
		if len(points) <= timeGate {
			return nil, false
		}
		return ByTime(points, opts.Hours), true
	}
	return nil, false
}

// ByCount returns the trailing moving average of values: element i is the
// mean of values[max(0, i-window+1)..i].
func ByCount(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	result := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := window
		if i+1 < window {
			n = i + 1
		}
		result[i] = sum / float64(n)
		if !finite(result[i]) {
			result[i] = stats.Mean(values[i+1-n : i+1])
		}
	}
	return result
}

// ByTime returns the causal time-window average of points: element i is the
// mean of every point j <= i whose instant lies in [t_i - hours, t_i]. Later
// points never contribute, even when they are closer in time.
func ByTime(points []timeseries.Point, hours float64) []float64 {
	span := timeseries.Instant(hours * hourMillis)

	result := make([]float64, len(points))
	for i, p := range points {
		lower := p.Instant - span
		sum, count := 0.0, 0
		for j := 0; j <= i; j++ {
			t := points[j].Instant
			if t >= lower && t <= p.Instant {
				sum += points[j].Value
				count++
			}
		}
		if count == 0 {
			result[i] = p.Value
			continue
		}
		result[i] = sum / float64(count)
		if !finite(result[i]) {
			result[i] = stats.Mean(inWindow(points[:i+1], lower, p.Instant))
		}
	}
	return result
}

func inWindow(points []timeseries.Point, lower, upper timeseries.Instant) []float64 {
	var values []float64
	for _, p := range points {
		if p.Instant >= lower && p.Instant <= upper {
			values = append(values, p.Value)
		}
	}
	return values
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
