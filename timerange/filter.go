// Package timerange restricts rows to an inclusive instant interval.
package timerange

import (
	"fmt"
	"sort"

	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/timestamp"
)

// PaddingRatio is the share of the data span added on both ends by Optimal.
const PaddingRatio = 0.05

// Bounds is an optional, inclusive [Start, End] interval.
type Bounds struct {
	Start *timeseries.Instant
	End   *timeseries.Instant
}

// NewBounds returns bounds with both ends set.
func NewBounds(start, end timeseries.Instant) Bounds {
	return Bounds{Start: &start, End: &end}
}

// IsZero reports whether neither bound is set.
func (b Bounds) IsZero() bool {
	return b.Start == nil && b.End == nil
}

// Contains reports whether instant lies inside the bounds. Both ends are inclusive.
func (b Bounds) Contains(instant timeseries.Instant) bool {
	if b.Start != nil && instant < *b.Start {
		return false
	}
	if b.End != nil && instant > *b.End {
		return false
	}
	return true
}

func (b Bounds) String() string {
	start, end := "-inf", "+inf"
	if b.Start != nil {
		start = b.Start.String()
	}
	if b.End != nil {
		end = b.End.String()
	}
	return fmt.Sprintf("[%s, %s]", start, end)
}

// Filter returns the rows whose xColumn instant lies within bounds, in their
// original order. With no bounds set the input slice is returned as is.
func Filter(rows []timeseries.RawRow, xColumn string, bounds Bounds, n *timestamp.Normalizer) []timeseries.RawRow {
	if bounds.IsZero() {
		return rows
	}
	if n == nil {
		n = timestamp.Default()
	}

	result := make([]timeseries.RawRow, 0, len(rows))
	for _, row := range rows {
		if bounds.Contains(n.Normalize(row[xColumn])) {
			result = append(result, row)
		}
	}
	return result
}

// Optimal derives default bounds from the data: the [min, max] of all valid
// instants in xColumn, padded on both ends by PaddingRatio of the span. It
// returns false when no cell holds a valid instant.
func Optimal(rows []timeseries.RawRow, xColumn string, n *timestamp.Normalizer) (Bounds, bool) {
	if n == nil {
		n = timestamp.Default()
	}

	instants := make([]timeseries.Instant, 0, len(rows))
	for _, row := range rows {
		if instant, ok := n.Parse(row[xColumn]); ok {
			instants = append(instants, instant)
		}
	}
	if len(instants) == 0 {
		return Bounds{}, false
	}

	sort.Slice(instants, func(i, j int) bool { return instants[i] < instants[j] })
	lo, hi := instants[0], instants[len(instants)-1]
	pad := timeseries.Instant(float64(hi-lo) * PaddingRatio)

	return NewBounds(lo-pad, hi+pad), true
}
