// Package timeseries provides the tabular data model shared by the pipeline.
package timeseries

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// RawRow maps a column name to the raw cell text produced by a row source.
// Rows are treated as immutable once loaded.
type RawRow map[string]string

// Get returns the trimmed cell value for column, or "" when it is absent.
func (r RawRow) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Table is a sequence of raw rows plus the header-derived column names.
type Table struct {
	Columns []string
	Rows    []RawRow
	Name    string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether column is one of the table's columns.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// NumericColumns returns, in column order, every column holding at least one
// finite numeric cell.
func (t *Table) NumericColumns() []string {
	var numeric []string
	for _, c := range t.Columns {
		for _, row := range t.Rows {
			if !math.IsNaN(ParseValue(row[c])) {
				numeric = append(numeric, c)
				break
			}
		}
	}
	return numeric
}

// Values parses column for every row. Unparseable cells are NaN.
func (t *Table) Values(column string) []float64 {
	return ColumnValues(t.Rows, column)
}

// ColumnValues parses column for every row. Unparseable cells are NaN.
func ColumnValues(rows []RawRow, column string) []float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = ParseValue(row[column])
	}
	return values
}

// ParseValue interprets a cell as a number. Cells that cannot be converted,
// including NA markers and non-finite values, yield NaN.
func ParseValue(raw string) float64 {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "\""))
	switch s {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL":
		return math.NaN()
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// Instant is a point in time in epoch milliseconds, UTC.
type Instant int64

// FromTime converts t into an Instant.
func FromTime(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

func (i Instant) String() string {
	return i.Time().Format(time.RFC3339Nano)
}

// Point is one observation of a series. Value is NaN when the source cell
// failed to parse.
type Point struct {
	Instant Instant
	Value   float64
}

// Valid reports whether the point carries a finite value.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0)
}

// Values returns the values of points in order.
func Values(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}

// Instants returns the instants of points in order.
func Instants(points []Point) []Instant {
	instants := make([]Instant, len(points))
	for i, p := range points {
		instants[i] = p.Instant
	}
	return instants
}

// DropInvalid returns the points with finite values, preserving order.
func DropInvalid(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Valid() {
			result = append(result, p)
		}
	}
	return result
}
