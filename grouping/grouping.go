// Package grouping partitions rows into named series.
package grouping

import (
	"strings"

	"github.com/sartorproj/tsviz/timeseries"
)

// KeyHints are the substrings that mark a column as a likely grouping key.
var KeyHints = []string{"point", "name", "id", "station"}

// Group is a named subset of rows sharing a key value, in source order.
type Group struct {
	Key  string
	Rows []timeseries.RawRow
}

// SuggestKeyColumn returns the first column, in column order, whose
// lower-cased name contains one of KeyHints. It is a default suggestion only;
// Partition takes the key column explicitly.
func SuggestKeyColumn(columns []string) (string, bool) {
	for _, c := range columns {
		lower := strings.ToLower(c)
		for _, hint := range KeyHints {
			if strings.Contains(lower, hint) {
				return c, true
			}
		}
	}
	return "", false
}

// Partition splits rows by the raw value of keyColumn. Groups appear in
// first-seen order and keep their rows in source order. An empty keyColumn, or
// a key column that is empty on every row, yields one implicit group with an
// empty key.
func Partition(rows []timeseries.RawRow, keyColumn string) []Group {
	if keyColumn == "" || !hasKeyValues(rows, keyColumn) {
		return []Group{{Key: "", Rows: rows}}
	}

	index := make(map[string]int)
	var groups []Group
	for _, row := range rows {
		key := row.Get(keyColumn)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Grouped reports whether groups came from an actual key column rather than
// the implicit single group.
func Grouped(groups []Group) bool {
	return !(len(groups) == 1 && groups[0].Key == "")
}

// Keys returns the group keys in order.
func Keys(groups []Group) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

func hasKeyValues(rows []timeseries.RawRow, keyColumn string) bool {
	for _, row := range rows {
		if row.Get(keyColumn) != "" {
			return true
		}
	}
	return false
}
