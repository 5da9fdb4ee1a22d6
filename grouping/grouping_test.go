package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsviz/timeseries"
)

func TestSuggestKeyColumn(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected string
		found    bool
	}{
		{"point name", []string{"Timestamp", "PointName", "Value"}, "PointName", true},
		{"case insensitive", []string{"time", "STATION", "v"}, "STATION", true},
		{"first match wins", []string{"t", "sensor_id", "name"}, "sensor_id", true},
		{"substring id", []string{"t", "Width"}, "Width", true},
		{"no match", []string{"time", "value"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := SuggestKeyColumn(tt.columns)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, column)
		})
	}
}

func TestPartitionFirstSeenOrder(t *testing.T) {
	rows := []timeseries.RawRow{
		{"PointName": "B", "v": "1"},
		{"PointName": "A", "v": "2"},
		{"PointName": "B", "v": "3"},
		{"PointName": "A", "v": "4"},
	}

	groups := Partition(rows, "PointName")
	require.Len(t, groups, 2)

	assert.Equal(t, []string{"B", "A"}, Keys(groups))
	assert.Equal(t, "1", groups[0].Rows[0]["v"])
	assert.Equal(t, "3", groups[0].Rows[1]["v"])
	assert.Equal(t, "2", groups[1].Rows[0]["v"])
	assert.True(t, Grouped(groups))
}

func TestPartitionAAB(t *testing.T) {
	rows := []timeseries.RawRow{
		{"PointName": "A", "v": "1"},
		{"PointName": "A", "v": "2"},
		{"PointName": "B", "v": "3"},
	}

	groups := Partition(rows, "PointName")

	require.Equal(t, []string{"A", "B"}, Keys(groups))
	assert.Len(t, groups[0].Rows, 2)
	assert.Len(t, groups[1].Rows, 1)
}

func TestPartitionImplicitGroup(t *testing.T) {
	rows := []timeseries.RawRow{{"id": "", "v": "1"}, {"id": " ", "v": "2"}}

	for _, key := range []string{"", "id", "missing"} {
		groups := Partition(rows, key)
		require.Len(t, groups, 1, "key %q", key)
		assert.Equal(t, "", groups[0].Key)
		assert.Len(t, groups[0].Rows, 2)
		assert.False(t, Grouped(groups))
	}
}

func TestPartitionEmptyKeyAmongValues(t *testing.T) {
	rows := []timeseries.RawRow{{"id": "x"}, {"id": ""}, {"id": "x"}}

	groups := Partition(rows, "id")

	assert.Equal(t, []string{"x", ""}, Keys(groups))
	assert.True(t, Grouped(groups))
}
