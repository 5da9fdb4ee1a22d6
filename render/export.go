package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsviz/baseline"
	"github.com/sartorproj/tsviz/pipeline"
	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/timestamp"
	"github.com/sartorproj/tsviz/trace"
)

// TracesCSV writes one row per point: label, axis, time, value.
func TracesCSV(w io.Writer, traces []trace.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"trace", "axis", "time", "value"}); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, t := range traces {
		for i := range t.X {
			record := []string{t.Label, string(t.Axis), t.X[i].Time().Format(time.RFC3339Nano), formatValue(t.Y[i])}
			if err := cw.Write(record); err != nil {
				return errors.Wrap(err, "writing row")
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ColumnsCSV exports the normalized x column and the given value columns of
// tbl. With rebase set every value column is shifted so its first valid
// value is zero; cells that do not parse stay empty.
func ColumnsCSV(w io.Writer, tbl *timeseries.Table, xColumn string, columns []string, rebase bool, n *timestamp.Normalizer) error {
	if n == nil {
		n = timestamp.Default()
	}

	values := make([][]float64, len(columns))
	for i, c := range columns {
		values[i] = tbl.Values(c)
		if rebase {
			values[i] = baseline.Rebase(values[i])
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{xColumn}, columns...)); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for r, row := range tbl.Rows {
		record := make([]string, 0, len(columns)+1)
		record = append(record, n.Normalize(row[xColumn]).Time().Format(time.RFC3339Nano))
		for i := range columns {
			record = append(record, formatValue(values[i][r]))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing row %d", r+1)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// JSON writes the result indented.
func JSON(w io.Writer, result *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
