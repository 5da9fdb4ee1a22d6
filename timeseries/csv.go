package timeseries

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	SkipRows  int  // Number of rows to skip before the header
	Comment   rune // Lines starting with this rune are ignored (0 disables)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// LoadCSV loads a table from a CSV file with a header row.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, NewSourceError(filename, "open", err)
	}
	defer file.Close()

	table, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, NewSourceError(filename, "parse", err)
	}
	table.Name = filepath.Base(filename)
	return table, nil
}

// LoadCSVFromReader loads a table from an io.Reader. The first record after
// SkipRows is the header. Short records are padded with empty cells.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(ErrParse, "skipping row %d: %v", i+1, err)
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrNoRows, "missing header")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "reading header: %v", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = cleanCell(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "reading row %d: %v", len(rows)+1, err)
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, toRow(columns, record))
	}

	return newTable(columns, rows)
}

// newTable enforces the post-conditions shared by every row source.
func newTable(columns []string, rows []RawRow) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.WithStack(ErrNoRows)
	}
	table := &Table{Columns: columns, Rows: rows}
	if len(table.NumericColumns()) == 0 {
		return nil, errors.WithStack(ErrNoNumericColumns)
	}
	return table, nil
}

func toRow(columns []string, record []string) RawRow {
	row := make(RawRow, len(columns))
	for i, c := range columns {
		if i < len(record) {
			row[c] = cleanCell(record[i])
		} else {
			row[c] = ""
		}
	}
	return row
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
