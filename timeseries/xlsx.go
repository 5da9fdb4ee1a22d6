package timeseries

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSXOptions holds options for workbook loading.
type XLSXOptions struct {
	Sheet    string // Sheet name (default: first sheet)
	SkipRows int    // Number of rows to skip before the header
}

// LoadXLSX loads a table from the header row and data rows of a workbook sheet.
func LoadXLSX(filename string, opts *XLSXOptions) (*Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, NewSourceError(filename, "open", err)
	}
	defer f.Close()

	table, err := loadSheet(f, opts)
	if err != nil {
		return nil, NewSourceError(filename, "parse", err)
	}
	table.Name = filepath.Base(filename)
	return table, nil
}

// LoadXLSXFromReader loads a table from a workbook stream.
func LoadXLSXFromReader(r io.Reader, opts *XLSXOptions) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "opening workbook: %v", err)
	}
	defer f.Close()

	return loadSheet(f, opts)
}

func loadSheet(f *excelize.File, opts *XLSXOptions) (*Table, error) {
	if opts == nil {
		opts = &XLSXOptions{}
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrap(ErrNoRows, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "reading sheet %q: %v", sheet, err)
	}
	if len(records) <= opts.SkipRows {
		return nil, errors.Wrapf(ErrNoRows, "sheet %q has no header", sheet)
	}
	records = records[opts.SkipRows:]

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = cleanCell(h)
	}

	var rows []RawRow
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, toRow(columns, record))
	}

	return newTable(columns, rows)
}
