package pipeline

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsviz/grouping"
	"github.com/sartorproj/tsviz/smoothing"
	"github.com/sartorproj/tsviz/timerange"
	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/trace"
)

// ErrInvalidSelection marks a selection whose parameters are out of range.
var ErrInvalidSelection = errors.New("invalid selection")

// TimeHints are the substrings that mark a column as a likely x column.
var TimeHints = []string{"time", "date"}

// TimeTokens mark a likely x column only as a whole word of the name, so
// "event_ts" matches and "Points" does not.
var TimeTokens = []string{"ts"}

// Selection is everything the caller chooses about a run.
type Selection struct {
	XColumn     string
	YColumn     string
	Y2Column    string // required in dual mode
	GroupColumn string // empty disables grouping

	Mode      trace.Mode
	Smoothing smoothing.Options
	Baseline  bool

	// Bounds restricts rows by instant. With AutoRange set and no explicit
	// bounds, the padded data range is used instead.
	Bounds    timerange.Bounds
	AutoRange bool
}

// Validate checks sel against table. Structural problems wrap
// timeseries.ErrParse; bad parameters wrap ErrInvalidSelection.
func (sel Selection) Validate(table *timeseries.Table) error {
	if table == nil || table.Len() == 0 {
		return errors.WithStack(timeseries.ErrNoRows)
	}
	if len(table.NumericColumns()) == 0 {
		return errors.WithStack(timeseries.ErrNoNumericColumns)
	}

	if err := requireColumn(table, "x", sel.XColumn); err != nil {
		return err
	}
	if err := requireColumn(table, "y", sel.YColumn); err != nil {
		return err
	}

	switch sel.Mode {
	case "", trace.ModeSingle:
	case trace.ModeDual:
		if err := requireColumn(table, "y2", sel.Y2Column); err != nil {
			return err
		}
	default:
		return errors.Wrapf(ErrInvalidSelection, "unknown chart mode %q", sel.Mode)
	}

	if sel.Y2Column != "" && !table.HasColumn(sel.Y2Column) {
		return errors.Wrapf(timeseries.ErrUnknownColumn, "y2 column %q", sel.Y2Column)
	}
	if sel.GroupColumn != "" && !table.HasColumn(sel.GroupColumn) {
		return errors.Wrapf(timeseries.ErrUnknownColumn, "group column %q", sel.GroupColumn)
	}

	if err := sel.Smoothing.Validate(); err != nil {
		return errors.Wrap(ErrInvalidSelection, err.Error())
	}
	if sel.Bounds.Start != nil && sel.Bounds.End != nil && *sel.Bounds.Start > *sel.Bounds.End {
		return errors.Wrapf(ErrInvalidSelection, "range %s is empty", sel.Bounds)
	}
	return nil
}

func requireColumn(table *timeseries.Table, role, column string) error {
	if column == "" {
		return errors.Wrapf(timeseries.ErrUnknownColumn, "no %s column selected", role)
	}
	if !table.HasColumn(column) {
		return errors.Wrapf(timeseries.ErrUnknownColumn, "%s column %q", role, column)
	}
	return nil
}

// Suggest proposes a selection from column names alone. The x column is the
// first whose name contains one of TimeHints or has a word in TimeTokens,
// else the first column. The y
// column is the first numeric column other than x. The group column comes
// from grouping.SuggestKeyColumn over the remaining columns.
func Suggest(table *timeseries.Table) Selection {
	sel := Selection{
		Mode:      trace.ModeSingle,
		Smoothing: smoothing.DefaultOptions(),
	}
	if table == nil || len(table.Columns) == 0 {
		return sel
	}

	sel.XColumn = table.Columns[0]
	for _, c := range table.Columns {
		if hasHint(c, TimeHints) || hasToken(c, TimeTokens) {
			sel.XColumn = c
			break
		}
	}

	for _, c := range table.NumericColumns() {
		if c != sel.XColumn {
			sel.YColumn = c
			break
		}
	}

	rest := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		if c != sel.XColumn && c != sel.YColumn {
			rest = append(rest, c)
		}
	}
	if key, ok := grouping.SuggestKeyColumn(rest); ok {
		sel.GroupColumn = key
	}

	return sel
}

// hasToken splits column at every character that is not a letter or digit.
func hasToken(column string, tokens []string) bool {
	words := strings.FieldsFunc(strings.ToLower(column), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		for _, t := range tokens {
			if w == t {
				return true
			}
		}
	}
	return false
}

func hasHint(column string, hints []string) bool {
	lower := strings.ToLower(column)
	for _, h := range hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
