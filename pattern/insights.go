package pattern

import (
	"fmt"
	"sort"
)

// Insight message templates, one per condition kind.
const (
	increasingFormat = "%s shows an increasing trend"
	decreasingFormat = "%s shows a decreasing trend"
	volatileFormat   = "%s is highly volatile (coefficient of variation above 50%%)"
	seasonalFormat   = "%s repeats with a period of %d points"
	outliersFormat   = "%s has %d potential outlier(s)"
)

// Insights returns one message per condition detected in p, in the order
// trend, volatility, seasonality, outliers.
func Insights(column string, p Pattern) []string {
	var messages []string

	switch p.Trend {
	case TrendIncreasing:
		messages = append(messages, fmt.Sprintf(increasingFormat, column))
	case TrendDecreasing:
		messages = append(messages, fmt.Sprintf(decreasingFormat, column))
	}
	if p.Volatility == VolatilityHigh {
		messages = append(messages, fmt.Sprintf(volatileFormat, column))
	}
	if p.Seasonality > 0 {
		messages = append(messages, fmt.Sprintf(seasonalFormat, column, int(p.Seasonality)))
	}
	if len(p.Outliers) > 0 {
		messages = append(messages, fmt.Sprintf(outliersFormat, column, len(p.Outliers)))
	}

	return messages
}

// InsightsFor concatenates Insights for each column in order. When order is
// empty the columns of patterns are used in lexical order.
func InsightsFor(order []string, patterns map[string]Pattern) []string {
	if len(order) == 0 {
		for name := range patterns {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	var messages []string
	for _, name := range order {
		p, ok := patterns[name]
		if !ok {
			continue
		}
		messages = append(messages, Insights(name, p)...)
	}
	return messages
}
