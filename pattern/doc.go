// Package pattern detects volatility, trend, seasonality, outliers and scale
// in a numeric column and phrases the findings as short insights.
//
//	p := pattern.Detect(values)
//	for _, msg := range pattern.Insights("temperature", p) {
//	    fmt.Println(msg)
//	}
//
// # Rules
//
// Volatility uses cv = stdDev/mean: above 0.5 is high, above 0.2 medium,
// otherwise low. A zero mean gives low.
//
// Trend needs at least 3 values. More than 70% rises between consecutive
// values is increasing, more than 70% falls is decreasing, otherwise stable.
//
// Seasonality needs at least 12 values and tries the periods 7, 12, 24 and 30
// in that order. A period needs two full cycles; a phase is low-variance when
// its variance is below 0.1 times its mean, and more than 60% of the phases
// must be low-variance.
//
// Outliers need at least 4 values and use IQR fences at 1.5 IQR, with Q1 and
// Q3 taken at sorted indices floor(0.25 N) and floor(0.75 N).
//
// Scale is large for a range above 1000, medium above 100, otherwise small.
package pattern
