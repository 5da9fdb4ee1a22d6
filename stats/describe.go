package stats

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Precision is the number of decimal digits used for presentation.
const Precision = 4

// Statistics holds descriptive statistics at full precision.
type Statistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summary is Statistics rendered with Precision fixed decimal digits.
type Summary struct {
	Count  int    `json:"count"`
	Mean   string `json:"mean"`
	StdDev string `json:"stdDev"`
	Min    string `json:"min"`
	Max    string `json:"max"`
	Median string `json:"median"`
}

// Describe computes statistics for values, which must already be finite.
// The standard deviation is the population one (divides by N). The median is
// the element at index floor(N/2) of the sorted values, so for even N it is
// the upper of the two middle elements. Empty input yields all zeros.
func Describe(values []float64) Statistics {
	n := len(values)
	if n == 0 {
		return Statistics{}
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	stdDev := math.Sqrt(variance)
	if !finite(mean) || !finite(stdDev) {
		mean, stdDev = scaledMeanStdDev(values)
	}

	return Statistics{
		Count:  n,
		Mean:   mean,
		StdDev: stdDev,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: UpperMedian(values),
	}
}

// Mean returns the arithmetic mean of values, or 0 for empty input. Values
// near the float64 limit do not overflow the result.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if mean := stat.Mean(values, nil); finite(mean) {
		return mean
	}
	mean, _ := scaledMeanStdDev(values)
	return mean
}

// scaledMeanStdDev works on values divided by their largest magnitude, so
// neither the sum nor the squared deviations leave the float64 range.
func scaledMeanStdDev(values []float64) (float64, float64) {
	m := floats.Norm(values, math.Inf(1))
	if m == 0 || !finite(m) {
		return 0, 0
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v / m
	}
	mean, variance := stat.PopMeanVariance(scaled, nil)
	return mean * m, math.Sqrt(variance) * m
}

// UpperMedian returns sorted(values)[floor(N/2)], or 0 for empty input.
func UpperMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := Sorted(values)
	return sorted[len(sorted)/2]
}

// Sorted returns an ascending copy of values.
func Sorted(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// PopVariance returns the population variance of values, or 0 for empty input.
func PopVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(values, nil)
	return variance
}

// Finite returns the finite entries of values in order.
func Finite(values []float64) []float64 {
	result := make([]float64, 0, len(values))
	for _, v := range values {
		if finite(v) {
			result = append(result, v)
		}
	}
	return result
}

// Fixed renders s with Precision decimal digits.
func (s Statistics) Fixed() Summary {
	return Summary{
		Count:  s.Count,
		Mean:   FormatFixed(s.Mean),
		StdDev: FormatFixed(s.StdDev),
		Min:    FormatFixed(s.Min),
		Max:    FormatFixed(s.Max),
		Median: FormatFixed(s.Median),
	}
}

// FormatFixed renders v with Precision decimal digits.
func FormatFixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return decimal.NewFromFloat(v).StringFixed(Precision)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
