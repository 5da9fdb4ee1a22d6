// Package baseline rebases numeric sequences so the first valid value is zero.
//
// Two policies exist for entries that are not numbers. Rebase passes them
// through unchanged and is the standalone utility used for column export.
// ForTrace replaces them with 0 and is the step used when trace data is built.
// Both return the input unchanged when it holds no valid number.
package baseline

import "math"

// First returns the first finite value of values.
func First(values []float64) (float64, bool) {
	for _, v := range values {
		if valid(v) {
			return v, true
		}
	}
	return 0, false
}

// Rebase subtracts the first valid value from every valid entry. Invalid
// entries are kept as they are.
func Rebase(values []float64) []float64 {
	base, ok := First(values)
	if !ok {
		return values
	}

	result := make([]float64, len(values))
	for i, v := range values {
		if valid(v) {
			result[i] = v - base
		} else {
			result[i] = v
		}
	}
	return result
}

// ForTrace subtracts the first valid value from every valid entry and
// substitutes 0 for invalid entries.
func ForTrace(values []float64) []float64 {
	base, ok := First(values)
	if !ok {
		return values
	}

	result := make([]float64, len(values))
	for i, v := range values {
		if valid(v) {
			result[i] = v - base
		}
	}
	return result
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
