// Package stats provides descriptive statistics for numeric sequences.
//
// Inputs are expected to be finite; use Finite to drop NaN and infinite
// entries first.
//
//	values := stats.Finite(column)
//	s := stats.Describe(values)
//	fmt.Printf("n=%d mean=%.4f sd=%.4f\n", s.Count, s.Mean, s.StdDev)
//
// # Conventions
//
// StdDev is the population standard deviation (divides by N).
//
// Median is the element at index floor(N/2) of the sorted values. For an even
// number of values this is the upper of the two middle elements, not their
// average:
//
//	stats.Describe([]float64{1, 2, 3, 4}).Median // 3
//
// # Presentation
//
// Statistics keeps full precision. Fixed renders every field with four decimal
// digits for display:
//
//	summary := s.Fixed()
//	fmt.Println(summary.Mean) // "2.5000"
package stats
