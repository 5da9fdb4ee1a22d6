package pattern

import (
	"math"
	"strconv"

	"github.com/sartorproj/tsviz/stats"
)

// Volatility classifies the coefficient of variation of a sequence.
type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

// Trend classifies the direction of consecutive changes.
type Trend string

const (
	TrendNone       Trend = "none"
	TrendStable     Trend = "stable"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// Scale classifies the spread between minimum and maximum.
type Scale string

const (
	ScaleSmall  Scale = "small"
	ScaleMedium Scale = "medium"
	ScaleLarge  Scale = "large"
)

// Thresholds.
const (
	HighVolatilityCV   = 0.5
	MediumVolatilityCV = 0.2

	TrendShare    = 0.7
	MinTrendLen   = 3
	MinSeasonLen  = 12
	MinSeasonRuns = 2
	// LowVarianceRatio bounds a phase's variance relative to its mean.
	LowVarianceRatio = 0.1
	// SeasonalShare is the fraction of low-variance phases a period needs.
	SeasonalShare = 0.6

	MinOutlierLen = 4
	IQRFactor     = 1.5

	LargeRange  = 1000
	MediumRange = 100
)

// CandidatePeriods are tested in order; the first qualifying one wins.
var CandidatePeriods = []int{7, 12, 24, 30}

// Period is a detected seasonal period in points. Zero means none and is
// encoded in JSON as false.
type Period int

// MarshalJSON encodes the period as a number, or false when none was found.
func (p Period) MarshalJSON() ([]byte, error) {
	if p <= 0 {
		return []byte("false"), nil
	}
	return []byte(strconv.Itoa(int(p))), nil
}

// UnmarshalJSON accepts a number or false.
func (p *Period) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "false" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*p = Period(v)
	return nil
}

// Outlier is a value outside the IQR fences, with its index in the input.
type Outlier struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Pattern describes the shape of one column.
type Pattern struct {
	Volatility  Volatility `json:"volatility"`
	Trend       Trend      `json:"trend"`
	Seasonality Period     `json:"seasonality"`
	Outliers    []Outlier  `json:"outliers"`
	Range       float64    `json:"range"`
	Scale       Scale      `json:"scale"`
}

// Detect analyses values, which must be finite.
func Detect(values []float64) Pattern {
	s := stats.Describe(values)
	r := s.Max - s.Min
	if math.IsInf(r, 1) {
		r = math.MaxFloat64
	}

	return Pattern{
		Volatility:  ClassifyVolatility(s.StdDev, s.Mean),
		Trend:       DetectTrend(values),
		Seasonality: DetectSeasonality(values),
		Outliers:    DetectOutliers(values),
		Range:       r,
		Scale:       ClassifyScale(r),
	}
}

// DetectColumns runs Detect for every column.
func DetectColumns(columns map[string][]float64) map[string]Pattern {
	result := make(map[string]Pattern, len(columns))
	for name, values := range columns {
		result[name] = Detect(values)
	}
	return result
}

// ClassifyVolatility maps cv = stdDev/mean to a class. A non-finite cv, which
// happens when the mean is zero, is low.
func ClassifyVolatility(stdDev, mean float64) Volatility {
	cv := stdDev / mean
	switch {
	case math.IsNaN(cv) || math.IsInf(cv, 0):
		return VolatilityLow
	case cv > HighVolatilityCV:
		return VolatilityHigh
	case cv > MediumVolatilityCV:
		return VolatilityMedium
	default:
		return VolatilityLow
	}
}

// DetectTrend counts rises and falls between consecutive values. A direction
// holding more than TrendShare of the comparisons wins.
func DetectTrend(values []float64) Trend {
	n := len(values)
	if n < MinTrendLen {
		return TrendNone
	}

	var up, down int
	for i := 1; i < n; i++ {
		switch {
		case values[i] > values[i-1]:
			up++
		case values[i] < values[i-1]:
			down++
		}
	}

	limit := TrendShare * float64(n-1)
	switch {
	case float64(up) > limit:
		return TrendIncreasing
	case float64(down) > limit:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// DetectSeasonality returns the first candidate period whose phases are
// mostly low-variance, or 0.
func DetectSeasonality(values []float64) Period {
	if len(values) < MinSeasonLen {
		return 0
	}
	for _, p := range CandidatePeriods {
		if seasonal(values, p) {
			return Period(p)
		}
	}
	return 0
}

func seasonal(values []float64, period int) bool {
	cycles := len(values) / period
	if cycles < MinSeasonRuns {
		return false
	}

	low := 0
	phase := make([]float64, cycles)
	for offset := 0; offset < period; offset++ {
		for c := 0; c < cycles; c++ {
			phase[c] = values[c*period+offset]
		}
		mean := stats.Describe(phase).Mean
		if stats.PopVariance(phase) < LowVarianceRatio*mean {
			low++
		}
	}
	return float64(low)/float64(period) > SeasonalShare
}

// DetectOutliers reports every value strictly outside
// [Q1 - 1.5 IQR, Q3 + 1.5 IQR], where Q1 and Q3 are the sorted values at
// indices floor(0.25 N) and floor(0.75 N).
func DetectOutliers(values []float64) []Outlier {
	n := len(values)
	if n < MinOutlierLen {
		return nil
	}

	sorted := stats.Sorted(values)
	q1 := sorted[int(math.Floor(0.25*float64(n)))]
	q3 := sorted[int(math.Floor(0.75*float64(n)))]
	iqr := q3 - q1
	lower, upper := q1-IQRFactor*iqr, q3+IQRFactor*iqr

	var outliers []Outlier
	for i, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, Outlier{Index: i, Value: v})
		}
	}
	return outliers
}

// ClassifyScale maps a range to a scale class.
func ClassifyScale(r float64) Scale {
	switch {
	case r > LargeRange:
		return ScaleLarge
	case r > MediumRange:
		return ScaleMedium
	default:
		return ScaleSmall
	}
}
