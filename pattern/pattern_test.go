package pattern

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers(t *testing.T) {
	outliers := DetectOutliers([]float64{1, 2, 3, 4, 5, 100})

	require.Len(t, outliers, 1)
	assert.Equal(t, Outlier{Index: 5, Value: 100}, outliers[0])
}

func TestDetectOutliersBothSides(t *testing.T) {
	outliers := DetectOutliers([]float64{-500, 10, 11, 12, 13, 14, 15, 900})

	require.Len(t, outliers, 2)
	assert.Equal(t, 0, outliers[0].Index)
	assert.Equal(t, 7, outliers[1].Index)
}

func TestDetectOutliersTooShort(t *testing.T) {
	assert.Nil(t, DetectOutliers([]float64{1, 2, 1000}))
}

func TestDetectTrend(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Trend
	}{
		{"too short", []float64{1, 2}, TrendNone},
		{"increasing", []float64{1, 2, 3, 4, 5}, TrendIncreasing},
		{"decreasing", []float64{5, 4, 3, 2, 1}, TrendDecreasing},
		{"mixed", []float64{1, 3, 2, 4, 3}, TrendStable},
		{"flat", []float64{2, 2, 2, 2}, TrendStable},
		// 7 of 10 rises is not more than 70%
		{"at threshold", []float64{0, 1, 2, 3, 4, 5, 6, 7, 6, 5, 4}, TrendStable},
		{"above threshold", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 7, 6}, TrendIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectTrend(tt.values))
		})
	}
}

func TestClassifyVolatility(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Volatility
	}{
		{"constant", []float64{1, 1, 1}, VolatilityLow},
		{"zero mean", []float64{-1, 1}, VolatilityLow},
		{"all zero", []float64{0, 0}, VolatilityLow},
		{"boundary 0.2", []float64{8, 12}, VolatilityLow},
		{"medium", []float64{7, 13}, VolatilityMedium},
		{"high", []float64{1, 10}, VolatilityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.values).Volatility)
		})
	}
}

func TestDetectSeasonality(t *testing.T) {
	weekly := make([]float64, 21)
	for i := range weekly {
		weekly[i] = float64(i%7+1) * 10
	}

	yearly := make([]float64, 24)
	for i := range yearly {
		yearly[i] = float64(i%12 + 1)
	}

	ramp := make([]float64, 40)
	for i := range ramp {
		ramp[i] = float64(i * i)
	}

	constant := make([]float64, 12)
	for i := range constant {
		constant[i] = 5
	}

	assert.Equal(t, Period(7), DetectSeasonality(weekly))
	assert.Equal(t, Period(12), DetectSeasonality(yearly))
	assert.Equal(t, Period(0), DetectSeasonality(ramp))
	// only one full cycle of every candidate
	assert.Equal(t, Period(0), DetectSeasonality(constant))
	assert.Equal(t, Period(0), DetectSeasonality(weekly[:11]))
}

func TestClassifyScale(t *testing.T) {
	assert.Equal(t, ScaleLarge, ClassifyScale(1001))
	assert.Equal(t, ScaleMedium, ClassifyScale(1000))
	assert.Equal(t, ScaleMedium, ClassifyScale(101))
	assert.Equal(t, ScaleSmall, ClassifyScale(100))
}

func TestDetect(t *testing.T) {
	p := Detect([]float64{1, 2, 3, 4, 5, 100})

	assert.Equal(t, TrendIncreasing, p.Trend)
	assert.Equal(t, VolatilityHigh, p.Volatility)
	assert.Equal(t, Period(0), p.Seasonality)
	assert.Len(t, p.Outliers, 1)
	assert.Equal(t, 99.0, p.Range)
	assert.Equal(t, ScaleSmall, p.Scale)
}

func TestDetectEmpty(t *testing.T) {
	p := Detect(nil)

	assert.Equal(t, TrendNone, p.Trend)
	assert.Equal(t, VolatilityLow, p.Volatility)
	assert.Empty(t, p.Outliers)
	assert.Equal(t, ScaleSmall, p.Scale)
}

func TestPeriodJSON(t *testing.T) {
	data, err := json.Marshal(Pattern{Seasonality: 0})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seasonality":false`)

	data, err = json.Marshal(Pattern{Seasonality: 24})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seasonality":24`)

	var p Pattern
	require.NoError(t, json.Unmarshal([]byte(`{"seasonality":false}`), &p))
	assert.Equal(t, Period(0), p.Seasonality)
	require.NoError(t, json.Unmarshal([]byte(`{"seasonality":7}`), &p))
	assert.Equal(t, Period(7), p.Seasonality)
}

func TestDetectColumns(t *testing.T) {
	patterns := DetectColumns(map[string][]float64{
		"up":   {1, 2, 3, 4},
		"down": {4, 3, 2, 1},
	})

	assert.Equal(t, TrendIncreasing, patterns["up"].Trend)
	assert.Equal(t, TrendDecreasing, patterns["down"].Trend)
}

func TestDetectRangeNearFloatLimit(t *testing.T) {
	p := Detect([]float64{-1e308, 1e308, -1e308, 1e308})

	assert.Equal(t, math.MaxFloat64, p.Range)
	assert.Equal(t, ScaleLarge, p.Scale)
}
