package core

import (
	"testing"
	"time"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDegreeDays checks the 65°F base math on both sides.
func TestDegreeDays(t *testing.T) {
	tests := []struct {
		name    string
		meanF   float64
		wantHDD float64
		wantCDD float64
	}{
		{name: "cold day", meanF: 30, wantHDD: 35, wantCDD: 0},
		{name: "mild day", meanF: 65, wantHDD: 0, wantCDD: 0},
		{name: "hot day", meanF: 90, wantHDD: 0, wantCDD: 25},
		{name: "just below base", meanF: 64.5, wantHDD: 0.5, wantCDD: 0},
		{name: "just above base", meanF: 65.5, wantHDD: 0, wantCDD: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantHDD, HeatingDegreeDays(tt.meanF), 0.001)
			assert.InDelta(t, tt.wantCDD, CoolingDegreeDays(tt.meanF), 0.001)
		})
	}
}

// TestZoneDegreeDayEstimate checks zone coverage and the miss case.
func TestZoneDegreeDayEstimate(t *testing.T) {
	hdd, cdd, ok := ZoneDegreeDayEstimate(1)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, hdd, 0.001)
	assert.InDelta(t, 8.0, cdd, 0.001)

	hdd, cdd, ok = ZoneDegreeDayEstimate(5)
	assert.True(t, ok)
	assert.InDelta(t, 12.0, hdd, 0.001)
	assert.InDelta(t, 0.5, cdd, 0.001)

	_, _, ok = ZoneDegreeDayEstimate(8)
	assert.False(t, ok)
}

// TestComputeSeasonalFactors checks normalization around 1.0, clamping,
// and the seasonal fill-in for missing months.
func TestComputeSeasonalFactors(t *testing.T) {
	hdd := map[int]float64{}
	cdd := map[int]float64{}
	for month := 1; month <= 12; month++ {
		hdd[month] = 10
		cdd[month] = 5
	}

	factors := ComputeSeasonalFactors(hdd, cdd)
	require.Len(t, factors, 12)
	for month := 1; month <= 12; month++ {
		assert.InDelta(t, 1.0, factors[month], 0.001, "month %d", month)
	}

	// A heating-heavy winter clamps at the upper bound.
	skewedHDD := map[int]float64{}
	skewedCDD := map[int]float64{}
	for month := 1; month <= 12; month++ {
		skewedHDD[month] = 1
		skewedCDD[month] = 0
	}
	skewedHDD[1] = 100
	skewed := ComputeSeasonalFactors(skewedHDD, skewedCDD)
	assert.InDelta(t, MaxSeasonalFactor, skewed[1], 0.001)
	assert.InDelta(t, MinSeasonalFactor, skewed[6], 0.001)
}

// TestComputeSeasonalFactorsFillsMissing checks an empty input still
// yields all twelve months from seasonal guesses.
func TestComputeSeasonalFactorsFillsMissing(t *testing.T) {
	factors := ComputeSeasonalFactors(nil, nil)
	require.Len(t, factors, 12)

	// Winter and summer guesses exceed the shoulder seasons.
	assert.Greater(t, factors[1], factors[4])
	assert.Greater(t, factors[7], factors[10])
	for month := 1; month <= 12; month++ {
		assert.GreaterOrEqual(t, factors[month], MinSeasonalFactor)
		assert.LessOrEqual(t, factors[month], MaxSeasonalFactor)
	}
}

// TestNormalizeConsumption divides readings by their month's factor.
func TestNormalizeConsumption(t *testing.T) {
	factors := schema.SeasonalFactors{1: 1.5, 7: 0.8}
	points := []schema.ConsumptionPoint{
		{Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Value: 300},
		{Date: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), Value: 200},
		{Date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), Value: 150},
	}

	out := NormalizeConsumption(points, factors)
	require.Len(t, out, 3)

	assert.InDelta(t, 200, out[0].NormalizedValue, 0.001)
	assert.InDelta(t, 1.5, out[0].WeatherFactor, 0.001)
	assert.InDelta(t, 250, out[1].NormalizedValue, 0.001)

	// No factor for April means pass-through.
	assert.InDelta(t, 150, out[2].NormalizedValue, 0.001)
	assert.InDelta(t, 1.0, out[2].WeatherFactor, 0.001)

	// Input slice is untouched.
	assert.Zero(t, points[0].NormalizedValue)
}
