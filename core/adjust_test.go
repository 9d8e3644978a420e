package core

import (
	"math"
	"testing"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
)

// TestNormalizePosition checks validation against each type's allowed
// set.
func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		name     string
		homeType schema.HomeType
		position string
		expected schema.UnitPosition
	}{
		{name: "apartment interior", homeType: schema.Apartment, position: "interior", expected: schema.InteriorUnit},
		{name: "apartment top floor", homeType: schema.Apartment, position: "top-floor", expected: schema.TopFloorUnit},
		{name: "condo corner", homeType: schema.Condominium, position: "corner", expected: schema.CornerUnit},
		{name: "townhouse end", homeType: schema.Townhouse, position: "end", expected: schema.EndUnit},
		{name: "duplex stacked", homeType: schema.Duplex, position: "stacked", expected: schema.StackedConfig},
		{name: "uppercase accepted", homeType: schema.Apartment, position: "INTERIOR", expected: schema.InteriorUnit},
		{name: "whitespace trimmed", homeType: schema.Townhouse, position: " corner ", expected: schema.CornerUnit},
		{name: "blank is neutral", homeType: schema.Apartment, position: "", expected: ""},
		{name: "wrong set for type", homeType: schema.Duplex, position: "interior", expected: ""},
		{name: "detached type has no positions", homeType: schema.SingleFamily, position: "corner", expected: ""},
		{name: "garbage is neutral", homeType: schema.Apartment, position: "basement", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePosition(tt.homeType, tt.position))
		})
	}
}

// TestPositionFactor checks the per-type multipliers and neutral
// fallbacks.
func TestPositionFactor(t *testing.T) {
	assert.InDelta(t, 0.85, PositionFactor(schema.Apartment, schema.InteriorUnit), 0.001)
	assert.InDelta(t, 1.08, PositionFactor(schema.Condominium, schema.TopFloorUnit), 0.001)
	assert.InDelta(t, 0.88, PositionFactor(schema.Townhouse, schema.InteriorUnit), 0.001)
	assert.InDelta(t, 1.05, PositionFactor(schema.Townhouse, schema.CornerUnit), 0.001)
	assert.InDelta(t, 0.92, PositionFactor(schema.Duplex, schema.StackedConfig), 0.001)
	assert.InDelta(t, 1.0, PositionFactor(schema.SingleFamily, schema.CornerUnit), 0.001)
	assert.InDelta(t, 1.0, PositionFactor(schema.Apartment, ""), 0.001)
}

// TestBaseline checks period baselines and the average fallback.
func TestBaseline(t *testing.T) {
	assert.Equal(t, 16500, Baseline(schema.SingleFamily, schema.PrePeriod1980))
	assert.Equal(t, 11000, Baseline(schema.SingleFamily, schema.PostPeriod2000))
	assert.Equal(t, 8200, Baseline(schema.Apartment, schema.PrePeriod1980))
	assert.Equal(t, 14000, Baseline(schema.MobileHome, schema.PrePeriod1976))
	assert.Equal(t, AverageBaselineKWh, Baseline(schema.SingleFamily, schema.PrePeriod1976))
	assert.Equal(t, AverageBaselineKWh, Baseline(schema.HomeType("yurt"), schema.PostPeriod2000))
}

// TestComposeAdjustment verifies the multiplicative composition and
// the recorded factor breakdown.
func TestComposeAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		homeType schema.HomeType
		period   schema.ConstructionPeriod
		size     schema.SizeCategory
		category schema.ClimateCategory
		position schema.UnitPosition
	}{
		{
			name:     "neutral everything",
			homeType: schema.SingleFamily,
			period:   schema.Period1980To2000,
			size:     schema.MediumSize,
			category: schema.MixedHumid,
		},
		{
			name:     "cold large house",
			homeType: schema.SingleFamily,
			period:   schema.PrePeriod1980,
			size:     schema.LargeSize,
			category: schema.ColdVeryCold,
		},
		{
			name:     "hot small interior apartment",
			homeType: schema.Apartment,
			period:   schema.PrePeriod1980,
			size:     schema.SmallSize,
			category: schema.HotHumid,
			position: schema.InteriorUnit,
		},
		{
			name:     "mobile home dry climate",
			homeType: schema.MobileHome,
			period:   schema.Period1994To2000,
			size:     schema.MediumSize,
			category: schema.HotDryMixedDry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := ComposeAdjustment(tt.homeType, tt.period, tt.size, tt.category, tt.position)

			assert.Equal(t, Baseline(tt.homeType, tt.period), adj.BaselineKWh)
			assert.InDelta(t, ClimateFactor(tt.category), adj.ClimateFactor, 0.001)
			assert.InDelta(t, SizeFactor(tt.size), adj.SizeFactor, 0.001)
			assert.InDelta(t, PositionFactor(tt.homeType, tt.position), adj.PositionFactor, 0.001)

			want := int(math.Round(float64(adj.BaselineKWh) * adj.ClimateFactor * adj.SizeFactor * adj.PositionFactor))
			assert.Equal(t, want, adj.FinalKWh)
			assert.Greater(t, adj.FinalKWh, 0)
		})
	}
}

// TestComposeAdjustmentNeutralIdentity pins the no-factor case: medium
// size, mixed-humid climate, and no position leave the baseline alone.
func TestComposeAdjustmentNeutralIdentity(t *testing.T) {
	adj := ComposeAdjustment(schema.Townhouse, schema.PostPeriod2000, schema.MediumSize, schema.MixedHumid, "")
	assert.Equal(t, adj.BaselineKWh, adj.FinalKWh)
}
