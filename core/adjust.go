package core

import (
	"math"
	"strings"

	"github.com/homewise/enaudit/schema"
)

// AverageBaselineKWh is the fallback annual usage when a housing type
// has no baseline entry for the classified period.
const AverageBaselineKWh = 11000

// sizeFactorTable scales the annual usage estimate by size bucket.
var sizeFactorTable = map[schema.SizeCategory]float64{
	schema.SmallSize:  0.88,
	schema.MediumSize: 1.00,
	schema.LargeSize:  1.18,
}

// positionFactorTable scales usage by unit position or configuration.
// Interior units share more conditioned surfaces and lose less heat.
var positionFactorTable = map[schema.HomeType]map[schema.UnitPosition]float64{
	schema.Apartment: {
		schema.InteriorUnit: 0.85,
		schema.CornerUnit:   1.00,
		schema.TopFloorUnit: 1.08,
	},
	schema.Condominium: {
		schema.InteriorUnit: 0.85,
		schema.CornerUnit:   1.00,
		schema.TopFloorUnit: 1.08,
	},
	schema.Townhouse: {
		schema.InteriorUnit: 0.88,
		schema.EndUnit:      1.00,
		schema.CornerUnit:   1.05,
	},
	schema.Duplex: {
		schema.SideBySideConfig:  1.00,
		schema.StackedConfig:     0.92,
		schema.FrontToBackConfig: 0.97,
	},
}

// baselineTable holds the unadjusted annual usage (kWh) per housing
// type and construction period.
var baselineTable = map[schema.HomeType]map[schema.ConstructionPeriod]int{
	schema.SingleFamily: {
		schema.PrePeriod1980:    16500,
		schema.Period1980To2000: 13500,
		schema.PostPeriod2000:   11000,
	},
	schema.Townhouse: {
		schema.PrePeriod1980:    12500,
		schema.Period1980To2000: 10500,
		schema.PostPeriod2000:   8800,
	},
	schema.Duplex: {
		schema.PrePeriod1980:    13000,
		schema.Period1980To2000: 11000,
		schema.PostPeriod2000:   9200,
	},
	schema.Condominium: {
		schema.PrePeriod1980:    9500,
		schema.Period1980To2000: 8000,
		schema.PostPeriod2000:   6800,
	},
	schema.Apartment: {
		schema.PrePeriod1980:    8200,
		schema.Period1980To2000: 7000,
		schema.PostPeriod2000:   6000,
	},
	schema.MobileHome: {
		schema.PrePeriod1976:    14000,
		schema.Period1976To1994: 12000,
		schema.Period1994To2000: 10500,
		schema.PostPeriod2000:   9500,
	},
}

// NormalizePosition validates a unit position against the housing
// type's allowed set. Blank or unrecognized positions come back empty,
// which later resolves to the neutral 1.0 factor.
func NormalizePosition(homeType schema.HomeType, position string) schema.UnitPosition {
	p := schema.UnitPosition(strings.ToLower(strings.TrimSpace(position)))
	if p == "" {
		return ""
	}
	if _, ok := positionFactorTable[homeType][p]; !ok {
		return ""
	}
	return p
}

// PositionsFor returns the allowed unit positions for a housing type,
// or nil for detached types.
func PositionsFor(homeType schema.HomeType) []schema.UnitPosition {
	switch homeType {
	case schema.Apartment, schema.Condominium:
		return []schema.UnitPosition{schema.InteriorUnit, schema.CornerUnit, schema.TopFloorUnit}
	case schema.Townhouse:
		return []schema.UnitPosition{schema.InteriorUnit, schema.EndUnit, schema.CornerUnit}
	case schema.Duplex:
		return []schema.UnitPosition{schema.SideBySideConfig, schema.StackedConfig, schema.FrontToBackConfig}
	default:
		return nil
	}
}

// SizeFactor returns the usage multiplier for a size bucket, 1.0 when
// unknown.
func SizeFactor(size schema.SizeCategory) float64 {
	f, ok := sizeFactorTable[size]
	if !ok {
		return 1.0
	}
	return f
}

// PositionFactor returns the usage multiplier for a unit position,
// 1.0 when the type has no position table or the position is unknown.
func PositionFactor(homeType schema.HomeType, position schema.UnitPosition) float64 {
	f, ok := positionFactorTable[homeType][position]
	if !ok {
		return 1.0
	}
	return f
}

// Baseline returns the unadjusted annual usage for a type and period,
// falling back to AverageBaselineKWh for unknown combinations.
func Baseline(homeType schema.HomeType, period schema.ConstructionPeriod) int {
	kwh, ok := baselineTable[homeType][period]
	if !ok {
		return AverageBaselineKWh
	}
	return kwh
}

// ComposeAdjustment multiplies the period baseline by the climate,
// size, and position factors. Multiplication is commutative, so factor
// order never changes the result beyond float rounding.
func ComposeAdjustment(homeType schema.HomeType, period schema.ConstructionPeriod, size schema.SizeCategory, category schema.ClimateCategory, position schema.UnitPosition) schema.Adjustment {
	baseline := Baseline(homeType, period)
	climate := ClimateFactor(category)
	sizeF := SizeFactor(size)
	positionF := PositionFactor(homeType, position)

	final := int(math.Round(float64(baseline) * climate * sizeF * positionF))

	return schema.Adjustment{
		BaselineKWh:    baseline,
		ClimateFactor:  climate,
		SizeFactor:     sizeF,
		PositionFactor: positionF,
		FinalKWh:       final,
	}
}
