// Package core implements the defaults-resolution engine: construction
// period and size classification, climate-zone lookup, the static
// defaults tables, and the multiplicative usage adjustment.
package core

import "github.com/homewise/enaudit/schema"

// sizeThresholds holds the square-footage boundaries for one housing
// type: below Small is small, above Large is large, medium otherwise.
type sizeThresholds struct {
	Small int // exclusive lower bound of medium
	Large int // exclusive upper bound of medium
}

// sizeThresholdTable has per-type size boundaries. Multi-unit types run
// smaller than detached homes, so their buckets shift down.
var sizeThresholdTable = map[schema.HomeType]sizeThresholds{
	schema.SingleFamily: {Small: 1500, Large: 2500},
	schema.Townhouse:    {Small: 1200, Large: 2000},
	schema.Duplex:       {Small: 1000, Large: 1800},
	schema.Condominium:  {Small: 900, Large: 1500},
	schema.Apartment:    {Small: 700, Large: 1100},
	schema.MobileHome:   {Small: 900, Large: 1600},
}

// ClassifyPeriod maps a year built to its construction-period bucket.
// Mobile homes use the finer HUD-code splits (1976 standard, 1994 wind
// zone update, 2000); every other type uses the 1980/2000 split.
// Out-of-range years saturate to the nearest bucket.
func ClassifyPeriod(homeType schema.HomeType, yearBuilt int) schema.ConstructionPeriod {
	if homeType == schema.MobileHome {
		switch {
		case yearBuilt < 1976:
			return schema.PrePeriod1976
		case yearBuilt < 1994:
			return schema.Period1976To1994
		case yearBuilt < 2000:
			return schema.Period1994To2000
		default:
			return schema.PostPeriod2000
		}
	}

	switch {
	case yearBuilt < 1980:
		return schema.PrePeriod1980
	case yearBuilt < 2000:
		return schema.Period1980To2000
	default:
		return schema.PostPeriod2000
	}
}

// PeriodsFor returns the ordered period buckets used by a housing type.
func PeriodsFor(homeType schema.HomeType) []schema.ConstructionPeriod {
	if homeType == schema.MobileHome {
		return []schema.ConstructionPeriod{
			schema.PrePeriod1976,
			schema.Period1976To1994,
			schema.Period1994To2000,
			schema.PostPeriod2000,
		}
	}
	return []schema.ConstructionPeriod{
		schema.PrePeriod1980,
		schema.Period1980To2000,
		schema.PostPeriod2000,
	}
}

// ClassifySize maps square footage to small/medium/large using the
// housing type's thresholds. Unknown types fall back to the
// single-family boundaries.
func ClassifySize(homeType schema.HomeType, squareFootage float64) schema.SizeCategory {
	th, ok := sizeThresholdTable[homeType]
	if !ok {
		th = sizeThresholdTable[schema.SingleFamily]
	}

	switch {
	case squareFootage < float64(th.Small):
		return schema.SmallSize
	case squareFootage <= float64(th.Large):
		return schema.MediumSize
	default:
		return schema.LargeSize
	}
}

// SizeThresholdsFor returns the (small, large) square-footage
// boundaries used for a housing type.
func SizeThresholdsFor(homeType schema.HomeType) (small, large int) {
	th, ok := sizeThresholdTable[homeType]
	if !ok {
		th = sizeThresholdTable[schema.SingleFamily]
	}
	return th.Small, th.Large
}
