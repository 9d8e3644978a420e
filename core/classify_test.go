package core

import (
	"testing"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
)

// TestClassifyPeriod checks the construction-period buckets, including
// the finer mobile-home splits and the boundary years.
func TestClassifyPeriod(t *testing.T) {
	tests := []struct {
		name      string
		homeType  schema.HomeType
		yearBuilt int
		expected  schema.ConstructionPeriod
	}{
		{name: "single-family pre-1980", homeType: schema.SingleFamily, yearBuilt: 1955, expected: schema.PrePeriod1980},
		{name: "single-family boundary 1979", homeType: schema.SingleFamily, yearBuilt: 1979, expected: schema.PrePeriod1980},
		{name: "single-family boundary 1980", homeType: schema.SingleFamily, yearBuilt: 1980, expected: schema.Period1980To2000},
		{name: "single-family boundary 1999", homeType: schema.SingleFamily, yearBuilt: 1999, expected: schema.Period1980To2000},
		{name: "single-family boundary 2000", homeType: schema.SingleFamily, yearBuilt: 2000, expected: schema.PostPeriod2000},
		{name: "condo recent", homeType: schema.Condominium, yearBuilt: 2015, expected: schema.PostPeriod2000},
		{name: "apartment mid-era", homeType: schema.Apartment, yearBuilt: 1990, expected: schema.Period1980To2000},
		{name: "mobile pre-HUD", homeType: schema.MobileHome, yearBuilt: 1970, expected: schema.PrePeriod1976},
		{name: "mobile boundary 1975", homeType: schema.MobileHome, yearBuilt: 1975, expected: schema.PrePeriod1976},
		{name: "mobile boundary 1976", homeType: schema.MobileHome, yearBuilt: 1976, expected: schema.Period1976To1994},
		{name: "mobile boundary 1993", homeType: schema.MobileHome, yearBuilt: 1993, expected: schema.Period1976To1994},
		{name: "mobile boundary 1994", homeType: schema.MobileHome, yearBuilt: 1994, expected: schema.Period1994To2000},
		{name: "mobile boundary 2000", homeType: schema.MobileHome, yearBuilt: 2000, expected: schema.PostPeriod2000},
		{name: "far past saturates", homeType: schema.SingleFamily, yearBuilt: 1820, expected: schema.PrePeriod1980},
		{name: "far future saturates", homeType: schema.Townhouse, yearBuilt: 2150, expected: schema.PostPeriod2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPeriod(tt.homeType, tt.yearBuilt))
		})
	}
}

// TestClassifySize checks the per-type square-footage boundaries.
func TestClassifySize(t *testing.T) {
	tests := []struct {
		name     string
		homeType schema.HomeType
		sqft     float64
		expected schema.SizeCategory
	}{
		{name: "single-family small", homeType: schema.SingleFamily, sqft: 1499, expected: schema.SmallSize},
		{name: "single-family medium lower edge", homeType: schema.SingleFamily, sqft: 1500, expected: schema.MediumSize},
		{name: "single-family medium upper edge", homeType: schema.SingleFamily, sqft: 2500, expected: schema.MediumSize},
		{name: "single-family large", homeType: schema.SingleFamily, sqft: 2501, expected: schema.LargeSize},
		{name: "townhouse small", homeType: schema.Townhouse, sqft: 1100, expected: schema.SmallSize},
		{name: "townhouse large", homeType: schema.Townhouse, sqft: 2200, expected: schema.LargeSize},
		{name: "duplex medium", homeType: schema.Duplex, sqft: 1400, expected: schema.MediumSize},
		{name: "condo small", homeType: schema.Condominium, sqft: 850, expected: schema.SmallSize},
		{name: "apartment small", homeType: schema.Apartment, sqft: 600, expected: schema.SmallSize},
		{name: "apartment medium edge", homeType: schema.Apartment, sqft: 1100, expected: schema.MediumSize},
		{name: "apartment large", homeType: schema.Apartment, sqft: 1200, expected: schema.LargeSize},
		{name: "mobile medium", homeType: schema.MobileHome, sqft: 1200, expected: schema.MediumSize},
		{name: "unknown type falls back to single-family", homeType: schema.HomeType("yurt"), sqft: 2000, expected: schema.MediumSize},
		{name: "zero footage is small", homeType: schema.SingleFamily, sqft: 0, expected: schema.SmallSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifySize(tt.homeType, tt.sqft))
		})
	}
}

// TestPeriodsFor checks every type reports its own ordered buckets.
func TestPeriodsFor(t *testing.T) {
	assert.Len(t, PeriodsFor(schema.MobileHome), 4)
	for _, ht := range schema.AllHomeTypes {
		if ht == schema.MobileHome {
			continue
		}
		assert.Len(t, PeriodsFor(ht), 3, string(ht))
	}
}

// TestSizeThresholdsFor checks threshold reporting matches the
// classifier's behavior at the boundaries.
func TestSizeThresholdsFor(t *testing.T) {
	for _, ht := range schema.AllHomeTypes {
		small, large := SizeThresholdsFor(ht)
		assert.Less(t, small, large, string(ht))
		assert.Equal(t, schema.SmallSize, ClassifySize(ht, float64(small-1)), string(ht))
		assert.Equal(t, schema.MediumSize, ClassifySize(ht, float64(small)), string(ht))
		assert.Equal(t, schema.MediumSize, ClassifySize(ht, float64(large)), string(ht))
		assert.Equal(t, schema.LargeSize, ClassifySize(ht, float64(large+1)), string(ht))
	}
}
