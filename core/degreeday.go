package core

import "github.com/homewise/enaudit/schema"

// Degree-day base temperatures (°F), the standard 65° base.
const (
	BaseTempHeating = 65.0
	BaseTempCooling = 65.0
)

// Seasonal factor clamp bounds. Factors far outside 1.0 mean sparse
// weather data, not a real climate signal.
const (
	MinSeasonalFactor = 0.6
	MaxSeasonalFactor = 1.8
)

// zoneDegreeDayEstimates gives rough per-day HDD/CDD by climate zone,
// used when a location has no recorded weather at all.
var zoneDegreeDayEstimates = map[int]struct{ HDD, CDD float64 }{
	1: {HDD: 0.5, CDD: 8.0},
	2: {HDD: 2.0, CDD: 5.0},
	3: {HDD: 5.0, CDD: 3.0},
	4: {HDD: 8.0, CDD: 1.0},
	5: {HDD: 12.0, CDD: 0.5},
}

// Generic last-resort per-day estimates.
const (
	GenericDailyHDD = 5.0
	GenericDailyCDD = 3.0
)

// HeatingDegreeDays returns the heating degree days for one day with
// the given mean temperature.
func HeatingDegreeDays(meanTempF float64) float64 {
	if meanTempF >= BaseTempHeating {
		return 0
	}
	return BaseTempHeating - meanTempF
}

// CoolingDegreeDays returns the cooling degree days for one day with
// the given mean temperature.
func CoolingDegreeDays(meanTempF float64) float64 {
	if meanTempF <= BaseTempCooling {
		return 0
	}
	return meanTempF - BaseTempCooling
}

// ZoneDegreeDayEstimate returns the per-day HDD/CDD estimate for a
// climate zone and whether the zone had an entry.
func ZoneDegreeDayEstimate(zone int) (hdd, cdd float64, ok bool) {
	est, found := zoneDegreeDayEstimates[zone]
	if !found {
		return 0, 0, false
	}
	return est.HDD, est.CDD, true
}

// seasonEstimate fills a missing month with a northern-hemisphere
// seasonal guess.
func seasonEstimate(month int) (hdd, cdd float64) {
	switch month {
	case 12, 1, 2: // winter
		return 20.0, 0.0
	case 6, 7, 8: // summer
		return 0.0, 20.0
	default: // spring and fall
		return 10.0, 5.0
	}
}

// ComputeSeasonalFactors turns monthly average HDD/CDD into weather
// adjustment factors normalized around 1.0. Months absent from the
// input get seasonal estimates. Factors are clamped to
// [MinSeasonalFactor, MaxSeasonalFactor].
func ComputeSeasonalFactors(monthlyHDD, monthlyCDD map[int]float64) schema.SeasonalFactors {
	combined := make(map[int]float64, 12)
	var total float64
	for month := 1; month <= 12; month++ {
		hdd, okH := monthlyHDD[month]
		cdd, okC := monthlyCDD[month]
		if !okH && !okC {
			hdd, cdd = seasonEstimate(month)
		}
		combined[month] = hdd + cdd
		total += combined[month]
	}

	avg := total / 12
	factors := make(schema.SeasonalFactors, 12)
	for month := 1; month <= 12; month++ {
		factor := 1.0
		if avg > 0 {
			factor = combined[month] / avg
		}
		factors[month] = ClampFloat(factor, MinSeasonalFactor, MaxSeasonalFactor)
	}
	return factors
}

// NormalizeConsumption divides each reading by its month's seasonal
// factor, yielding weather-normalized values that are comparable across
// the year. Months without a factor pass through with factor 1.0.
func NormalizeConsumption(points []schema.ConsumptionPoint, factors schema.SeasonalFactors) []schema.ConsumptionPoint {
	out := make([]schema.ConsumptionPoint, len(points))
	for i, p := range points {
		factor, ok := factors[int(p.Date.Month())]
		if !ok || factor == 0 {
			factor = 1.0
		}
		p.WeatherFactor = factor
		p.NormalizedValue = p.Value / factor
		out[i] = p
	}
	return out
}
