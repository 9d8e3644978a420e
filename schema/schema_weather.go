package schema

import "time"

// Location is a row from the weather database's locations table.
type Location struct {
	LocationID  string `json:"locationId"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	State       string `json:"state"`
	ClimateZone int    `json:"climateZone"`
}

// DegreeDaySummary aggregates heating and cooling degree days for a
// location over a date range. Estimated is set when no daily data was
// available and the numbers came from monthly averages, the climate
// zone table, or the generic fallback.
type DegreeDaySummary struct {
	TotalHDD  float64 `json:"totalHdd"`
	TotalCDD  float64 `json:"totalCdd"`
	AvgHDD    float64 `json:"avgHdd"`
	AvgCDD    float64 `json:"avgCdd"`
	DaysCount int     `json:"daysCount"`
	Estimated bool    `json:"estimated"`
	Method    string  `json:"method,omitempty"` // monthly-average, climate-zone, generic
}

// SeasonalFactors maps month (1-12) to a weather adjustment factor
// normalized around 1.0 and clamped to [0.6, 1.8].
type SeasonalFactors map[int]float64

// WeatherEventStat summarizes severe-weather events recorded for a
// location.
type WeatherEventStat struct {
	EventType         string  `json:"eventType"`
	Count             int     `json:"count"`
	AvgSeverity       float64 `json:"avgSeverity"`
	EnergyImpactScore float64 `json:"energyImpactScore"`
}

// ConsumptionPoint is one energy reading to be weather-normalized.
type ConsumptionPoint struct {
	Date            time.Time `json:"date"`
	Value           float64   `json:"value"`
	WeatherFactor   float64   `json:"weatherFactor,omitempty"`
	NormalizedValue float64   `json:"normalizedValue,omitempty"`
}
