package core

import (
	"strings"

	"github.com/homewise/enaudit/schema"
)

// DefaultClimateZone is used when the state is unknown or empty.
const DefaultClimateZone = 4

// stateZoneTable maps two-letter state codes to their predominant IECC
// climate zone. States spanning multiple zones carry the zone covering
// most of their population.
var stateZoneTable = map[string]int{
	"AL": 3, "AK": 7, "AZ": 2, "AR": 3, "CA": 3,
	"CO": 5, "CT": 5, "DE": 4, "DC": 4, "FL": 2,
	"GA": 3, "HI": 1, "ID": 5, "IL": 5, "IN": 5,
	"IA": 5, "KS": 4, "KY": 4, "LA": 2, "ME": 6,
	"MD": 4, "MA": 5, "MI": 5, "MN": 6, "MS": 3,
	"MO": 4, "MT": 6, "NE": 5, "NV": 3, "NH": 6,
	"NJ": 4, "NM": 4, "NY": 5, "NC": 3, "ND": 6,
	"OH": 5, "OK": 3, "OR": 4, "PA": 5, "RI": 5,
	"SC": 3, "SD": 6, "TN": 4, "TX": 2, "UT": 5,
	"VT": 6, "VA": 4, "WA": 4, "WV": 5, "WI": 6,
	"WY": 6,
}

// moistZone3States are the zone-3 states in the moist (A) regime.
// They collapse to hot-humid instead of hot-dry-mixed-dry.
var moistZone3States = map[string]bool{
	"AL": true, "GA": true, "MS": true, "SC": true,
	"AR": true, "LA": true, "TN": true, "NC": true,
}

// climateFactorTable holds the usage multipliers per descriptive
// category. Heating-dominated climates push annual usage hardest.
var climateFactorTable = map[schema.ClimateCategory]float64{
	schema.ColdVeryCold:   1.18,
	schema.MixedHumid:     1.00,
	schema.HotHumid:       1.10,
	schema.HotDryMixedDry: 1.05,
}

// ZoneForState returns the numeric IECC climate zone (1-8) for a
// two-letter state code, case-insensitively. Unknown states default to
// zone 4.
func ZoneForState(state string) int {
	zone, ok := stateZoneTable[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return DefaultClimateZone
	}
	return zone
}

// CategoryForState collapses a state's climate zone to one of the four
// descriptive categories. The moist/dry split in zone 3 is decided from
// the state itself rather than round-tripping through the zone number,
// which could not distinguish 3A from 3B.
func CategoryForState(state string) schema.ClimateCategory {
	code := strings.ToUpper(strings.TrimSpace(state))
	zone := ZoneForState(code)

	switch {
	case zone >= 5:
		return schema.ColdVeryCold
	case zone == 4:
		return schema.MixedHumid
	case zone <= 2:
		return schema.HotHumid
	default: // zone 3
		if moistZone3States[code] {
			return schema.HotHumid
		}
		return schema.HotDryMixedDry
	}
}

// ClimateFactor returns the usage multiplier for a descriptive
// category. Unknown categories get the neutral 1.0.
func ClimateFactor(category schema.ClimateCategory) float64 {
	f, ok := climateFactorTable[category]
	if !ok {
		return 1.0
	}
	return f
}

// ClimateReferences returns the category documentation rows for the
// `types` reference output.
func ClimateReferences() []schema.ClimateReference {
	return []schema.ClimateReference{
		{Category: schema.ColdVeryCold, Zones: "5-8", Factor: climateFactorTable[schema.ColdVeryCold]},
		{Category: schema.MixedHumid, Zones: "4", Factor: climateFactorTable[schema.MixedHumid]},
		{Category: schema.HotDryMixedDry, Zones: "3 (dry)", Factor: climateFactorTable[schema.HotDryMixedDry]},
		{Category: schema.HotHumid, Zones: "1-2, 3 (moist)", Factor: climateFactorTable[schema.HotHumid]},
	}
}
