package core

import (
	"fmt"
	"strings"

	"github.com/homewise/enaudit/schema"
)

// defaultsTable is the single consolidated lookup: housing type →
// construction period → size category → bundle. It is treated as
// immutable; every read goes through lookupBundle, which returns a
// detached clone.
var defaultsTable = map[schema.HomeType]map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.SingleFamily: singleFamilyDefaults,
	schema.Townhouse:    townhouseDefaults,
	schema.Duplex:       duplexDefaults,
	schema.Condominium:  condominiumDefaults,
	schema.Apartment:    apartmentDefaults,
	schema.MobileHome:   mobileHomeDefaults,
}

// ParseHomeType normalizes a user-supplied housing type string.
// Common aliases are accepted so form values and CLI args both work.
func ParseHomeType(s string) (schema.HomeType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")

	switch normalized {
	case "single-family", "singlefamily", "house", "detached":
		return schema.SingleFamily, nil
	case "townhouse", "townhome", "row-house", "rowhouse":
		return schema.Townhouse, nil
	case "duplex":
		return schema.Duplex, nil
	case "condominium", "condo":
		return schema.Condominium, nil
	case "apartment", "apt", "flat":
		return schema.Apartment, nil
	case "mobile-home", "mobilehome", "manufactured", "manufactured-home":
		return schema.MobileHome, nil
	default:
		return "", fmt.Errorf("unknown housing type %q. Must be one of: single-family, townhouse, duplex, condominium, apartment, mobile-home", s)
	}
}

// lookupBundle fetches a bundle clone from the consolidated table.
func lookupBundle(homeType schema.HomeType, period schema.ConstructionPeriod, size schema.SizeCategory) (*schema.DefaultsBundle, error) {
	periods, ok := defaultsTable[homeType]
	if !ok {
		return nil, fmt.Errorf("no defaults table for housing type %q", homeType)
	}
	sizes, ok := periods[period]
	if !ok {
		return nil, fmt.Errorf("no %s defaults for period %q", homeType, period)
	}
	bundle, ok := sizes[size]
	if !ok {
		return nil, fmt.Errorf("no %s defaults for period %q size %q", homeType, period, size)
	}
	return bundle.Clone(), nil
}

// TypeReferences returns the classifier and factor documentation for
// every housing type, for the `types` reference output.
func TypeReferences() schema.ReferenceModel {
	model := schema.ReferenceModel{
		Climates: ClimateReferences(),
		SizeFactor: map[schema.SizeCategory]float64{
			schema.SmallSize:  SizeFactor(schema.SmallSize),
			schema.MediumSize: SizeFactor(schema.MediumSize),
			schema.LargeSize:  SizeFactor(schema.LargeSize),
		},
	}

	for _, ht := range schema.AllHomeTypes {
		small, large := SizeThresholdsFor(ht)
		ref := schema.TypeReference{
			Name:           ht,
			Periods:        PeriodsFor(ht),
			SmallBelowSqFt: small,
			LargeAboveSqFt: large,
			Positions:      PositionsFor(ht),
			BaselineKWh:    map[schema.ConstructionPeriod]int{},
		}
		for _, p := range ref.Periods {
			ref.BaselineKWh[p] = Baseline(ht, p)
		}
		if len(ref.Positions) > 0 {
			ref.PositionFactors = map[schema.UnitPosition]float64{}
			for _, pos := range ref.Positions {
				ref.PositionFactors[pos] = PositionFactor(ht, pos)
			}
		}
		model.Types = append(model.Types, ref)
	}
	return model
}
