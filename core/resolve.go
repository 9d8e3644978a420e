package core

import "github.com/homewise/enaudit/schema"

// Resolve runs the full default-resolution pipeline: classify the
// inputs, copy the matching bundle out of the static table, carry the
// caller's square footage into the bundle, and, when a state is given,
// recompute the estimated annual usage with the climate, size, and
// position multipliers.
//
// The returned Resolution never aliases the static table.
func Resolve(in schema.ResolutionInput) (*schema.Resolution, error) {
	period := ClassifyPeriod(in.HomeType, in.YearBuilt)
	size := ClassifySize(in.HomeType, float64(in.SquareFootage))
	position := NormalizePosition(in.HomeType, string(in.UnitPosition))

	bundle, err := lookupBundle(in.HomeType, period, size)
	if err != nil {
		return nil, err
	}

	// The representative footage in the table gives way to the real one.
	if in.SquareFootage > 0 {
		bundle.HomeDetails.SquareFootage = in.SquareFootage
	}

	res := &schema.Resolution{
		Input:  in,
		Period: period,
		Size:   size,
		Bundle: *bundle,
	}
	res.Input.UnitPosition = position

	if in.State != "" {
		res.ClimateZone = ZoneForState(in.State)
		res.Climate = CategoryForState(in.State)
		adj := ComposeAdjustment(in.HomeType, period, size, res.Climate, position)
		res.Adjustment = &adj
		res.Bundle.EnergyConsumption.EstimatedAnnualUsageKWh = adj.FinalKWh
	}

	return res, nil
}

// GetHousingDefaults routes a raw housing-type string to the matching
// defaults resolution. It is the dispatcher form consumers use when the
// type comes from user input.
func GetHousingDefaults(housingType string, yearBuilt, squareFootage int, state, unitPosition string) (*schema.Resolution, error) {
	ht, err := ParseHomeType(housingType)
	if err != nil {
		return nil, err
	}
	return Resolve(schema.ResolutionInput{
		HomeType:      ht,
		YearBuilt:     yearBuilt,
		SquareFootage: squareFootage,
		State:         state,
		UnitPosition:  schema.UnitPosition(unitPosition),
	})
}

// resolveBundle is the shared body of the per-type getters. The typed
// helpers never fail: every (period, size) combination the classifiers
// can produce has a table entry, which TestTableCompleteness pins down.
func resolveBundle(homeType schema.HomeType, yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	res, err := Resolve(schema.ResolutionInput{
		HomeType:      homeType,
		YearBuilt:     yearBuilt,
		SquareFootage: squareFootage,
		State:         state,
		UnitPosition:  schema.UnitPosition(unitPosition),
	})
	if err != nil {
		// Unreachable for known types; keep the contract total anyway.
		b, _ := lookupBundle(homeType, ClassifyPeriod(homeType, yearBuilt), schema.MediumSize)
		if b == nil {
			b = &schema.DefaultsBundle{}
		}
		return b
	}
	return &res.Bundle
}

// GetSingleFamilyDefaults returns the pre-fill bundle for a detached
// single-family home. State and unitPosition may be empty.
func GetSingleFamilyDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.SingleFamily, yearBuilt, squareFootage, state, unitPosition)
}

// GetTownhouseDefaults returns the pre-fill bundle for a townhouse.
func GetTownhouseDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.Townhouse, yearBuilt, squareFootage, state, unitPosition)
}

// GetDuplexDefaults returns the pre-fill bundle for a duplex unit.
func GetDuplexDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.Duplex, yearBuilt, squareFootage, state, unitPosition)
}

// GetCondominiumDefaults returns the pre-fill bundle for a condominium.
func GetCondominiumDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.Condominium, yearBuilt, squareFootage, state, unitPosition)
}

// GetApartmentDefaults returns the pre-fill bundle for an apartment.
func GetApartmentDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.Apartment, yearBuilt, squareFootage, state, unitPosition)
}

// GetMobileHomeDefaults returns the pre-fill bundle for a manufactured
// home.
func GetMobileHomeDefaults(yearBuilt, squareFootage int, state, unitPosition string) *schema.DefaultsBundle {
	return resolveBundle(schema.MobileHome, yearBuilt, squareFootage, state, unitPosition)
}
