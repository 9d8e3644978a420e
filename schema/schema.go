// Package schema has the data model, enums and render models for all
// parts of enaudit.
package schema

// HomeDetails holds the structural facts about a residence.
type HomeDetails struct {
	SquareFootage   int     `json:"squareFootage"`
	Stories         int     `json:"stories"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       float64 `json:"bathrooms"`
	CeilingHeightFt int     `json:"ceilingHeightFt"`
	FoundationType  string  `json:"foundationType"` // slab, crawlspace, basement, pier-and-beam
	SharedWalls     int     `json:"sharedWalls"`    // walls shared with neighboring units
}

// CurrentConditions holds the insulation and envelope state of the
// residence as typically found for its era.
type CurrentConditions struct {
	AtticInsulation string   `json:"atticInsulation"` // none, minimal, adequate, good
	WallInsulation  string   `json:"wallInsulation"`
	FloorInsulation string   `json:"floorInsulation"`
	WindowType      string   `json:"windowType"` // single-pane, double-pane, low-e-double-pane
	WindowCount     int      `json:"windowCount"`
	AirLeakage      string   `json:"airLeakage"`      // severe, significant, moderate, minimal
	WeatherStripping string  `json:"weatherStripping"` // none, worn, basic, foam
	ProblemAreas    []string `json:"problemAreas,omitempty"`
}

// HVACSystem describes one heating or cooling system. Efficiency is
// AFUE % for combustion heat, COP % for electric heat, SEER for
// cooling.
type HVACSystem struct {
	Type       string  `json:"type"` // gas-furnace, electric-baseboard, heat-pump, ...
	Fuel       string  `json:"fuel"` // natural-gas, electricity, oil, propane
	Efficiency float64 `json:"efficiency"`
	AgeYears   int     `json:"ageYears"`
}

// HeatingCooling holds the HVAC systems and their distribution.
type HeatingCooling struct {
	HeatingSystem     HVACSystem `json:"heatingSystem"`
	CoolingSystem     HVACSystem `json:"coolingSystem"`
	ThermostatType    string     `json:"thermostatType"`    // manual, programmable, smart
	DuctworkCondition string     `json:"ductworkCondition"` // none, poor, fair, good, sealed
}

// EnergyConsumption holds usage and billing defaults.
type EnergyConsumption struct {
	EstimatedAnnualUsageKWh int    `json:"estimatedAnnualUsageKWh"`
	MonthlyBillSummer       int    `json:"monthlyBillSummer"` // USD
	MonthlyBillWinter       int    `json:"monthlyBillWinter"` // USD
	PrimaryBulbType         string `json:"primaryBulbType"`   // incandescent, mixed, cfl, led
}

// DefaultsBundle is the full set of pre-fill values resolved for a
// residence. Bundles handed to callers are always detached copies;
// the static tables in core never alias a returned bundle.
type DefaultsBundle struct {
	HomeDetails       HomeDetails       `json:"homeDetails"`
	CurrentConditions CurrentConditions `json:"currentConditions"`
	HeatingCooling    HeatingCooling    `json:"heatingCooling"`
	EnergyConsumption EnergyConsumption `json:"energyConsumption"`
}

// Clone returns a deep copy of the bundle. Every field is a value type
// except CurrentConditions.ProblemAreas, which needs an explicit copy.
func (b *DefaultsBundle) Clone() *DefaultsBundle {
	out := *b
	if b.CurrentConditions.ProblemAreas != nil {
		out.CurrentConditions.ProblemAreas = make([]string, len(b.CurrentConditions.ProblemAreas))
		copy(out.CurrentConditions.ProblemAreas, b.CurrentConditions.ProblemAreas)
	}
	return &out
}

// ResolutionInput captures the caller-supplied facts a resolution ran
// against. State and UnitPosition may be empty.
type ResolutionInput struct {
	HomeType      HomeType     `json:"homeType"`
	YearBuilt     int          `json:"yearBuilt"`
	SquareFootage int          `json:"squareFootage"`
	State         string       `json:"state,omitempty"`
	UnitPosition  UnitPosition `json:"unitPosition,omitempty"`
}

// Resolution is the full outcome of one defaults lookup: the input,
// the classifier verdicts, the adjustment factors applied, and the
// resolved bundle.
type Resolution struct {
	Input       ResolutionInput    `json:"input"`
	Period      ConstructionPeriod `json:"period"`
	Size        SizeCategory       `json:"size"`
	ClimateZone int                `json:"climateZone,omitempty"`
	Climate     ClimateCategory    `json:"climate,omitempty"`
	Adjustment  *Adjustment        `json:"adjustment,omitempty"`
	Bundle      DefaultsBundle     `json:"bundle"`
}

// Adjustment records the multiplicative usage-estimate composition.
// Final = round(Baseline * ClimateFactor * SizeFactor * PositionFactor).
type Adjustment struct {
	BaselineKWh    int     `json:"baselineKWh"`
	ClimateFactor  float64 `json:"climateFactor"`
	SizeFactor     float64 `json:"sizeFactor"`
	PositionFactor float64 `json:"positionFactor"`
	FinalKWh       int     `json:"finalKWh"`
}
