package schema

// ReferenceModel is the render model for `enaudit types`: the
// classifier boundaries and multiplier tables per housing type.
type ReferenceModel struct {
	Types      []TypeReference          `json:"types"`
	Climates   []ClimateReference       `json:"climates"`
	SizeFactor map[SizeCategory]float64 `json:"sizeFactors"`
}

// TypeReference documents one housing type's classifiers and factors.
type TypeReference struct {
	Name            HomeType                   `json:"name"`
	Periods         []ConstructionPeriod       `json:"periods"`
	SmallBelowSqFt  int                        `json:"smallBelowSqFt"`
	LargeAboveSqFt  int                        `json:"largeAboveSqFt"`
	Positions       []UnitPosition             `json:"positions,omitempty"`
	PositionFactors map[UnitPosition]float64   `json:"positionFactors,omitempty"`
	BaselineKWh     map[ConstructionPeriod]int `json:"baselineKWh"`
}

// ClimateInfo is the render model for a single state's climate lookup.
type ClimateInfo struct {
	State    string          `json:"state"`
	Zone     int             `json:"zone"`
	Category ClimateCategory `json:"category"`
	Factor   float64         `json:"factor"`
}

// ClimateReference documents one descriptive climate category.
type ClimateReference struct {
	Category ClimateCategory `json:"category"`
	Zones    string          `json:"zones"` // e.g. "5-8"
	Factor   float64         `json:"factor"`
}
