package core

import "github.com/homewise/enaudit/schema"

// apartmentDefaults holds the research-derived pre-fill values for
// apartment units by construction period and size. Pre-1980 buildings
// overwhelmingly heat with electric resistance; later stock moved to
// packaged heat pumps.
var apartmentDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1980: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 550, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 3},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "none", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 4, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 7200, MonthlyBillSummer: 95, MonthlyBillWinter: 120, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 900, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "none", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 6, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8200, MonthlyBillSummer: 110, MonthlyBillWinter: 140, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1250, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 8, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "entry-door", "balcony-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9700, MonthlyBillSummer: 130, MonthlyBillWinter: 165, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1980To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 600, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 3},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 4, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 15},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 6200, MonthlyBillSummer: 80, MonthlyBillWinter: 95, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 900, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 6, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 15},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 7000, MonthlyBillSummer: 90, MonthlyBillWinter: 110, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1300, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 9, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 15},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8300, MonthlyBillSummer: 105, MonthlyBillWinter: 130, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 650, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 3},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 5, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 5300, MonthlyBillSummer: 70, MonthlyBillWinter: 80, PrimaryBulbType: "led"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 950, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 7, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 6000, MonthlyBillSummer: 78, MonthlyBillWinter: 90, PrimaryBulbType: "led"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1350, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 10, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 7100, MonthlyBillSummer: 92, MonthlyBillWinter: 105, PrimaryBulbType: "led"},
		},
	},
}
