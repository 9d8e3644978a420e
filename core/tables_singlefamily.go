package core

import "github.com/homewise/enaudit/schema"

// singleFamilyDefaults holds the pre-fill values for detached
// single-family homes. Foundation type shifts from basement toward
// slab across eras, tracking the national construction trend.
var singleFamilyDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1980: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1100, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 10, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"attic-hatch", "rim-joist", "windows"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 65, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 14500, MonthlyBillSummer: 150, MonthlyBillWinter: 210, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1900, Stories: 2, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 14, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"attic-hatch", "rim-joist", "windows"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 65, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 15},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 16500, MonthlyBillSummer: 170, MonthlyBillWinter: 240, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 3000, Stories: 2, Bedrooms: 4, Bathrooms: 2.5, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 20, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"attic-hatch", "rim-joist", "windows", "fireplace"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 65, AgeYears: 25},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 15},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 19500, MonthlyBillSummer: 205, MonthlyBillWinter: 290, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1980To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1300, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "crawlspace", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 10, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11900, MonthlyBillSummer: 130, MonthlyBillWinter: 175, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2000, Stories: 2, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "crawlspace", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 15, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 13500, MonthlyBillSummer: 145, MonthlyBillWinter: 200, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 3200, Stories: 2, Bedrooms: 4, Bathrooms: 3, CeilingHeightFt: 9, FoundationType: "crawlspace", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 22, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 15900, MonthlyBillSummer: 170, MonthlyBillWinter: 235, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1400, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 11, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 9},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 9},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9700, MonthlyBillSummer: 110, MonthlyBillWinter: 145, PrimaryBulbType: "led"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2100, Stories: 2, Bedrooms: 4, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 16, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 9},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 9},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11000, MonthlyBillSummer: 120, MonthlyBillWinter: 160, PrimaryBulbType: "led"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 3400, Stories: 2, Bedrooms: 5, Bathrooms: 3.5, CeilingHeightFt: 10, FoundationType: "slab", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 24, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 9},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 9},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 13000, MonthlyBillSummer: 140, MonthlyBillWinter: 185, PrimaryBulbType: "led"},
		},
	},
}
