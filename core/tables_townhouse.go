package core

import "github.com/homewise/enaudit/schema"

// townhouseDefaults holds the pre-fill values for townhouses. Nearly
// all are two-story with two shared walls; end units pick up an extra
// exposed wall through the position factor rather than the table.
var townhouseDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1980: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1000, Stories: 2, Bedrooms: 2, Bathrooms: 1.5, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 8, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"windows", "rim-joist", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 24},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11000, MonthlyBillSummer: 120, MonthlyBillWinter: 165, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1550, Stories: 2, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 11, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"windows", "rim-joist", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 24},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 15},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 12500, MonthlyBillSummer: 135, MonthlyBillWinter: 185, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2300, Stories: 3, Bedrooms: 4, Bathrooms: 2.5, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 14, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"windows", "rim-joist", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 24},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 15},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 14800, MonthlyBillSummer: 155, MonthlyBillWinter: 215, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1980To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1100, Stories: 2, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 8, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 17},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 13},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9200, MonthlyBillSummer: 105, MonthlyBillWinter: 140, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1600, Stories: 2, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 11, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 17},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 13},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 10500, MonthlyBillSummer: 115, MonthlyBillWinter: 155, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2400, Stories: 3, Bedrooms: 4, Bathrooms: 3, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 15, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 17},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 13},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 12400, MonthlyBillSummer: 135, MonthlyBillWinter: 180, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1150, Stories: 2, Bedrooms: 2, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 9, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 7700, MonthlyBillSummer: 90, MonthlyBillWinter: 115, PrimaryBulbType: "led"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1650, Stories: 3, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 12, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8800, MonthlyBillSummer: 100, MonthlyBillWinter: 125, PrimaryBulbType: "led"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2500, Stories: 3, Bedrooms: 4, Bathrooms: 3.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 16, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 92, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 10400, MonthlyBillSummer: 115, MonthlyBillWinter: 145, PrimaryBulbType: "led"},
		},
	},
}
