package core

import "github.com/homewise/enaudit/schema"

// duplexDefaults holds the pre-fill values for duplex units. Older
// duplexes are usually conversions with one shared wall and mixed
// systems; newer ones are purpose-built.
var duplexDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1980: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 850, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "crawlspace", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 8, AirLeakage: "severe", WeatherStripping: "worn", ProblemAreas: []string{"windows", "floor-over-crawlspace"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 26},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 11},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11400, MonthlyBillSummer: 125, MonthlyBillWinter: 175, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1400, Stories: 1, Bedrooms: 3, Bathrooms: 1.5, CeilingHeightFt: 8, FoundationType: "crawlspace", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 11, AirLeakage: "severe", WeatherStripping: "worn", ProblemAreas: []string{"windows", "floor-over-crawlspace"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 26},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 11},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 13000, MonthlyBillSummer: 140, MonthlyBillWinter: 195, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2100, Stories: 2, Bedrooms: 4, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "basement", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 14, AirLeakage: "severe", WeatherStripping: "worn", ProblemAreas: []string{"windows", "rim-joist"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 68, AgeYears: 26},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 16},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 15300, MonthlyBillSummer: 160, MonthlyBillWinter: 225, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1980To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 900, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 8, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9700, MonthlyBillSummer: 110, MonthlyBillWinter: 150, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1450, Stories: 2, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 11, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11000, MonthlyBillSummer: 120, MonthlyBillWinter: 165, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2200, Stories: 2, Bedrooms: 4, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 14, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "natural-gas", Efficiency: 80, AgeYears: 18},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 14},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 13000, MonthlyBillSummer: 140, MonthlyBillWinter: 190, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 950, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 9, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8100, MonthlyBillSummer: 95, MonthlyBillWinter: 120, PrimaryBulbType: "led"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1500, Stories: 2, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 12, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9200, MonthlyBillSummer: 105, MonthlyBillWinter: 135, PrimaryBulbType: "led"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2300, Stories: 2, Bedrooms: 4, Bathrooms: 3, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 15, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 280, AgeYears: 8},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 14, AgeYears: 8},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 10900, MonthlyBillSummer: 120, MonthlyBillWinter: 155, PrimaryBulbType: "led"},
		},
	},
}
