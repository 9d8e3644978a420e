package core

import "github.com/homewise/enaudit/schema"

// condominiumDefaults holds the pre-fill values for condominium units.
// The stock closely tracks apartments of the same era but runs a bit
// larger, with owner-upgraded interiors showing up after 2000.
var condominiumDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1980: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 750, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 5, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "balcony-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 28},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8400, MonthlyBillSummer: 105, MonthlyBillWinter: 135, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1150, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 7, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "balcony-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 28},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9500, MonthlyBillSummer: 120, MonthlyBillWinter: 155, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1700, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 10, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"windows", "balcony-door", "entry-door"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "electric-baseboard", Fuel: "electricity", Efficiency: 100, AgeYears: 28},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "none",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11200, MonthlyBillSummer: 140, MonthlyBillWinter: 185, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1980To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 800, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 5, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 16},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 16},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 7000, MonthlyBillSummer: 90, MonthlyBillWinter: 110, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1200, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 7, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 16},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 16},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8000, MonthlyBillSummer: 100, MonthlyBillWinter: 125, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1800, Stories: 2, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "minimal", WindowType: "double-pane", WindowCount: 11, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 220, AgeYears: 16},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 10, AgeYears: 16},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9400, MonthlyBillSummer: 120, MonthlyBillWinter: 145, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 850, Stories: 1, Bedrooms: 1, Bathrooms: 1, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 6, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 290, AgeYears: 7},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 15, AgeYears: 7},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 6000, MonthlyBillSummer: 75, MonthlyBillWinter: 90, PrimaryBulbType: "led"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1250, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 2},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 8, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 290, AgeYears: 7},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 15, AgeYears: 7},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 6800, MonthlyBillSummer: 85, MonthlyBillWinter: 100, PrimaryBulbType: "led"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1850, Stories: 2, Bedrooms: 3, Bathrooms: 2.5, CeilingHeightFt: 9, FoundationType: "slab", SharedWalls: 1},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "adequate", WindowType: "low-e-double-pane", WindowCount: 12, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 290, AgeYears: 7},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 15, AgeYears: 7},
				ThermostatType: "smart", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8000, MonthlyBillSummer: 100, MonthlyBillWinter: 115, PrimaryBulbType: "led"},
		},
	},
}
