package core

import "github.com/homewise/enaudit/schema"

// mobileHomeDefaults holds the pre-fill values for manufactured homes.
// The period splits follow the HUD code milestones: the 1976 national
// standard, the 1994 thermal/wind update, and 2000. Pre-1976 units
// predate any federal insulation requirement.
var mobileHomeDefaults = map[schema.ConstructionPeriod]map[schema.SizeCategory]schema.DefaultsBundle{
	schema.PrePeriod1976: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 700, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 7, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "none", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 7, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"belly-board", "windows", "skirting"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 60, AgeYears: 30},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 7, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 12300, MonthlyBillSummer: 135, MonthlyBillWinter: 195, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1100, Stories: 1, Bedrooms: 2, Bathrooms: 1.5, CeilingHeightFt: 7, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "none", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 9, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"belly-board", "windows", "skirting"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 60, AgeYears: 30},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 7, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 14000, MonthlyBillSummer: 150, MonthlyBillWinter: 220, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1700, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 7, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "none", FloorInsulation: "none", WindowType: "single-pane", WindowCount: 12, AirLeakage: "severe", WeatherStripping: "none", ProblemAreas: []string{"belly-board", "windows", "skirting", "marriage-line"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 60, AgeYears: 30},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 7, AgeYears: 12},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 16500, MonthlyBillSummer: 175, MonthlyBillWinter: 255, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1976To1994: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 800, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 7, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "minimal", WindowType: "single-pane", WindowCount: 8, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"belly-board", "windows"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 70, AgeYears: 22},
				CoolingSystem:  schema.HVACSystem{Type: "window-units", Fuel: "electricity", Efficiency: 8, AgeYears: 10},
				ThermostatType: "manual", DuctworkCondition: "poor",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 10600, MonthlyBillSummer: 115, MonthlyBillWinter: 170, PrimaryBulbType: "incandescent"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1200, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 7, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "minimal", WindowType: "single-pane", WindowCount: 10, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"belly-board", "windows"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 70, AgeYears: 22},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 14},
				ThermostatType: "manual", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 12000, MonthlyBillSummer: 130, MonthlyBillWinter: 190, PrimaryBulbType: "incandescent"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1800, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "minimal", WallInsulation: "minimal", FloorInsulation: "minimal", WindowType: "single-pane", WindowCount: 13, AirLeakage: "significant", WeatherStripping: "worn", ProblemAreas: []string{"belly-board", "windows", "marriage-line"}},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 70, AgeYears: 22},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 9, AgeYears: 14},
				ThermostatType: "manual", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 14200, MonthlyBillSummer: 150, MonthlyBillWinter: 220, PrimaryBulbType: "incandescent"},
		},
	},
	schema.Period1994To2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 850, Stories: 1, Bedrooms: 2, Bathrooms: 1, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "adequate", WindowType: "double-pane", WindowCount: 8, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 78, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 12},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9200, MonthlyBillSummer: 105, MonthlyBillWinter: 150, PrimaryBulbType: "mixed"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1300, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "adequate", WindowType: "double-pane", WindowCount: 10, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 78, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 12},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 10500, MonthlyBillSummer: 115, MonthlyBillWinter: 165, PrimaryBulbType: "mixed"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1900, Stories: 1, Bedrooms: 4, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "adequate", WallInsulation: "adequate", FloorInsulation: "adequate", WindowType: "double-pane", WindowCount: 13, AirLeakage: "moderate", WeatherStripping: "basic"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "gas-furnace", Fuel: "propane", Efficiency: 78, AgeYears: 15},
				CoolingSystem:  schema.HVACSystem{Type: "central-ac", Fuel: "electricity", Efficiency: 10, AgeYears: 12},
				ThermostatType: "programmable", DuctworkCondition: "fair",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 12400, MonthlyBillSummer: 135, MonthlyBillWinter: 190, PrimaryBulbType: "mixed"},
		},
	},
	schema.PostPeriod2000: {
		schema.SmallSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 900, Stories: 1, Bedrooms: 2, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "good", WindowType: "double-pane", WindowCount: 9, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 250, AgeYears: 10},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 13, AgeYears: 10},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 8400, MonthlyBillSummer: 95, MonthlyBillWinter: 130, PrimaryBulbType: "cfl"},
		},
		schema.MediumSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 1400, Stories: 1, Bedrooms: 3, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "good", WindowType: "low-e-double-pane", WindowCount: 11, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 250, AgeYears: 10},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 13, AgeYears: 10},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 9500, MonthlyBillSummer: 105, MonthlyBillWinter: 140, PrimaryBulbType: "cfl"},
		},
		schema.LargeSize: {
			HomeDetails:       schema.HomeDetails{SquareFootage: 2000, Stories: 1, Bedrooms: 4, Bathrooms: 2, CeilingHeightFt: 8, FoundationType: "pier-and-beam", SharedWalls: 0},
			CurrentConditions: schema.CurrentConditions{AtticInsulation: "good", WallInsulation: "good", FloorInsulation: "good", WindowType: "low-e-double-pane", WindowCount: 14, AirLeakage: "minimal", WeatherStripping: "foam"},
			HeatingCooling: schema.HeatingCooling{
				HeatingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 250, AgeYears: 10},
				CoolingSystem:  schema.HVACSystem{Type: "heat-pump", Fuel: "electricity", Efficiency: 13, AgeYears: 10},
				ThermostatType: "programmable", DuctworkCondition: "good",
			},
			EnergyConsumption: schema.EnergyConsumption{EstimatedAnnualUsageKWh: 11200, MonthlyBillSummer: 120, MonthlyBillWinter: 160, PrimaryBulbType: "led"},
		},
	},
}
