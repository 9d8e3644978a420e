package cmd

import (
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/outwriter"
	"github.com/homewise/enaudit/internal/weatherdb"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
)

// weatherCmd groups the weather database lookups.
var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Query the local weather database for energy normalization",
	Long: `Query the local SQLite weather database for degree days, seasonal
normalization factors, and severe-weather event summaries.

Locations resolve from --zip first, then --city with --state, then the first
location recorded for the state. Degree days fall back from recorded daily
observations to monthly averages, climate-zone estimates, and finally a
generic estimate, and the output marks which source was used.

Subcommands:
  degree-days - Heating/cooling degree days over a date range
  factors     - Monthly weather-normalization factors
  events      - Severe-weather event summaries

Examples:
  # Degree days for a zip code over a winter
  enaudit weather degree-days --zip 55401 --start 2025-11-01 --end 2026-03-01

  # Seasonal factors for a city
  enaudit weather factors --city Austin --state TX`,
}

// withWeatherSource opens the weather database and hands the source to fn.
func withWeatherSource(fn func(src contract.WeatherSource, loc *schema.Location) error) {
	src, err := weatherdb.Open(cfg.WeatherDBPath)
	if err != nil {
		contract.LogFatal("Cannot open weather database", err)
	}
	defer func() { _ = src.Close() }()

	loc, err := src.FindLocation(cfg.ZipCode, cfg.City, cfg.State)
	if err != nil {
		contract.LogFatal("Cannot resolve location", err)
	}

	if err := fn(src, loc); err != nil {
		contract.LogFatal("Weather lookup failed", err)
	}
}

// weatherDegreeDaysCmd aggregates degree days over a date range.
var weatherDegreeDaysCmd = &cobra.Command{
	Use:   "degree-days",
	Short: "Show heating/cooling degree days for a location.",
	Long: `Aggregate heating and cooling degree days for a location over a date
range. Without --start/--end the lookback defaults to one year.

Examples:
  # Last year of degree days for a zip code
  enaudit weather degree-days --zip 78701

  # A specific heating season
  enaudit weather degree-days --zip 55401 --start 2025-11-01 --end 2026-03-01`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withWeatherSource(func(src contract.WeatherSource, loc *schema.Location) error {
			summary, err := src.DegreeDays(loc, cfg.StartTime, cfg.EndTime)
			if err != nil {
				return err
			}
			return outwriter.NewOutWriter().WriteDegreeDays(loc, summary, cfg)
		})
	},
}

// weatherFactorsCmd derives monthly normalization factors.
var weatherFactorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Show monthly weather-normalization factors for a location.",
	Long: `Derive monthly weather-normalization factors from the location's recorded
monthly degree-day statistics. Factors center on 1.0 and are clamped so a
single extreme month cannot dominate a normalized consumption series.

Examples:
  # Factors for a city
  enaudit weather factors --city Minneapolis --state MN`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withWeatherSource(func(src contract.WeatherSource, loc *schema.Location) error {
			factors, err := src.SeasonalFactors(loc)
			if err != nil {
				return err
			}
			return outwriter.NewOutWriter().WriteSeasonalFactors(loc, factors, cfg)
		})
	},
}

// weatherEventsCmd summarizes severe-weather events.
var weatherEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show severe-weather event summaries for a location.",
	Long: `List the severe-weather events recorded for a location, ordered by their
estimated energy impact.

Examples:
  # Events for a zip code
  enaudit weather events --zip 78701`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withWeatherSource(func(src contract.WeatherSource, loc *schema.Location) error {
			stats, err := src.EventStats(loc)
			if err != nil {
				return err
			}
			return outwriter.NewOutWriter().WriteEventStats(loc, stats, cfg)
		})
	},
}
