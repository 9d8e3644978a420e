// Package weatherdb reads local weather observations from a SQLite
// database and turns them into degree-day summaries and seasonal
// adjustment factors. The database is typically produced by an
// external data loader; this layer only reads, estimates, and falls
// back when data is sparse.
package weatherdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Degree-day estimation methods recorded in DegreeDaySummary.Method.
const (
	MethodDaily          = "daily"
	MethodMonthlyAverage = "monthly-average"
	MethodClimateZone    = "climate-zone"
	MethodGeneric        = "generic"
)

// Store is a read-only view over the weather database.
type Store struct {
	db *sql.DB
}

var _ contract.WeatherSource = &Store{} // Compile-time check

// Open opens the weather database at the given path. The schema is
// created if missing so a fresh file behaves like an empty dataset.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = contract.GetWeatherDBFilePath()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather database at %q: %w", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to weather database: %w", err)
	}

	if err := createWeatherTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create weather tables: %w", err)
	}

	return &Store{db: db}, nil
}

// createWeatherTables creates the weather schema when missing.
func createWeatherTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS locations (
			location_id TEXT PRIMARY KEY,
			zip_code TEXT NOT NULL,
			city TEXT,
			state TEXT NOT NULL,
			climate_zone INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_weather (
			location_id TEXT NOT NULL,
			date TEXT NOT NULL,
			temp_high REAL,
			temp_low REAL,
			temp_mean REAL,
			hdd REAL NOT NULL,
			cdd REAL NOT NULL,
			PRIMARY KEY (location_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS monthly_stats (
			location_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			total_hdd REAL NOT NULL,
			total_cdd REAL NOT NULL,
			PRIMARY KEY (location_id, year, month)
		);`,
		`CREATE TABLE IF NOT EXISTS event_stats (
			location_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			count INTEGER NOT NULL,
			avg_severity REAL NOT NULL,
			energy_impact_score REAL NOT NULL,
			PRIMARY KEY (location_id, event_type)
		);`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// FindLocation resolves a zip code or city/state to a known location.
// The cascade goes exact zip, then city+state, then first location in
// the state, then the first location overall. A fully empty database
// returns an error.
func (s *Store) FindLocation(zipCode, city, state string) (*schema.Location, error) {
	queries := []struct {
		query string
		args  []any
		skip  bool
	}{
		{`SELECT location_id, zip_code, city, state, climate_zone FROM locations WHERE zip_code = ? LIMIT 1`, []any{zipCode}, zipCode == ""},
		{`SELECT location_id, zip_code, city, state, climate_zone FROM locations WHERE city = ? AND state = ? LIMIT 1`, []any{city, state}, city == "" || state == ""},
		{`SELECT location_id, zip_code, city, state, climate_zone FROM locations WHERE state = ? LIMIT 1`, []any{state}, state == ""},
		{`SELECT location_id, zip_code, city, state, climate_zone FROM locations LIMIT 1`, nil, false},
	}

	for _, q := range queries {
		if q.skip {
			continue
		}
		var loc schema.Location
		var cityVal sql.NullString
		err := s.db.QueryRow(q.query, q.args...).Scan(&loc.LocationID, &loc.ZipCode, &cityVal, &loc.State, &loc.ClimateZone)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query locations: %w", err)
		}
		loc.City = cityVal.String
		return &loc, nil
	}

	return nil, fmt.Errorf("no locations found in weather database")
}

// DegreeDays aggregates HDD/CDD for a location over a date range.
// When no daily rows cover the range it falls back to monthly
// averages, then climate-zone estimates, then a generic per-day
// estimate, marking the result accordingly.
func (s *Store) DegreeDays(loc *schema.Location, start, end time.Time) (*schema.DegreeDaySummary, error) {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return nil, fmt.Errorf("invalid date range: %s to %s", start.Format(contract.DateFormat), end.Format(contract.DateFormat))
	}

	// 1. Daily observations.
	query := `SELECT COALESCE(SUM(hdd), 0), COALESCE(SUM(cdd), 0), COUNT(*)
		FROM daily_weather WHERE location_id = ? AND date >= ? AND date <= ?`
	var totalHDD, totalCDD float64
	var count int
	err := s.db.QueryRow(query, loc.LocationID, start.Format(contract.DateFormat), end.Format(contract.DateFormat)).
		Scan(&totalHDD, &totalCDD, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily weather: %w", err)
	}
	if count > 0 {
		return &schema.DegreeDaySummary{
			TotalHDD:  totalHDD,
			TotalCDD:  totalCDD,
			AvgHDD:    totalHDD / float64(count),
			AvgCDD:    totalCDD / float64(count),
			DaysCount: count,
			Estimated: false,
			Method:    MethodDaily,
		}, nil
	}

	// 2. Monthly averages scaled to the requested range.
	monthlyHDD, monthlyCDD, err := s.monthlyAverages(loc.LocationID)
	if err != nil {
		return nil, err
	}
	if len(monthlyHDD) > 0 || len(monthlyCDD) > 0 {
		var sumHDD, sumCDD float64
		var months int
		for m := 1; m <= 12; m++ {
			h, okH := monthlyHDD[m]
			c, okC := monthlyCDD[m]
			if okH || okC {
				sumHDD += h
				sumCDD += c
				months++
			}
		}
		// Average daily rate from the monthly totals, scaled to the range.
		dailyHDD := sumHDD / float64(months) / 30.0
		dailyCDD := sumCDD / float64(months) / 30.0
		return estimatedSummary(dailyHDD, dailyCDD, days, MethodMonthlyAverage), nil
	}

	// 3. Climate-zone estimate.
	if hdd, cdd, ok := core.ZoneDegreeDayEstimate(loc.ClimateZone); ok {
		return estimatedSummary(hdd, cdd, days, MethodClimateZone), nil
	}

	// 4. Generic last resort.
	return estimatedSummary(core.GenericDailyHDD, core.GenericDailyCDD, days, MethodGeneric), nil
}

// estimatedSummary builds a summary from a per-day estimate.
func estimatedSummary(dailyHDD, dailyCDD float64, days int, method string) *schema.DegreeDaySummary {
	return &schema.DegreeDaySummary{
		TotalHDD:  dailyHDD * float64(days),
		TotalCDD:  dailyCDD * float64(days),
		AvgHDD:    dailyHDD,
		AvgCDD:    dailyCDD,
		DaysCount: days,
		Estimated: true,
		Method:    method,
	}
}

// monthlyAverages averages the monthly_stats totals per calendar month
// across all recorded years.
func (s *Store) monthlyAverages(locationID string) (map[int]float64, map[int]float64, error) {
	query := `SELECT month, AVG(total_hdd), AVG(total_cdd)
		FROM monthly_stats WHERE location_id = ? GROUP BY month`
	rows, err := s.db.Query(query, locationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	hdd := make(map[int]float64)
	cdd := make(map[int]float64)
	for rows.Next() {
		var month int
		var h, c float64
		if err := rows.Scan(&month, &h, &c); err != nil {
			return nil, nil, fmt.Errorf("failed to scan monthly stats: %w", err)
		}
		hdd[month] = h
		cdd[month] = c
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating monthly stats: %w", err)
	}
	return hdd, cdd, nil
}

// SeasonalFactors derives the monthly weather adjustment factors for a
// location from its recorded monthly stats. Months with no data get
// hemisphere-season estimates inside the factor computation.
func (s *Store) SeasonalFactors(loc *schema.Location) (schema.SeasonalFactors, error) {
	monthlyHDD, monthlyCDD, err := s.monthlyAverages(loc.LocationID)
	if err != nil {
		return nil, err
	}
	return core.ComputeSeasonalFactors(monthlyHDD, monthlyCDD), nil
}

// EventStats summarizes severe-weather events for a location.
func (s *Store) EventStats(loc *schema.Location) ([]schema.WeatherEventStat, error) {
	query := `SELECT event_type, count, avg_severity, energy_impact_score
		FROM event_stats WHERE location_id = ? ORDER BY energy_impact_score DESC`
	rows, err := s.db.Query(query, loc.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.WeatherEventStat
	for rows.Next() {
		var stat schema.WeatherEventStat
		if err := rows.Scan(&stat.EventType, &stat.Count, &stat.AvgSeverity, &stat.EnergyImpactScore); err != nil {
			return nil, fmt.Errorf("failed to scan event stats: %w", err)
		}
		results = append(results, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event stats: %w", err)
	}
	return results, nil
}

// NormalizeConsumption divides each reading by the location's seasonal
// factor for its month.
func (s *Store) NormalizeConsumption(points []schema.ConsumptionPoint, loc *schema.Location) ([]schema.ConsumptionPoint, error) {
	factors, err := s.SeasonalFactors(loc)
	if err != nil {
		return nil, err
	}
	return core.NormalizeConsumption(points, factors), nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
