// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/homewise/enaudit/schema"
)

// HistoryStore defines the interface for recording audit resolutions.
// This allows the persistence layer to be mocked for testing.
type HistoryStore interface {
	// BeginRun creates a new audit run and returns its unique ID
	BeginRun(runTime time.Time, res *schema.Resolution, configParams map[string]any) (int64, error)

	// RecordFields stores the resolved fields of a run with provenance
	RecordFields(runID int64, fields []schema.ResolvedFieldRecord) error

	// ListRuns returns the most recent audit runs, newest first
	ListRuns(limit int) ([]schema.AuditRunRecord, error)

	// ListFields returns the resolved fields of one run
	ListFields(runID int64) ([]schema.ResolvedFieldRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}

// HistoryManager defines the interface for managing history stores.
// This allows the storage layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// WeatherSource defines the lookups backed by the weather database.
// The core math stays pure; implementations only fetch rows.
type WeatherSource interface {
	// FindLocation resolves a zip code or city/state to a known location
	FindLocation(zipCode, city, state string) (*schema.Location, error)

	// DegreeDays aggregates HDD/CDD for a location over a date range,
	// estimating when no recorded data covers it
	DegreeDays(loc *schema.Location, start, end time.Time) (*schema.DegreeDaySummary, error)

	// SeasonalFactors derives monthly weather adjustment factors
	SeasonalFactors(loc *schema.Location) (schema.SeasonalFactors, error)

	// EventStats summarizes severe-weather events for a location
	EventStats(loc *schema.Location) ([]schema.WeatherEventStat, error)

	// Close closes the underlying connection
	Close() error
}
