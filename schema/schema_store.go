package schema

import "time"

// AuditRunRecord represents a row from the enaudit_audit_runs table.
type AuditRunRecord struct {
	RunID          int64
	RunTime        time.Time
	HomeType       string
	YearBuilt      int
	SquareFootage  int
	State          *string
	UnitPosition   *string
	Period         string
	SizeCategory   string
	ClimateZone    *int32
	AnnualUsageKWh int32
	Adjusted       bool
	ConfigParams   *string
}

// ResolvedFieldRecord represents a row from the enaudit_resolved_fields
// table: one field of one resolved bundle with its provenance.
type ResolvedFieldRecord struct {
	RunID      int64
	Section    string
	Field      string
	Value      string
	Provenance string
}

// HistoryStatus summarizes the audit history store for `history status`.
type HistoryStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}
