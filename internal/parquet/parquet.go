// Package parquet provides data structures and functions for exporting audit
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/homewise/enaudit/schema"
	"github.com/parquet-go/parquet-go"
)

// AuditRun represents a single defaults resolution with metadata.
// This struct maps to the enaudit_audit_runs database table.
type AuditRun struct {
	// RunID is the unique identifier for this audit run
	RunID int64 `parquet:"run_id,snappy"`

	// RunTime is when the resolution happened (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// HomeType is the resolved housing type
	HomeType string `parquet:"home_type,snappy"`

	// YearBuilt is the construction year the caller supplied
	YearBuilt int32 `parquet:"year_built,snappy"`

	// SquareFootage is the footage the caller supplied (0 if omitted)
	SquareFootage int32 `parquet:"square_footage,snappy"`

	// State is the two-letter state code (nullable)
	State *string `parquet:"state,optional,snappy"`

	// UnitPosition is the unit position or configuration (nullable)
	UnitPosition *string `parquet:"unit_position,optional,snappy"`

	// Period is the classified construction-period bucket
	Period string `parquet:"period,snappy"`

	// SizeCategory is the classified size bucket
	SizeCategory string `parquet:"size_category,snappy"`

	// ClimateZone is the resolved IECC zone (nullable, absent without a state)
	ClimateZone *int32 `parquet:"climate_zone,optional,snappy"`

	// AnnualUsageKWh is the estimated annual usage in the resolved bundle
	AnnualUsageKWh int32 `parquet:"annual_usage_kwh,snappy"`

	// Adjusted reports whether the climate/size/position multipliers were applied
	Adjusted bool `parquet:"adjusted,snappy"`

	// ConfigParams contains the JSON-encoded invocation parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ResolvedField represents one field of one resolved bundle.
// This struct maps to the enaudit_resolved_fields database table.
type ResolvedField struct {
	// RunID references the parent audit run
	RunID int64 `parquet:"run_id,snappy"`

	// Section is the bundle section (homeDetails, heatingCooling, ...)
	Section string `parquet:"section,snappy"`

	// Field is the dotted field path within the section
	Field string `parquet:"field,snappy"`

	// Value is the resolved value rendered as a string
	Value string `parquet:"value,snappy"`

	// Provenance marks whether the value came from the user or the tables
	Provenance string `parquet:"provenance,snappy"`
}

// WriteAuditRunsParquet writes a slice of AuditRun structs to a Parquet file.
func WriteAuditRunsParquet(data []AuditRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AuditRun struct tags
	writer := parquet.NewGenericWriter[AuditRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteResolvedFieldsParquet writes a slice of ResolvedField structs to a Parquet file.
func WriteResolvedFieldsParquet(data []ResolvedField, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ResolvedField struct tags
	writer := parquet.NewGenericWriter[ResolvedField](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAuditRunRecords converts schema.AuditRunRecord to AuditRun for Parquet export.
func ConvertAuditRunRecords(records []schema.AuditRunRecord) []AuditRun {
	result := make([]AuditRun, len(records))
	for i, record := range records {
		result[i] = AuditRun{
			RunID:          record.RunID,
			RunTime:        record.RunTime,
			HomeType:       record.HomeType,
			YearBuilt:      int32(record.YearBuilt),
			SquareFootage:  int32(record.SquareFootage),
			State:          record.State,
			UnitPosition:   record.UnitPosition,
			Period:         record.Period,
			SizeCategory:   record.SizeCategory,
			ClimateZone:    record.ClimateZone,
			AnnualUsageKWh: record.AnnualUsageKWh,
			Adjusted:       record.Adjusted,
			ConfigParams:   record.ConfigParams,
		}
	}
	return result
}

// ConvertResolvedFieldRecords converts schema.ResolvedFieldRecord to ResolvedField for Parquet export.
func ConvertResolvedFieldRecords(records []schema.ResolvedFieldRecord) []ResolvedField {
	result := make([]ResolvedField, len(records))
	for i, record := range records {
		result[i] = ResolvedField{
			RunID:      record.RunID,
			Section:    record.Section,
			Field:      record.Field,
			Value:      record.Value,
			Provenance: record.Provenance,
		}
	}
	return result
}
