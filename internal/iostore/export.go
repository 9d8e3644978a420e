package iostore

import (
	"errors"
	"fmt"

	"github.com/homewise/enaudit/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of audit history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no audit history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total audit runs: %d\n", status.TotalRuns)
	fmt.Printf("Total field records: %d\n", status.TableSizes[resolvedFieldsTable])

	impl, ok := store.(*HistoryStoreImpl)
	if !ok {
		return errors.New("export requires a database-backed history store")
	}

	// Retrieve all audit runs
	runs, err := impl.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve audit runs: %w", err)
	}

	// Retrieve all resolved fields
	fields, err := impl.GetAllFields()
	if err != nil {
		return fmt.Errorf("failed to retrieve resolved fields: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAuditRunRecords(runs)
	parquetFields := parquet.ConvertResolvedFieldRecords(fields)

	// Write audit runs to Parquet
	runsFile := outputFile + ".audit_runs.parquet"
	if err := parquet.WriteAuditRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write audit runs: %w", err)
	}
	fmt.Printf("Exported %d audit runs to: %s\n", len(parquetRuns), runsFile)

	// Write resolved fields to Parquet
	fieldsFile := outputFile + ".resolved_fields.parquet"
	if err := parquet.WriteResolvedFieldsParquet(parquetFields, fieldsFile); err != nil {
		return fmt.Errorf("failed to write resolved fields: %w", err)
	}
	fmt.Printf("Exported %d resolved fields to: %s\n", len(parquetFields), fieldsFile)

	return nil
}
