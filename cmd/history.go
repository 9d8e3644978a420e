package cmd

import (
	"fmt"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/iostore"
	"github.com/homewise/enaudit/internal/outwriter"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := iostore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on audit history management.
//
// Note: Most history subcommands use minimal initialization (historySetup)
// instead of the full sharedSetup used by resolution commands. This avoids
// form and weather config processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded audit runs",
	Long: `Manage the audit history store that records every saved resolution.

When enabled, enaudit tracks every run saved with --save, storing:
- Run metadata (timestamp, classification inputs, usage estimate)
- The resolved fields of each run with their provenance

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent audit runs
  status  - Show history store statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Check history status
  enaudit history status

  # Export for analysis in pandas/DuckDB
  enaudit history export --output-file audit-history`,
}

// historyListCmd lists recent audit runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent audit runs, newest first.",
	Long: `List the most recent recorded audit runs with their classification
results and usage estimates.

Examples:
  # The last 25 runs
  enaudit history list

  # A larger window as CSV
  enaudit history list --limit 100 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iostore.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Cannot list history", errNoHistoryStore)
		}
		runs, err := store.ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Cannot list history", err)
		}
		if err := outwriter.NewOutWriter().WriteHistoryRuns(runs, cfg); err != nil {
			contract.LogFatal("Cannot write history", err)
		}
	},
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history store statistics and connection details",
	Long: `Show detailed information about the audit history store.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps
- Database table sizes

Examples:
  # Check history store status
  enaudit history status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iostore.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Cannot get history status", errNoHistoryStore)
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get history status", err)
		}
		if err := outwriter.NewOutWriter().WriteHistoryStatus(&status, cfg); err != nil {
			contract.LogFatal("Cannot write history status", err)
		}
	},
}

// historyClearCmd clears the recorded runs.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded audit runs",
	Long: `Delete all stored audit runs and their resolved fields.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the history tables

Examples:
  # Export before clearing
  enaudit history export --output-file backup
  enaudit history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports audit history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded audit runs to Parquet format for use with analytics
tools.

Exports two datasets:
- Audit runs - metadata about each recorded resolution
- Resolved fields - every field of every run with its provenance

Requires: --output-file parameter

Examples:
  # Export all data
  enaudit history export --output-file audit-history

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('audit-history.audit_runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the audit history store.

By default, migrates to the latest version. Use --target-version for specific
versions.

Examples:
  # Migrate to latest version (default)
  enaudit history migrate

  # Rollback to the initial schema
  enaudit history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
