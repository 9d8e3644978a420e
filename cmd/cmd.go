// Package cmd defines the command-line interface for enaudit.
package cmd

import (
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(climateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the weather subcommands to the parent weather command
	weatherCmd.AddCommand(weatherDegreeDaysCmd)
	weatherCmd.AddCommand(weatherFactorsCmd)
	weatherCmd.AddCommand(weatherEventsCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("year", 0, "Year the residence was built")
	rootCmd.PersistentFlags().Int("sqft", 0, "Conditioned floor area in square feet")
	rootCmd.PersistentFlags().String("state", "", "Two-letter US state code for climate adjustment")
	rootCmd.PersistentFlags().String("position", "", "Unit position: interior, corner, top-floor, end, or a duplex configuration")
	rootCmd.PersistentFlags().Bool("save", false, "Record the resolution in the audit history store")
	rootCmd.PersistentFlags().String("zip", "", "Zip code for weather lookups")
	rootCmd.PersistentFlags().String("city", "", "City name for weather lookups")
	rootCmd.PersistentFlags().String("start", "", "Start date in ISO8601 or YYYY-MM-DD")
	rootCmd.PersistentFlags().String("end", "", "End date in ISO8601 or YYYY-MM-DD")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of history runs to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("weather-db", "", "Path to the SQLite weather database")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
