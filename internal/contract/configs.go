package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/homewise/enaudit/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 365
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateFormat is the short form accepted for weather date ranges.
const DateFormat = "2006-01-02"

// Config holds the runtime configuration for a command invocation.
// This struct remains the "final, validated" config.
type Config struct {
	// Resolution inputs. HomeType stays a raw string here; core owns
	// alias parsing and rejection.
	HomeType      string
	FormFile      string
	YearBuilt     int
	SquareFootage int
	State         string
	UnitPosition  string
	Save          bool

	// Weather lookups.
	ZipCode   string
	City      string
	StartTime time.Time
	EndTime   time.Time

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
	WeatherDBPath    string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	HomeTypeStr string
	FormFileStr string
	StateStr    string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	WeatherDB        string `mapstructure:"weather-db"`

	// --- Fields from defaultsCmd.Flags() ---
	Year     int    `mapstructure:"year"`
	Sqft     int    `mapstructure:"sqft"`
	State    string `mapstructure:"state"`
	Position string `mapstructure:"position"`

	// --- Fields from auditCmd.Flags() ---
	Save bool `mapstructure:"save"`

	// --- Fields from weatherCmd.PersistentFlags() ---
	Zip   string `mapstructure:"zip"`
	City  string `mapstructure:"city"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`

	// --- Fields from historyCmd.Flags() ---
	Limit int `mapstructure:"limit"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDateRange(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-date fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.HomeType = input.HomeTypeStr
	cfg.FormFile = input.FormFileStr
	cfg.YearBuilt = input.Year
	cfg.SquareFootage = input.Sqft
	cfg.UnitPosition = input.Position
	cfg.Save = input.Save
	cfg.ZipCode = input.Zip
	cfg.City = input.City
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.WeatherDBPath = input.WeatherDB

	// Positional state (climate command) wins over the --state flag.
	cfg.State = input.StateStr
	if cfg.State == "" {
		cfg.State = input.State
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 3. Year and Footage Sanity ---
	if input.Year < 0 {
		return fmt.Errorf("year cannot be negative (received %d)", input.Year)
	}
	if input.Sqft < 0 {
		return fmt.Errorf("sqft cannot be negative (received %d)", input.Sqft)
	}

	return nil
}

// processDateRange handles the weather date-range parsing. Both ends
// accept ISO8601 timestamps or plain YYYY-MM-DD dates.
func processDateRange(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()
	cfg.EndTime = now
	cfg.StartTime = now.Add(-DefaultLookbackDays * 24 * time.Hour)

	parse := func(s string) (time.Time, error) {
		if t, err := time.Parse(DateTimeFormat, s); err == nil {
			return t, nil
		}
		return time.Parse(DateFormat, s)
	}

	if input.Start != "" {
		t, err := parse(input.Start)
		if err != nil {
			return fmt.Errorf("invalid start date '%s'. Expected ISO8601 or YYYY-MM-DD: %w", input.Start, err)
		}
		cfg.StartTime = t
	}
	if input.End != "" {
		t, err := parse(input.End)
		if err != nil {
			return fmt.Errorf("invalid end date '%s'. Expected ISO8601 or YYYY-MM-DD: %w", input.End, err)
		}
		cfg.EndTime = t
	}

	if !cfg.StartTime.Before(cfg.EndTime) {
		return fmt.Errorf("start date %s must be before end date %s",
			cfg.StartTime.Format(DateFormat), cfg.EndTime.Format(DateFormat))
	}
	return nil
}

// validateBackendConfigs validates the history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	if cfg.WeatherDBPath == "" {
		cfg.WeatherDBPath = GetWeatherDBFilePath()
	}
	return nil
}
