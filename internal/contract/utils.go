package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/homewise/enaudit/schema"
)

// Provenance label constants.
const (
	UserValue    = "User"    // value the user supplied
	DefaultValue = "Default" // value filled from the tables
)

// Color variables for console output.
var (
	UserColor     = color.New(color.FgGreen, color.Bold) // user values are the ones to trust
	DefaultColor  = color.New(color.FgCyan)              // defaults are informational fill
	EstimateColor = color.New(color.FgYellow)            // estimated numbers deserve caution
)

// GetPlainLabel returns a plain text label for a field's provenance.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(p schema.Provenance) string {
	if p == schema.UserProvenance {
		return UserValue
	}
	return DefaultValue
}

// GetColorLabel returns a colored provenance label for console output
// (table). It uses GetPlainLabel to determine the string, and then
// applies the appropriate color.
func GetColorLabel(p schema.Provenance) string {
	text := GetPlainLabel(p)
	if text == UserValue {
		return UserColor.Sprint(text)
	}
	return DefaultColor.Sprint(text)
}

// GetEstimateLabel marks estimated degree-day numbers in table output.
func GetEstimateLabel(estimated bool, useColors bool) string {
	if !estimated {
		return "recorded"
	}
	if useColors {
		return EstimateColor.Sprint("estimated")
	}
	return "estimated"
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. It falls back to os.Stdout when no
// path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for
// audit history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".enaudit_history.db"
	}
	return filepath.Join(homeDir, ".enaudit_history.db")
}

// GetWeatherDBFilePath returns the path to the SQLite DB file holding
// weather observations.
func GetWeatherDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".enaudit_weather.db"
	}
	return filepath.Join(homeDir, ".enaudit_weather.db")
}

// TruncateValue shortens a display value to maxWidth runes with an
// ellipsis suffix.
func TruncateValue(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
