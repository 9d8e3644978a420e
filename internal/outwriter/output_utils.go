package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// splitFieldKey separates a dotted field path into its top-level
// section and the remainder ("heatingCooling.heatingSystem.type" ->
// "heatingCooling", "heatingSystem.type").
func splitFieldKey(key string) (section, field string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// formatFieldValue renders a flattened bundle value for display.
// Flattening goes through JSON, so numbers arrive as float64; whole
// numbers print without a decimal part.
func formatFieldValue(v any, fmtFloat func(float64) string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return fmtFloat(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatFieldValue(item, fmtFloat)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// sortedFieldKeys returns the keys of a flattened bundle in stable
// display order.
func sortedFieldKeys(flat map[string]any) []string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatAdjustment renders the multiplicative usage composition on one
// line.
func formatAdjustment(adj *schema.Adjustment, fmtFloat func(float64) string) string {
	return fmt.Sprintf("%d kWh base x %s climate x %s size x %s position = %d kWh/yr",
		adj.BaselineKWh,
		fmtFloat(adj.ClimateFactor),
		fmtFloat(adj.SizeFactor),
		fmtFloat(adj.PositionFactor),
		adj.FinalKWh)
}

// provenanceLabel picks the colored or plain label based on config.
func provenanceLabel(p schema.Provenance, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(p)
	}
	return contract.GetPlainLabel(p)
}

// formatLocation renders a location header line.
func formatLocation(loc *schema.Location) string {
	var b strings.Builder
	if loc.City != "" {
		b.WriteString(loc.City)
		b.WriteString(", ")
	}
	b.WriteString(loc.State)
	if loc.ZipCode != "" {
		b.WriteString(" ")
		b.WriteString(loc.ZipCode)
	}
	fmt.Fprintf(&b, " (zone %d)", loc.ClimateZone)
	return b.String()
}
