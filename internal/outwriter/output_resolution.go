package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteResolution outputs a defaults resolution, dispatching based on
// the output format configured.
func WriteResolution(w io.Writer, res *schema.Resolution, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, res); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeResolutionCSV(w, res, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeResolutionTable(w, res, cfg, fmtFloat)
	}
	return nil
}

// writeResolutionTable generates and writes the human-readable table.
func writeResolutionTable(w io.Writer, res *schema.Resolution, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Housing defaults: %s (%s, %s)\n", res.Input.HomeType, res.Period, res.Size); err != nil {
		return err
	}
	if res.ClimateZone > 0 {
		if _, err := fmt.Fprintf(w, "Climate: %s zone %d (%s)\n", res.Input.State, res.ClimateZone, res.Climate); err != nil {
			return err
		}
	}

	if err := writeBundleTable(w, &res.Bundle, nil, cfg, fmtFloat); err != nil {
		return err
	}

	if res.Adjustment != nil {
		if _, err := fmt.Fprintf(w, "Usage estimate: %s\n", formatAdjustment(res.Adjustment, fmtFloat)); err != nil {
			return err
		}
	}
	return nil
}

// writeBundleTable renders the flattened bundle fields. When
// provenance is non-nil a provenance column is added per field.
func writeBundleTable(w io.Writer, bundle *schema.DefaultsBundle, provenance map[string]schema.Provenance, cfg *contract.Config, fmtFloat func(float64) string) error {
	flat, err := core.FlattenFields(bundle)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)

	headers := []string{"Section", "Field", "Value"}
	if provenance != nil {
		headers = append(headers, "Source")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxValueWidth := getMaxTableValueWidth(cfg, provenance != nil)

	var data [][]string
	for _, key := range sortedFieldKeys(flat) {
		section, field := splitFieldKey(key)
		value := contract.TruncateValue(formatFieldValue(flat[key], fmtFloat), maxValueWidth)
		row := []string{section, field, value}
		if provenance != nil {
			row = append(row, provenanceLabel(provenance[key], cfg))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeResolutionCSV writes a resolution as one row per resolved field.
func writeResolutionCSV(w io.Writer, res *schema.Resolution, fmtFloat func(float64) string) error {
	flat, err := core.FlattenFields(&res.Bundle)
	if err != nil {
		return err
	}

	header := []string{"home_type", "period", "size", "section", "field", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, key := range sortedFieldKeys(flat) {
			section, field := splitFieldKey(key)
			rec := []string{
				string(res.Input.HomeType),
				string(res.Period),
				string(res.Size),
				section,
				field,
				formatFieldValue(flat[key], fmtFloat),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
