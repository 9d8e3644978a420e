package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
)

// WriteFilledForm outputs a filled audit form, dispatching based on
// the output format configured. The table and CSV forms carry a
// provenance column so user values stand apart from filled defaults.
func WriteFilledForm(w io.Writer, form *schema.FilledForm, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, form); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeFormCSV(w, form, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeFormTable(w, form, cfg, fmtFloat)
	}
	return nil
}

// writeFormTable generates and writes the human-readable table.
func writeFormTable(w io.Writer, form *schema.FilledForm, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Audit form: %s (%s, %s)\n", form.Input.HomeType, form.Period, form.Size); err != nil {
		return err
	}
	if form.ClimateZone > 0 {
		if _, err := fmt.Fprintf(w, "Climate: %s zone %d (%s)\n", form.Input.State, form.ClimateZone, form.Climate); err != nil {
			return err
		}
	}

	if err := writeBundleTable(w, &form.Bundle, form.Provenance, cfg, fmtFloat); err != nil {
		return err
	}

	if form.Adjustment != nil {
		if _, err := fmt.Fprintf(w, "Usage estimate: %s\n", formatAdjustment(form.Adjustment, fmtFloat)); err != nil {
			return err
		}
	}

	userCount := len(form.UserFields())
	_, err := fmt.Fprintf(w, "Filled %d fields (%d from user input)\n", len(form.Provenance), userCount)
	return err
}

// writeFormCSV writes a filled form as one row per field with its
// provenance.
func writeFormCSV(w io.Writer, form *schema.FilledForm, fmtFloat func(float64) string) error {
	flat, err := core.FlattenFields(&form.Bundle)
	if err != nil {
		return err
	}

	header := []string{"home_type", "year_built", "section", "field", "value", "source"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, key := range sortedFieldKeys(flat) {
			section, field := splitFieldKey(key)
			rec := []string{
				string(form.Input.HomeType),
				strconv.Itoa(form.Input.YearBuilt),
				section,
				field,
				formatFieldValue(flat[key], fmtFloat),
				contract.GetPlainLabel(form.Provenance[key]),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
