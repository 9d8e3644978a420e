package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReference outputs the housing type and climate reference
// tables, dispatching based on the output format configured.
func WriteReference(w io.Writer, model schema.ReferenceModel, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, model); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReferenceCSV(w, model, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeReferenceTable(w, model, fmtFloat)
	}
	return nil
}

// writeReferenceTable generates and writes the human-readable tables.
func writeReferenceTable(w io.Writer, model schema.ReferenceModel, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w, "Supported housing types"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Periods", "Small Below", "Large Above", "Positions"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, ref := range model.Types {
		data = append(data, []string{
			string(ref.Name),
			joinPeriods(ref.Periods),
			strconv.Itoa(ref.SmallBelowSqFt) + " sqft",
			strconv.Itoa(ref.LargeAboveSqFt) + " sqft",
			joinPositions(ref.Positions),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Climate categories"); err != nil {
		return err
	}

	climateTable := tablewriter.NewWriter(w)
	climateTable.Header([]string{"Category", "Zones", "Factor"})
	climateTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var climateData [][]string
	for _, ref := range model.Climates {
		climateData = append(climateData, []string{
			string(ref.Category),
			ref.Zones,
			fmtFloat(ref.Factor),
		})
	}
	if err := climateTable.Bulk(climateData); err != nil {
		return err
	}
	if err := climateTable.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Size factors: small %s, medium %s, large %s\n",
		fmtFloat(model.SizeFactor[schema.SmallSize]),
		fmtFloat(model.SizeFactor[schema.MediumSize]),
		fmtFloat(model.SizeFactor[schema.LargeSize]))
	return err
}

// writeReferenceCSV writes one row per housing type.
func writeReferenceCSV(w io.Writer, model schema.ReferenceModel, fmtFloat func(float64) string) error {
	header := []string{"type", "periods", "small_below_sqft", "large_above_sqft", "positions"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ref := range model.Types {
			rec := []string{
				string(ref.Name),
				joinPeriods(ref.Periods),
				strconv.Itoa(ref.SmallBelowSqFt),
				strconv.Itoa(ref.LargeAboveSqFt),
				joinPositions(ref.Positions),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteClimateInfo outputs the climate lookup for one state.
func WriteClimateInfo(w io.Writer, info schema.ClimateInfo, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, info); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"state", "zone", "category", "factor"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return cw.Write([]string{
				info.State,
				strconv.Itoa(info.Zone),
				string(info.Category),
				fmtFloat(info.Factor),
			})
		})
	default:
		_, err := fmt.Fprintf(w, "%s: climate zone %d, %s (usage factor %s)\n",
			info.State, info.Zone, info.Category, fmtFloat(info.Factor))
		return err
	}
	return nil
}

func joinPeriods(periods []schema.ConstructionPeriod) string {
	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

func joinPositions(positions []schema.UnitPosition) string {
	if len(positions) == 0 {
		return "-"
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
