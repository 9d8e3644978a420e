package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// degreeDayRenderModel pairs the location with its summary for JSON
// output.
type degreeDayRenderModel struct {
	Location *schema.Location         `json:"location"`
	Summary  *schema.DegreeDaySummary `json:"summary"`
}

// WriteDegreeDays outputs a degree-day summary, dispatching based on
// the output format configured.
func WriteDegreeDays(w io.Writer, loc *schema.Location, summary *schema.DegreeDaySummary, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, degreeDayRenderModel{Location: loc, Summary: summary}); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"location_id", "state", "days", "total_hdd", "total_cdd", "avg_hdd", "avg_cdd", "method", "estimated"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return cw.Write([]string{
				loc.LocationID,
				loc.State,
				strconv.Itoa(summary.DaysCount),
				fmtFloat(summary.TotalHDD),
				fmtFloat(summary.TotalCDD),
				fmtFloat(summary.AvgHDD),
				fmtFloat(summary.AvgCDD),
				summary.Method,
				strconv.FormatBool(summary.Estimated),
			})
		})
	default:
		return writeDegreeDayText(w, loc, summary, cfg, fmtFloat)
	}
	return nil
}

// writeDegreeDayText generates and writes the human-readable summary.
func writeDegreeDayText(w io.Writer, loc *schema.Location, summary *schema.DegreeDaySummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Location: %s\n", formatLocation(loc)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Heating degree days: %s over %d days (%s/day)\n",
		fmtFloat(summary.TotalHDD), summary.DaysCount, fmtFloat(summary.AvgHDD)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Cooling degree days: %s over %d days (%s/day)\n",
		fmtFloat(summary.TotalCDD), summary.DaysCount, fmtFloat(summary.AvgCDD)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Source: %s (%s)\n", summary.Method, contract.GetEstimateLabel(summary.Estimated, cfg.UseColors))
	return err
}

// seasonalFactorsRenderModel pairs the location with its monthly
// factors for JSON output.
type seasonalFactorsRenderModel struct {
	Location *schema.Location       `json:"location"`
	Factors  schema.SeasonalFactors `json:"factors"`
}

// WriteSeasonalFactors outputs monthly weather-normalization factors,
// dispatching based on the output format configured.
func WriteSeasonalFactors(w io.Writer, loc *schema.Location, factors schema.SeasonalFactors, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, seasonalFactorsRenderModel{Location: loc, Factors: factors}); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"location_id", "month", "factor"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for month := 1; month <= 12; month++ {
				rec := []string{
					loc.LocationID,
					strconv.Itoa(month),
					fmtFloat(factors[month]),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return writeSeasonalFactorsTable(w, loc, factors, fmtFloat)
	}
	return nil
}

// eventStatsRenderModel pairs the location with its event stats for
// JSON output.
type eventStatsRenderModel struct {
	Location *schema.Location          `json:"location"`
	Events   []schema.WeatherEventStat `json:"events"`
}

// WriteEventStats outputs severe-weather event summaries, dispatching
// based on the output format configured.
func WriteEventStats(w io.Writer, loc *schema.Location, stats []schema.WeatherEventStat, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, eventStatsRenderModel{Location: loc, Events: stats}); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"location_id", "event_type", "count", "avg_severity", "energy_impact_score"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, stat := range stats {
				rec := []string{
					loc.LocationID,
					stat.EventType,
					strconv.Itoa(stat.Count),
					fmtFloat(stat.AvgSeverity),
					fmtFloat(stat.EnergyImpactScore),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return writeEventStatsTable(w, loc, stats, fmtFloat)
	}
	return nil
}

// writeEventStatsTable generates and writes the human-readable table.
func writeEventStatsTable(w io.Writer, loc *schema.Location, stats []schema.WeatherEventStat, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Weather events: %s\n", formatLocation(loc)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Event", "Count", "Avg Severity", "Energy Impact"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, stat := range stats {
		data = append(data, []string{
			stat.EventType,
			strconv.Itoa(stat.Count),
			fmtFloat(stat.AvgSeverity),
			fmtFloat(stat.EnergyImpactScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSeasonalFactorsTable generates and writes the human-readable
// table.
func writeSeasonalFactorsTable(w io.Writer, loc *schema.Location, factors schema.SeasonalFactors, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Seasonal factors: %s\n", formatLocation(loc)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Month", "Factor"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for month := 1; month <= 12; month++ {
		data = append(data, []string{
			time.Month(month).String(),
			fmtFloat(factors[month]),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
