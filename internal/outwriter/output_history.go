package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteHistoryRuns outputs recorded audit runs, dispatching based on
// the output format configured.
func WriteHistoryRuns(w io.Writer, runs []schema.AuditRunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, runs); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeHistoryRunsCSV(w, runs); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeHistoryRunsTable(w, runs)
	}
	return nil
}

// writeHistoryRunsTable generates and writes the human-readable table.
func writeHistoryRunsTable(w io.Writer, runs []schema.AuditRunRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "Time", "Type", "Year", "SqFt", "State", "Zone", "Period", "Size", "kWh/yr"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.RunTime.Format(contract.DateTimeFormat),
			run.HomeType,
			strconv.Itoa(run.YearBuilt),
			strconv.Itoa(run.SquareFootage),
			stringOrDash(run.State),
			int32OrDash(run.ClimateZone),
			run.Period,
			run.SizeCategory,
			strconv.FormatInt(int64(run.AnnualUsageKWh), 10),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d runs\n", len(runs))
	return err
}

// writeHistoryRunsCSV writes the audit runs in CSV format.
func writeHistoryRunsCSV(w io.Writer, runs []schema.AuditRunRecord) error {
	header := []string{
		"run_id",
		"run_time",
		"home_type",
		"year_built",
		"square_footage",
		"state",
		"unit_position",
		"climate_zone",
		"period",
		"size_category",
		"annual_usage_kwh",
		"adjusted",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, run := range runs {
			rec := []string{
				strconv.FormatInt(run.RunID, 10),
				run.RunTime.Format(contract.DateTimeFormat),
				run.HomeType,
				strconv.Itoa(run.YearBuilt),
				strconv.Itoa(run.SquareFootage),
				stringOrEmpty(run.State),
				stringOrEmpty(run.UnitPosition),
				int32OrEmpty(run.ClimateZone),
				run.Period,
				run.SizeCategory,
				strconv.FormatInt(int64(run.AnnualUsageKWh), 10),
				strconv.FormatBool(run.Adjusted),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteHistoryStatus outputs the history store status summary,
// dispatching based on the output format configured.
func WriteHistoryStatus(w io.Writer, status *schema.HistoryStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, status); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"backend", "connected", "total_runs", "last_run_id", "last_run_time"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return cw.Write([]string{
				string(status.Backend),
				strconv.FormatBool(status.Connected),
				strconv.FormatInt(status.TotalRuns, 10),
				strconv.FormatInt(status.LastRunID, 10),
				status.LastRunTime.Format(contract.DateTimeFormat),
			})
		})
	default:
		return writeHistoryStatusText(w, status)
	}
	return nil
}

// writeHistoryStatusText generates and writes the human-readable
// summary.
func writeHistoryStatusText(w io.Writer, status *schema.HistoryStatus) error {
	if _, err := fmt.Fprintf(w, "History backend: %s (connected: %t)\n", status.Backend, status.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns); err != nil {
		return err
	}
	if status.TotalRuns > 0 {
		if _, err := fmt.Fprintf(w, "Last run: #%d at %s\n", status.LastRunID, status.LastRunTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Oldest run: %s\n", status.OldestRunTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
	}
	for table, size := range status.TableSizes {
		if _, err := fmt.Fprintf(w, "Table %s: %d rows\n", table, size); err != nil {
			return err
		}
	}
	return nil
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int32OrDash(v *int32) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(int64(*v), 10)
}

func int32OrEmpty(v *int32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(int64(*v), 10)
}
