// Package outwriter has output and writer logic.
package outwriter

import (
	"io"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API
// for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResolution prints a defaults resolution using the configured
// output format.
func (ow *OutWriter) WriteResolution(res *schema.Resolution, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteResolution(w, res, cfg)
	}, "Wrote defaults")
}

// WriteFilledForm prints a filled audit form with per-field provenance.
func (ow *OutWriter) WriteFilledForm(form *schema.FilledForm, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteFilledForm(w, form, cfg)
	}, "Wrote form")
}

// WriteReference prints the housing type and climate reference tables.
func (ow *OutWriter) WriteReference(model schema.ReferenceModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteReference(w, model, cfg)
	}, "Wrote reference")
}

// WriteClimateInfo prints the climate lookup for one state.
func (ow *OutWriter) WriteClimateInfo(info schema.ClimateInfo, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteClimateInfo(w, info, cfg)
	}, "Wrote climate")
}

// WriteDegreeDays prints a degree-day summary for a location.
func (ow *OutWriter) WriteDegreeDays(loc *schema.Location, summary *schema.DegreeDaySummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteDegreeDays(w, loc, summary, cfg)
	}, "Wrote degree days")
}

// WriteSeasonalFactors prints monthly weather-normalization factors.
func (ow *OutWriter) WriteSeasonalFactors(loc *schema.Location, factors schema.SeasonalFactors, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSeasonalFactors(w, loc, factors, cfg)
	}, "Wrote factors")
}

// WriteEventStats prints severe-weather event summaries for a location.
func (ow *OutWriter) WriteEventStats(loc *schema.Location, stats []schema.WeatherEventStat, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteEventStats(w, loc, stats, cfg)
	}, "Wrote events")
}

// WriteHistoryRuns prints recorded audit runs, newest first.
func (ow *OutWriter) WriteHistoryRuns(runs []schema.AuditRunRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteHistoryRuns(w, runs, cfg)
	}, "Wrote history")
}

// WriteHistoryStatus prints the history store status summary.
func (ow *OutWriter) WriteHistoryStatus(status *schema.HistoryStatus, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteHistoryStatus(w, status, cfg)
	}, "Wrote status")
}
