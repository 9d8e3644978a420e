package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/outwriter"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
)

// auditCmd fills an audit form with resolved defaults.
var auditCmd = &cobra.Command{
	Use:   "audit <form-file>",
	Short: "Fill an audit form file with resolved defaults.",
	Long: `Read an audit form from a JSON file, resolve defaults for the residence it
describes, and overlay any values the user already filled in.

The form file carries the classification facts (homeType, yearBuilt,
squareFootage, optional state and unitPosition) plus an optional overrides map
keyed by dotted field path. User values always win over defaults and every
field in the output carries its provenance.

Examples:
  # Fill a form and print the result
  enaudit audit form.json

  # Fill, record the run, and export as JSON
  enaudit audit form.json --save --output json --output-file filled.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		form, err := readAuditForm(cfg.FormFile)
		if err != nil {
			contract.LogFatal("Cannot read audit form", err)
		}

		filled, err := core.FillForm(form)
		if err != nil {
			contract.LogFatal("Cannot fill audit form", err)
		}

		if cfg.Save {
			saveResolution(&filled.Resolution, filled.Provenance)
		}

		if err := outwriter.NewOutWriter().WriteFilledForm(filled, cfg); err != nil {
			contract.LogFatal("Cannot write audit form", err)
		}
	},
}

// readAuditForm loads and decodes a form file.
func readAuditForm(path string) (*schema.AuditForm, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	var form schema.AuditForm
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("failed to parse form file: %w", err)
	}
	return &form, nil
}
