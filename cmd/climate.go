package cmd

import (
	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/outwriter"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
)

// climateCmd looks up the climate zone for a state.
var climateCmd = &cobra.Command{
	Use:   "climate <state>",
	Short: "Look up the climate zone and usage factor for a US state.",
	Long: `Resolve a two-letter US state code to its representative climate zone,
descriptive climate category, and the usage adjustment factor applied to
energy estimates.

Unknown states fall back to the national default zone.

Examples:
  # Climate for Texas
  enaudit climate TX

  # Machine-readable output
  enaudit climate MN --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		category := core.CategoryForState(cfg.State)
		info := schema.ClimateInfo{
			State:    cfg.State,
			Zone:     core.ZoneForState(cfg.State),
			Category: category,
			Factor:   core.ClimateFactor(category),
		}

		if err := outwriter.NewOutWriter().WriteClimateInfo(info, cfg); err != nil {
			contract.LogFatal("Cannot write climate info", err)
		}
	},
}

// typesCmd lists the supported housing types.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported housing types and their classifiers.",
	Long: `Show the reference tables behind the resolver: every supported housing
type with its construction periods, size thresholds, and unit positions,
plus the climate categories and adjustment factors.

Examples:
  # Show the reference tables
  enaudit types

  # Export for documentation
  enaudit types --output json --output-file reference.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		model := core.TypeReferences()
		if err := outwriter.NewOutWriter().WriteReference(model, cfg); err != nil {
			contract.LogFatal("Cannot write reference tables", err)
		}
	},
}
