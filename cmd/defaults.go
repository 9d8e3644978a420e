package cmd

import (
	"errors"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/iostore"
	"github.com/homewise/enaudit/internal/outwriter"
	"github.com/homewise/enaudit/schema"
	"github.com/spf13/cobra"
)

// errNoHistoryStore signals --save with the history backend disabled.
var errNoHistoryStore = errors.New("history backend is disabled")

// defaultsCmd resolves pre-fill defaults for a residence.
var defaultsCmd = &cobra.Command{
	Use:   "defaults <home-type>",
	Short: "Resolve pre-fill defaults for a housing type.",
	Long: `Resolve the full set of audit form defaults for a residence from its
housing type, construction year, and size.

The resolver classifies the residence into a construction period and size
category, copies the matching defaults bundle, and - when a state is given -
adjusts the estimated annual usage for climate, size, and unit position.

Examples:
  # Defaults for a 1970s apartment
  enaudit defaults apartment --year 1972 --sqft 650

  # Climate-adjusted defaults with unit position
  enaudit defaults apartment --year 1972 --sqft 650 --state TX --position interior

  # Record the resolution and export as JSON
  enaudit defaults single-family --year 1995 --sqft 2400 --state MN --save --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		res, err := core.GetHousingDefaults(cfg.HomeType, cfg.YearBuilt, cfg.SquareFootage, cfg.State, cfg.UnitPosition)
		if err != nil {
			contract.LogFatal("Cannot resolve defaults", err)
		}

		if cfg.Save {
			saveResolution(res, nil)
		}

		if err := outwriter.NewOutWriter().WriteResolution(res, cfg); err != nil {
			contract.LogFatal("Cannot write defaults", err)
		}
	},
}

// saveResolution records a resolution in the history store when one is
// configured. Recording failures never fail the command.
func saveResolution(res *schema.Resolution, provenance map[string]schema.Provenance) {
	if historyManager == nil {
		return
	}
	store := historyManager.GetHistoryStore()
	if store == nil {
		contract.LogWarn("saving resolution", errNoHistoryStore)
		return
	}
	configParams := map[string]any{
		"home_type": cfg.HomeType,
		"year":      cfg.YearBuilt,
		"sqft":      cfg.SquareFootage,
		"state":     cfg.State,
		"position":  cfg.UnitPosition,
	}
	if _, err := iostore.RecordResolution(store, res, provenance, configParams); err != nil {
		contract.LogWarn("saving resolution", err)
	}
}
