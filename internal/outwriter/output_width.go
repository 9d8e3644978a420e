package outwriter

import (
	"os"

	"github.com/homewise/enaudit/internal/contract"
	"golang.org/x/term"
)

// getMaxTableValueWidth calculates the maximum width for field values
// in table output based on terminal width and table configuration.
func getMaxTableValueWidth(cfg *contract.Config, withProvenance bool) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the section and field columns with borders
	// and padding
	baseWidth := 45

	// Add provenance column with formatting
	if withProvenance {
		baseWidth += 12
	}

	// Calculate available space for the value
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable value width
		return 15
	}
	if available > 60 {
		// Maximum value width to prevent overly long rows
		return 60
	}
	return available
}
