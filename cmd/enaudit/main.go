// main is the entry point for the enaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/homewise/enaudit/cmd"
	"github.com/homewise/enaudit/internal/iostore"
)

func main() {
	defer iostore.CloseStores()

	cmd.SetHistoryManager(iostore.Manager)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
