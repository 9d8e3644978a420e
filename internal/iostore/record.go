package iostore

import (
	"fmt"
	"strings"
	"time"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
)

// RecordResolution persists one resolution and its resolved fields as
// a new audit run. A nil provenance map marks every field as a
// default. It returns the new run ID.
func RecordResolution(store contract.HistoryStore, res *schema.Resolution, provenance map[string]schema.Provenance, configParams map[string]any) (int64, error) {
	runID, err := store.BeginRun(time.Now(), res, configParams)
	if err != nil {
		return 0, err
	}

	flat, err := core.FlattenFields(&res.Bundle)
	if err != nil {
		return 0, err
	}

	records := make([]schema.ResolvedFieldRecord, 0, len(flat))
	for key, value := range flat {
		p := schema.DefaultProvenance
		if provenance != nil {
			if fp, ok := provenance[key]; ok {
				p = fp
			}
		}
		section, field := splitFieldPath(key)
		records = append(records, schema.ResolvedFieldRecord{
			RunID:      runID,
			Section:    section,
			Field:      field,
			Value:      fmt.Sprintf("%v", value),
			Provenance: string(p),
		})
	}

	if err := store.RecordFields(runID, records); err != nil {
		return 0, err
	}
	return runID, nil
}

// splitFieldPath separates a dotted field path into its top-level
// section and the remainder.
func splitFieldPath(key string) (section, field string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
