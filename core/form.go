package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/homewise/enaudit/schema"
)

// FillForm resolves defaults for an audit form and overlays the user's
// own values. Every resolved field gets provenance so a later auto-fill
// pass knows what it may overwrite: user values always win over
// defaults, and unknown override keys are dropped silently, matching
// the wizard's lenient input handling.
func FillForm(form *schema.AuditForm) (*schema.FilledForm, error) {
	res, err := GetHousingDefaults(form.HomeType, ClampYear(form.YearBuilt), form.SquareFootage, form.State, form.UnitPosition)
	if err != nil {
		return nil, err
	}

	flat, err := flattenBundle(&res.Bundle)
	if err != nil {
		return nil, err
	}

	provenance := make(map[string]schema.Provenance, len(flat))
	for key := range flat {
		provenance[key] = schema.DefaultProvenance
	}

	for key, value := range form.Overrides {
		if _, known := flat[key]; !known {
			continue
		}
		flat[key] = clampOverride(key, value)
		provenance[key] = schema.UserProvenance
	}

	bundle, err := unflattenBundle(flat)
	if err != nil {
		return nil, err
	}

	filled := &schema.FilledForm{
		Resolution: *res,
		Provenance: provenance,
	}
	filled.Bundle = *bundle
	return filled, nil
}

// FlattenFields returns a bundle's dotted leaf paths and their values,
// the same keys FillForm accepts as overrides.
func FlattenFields(b *schema.DefaultsBundle) (map[string]any, error) {
	return flattenBundle(b)
}

// FieldKeys returns the sorted dotted keys of a bundle, the same keys
// FillForm accepts as overrides.
func FieldKeys(b *schema.DefaultsBundle) ([]string, error) {
	flat, err := flattenBundle(b)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// clampOverride applies the wizard's range limits to the few numeric
// fields that have them. Everything else passes through untouched.
func clampOverride(key string, value any) any {
	num, ok := asFloat(value)
	if !ok {
		return value
	}

	switch key {
	case "homeDetails.bedrooms":
		return float64(ClampRooms(int(num)))
	case "homeDetails.ceilingHeightFt":
		return ClampFloat(num, 6, 20)
	case "homeDetails.squareFootage":
		return ClampFloat(num, 100, 20000)
	default:
		return value
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// flattenBundle converts a bundle into dotted leaf paths
// ("heatingCooling.heatingSystem.type") via its JSON form. Arrays stay
// whole as leaves.
func flattenBundle(b *schema.DefaultsBundle) (map[string]any, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten bundle: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to flatten bundle: %w", err)
	}

	flat := make(map[string]any)
	flattenInto(flat, "", tree)
	return flat, nil
}

func flattenInto(flat map[string]any, prefix string, node map[string]any) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(flat, path, child)
			continue
		}
		flat[path] = value
	}
}

// unflattenBundle rebuilds a bundle from dotted leaf paths.
func unflattenBundle(flat map[string]any) (*schema.DefaultsBundle, error) {
	tree := make(map[string]any)
	for path, value := range flat {
		parts := strings.Split(path, ".")
		node := tree
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild bundle: %w", err)
	}
	var bundle schema.DefaultsBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("failed to rebuild bundle: %w", err)
	}
	return &bundle, nil
}
