package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReferenceTable(t *testing.T) {
	model := core.TypeReferences()

	var buf bytes.Buffer
	err := WriteReference(&buf, model, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Supported housing types")
	assert.Contains(t, output, "single-family")
	assert.Contains(t, output, "mobile-home")
	assert.Contains(t, output, "cold-very-cold")
	assert.Contains(t, output, "Size factors:")
}

func TestWriteReferenceJSON(t *testing.T) {
	model := core.TypeReferences()

	var buf bytes.Buffer
	err := WriteReference(&buf, model, testConfig(schema.JSONOut))
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Contains(t, result, "types")
	assert.Contains(t, result, "climates")
	types, ok := result["types"].([]any)
	require.True(t, ok)
	assert.Len(t, types, len(schema.AllHomeTypes))
}

func TestWriteReferenceCSV(t *testing.T) {
	model := core.TypeReferences()

	var buf bytes.Buffer
	err := WriteReference(&buf, model, testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(schema.AllHomeTypes)+1)
	assert.Contains(t, lines[0], "small_below_sqft")
}

func TestWriteClimateInfoText(t *testing.T) {
	info := schema.ClimateInfo{
		State:    "MN",
		Zone:     6,
		Category: schema.ColdVeryCold,
		Factor:   1.18,
	}

	var buf bytes.Buffer
	err := WriteClimateInfo(&buf, info, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "MN: climate zone 6")
	assert.Contains(t, output, "cold-very-cold")
	assert.Contains(t, output, "1.18")
}

func TestWriteClimateInfoCSV(t *testing.T) {
	info := schema.ClimateInfo{
		State:    "TX",
		Zone:     2,
		Category: schema.HotHumid,
		Factor:   1.10,
	}

	var buf bytes.Buffer
	err := WriteClimateInfo(&buf, info, testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "TX,2,hot-humid,1.10", lines[1])
}
