package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:    output,
		Precision: 2,
		UseColors: false,
		Width:     120,
	}
}

func testResolution(t *testing.T) *schema.Resolution {
	t.Helper()
	res, err := core.Resolve(schema.ResolutionInput{
		HomeType:      schema.Apartment,
		YearBuilt:     1970,
		SquareFootage: 600,
		State:         "TX",
		UnitPosition:  schema.InteriorUnit,
	})
	require.NoError(t, err)
	return res
}

func TestWriteResolutionTable(t *testing.T) {
	res := testResolution(t)

	var buf bytes.Buffer
	err := WriteResolution(&buf, res, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Housing defaults: apartment (pre-1980, small)")
	assert.Contains(t, output, "Climate: TX zone 2")
	assert.Contains(t, output, "squareFootage")
	assert.Contains(t, output, "heatingSystem.type")
	assert.Contains(t, output, "Usage estimate:")
	assert.Contains(t, output, "kWh/yr")
}

func TestWriteResolutionTableNoClimate(t *testing.T) {
	res, err := core.Resolve(schema.ResolutionInput{
		HomeType:      schema.Townhouse,
		YearBuilt:     1985,
		SquareFootage: 1500,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteResolution(&buf, res, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.NotContains(t, output, "Climate:")
	assert.NotContains(t, output, "Usage estimate:")
}

func TestWriteResolutionJSON(t *testing.T) {
	res := testResolution(t)

	var buf bytes.Buffer
	err := WriteResolution(&buf, res, testConfig(schema.JSONOut))
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Contains(t, result, "input")
	assert.Contains(t, result, "bundle")
	assert.Equal(t, "pre-1980", result["period"])
}

func TestWriteResolutionCSV(t *testing.T) {
	res := testResolution(t)

	var buf bytes.Buffer
	err := WriteResolution(&buf, res, testConfig(schema.CSVOut))
	require.NoError(t, err)

	keys, err := core.FieldKeys(&res.Bundle)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(keys)+1)

	assert.Contains(t, lines[0], "home_type")
	assert.Contains(t, lines[0], "section")
	assert.Contains(t, lines[1], "apartment")
}
