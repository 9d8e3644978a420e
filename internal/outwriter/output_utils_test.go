package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFieldKey(t *testing.T) {
	tests := []struct {
		key         string
		wantSection string
		wantField   string
	}{
		{"homeDetails.squareFootage", "homeDetails", "squareFootage"},
		{"heatingCooling.heatingSystem.type", "heatingCooling", "heatingSystem.type"},
		{"bare", "bare", ""},
	}
	for _, tc := range tests {
		section, field := splitFieldKey(tc.key)
		assert.Equal(t, tc.wantSection, section, tc.key)
		assert.Equal(t, tc.wantField, field, tc.key)
	}
}

func TestFormatFieldValue(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "slab", "slab"},
		{"whole float", float64(850), "850"},
		{"fractional float", 1.5, "1.50"},
		{"bool", true, "true"},
		{"slice", []any{"drafty windows", "attic"}, "drafty windows, attic"},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFieldValue(tc.value, fmtFloat))
		})
	}
}

func TestFormatAdjustment(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	adj := &schema.Adjustment{
		BaselineKWh:    9000,
		ClimateFactor:  1.10,
		SizeFactor:     0.78,
		PositionFactor: 0.85,
		FinalKWh:       6563,
	}

	got := formatAdjustment(adj, fmtFloat)
	assert.Equal(t, "9000 kWh base x 1.10 climate x 0.78 size x 0.85 position = 6563 kWh/yr", got)
}

func TestProvenanceLabel(t *testing.T) {
	plain := testConfig(schema.TextOut)
	assert.Equal(t, contract.UserValue, provenanceLabel(schema.UserProvenance, plain))
	assert.Equal(t, contract.DefaultValue, provenanceLabel(schema.DefaultProvenance, plain))
}

func TestFormatLocation(t *testing.T) {
	full := formatLocation(testLocation())
	assert.Equal(t, "Austin, TX 78701 (zone 2)", full)

	partial := formatLocation(&schema.Location{State: "MN", ClimateZone: 6})
	assert.Equal(t, "MN (zone 6)", partial)
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(cw *csv.Writer) error {
		return cw.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestGetMaxTableValueWidth(t *testing.T) {
	narrow := &contract.Config{Width: 40}
	assert.Equal(t, 15, getMaxTableValueWidth(narrow, false))

	wide := &contract.Config{Width: 300}
	assert.Equal(t, 60, getMaxTableValueWidth(wide, false))

	mid := &contract.Config{Width: 100}
	assert.Equal(t, 55, getMaxTableValueWidth(mid, false))
	assert.Equal(t, 43, getMaxTableValueWidth(mid, true))
}
