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

func testFilledForm(t *testing.T) *schema.FilledForm {
	t.Helper()
	filled, err := core.FillForm(&schema.AuditForm{
		HomeType:      "apartment",
		YearBuilt:     1970,
		SquareFootage: 600,
		State:         "TX",
		UnitPosition:  "interior",
		Overrides: map[string]any{
			"homeDetails.bedrooms": 2,
		},
	})
	require.NoError(t, err)
	return filled
}

func TestWriteFilledFormTable(t *testing.T) {
	form := testFilledForm(t)

	var buf bytes.Buffer
	err := WriteFilledForm(&buf, form, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Audit form: apartment")
	assert.Contains(t, output, "User")
	assert.Contains(t, output, "Default")
	assert.Contains(t, output, "(1 from user input)")
}

func TestWriteFilledFormJSON(t *testing.T) {
	form := testFilledForm(t)

	var buf bytes.Buffer
	err := WriteFilledForm(&buf, form, testConfig(schema.JSONOut))
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Contains(t, result, "provenance")
	provenance, ok := result["provenance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", provenance["homeDetails.bedrooms"])
}

func TestWriteFilledFormCSV(t *testing.T) {
	form := testFilledForm(t)

	var buf bytes.Buffer
	err := WriteFilledForm(&buf, form, testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[0], "source")

	var userRows int
	for _, line := range lines[1:] {
		if strings.HasSuffix(line, ",User") {
			userRows++
		}
	}
	assert.Equal(t, 1, userRows)
}
