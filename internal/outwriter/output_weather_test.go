package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() *schema.Location {
	return &schema.Location{
		LocationID:  "aus",
		ZipCode:     "78701",
		City:        "Austin",
		State:       "TX",
		ClimateZone: 2,
	}
}

func TestWriteDegreeDaysText(t *testing.T) {
	summary := &schema.DegreeDaySummary{
		TotalHDD:  35,
		TotalCDD:  5,
		AvgHDD:    11.67,
		AvgCDD:    1.67,
		DaysCount: 3,
		Estimated: false,
		Method:    "daily",
	}

	var buf bytes.Buffer
	err := WriteDegreeDays(&buf, testLocation(), summary, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Austin, TX 78701 (zone 2)")
	assert.Contains(t, output, "Heating degree days: 35.00 over 3 days")
	assert.Contains(t, output, "Cooling degree days: 5.00 over 3 days")
	assert.Contains(t, output, "Source: daily (recorded)")
}

func TestWriteDegreeDaysEstimated(t *testing.T) {
	summary := &schema.DegreeDaySummary{
		TotalHDD:  20,
		TotalCDD:  50,
		AvgHDD:    2,
		AvgCDD:    5,
		DaysCount: 10,
		Estimated: true,
		Method:    "climate-zone",
	}

	var buf bytes.Buffer
	err := WriteDegreeDays(&buf, testLocation(), summary, testConfig(schema.TextOut))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Source: climate-zone (estimated)")
}

func TestWriteDegreeDaysJSON(t *testing.T) {
	summary := &schema.DegreeDaySummary{
		TotalHDD:  35,
		DaysCount: 3,
		Method:    "daily",
	}

	var buf bytes.Buffer
	err := WriteDegreeDays(&buf, testLocation(), summary, testConfig(schema.JSONOut))
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Contains(t, result, "location")
	assert.Contains(t, result, "summary")
}

func TestWriteSeasonalFactorsTable(t *testing.T) {
	factors := make(schema.SeasonalFactors)
	for month := 1; month <= 12; month++ {
		factors[month] = 1.0
	}
	factors[1] = 1.8

	var buf bytes.Buffer
	err := WriteSeasonalFactors(&buf, testLocation(), factors, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Seasonal factors:")
	assert.Contains(t, output, "January")
	assert.Contains(t, output, "December")
	assert.Contains(t, output, "1.80")
}

func TestWriteEventStatsTable(t *testing.T) {
	stats := []schema.WeatherEventStat{
		{EventType: "heat-wave", Count: 12, AvgSeverity: 3.1, EnergyImpactScore: 8.5},
		{EventType: "ice-storm", Count: 2, AvgSeverity: 4.0, EnergyImpactScore: 6.0},
	}

	var buf bytes.Buffer
	err := WriteEventStats(&buf, testLocation(), stats, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Weather events:")
	assert.Contains(t, output, "heat-wave")
	assert.Contains(t, output, "ice-storm")
}

func TestWriteEventStatsCSV(t *testing.T) {
	stats := []schema.WeatherEventStat{
		{EventType: "heat-wave", Count: 12, AvgSeverity: 3.1, EnergyImpactScore: 8.5},
	}

	var buf bytes.Buffer
	err := WriteEventStats(&buf, testLocation(), stats, testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "aus,heat-wave,12,3.10,8.50", lines[1])
}

func TestWriteSeasonalFactorsCSV(t *testing.T) {
	factors := make(schema.SeasonalFactors)
	for month := 1; month <= 12; month++ {
		factors[month] = 1.0
	}

	var buf bytes.Buffer
	err := WriteSeasonalFactors(&buf, testLocation(), factors, testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "aus,1,1.00", lines[1])
}
