package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRuns() []schema.AuditRunRecord {
	state := "TX"
	zone := int32(2)
	return []schema.AuditRunRecord{
		{
			RunID:          2,
			RunTime:        time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			HomeType:       "apartment",
			YearBuilt:      1970,
			SquareFootage:  600,
			State:          &state,
			Period:         "pre-1980",
			SizeCategory:   "small",
			ClimateZone:    &zone,
			AnnualUsageKWh: 10194,
			Adjusted:       true,
		},
		{
			RunID:          1,
			RunTime:        time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			HomeType:       "townhouse",
			YearBuilt:      1985,
			SquareFootage:  1500,
			Period:         "1980-2000",
			SizeCategory:   "medium",
			AnnualUsageKWh: 11000,
			Adjusted:       false,
		},
	}
}

func TestWriteHistoryRunsTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHistoryRuns(&buf, testRuns(), testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "apartment")
	assert.Contains(t, output, "townhouse")
	assert.Contains(t, output, "TX")
	assert.Contains(t, output, "Showing 2 runs")
}

func TestWriteHistoryRunsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHistoryRuns(&buf, testRuns(), testConfig(schema.CSVOut))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "climate_zone")
	assert.Contains(t, lines[1], "apartment")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "false")
}

func TestWriteHistoryStatusText(t *testing.T) {
	status := &schema.HistoryStatus{
		Backend:       schema.SQLiteBackend,
		Connected:     true,
		TotalRuns:     4,
		LastRunID:     4,
		LastRunTime:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		OldestRunTime: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		TableSizes: map[string]int64{
			"enaudit_audit_runs": 4,
		},
	}

	var buf bytes.Buffer
	err := WriteHistoryStatus(&buf, status, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "History backend: sqlite (connected: true)")
	assert.Contains(t, output, "Total runs: 4")
	assert.Contains(t, output, "Last run: #4")
	assert.Contains(t, output, "Table enaudit_audit_runs: 4 rows")
}

func TestWriteHistoryStatusEmpty(t *testing.T) {
	status := &schema.HistoryStatus{
		Backend:   schema.NoneBackend,
		Connected: false,
	}

	var buf bytes.Buffer
	err := WriteHistoryStatus(&buf, status, testConfig(schema.TextOut))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Total runs: 0")
	assert.NotContains(t, output, "Last run:")
}
