//go:build basic

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runEnaudit runs the enaudit binary with the given args and a disabled
// history backend, returning combined stdout output.
func runEnaudit(t *testing.T, args ...string) string {
	t.Helper()

	enauditPath := getEnauditBinary()
	cmd := exec.Command(enauditPath, args...)
	cmd.Env = append(os.Environ(), "ENAUDIT_HISTORY_BACKEND=none")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "command failed: %s\nstderr: %s", cmd.String(), stderr.String())
	return stdout.String()
}

func TestEnauditVersion(t *testing.T) {
	output := runEnaudit(t, "version")
	assert.Contains(t, output, "Version:")
	assert.Contains(t, output, "Runtime:")
}

func TestEnauditTypes(t *testing.T) {
	output := runEnaudit(t, "types")
	assert.Contains(t, output, "apartment")
	assert.Contains(t, output, "single-family")
	assert.Contains(t, output, "Size factors:")
}

func TestEnauditDefaults(t *testing.T) {
	output := runEnaudit(t, "defaults", "apartment",
		"--year", "1970", "--sqft", "600", "--state", "TX", "--position", "interior")
	assert.Contains(t, output, "Housing defaults: apartment (pre-1980, small)")
	assert.Contains(t, output, "Climate: TX zone 2")
	assert.Contains(t, output, "Usage estimate:")
}

func TestEnauditDefaultsJSON(t *testing.T) {
	output := runEnaudit(t, "defaults", "single-family",
		"--year", "2010", "--sqft", "2400", "--output", "json")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	input, ok := res["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "single-family", input["homeType"])
	assert.Equal(t, "post-2000", res["period"])
}

func TestEnauditClimate(t *testing.T) {
	output := runEnaudit(t, "climate", "MN")
	assert.Contains(t, output, "MN: climate zone 6")
}

func TestEnauditAudit(t *testing.T) {
	formPath := filepath.Join(t.TempDir(), "form.json")
	form := `{"homeType":"townhouse","yearBuilt":1995,"squareFootage":1500,"overrides":{"homeDetails.bedrooms":4}}`
	require.NoError(t, os.WriteFile(formPath, []byte(form), 0o644))

	output := runEnaudit(t, "audit", formPath)
	assert.Contains(t, output, "1 from user input")
}

func TestEnauditDefaultsCSV(t *testing.T) {
	output := runEnaudit(t, "defaults", "condo",
		"--year", "1990", "--sqft", "1000", "--output", "csv")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "home_type,period,size,section,field,value", lines[0])
	assert.Greater(t, len(lines), 10)
}

func TestEnauditSQLiteHistory(t *testing.T) {
	// Use an isolated SQLite file so runs from other tests do not leak in.
	dbPath := filepath.Join(t.TempDir(), "history.db")
	env := []string{
		"ENAUDIT_HISTORY_BACKEND=sqlite",
		"ENAUDIT_HISTORY_DB_CONNECT=" + dbPath,
	}

	runEnauditWithEnv(t, env, "defaults", "apartment",
		"--year", "1970", "--sqft", "600", "--save")

	status := runEnauditWithEnv(t, env, "history", "status")
	assert.Contains(t, status, "History backend: sqlite")
	assert.Contains(t, status, "connected: true")

	list := runEnauditWithEnv(t, env, "history", "list")
	assert.Contains(t, list, "apartment")
	assert.Contains(t, list, "Showing 1 runs")
}

func runEnauditWithEnv(t *testing.T, env []string, args ...string) string {
	t.Helper()

	enauditPath := getEnauditBinary()
	cmd := exec.Command(enauditPath, args...)
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "command failed: %s\nstderr: %s", cmd.String(), stderr.String())
	return stdout.String()
}
