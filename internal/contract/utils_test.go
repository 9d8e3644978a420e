package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPlainLabel maps provenance to display text.
func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, UserValue, GetPlainLabel(schema.UserProvenance))
	assert.Equal(t, DefaultValue, GetPlainLabel(schema.DefaultProvenance))
	assert.Equal(t, DefaultValue, GetPlainLabel(schema.Provenance("")))
}

// TestGetColorLabel keeps the plain text inside the colored string.
func TestGetColorLabel(t *testing.T) {
	assert.Contains(t, GetColorLabel(schema.UserProvenance), UserValue)
	assert.Contains(t, GetColorLabel(schema.DefaultProvenance), DefaultValue)
}

// TestGetEstimateLabel covers the recorded/estimated split.
func TestGetEstimateLabel(t *testing.T) {
	assert.Equal(t, "recorded", GetEstimateLabel(false, false))
	assert.Equal(t, "estimated", GetEstimateLabel(true, false))
	assert.Contains(t, GetEstimateLabel(true, true), "estimated")
}

// TestSelectOutputFile covers stdout fallback and file creation.
func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

// TestParseBoolString accepts the documented spellings only.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestTruncateValue covers the ellipsis cutoff and the narrow-width
// passthrough.
func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", TruncateValue("short", 10))
	assert.Equal(t, "exactly10!", TruncateValue("exactly10!", 10))
	assert.Equal(t, "a long ...", TruncateValue("a long display value", 10))
	// Widths of 3 or less never truncate; an ellipsis would eat the value
	assert.Equal(t, "abcdef", TruncateValue("abcdef", 3))
}

// TestDBFilePaths checks the default paths land in the home directory
// with distinct names.
func TestDBFilePaths(t *testing.T) {
	history := GetHistoryDBFilePath()
	weather := GetWeatherDBFilePath()
	assert.NotEqual(t, history, weather)
	assert.True(t, strings.HasSuffix(history, ".enaudit_history.db"))
	assert.True(t, strings.HasSuffix(weather, ".enaudit_weather.db"))
}
