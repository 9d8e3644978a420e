package iostore

import (
	"testing"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordResolutionDefaults(t *testing.T) {
	res := testResolution(t)

	store := &MockHistoryStore{}
	store.On("BeginRun", mock.AnythingOfType("time.Time"), res, mock.Anything).Return(int64(42), nil)

	var recorded []schema.ResolvedFieldRecord
	store.On("RecordFields", int64(42), mock.AnythingOfType("[]schema.ResolvedFieldRecord")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).([]schema.ResolvedFieldRecord)
		}).Return(nil)

	runID, err := RecordResolution(store, res, nil, map[string]any{"home_type": "apartment"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), runID)
	store.AssertExpectations(t)

	// One record per leaf field, all defaults when no provenance map is given
	keys, err := core.FieldKeys(&res.Bundle)
	require.NoError(t, err)
	require.Len(t, recorded, len(keys))
	for _, r := range recorded {
		assert.Equal(t, int64(42), r.RunID)
		assert.Equal(t, string(schema.DefaultProvenance), r.Provenance)
		assert.NotEmpty(t, r.Section)
	}
}

func TestRecordResolutionProvenance(t *testing.T) {
	res := testResolution(t)

	store := &MockHistoryStore{}
	store.On("BeginRun", mock.AnythingOfType("time.Time"), res, mock.Anything).Return(int64(7), nil)

	var recorded []schema.ResolvedFieldRecord
	store.On("RecordFields", int64(7), mock.AnythingOfType("[]schema.ResolvedFieldRecord")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).([]schema.ResolvedFieldRecord)
		}).Return(nil)

	provenance := map[string]schema.Provenance{
		"homeDetails.bedrooms": schema.UserProvenance,
	}
	_, err := RecordResolution(store, res, provenance, nil)
	require.NoError(t, err)

	var userFields int
	for _, r := range recorded {
		if r.Provenance == string(schema.UserProvenance) {
			userFields++
			assert.Equal(t, "homeDetails", r.Section)
			assert.Equal(t, "bedrooms", r.Field)
		}
	}
	assert.Equal(t, 1, userFields)
}

func TestSplitFieldPath(t *testing.T) {
	section, field := splitFieldPath("heatingCooling.heatingSystem.type")
	assert.Equal(t, "heatingCooling", section)
	assert.Equal(t, "heatingSystem.type", field)

	section, field = splitFieldPath("orphan")
	assert.Equal(t, "orphan", section)
	assert.Equal(t, "", field)
}
