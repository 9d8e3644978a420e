package iostore

import (
	"time"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(runTime time.Time, res *schema.Resolution, configParams map[string]any) (int64, error) {
	args := m.Called(runTime, res, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// RecordFields implements the HistoryStore interface.
func (m *MockHistoryStore) RecordFields(runID int64, fields []schema.ResolvedFieldRecord) error {
	args := m.Called(runID, fields)
	return args.Error(0)
}

// ListRuns implements the HistoryStore interface.
func (m *MockHistoryStore) ListRuns(limit int) ([]schema.AuditRunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.AuditRunRecord)
	return runs, args.Error(1)
}

// ListFields implements the HistoryStore interface.
func (m *MockHistoryStore) ListFields(runID int64) ([]schema.ResolvedFieldRecord, error) {
	args := m.Called(runID)
	fields, _ := args.Get(0).([]schema.ResolvedFieldRecord)
	return fields, args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
