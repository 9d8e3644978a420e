package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestClampInt covers the inner, lower, and upper cases.
func TestClampInt(t *testing.T) {
	assert.Equal(t, 5, ClampInt(5, 1, 10))
	assert.Equal(t, 1, ClampInt(-3, 1, 10))
	assert.Equal(t, 10, ClampInt(42, 1, 10))
	assert.Equal(t, 1, ClampInt(1, 1, 10))
	assert.Equal(t, 10, ClampInt(10, 1, 10))
}

// TestClampFloat includes the NaN guard.
func TestClampFloat(t *testing.T) {
	assert.InDelta(t, 5.5, ClampFloat(5.5, 1, 10), 0.001)
	assert.InDelta(t, 1.0, ClampFloat(-2.5, 1, 10), 0.001)
	assert.InDelta(t, 10.0, ClampFloat(99, 1, 10), 0.001)
	assert.InDelta(t, 1.0, ClampFloat(math.NaN(), 1, 10), 0.001)
}

// TestClampRooms checks the wizard's room-count range.
func TestClampRooms(t *testing.T) {
	assert.Equal(t, MinRooms, ClampRooms(0))
	assert.Equal(t, 3, ClampRooms(3))
	assert.Equal(t, MaxRooms, ClampRooms(500))
}

// TestClampYear clamps into [1800, current year].
func TestClampYear(t *testing.T) {
	current := time.Now().Year()
	assert.Equal(t, MinYearBuilt, ClampYear(1750))
	assert.Equal(t, 1985, ClampYear(1985))
	assert.Equal(t, current, ClampYear(current))
	assert.Equal(t, current, ClampYear(current+50))
}

// TestClampWallDimension checks the wall length bounds.
func TestClampWallDimension(t *testing.T) {
	assert.InDelta(t, float64(MinWallDimensionFt), ClampWallDimension(2), 0.001)
	assert.InDelta(t, 45.5, ClampWallDimension(45.5), 0.001)
	assert.InDelta(t, float64(MaxWallDimensionFt), ClampWallDimension(1000), 0.001)
}
