package core

import (
	"math"
	"time"
)

// Form input bounds. These mirror the ranges the audit wizard accepts.
const (
	MinRooms = 1
	MaxRooms = 100

	MinYearBuilt = 1800

	MinWallDimensionFt = 10
	MaxWallDimensionFt = 200
)

// ClampInt clamps v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat clamps v into [lo, hi]. NaN comes back as lo so a junk
// reading never propagates.
func ClampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRooms clamps a room count to the wizard's accepted range.
func ClampRooms(rooms int) int {
	return ClampInt(rooms, MinRooms, MaxRooms)
}

// ClampYear clamps a year built to [1800, current year].
func ClampYear(year int) int {
	return ClampInt(year, MinYearBuilt, time.Now().Year())
}

// ClampWallDimension clamps a wall length or width in feet.
func ClampWallDimension(ft float64) float64 {
	return ClampFloat(ft, MinWallDimensionFt, MaxWallDimensionFt)
}
