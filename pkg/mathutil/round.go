// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/journey-calc/pkg/constants"
)

// Round rounds a value to two decimals, the precision every result is
// displayed with.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApproxEqual checks if two values agree to within a relative tolerance,
// falling back to an absolute one near zero.
func ApproxEqual(val1, val2, tolerance float64) bool {
	scale := math.Max(1, math.Max(math.Abs(val1), math.Abs(val2)))
	return WithinTolerance(val1, val2, tolerance*scale)
}

// IsPositive checks if a value is strictly positive and finite
func IsPositive(val float64) bool {
	return val > 0 && !math.IsInf(val, 1)
}
