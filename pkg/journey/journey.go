// Package journey derives one journey metric (speed, distance or time) from
// the other two.
//
// Inputs are converted to base units through package units, the formula is
// applied, and the result is reported in its base unit alongside a fixed set
// of equivalents. Every equivalent is converted back through the same
// conversion table that is used for the inputs.
package journey

import (
	"errors"
	"fmt"

	"github.com/iwvelando/journey-calc/pkg/mathutil"
	"github.com/iwvelando/journey-calc/pkg/units"
)

// Calculation selects which metric to derive. Values match the menu entries.
type Calculation int

const (
	Speed Calculation = iota + 1
	Distance
	Time
)

// String returns the lower-case name of the calculation.
func (c Calculation) String() string {
	switch c {
	case Speed:
		return "speed"
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// ParseCalculation maps a name ("speed", "distance", "time") to a Calculation.
func ParseCalculation(name string) (Calculation, error) {
	for _, c := range Calculations() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, &InvalidArgumentError{Field: "calculation", Value: name, Reason: "must be speed, distance or time"}
}

// Calculations returns every calculation in menu order.
func Calculations() []Calculation {
	return []Calculation{Speed, Distance, Time}
}

// Fixed equivalent units per calculation, in display order.
var (
	speedEquivalents    = []string{"km/h", "ft/s", "mph"}
	distanceEquivalents = []string{"km", "ft", "mi"}
	timeEquivalents     = []string{"min", "h", "d"}
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a violated precondition.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Equivalent is the result expressed in one alternate unit.
type Equivalent struct {
	Unit  string
	Value float64
}

// Result holds a derived metric in its base unit plus its equivalents.
type Result struct {
	Value       float64
	Unit        string
	Equivalents []Equivalent
}

// Equivalent returns the value of the equivalent with the given unit.
func (r Result) Equivalent(unit string) (float64, bool) {
	for _, eq := range r.Equivalents {
		if eq.Unit == unit {
			return eq.Value, true
		}
	}
	return 0, false
}

// EquivalentUnits lists the units of the equivalents in order.
func (r Result) EquivalentUnits() []string {
	out := make([]string, len(r.Equivalents))
	for i, eq := range r.Equivalents {
		out[i] = eq.Unit
	}
	return out
}

// DeriveSpeed computes the speed needed to cover distance (in distUnit) in
// durationSeconds. The result is in m/s.
func DeriveSpeed(distance float64, distUnit string, durationSeconds float64) (Result, error) {
	if !mathutil.IsPositive(durationSeconds) {
		return Result{}, &InvalidArgumentError{Field: "time", Value: durationSeconds, Reason: "time must be positive"}
	}

	meters, err := units.ToBase(units.Distance, distance, distUnit)
	if err != nil {
		return Result{}, err
	}

	return newResult(units.Speed, meters/durationSeconds, speedEquivalents)
}

// DeriveDistance computes the distance covered at speed (in speedUnit) over
// durationSeconds. The result is in meters.
func DeriveDistance(speed float64, speedUnit string, durationSeconds float64) (Result, error) {
	if !mathutil.IsPositive(durationSeconds) {
		return Result{}, &InvalidArgumentError{Field: "time", Value: durationSeconds, Reason: "time must be positive"}
	}

	mps, err := units.ToBase(units.Speed, speed, speedUnit)
	if err != nil {
		return Result{}, err
	}

	return newResult(units.Distance, mps*durationSeconds, distanceEquivalents)
}

// DeriveTime computes how long it takes to cover distance at speed. The raw
// speed must be positive; it is checked before any unit conversion. The
// result is in seconds.
func DeriveTime(distance float64, distUnit string, speed float64, speedUnit string) (Result, error) {
	if !mathutil.IsPositive(speed) {
		return Result{}, &InvalidArgumentError{Field: "speed", Value: speed, Reason: "speed must be positive"}
	}

	meters, err := units.ToBase(units.Distance, distance, distUnit)
	if err != nil {
		return Result{}, err
	}
	mps, err := units.ToBase(units.Speed, speed, speedUnit)
	if err != nil {
		return Result{}, err
	}

	return newResult(units.Time, meters/mps, timeEquivalents)
}

func newResult(kind units.Kind, base float64, equivalentUnits []string) (Result, error) {
	result := Result{
		Value:       base,
		Unit:        kind.Base(),
		Equivalents: make([]Equivalent, 0, len(equivalentUnits)),
	}
	for _, unit := range equivalentUnits {
		value, err := units.FromBase(kind, base, unit)
		if err != nil {
			return Result{}, fmt.Errorf("building %s equivalents: %w", kind, err)
		}
		result.Equivalents = append(result.Equivalents, Equivalent{Unit: unit, Value: value})
	}
	return result, nil
}
