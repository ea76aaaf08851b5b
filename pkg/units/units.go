// Package units holds the conversion tables used by journey-calc. Each
// quantity kind funnels through a single base unit: meters for distance,
// seconds for time and meters per second for speed.
package units

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iwvelando/journey-calc/pkg/constants"
)

// Kind identifies the physical quantity a unit symbol measures.
type Kind int

const (
	Distance Kind = iota
	Time
	Speed
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Distance:
		return "distance"
	case Time:
		return "time"
	case Speed:
		return "speed"
	default:
		return "unknown"
	}
}

// Base returns the symbol of the canonical unit for the kind.
func (k Kind) Base() string {
	switch k {
	case Distance:
		return "m"
	case Time:
		return "s"
	case Speed:
		return "m/s"
	default:
		return ""
	}
}

// ErrUnsupportedUnit is matched by every UnsupportedUnitError.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// UnsupportedUnitError reports a symbol that is not registered for a kind.
type UnsupportedUnitError struct {
	Kind Kind
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported %s unit: %s", e.Kind, e.Unit)
}

// Is makes errors.Is(err, ErrUnsupportedUnit) hold.
func (e *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}

// Quantity is a magnitude paired with the unit symbol it was entered in.
type Quantity struct {
	Magnitude float64
	Unit      string
}

// String renders the quantity as "<magnitude> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Magnitude, 'f', -1, 64) + " " + q.Unit
}

// ToBase converts the quantity to the base unit of kind.
func (q Quantity) ToBase(kind Kind) (float64, error) {
	return ToBase(kind, q.Magnitude, q.Unit)
}

type entry struct {
	symbol string
	name   string
	factor float64
}

// Ordered tables: 1 <symbol> = factor base units. Order is the display
// order used by Symbols.
var tables = map[Kind][]entry{
	Distance: {
		{"m", "meters", 1.0},
		{"km", "kilometers", constants.KmToM},
		{"mi", "miles", constants.MilesToKm * constants.KmToM},
		{"ft", "feet", 1.0 / constants.MToFt},
		{"yd", "yards", 1.0 / constants.MToFt * constants.FtToYd},
	},
	Time: {
		{"s", "seconds", 1.0},
		{"min", "minutes", constants.SecondsInMin},
		{"h", "hours", constants.SecondsInMin * constants.MinutesInHour},
		{"d", "days", constants.SecondsInMin * constants.MinutesInHour * constants.HoursInDay},
	},
	Speed: {
		{"m/s", "meters per second", 1.0},
		{"km/h", "kilometers per hour", constants.KmToM / (constants.MinutesInHour * constants.SecondsInMin)},
		{"mph", "miles per hour", constants.MilesToKm * constants.KmToM / (constants.MinutesInHour * constants.SecondsInMin)},
		{"ft/s", "feet per second", 1.0 / constants.MToFt},
		{"km/s", "kilometers per second", constants.KmToM},
	},
}

// factors indexes tables by symbol; built once and never written again.
var factors = buildIndex(tables)

func buildIndex(t map[Kind][]entry) map[Kind]map[string]float64 {
	index := make(map[Kind]map[string]float64, len(t))
	for kind, entries := range t {
		index[kind] = make(map[string]float64, len(entries))
		for _, e := range entries {
			index[kind][e.symbol] = e.factor
		}
	}
	return index
}

// Kinds returns every quantity kind in display order.
func Kinds() []Kind {
	return []Kind{Distance, Time, Speed}
}

// Factor returns how many base units one unit of symbol is worth.
// Symbols are matched exactly; "KM" is not "km".
func Factor(kind Kind, symbol string) (float64, error) {
	factor, ok := factors[kind][symbol]
	if !ok {
		return 0, &UnsupportedUnitError{Kind: kind, Unit: symbol}
	}
	return factor, nil
}

// Supported reports whether symbol is registered for kind.
func Supported(kind Kind, symbol string) bool {
	_, ok := factors[kind][symbol]
	return ok
}

// ToBase converts value expressed in symbol into the base unit of kind.
func ToBase(kind Kind, value float64, symbol string) (float64, error) {
	factor, err := Factor(kind, symbol)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// FromBase converts a value in the base unit of kind into symbol.
func FromBase(kind Kind, baseValue float64, symbol string) (float64, error) {
	factor, err := Factor(kind, symbol)
	if err != nil {
		return 0, err
	}
	return baseValue / factor, nil
}

// Symbols returns the registered symbols for kind in table order.
func Symbols(kind Kind) []string {
	entries := tables[kind]
	symbols := make([]string, len(entries))
	for i, e := range entries {
		symbols[i] = e.symbol
	}
	return symbols
}

// Name returns the long name of a registered symbol, e.g. "kilometers".
func Name(kind Kind, symbol string) (string, bool) {
	for _, e := range tables[kind] {
		if e.symbol == symbol {
			return e.name, true
		}
	}
	return "", false
}
