// Package parse turns human-entered values such as "100 km" or "1h 30min"
// into quantities.
//
// A token is a magnitude made of digits and decimal points, optional
// whitespace, then a unit symbol. ParseQuantity requires the whole input to
// be exactly one token. ParseDuration accepts any number of tokens anywhere
// in the input and ignores whatever lies between them.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iwvelando/journey-calc/pkg/units"
)

// ErrMalformedInput is matched by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports input that does not follow the token grammar.
type MalformedInputError struct {
	Input    string
	Expected string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid input format %q, expected format: %s", e.Input, e.Expected)
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

const (
	quantityExample = "value unit (e.g., 100 km)"
	durationExample = "value unit (e.g., 1h 30min)"
)

// ParseQuantity parses input consisting of exactly one token. Unit symbols
// may contain '/', so compound units such as "km/h" are accepted. The unit
// is not checked against any table here.
func ParseQuantity(input string) (units.Quantity, error) {
	s := scanner{input: input}
	magnitude := s.run(isMagnitude)
	s.run(isSpace)
	unit := s.run(isUnitChar)
	if magnitude == "" || unit == "" || !s.done() {
		return units.Quantity{}, &MalformedInputError{Input: input, Expected: quantityExample}
	}

	value, err := strconv.ParseFloat(magnitude, 64)
	if err != nil {
		return units.Quantity{}, &MalformedInputError{Input: input, Expected: quantityExample}
	}
	return units.Quantity{Magnitude: value, Unit: unit}, nil
}

// Tokens returns every duration token found in input, in order. Units here
// are letters only. Text that does not form a token is skipped.
func Tokens(input string) ([]units.Quantity, error) {
	var tokens []units.Quantity
	s := scanner{input: input}
	for !s.done() {
		start := s.pos
		if !isMagnitude(s.peek()) {
			s.pos++
			continue
		}
		magnitude := s.run(isMagnitude)
		s.run(isSpace)
		unit := s.run(isLetter)
		if unit == "" {
			// No unit follows; resume scanning right after the start.
			s.pos = start + 1
			continue
		}
		value, err := strconv.ParseFloat(magnitude, 64)
		if err != nil {
			return nil, &MalformedInputError{Input: input, Expected: durationExample}
		}
		tokens = append(tokens, units.Quantity{Magnitude: value, Unit: unit})
	}
	return tokens, nil
}

// ParseDuration sums every duration token in input, in seconds. At least one
// token must be present; each unit must be a registered time unit.
func ParseDuration(input string) (float64, error) {
	tokens, err := Tokens(input)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, &MalformedInputError{Input: input, Expected: durationExample}
	}

	var total float64
	for _, token := range tokens {
		seconds, err := token.ToBase(units.Time)
		if err != nil {
			return 0, fmt.Errorf("parsing duration %q: %w", input, err)
		}
		total += seconds
	}
	return total, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	return s.input[s.pos]
}

// run consumes the longest prefix of bytes matching class and returns it.
func (s *scanner) run(class func(byte) bool) string {
	start := s.pos
	for !s.done() && class(s.peek()) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func isMagnitude(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUnitChar(c byte) bool {
	return isLetter(c) || c == '/'
}
