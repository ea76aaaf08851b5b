package parse

import (
	"errors"
	"testing"

	"github.com/iwvelando/journey-calc/pkg/units"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		magnitude float64
		unit      string
	}{
		{"No space", "100km", 100, "km"},
		{"Single space", "100 km", 100, "km"},
		{"Several spaces", "100   km", 100, "km"},
		{"Tab separated", "100\tkm", 100, "km"},
		{"Decimal value", "12.5 mi", 12.5, "mi"},
		{"Leading decimal point", ".5 h", 0.5, "h"},
		{"Compound unit", "50 km/h", 50, "km/h"},
		{"Compound unit no space", "3m/s", 3, "m/s"},
		{"Unknown unit is still a token", "5 lightyear", 5, "lightyear"},
		{"Case preserved", "5 KM", 5, "KM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuantity(tt.input)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) unexpected error = %v", tt.input, err)
			}
			if q.Magnitude != tt.magnitude || q.Unit != tt.unit {
				t.Errorf("ParseQuantity(%q) = (%v, %q), expected (%v, %q)", tt.input, q.Magnitude, q.Unit, tt.magnitude, tt.unit)
			}
		})
	}
}

func TestParseQuantityMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Trailing garbage", "100km!"},
		{"Empty", ""},
		{"Leading space", " 100 km"},
		{"Trailing space", "100 km "},
		{"Missing unit", "100"},
		{"Missing value", "km"},
		{"Negative value", "-5 km"},
		{"Two tokens", "1h 30min"},
		{"Invalid number", "1.2.3 km"},
		{"Only a decimal point", ". km"},
		{"Digits inside unit", "100 k2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuantity(tt.input)
			if err == nil {
				t.Fatalf("ParseQuantity(%q) expected error but got none", tt.input)
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseQuantity(%q) error = %v, expected ErrMalformedInput", tt.input, err)
			}
			var malformed *MalformedInputError
			if errors.As(err, &malformed) && malformed.Input != tt.input {
				t.Errorf("MalformedInputError.Input = %q, expected %q", malformed.Input, tt.input)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Hours and minutes", "1h 30min", 5400},
		{"Garbage between tokens", "1h extra 30min", 5400},
		{"Single token", "90min", 5400},
		{"Spaced token", "2 h", 7200},
		{"Seconds", "45s", 45},
		{"Days", "1d", 86400},
		{"Fractional hours", "1.5h", 5400},
		{"Trailing garbage tolerated", "1h!!", 3600},
		{"Leading garbage tolerated", "about 1h", 3600},
		{"No separator between tokens", "1h30min", 5400},
		{"Repeated unit sums", "1h 1h", 7200},
		{"Number without unit skipped", "5 1h", 3600},
		{"Zero duration", "0s", 0},
		{"Slash ends the unit", "1h/2", 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error = %v", tt.input, err)
			}
			if seconds != tt.expected {
				t.Errorf("ParseDuration(%q) = %v, expected %v", tt.input, seconds, tt.expected)
			}
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"No tokens", "garbage", ErrMalformedInput},
		{"Empty", "", ErrMalformedInput},
		{"Number only", "90", ErrMalformedInput},
		{"Unknown time unit", "1h 5fortnights", units.ErrUnsupportedUnit},
		{"Distance unit", "5 km", units.ErrUnsupportedUnit},
		{"Upper case unit", "1H", units.ErrUnsupportedUnit},
		{"Invalid number", "1..5h", ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			if err == nil {
				t.Fatalf("ParseDuration(%q) expected error but got none", tt.input)
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("ParseDuration(%q) error = %v, expected %v", tt.input, err, tt.expected)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	tokens, err := Tokens("run 5km in 1h 30min, then 10 s")
	if err != nil {
		t.Fatalf("Tokens() unexpected error = %v", err)
	}
	expected := []units.Quantity{
		{Magnitude: 5, Unit: "km"},
		{Magnitude: 1, Unit: "h"},
		{Magnitude: 30, Unit: "min"},
		{Magnitude: 10, Unit: "s"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Tokens() = %v, expected %v", tokens, expected)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("Tokens()[%d] = %v, expected %v", i, tokens[i], expected[i])
		}
	}
}
