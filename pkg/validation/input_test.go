package validation

import (
	"testing"

	"github.com/iwvelando/journey-calc/pkg/journey"
)

func TestValidateChoice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  journey.Calculation
		expectErr bool
	}{
		{"Speed", "1", journey.Speed, false},
		{"Distance", "2", journey.Distance, false},
		{"Time", "3", journey.Time, false},
		{"Surrounding whitespace", "  3 \n", journey.Time, false},
		{"Zero", "0", 0, true},
		{"Too large", "4", 0, true},
		{"Negative", "-1", 0, true},
		{"Not a number", "speed", 0, true},
		{"Empty", "", 0, true},
		{"Decimal", "1.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, err := ValidateChoice(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateChoice(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateChoice(%q) unexpected error = %v", tt.input, err)
			}
			if choice != tt.expected {
				t.Errorf("ValidateChoice(%q) = %v, expected %v", tt.input, choice, tt.expected)
			}
		})
	}
}

func TestWantsAnother(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"Y", true},
		{"  y", true},
		{"yes", true},
		{"n", false},
		{"N", false},
		{"", false},
		{"   ", false},
		{"maybe", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if result := WantsAnother(tt.answer); result != tt.expected {
				t.Errorf("WantsAnother(%q) = %v, expected %v", tt.answer, result, tt.expected)
			}
		})
	}
}
