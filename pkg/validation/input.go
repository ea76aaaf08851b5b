package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/journey-calc/pkg/journey"
)

// ValidateChoice parses a menu selection. Only 1, 2 and 3 are accepted.
func ValidateChoice(input string) (journey.Calculation, error) {
	trimmed := strings.TrimSpace(input)
	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("choice %q is not a number", trimmed)
	}
	for _, c := range journey.Calculations() {
		if int(c) == choice {
			return c, nil
		}
	}
	return 0, fmt.Errorf("choice %d is out of range", choice)
}

// WantsAnother reports whether an answer to the continuation prompt asks
// for another calculation: its first non-space character is 'y' or 'Y'.
func WantsAnother(answer string) bool {
	trimmed := strings.TrimLeftFunc(answer, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	return trimmed[0] == 'y' || trimmed[0] == 'Y'
}
