// Package shell runs the interactive journey calculator session: it shows a
// menu, reads raw values, hands them to the parser and journey math, and
// prints the result. Errors from a calculation are reported and the session
// carries on.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/journey-calc/pkg/journey"
	"github.com/iwvelando/journey-calc/pkg/output"
	"github.com/iwvelando/journey-calc/pkg/parse"
	"github.com/iwvelando/journey-calc/pkg/units"
	"github.com/iwvelando/journey-calc/pkg/validation"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrAborted is returned by a LineReader when the user cancels a prompt.
var ErrAborted = errors.New("input aborted")

// LineReader reads one line of input after showing prompt. It returns
// io.EOF when input is exhausted.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

const (
	rule            = "================================================================="
	choicePrompt    = "Choice: "
	retryPrompt     = "Invalid choice. Please enter 1, 2, or 3: "
	continuePrompt  = "\nDo you want to perform another calculation? (y/n): "
	farewellMessage = "\nThank you for using the Journey Metrics Calculator!\n\n"

	distancePrompt = "Enter distance value and unit (e.g., 100 km): "
	speedPrompt    = "Enter speed value and unit (e.g., 50 km/h): "
	timePrompt     = "Enter time value (e.g., 1h 20min): "
)

// prompts holds the two inputs each calculation asks for, in order.
var prompts = map[journey.Calculation][2]string{
	journey.Speed:    {distancePrompt, timePrompt},
	journey.Distance: {speedPrompt, timePrompt},
	journey.Time:     {distancePrompt, speedPrompt},
}

// Shell is one interactive session.
type Shell struct {
	in     LineReader
	out    io.Writer
	logger *zap.Logger
	format string
}

// New creates a session reading from in and writing results to out in the
// given output format.
func New(in LineReader, out io.Writer, logger *zap.Logger, format string) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{in: in, out: out, logger: logger, format: format}
}

// Run prints the welcome banner and loops over calculations until the user
// declines another one or input ends. Only a failure to read input is
// returned; calculation errors are reported inline.
func (s *Shell) Run() error {
	if err := validation.ValidateOutputFormat(s.format); err != nil {
		return err
	}

	s.printWelcome()
	defer fmt.Fprint(s.out, farewellMessage)

	for {
		err := s.processCalculation()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrAborted):
			fmt.Fprintln(s.out, "\n^C (calculation aborted)")
		case isReadError(err):
			return err
		case err != nil:
			fmt.Fprintf(s.out, "\n*** Error: %v ***\n\n", err)
		}

		answer, err := s.in.Prompt(continuePrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if !validation.WantsAnother(answer) {
			return nil
		}
	}
}

// readError marks failures of the LineReader so Run can tell them apart
// from calculation errors.
type readError struct {
	err error
}

func (e *readError) Error() string { return fmt.Sprintf("failed to read input: %v", e.err) }
func (e *readError) Unwrap() error { return e.err }

func isReadError(err error) bool {
	var re *readError
	return errors.As(err, &re)
}

func (s *Shell) prompt(prompt string) (string, error) {
	line, err := s.in.Prompt(prompt)
	if err != nil {
		return "", &readError{err: err}
	}
	return line, nil
}

func (s *Shell) processCalculation() error {
	fmt.Fprint(s.out, "Select calculation type:\n")
	for _, c := range journey.Calculations() {
		fmt.Fprintf(s.out, "%d. %s\n", int(c), titleCase(c.String()))
	}

	line, err := s.prompt(choicePrompt)
	if err != nil {
		return err
	}
	calc, err := validation.ValidateChoice(line)
	for err != nil {
		s.logger.Debug("rejected menu choice",
			zap.String("op", "shell.processCalculation"),
			zap.String("input", line),
			zap.Error(err),
		)
		if line, err = s.prompt(retryPrompt); err != nil {
			return err
		}
		calc, err = validation.ValidateChoice(line)
	}

	fmt.Fprintln(s.out)
	steps := prompts[calc]

	first, err := s.prompt(steps[0])
	if err != nil {
		return err
	}
	quantity, err := parse.ParseQuantity(first)
	if err != nil {
		s.logFailure(calc, first, "", err)
		return err
	}

	second, err := s.prompt(steps[1])
	if err != nil {
		return err
	}
	result, err := evaluate(calc, quantity, second)
	if err != nil {
		s.logFailure(calc, first, second, err)
		return err
	}

	s.logger.Debug("calculation complete",
		zap.String("op", "shell.processCalculation"),
		zap.Stringer("calculation", calc),
		zap.String("first", first),
		zap.String("second", second),
		zap.Float64("value", result.Value),
		zap.String("unit", result.Unit),
	)
	return output.Write(s.out, s.format, result)
}

func (s *Shell) logFailure(calc journey.Calculation, first, second string, err error) {
	s.logger.Info("calculation failed",
		zap.String("op", "shell.processCalculation"),
		zap.Stringer("calculation", calc),
		zap.String("first", first),
		zap.String("second", second),
		zap.Error(err),
	)
}

// Evaluate runs one calculation from the raw strings a user would type at
// the two prompts of calc.
func Evaluate(calc journey.Calculation, first, second string) (journey.Result, error) {
	quantity, err := parse.ParseQuantity(first)
	if err != nil {
		return journey.Result{}, err
	}
	return evaluate(calc, quantity, second)
}

func evaluate(calc journey.Calculation, first units.Quantity, second string) (journey.Result, error) {
	switch calc {
	case journey.Speed:
		seconds, err := parse.ParseDuration(second)
		if err != nil {
			return journey.Result{}, err
		}
		return journey.DeriveSpeed(first.Magnitude, first.Unit, seconds)
	case journey.Distance:
		seconds, err := parse.ParseDuration(second)
		if err != nil {
			return journey.Result{}, err
		}
		return journey.DeriveDistance(first.Magnitude, first.Unit, seconds)
	case journey.Time:
		speed, err := parse.ParseQuantity(second)
		if err != nil {
			return journey.Result{}, err
		}
		return journey.DeriveTime(first.Magnitude, first.Unit, speed.Magnitude, speed.Unit)
	default:
		return journey.Result{}, &journey.InvalidArgumentError{Field: "calculation", Value: int(calc), Reason: "must be 1, 2 or 3"}
	}
}

func (s *Shell) printWelcome() {
	fmt.Fprintf(s.out, "\n%s\n", rule)
	fmt.Fprintf(s.out, "|         Welcome to the Journey Metrics Calculator!             |\n")
	fmt.Fprintf(s.out, "%s\n\n", rule)
	fmt.Fprint(s.out, "Supported units:\n")
	for _, kind := range units.Kinds() {
		var described []string
		for _, symbol := range units.Symbols(kind) {
			name, _ := units.Name(kind, symbol)
			described = append(described, fmt.Sprintf("%s (%s)", symbol, name))
		}
		fmt.Fprintf(s.out, "- %s: %s\n", titleCase(kind.String()), strings.Join(described, ", "))
	}
	fmt.Fprintln(s.out)
}

// titleCase builds a fresh Caser per call; a Caser keeps state between calls.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
