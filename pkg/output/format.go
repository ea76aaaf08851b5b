// Package output provides utilities for formatting and displaying journey results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/journey-calc/pkg/constants"
	"github.com/iwvelando/journey-calc/pkg/journey"
	"github.com/iwvelando/journey-calc/pkg/mathutil"
	"github.com/iwvelando/journey-calc/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const rule = "================================================================="

// Write renders result to w in the named format.
func Write(w io.Writer, format string, result journey.Result) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}

	switch format {
	case constants.OutputFormatCSV:
		CsvFormat(w, result)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, result)
	default:
		PrettyFormat(w, result)
	}
	return nil
}

// PrettyFormat outputs a human-readable result block. Values are printed
// with two decimals and English digit grouping.
func PrettyFormat(w io.Writer, result journey.Result) {
	p := message.NewPrinter(language.English)
	_, _ = fmt.Fprintf(w, "\n%s\n", rule)
	_, _ = p.Fprintf(w, "| Result: %.2f %s |\n", result.Value, result.Unit)
	_, _ = fmt.Fprintf(w, "%s\n", rule)
	_, _ = fmt.Fprintf(w, "Equivalent Values:\n")
	for _, eq := range result.Equivalents {
		_, _ = p.Fprintf(w, "- %.2f %s\n", eq.Value, eq.Unit)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

// CsvFormat outputs in comma-separated value format, primary value first.
func CsvFormat(w io.Writer, result journey.Result) {
	_, _ = fmt.Fprintf(w, `"unit","value"`+"\n")
	_, _ = fmt.Fprintf(w, `"%s","%.2f"`+"\n", csvEscape(result.Unit), result.Value)
	for _, eq := range result.Equivalents {
		_, _ = fmt.Fprintf(w, `"%s","%.2f"`+"\n", csvEscape(eq.Unit), eq.Value)
	}
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

type yamlEquivalent struct {
	Unit  string  `yaml:"unit"`
	Value float64 `yaml:"value"`
}

type yamlResult struct {
	Value       float64          `yaml:"value"`
	Unit        string           `yaml:"unit"`
	Equivalents []yamlEquivalent `yaml:"equivalents"`
}

// YAMLFormat outputs the result as a YAML document with values rounded to
// two decimals. Equivalents keep their order as a list.
func YAMLFormat(w io.Writer, result journey.Result) error {
	doc := yamlResult{
		Value:       mathutil.Round(result.Value),
		Unit:        result.Unit,
		Equivalents: make([]yamlEquivalent, 0, len(result.Equivalents)),
	}
	for _, eq := range result.Equivalents {
		doc.Equivalents = append(doc.Equivalents, yamlEquivalent{Unit: eq.Unit, Value: mathutil.Round(eq.Value)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode result as yaml: %w", err)
	}
	return enc.Close()
}
