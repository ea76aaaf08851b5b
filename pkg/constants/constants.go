// Package constants provides shared constants for the journey-calc application.
package constants

// Conversion constants. Every table factor in package units is derived from
// these so that input conversion and displayed equivalents cannot drift apart.
const (
	// KmToM is the number of meters in a kilometer
	KmToM = 1000.0

	// MilesToKm is the number of kilometers in a mile
	MilesToKm = 1.60934

	// MToFt is the number of feet in a meter
	MToFt = 3.28084

	// FtToYd is the number of yards in a foot
	FtToYd = 1.0 / 3.0

	// SecondsInMin is the number of seconds in a minute
	SecondsInMin = 60.0

	// MinutesInHour is the number of minutes in an hour
	MinutesInHour = 60.0

	// HoursInDay is the number of hours in a day
	HoursInDay = 24.0
)

// DecimalPrecision is the precision used when rounding displayed values (2 decimal places).
const DecimalPrecision = 100

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "journey-calc.yaml"

	// EnvPrefix is the prefix for environment overrides, e.g. JOURNEY_CALC_OUTPUT_FORMAT
	EnvPrefix = "JOURNEY_CALC"
)

// Logging defaults. The interactive session shares the terminal with the
// logger, so only warnings and above are shown unless asked otherwise.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)
