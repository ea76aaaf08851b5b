package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/journey-calc/internal/config"
	"github.com/iwvelando/journey-calc/internal/shell"
	"github.com/iwvelando/journey-calc/pkg/constants"
	"github.com/iwvelando/journey-calc/pkg/journey"
	"github.com/iwvelando/journey-calc/pkg/output"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("journey-calc", pflag.ExitOnError)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	flags.String("output-format", "", "type of output override: pretty, csv, yaml")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (json, console)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("history", "", "line history file for the interactive session")
	calc := flags.String("calc", "", "compute once and exit: speed, distance or time")
	distance := flags.String("distance", "", "distance for --calc, e.g. \"100 km\"")
	speed := flags.String("speed", "", "speed for --calc, e.g. \"50 km/h\"")
	duration := flags.String("time", "", "time for --calc, e.g. \"1h 30min\"")
	_ = flags.Parse(os.Args[1:])

	conf, err := config.LoadConfiguration(*configLocation, flags)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := conf.Logging.NewLogger()
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *calc != "" {
		if err := runOnce(conf.Output.Format, *calc, *distance, *speed, *duration); err != nil {
			logger.Error("calculation failed",
				zap.String("op", "main"),
				zap.String("calculation", *calc),
				zap.Error(err),
			)
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	}

	reader := shell.NewLinerReader(conf.Shell.HistoryFile, logger)
	err = shell.New(reader, os.Stdout, logger, conf.Output.Format).Run()
	if closeErr := reader.Close(); closeErr != nil {
		logger.Warn("failed to restore terminal",
			zap.String("op", "main"),
			zap.Error(closeErr),
		)
	}
	if err != nil {
		logger.Fatal("interactive session failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

// runOnce evaluates a single calculation from flag values and prints it.
func runOnce(format, name, distance, speed, duration string) error {
	calc, err := journey.ParseCalculation(name)
	if err != nil {
		return err
	}

	var first, second string
	switch calc {
	case journey.Speed:
		first, second = distance, duration
	case journey.Distance:
		first, second = speed, duration
	case journey.Time:
		first, second = distance, speed
	}

	result, err := shell.Evaluate(calc, first, second)
	if err != nil {
		return err
	}
	return output.Write(os.Stdout, format, result)
}
