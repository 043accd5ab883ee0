package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
	"github.com/secmon-lab/tdhazard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Logger is the CLI configuration of the process logger
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns the CLI flags to configure the logger
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug, info, warn, error]",
			Sources:     cli.EnvVars("TDHAZARD_LOG_LEVEL"),
			Value:       "info",
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console, json]",
			Sources:     cli.EnvVars("TDHAZARD_LOG_FORMAT"),
			Value:       "console",
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [stdout, stderr, or a file path]",
			Sources:     cli.EnvVars("TDHAZARD_LOG_OUTPUT"),
			Value:       "stderr",
			Destination: &x.output,
		},
	}
}

// Configure builds the logger from the flag values, installs it as the
// process default and returns a closer for file outputs.
func (x *Logger) Configure() (func(), error) {
	closer := func() {}

	var level slog.Level
	switch x.level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", x.level))
	}

	var format logging.Format
	switch x.format {
	case "console":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	default:
		return nil, goerr.New("invalid log format", goerr.V("format", x.format))
	}

	var output *os.File
	switch x.output {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		output = f
		closer = func() {
			safe.Close(context.Background(), f)
		}
	}

	logging.SetDefault(logging.New(output, level, format))
	return closer, nil
}

// LogValue renders the configuration for startup logging
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
