package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/contractforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("contractforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ContractForge - a data-driven contract pack loader for mission systems.

Usage:
  contractforge [options] [PACK_PATH]

Arguments:
  PACK_PATH
    Path to a single .hcl pack file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	packFlag := flagSet.String("pack", "", "Path to the pack file or directory.")
	pFlag := flagSet.String("p", "", "Path to the pack file or directory (shorthand).")
	builtinsFlag := flagSet.String("builtins", "", "Comma-separated built-in mission type names seeding the dry-run catalog.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxTicksFlag := flagSet.Int("max-ticks", 0, "Maximum host ticks to drive before giving up. 0 uses the default.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *packFlag != "" {
		path = *packFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Pack path determined.", "path", path)

	if path == "" {
		slog.Debug("No pack path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	var builtins []string
	for _, name := range strings.Split(*builtinsFlag, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			builtins = append(builtins, trimmed)
		}
	}

	config, err := app.NewConfig(app.Config{
		PackPath:  path,
		Builtins:  builtins,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		MaxTicks:  *maxTicksFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
