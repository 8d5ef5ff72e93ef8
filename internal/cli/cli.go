package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/advent2023/internal/app"
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

// pathList collects a repeatable path flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("advent2023", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
advent2023 - Solvers for the 2023 daily puzzle set.

Usage:
  advent2023 -day N [-part 1|2] [options] INPUT_PATH
  advent2023 -manifest PATH [options]
  advent2023 -list

Arguments:
  INPUT_PATH
    Path to the puzzle input file.

Options:
`)
		flagSet.PrintDefaults()
	}

	dayFlag := flagSet.Int("day", 0, "Puzzle day, 1-25.")
	partFlag := flagSet.Int("part", 1, "Puzzle part, 1 or 2.")
	inputFlag := flagSet.String("input", "", "Path to the puzzle input file.")
	iFlag := flagSet.String("i", "", "Path to the puzzle input file (shorthand).")
	var manifests pathList
	flagSet.Var(&manifests, "manifest", "Path to a manifest file or directory (.hcl, .yaml). Repeatable.")
	flagSet.Var(&manifests, "m", "Path to a manifest file or directory (shorthand).")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent workers for manifest runs. 0 uses one per CPU.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Cancel the remaining puzzles of a manifest run after the first failure.")
	listFlag := flagSet.Bool("list", false, "List the registered solvers and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" && len(manifests) == 0 && !*listFlag {
		slog.Debug("No input path or manifest provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "no input path provided"}
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

	config, err := app.NewConfig(app.Config{
		Day:           *dayFlag,
		Part:          *partFlag,
		InputPath:     path,
		ManifestPaths: manifests,
		FailFast:      *failFastFlag,
		List:          *listFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
