package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/LamaAT1/Maze-Solver/internal/app"
	"github.com/LamaAT1/Maze-Solver/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Parse processes command-line arguments on top of defaults. It returns a
// populated app.Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer, defaults config.Config) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mazesolver", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: mazesolver [options] <input_maze.txt> <dfs|bfs> [output_maze.txt]

Arguments:
  input_maze.txt   Text maze: '#' wall, ' ' or '.' passage, 'S' start, 'E' end.
  dfs|bfs          Depth-first (first path found) or breadth-first (shortest).
  output_maze.txt  Where to save the marked maze. Printed to stdout if omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	markFlag := flagSet.String("mark", string(rune(defaults.Mark)), "Character used to mark the path.")
	reportFlag := flagSet.String("report", "", "Write a YAML run report to this file.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() < 2 {
		flagSet.Usage()
		return nil, false, &ExitError{
			Code:    1,
			Message: "Error: expected <input_file> <dfs|bfs> [output_file]",
			Err:     app.ErrUsage,
		}
	}

	if flagSet.NArg() > 3 {
		slog.Warn("Ignoring extra arguments.", "extra", flagSet.Args()[3:])
	}

	mark, err := config.ParseMark(*markFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid -mark: " + err.Error(), Err: err}
	}

	settings := config.Config{
		Mark:      mark,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
	}
	if err := settings.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := &app.Config{
		InputPath:  flagSet.Arg(0),
		Method:     flagSet.Arg(1),
		OutputPath: flagSet.Arg(2),
		ReportPath: *reportFlag,
		Mark:       settings.Mark,
		LogLevel:   settings.LogLevel,
		LogFormat:  settings.LogFormat,
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
