package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LamaAT1/Maze-Solver/internal/app"
	"github.com/LamaAT1/Maze-Solver/internal/cli"
	"github.com/LamaAT1/Maze-Solver/internal/config"
)

// main is the entrypoint for the mazesolver command.
func main() {
	// Use a minimal logger until the run's own logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the main application logic and returns the exit code.
func run(outW, errW io.Writer, args []string) int {
	defaults, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintln(errW, "Error:", err)
		return 1
	}

	appConfig, shouldExit, err := cli.Parse(args, errW, defaults)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(errW, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(errW, err)
		return 1
	}
	if shouldExit {
		return 0
	}

	if err := app.NewApp(outW, errW, appConfig).Run(context.Background()); err != nil {
		fmt.Fprintln(errW, "Error:", err)
		return 1
	}

	return 0
}
