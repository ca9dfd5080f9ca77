// Package app runs the maze-solving pipeline: load the maze, solve it with
// the requested strategy, overlay the path and save or print the result.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/LamaAT1/Maze-Solver/grid"
	"github.com/LamaAT1/Maze-Solver/solver"
)

// NoPathMessage is printed to the output writer when no path exists.
const NoPathMessage = "No path found."

// Config holds everything a single run needs.
type Config struct {
	InputPath  string
	Method     string
	OutputPath string // empty prints to the output writer
	ReportPath string // empty skips the YAML report
	Mark       byte
	LogLevel   string
	LogFormat  string
}

// App is one invocation of the pipeline.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	runID  string
}

// NewApp returns an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runID:  runID,
	}
}

// Run executes the pipeline once. A maze without a route is not an error:
// NoPathMessage is printed and Run returns nil.
func (a *App) Run(ctx context.Context) error {
	cfg := a.config

	g, err := grid.Load(cfg.InputPath)
	if err != nil {
		a.logger.Error("Failed to load maze.", "input", cfg.InputPath, "error", err)
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	a.logger.Debug("Maze loaded.", "input", cfg.InputPath, "rows", g.Rows(), "cols", g.Cols())

	method, err := solver.ParseMethod(cfg.Method)
	if err != nil {
		return fmt.Errorf("%w '%s'. Use dfs or bfs.", ErrUnknownMethod, cfg.Method)
	}

	var opts []solver.Option
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, solver.WithTrace(func(step solver.Step, p grid.Position, depth int) {
			a.logger.Debug("Traversal step.", "step", step, "cell", p, "depth", depth)
		}))
	}
	sol, err := solver.Solve(ctx, g, method, opts...)
	if err != nil {
		a.logger.Error("Solve failed.", "method", method, "error", err)
		return err
	}
	a.logger.Info("Solve finished.",
		"method", method, "found", sol.Found(), "length", len(sol.Path), "explored", sol.Explored)
	if err := checkPath(g, sol); err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := writeReport(cfg.ReportPath, newReport(a.runID, cfg.InputPath, g, sol)); err != nil {
			return err
		}
		a.logger.Debug("Report written.", "report", cfg.ReportPath)
	}

	if !sol.Found() {
		a.logger.Debug("No route between markers.",
			"start", sol.Start, "end", sol.End, "connected", g.Connected(sol.Start, sol.End))
		fmt.Fprintln(a.outW, NoPathMessage)
		return nil
	}

	mark := cfg.Mark
	if mark == 0 {
		mark = solver.DefaultMark
	}
	solver.Overlay(g, sol.Path, mark)
	if cfg.OutputPath == "" {
		_, err := g.WriteTo(a.outW)
		return err
	}
	if err := g.Save(cfg.OutputPath); err != nil {
		a.logger.Error("Failed to save solution.", "output", cfg.OutputPath, "error", err)
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	fmt.Fprintf(a.outW, "Solution saved to %s\n", cfg.OutputPath)

	return nil
}

// checkPath rejects a found path that does not walk g from sol.Start to
// sol.End through open, adjacent, distinct cells.
func checkPath(g *grid.Grid, sol *solver.Solution) error {
	if sol.Found() && !sol.Path.Valid(g, sol.Start, sol.End) {
		return fmt.Errorf("%w: %s from %v to %v", ErrInvalidPath, sol.Method, sol.Start, sol.End)
	}

	return nil
}
