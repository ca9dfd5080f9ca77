package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LamaAT1/Maze-Solver/grid"
	"github.com/LamaAT1/Maze-Solver/solver"
)

// Cell is a YAML-friendly position.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Report summarizes one run. It is written when -report is given.
type Report struct {
	RunID    string   `yaml:"run_id"`
	Input    string   `yaml:"input"`
	Method   string   `yaml:"method"`
	Rows     int      `yaml:"rows"`
	Cols     int      `yaml:"cols"`
	Start    Cell     `yaml:"start"`
	End      Cell     `yaml:"end"`
	Found    bool     `yaml:"found"`
	Length   int      `yaml:"length"`
	Explored int      `yaml:"explored"`
	Regions  int      `yaml:"regions"`
	Path     [][2]int `yaml:"path,flow"`
}

func newReport(runID, input string, g *grid.Grid, sol *solver.Solution) Report {
	r := Report{
		RunID:    runID,
		Input:    input,
		Method:   string(sol.Method),
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Start:    Cell{Row: sol.Start.Row, Col: sol.Start.Col},
		End:      Cell{Row: sol.End.Row, Col: sol.End.Col},
		Found:    sol.Found(),
		Length:   len(sol.Path),
		Explored: sol.Explored,
		Regions:  len(g.Regions()),
		Path:     make([][2]int, 0, len(sol.Path)),
	}
	for _, p := range sol.Path {
		r.Path = append(r.Path, [2]int{p.Row, p.Col})
	}

	return r
}

// writeReport marshals r as YAML into path.
func writeReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: report %q: %w", ErrFileOpen, path, err)
	}

	return nil
}
