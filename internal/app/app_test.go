package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/LamaAT1/Maze-Solver/grid"
	"github.com/LamaAT1/Maze-Solver/internal/app"
)

// writeMaze stores text in a temp file and returns its path.
func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

// runApp executes one pipeline run and returns stdout, logs and the error.
func runApp(t *testing.T, cfg app.Config) (string, string, error) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	var out, logs bytes.Buffer
	err := app.NewApp(&out, &logs, &cfg).Run(context.Background())

	return out.String(), logs.String(), err
}

func TestRun_PrintsMarkedMaze(t *testing.T) {
	in := writeMaze(t, "S.#\n.#.\n..E\n")
	for _, method := range []string{"dfs", "bfs"} {
		t.Run(method, func(t *testing.T) {
			out, logs, err := runApp(t, app.Config{InputPath: in, Method: method, Mark: '*'})
			require.NoError(t, err)
			assert.Equal(t, "S.#\n*#.\n**E\n", out)
			assert.Contains(t, logs, "run_id=")
			assert.Contains(t, logs, "Solve finished.")
		})
	}
}

func TestRun_SavesToFile(t *testing.T) {
	in := writeMaze(t, "S  \n # \n  E\n")
	outPath := filepath.Join(t.TempDir(), "solved.txt")

	out, _, err := runApp(t, app.Config{InputPath: in, Method: "bfs", OutputPath: outPath, Mark: '+'})
	require.NoError(t, err)
	assert.Equal(t, "Solution saved to "+outPath+"\n", out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	g := grid.Parse(string(data))
	assert.Equal(t, 3, strings.Count(g.Render(), "+"))
}

func TestRun_NoPath(t *testing.T) {
	in := writeMaze(t, "S#E\n")
	outPath := filepath.Join(t.TempDir(), "never.txt")

	out, _, err := runApp(t, app.Config{InputPath: in, Method: "dfs", OutputPath: outPath})
	require.NoError(t, err)
	assert.Equal(t, app.NoPathMessage+"\n", out)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file is written without a path")
}

func TestRun_Errors(t *testing.T) {
	in := writeMaze(t, "S.E\n")

	_, _, err := runApp(t, app.Config{InputPath: filepath.Join(t.TempDir(), "absent.txt"), Method: "bfs"})
	assert.ErrorIs(t, err, app.ErrFileOpen)

	_, _, err = runApp(t, app.Config{InputPath: in, Method: "astar"})
	assert.ErrorIs(t, err, app.ErrUnknownMethod)
	assert.EqualError(t, err, "unknown method 'astar'. Use dfs or bfs.")

	_, _, err = runApp(t, app.Config{InputPath: in, Method: "bfs",
		OutputPath: filepath.Join(t.TempDir(), "no", "such", "dir.txt")})
	assert.ErrorIs(t, err, app.ErrFileOpen)

	lone := writeMaze(t, "S\n")
	_, _, err = runApp(t, app.Config{InputPath: lone, Method: "bfs"})
	assert.ErrorIs(t, err, grid.ErrMissingEnd)
}

func TestRun_WritesReport(t *testing.T) {
	in := writeMaze(t, "S.#\n.#.\n..E\n")
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	_, _, err := runApp(t, app.Config{InputPath: in, Method: "bfs", ReportPath: reportPath})
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep app.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "bfs", rep.Method)
	assert.True(t, rep.Found)
	assert.Equal(t, 5, rep.Length)
	assert.Equal(t, 1, rep.Regions)
	assert.Equal(t, app.Cell{Row: 2, Col: 2}, rep.End)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, rep.Path)
}

func TestRun_JSONLogs(t *testing.T) {
	in := writeMaze(t, "SE\n")
	_, logs, err := runApp(t, app.Config{InputPath: in, Method: "dfs", LogFormat: "json"})
	require.NoError(t, err)
	assert.Contains(t, logs, `"run_id":`)
}

func TestRun_DebugLogsTraversalSteps(t *testing.T) {
	in := writeMaze(t, "S.E\n")
	_, logs, err := runApp(t, app.Config{InputPath: in, Method: "bfs"})
	require.NoError(t, err)
	assert.Contains(t, logs, "step=dequeue")
	assert.Contains(t, logs, "step=enqueue")

	_, logs, err = runApp(t, app.Config{InputPath: in, Method: "bfs", LogLevel: "warn"})
	require.NoError(t, err)
	assert.NotContains(t, logs, "Traversal step.")
}
