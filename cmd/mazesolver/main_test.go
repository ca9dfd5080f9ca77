package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

func TestRun_ExitCodes(t *testing.T) {
	maze := writeMaze(t, "S.#\n.#.\n..E\n")
	blocked := writeMaze(t, "S#E\n")
	rawBytes := writeMaze(t, "S\xb7#\n..E\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	cases := []struct {
		name    string
		args    []string
		code    int
		stdout  string
		stderrs string
	}{
		{"Usage", []string{"only-one"}, 1, "", "Usage:"},
		{"CannotLoad", []string{missing, "bfs"}, 1, "", "Error: cannot open file"},
		{"UnknownMethod", []string{maze, "astar"}, 1, "", "Error: unknown method 'astar'. Use dfs or bfs."},
		{"NoPath", []string{blocked, "bfs"}, 0, "No path found.\n", ""},
		{"PrintBFS", []string{maze, "bfs"}, 0, "S.#\n*#.\n**E\n", ""},
		{"PrintDFSCustomMark", []string{"-mark", "o", maze, "dfs"}, 0, "S.#\no#.\nooE\n", ""},
		{"NonUTF8Maze", []string{rawBytes, "bfs"}, 0, "S\xb7#\n**E\n", ""},
		{"Help", []string{"-h"}, 0, "", "Usage:"},
		{"BadFlag", []string{"-nope", maze, "bfs"}, 2, "", "flag provided but not defined"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(&out, &errOut, tc.args)

			require.Equal(t, tc.code, code, "stderr: %s", errOut.String())
			require.Equal(t, tc.stdout, out.String())
			if tc.stderrs != "" {
				require.Contains(t, errOut.String(), tc.stderrs)
			}
		})
	}
}

func TestRun_ExtraArgumentsIgnored(t *testing.T) {
	maze := writeMaze(t, "S.#\n.#.\n..E\n")
	outPath := filepath.Join(t.TempDir(), "solved.txt")

	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{maze, "bfs", outPath, "extra"})
	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, "Solution saved to "+outPath+"\n", out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "S.#\n*#.\n**E\n", string(data))
}

func TestRun_SaveToFile(t *testing.T) {
	maze := writeMaze(t, "S.#\n.#.\n..E\n")
	outPath := filepath.Join(t.TempDir(), "solved.txt")

	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{maze, "bfs", outPath})
	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, "Solution saved to "+outPath+"\n", out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "S.#\n*#.\n**E\n", string(data))
}
