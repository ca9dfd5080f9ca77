package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LamaAT1/Maze-Solver/internal/app"
	"github.com/LamaAT1/Maze-Solver/internal/cli"
	"github.com/LamaAT1/Maze-Solver/internal/config"
)

func TestParse_Positional(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"in.txt", "bfs", "out.txt"}, out, config.Defaults())
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &app.Config{
		InputPath:  "in.txt",
		Method:     "bfs",
		OutputPath: "out.txt",
		Mark:       '*',
		LogLevel:   "warn",
		LogFormat:  "text",
	}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_FlagsOverrideDefaults(t *testing.T) {
	defaults := config.Config{Mark: 'o', LogLevel: "info", LogFormat: "text"}
	args := []string{"-mark", "+", "-log-level", "DEBUG", "-log-format", "json", "-report", "r.yaml", "in.txt", "dfs"}

	cfg, _, err := cli.Parse(args, &bytes.Buffer{}, defaults)
	require.NoError(t, err)
	assert.Equal(t, byte('+'), cfg.Mark)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "r.yaml", cfg.ReportPath)
	assert.Empty(t, cfg.OutputPath)

	cfg, _, err = cli.Parse([]string{"in.txt", "dfs"}, &bytes.Buffer{}, defaults)
	require.NoError(t, err)
	assert.Equal(t, byte('o'), cfg.Mark, "defaults apply when no flag is given")
}

func TestParse_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"in.txt"}} {
		out := &bytes.Buffer{}
		_, _, err := cli.Parse(args, out, config.Defaults())

		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		assert.Equal(t, 1, exitErr.Code)
		assert.ErrorIs(t, err, app.ErrUsage)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_ExtraArgumentsIgnored(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"in.txt", "bfs", "out.txt", "extra", "more"}, out, config.Defaults())
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "in.txt", cfg.InputPath)
	assert.Equal(t, "bfs", cfg.Method)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.Empty(t, out.String())
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	_, exit, err := cli.Parse([]string{"-h"}, out, config.Defaults())
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_BadFlags(t *testing.T) {
	cases := [][]string{
		{"--no-such-flag", "in.txt", "bfs"},
		{"-mark", "##", "in.txt", "bfs"},
		{"-log-level", "loud", "in.txt", "bfs"},
		{"-log-format", "xml", "in.txt", "bfs"},
	}
	for _, args := range cases {
		_, _, err := cli.Parse(args, &bytes.Buffer{}, config.Defaults())
		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		assert.Equal(t, 2, exitErr.Code, "args %v", args)
	}
}
