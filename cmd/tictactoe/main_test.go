package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", writeQuietConfig(t)}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func writeQuietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\nengine:\n  seed: 3\n"), 0o600))
	return path
}

func TestMoveCommandDemoBoard(t *testing.T) {
	out := runCmd(t, "move")
	assert.Equal(t, "master: 4\n", out)
}

func TestMoveCommandLevels(t *testing.T) {
	out := runCmd(t, "move", "--board", ".........", "--ai", "X", "--level", "master", "--level", "random")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "master: 4", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "random: "))
}

func TestMoveCommandTerminalBoard(t *testing.T) {
	out := runCmd(t, "move", "--board", "XXX/OO./...", "--ai", "O")
	assert.Equal(t, "master: -1\n", out)
}

func TestAnalyzeCommand(t *testing.T) {
	out := runCmd(t, "analyze", "--board", "XOX/O../...", "--ai", "O")
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "status ongoing")
	assert.Contains(t, out, "-7")
}

func TestSelfplayMasterAlwaysDraws(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.NewEngine(engine.WithSeed(1), engine.WithLogger(logger))
	res, err := runSelfplay(context.Background(), e, 8, 4, engine.LevelMaster, engine.LevelMaster)
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.draws)
	assert.Zero(t, res.xWins+res.oWins)
}

func TestSelfplayMasterNeverLosesToRandom(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.NewEngine(engine.WithSeed(7), engine.WithLogger(logger))
	res, err := runSelfplay(context.Background(), e, 20, 4, engine.LevelMaster, engine.LevelRandom)
	require.NoError(t, err)
	assert.Zero(t, res.oWins)
	assert.Equal(t, int64(20), res.xWins+res.draws)
}

func TestSelfplayHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSelfplay(ctx, engine.NewEngine(), 3, 1, engine.LevelMaster, engine.LevelMaster)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportCases(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var buf bytes.Buffer
	n, err := exportCases(&buf, engine.NewEngine(engine.WithLogger(logger)))
	require.NoError(t, err)
	// 5478 个合法局面减去 958 个终局
	assert.Equal(t, 4520, n)

	var cases []TestCase
	require.NoError(t, json.Unmarshal(buf.Bytes(), &cases))
	require.Len(t, cases, n)
	assert.Equal(t, ".../.../...", cases[0].Board)
	assert.Equal(t, 4, cases[0].BestMove)
	for _, c := range cases {
		b, err := tictactoe.ParseBoard(c.Board)
		require.NoError(t, err)
		require.True(t, b.IsEmpty(tictactoe.Move(c.BestMove)), c.Board)
	}
}
