package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// TestCase 一条局面记录：给前端或其他实现做对拍
type TestCase struct {
	Board      string             `json:"board"`
	Cells      []string           `json:"cells"`
	ToMove     string             `json:"to_move"`
	BestMove   int                `json:"best_move"`
	Candidates []engine.Candidate `json:"candidates"`
}

// reachable 从空棋盘交替落子能到达的所有未终局局面，按发现顺序
func reachable() []tictactoe.Board {
	seen := map[tictactoe.Key]bool{}
	var out []tictactoe.Board
	var walk func(b tictactoe.Board)
	walk = func(b tictactoe.Board) {
		p := b.NextPlayer()
		k := tictactoe.KeyOf(b, p)
		if seen[k] || b.Outcome().Terminal() {
			return
		}
		seen[k] = true
		out = append(out, b)
		for _, m := range engine.OrderedMoves(b) {
			next, _ := b.Apply(m, p)
			walk(next)
		}
	}
	walk(tictactoe.Board{})
	return out
}

func exportCases(w io.Writer, e *engine.Engine) (int, error) {
	boards := reachable()
	cases := make([]TestCase, 0, len(boards))
	for _, b := range boards {
		p := b.NextPlayer()
		a, err := e.Analyze(b, p)
		if err != nil {
			return 0, err
		}
		cases = append(cases, TestCase{
			Board:      b.String(),
			Cells:      b.Cells(),
			ToMove:     p.String(),
			BestMove:   int(a.Best()),
			Candidates: a.Candidates,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return 0, err
	}
	return len(cases), nil
}

func newExportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write master moves for every reachable position as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			n, err := exportCases(w, a.newEngine())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			a.logger.Info("exported positions", "count", n, "out", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
