package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// 不给 --board 时的演示局面
const demoBoard = "XOX/O../..."

type positionFlags struct {
	board string
	ai    string
}

func (f *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.board, "board", demoBoard, `board as 9 cells, e.g. "XOX/O../..."`)
	cmd.Flags().StringVar(&f.ai, "ai", "O", "side the engine plays (X or O)")
}

func (f *positionFlags) parse() (tictactoe.Board, tictactoe.Player, error) {
	b, err := tictactoe.ParseBoard(f.board)
	if err != nil {
		return b, tictactoe.NoPlayer, err
	}
	ai, err := tictactoe.ParsePlayer(f.ai)
	if err != nil {
		return b, tictactoe.NoPlayer, err
	}
	return b, ai, nil
}

func newMoveCmd(a *app) *cobra.Command {
	var (
		pf     positionFlags
		levels []string
	)
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Print the engine move for a board at one or more levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ai, err := pf.parse()
			if err != nil {
				return err
			}
			if len(levels) == 0 {
				levels = []string{a.cfg.Engine.DefaultLevel.String()}
			}
			e := a.newEngine()
			out := cmd.OutOrStdout()
			for _, name := range levels {
				lvl, err := engine.ParseLevel(name)
				if err != nil {
					return err
				}
				m, err := e.BestMove(b, ai, engine.Options{Level: lvl})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d\n", lvl, m)
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringSliceVar(&levels, "level", nil, "difficulty levels: master, novice, random (repeatable)")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var pf positionFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show every candidate move ranked by score",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ai, err := pf.parse()
			if err != nil {
				return err
			}
			res, err := a.newEngine().Analyze(b, ai)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "board %s, %s to play, status %s\n", b, ai, res.Outcome)
			if len(res.Candidates) == 0 {
				fmt.Fprintln(out, "no legal moves")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tMOVE\tROW,COL\tSCORE")
			for i, c := range res.Candidates {
				fmt.Fprintf(tw, "%d\t%d\t%d,%d\t%d\n", i+1, c.Move, c.Move.Row(), c.Move.Col(), c.Score)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "nodes %d, cache %d entries (%d hits, %d misses), %s\n",
				res.Nodes, res.CacheSize, res.CacheHits, res.CacheMisses, res.Elapsed)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}
