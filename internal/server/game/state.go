package game

import (
	"time"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// GameState 一局人机对战。X 永远先手，AI 执 AIPlayer 一方。
type GameState struct {
	ID        string
	Board     tictactoe.Board
	AIPlayer  tictactoe.Player
	Level     engine.Level
	Moves     []tictactoe.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) ToMove() tictactoe.Player {
	return g.Board.NextPlayer()
}

func (g *GameState) Outcome() tictactoe.Outcome {
	return g.Board.Outcome()
}

func (g *GameState) HumanPlayer() tictactoe.Player {
	return g.AIPlayer.Opponent()
}
