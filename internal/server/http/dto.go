package httpserver

import (
	"tictactoe/internal/engine"
	"tictactoe/internal/server/game"
	"tictactoe/internal/tictactoe"
)

// NewGameRequest 开新局；ai_player 为空时 AI 执 O
type NewGameRequest struct {
	AIPlayer string `json:"ai_player"`
	Level    string `json:"level"` // master / novice / random，空=服务默认
}

// Play 请求：人类落子
type PlayRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Move   *int   `json:"move" binding:"required"`
}

// State / AiMove 请求只需要 game_id
type GameRequest struct {
	GameID string `json:"game_id" binding:"required"`
}

// GameResponse 所有对局接口统一返回当前局面
type GameResponse struct {
	GameID     string   `json:"game_id"`
	Board      string   `json:"board"` // "XO./.../..."
	Cells      []string `json:"cells"` // ["X","O","",...]
	ToMove     string   `json:"to_move"`
	AIPlayer   string   `json:"ai_player"`
	Level      string   `json:"level"`
	LegalMoves []int    `json:"legal_moves"`
	Moves      []int    `json:"moves"`
	Status     string   `json:"status"` // ongoing / x_wins / o_wins / draw
	AIMove     *int     `json:"ai_move,omitempty"`
}

// BestMoveRequest 无状态接口：直接把局面交给引擎。
// board（文本）和 cells（数组）二选一。
type BestMoveRequest struct {
	Board    string   `json:"board"`
	Cells    []string `json:"cells"`
	AIPlayer string   `json:"ai_player" binding:"required"`
	Level    string   `json:"level"`
}

type BestMoveResponse struct {
	Move       int                `json:"move"` // -1 = 局面已终结
	Level      string             `json:"level"`
	Status     string             `json:"status"`
	Candidates []engine.Candidate `json:"candidates"`
	Nodes      int64              `json:"nodes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func movesToInts(ms []tictactoe.Move) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = int(m)
	}
	return out
}

func gameToDTO(g game.GameState) GameResponse {
	legal := []tictactoe.Move{}
	if !g.Outcome().Terminal() {
		legal = g.Board.EmptyCells()
	}
	return GameResponse{
		GameID:     g.ID,
		Board:      g.Board.String(),
		Cells:      g.Board.Cells(),
		ToMove:     g.ToMove().String(),
		AIPlayer:   g.AIPlayer.String(),
		Level:      g.Level.String(),
		LegalMoves: movesToInts(legal),
		Moves:      movesToInts(g.Moves),
		Status:     g.Outcome().String(),
	}
}
