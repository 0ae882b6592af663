package engine

import "tictactoe/internal/tictactoe"

// MoveOrder 中心 > 角 > 边。
// 不影响最优分，但影响剪枝效率，以及同分时选哪一步。
var MoveOrder = [tictactoe.NumSquares]tictactoe.Move{4, 0, 2, 6, 8, 1, 3, 5, 7}

// OrderedMoves 按 MoveOrder 返回所有空格
func OrderedMoves(b tictactoe.Board) []tictactoe.Move {
	out := make([]tictactoe.Move, 0, tictactoe.NumSquares)
	for _, m := range MoveOrder {
		if b[m] == tictactoe.Empty {
			out = append(out, m)
		}
	}
	return out
}
