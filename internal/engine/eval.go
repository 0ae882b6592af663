package engine

import "tictactoe/internal/tictactoe"

const (
	// WinScore 是一步即胜的分数，每多一层减 1
	WinScore = 10

	// 当成正负无穷
	ScoreInf = 1_000_000
)

// EvaluateTerminal 以 X 视角给终局打分：
// X 胜 10-depth，O 胜 -(10-depth)，和棋 0；未终局返回 ok=false。
// 深度折扣让搜索偏向更快的胜利、更慢的失败。
func EvaluateTerminal(b tictactoe.Board, depth int) (score int, ok bool) {
	switch b.Outcome() {
	case tictactoe.XWins:
		return WinScore - depth, true
	case tictactoe.OWins:
		return -(WinScore - depth), true
	case tictactoe.Draw:
		return 0, true
	default:
		return 0, false
	}
}
