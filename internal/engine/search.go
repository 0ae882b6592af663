package engine

import "tictactoe/internal/tictactoe"

// Searcher 是一次顶层搜索的全部状态：置换表 + 节点计数。
// 不是并发安全的，每个调用各建一个。
type Searcher struct {
	tt    *TranspositionTable
	nodes int64
}

func NewSearcher() *Searcher {
	return &Searcher{tt: NewTranspositionTable()}
}

func (s *Searcher) Table() *TranspositionTable { return s.tt }
func (s *Searcher) Nodes() int64               { return s.nodes }

// Search 是 minimax + alpha-beta，分数永远以 X 视角给出：X 取极大，O 取极小。
// depth 是从根开始已经走的步数。
// 棋盘按值传递，子节点在副本上落子，任何退出路径都不会改动调用方的棋盘。
func (s *Searcher) Search(b tictactoe.Board, toMove tictactoe.Player, alpha, beta, depth int) int {
	s.nodes++

	if score, ok := EvaluateTerminal(b, depth); ok {
		return score
	}

	key := tictactoe.KeyOf(b, toMove)
	if score, ok := s.tt.Probe(key, alpha, beta); ok {
		return score
	}
	alphaOrig, betaOrig := alpha, beta

	cell := toMove.Cell()
	next := toMove.Opponent()

	var best int
	if toMove == tictactoe.PlayerX {
		best = -ScoreInf
		for _, m := range MoveOrder {
			if b[m] != tictactoe.Empty {
				continue
			}
			child := b
			child[m] = cell
			score := s.Search(child, next, alpha, beta, depth+1)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break // beta 截断
			}
		}
	} else {
		best = ScoreInf
		for _, m := range MoveOrder {
			if b[m] != tictactoe.Empty {
				continue
			}
			child := b
			child[m] = cell
			score := s.Search(child, next, alpha, beta, depth+1)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if alpha >= beta {
				break // alpha 截断
			}
		}
	}

	s.tt.Store(key, best, alphaOrig, betaOrig)
	return best
}
