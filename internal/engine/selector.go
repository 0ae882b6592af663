package engine

import (
	"fmt"
	"sort"
	"time"

	"tictactoe/internal/tictactoe"
)

// novice 难度下选最优的概率，其余选次优
const noviceBestChance = 0.4

// Options 零值即 master
type Options struct {
	Level Level `json:"level" yaml:"level"`
}

// Candidate 根节点的一个候选步及其分数（X 视角）
type Candidate struct {
	Move  tictactoe.Move `json:"move"`
	Score int            `json:"score"`
}

// Analysis 是一次根节点搜索的结果：排好序的候选步 + 统计
type Analysis struct {
	AI          tictactoe.Player  `json:"-"`
	Outcome     tictactoe.Outcome `json:"-"`
	Candidates  []Candidate       `json:"candidates"`
	Nodes       int64             `json:"nodes"`
	CacheHits   int64             `json:"cache_hits"`
	CacheMisses int64             `json:"cache_misses"`
	CacheSize   int               `json:"cache_size"`
	Elapsed     time.Duration     `json:"-"`
}

// Best 排名第一的候选；没有候选时返回 NoMove
func (a Analysis) Best() tictactoe.Move {
	if len(a.Candidates) == 0 {
		return tictactoe.NoMove
	}
	return a.Candidates[0].Move
}

// ScoreOf 返回某一步在本次搜索中的分数
func (a Analysis) ScoreOf(m tictactoe.Move) (int, bool) {
	for _, c := range a.Candidates {
		if c.Move == m {
			return c.Score, true
		}
	}
	return 0, false
}

func validateInput(b tictactoe.Board, ai tictactoe.Player) error {
	if !ai.Valid() {
		return fmt.Errorf("engine: %w: %d", tictactoe.ErrInvalidPlayer, int8(ai))
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Analyze 对每个合法根步做完整窗口搜索，并按 ai 一方的利益排序：
// X 分数降序，O 分数升序；同分保持 MoveOrder 的先后。
// 每次调用使用一张新的置换表。
func (e *Engine) Analyze(b tictactoe.Board, ai tictactoe.Player) (Analysis, error) {
	if err := validateInput(b, ai); err != nil {
		return Analysis{}, err
	}

	start := time.Now()
	a := Analysis{AI: ai, Outcome: b.Outcome()}
	if a.Outcome.Terminal() {
		a.Elapsed = time.Since(start)
		return a, nil
	}

	s := NewSearcher()
	opponent := ai.Opponent()
	for _, m := range OrderedMoves(b) {
		child := b
		child[m] = ai.Cell()
		score := s.Search(child, opponent, -ScoreInf, ScoreInf, 1)
		a.Candidates = append(a.Candidates, Candidate{Move: m, Score: score})
	}

	if ai == tictactoe.PlayerX {
		sort.SliceStable(a.Candidates, func(i, j int) bool {
			return a.Candidates[i].Score > a.Candidates[j].Score
		})
	} else {
		sort.SliceStable(a.Candidates, func(i, j int) bool {
			return a.Candidates[i].Score < a.Candidates[j].Score
		})
	}

	a.Nodes = s.Nodes()
	a.CacheHits = s.Table().Hits()
	a.CacheMisses = s.Table().Misses()
	a.CacheSize = s.Table().Len()
	a.Elapsed = time.Since(start)
	recordAnalysis(a)
	return a, nil
}

// BestMove 是对外入口：返回 ai 一方的落子；局面已终结时返回 NoMove。
func (e *Engine) BestMove(b tictactoe.Board, ai tictactoe.Player, opts Options) (tictactoe.Move, error) {
	if !opts.Level.Valid() {
		searchTotal.WithLabelValues("unknown", "invalid").Inc()
		return tictactoe.NoMove, fmt.Errorf("engine: %w: %d", ErrInvalidLevel, int8(opts.Level))
	}
	a, err := e.Analyze(b, ai)
	if err != nil {
		searchTotal.WithLabelValues(opts.Level.String(), "invalid").Inc()
		return tictactoe.NoMove, err
	}
	return e.Choose(a, opts)
}

// Choose 按难度从 Analyze 的结果里选一步；没有候选时返回 NoMove。
func (e *Engine) Choose(a Analysis, opts Options) (tictactoe.Move, error) {
	if !opts.Level.Valid() {
		searchTotal.WithLabelValues("unknown", "invalid").Inc()
		return tictactoe.NoMove, fmt.Errorf("engine: %w: %d", ErrInvalidLevel, int8(opts.Level))
	}
	level := opts.Level.String()

	if len(a.Candidates) == 0 {
		searchTotal.WithLabelValues(level, "terminal").Inc()
		e.logger.Debug("no legal move", "ai", a.AI, "outcome", a.Outcome)
		return tictactoe.NoMove, nil
	}

	m := e.pick(a.Candidates, opts.Level)
	searchTotal.WithLabelValues(level, "move").Inc()
	e.logger.Debug("best move",
		"ai", a.AI,
		"level", level,
		"move", int(m),
		"nodes", a.Nodes,
		"cache_hits", a.CacheHits,
		"elapsed", a.Elapsed,
	)
	return m, nil
}

// pick 按难度从排好序的候选里选一步，candidates 非空
func (e *Engine) pick(candidates []Candidate, level Level) tictactoe.Move {
	switch level {
	case LevelRandom:
		idx := int(e.randFloat() * float64(len(candidates)))
		if idx >= len(candidates) {
			idx = len(candidates) - 1
		}
		return candidates[idx].Move
	case LevelNovice:
		if len(candidates) >= 2 {
			if e.randFloat() <= noviceBestChance {
				return candidates[0].Move
			}
			return candidates[1].Move
		}
	}
	return candidates[0].Move
}

// GetBestMove 使用进程级默认 Engine
func GetBestMove(b tictactoe.Board, ai tictactoe.Player, opts Options) (tictactoe.Move, error) {
	return Default().BestMove(b, ai, opts)
}
