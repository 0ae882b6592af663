package engine

import "tictactoe/internal/tictactoe"

// Bound 标记置换表里的分数是精确值还是剪枝后的界
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // 发生 beta 截断，真实值 >= Score
	BoundUpper       // 所有子节点都 <= alpha，真实值 <= Score
)

type ttEntry struct {
	Score int
	Bound Bound
}

// TranspositionTable 只属于一次搜索调用，用完即丢，不跨调用复用。
// key 已经包含整个棋盘，深度隐含在落子数里。
type TranspositionTable struct {
	m      map[tictactoe.Key]ttEntry
	hits   int64
	misses int64
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{
		m: make(map[tictactoe.Key]ttEntry, 1<<10),
	}
}

// Probe 查表。精确值直接命中；界只有在当前窗口下足以截断时才算命中。
func (t *TranspositionTable) Probe(key tictactoe.Key, alpha, beta int) (int, bool) {
	e, ok := t.m[key]
	if ok {
		switch {
		case e.Bound == BoundExact,
			e.Bound == BoundLower && e.Score >= beta,
			e.Bound == BoundUpper && e.Score <= alpha:
			t.hits++
			return e.Score, true
		}
	}
	t.misses++
	return 0, false
}

// Store 按进入节点时的窗口判断分数是精确值还是界
func (t *TranspositionTable) Store(key tictactoe.Key, score, alpha, beta int) {
	bound := BoundExact
	switch {
	case score <= alpha:
		bound = BoundUpper
	case score >= beta:
		bound = BoundLower
	}
	t.m[key] = ttEntry{Score: score, Bound: bound}
}

// Lookup 不计入命中统计，给测试和调试用
func (t *TranspositionTable) Lookup(key tictactoe.Key) (int, Bound, bool) {
	e, ok := t.m[key]
	return e.Score, e.Bound, ok
}

func (t *TranspositionTable) Len() int { return len(t.m) }

func (t *TranspositionTable) Hits() int64   { return t.hits }
func (t *TranspositionTable) Misses() int64 { return t.misses }

func (t *TranspositionTable) Reset() {
	t.m = make(map[tictactoe.Key]ttEntry, 1<<10)
	t.hits = 0
	t.misses = 0
}
