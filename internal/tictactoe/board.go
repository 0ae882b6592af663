package tictactoe

// Lines 是 8 条获胜线：3 行、3 列、2 条对角线
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func indexOf(row, col int) int { return row*Cols + col }

func (b Board) IsEmpty(m Move) bool {
	return m.Valid() && b[m] == Empty
}

// Filled 已落子数，同时也是到达该局面的深度
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Filled() == NumSquares
}

// EmptyCells 按下标升序返回所有空格
func (b Board) EmptyCells() []Move {
	out := make([]Move, 0, NumSquares)
	for i, c := range b {
		if c == Empty {
			out = append(out, Move(i))
		}
	}
	return out
}

// Apply 返回落子后的新局面，原局面不变
func (b Board) Apply(m Move, p Player) (Board, bool) {
	if !b.IsEmpty(m) || !p.Valid() {
		return b, false
	}
	b[m] = p.Cell()
	return b, true
}

// Count 统计某一方的棋子数
func (b Board) Count(p Player) int {
	want := p.Cell()
	n := 0
	for _, c := range b {
		if c == want && c != Empty {
			n++
		}
	}
	return n
}

// NextPlayer 按交替落子推断轮到谁：X 先手
func (b Board) NextPlayer() Player {
	if b.Count(PlayerX) > b.Count(PlayerO) {
		return PlayerO
	}
	return PlayerX
}

// lineOwner 返回连成三子的一方，没有则 NoPlayer
func (b Board) lineOwner(line [3]int) Player {
	v := b[line[0]]
	if v != Empty && v == b[line[1]] && v == b[line[2]] {
		return v.Player()
	}
	return NoPlayer
}

// Winner 扫描 8 条线，返回第一个连成三子的一方
func (b Board) Winner() Player {
	for _, line := range Lines {
		if p := b.lineOwner(line); p != NoPlayer {
			return p
		}
	}
	return NoPlayer
}
