package tictactoe

// Cell 是棋盘上一个格子的内容
type Cell int8

const (
	Empty Cell = iota
	X
	O
)

// Player 是执子方，只有 X / O 两种
type Player int8

const (
	NoPlayer Player = -1
	PlayerX  Player = 0
	PlayerO  Player = 1
)

// Move 是 0..8 的格子下标，行优先
type Move int

// NoMove 表示没有合法着法（局面已终结）
const NoMove Move = -1

const (
	Rows       = 3
	Cols       = 3
	NumSquares = Rows * Cols
)

// Board 固定 9 格，按值传递，拷贝即快照
type Board [NumSquares]Cell

func (p Player) Cell() Cell {
	switch p {
	case PlayerX:
		return X
	case PlayerO:
		return O
	default:
		return Empty
	}
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

func (p Player) Valid() bool {
	return p == PlayerX || p == PlayerO
}

// Player 返回占据该格的一方；空格返回 NoPlayer
func (c Cell) Player() Player {
	switch c {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return NoPlayer
	}
}

func (m Move) Valid() bool {
	return m >= 0 && m < NumSquares
}

func (m Move) Row() int { return int(m) / Cols }
func (m Move) Col() int { return int(m) % Cols }
