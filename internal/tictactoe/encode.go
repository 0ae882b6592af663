package tictactoe

import (
	"fmt"
	"strings"
)

// 文本格式：9 个字符，X / O，空位用 '.'（也接受 '-'、'_'、空格），
// 可以用 '/' 分行，例如 "XOX/O../..."
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteByte(cellToChar(b[indexOf(r, c)]))
		}
	}
	return sb.String()
}

func cellToChar(c Cell) byte {
	switch c {
	case X:
		return 'X'
	case O:
		return 'O'
	default:
		return '.'
	}
}

func charToCell(ch rune) (Cell, bool) {
	switch ch {
	case 'X', 'x':
		return X, true
	case 'O', 'o':
		return O, true
	case '.', '-', '_', ' ':
		return Empty, true
	default:
		return Empty, false
	}
}

func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, ch := range s {
		if ch == '/' {
			continue
		}
		if n >= NumSquares {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrInvalidBoard, NumSquares, s)
		}
		c, ok := charToCell(ch)
		if !ok {
			return Board{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidBoard, ch)
		}
		b[n] = c
		n++
	}
	if n != NumSquares {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, n, NumSquares)
	}
	return b, nil
}

// BoardFromCells 接受前端常用的数组形式：["X","O","", ...]
func BoardFromCells(cells []string) (Board, error) {
	if len(cells) != NumSquares {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, len(cells), NumSquares)
	}
	var b Board
	for i, s := range cells {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "X":
			b[i] = X
		case "O":
			b[i] = O
		case "", ".":
			b[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unknown symbol %q at %d", ErrInvalidBoard, s, i)
		}
	}
	return b, nil
}

// Cells 是 BoardFromCells 的逆过程，空格输出 ""
func (b Board) Cells() []string {
	out := make([]string, NumSquares)
	for i, c := range b {
		if c != Empty {
			out[i] = string(cellToChar(c))
		}
	}
	return out
}

func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}
