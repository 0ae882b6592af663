package tictactoe

import "errors"

type Outcome int8

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Outcome 判定终局：有连线则胜，无连线且无空格则和，否则未结束
func (b Board) Outcome() Outcome {
	switch b.Winner() {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	}
	if b.Full() {
		return Draw
	}
	return Ongoing
}

var (
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrIllegalMove   = errors.New("illegal move")
)

// Validate 只拒绝搜索无法解释的局面：非法格子值，或 X、O 同时连成三子。
// 不检查子数是否符合交替落子，调用方可以让任意一方走。
func (b Board) Validate() error {
	var xLine, oLine bool
	for _, c := range b {
		if c != Empty && c != X && c != O {
			return ErrInvalidBoard
		}
	}
	for _, line := range Lines {
		switch b.lineOwner(line) {
		case PlayerX:
			xLine = true
		case PlayerO:
			oLine = true
		}
	}
	if xLine && oLine {
		return ErrInvalidBoard
	}
	return nil
}
