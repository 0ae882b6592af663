package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Level 难度。零值是 master。
type Level int8

const (
	LevelMaster Level = iota // 总是最优
	LevelNovice              // 40% 最优，60% 次优
	LevelRandom              // 在合法步里均匀随机
)

var ErrInvalidLevel = errors.New("invalid level")

func (l Level) String() string {
	switch l {
	case LevelNovice:
		return "novice"
	case LevelRandom:
		return "random"
	case LevelMaster:
		return "master"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

func (l Level) Valid() bool {
	return l >= LevelMaster && l <= LevelRandom
}

// ParseLevel 空字符串按 master 处理
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "master":
		return LevelMaster, nil
	case "novice":
		return LevelNovice, nil
	case "random":
		return LevelRandom, nil
	default:
		return LevelMaster, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int8(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
