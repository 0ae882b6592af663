package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game over")
	ErrNotYourTurn  = errors.New("not your turn")
)

// MoveSelector 是 Manager 对引擎的全部依赖
type MoveSelector interface {
	BestMove(b tictactoe.Board, ai tictactoe.Player, opts engine.Options) (tictactoe.Move, error)
}

// Manager 内存里的对局表，本地跑足够了
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	now   func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		now:   time.Now,
	}
}

func (m *Manager) NewGame(ai tictactoe.Player, level engine.Level) (GameState, error) {
	if !ai.Valid() {
		return GameState{}, tictactoe.ErrInvalidPlayer
	}
	if !level.Valid() {
		return GameState{}, engine.ErrInvalidLevel
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	g := &GameState{
		ID:        uuid.NewString(),
		AIPlayer:  ai,
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.snapshot(), nil
}

// Get 返回对局快照，调用方改动不会影响表内状态
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.snapshot(), nil
}

// Play 人类落子
func (m *Manager) Play(id string, mv tictactoe.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.ToMove() != g.HumanPlayer() {
		return g.snapshot(), ErrNotYourTurn
	}
	if err := m.apply(g, mv); err != nil {
		return g.snapshot(), err
	}
	return g.snapshot(), nil
}

// AIMove 让引擎为 AI 一方走一步并落子。
// 持锁期间调用引擎：井字棋搜索是微秒级的。
func (m *Manager) AIMove(id string, sel MoveSelector) (GameState, tictactoe.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, tictactoe.NoMove, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.Outcome().Terminal() {
		return g.snapshot(), tictactoe.NoMove, ErrGameOver
	}
	if g.ToMove() != g.AIPlayer {
		return g.snapshot(), tictactoe.NoMove, ErrNotYourTurn
	}
	mv, err := sel.BestMove(g.Board, g.AIPlayer, engine.Options{Level: g.Level})
	if err != nil {
		return g.snapshot(), tictactoe.NoMove, err
	}
	if err := m.apply(g, mv); err != nil {
		return g.snapshot(), tictactoe.NoMove, err
	}
	return g.snapshot(), mv, nil
}

func (m *Manager) apply(g *GameState, mv tictactoe.Move) error {
	if g.Outcome().Terminal() {
		return ErrGameOver
	}
	next, ok := g.Board.Apply(mv, g.ToMove())
	if !ok {
		return fmt.Errorf("%w: %d", tictactoe.ErrIllegalMove, mv)
	}
	g.Board = next
	g.Moves = append(g.Moves, mv)
	g.UpdatedAt = m.now()
	return nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (g *GameState) snapshot() GameState {
	cp := *g
	cp.Moves = append([]tictactoe.Move(nil), g.Moves...)
	return cp
}
