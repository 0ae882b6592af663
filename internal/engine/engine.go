package engine

import (
	"log/slog"
	"sync"
)

// Engine 是对外的落子入口。
// 每次调用都自带一个 Searcher 和一张新的置换表，所以 Engine 可以被多个 goroutine 共用；
// 唯一共享的可变状态是随机源，用 mu 保护。
type Engine struct {
	mu     sync.Mutex
	rng    RandSource
	logger *slog.Logger
}

type Option func(*Engine)

// WithRandSource 注入随机源（novice / random 难度用）
func WithRandSource(src RandSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithSeed 用固定种子生成默认随机源，0 表示按时间取种子
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = newDefaultSource(seed)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newDefaultSource(0)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// Default 返回进程级的共享 Engine（时间种子，slog 默认 logger）
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}
