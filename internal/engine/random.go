package engine

import (
	"math"
	"math/rand"
	"time"
)

// RandSource 只需要给出 [0,1) 上的均匀分布，*rand.Rand 直接满足
type RandSource interface {
	Float64() float64
}

func newDefaultSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randFloat 取一个随机数，结果钳到 [0,1)
func (e *Engine) randFloat() float64 {
	e.mu.Lock()
	r := e.rng.Float64()
	e.mu.Unlock()

	if r < 0 || math.IsNaN(r) {
		return 0
	}
	if r >= 1 {
		return math.Nextafter(1, 0)
	}
	return r
}
