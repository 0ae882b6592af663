package tictactoe

// Key 是 (局面, 轮到谁) 的编码：9 格三进制 + 1 位行棋方。
// 3^9*2 < 2^16，不会冲突；深度由已落子数决定，不需要放进 key。
type Key uint32

func KeyOf(b Board, toMove Player) Key {
	var k Key
	for i := NumSquares - 1; i >= 0; i-- {
		k = k*3 + Key(b[i])
	}
	k <<= 1
	if toMove == PlayerO {
		k |= 1
	}
	return k
}

// Decode 还原 Key，主要给调试和测试用
func (k Key) Decode() (Board, Player) {
	toMove := PlayerX
	if k&1 == 1 {
		toMove = PlayerO
	}
	k >>= 1
	var b Board
	for i := 0; i < NumSquares; i++ {
		b[i] = Cell(k % 3)
		k /= 3
	}
	return b, toMove
}
