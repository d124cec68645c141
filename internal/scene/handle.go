package scene

import "github.com/vovakirdan/tui-spawner/internal/spawner"

// Handles pack a slot index (plus one, so zero stays invalid) in the low
// 32 bits and the slot generation in the high 32 bits. Reusing a slot bumps
// its generation, so old handles never alias new entities.
const indexBits = 32

func makeHandle(index, gen uint32) spawner.Handle {
	return spawner.Handle(uint64(gen)<<indexBits | uint64(index+1))
}

func splitHandle(h spawner.Handle) (index, gen uint32, ok bool) {
	low := uint32(uint64(h))
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(uint64(h) >> indexBits), true
}
