package model

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkTick(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, size := range sizes {
		live := randomLiveSet(rand.New(rand.NewSource(42)), size, int64(size/4+10))
		b.Run(fmt.Sprintf("Sequential_%d", size), func(b *testing.B) {
			for b.Loop() {
				_ = Tick(live)
			}
			b.ReportAllocs()
		})
		b.Run(fmt.Sprintf("Parallel_%d", size), func(b *testing.B) {
			pool := NewCellPool()
			for b.Loop() {
				_ = tickParallel(live, 0, pool)
			}
			b.ReportAllocs()
		})
	}
}
