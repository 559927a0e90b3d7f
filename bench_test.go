package veb_test

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/katalvlaran/veb"
)

// universeSizes spans several doublings so the O(log log U) behavior
// the doc.go promises is actually observable in `go test -bench`
// output, rather than asserted as a number in a test.
var universeSizes = []uint64{1 << 8, 1 << 16, 1 << 24, 1 << 32}

func BenchmarkAdd(b *testing.B) {
	for _, u := range universeSizes {
		b.Run(fmtUniverse(u), func(b *testing.B) {
			tree, _ := veb.OfSize(u)
			rng := rand.New(rand.NewSource(1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tree.Add(uint64(rng.Int63n(int64(u))))
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, u := range universeSizes {
		b.Run(fmtUniverse(u), func(b *testing.B) {
			tree, _ := veb.OfSize(u)
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 1<<12; i++ {
				_ = tree.Add(uint64(rng.Int63n(int64(u))))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Contains(uint64(rng.Int63n(int64(u))))
			}
		})
	}
}

func BenchmarkSuccessor(b *testing.B) {
	for _, u := range universeSizes {
		b.Run(fmtUniverse(u), func(b *testing.B) {
			tree, _ := veb.OfSize(u)
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 1<<12; i++ {
				_ = tree.Add(uint64(rng.Int63n(int64(u))))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Successor(uint64(rng.Int63n(int64(u))))
			}
		})
	}
}

func fmtUniverse(u uint64) string {
	return fmt.Sprintf("U2^%d", bits.Len64(u)-1)
}
