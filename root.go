package veb

import "math/bits"

// root is the tagged-variant interface implemented by leaf and vebNode —
// every allocated vEB sub-tree, whether it's a Node's summary, one of its
// clusters, or (once grown past universe 2) the Tree's own root.
//
// The Tree's own "nothing has been added yet" state is modeled as a nil
// root held by Tree, not as a third implementation of this interface:
// a summary or cluster, once allocated, is always structurally a leaf or
// a vebNode (see newRoot) — it is merely empty of elements, which
// isEmpty reports directly rather than through a sentinel type.
type root interface {
	universeSize() uint64
	isEmpty() bool
	min() (uint64, bool)
	max() (uint64, bool)
	contains(x uint64) bool
	add(x uint64)
	discard(x uint64)
	predecessor(x uint64) (uint64, bool)
	successor(x uint64) (uint64, bool)
}

// newRoot builds a fresh, empty vEB sub-tree over universe u. u must be a
// power of two >= 2 (the only sizes that ever occur as a cluster width or
// a summary width, given the recursive square-root split).
func newRoot(u uint64) root {
	if u <= 2 {
		return &leaf{}
	}
	return newVebNode(u)
}

// log2Exp returns m such that u == 1<<m, assuming u is a power of two.
func log2Exp(u uint64) uint {
	return uint(bits.TrailingZeros64(u))
}

// splitSquareRoots computes lower_sqrt = 1<<floor(log2(u)/2) and
// upper_sqrt = 1<<ceil(log2(u)/2) for a universe u that is a power of two
// >= 4, per spec: x splits into (high, low) with x = high*lower + low,
// high ranging over upper_sqrt cluster indices.
func splitSquareRoots(u uint64) (lowerSqrt, upperSqrt uint64) {
	m := log2Exp(u)
	lowerExp := m / 2
	upperExp := m - lowerExp // == ceil(m/2)
	return 1 << lowerExp, 1 << upperExp
}

// nextPow2AtLeast returns the smallest power of two >= n, or 0 if n == 0.
func nextPow2AtLeast(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	m := uint(bits.Len64(n)) // smallest m with n < 1<<m
	return 1 << m
}
