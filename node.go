package veb

// vebNode is a non-leaf vEB tree node over a universe of size u, always a
// power of two >= 4. It owns a min/max pair, a summary sub-tree over the
// cluster indices, and a lazily-populated array of cluster sub-trees.
//
// Stratification invariant: min is never also present in a cluster. This
// is what bounds Add/Discard to a single recursive branch instead of two.
type vebNode struct {
	universe  uint64
	lowerSqrt uint64 // modulus splitting x into (high, low)
	upperSqrt uint64 // width of the summary / length of clusters

	hasMin bool
	hasMax bool
	minV   uint64
	maxV   uint64

	summary  root
	clusters []root // len == upperSqrt; nil entry == empty cluster
}

// newVebNode builds an empty node over universe u. u must already be a
// power of two >= 4; callers (grow, and recursive cluster creation) are
// responsible for that invariant.
func newVebNode(u uint64) *vebNode {
	lower, upper := splitSquareRoots(u)
	return &vebNode{
		universe:  u,
		lowerSqrt: lower,
		upperSqrt: upper,
		summary:   newRoot(upper),
		clusters:  make([]root, upper),
	}
}

func (n *vebNode) universeSize() uint64 { return n.universe }

func (n *vebNode) isEmpty() bool { return !n.hasMin }

func (n *vebNode) min() (uint64, bool) { return n.minV, n.hasMin }

func (n *vebNode) max() (uint64, bool) { return n.maxV, n.hasMax }

// high returns x's cluster index; low returns x's offset within that
// cluster. index reassembles (high, low) back into an element.
func (n *vebNode) high(x uint64) uint64 { return x / n.lowerSqrt }
func (n *vebNode) low(x uint64) uint64  { return x % n.lowerSqrt }
func (n *vebNode) index(h, l uint64) uint64 { return h*n.lowerSqrt + l }

func (n *vebNode) contains(x uint64) bool {
	if n.isEmpty() {
		return false
	}
	if x == n.minV {
		return true
	}
	h := n.high(x)
	if h >= n.upperSqrt {
		return false
	}
	c := n.clusters[h]
	if c == nil {
		return false
	}
	return c.contains(n.low(x))
}

func (n *vebNode) add(x uint64) {
	if n.isEmpty() {
		n.minV, n.maxV = x, x
		n.hasMin, n.hasMax = true, true
		return
	}

	if x == n.minV {
		return // idempotent duplicate
	}

	if x < n.minV {
		// Preserve stratification: x becomes the new min, and the old
		// min value is the one that actually descends into a cluster.
		x, n.minV = n.minV, x
	}
	if x > n.maxV {
		n.maxV = x
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters[h]
	if c == nil {
		c = newRoot(n.lowerSqrt)
		n.clusters[h] = c
		n.summary.add(h)
	}
	c.add(l)
}

func (n *vebNode) discard(x uint64) {
	if n.isEmpty() || x < n.minV {
		return
	}

	if x == n.minV {
		h0, ok := n.summary.min()
		if !ok {
			n.hasMin, n.hasMax = false, false
			return
		}
		l0, _ := n.clusters[h0].min()
		x = n.index(h0, l0)
		n.minV = x
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters[h]
	if c == nil {
		return
	}
	c.discard(l)

	if c.isEmpty() {
		n.clusters[h] = nil
		n.summary.discard(h)
	}

	if x == n.maxV {
		h1, ok := n.summary.max()
		if !ok {
			n.maxV = n.minV
		} else {
			l1, _ := n.clusters[h1].max()
			n.maxV = n.index(h1, l1)
		}
	}
}

func (n *vebNode) predecessor(x uint64) (uint64, bool) {
	if n.isEmpty() || x <= n.minV {
		return 0, false
	}
	if x > n.maxV {
		return n.maxV, true
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters[h]

	if c == nil || lessEqualClusterMin(c, l) {
		hPrev, ok := n.summary.predecessor(h)
		if !ok {
			return n.minV, true
		}
		lMax, _ := n.clusters[hPrev].max()
		return n.index(hPrev, lMax), true
	}

	lPrev, _ := c.predecessor(l)
	return n.index(h, lPrev), true
}

func (n *vebNode) successor(x uint64) (uint64, bool) {
	if n.isEmpty() || x >= n.maxV {
		return 0, false
	}
	if x < n.minV {
		return n.minV, true
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters[h]

	if c == nil || greaterEqualClusterMax(c, l) {
		hNext, ok := n.summary.successor(h)
		invariant(ok, "successor: x < max but no later cluster found in summary")
		lMin, _ := n.clusters[hNext].min()
		return n.index(hNext, lMin), true
	}

	lNext, _ := c.successor(l)
	return n.index(h, lNext), true
}

// lessEqualClusterMin reports whether l <= c.min(), the condition under
// which predecessor(x) must look outside cluster c entirely.
func lessEqualClusterMin(c root, l uint64) bool {
	cmin, ok := c.min()
	if !ok {
		return true
	}
	return l <= cmin
}

// greaterEqualClusterMax reports whether l >= c.max(), the condition
// under which successor(x) must look outside cluster c entirely.
func greaterEqualClusterMax(c root, l uint64) bool {
	cmax, ok := c.max()
	if !ok {
		return true
	}
	return l >= cmax
}
