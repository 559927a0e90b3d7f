package veb

import "iter"

// Tree is the public, dynamically-growable van Emde Boas set. The zero
// value is a valid empty Tree over universe 0 — but New and OfSize are
// the documented constructors, since they also apply Option values.
//
// A Tree is not safe for concurrent mutation; it has no internal lock,
// matching this corpus's convention for pure-computation packages such
// as dtw and bfs (only core.Graph, which documents thread-safety,
// takes one).
type Tree struct {
	universe uint64
	root     root // nil == empty, the Tree-level "Empty" variant
	count    int
	label    string
}

// New returns an empty Tree over universe 0, ready to grow on first Add.
func New(opts ...Option) *Tree {
	cfg := defaultTreeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Tree{label: cfg.label}
	if cfg.universeHint > 0 {
		// WithUniverseHint already validated n against maxUniverse, so
		// this Grow cannot fail.
		_ = t.Grow(cfg.universeHint)
	}
	return t
}

// OfSize returns a Tree whose universe is the smallest power of two >= n
// (0 if n == 0, 2 if 0 < n <= 2), per spec.md §6.
func OfSize(n uint64, opts ...Option) (*Tree, error) {
	t := New(opts...)
	if err := t.Grow(n); err != nil {
		return nil, err
	}
	return t, nil
}

// FromSlice returns a Tree grown to fit the maximum of xs and containing
// every value in xs — the "from_iter" constructor of spec.md §6,
// expressed over a Go slice since this corpus favors concrete slices
// over a generic iterable abstraction (see builder, dtw: every
// sequence-shaped input is a []T).
func FromSlice(xs []uint64, opts ...Option) (*Tree, error) {
	t := New(opts...)
	if err := t.Update(xs); err != nil {
		return nil, err
	}
	return t, nil
}

// UniverseSize reports the current universe (always 0 or a power of two).
func (t *Tree) UniverseSize() uint64 { return t.universe }

// Len reports the number of elements currently stored. Maintained
// incrementally on Add/Discard (permitted by spec.md §9 as a local
// optimization over iteration-based counting) rather than recomputed by
// walking successors on every call.
func (t *Tree) Len() int { return t.count }

// IsEmpty reports whether the Tree currently holds no elements.
func (t *Tree) IsEmpty() bool { return t.count == 0 }

// Label returns the optional diagnostic name set via WithLabel.
func (t *Tree) Label() string { return t.label }

// Contains reports whether x is a member. Any x, including values
// outside the current universe, is answered without error: out-of-range
// values simply aren't members.
func (t *Tree) Contains(x uint64) bool {
	if t.root == nil {
		return false
	}
	return t.root.contains(x)
}

// Min returns the smallest element, or ok == false if the Tree is empty.
func (t *Tree) Min() (uint64, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.min()
}

// Max returns the largest element, or ok == false if the Tree is empty.
func (t *Tree) Max() (uint64, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.max()
}

// Predecessor returns the greatest element strictly less than x, or
// ok == false if none exists. x need not be a member, and need not lie
// within the current universe: spec.md §7 resolves an x beyond max as
// "the predecessor is max", mirrored here by the root's own logic.
func (t *Tree) Predecessor(x uint64) (uint64, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.predecessor(x)
}

// Successor returns the least element strictly greater than x, or
// ok == false if none exists.
func (t *Tree) Successor(x uint64) (uint64, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.successor(x)
}

// Add inserts x, growing the universe first if x falls outside it.
// Duplicate inserts are idempotent. The only error case is x itself
// being unrepresentable (x > 1<<63 - 1); every other non-negative
// uint64 is accepted.
func (t *Tree) Add(x uint64) error {
	if x > maxElement {
		return ErrValueOutOfRange
	}
	if x >= t.universe {
		if err := t.Grow(x + 1); err != nil {
			return err
		}
	}
	present := t.root.contains(x)
	t.root.add(x)
	if !present {
		t.count++
	}
	return nil
}

// Discard removes x if present; it is a no-op if x is absent, including
// when x lies outside the current universe. Discard never shrinks the
// universe.
func (t *Tree) Discard(x uint64) {
	if t.root == nil || !t.root.contains(x) {
		return
	}
	t.root.discard(x)
	t.count--
}

// Update inserts every value in xs. It first grows the universe once to
// fit the maximum of xs (spec.md §4.3.4), so a batch of values does not
// pay for incremental regrowth on each Add.
func (t *Tree) Update(xs []uint64) error {
	if len(xs) == 0 {
		return nil
	}
	maxX := xs[0]
	for _, x := range xs[1:] {
		if x > maxX {
			maxX = x
		}
	}
	if maxX >= t.universe {
		if err := t.Grow(maxX + 1); err != nil {
			return err
		}
	}
	for _, x := range xs {
		if err := t.Add(x); err != nil {
			return err
		}
	}
	return nil
}

// Grow expands the universe to the smallest power of two >= toSize, and
// to at least 2 (the leaf universe) for any toSize > 0. It
// is monotone: a toSize at or below the current universe is a no-op.
// Growing beyond 1<<63 reports ErrValueOutOfRange.
func (t *Tree) Grow(toSize uint64) error {
	if toSize <= t.universe {
		return nil
	}
	if toSize > maxUniverse {
		return ErrValueOutOfRange
	}

	if toSize <= 2 {
		t.universe = 2
		t.root = &leaf{}
		return nil
	}

	newSize := nextPow2AtLeast(toSize)
	newNode := newVebNode(newSize)
	oldRoot := t.root
	t.universe = newSize

	if oldRoot == nil {
		t.root = newNode
		return nil
	}

	if oldNode, ok := oldRoot.(*vebNode); ok && oldNode.lowerSqrt == newNode.lowerSqrt {
		// Fast path (spec.md §4.3.2): cluster widths are unchanged, so
		// every existing cluster is still valid at its old index in the
		// larger clusters array. Only the thin index bookkeeping — the
		// clusters slice itself and the summary — needs rebuilding; the
		// clusters' own contents are untouched.
		newClusters := make([]root, newNode.upperSqrt)
		copy(newClusters, oldNode.clusters)
		newNode.clusters = newClusters

		newSummary := newRoot(newNode.upperSqrt)
		for _, h := range ascendRoot(oldNode.summary) {
			newSummary.add(h)
		}
		newNode.summary = newSummary

		newNode.hasMin, newNode.minV = oldNode.hasMin, oldNode.minV
		newNode.hasMax, newNode.maxV = oldNode.hasMax, oldNode.maxV
		t.root = newNode
		return nil
	}

	// Slow path: cluster widths changed (or the old root was a leaf),
	// so every element is re-inserted individually.
	t.root = newNode
	for _, x := range ascendRoot(oldRoot) {
		t.root.add(x)
	}
	return nil
}

// All returns an ascending range-over-func iterator of every element,
// built from repeated Successor calls per spec.md §4.2.6.
func (t *Tree) All() iter.Seq[uint64] {
	return ascendFunc(t.root)
}

// Backward returns a descending range-over-func iterator of every
// element, built from repeated Predecessor calls.
func (t *Tree) Backward() iter.Seq[uint64] {
	return descendFunc(t.root)
}

// Slice materializes All into a freshly-allocated, ascending slice.
func (t *Tree) Slice() []uint64 {
	out := make([]uint64, 0, t.count)
	for x := range t.All() {
		out = append(out, x)
	}
	return out
}

// Equal reports whether t and other have identical universe size, min,
// max, length, and pairwise-equal elements under ascending iteration —
// the universe-sensitive equality of spec.md §4.3.5: {1} over universe 4
// is not Equal to {1} over universe 8.
func (t *Tree) Equal(other *Tree) bool {
	if other == nil {
		return false
	}
	if t.universe != other.universe {
		return false
	}
	return t.EqualContent(other)
}

// EqualContent reports whether t and other contain the same elements in
// the same order, ignoring universe size — the content-only alternative
// spec.md's Design Notes explicitly permit offering alongside Equal.
func (t *Tree) EqualContent(other *Tree) bool {
	if other == nil {
		return false
	}
	if t.count != other.count {
		return false
	}
	tMin, tOK := t.Min()
	oMin, oOK := other.Min()
	if tOK != oOK || tMin != oMin {
		return false
	}
	tMax, _ := t.Max()
	oMax, _ := other.Max()
	if tMax != oMax {
		return false
	}

	next, stop := iter.Pull(t.All())
	defer stop()
	for x := range other.All() {
		y, ok := next()
		if !ok || x != y {
			return false
		}
	}
	_, ok := next()
	return !ok
}
