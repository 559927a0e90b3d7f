package veb

import "iter"

// ascendRoot walks r from its minimum to its maximum via repeated
// successor calls, the same technique spec.md §4.2.6 prescribes for
// ordered iteration, and collects the result. It is used internally
// wherever a small sub-tree's membership needs re-deriving — e.g.
// rebuilding a summary during Tree.Grow's fast path.
func ascendRoot(r root) []uint64 {
	if r == nil {
		return nil
	}
	m, ok := r.min()
	if !ok {
		return nil
	}
	maxV, _ := r.max()
	out := []uint64{m}
	cur := m
	for cur != maxV {
		next, ok := r.successor(cur)
		invariant(ok, "ascendRoot: successor missing before reaching max")
		out = append(out, next)
		cur = next
	}
	return out
}

// ascendFunc is the lazy counterpart of ascendRoot, used by Tree.All to
// support range-over-func iteration without materializing a slice.
func ascendFunc(r root) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if r == nil {
			return
		}
		m, ok := r.min()
		if !ok {
			return
		}
		if !yield(m) {
			return
		}
		maxV, _ := r.max()
		cur := m
		for cur != maxV {
			next, ok := r.successor(cur)
			invariant(ok, "ascendFunc: successor missing before reaching max")
			if !yield(next) {
				return
			}
			cur = next
		}
	}
}

// descendFunc walks r from its maximum down to its minimum via repeated
// predecessor calls — the mirror of ascendFunc, backing Tree.Backward.
func descendFunc(r root) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if r == nil {
			return
		}
		maxV, ok := r.max()
		if !ok {
			return
		}
		if !yield(maxV) {
			return
		}
		minV, _ := r.min()
		cur := maxV
		for cur != minV {
			prev, ok := r.predecessor(cur)
			invariant(ok, "descendFunc: predecessor missing before reaching min")
			if !yield(prev) {
				return
			}
			cur = prev
		}
	}
}
