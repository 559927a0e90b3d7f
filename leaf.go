package veb

// leaf is the recursion base case: a vEB tree over the universe {0, 1}.
// It stores the two bits directly and implements every primitive's base
// case without a summary or clusters.
type leaf struct {
	v [2]bool
}

func (l *leaf) universeSize() uint64 { return 2 }

func (l *leaf) contains(x uint64) bool {
	if x > 1 {
		return false
	}
	return l.v[x]
}

func (l *leaf) add(x uint64) {
	l.v[x] = true
}

func (l *leaf) discard(x uint64) {
	if x > 1 {
		return
	}
	l.v[x] = false
}

func (l *leaf) min() (uint64, bool) {
	if l.v[0] {
		return 0, true
	}
	if l.v[1] {
		return 1, true
	}
	return 0, false
}

func (l *leaf) max() (uint64, bool) {
	if l.v[1] {
		return 1, true
	}
	if l.v[0] {
		return 0, true
	}
	return 0, false
}

func (l *leaf) isEmpty() bool {
	return !l.v[0] && !l.v[1]
}

// predecessor returns the greatest element strictly less than x.
//
//	x == 0         -> absent, nothing precedes 0
//	x == 1         -> 0, if present
//	x > 1          -> treated as "beyond the universe": answer is max
func (l *leaf) predecessor(x uint64) (uint64, bool) {
	switch {
	case x == 0:
		return 0, false
	case x == 1:
		if l.v[0] {
			return 0, true
		}
		return 0, false
	default:
		return l.max()
	}
}

// successor returns the least element strictly greater than x.
//
//	x == 0         -> 1, if present
//	x > 0          -> absent, nothing in {0,1} exceeds x
//
// x is a uint64 so "x < 0" can never occur; the zero value already
// means "ask for the smallest element", handled by min() at the Node
// level before recursing into a leaf, so no separate branch is needed
// here for a notional negative x.
func (l *leaf) successor(x uint64) (uint64, bool) {
	if x == 0 {
		if l.v[1] {
			return 1, true
		}
		return 0, false
	}
	return 0, false
}
