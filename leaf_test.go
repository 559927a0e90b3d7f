package veb

import "testing"

func TestLeafAddContains(t *testing.T) {
	l := &leaf{}
	if l.contains(0) || l.contains(1) {
		t.Fatalf("new leaf should be empty")
	}

	l.add(1)
	if !l.contains(1) {
		t.Fatalf("expected 1 to be a member after add(1)")
	}
	if l.contains(0) {
		t.Fatalf("0 should not be a member")
	}
	if l.contains(2) {
		t.Fatalf("contains(2) on a universe-2 leaf must be false, not an error")
	}
}

func TestLeafMinMax(t *testing.T) {
	l := &leaf{}
	if _, ok := l.min(); ok {
		t.Fatalf("empty leaf must have no min")
	}
	if _, ok := l.max(); ok {
		t.Fatalf("empty leaf must have no max")
	}

	l.add(1)
	if m, ok := l.min(); !ok || m != 1 {
		t.Fatalf("min = %d,%v, want 1,true", m, ok)
	}
	if m, ok := l.max(); !ok || m != 1 {
		t.Fatalf("max = %d,%v, want 1,true", m, ok)
	}

	l.add(0)
	if m, ok := l.min(); !ok || m != 0 {
		t.Fatalf("min = %d,%v, want 0,true", m, ok)
	}
	if m, ok := l.max(); !ok || m != 1 {
		t.Fatalf("max = %d,%v, want 1,true", m, ok)
	}
}

func TestLeafDiscard(t *testing.T) {
	l := &leaf{}
	l.add(0)
	l.add(1)

	l.discard(0)
	if l.contains(0) {
		t.Fatalf("0 should have been discarded")
	}
	if !l.contains(1) {
		t.Fatalf("1 should remain after discarding 0")
	}

	l.discard(0) // idempotent
	if l.contains(0) {
		t.Fatalf("repeated discard must stay a no-op")
	}
}

func TestLeafPredecessor(t *testing.T) {
	cases := []struct {
		bits   [2]bool
		x      uint64
		want   uint64
		wantOK bool
	}{
		{[2]bool{false, false}, 0, 0, false},
		{[2]bool{false, false}, 1, 0, false},
		{[2]bool{true, false}, 1, 0, true},
		{[2]bool{false, false}, 1, 0, false},
		{[2]bool{true, true}, 5, 1, true},  // x beyond universe -> max
		{[2]bool{true, false}, 5, 0, true}, // x beyond universe -> max(=0)
		{[2]bool{false, false}, 5, 0, false},
	}
	for _, c := range cases {
		l := &leaf{v: c.bits}
		got, ok := l.predecessor(c.x)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Fatalf("predecessor(%d) on %v = %d,%v, want %d,%v", c.x, c.bits, got, ok, c.want, c.wantOK)
		}
	}
}

func TestLeafSuccessor(t *testing.T) {
	cases := []struct {
		bits   [2]bool
		x      uint64
		want   uint64
		wantOK bool
	}{
		{[2]bool{false, true}, 0, 1, true},
		{[2]bool{false, false}, 0, 0, false},
		{[2]bool{true, true}, 1, 0, false},
	}
	for _, c := range cases {
		l := &leaf{v: c.bits}
		got, ok := l.successor(c.x)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Fatalf("successor(%d) on %v = %d,%v, want %d,%v", c.x, c.bits, got, ok, c.want, c.wantOK)
		}
	}
}
