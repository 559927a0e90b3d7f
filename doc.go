// Package veb implements a dynamically-allocated, dynamically-growable
// van Emde Boas tree: an ordered set of non-negative machine integers.
//
// 🚀 What is a vEB tree?
//
//	A vEB tree splits a universe of size U into √U clusters of √U
//	elements each, recursing until the base case U=2. Every membership,
//	insertion, deletion, min/max, predecessor and successor query costs
//	O(log log U) — far below the O(log n) a balanced BST gives you, at
//	the price of memory proportional to the *universe*, not the set
//	(mitigated here by lazy cluster allocation).
//
// ✨ Key features:
//   - O(log log U) Add / Discard / Contains / Predecessor / Successor
//   - lazy cluster allocation — memory tracks what's inserted, not U
//   - dynamic Grow — the universe grows to the next power of two that
//     fits each new value, no pre-declared capacity
//   - ordered iteration via Successor-chaining
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/veb"
//
//	t := veb.New()
//	t.Add(3)
//	t.Add(7)
//	t.Add(195) // universe grows to 256 automatically
//
//	min, _ := t.Min()         // 3
//	succ, _ := t.Successor(3) // 7
//
// Performance:
//
//   - Time:   O(log log U) per primitive, O(n log log U) for an n-step
//     iteration, O(U) worst case for a full Grow rebuild.
//   - Memory: O(n) clusters actually touched, never O(U).
//
// See example_test.go for runnable usage and bench_test.go for
// cross-universe-size benchmarks.
package veb
