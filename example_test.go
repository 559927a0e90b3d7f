package veb_test

import (
	"fmt"

	"github.com/katalvlaran/veb"
)

// ExampleTree demonstrates the basic membership/ordering workflow: build
// a set, grow it past its initial universe, then walk it in order.
func ExampleTree() {
	tree := veb.New()
	for _, x := range []uint64{42, 7, 195, 7} { // 7 inserted twice: idempotent
		_ = tree.Add(x)
	}

	fmt.Println("universe:", tree.UniverseSize())
	fmt.Println("len:", tree.Len())
	for x := range tree.All() {
		fmt.Println(x)
	}
	// Output:
	// universe: 256
	// len: 3
	// 7
	// 42
	// 195
}

// ExampleTree_Predecessor shows predecessor/successor queries and their
// strictness: the maximum itself has no successor.
func ExampleTree_Predecessor() {
	tree, _ := veb.OfSize(16)
	_ = tree.Update([]uint64{2, 5, 9})

	p, ok := tree.Predecessor(9)
	fmt.Println(p, ok)

	s, ok := tree.Successor(9)
	fmt.Println(s, ok)
	// Output:
	// 5 true
	// 0 false
}

// ExampleTree_Discard shows that discarding the current minimum promotes
// the next element, per spec.md scenario S3.
func ExampleTree_Discard() {
	tree, _ := veb.OfSize(4)
	_ = tree.Update([]uint64{0, 1})
	tree.Discard(0)

	min, _ := tree.Min()
	fmt.Println(min)
	fmt.Println(tree.Contains(0))
	// Output:
	// 1
	// false
}
