package veb

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the Tree's recursive summary/cluster shape as an indented
// tree, the way npillmayer-fp's persistent btree/vector tests render
// their structures for t.Logf diagnostics (persistent/btree/btree_test.go,
// persistent/vector/int_test.go) — useful when a structural test needs
// to show, not just assert, what went wrong.
//
// Dump is a debugging aid, not part of the set's logical contract: it
// exposes internal layout and is not covered by Equal.
func (t *Tree) Dump() string {
	root := fmt.Sprintf("universe=%d len=%d", t.universe, t.count)
	if t.label != "" {
		root = fmt.Sprintf("%s (%s)", t.label, root)
	}
	out := treeprint.NewWithRoot(root)
	if t.root != nil {
		dumpRoot(out, t.root)
	}
	return out.String()
}

// dumpRoot recursively attaches r's shape under parent.
func dumpRoot(parent treeprint.Tree, r root) {
	switch n := r.(type) {
	case *leaf:
		min, hasMin := n.min()
		max, hasMax := n.max()
		if !hasMin {
			parent.AddNode("leaf{}")
			return
		}
		if hasMax && max != min {
			parent.AddNode(fmt.Sprintf("leaf{min=%d, max=%d}", min, max))
		} else {
			parent.AddNode(fmt.Sprintf("leaf{%d}", min))
		}
	case *vebNode:
		min, hasMin := n.min()
		if !hasMin {
			parent.AddNode(fmt.Sprintf("node{universe=%d, empty}", n.universe))
			return
		}
		max, _ := n.max()
		branch := parent.AddBranch(fmt.Sprintf("node{universe=%d, min=%d, max=%d}", n.universe, min, max))

		summaryBranch := branch.AddBranch("summary")
		dumpRoot(summaryBranch, n.summary)

		for h, c := range n.clusters {
			if c == nil {
				continue
			}
			clusterBranch := branch.AddBranch(fmt.Sprintf("cluster[%d]", h))
			dumpRoot(clusterBranch, c)
		}
	default:
		parent.AddNode(fmt.Sprintf("%T", r))
	}
}

// String implements fmt.Stringer with the same rendering as Dump, so a
// Tree prints legibly from %v/%s and from t.Logf without an explicit
// .Dump() call.
func (t *Tree) String() string {
	return t.Dump()
}
