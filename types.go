package veb

import "errors"

// maxUniverseExp is the largest exponent m for which 1<<m still fits a
// uint64 with room to spare for Grow's "toSize = x+1" arithmetic. A
// uint64 can represent 1<<63 exactly but not 1<<64, so the universe
// tops out at 1<<63 and the largest insertable element at 1<<63 - 1.
const maxUniverseExp = 63

// maxUniverse is the largest universe size Grow will ever install.
const maxUniverse = uint64(1) << maxUniverseExp

// maxElement is the largest value Add will accept; beyond it, growing
// the universe to x+1 would need 1<<64, which overflows uint64.
const maxElement = maxUniverse - 1

// Sentinel errors for Tree construction and mutation.
//
// Callers branch on these with errors.Is, never by string comparison —
// the same discipline this corpus's builder and bfs packages use.
var (
	// ErrValueOutOfRange is returned when an operation is asked to insert
	// a value at or beyond 1<<63, or to grow the universe beyond 1<<63 —
	// the point at which internal arithmetic would overflow a uint64.
	ErrValueOutOfRange = errors.New("veb: value out of representable range")
)

// Option configures a Tree at construction time via New.
type Option func(*treeConfig)

// treeConfig holds construction-time parameters resolved by Option
// values before the first root is installed.
type treeConfig struct {
	universeHint uint64
	label        string
}

func defaultTreeConfig() treeConfig {
	return treeConfig{}
}

// WithUniverseHint pre-grows a freshly constructed Tree to hold values up
// to n-1 without paying for incremental regrowth on the first few Adds.
// It also fixes the starting universe size, which Equal compares: a Tree
// without this hint reaches the same universe size only once a large
// enough value is added.
//
// Per this corpus's option-validation convention (builder/errors.go:
// "validation panics are confined to option constructor functions"),
// an n beyond the representable universe panics here rather than
// surfacing as an error deep inside New.
func WithUniverseHint(n uint64) Option {
	if n > maxUniverse {
		panic(ErrValueOutOfRange)
	}
	return func(c *treeConfig) {
		c.universeHint = n
	}
}

// WithLabel attaches a human-readable name to a Tree, surfaced only by
// Label and Dump — useful when a diagnostic log holds more than one Tree.
func WithLabel(label string) Option {
	return func(c *treeConfig) {
		c.label = label
	}
}
