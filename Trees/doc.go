// Package Trees implements LinkedBST, an unbalanced binary search tree with
// ordered-set queries and on-demand rebalancing.
//
// Nodes live in an index arena: every node is a pair of child indexes plus a
// value slot, and index 0 stands for the absent child. No parent links are
// kept; the algorithms track parents locally while they walk down from the
// root. Equal items are placed in the right subtree, so the tree also holds
// duplicates.
//
// Balance is never restored automatically. Ascending or descending insertion
// sequences degrade the tree into a list; IsBalanced reports this and
// Rebalance rebuilds the tree to minimal height. All walks use explicit
// stacks or queues so a degenerate tree does not grow the goroutine stack.
//
// A LinkedBST is not safe for concurrent mutation.
package Trees

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
