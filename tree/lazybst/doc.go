/*
Package lazybst provides an unbalanced binary search tree that defers both
deletion and balancing until the caller asks for it.

Remove() only marks a node as removed (a tombstone). The node keeps its place in
the tree until the next Rebalance(), which turns the tree into a vine (a
right-only chain), drops every tombstone while walking that vine and then folds
the vine back into a tree of minimal height using the Day-Stout-Warren
algorithm. Rebalance() runs in O(N) time with O(1) extra memory and never
allocates.

This lets you do bulk inserts and removes without paying for rebalancing on
every change.

Usage:
	root := lazybst.New(10)
	for _, k := range []int{5, 15, 3, 7} {
		if err := root.Insert(k); err != nil {
			// Do something.
		}
	}

	root.Remove(7)
	fmt.Println(root.Contains(7)) // false

	// The root may change, always use the returned value.
	root = lazybst.Rebalance(root)

Inserting a key that was removed but not yet purged by Rebalance() brings the
old node back instead of allocating a new one. Inserting a key that is
already present returns ErrDuplicateKey.

A tree is just its root *Node. A nil *Node is the empty tree, which you can
Rebalance() but not Insert() into; use New() to start a tree.

Rotations swap the payload of nodes rather than the nodes themselves, so a
pointer to the root you hold stays the root of the tree across rotations. The
root can still change when Rebalance() purges it, which is why Rebalance()
returns the root to use.

This package is not thread-safe.
*/
package lazybst
