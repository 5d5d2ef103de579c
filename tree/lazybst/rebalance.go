package lazybst

import (
	"cmp"
	"math/bits"

	"github.com/golang/glog"
)

// Stats reports what a Rebalance() did.
type Stats struct {
	// Visited is the number of nodes in the tree before the rebalance.
	Visited int
	// Purged is the number of removed nodes that were dropped.
	Purged int
	// Survivors is the number of nodes in the rebalanced tree.
	Survivors int
	// VineRotations is the number of right rotations used to build the vine.
	VineRotations int
	// BalanceRotations is the number of left rotations used to fold the vine.
	BalanceRotations int
}

type options struct {
	stats *Stats
}

// Option is an optional argument for Rebalance().
type Option func(o *options)

// WithStats has Rebalance() record what it did in s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// Rebalance purges every removed node from the tree rooted at root and
// rebalances what is left. It returns the new root, which is nil if every node
// had been removed. root must not be used after this call.
func Rebalance[K cmp.Ordered](root *Node[K], opts ...Option) *Node[K] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	s := Stats{}
	defer func() {
		if o.stats != nil {
			*o.stats = s
		}
	}()

	if root == nil {
		return nil
	}

	s.VineRotations = toVine(root)
	root, s.Survivors, s.Purged = compact(root)
	s.Visited = s.Survivors + s.Purged
	s.BalanceRotations = vineToTree(root, s.Survivors)

	if glog.V(2) {
		glog.Infof("lazybst: rebalanced %d nodes: purged %d, kept %d, rotations %d/%d",
			s.Visited, s.Purged, s.Survivors, s.VineRotations, s.BalanceRotations)
	}
	return root
}

// Rebalance is the same as Rebalance(n, opts...).
func (n *Node[K]) Rebalance(opts ...Option) *Node[K] {
	return Rebalance(n, opts...)
}

// toVine right rotates the tree until no node has a left child. Keys along
// the right spine are then in ascending order.
func toVine[K cmp.Ordered](root *Node[K]) int {
	rotations := 0
	for n := root; n != nil; n = n.right {
		for n.left != nil {
			rotateRight(n)
			rotations++
		}
	}
	return rotations
}

// compact walks a vine and splices out all removed nodes. It returns the
// first surviving node, which is the new root of the vine.
func compact[K cmp.Ordered](root *Node[K]) (newRoot *Node[K], survivors, purged int) {
	var prev *Node[K]

	n := root
	for n != nil {
		next := n.right
		if !n.valid {
			if prev != nil {
				prev.right = next
			}
			n.release()
			purged++
		} else {
			if newRoot == nil {
				newRoot = n
			}
			prev = n
			survivors++
		}
		n = next
	}
	return newRoot, survivors, purged
}

// vineToTree folds a vine of size nodes into a balanced tree. Nodes beyond the
// largest perfect tree that fits are pushed down as leaves of the bottom
// level first, then each pass halves the length of the right spine.
func vineToTree[K cmp.Ordered](root *Node[K], size int) int {
	// Largest 2^k - 1 <= size.
	m := 1<<(bits.Len(uint(size+1))-1) - 1

	rotations := compress(root, size-m)
	for m > 1 {
		m /= 2
		rotations += compress(root, m)
	}
	return rotations
}

// compress left rotates count times down the right spine, moving to the right
// child of each rotated node before the next rotation.
func compress[K cmp.Ordered](root *Node[K], count int) int {
	n := root
	for i := 0; i < count; i++ {
		rotateLeft(n)
		n = n.right
	}
	return count
}
