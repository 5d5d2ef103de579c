package lazybst

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates an operation that needs an existing tree was
	// called on a nil *Node.
	ErrInvalidState = errors.New("operation requires a non-empty tree")

	// ErrDuplicateKey indicates an Insert() of a key that is already in the tree.
	ErrDuplicateKey = errors.New("key already exists")
)

// Node is a node in the tree. A *Node that is the root of a tree represents
// the whole tree.
type Node[K cmp.Ordered] struct {
	key   K
	valid bool

	left, right *Node[K]
}

// New creates a tree holding a single key.
func New[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, valid: true}
}

// Key returns the key held by the node. Returns the zero value for a nil Node.
func (n *Node[K]) Key() K {
	if n == nil {
		var k K
		return k
	}
	return n.key
}

// Valid returns false if the node was removed and is waiting to be purged.
func (n *Node[K]) Valid() bool {
	return n != nil && n.valid
}

// Left returns the left child.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Insert adds key to the tree. If key was removed and the tree has not been
// rebalanced since, the existing node is revived. O(height) operation.
func (n *Node[K]) Insert(key K) error {
	if n == nil {
		return fmt.Errorf("cannot Insert(%v): %w", key, ErrInvalidState)
	}

	cur := n
	for {
		switch c := cmp.Compare(key, cur.key); {
		case c < 0:
			if cur.left == nil {
				cur.left = New(key)
				return nil
			}
			cur = cur.left
		case c > 0:
			if cur.right == nil {
				cur.right = New(key)
				return nil
			}
			cur = cur.right
		default:
			if cur.valid {
				return fmt.Errorf("cannot Insert(%v): %w", key, ErrDuplicateKey)
			}
			cur.valid = true
			return nil
		}
	}
}

// Contains returns true if key is in the tree and has not been removed.
func (n *Node[K]) Contains(key K) bool {
	return n.find(key).Valid()
}

// Remove marks key as removed. The node is purged by the next Rebalance().
// Removing a key that is not in the tree does nothing.
func (n *Node[K]) Remove(key K) {
	if f := n.find(key); f != nil {
		f.valid = false
	}
}

// find returns the node holding key, valid or not, or nil.
func (n *Node[K]) find(key K) *Node[K] {
	cur := n
	for cur != nil {
		switch c := cmp.Compare(key, cur.key); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// release unlinks a node that is no longer part of a tree.
func (n *Node[K]) release() {
	var k K
	n.key = k
	n.valid = false
	n.left = nil
	n.right = nil
}
