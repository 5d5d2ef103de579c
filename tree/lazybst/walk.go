package lazybst

import (
	"cmp"

	"github.com/johnsiilver/lazytree/container/dynarray"
)

// frame is a node on an explicit traversal stack and its depth, where the
// root is at depth 1.
type frame[K cmp.Ordered] struct {
	n     *Node[K]
	depth int
}

// walk calls fn for every node of the tree, parents before children. fn must
// not change the links of the node it is passed.
func walk[K cmp.Ordered](root *Node[K], fn func(f frame[K])) {
	if root == nil {
		return
	}

	stack := dynarray.New[frame[K]]()
	stack.PushBack(frame[K]{n: root, depth: 1})
	for stack.Len() > 0 {
		f := stack.PopBack()
		if f.n.right != nil {
			stack.PushBack(frame[K]{n: f.n.right, depth: f.depth + 1})
		}
		if f.n.left != nil {
			stack.PushBack(frame[K]{n: f.n.left, depth: f.depth + 1})
		}
		fn(f)
	}
}

// Len returns the number of nodes in the tree, including removed nodes that
// have not been purged yet.
func Len[K cmp.Ordered](root *Node[K]) int {
	n := 0
	walk(root, func(frame[K]) { n++ })
	return n
}

// Height returns the number of levels in the tree. An empty tree has a height
// of 0 and a single node a height of 1.
func Height[K cmp.Ordered](root *Node[K]) int {
	h := 0
	walk(root, func(f frame[K]) {
		if f.depth > h {
			h = f.depth
		}
	})
	return h
}

// Destroy releases every node in the tree. Nothing in the tree may be used
// afterwards.
func Destroy[K cmp.Ordered](root *Node[K]) {
	if root == nil {
		return
	}

	// Pre-order: children are pushed before their parent is released.
	stack := dynarray.New[*Node[K]]()
	stack.PushBack(root)
	for stack.Len() > 0 {
		n := stack.PopBack()
		if n.left != nil {
			stack.PushBack(n.left)
		}
		if n.right != nil {
			stack.PushBack(n.right)
		}
		n.release()
	}
}
