package lazybst

import (
	"cmp"
	"fmt"

	"github.com/johnsiilver/lazytree/container/dynarray"
	"github.com/xlab/treeprint"
)

// removedMark is appended to the label of removed nodes by String().
const removedMark = " (removed)"

func label[K cmp.Ordered](n *Node[K]) string {
	if n.valid {
		return fmt.Sprint(n.key)
	}
	return fmt.Sprint(n.key) + removedMark
}

type printFrame[K cmp.Ordered] struct {
	n      *Node[K]
	branch treeprint.Tree
}

// String renders the tree, one node per line. Children are tagged [L] or [R].
//
//	d
//	├── [L]  b
//	│   └── [L]  a
//	└── [R]  e (removed)
func (n *Node[K]) String() string {
	if n == nil {
		return "<empty>"
	}

	tree := treeprint.NewWithRoot(label(n))
	stack := dynarray.New[printFrame[K]]()
	stack.PushBack(printFrame[K]{n: n, branch: tree})
	for stack.Len() > 0 {
		f := stack.PopBack()
		if f.n.left != nil {
			b := f.branch.AddMetaBranch("L", label(f.n.left))
			stack.PushBack(printFrame[K]{n: f.n.left, branch: b})
		}
		if f.n.right != nil {
			b := f.branch.AddMetaBranch("R", label(f.n.right))
			stack.PushBack(printFrame[K]{n: f.n.right, branch: b})
		}
	}
	return tree.String()
}
