package lazybst

import "cmp"

// swapPayload exchanges the key and removal state of two nodes. Rotations use
// this instead of moving nodes so whatever points at the rotated node (a parent
// or the caller's root) still points at the top of the rotated subtree.
func swapPayload[K cmp.Ordered](x, y *Node[K]) {
	x.key, y.key = y.key, x.key
	x.valid, y.valid = y.valid, x.valid
}

/*
rotateRight rotates at d, which must have a left child b.

	     d            b
	    / \          / \
	   b   e   =>   a   d
	  / \              / \
	 a   c            c   e

d keeps its identity and afterwards holds b's payload.
*/
func rotateRight[K cmp.Ordered](d *Node[K]) {
	b := d.left
	if b == nil {
		return
	}
	a, c, e := b.left, b.right, d.right

	swapPayload(d, b)
	d.left, d.right = a, b
	b.left, b.right = c, e
}

/*
rotateLeft rotates at b, which must have a right child d.

	   b                d
	  / \              / \
	 a   d     =>     b   e
	    / \          / \
	   c   e        a   c

b keeps its identity and afterwards holds d's payload.
*/
func rotateLeft[K cmp.Ordered](b *Node[K]) {
	d := b.right
	if d == nil {
		return
	}
	a, c, e := b.left, d.left, d.right

	swapPayload(b, d)
	d.left, d.right = a, c
	b.left, b.right = d, e
}
