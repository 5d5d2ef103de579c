package lazybst

import (
	"testing"
)

func TestRightRotation(t *testing.T) {
	d := &Node[int]{
		key:   40,
		valid: true,
		left: &Node[int]{
			key: 20,
			left: &Node[int]{
				key:   10,
				valid: true,
			},
			right: &Node[int]{
				key:   30,
				valid: true,
			},
		},
		right: &Node[int]{
			key:   50,
			valid: true,
		},
	}
	b := d.left

	rotateRight(d)

	if got, want := shape(d), "20!(10,40(30,50))"; got != want {
		t.Errorf("TestRightRotation: got %s, want %s", got, want)
	}
	if d.right != b {
		t.Errorf("TestRightRotation: the old left child should now be the right child")
	}
}

func TestLeftRotation(t *testing.T) {
	b := &Node[int]{
		key:   20,
		valid: true,
		left: &Node[int]{
			key:   10,
			valid: true,
		},
		right: &Node[int]{
			key: 40,
			left: &Node[int]{
				key:   30,
				valid: true,
			},
			right: &Node[int]{
				key:   50,
				valid: true,
			},
		},
	}
	d := b.right

	rotateLeft(b)

	if got, want := shape(b), "40!(20(10,30),50)"; got != want {
		t.Errorf("TestLeftRotation: got %s, want %s", got, want)
	}
	if b.left != d {
		t.Errorf("TestLeftRotation: the old right child should now be the left child")
	}
}

func TestRotationInverse(t *testing.T) {
	root := makeTree(t, "dbeacfg")
	want := shape(root)

	rotateRight(root)
	if got := shape(root); got != "b(a,d(c,e(-,f(-,g))))" {
		t.Errorf("TestRotationInverse: after rotateRight(): got %s", got)
	}
	rotateLeft(root)
	if got := shape(root); got != want {
		t.Errorf("TestRotationInverse: after rotateLeft(): got %s, want %s", got, want)
	}
}

func TestRotationWithoutChild(t *testing.T) {
	n := New(1)
	rotateRight(n)
	rotateLeft(n)
	if got := shape(n); got != "1" {
		t.Errorf("TestRotationWithoutChild: got %s, want 1", got)
	}
}
