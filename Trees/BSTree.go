package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree that allows repeated values.
// For every node, the values in its left subtree are less than or equal to
// its value, and the values in its right subtree are greater. Repeated values
// therefore always go to the left of the first one inserted.
// The zero value is an empty tree ready to use. BSTree isn't safe for
// concurrent use if any goroutine modifies it; read only methods may run
// concurrently with each other.
// The height D of the tree depends entirely on the insertion order; pushing
// sorted values degrades it into a chain with D=n.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	size uint
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// From builds a BSTree by pushing the values of sli in order.
func From[T constraints.Ordered](sli ...T) *BSTree[T] {
	u := New[T]()
	for _, v := range sli {
		u.Push(v)
	}
	return u
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.size
}

// Push [Tree.Push]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Push(v T) {
	u.size++
	slot := &u.root
	for cur := *slot; cur != nil; cur = *slot {
		if v <= cur.v {
			slot = &cur.l
		} else {
			slot = &cur.r
		}
	}
	*slot = &Node[T]{v: v}
}

// Remove [Tree.Remove]. Recursive.
// It repeats the search from the root until no element equal to v is left.
// A node that has two children isn't unlinked: it takes the value of its
// in-order successor, whose node is unlinked instead. References to either
// node obtained before the call are stale afterward.
// Time: O(k*D) where k is the number of removed elements.
func (u *BSTree[T]) Remove(v T) uint {
	var c uint
	u.root, c = removeAll(u.root, v)
	u.size -= c
	return c
}

// RemoveOne [Tree.RemoveOne]. Recursive.
// Time: O(D)
func (u *BSTree[T]) RemoveOne(v T) (deleted bool) {
	if u.root, deleted = removeOne(u.root, v); deleted {
		u.size--
	}
	return
}

// RemoveDuplicates [Tree.RemoveDuplicates]. Recursive.
// Children are processed before their parent; then every copy of the
// parent's value is removed from both of its subtrees. Afterward the
// in-order values are strictly increasing.
// Time: O(n*D)
func (u *BSTree[T]) RemoveDuplicates() uint {
	c := removeDuplicates(u.root)
	u.size -= c
	return c
}

// Clear [Tree.Clear]. Recursive.
// Nodes are released in post-order and lose their links to children.
// Time: O(n)
func (u *BSTree[T]) Clear() {
	release(u.root)
	u.root, u.size = nil, 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Height() uint {
	return height(u.root)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Count [Tree.Count]
// Every copy of v lies on the search path of v, so a single descent finds
// them all.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Count(v T) (c uint) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			c++
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Copy replaces the content of u with a deep copy of other. Recursive.
// u shares no node with other afterward. Copying a tree onto itself does
// nothing, and copying nil clears u.
// Time: O(n+m)
func (u *BSTree[T]) Copy(other *BSTree[T]) {
	if u == other {
		return
	}
	u.Clear()
	if other != nil {
		u.root, u.size = clone(other.root), other.size
	}
}

// Clone returns an independent deep copy of u. Recursive.
// Time: O(n)
func (u *BSTree[T]) Clone() *BSTree[T] {
	c := New[T]()
	c.Copy(u)
	return c
}

// Corrupt [Tree.Corrupt]. Recursive.
// Reports whether some node breaks the ordering or the recorded size is off.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	n, bad := corrupt[T](u.root, nil, nil)
	return bad || n != u.size
}

var _ Tree[int] = (*BSTree[int])(nil)
