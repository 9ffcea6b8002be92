package Trees

import (
	"iter"

	"github.com/g-m-twostay/bintree/Queues"
	"golang.org/x/exp/constraints"
)

// walk calls f on the nodes of the tree in order o until f returns false.
// Unknown orders visit nothing.
func (u *BSTree[T]) walk(o Order, f func(*Node[T]) bool) {
	switch o {
	case PreOrder:
		preOrder(u.root, f)
	case InOrder:
		inOrder(u.root, f)
	case PostOrder:
		postOrder(u.root, f)
	case LevelOrder:
		levelOrder(u.root, f)
	}
}

// The recursive walks return false once f asked to stop, which unwinds the
// whole recursion without visiting anything else.

func preOrder[T constraints.Ordered](n *Node[T], f func(*Node[T]) bool) bool {
	return n == nil || f(n) && preOrder(n.l, f) && preOrder(n.r, f)
}

func inOrder[T constraints.Ordered](n *Node[T], f func(*Node[T]) bool) bool {
	return n == nil || inOrder(n.l, f) && f(n) && inOrder(n.r, f)
}

func postOrder[T constraints.Ordered](n *Node[T], f func(*Node[T]) bool) bool {
	return n == nil || postOrder(n.l, f) && postOrder(n.r, f) && f(n)
}

// levelOrder uses a queue as the frontier: every node of level k is popped
// before the first node of level k+1, left to right. The walk ends when the
// frontier runs dry, which is when a level turns out empty.
func levelOrder[T constraints.Ordered](root *Node[T], f func(*Node[T]) bool) {
	if root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		if !f(n) {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
}

// Traverse writes references to the nodes of u into dst in order o and
// returns how many were written. It stops without complaint when dst is
// full, so at most min(len(dst), Size()) slots are written and the first k
// of them are always the first k nodes of the order. Slots past the written
// prefix are left untouched.
// Time: O(min(len(dst), n)) for the depth first orders after descending to
// the first node, O(n) worst case; Space: O(D), O(width) for LevelOrder.
func (u *BSTree[T]) Traverse(o Order, dst []*Node[T]) (k int) {
	if len(dst) == 0 {
		return 0
	}
	u.walk(o, func(n *Node[T]) bool {
		dst[k] = n
		k++
		return k < len(dst)
	})
	return
}

// PreOrder is Traverse(PreOrder, dst). Recursive.
func (u *BSTree[T]) PreOrder(dst []*Node[T]) int {
	return u.Traverse(PreOrder, dst)
}

// InOrder is Traverse(InOrder, dst). Recursive.
func (u *BSTree[T]) InOrder(dst []*Node[T]) int {
	return u.Traverse(InOrder, dst)
}

// PostOrder is Traverse(PostOrder, dst). Recursive.
func (u *BSTree[T]) PostOrder(dst []*Node[T]) int {
	return u.Traverse(PostOrder, dst)
}

// Levels is Traverse(LevelOrder, dst).
func (u *BSTree[T]) Levels(dst []*Node[T]) int {
	return u.Traverse(LevelOrder, dst)
}

// All returns a sequence of the nodes of u in order o. The sequence is lazy
// and can be ranged over any number of times; breaking out of the loop
// stops the walk. The tree must not be modified during the iteration.
func (u *BSTree[T]) All(o Order) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		u.walk(o, yield)
	}
}

// Values [Tree.Values]
func (u *BSTree[T]) Values(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.walk(o, func(n *Node[T]) bool {
			return yield(n.v)
		})
	}
}
