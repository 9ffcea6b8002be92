package Trees

import "golang.org/x/exp/constraints"

// Node is a single element of a BSTree. It owns its children exclusively;
// there are no parent links. Node references handed out by traversals are
// read-only views: the tree may overwrite the value of a node or unlink it
// on the next mutation.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// height of the subtree rooting at n. Recursive.
func height[T constraints.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}

// clone the subtree rooting at n top-down. The returned subtree shares no
// node with the source.
func clone[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{v: n.v}
	c.l = clone(n.l)
	c.r = clone(n.r)
	return c
}

// release the subtree rooting at n in post-order, cutting every link so that
// references held outside the tree don't keep the rest of it reachable.
// Returns the number of released nodes.
func release[T constraints.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	c := release(n.l) + release(n.r) + 1
	n.l, n.r = nil, nil
	return c
}

// removeOne deletes the first node equal to v found by the search from cur.
// It returns the replacement of cur, which the caller stores back into the
// slot cur came from, and whether a node was deleted.
func removeOne[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = removeOne(cur.l, v)
	} else if v == cur.v {
		return unlink(cur), true
	} else {
		cur.r, deleted = removeOne(cur.r, v)
	}
	return cur, deleted
}

// removeAll deletes every node equal to v from the subtree rooting at cur.
func removeAll[T constraints.Ordered](cur *Node[T], v T) (*Node[T], uint) {
	var c uint
	for deleted := true; deleted; {
		if cur, deleted = removeOne(cur, v); deleted {
			c++
		}
	}
	return cur, c
}

// unlink n from its subtree and return what takes its place.
func unlink[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n.l == nil {
		r := n.r
		n.r = nil
		return r
	} else if n.r == nil {
		l := n.l
		n.l = nil
		return l
	}
	s := leftmost(n.r).v
	rest, run := detachRun(n.r, s)
	n.v, n.r = s, rest
	// run holds every copy of s; one moved into n, the others stay on the
	// left of n so the right subtree keeps values strictly greater than n.v.
	if run.l != nil {
		rightmost(n.l).r = run.l
		run.l = nil
	}
	return n
}

// detachRun removes the run of nodes equal to s, the minimum of the subtree
// rooting at cur, from the leftmost path. The topmost node of the run is
// returned as run; the rest of the run is its left chain (nodes equal to the
// minimum can't have right children).
func detachRun[T constraints.Ordered](cur *Node[T], s T) (rest, run *Node[T]) {
	if s < cur.v {
		cur.l, run = detachRun(cur.l, s)
		return cur, run
	}
	rest, cur.r = cur.r, nil
	return rest, cur
}

// removeDuplicates in post-order. Returns the number of removed nodes.
func removeDuplicates[T constraints.Ordered](cur *Node[T]) uint {
	if cur == nil {
		return 0
	}
	c := removeDuplicates(cur.l) + removeDuplicates(cur.r)
	var d uint
	cur.l, d = removeAll(cur.l, cur.v)
	c += d
	cur.r, d = removeAll(cur.r, cur.v)
	return c + d
}

func leftmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// corrupt checks that every value of the subtree rooting at n lies in
// (lo, hi], where a nil bound is open. Returns the node count along with the
// verdict.
func corrupt[T constraints.Ordered](n *Node[T], lo, hi *T) (uint, bool) {
	if n == nil {
		return 0, false
	}
	if (lo != nil && !(*lo < n.v)) || (hi != nil && !(n.v <= *hi)) {
		return 0, true
	}
	lc, bad := corrupt(n.l, lo, &n.v)
	if bad {
		return 0, true
	}
	rc, bad := corrupt(n.r, &n.v, hi)
	return lc + rc + 1, bad
}
