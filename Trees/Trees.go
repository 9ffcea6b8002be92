package Trees

import "iter"

// Tree represents a binary search tree implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), in which case
// x is the zero value of T and shouldn't be used.
// None of the methods fail: removing an absent value, traversing into a
// short destination and querying an empty tree are all no-ops or zero
// results. Methods implemented recursively are noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Push v to the Tree. Always succeeds.
	Push(v T)
	//Remove every element equal to v. Returns the number of removed elements.
	Remove(v T) uint
	//RemoveOne element equal to v. Returns false if v isn't in the Tree.
	RemoveOne(v T) bool
	//RemoveDuplicates so that each value is held by a single element.
	//Returns the number of removed elements.
	RemoveDuplicates() uint
	//Clear the Tree.
	Clear()
	//Height of the tree. 0 for an empty tree, 1 for a single element.
	Height() uint
	//Size of the tree.
	Size() uint
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Count the elements equal to v.
	Count(v T) uint
	//Values returns a sequence of all the values in the Tree in order o.
	//The Tree must not be modified during the iteration.
	Values(o Order) iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

// Order of a traversal.
type Order uint8

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, then the node, then the right subtree.
	// Values come out non-decreasing.
	InOrder
	// PostOrder visits the left subtree, then the right subtree, then the node.
	PostOrder
	// LevelOrder visits the tree breadth first, one level after another and
	// left to right within a level.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}
