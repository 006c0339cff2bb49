package Trees

import "github.com/g-m-twostay/go-splay/Sets"

// Tree represents an ordered set implemented using nodes that restructures
// itself on access.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false bool) and x should not be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	Sets.OrderedSet[T]
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, and Search
	//counts as a modification here.
	InOrder() func() (T, bool)
	//Levels of the tree from the root down.
	Levels() [][]T
	//MaxDepth of the tree.
	MaxDepth() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*SplayTree[int])(nil)
