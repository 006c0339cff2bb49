package Trees

// A node in the SplayTree.
// l and r are owned by the node; p is a back link kept in sync by the rotations
// and is never used to decide whether a node is alive.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

// leftmost node of the subtree rooting at n, or nil if n is nil.
func leftmost[T any](n *node[T]) *node[T] {
	if n != nil {
		for n.l != nil {
			n = n.l
		}
	}
	return n
}

// rightmost node of the subtree rooting at n, or nil if n is nil.
func rightmost[T any](n *node[T]) *node[T] {
	if n != nil {
		for n.r != nil {
			n = n.r
		}
	}
	return n
}

// successor of n in in-order, climbing through parent links when n has no right subtree.
// Time: amortized O(1) over a full traversal.
func successor[T any](n *node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	p := n.p
	for p != nil && p.r == n {
		n, p = p, p.p
	}
	return p
}

// slot returns the reference that holds n: the child field of its parent, or
// the root of u when n has no parent.
func (u *SplayTree[T]) slot(n *node[T]) **node[T] {
	if p := n.p; p == nil {
		return &u.root
	} else if p.l == n {
		return &p.l
	} else {
		return &p.r
	}
}

// rotateLeft performs a left rotation on n: n.r takes the place of n and n
// becomes its left child. Panics with RotationError if n.r is nil.
// Time: O(1); Space: O(1)
func (u *SplayTree[T]) rotateLeft(n *node[T]) {
	rc := n.r
	if rc == nil {
		panic(RotationError{Left: true})
	}
	*u.slot(n) = rc
	rc.p = n.p
	if n.r = rc.l; n.r != nil {
		n.r.p = n
	}
	rc.l, n.p = n, rc
}

// rotateRight performs a right rotation on n: n.l takes the place of n and n
// becomes its right child. Panics with RotationError if n.l is nil.
// Time: O(1); Space: O(1)
func (u *SplayTree[T]) rotateRight(n *node[T]) {
	lc := n.l
	if lc == nil {
		panic(RotationError{Left: false})
	}
	*u.slot(n) = lc
	lc.p = n.p
	if n.l = lc.r; n.l != nil {
		n.l.p = n
	}
	lc.r, n.p = n, lc
}
