package arrTree

import (
	"math/bits"

	"github.com/g-m-twostay/go-splay/Trees"
	"golang.org/x/exp/constraints"
)

// A node in the Tree. l and r are indexes into base.ifs, 0 meaning absent.
// The zero value is meaningful.
type info[S constraints.Unsigned] struct {
	l, r S
}

type base[S constraints.Unsigned] struct {
	root, free, n S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs           []info[S] // ifs[0] is the nil index, and the header of splay while it runs; it's all zero otherwise.
}

// rotateLeft at *ni, *ni is replaced with its right child.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(ni *S) {
	n := &u.ifs[*ni]
	rci := n.r
	if rci == 0 {
		panic(Trees.RotationError{Left: true})
	}
	n.r = u.ifs[rci].l
	u.ifs[rci].l = *ni
	*ni = rci
}

// rotateRight at *ni, *ni is replaced with its left child.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(ni *S) {
	n := &u.ifs[*ni]
	lci := n.l
	if lci == 0 {
		panic(Trees.RotationError{Left: false})
	}
	n.l = u.ifs[lci].r
	u.ifs[lci].r = *ni
	*ni = lci
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{u.free, 0}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// Size of the tree.
func (u *base[S]) Size() uint {
	return uint(u.n)
}

func (u *base[S]) maxDepth(i S, cd uint) uint {
	if i == 0 {
		return cd - 1
	}
	return max(u.maxDepth(u.ifs[i].l, cd+1), u.maxDepth(u.ifs[i].r, cd+1))
}

// MaxDepth of the tree, 0 for a tree of one value. Recursive.
func (u *base[S]) MaxDepth() uint {
	if u.root == 0 {
		return 0
	}
	return u.maxDepth(u.root, 0)
}

// walk the indexes in order with a stack, which is returned for reuse.
func (u *base[S]) walk(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// overflowMid is equivalent to (a+b)/2 but deals with overflow.
func overflowMid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildIfs array of size vsLen to represent a complete binary tree.
func buildIfs[S constraints.Unsigned](vsLen S, capHint int) (root S, ifs []info[S]) {
	ifs = make([]info[S], vsLen+1, max(int(vsLen)+1, capHint))
	if vsLen == 0 {
		return
	}
	st := make([][3]S, 0, bits.Len64(uint64(vsLen))) //[left,right,mid]
	root = overflowMid(1, vsLen)
	st = append(st, [3]S{1, vsLen, root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = overflowMid(top[0], nr)
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = overflowMid(nl, top[1])
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}
