package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-splay/Queues"
)

// SplayTree is a self adjusting binary search tree with no repeated values.
// Every access splays the node it ends on to the root, so recently used values
// stay near the top and every operation costs amortized O(log n).
// The tree keeps parent links in each node and splays bottom up.
// Note that Search changes the shape of the tree even though it never changes
// its content. A SplayTree isn't safe for concurrent use, not even for
// concurrent calls to Search.
// SplayTree shouldn't be created directly using struct literal, use New or NewFunc.
type SplayTree[T any] struct {
	root *node[T]
	size uint
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(T, T) int
}

// New returns an empty SplayTree ordered by cmp.Compare.
func New[T cmp.Ordered]() *SplayTree[T] {
	return &SplayTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty SplayTree ordered by c. c must define a strict total order.
func NewFunc[T any](c func(T, T) int) *SplayTree[T] {
	return &SplayTree[T]{cmp: c}
}

// Build a SplayTree from the given sorted slice. The result is perfectly
// balanced, which is faster than repeatedly calling Insert.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements. If safe==true, Build checks this and panics with
// InvalidSliceError when it's broken; otherwise it's up to the caller.
// Time: O(n).
func Build[T cmp.Ordered](sli []T, safe bool) *SplayTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T, *node[T]) *node[T]
	build = func(s []T, p *node[T]) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	return &SplayTree[T]{root: build(sli, nil), size: uint(len(sli)), cmp: cmp.Compare[T]}
}

// splay moves x to the root by zig, zig-zig and zig-zag steps.
// Time: O(depth of x)
func (u *SplayTree[T]) splay(x *node[T]) {
	for p := x.p; p != nil; p = x.p {
		if g := p.p; g == nil { // zig
			if p.l == x {
				u.rotateRight(p)
			} else {
				u.rotateLeft(p)
			}
		} else if left := p.l == x; left == (g.l == p) { // zig-zig, grandparent first
			if left {
				u.rotateRight(g)
				u.rotateRight(p)
			} else {
				u.rotateLeft(g)
				u.rotateLeft(p)
			}
		} else { // zig-zag, parent first
			if left {
				u.rotateRight(p)
				u.rotateLeft(g)
			} else {
				u.rotateLeft(p)
				u.rotateRight(g)
			}
		}
	}
}

// find descends from the root looking for v. It returns the matched node and
// true on a hit, or the last visited node and false on a miss; the node is nil
// only when the tree is empty. find doesn't splay.
func (u *SplayTree[T]) find(v T) (last *node[T], found bool) {
	for cur := u.root; cur != nil; {
		last = cur
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur, true
		}
	}
	return last, false
}

// Search reports whether v is in the tree. The matched node, or the last node
// visited when v is absent, is splayed to the root.
// Time: amortized O(log n)
func (u *SplayTree[T]) Search(v T) bool {
	last, found := u.find(v)
	if last != nil {
		u.splay(last)
	}
	return found
}

// Insert v into the tree and splay its node to the root. Returns false when v
// was already present, in which case the existing node is splayed and nothing
// is allocated.
// Time: amortized O(log n)
func (u *SplayTree[T]) Insert(v T) bool {
	last, found := u.find(v)
	if found {
		u.splay(last)
		return false
	}
	n := &node[T]{v: v, p: last}
	if last == nil {
		u.root = n
	} else if u.cmp(v, last.v) < 0 {
		last.l = n
	} else {
		last.r = n
	}
	u.size++
	u.splay(n)
	return true
}

// Delete v from the tree. Returns false when v is absent; the miss still
// splays the last visited node. On a hit the largest value of the left subtree
// is splayed to the top of that subtree and becomes the new root, adopting the
// right subtree.
// Time: amortized O(log n)
func (u *SplayTree[T]) Delete(v T) bool {
	if !u.Search(v) {
		return false
	}
	x := u.root
	l, r := x.l, x.r
	x.l, x.r = nil, nil
	if r != nil {
		r.p = nil
	}
	if l == nil {
		u.root = r
	} else {
		l.p = nil
		u.root = l
		m := rightmost(l)
		u.splay(m)
		m.r = r
		if r != nil {
			r.p = m
		}
	}
	u.size--
	return true
}

// Size returns the number of values in the tree.
// Time: O(1)
func (u *SplayTree[T]) Size() uint {
	return u.size
}

// Clear the tree. O(1), the nodes are left to the garbage collector.
func (u *SplayTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Root returns the value at the root, which is the last accessed value.
func (u *SplayTree[T]) Root() (v T, has bool) {
	if u.root != nil {
		v, has = u.root.v, true
	}
	return
}

// Minimum value of the tree. Doesn't splay.
// Time: O(D)
func (u *SplayTree[T]) Minimum() (v T, has bool) {
	if n := leftmost(u.root); n != nil {
		v, has = n.v, true
	}
	return
}

// Maximum value of the tree. Doesn't splay.
// Time: O(D)
func (u *SplayTree[T]) Maximum() (v T, has bool) {
	if n := rightmost(u.root); n != nil {
		v, has = n.v, true
	}
	return
}

// InOrder [Tree.InOrder]
// The iterator walks parent links, so it never modifies the tree and can be
// abandoned at any point.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *SplayTree[T]) InOrder() func() (T, bool) {
	cur := leftmost(u.root)
	return func() (v T, has bool) {
		if cur != nil {
			v, has = cur.v, true
			cur = successor(cur)
		}
		return
	}
}

// Range calls f on each value in ascending order until f returns false.
func (u *SplayTree[T]) Range(f func(T) bool) {
	for cur := leftmost(u.root); cur != nil && f(cur.v); cur = successor(cur) {
	}
}

// Levels returns the values of each depth from left to right, the root being
// level 0. Doesn't splay.
func (u *SplayTree[T]) Levels() (ls [][]T) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		width := q.Size()
		level := make([]T, 0, width)
		for range width {
			n, _ := q.Pop()
			level = append(level, n.v)
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
		ls = append(ls, level)
	}
	return
}

func (u *SplayTree[T]) maxDepth(c *node[T], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth of the tree, 0 for a tree of one value. Recursive.
func (u *SplayTree[T]) MaxDepth() uint {
	if u.root == nil {
		return 0
	}
	return u.maxDepth(u.root, 0)
}

// Corrupt [Tree.Corrupt]
// Checks strict ordering, parent links against child links, and the size.
// Time: O(n); Space: O(1)
func (u *SplayTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.p != nil {
		return true
	}
	var count uint
	var prev *node[T]
	for cur := leftmost(u.root); cur != nil; cur = successor(cur) {
		if (cur.l != nil && cur.l.p != cur) || (cur.r != nil && cur.r.p != cur) {
			return true
		}
		if prev != nil && u.cmp(prev.v, cur.v) >= 0 {
			return true
		}
		if prev, count = cur, count+1; count > u.size {
			return true
		}
	}
	return count != u.size
}
