package arrTree

import (
	"cmp"

	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/g-m-twostay/go-splay/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.OrderedSet[int] = (*Tree[int, uint32])(nil)

// Tree is a splay tree whose nodes live in one slice and refer to each other by
// index, so inserting doesn't allocate once the slice has grown. Removed
// indexes are kept in a free list and filled first by later inserts.
// Splaying is top down: the search path is split into a left and a right tree
// while descending and reassembled at the end, so nodes need no parent index.
// S is the index type; it must be wide enough to hold Size()+1.
// A Tree isn't safe for concurrent use, not even for concurrent calls to Search.
type Tree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i-1] corresponds to ifs[i]
}

// New returns an empty Tree with room for hint values.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	return &Tree[T, S]{base[S]{ifs: ifs}, make([]T, 0, hint)}
}

// From a given value array, directly build a balanced tree. The array must be
// sorted in ascending order without duplicates. If safe==true, From checks this
// and panics with Trees.InvalidSliceError when it's broken. The array is handed
// to the tree and mustn't be modified by the caller later.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *Tree[T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if vs[i-1] >= vs[i] {
				panic(Trees.InvalidSliceError{Index: i, Prev: vs[i-1], Next: vs[i]})
			}
		}
	}
	root, ifs := buildIfs(S(len(vs)), cap(vs)+1)
	return &Tree[T, S]{base[S]{root: root, n: S(len(vs)), ifs: ifs}, vs}
}

func (u *Tree[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// splay the subtree rooting at t by v, returning the new root of the subtree:
// the index holding v, or the last index visited looking for it.
// ifs[0] is the header: its r collects the left tree and its l the right tree.
// Time: amortized O(log n)
func (u *Tree[T, S]) splay(t S, v T) S {
	var lt, rt S // the largest of the left tree and the smallest of the right tree, 0 being the header.
	for {
		if c := cmp.Compare(v, *u.getV(t)); c < 0 {
			if u.ifs[t].l == 0 {
				break
			}
			if v < *u.getV(u.ifs[t].l) { // zig-zig
				u.rotateRight(&t)
				if u.ifs[t].l == 0 {
					break
				}
			}
			u.ifs[rt].l, rt = t, t
			t = u.ifs[t].l
		} else if c > 0 {
			if u.ifs[t].r == 0 {
				break
			}
			if v > *u.getV(u.ifs[t].r) { // zig-zig
				u.rotateLeft(&t)
				if u.ifs[t].r == 0 {
					break
				}
			}
			u.ifs[lt].r, lt = t, t
			t = u.ifs[t].r
		} else {
			break
		}
	}
	u.ifs[lt].r, u.ifs[rt].l = u.ifs[t].l, u.ifs[t].r
	u.ifs[t].l, u.ifs[t].r = u.ifs[0].r, u.ifs[0].l
	u.ifs[0] = info[S]{}
	return t
}

// alloc an index for v, reusing a free one first.
func (u *Tree[T, S]) alloc(v T) (i S) {
	if i = u.popFree(); i == 0 {
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
		return S(len(u.ifs) - 1)
	}
	*u.getV(i) = v
	u.ifs[i] = info[S]{}
	return i
}

// Search reports whether v is in the tree, splaying the index holding v, or
// the last index visited, to the root.
func (u *Tree[T, S]) Search(v T) bool {
	if u.root == 0 {
		return false
	}
	u.root = u.splay(u.root, v)
	return *u.getV(u.root) == v
}

// Insert v and make it the root. Returns false if v was already present, in
// which case the existing index becomes the root.
func (u *Tree[T, S]) Insert(v T) bool {
	if u.root == 0 {
		u.root = u.alloc(v)
		u.n++
		return true
	}
	if u.root = u.splay(u.root, v); *u.getV(u.root) == v {
		return false
	}
	// v falls between the root and its neighbour on one side, so the root is split there.
	ni := u.alloc(v)
	if r := &u.ifs[u.root]; v < *u.getV(u.root) {
		u.ifs[ni] = info[S]{r.l, u.root}
		r.l = 0
	} else {
		u.ifs[ni] = info[S]{u.root, r.r}
		r.r = 0
	}
	u.root = ni
	u.n++
	return true
}

// Delete v from the tree. Returns false if v is absent; the last visited index
// is splayed to the root either way. The left subtree is splayed by v as well,
// which runs off its right edge and lifts its largest value, leaving it no
// right child to adopt the right subtree with.
func (u *Tree[T, S]) Delete(v T) bool {
	if !u.Search(v) {
		return false
	}
	old := u.root
	if l, r := u.ifs[old].l, u.ifs[old].r; l == 0 {
		u.root = r
	} else {
		u.root = u.splay(l, v)
		u.ifs[u.root].r = r
	}
	*u.getV(old) = *new(T)
	u.addFree(old)
	u.n--
	return true
}

// InOrder traversal of the tree, calling f until it returns false. st is used
// as the stack and returned for reuse. f mustn't modify the tree.
func (u *Tree[T, S]) InOrder(f func(*T) bool, st []S) []S {
	return u.walk(func(i S) bool { return f(u.getV(i)) }, st)
}

// Range calls f on each value in ascending order until f returns false.
func (u *Tree[T, S]) Range(f func(T) bool) {
	u.walk(func(i S) bool { return f(*u.getV(i)) }, nil)
}

// Root returns the value at the root, which is the last accessed value.
func (u *Tree[T, S]) Root() (v T, has bool) {
	if u.root != 0 {
		v, has = *u.getV(u.root), true
	}
	return
}

// Minimum value of the tree. Doesn't splay.
func (u *Tree[T, S]) Minimum() (v T, has bool) {
	if i := u.root; i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
		v, has = *u.getV(i), true
	}
	return
}

// Maximum value of the tree. Doesn't splay.
func (u *Tree[T, S]) Maximum() (v T, has bool) {
	if i := u.root; i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
		v, has = *u.getV(i), true
	}
	return
}

// Clear the tree, also resets memory of underlying value array if reset is true.
// O(1) if reset==false. O(size) if reset==true. Doesn't allocate new arrays.
func (u *Tree[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
		clear(u.ifs)
	}
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.n = 0, 0, 0
}

// Corrupt returns whether the tree breaks strict ordering, reaches an index
// twice, or disagrees with its size.
func (u *Tree[T, S]) Corrupt() bool {
	if u.ifs[0] != (info[S]{}) {
		return true
	}
	var count S
	var prev *T
	bad := false
	u.walk(func(i S) bool {
		if v := u.getV(i); prev != nil && *prev >= *v {
			bad = true
		} else {
			prev = v
		}
		count++
		return !bad && count <= u.n
	}, nil)
	return bad || count != u.n
}
