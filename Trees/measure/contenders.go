package main

import (
	"slices"
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/g-m-twostay/go-splay/Trees/arrTree"
	"github.com/google/btree"
	"github.com/gravitational/trace"
	"github.com/petar/GoLLRB/llrb"
)

// batchSet is what a timed batch needs from an implementation.
type batchSet interface {
	Insert(int) bool
	Search(int) bool
}

// contender is one implementation the harness can build. ordered contenders
// also satisfy Sets.Set[int] and can be checked.
type contender struct {
	name    string
	ordered bool
	make    func(hint int) batchSet
}

var contenders = []contender{
	{"splay", true, func(int) batchSet { return Trees.New[int]() }},
	{"arena", true, func(hint int) batchSet { return arrTree.New[int](uint32(hint)) }},
	{"btree", true, func(int) batchSet { return &bTree{btree.NewOrderedG[int](32)} }},
	{"llrb", true, func(int) batchSet { return &llrbTree{llrb.New()} }},
	{"rbtree", true, func(int) batchSet { return &rbTree{rbt.NewWithIntComparator()} }},
	{"haxmap", false, func(hint int) batchSet { return &haxSet{haxmap.New[int, struct{}](uintptr(max(hint, 8)))} }},
	{"hashmap", false, func(hint int) batchSet { return &hashSet{hashmap.NewSized[int, struct{}](uintptr(max(hint, 8)))} }},
}

// pick the contenders by name, all of them when names is empty.
func pick(names []string, orderedOnly bool) ([]contender, error) {
	if len(names) == 0 {
		names = make([]string, 0, len(contenders))
		for _, c := range contenders {
			if c.ordered || !orderedOnly {
				names = append(names, c.name)
			}
		}
	}
	cs := make([]contender, 0, len(names))
	for _, n := range names {
		i := slices.IndexFunc(contenders, func(c contender) bool { return c.name == strings.TrimSpace(n) })
		if i < 0 {
			return nil, trace.BadParameter("unknown implementation %q", n)
		}
		if orderedOnly && !contenders[i].ordered {
			return nil, trace.BadParameter("implementation %q isn't an ordered set", n)
		}
		cs = append(cs, contenders[i])
	}
	return cs, nil
}

type bTree struct {
	t *btree.BTreeG[int]
}

func (u *bTree) Insert(v int) bool {
	_, replaced := u.t.ReplaceOrInsert(v)
	return !replaced
}

func (u *bTree) Search(v int) bool {
	return u.t.Has(v)
}

func (u *bTree) Delete(v int) bool {
	_, found := u.t.Delete(v)
	return found
}

func (u *bTree) Size() uint {
	return uint(u.t.Len())
}

func (u *bTree) Range(f func(int) bool) {
	u.t.Ascend(f)
}

type llrbTree struct {
	t *llrb.LLRB
}

func (u *llrbTree) Insert(v int) bool {
	return u.t.ReplaceOrInsert(llrb.Int(v)) == nil
}

func (u *llrbTree) Search(v int) bool {
	return u.t.Has(llrb.Int(v))
}

func (u *llrbTree) Delete(v int) bool {
	return u.t.Delete(llrb.Int(v)) != nil
}

func (u *llrbTree) Size() uint {
	return uint(u.t.Len())
}

func (u *llrbTree) Range(f func(int) bool) {
	if m := u.t.Min(); m != nil {
		u.t.AscendGreaterOrEqual(m, func(i llrb.Item) bool {
			return f(int(i.(llrb.Int)))
		})
	}
}

type rbTree struct {
	t *rbt.Tree
}

func (u *rbTree) Insert(v int) bool {
	if _, found := u.t.Get(v); found {
		return false
	}
	u.t.Put(v, struct{}{})
	return true
}

func (u *rbTree) Search(v int) bool {
	_, found := u.t.Get(v)
	return found
}

func (u *rbTree) Delete(v int) bool {
	if _, found := u.t.Get(v); !found {
		return false
	}
	u.t.Remove(v)
	return true
}

func (u *rbTree) Size() uint {
	return uint(u.t.Size())
}

func (u *rbTree) Range(f func(int) bool) {
	for it := u.t.Iterator(); it.Next() && f(it.Key().(int)); {
	}
}

// haxSet and hashSet are unordered baselines, they're only timed. They never
// delete: batches only insert and search.
type haxSet struct {
	m *haxmap.Map[int, struct{}]
}

func (u *haxSet) Insert(v int) bool {
	_, loaded := u.m.GetOrSet(v, struct{}{})
	return !loaded
}

func (u *haxSet) Search(v int) bool {
	_, in := u.m.Get(v)
	return in
}

type hashSet struct {
	m *hashmap.Map[int, struct{}]
}

func (u *hashSet) Insert(v int) bool {
	return u.m.Insert(v, struct{}{})
}

func (u *hashSet) Search(v int) bool {
	_, in := u.m.Get(v)
	return in
}

var (
	_ Sets.Set[int] = (*bTree)(nil)
	_ Sets.Set[int] = (*llrbTree)(nil)
	_ Sets.Set[int] = (*rbTree)(nil)
)
