// Package check drives a Sets.Set[int] through a sequence of operations and
// compares every outcome with two independent oracles from gods: an ordered set
// for the final traversal, and a hash set for membership.
package check

import (
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/gravitational/trace"
)

// Kind of an Op.
type Kind uint8

const (
	Insert Kind = iota
	Search
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Search:
		return "search"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is one call on the set under test.
type Op struct {
	Kind Kind
	Key  int
}

func (o Op) String() string {
	return fmt.Sprintf("%v(%d)", o.Kind, o.Key)
}

// Mix is the relative weight of Insert, Search and Delete in a Script.
type Mix [3]uint

// DefaultMix favours inserts so the set grows while it's being probed.
var DefaultMix = Mix{4, 3, 2}

// Script returns n operations on keys in [0, keyRange) drawn from rg by the
// weights of mix. The same rg state gives the same script.
func Script(rg *rand.Rand, n, keyRange int, mix Mix) ([]Op, error) {
	total := mix[0] + mix[1] + mix[2]
	if total == 0 {
		return nil, trace.BadParameter("mix %v has no weight", mix)
	}
	if keyRange <= 0 {
		return nil, trace.BadParameter("key range %d isn't positive", keyRange)
	}
	ops := make([]Op, n)
	for i := range ops {
		w, k := uint(rg.Intn(int(total))), Insert
		for ; w >= mix[k]; k++ {
			w -= mix[k]
		}
		ops[i] = Op{k, rg.Intn(keyRange)}
	}
	return ops, nil
}

// Report counts what a Run did.
type Report struct {
	Ops, Inserted, Duplicates, Hits, Misses, Deleted, Absent int
	// Final is the traversal of the set after the last op.
	Final []int
}

// Run applies ops to set in order and returns at the first outcome that
// disagrees with the oracles, with the index of the offending op. When set is
// also a Sets.OrderedSet, the root is checked after every hit and insert.
func Run(set Sets.Set[int], ops []Op) (Report, error) {
	var rep Report
	ordered := treeset.NewWithIntComparator()
	members := hashset.New()
	rooted, _ := set.(Sets.OrderedSet[int])
	set.Range(func(v int) bool {
		ordered.Add(v)
		members.Add(v)
		return true
	})

	for i, op := range ops {
		present := members.Contains(op.Key)
		if present != ordered.Contains(op.Key) {
			return rep, trace.CompareFailed("op %d %v: oracles disagree on membership", i, op)
		}
		var got, want bool
		switch op.Kind {
		case Insert:
			got, want = set.Insert(op.Key), !present
			ordered.Add(op.Key)
			members.Add(op.Key)
			if got {
				rep.Inserted++
			} else {
				rep.Duplicates++
			}
		case Search:
			got, want = set.Search(op.Key), present
			if got {
				rep.Hits++
			} else {
				rep.Misses++
			}
		case Delete:
			got, want = set.Delete(op.Key), present
			ordered.Remove(op.Key)
			members.Remove(op.Key)
			if got {
				rep.Deleted++
			} else {
				rep.Absent++
			}
		default:
			return rep, trace.BadParameter("op %d has unknown kind %v", i, op.Kind)
		}
		rep.Ops++
		if got != want {
			return rep, trace.CompareFailed("op %d %v: got %v, want %v", i, op, got, want)
		}
		if members.Size() != ordered.Size() {
			return rep, trace.CompareFailed("op %d %v: oracles disagree on size", i, op)
		}
		if set.Size() != uint(ordered.Size()) {
			return rep, trace.CompareFailed("op %d %v: size is %d, want %d", i, op, set.Size(), ordered.Size())
		}
		if rooted != nil && (op.Kind == Insert || op.Kind == Search && got) {
			if r, has := rooted.Root(); !has || r != op.Key {
				return rep, trace.CompareFailed("op %d %v: root is %d, want the accessed key", i, op, r)
			}
		}
	}

	want := ordered.Values()
	rep.Final = make([]int, 0, len(want))
	set.Range(func(v int) bool {
		rep.Final = append(rep.Final, v)
		return true
	})
	if len(rep.Final) != len(want) {
		return rep, trace.CompareFailed("final traversal has %d keys, want %d", len(rep.Final), len(want))
	}
	for i, v := range rep.Final {
		if v != want[i].(int) {
			return rep, trace.CompareFailed("final traversal has %d at %d, want %v", v, i, want[i])
		}
	}
	return rep, nil
}
