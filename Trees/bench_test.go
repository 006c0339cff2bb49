package Trees

import (
	"slices"
	"testing"
)

var (
	bAddN = 1000000
	bQryN = bAddN / 2
)

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func create(b *testing.B, all []int) *SplayTree[int] {
	b.Helper()
	for i := range all {
		all[i] = rg.Int()
	}
	slices.Sort(all)
	return Build(slices.Compact(all), false)
}

func BenchmarkDel(b *testing.B) {
	all := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

var sideEff bool

func BenchmarkQry(b *testing.B) {
	all := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		m := slices.Max(all)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all[:bQryN] {
			sideEff = tree.Search(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Search(rg.Intn(m))
		}
	}
}

// BenchmarkQrySkewed searches a small hot set, which splaying keeps near the root.
func BenchmarkQrySkewed(b *testing.B) {
	all := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		hot := all[:64]
		b.StartTimer()
		for range bQryN {
			sideEff = tree.Search(hot[rg.Intn(len(hot))])
		}
	}
}
