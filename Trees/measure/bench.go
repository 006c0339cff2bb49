package main

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// batchKeys are the keys of one batch: n keys to insert, then n keys to search,
// every other one taken from the inserted keys.
type batchKeys struct {
	insert, search []int
}

// makeBatches draws the keys of every batch up front so each contender sees the
// same workload and key generation stays out of the timings.
func makeBatches(rg *rand.Rand, batches, n int) []batchKeys {
	bs := make([]batchKeys, batches)
	for i := range bs {
		b := batchKeys{make([]int, n), make([]int, n)}
		for j := range b.insert {
			b.insert[j] = rg.Int()
		}
		for j := range b.search {
			if j&1 == 0 {
				b.search[j] = b.insert[rg.Intn(n)]
			} else {
				b.search[j] = rg.Int()
			}
		}
		bs[i] = b
	}
	return bs
}

// result of timing one contender, per batch.
type result struct {
	name           string
	insert, search []time.Duration
	hits           int
}

// timeBatches builds one instance of c and times each batch's inserts and
// searches separately with the wall clock.
func timeBatches(log *slog.Logger, c contender, bs []batchKeys) result {
	hint := 0
	for _, b := range bs {
		hint += len(b.insert)
	}
	set := c.make(hint)
	res := result{name: c.name, insert: make([]time.Duration, len(bs)), search: make([]time.Duration, len(bs))}
	for i, b := range bs {
		start := time.Now()
		for _, k := range b.insert {
			set.Insert(k)
		}
		res.insert[i] = time.Since(start)

		hits := 0
		start = time.Now()
		for _, k := range b.search {
			if set.Search(k) {
				hits++
			}
		}
		res.search[i] = time.Since(start)
		res.hits += hits
		log.Debug("batch done", "impl", c.name, "batch", i, "insert", res.insert[i], "search", res.search[i], "hits", hits)
	}
	return res
}

// perOp returns the mean and standard deviation of ds divided by n, each
// duration being the time of n operations.
func perOp(ds []time.Duration, n int) (mean, stddev time.Duration) {
	if len(ds) == 0 || n == 0 {
		return
	}
	var sum float64
	for _, d := range ds {
		sum += float64(d) / float64(n)
	}
	avg := sum / float64(len(ds))
	sum = 0
	for _, d := range ds {
		a := float64(d)/float64(n) - avg
		sum += a * a
	}
	return time.Duration(avg), time.Duration(math.Sqrt(sum / float64(len(ds))))
}
