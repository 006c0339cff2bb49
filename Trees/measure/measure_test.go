package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContenders(t *testing.T) {
	for _, c := range contenders {
		t.Run(c.name, func(t *testing.T) {
			set := c.make(16)
			assert.False(t, set.Search(3))
			assert.True(t, set.Insert(3))
			assert.False(t, set.Insert(3))
			assert.True(t, set.Insert(1))
			assert.True(t, set.Search(3))
			assert.True(t, set.Search(1))
			assert.False(t, set.Search(2))
			s, ok := set.(Sets.Set[int])
			require.Equal(t, c.ordered, ok, "only ordered contenders are full sets")
			if !ok {
				return
			}
			var vs []int
			s.Range(func(v int) bool {
				vs = append(vs, v)
				return true
			})
			assert.Equal(t, []int{1, 3}, vs)
			assert.True(t, s.Delete(1))
			assert.False(t, s.Delete(1))
			assert.EqualValues(t, 1, s.Size())
		})
	}
}

func TestPick(t *testing.T) {
	cs, err := pick(nil, false)
	require.NoError(t, err)
	assert.Len(t, cs, len(contenders))

	cs, err = pick(nil, true)
	require.NoError(t, err)
	for _, c := range cs {
		assert.True(t, c.ordered, c.name)
	}

	cs, err = pick([]string{"arena", " splay"}, true)
	require.NoError(t, err)
	assert.Equal(t, "arena", cs[0].name)
	assert.Equal(t, "splay", cs[1].name)

	_, err = pick([]string{"haxmap"}, true)
	assert.True(t, trace.IsBadParameter(err))
	_, err = pick([]string{"nope"}, false)
	assert.True(t, trace.IsBadParameter(err))
}

func TestPerOp(t *testing.T) {
	mean, sd := perOp([]time.Duration{100, 300}, 10)
	assert.Equal(t, time.Duration(20), mean)
	assert.Equal(t, time.Duration(10), sd)
	mean, sd = perOp(nil, 10)
	assert.Zero(t, mean)
	assert.Zero(t, sd)
}

func TestTimeBatches(t *testing.T) {
	bs := makeBatches(rand.New(rand.NewSource(0)), 3, 1000)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cs, err := pick([]string{"splay", "btree", "haxmap", "hashmap"}, false)
	require.NoError(t, err)
	var hits []int
	for _, c := range cs {
		res := timeBatches(log, c, bs)
		assert.Len(t, res.insert, 3)
		assert.Len(t, res.search, 3)
		// every other search key was inserted
		assert.GreaterOrEqual(t, res.hits, 3*500)
		hits = append(hits, res.hits)
	}
	for i, c := range cs[1:] {
		assert.Equal(t, hits[0], hits[i+1], "%s disagrees with splay on hits", c.name)
	}
}

func runApp(args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer, app.ErrWriter = &out, io.Discard
	err := app.Run(append([]string{"measure"}, args...))
	return out.String(), err
}

func TestApp(t *testing.T) {
	out, err := runApp("--seed", "3", "check", "--ops", "5000", "--keys", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "splay")
	assert.Contains(t, out, "rbtree")

	out, err = runApp("--impl", "splay,arena,hashmap", "bench", "--n", "500", "--batches", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "arena")
	assert.Contains(t, out, "hashmap")

	_, err = runApp("bench", "--n", "0")
	assert.True(t, trace.IsBadParameter(err))
	_, err = runApp("--log-level", "loud", "check")
	assert.True(t, trace.IsBadParameter(err))
}
