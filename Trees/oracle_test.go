package Trees

import (
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/kr/pretty"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	tAddN        = 4000
	tAddValRange = 6000
	tRounds      = 8
)

// randomInts draws n values in [0, r) with duplicates.
func randomInts(rg *rand.Rand, n, r int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(r)
	}
	return a
}

func diffOrFail(t *testing.T, name string, want, got []int) {
	t.Helper()
	if d := pretty.Diff(want, got); len(d) > 0 {
		t.Fatalf("in-order values differ from %s:\n%v", name, d)
	}
}

// TestBST_Oracles checks insertion order, uniqueness and membership against
// the ordered containers of other libraries.
func TestBST_Oracles(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	for round := range tRounds {
		a := randomInts(rg, tAddN, tAddValRange)
		u := NewOrdered[int]()
		bt := btree.NewG[int](16, func(x, y int) bool { return x < y })
		lt := llrb.New()
		gs := treeset.NewWithIntComparator()
		seen := hashmap.New[int, struct{}]()
		for _, v := range a {
			fresh := seen.Insert(v, struct{}{})
			before := u.Size()
			require.NoError(t, u.Add(v))
			if grew := u.Size() == before+1; grew != fresh {
				t.Fatalf("round %d: adding %d grew=%v, but first time=%v", round, v, grew, fresh)
			}
			bt.ReplaceOrInsert(v)
			lt.ReplaceOrInsert(llrb.Int(v))
			gs.Add(v)
		}
		require.Equal(t, seen.Len(), int(u.Size()))
		require.NoError(t, u.CheckInvariants())

		got := values(u)
		var fromB []int
		bt.Ascend(func(v int) bool {
			fromB = append(fromB, v)
			return true
		})
		diffOrFail(t, "btree", fromB, got)

		var fromL []int
		lt.AscendGreaterOrEqual(lt.Min(), func(i llrb.Item) bool {
			fromL = append(fromL, int(i.(llrb.Int)))
			return true
		})
		diffOrFail(t, "llrb", fromL, got)

		fromG := make([]int, 0, gs.Size())
		for _, v := range gs.Values() {
			fromG = append(fromG, v.(int))
		}
		diffOrFail(t, "treeset", fromG, got)

		for range tAddN / 4 {
			q := rg.Intn(tAddValRange + tAddValRange/4)
			if u.Find(q) != gs.Contains(q) {
				t.Fatalf("round %d: Find(%d)=%v, treeset says %v", round, q, u.Find(q), gs.Contains(q))
			}
		}
	}
}

// TestBST_CopyIndependence mutates clones, assigned trees and subtrees
// against a btree snapshot of the source.
func TestBST_CopyIndependence(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	for range tRounds {
		a := randomInts(rg, tAddN/4, tAddValRange)
		src := buildInts(t, a...)
		snap := btree.NewG[int](8, func(x, y int) bool { return x < y })
		for v := range src.All() {
			snap.ReplaceOrInsert(v)
		}
		clone, err := src.Clone()
		require.NoError(t, err)
		assigned := NewOrdered[int]()
		require.NoError(t, assigned.Assign(src))
		sub, err := src.Subtree(a[rg.Intn(len(a))])
		require.NoError(t, err)
		require.NotZero(t, sub.Size())

		for _, v := range randomInts(rg, tAddN/4, 2*tAddValRange) {
			require.NoError(t, clone.Add(v))
			require.NoError(t, assigned.Add(v+1))
			require.NoError(t, sub.Add(v+2))
		}
		var want []int
		snap.Ascend(func(v int) bool {
			want = append(want, v)
			return true
		})
		diffOrFail(t, "snapshot", want, values(src))
		require.Equal(t, snap.Len(), int(src.Size()))
	}
}
