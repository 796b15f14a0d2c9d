package partition

import (
	"slices"
	"testing"

	"github.com/hupe1980/partition/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineScenario(t *testing.T) {
	p, err := NewRange(10)
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())

	require.NoError(t, p.Refine([]int{2, 3, 5, 7}, res))
	require.Equal(t, 1, res.Len())
	s := res.At(0)
	assert.Equal(t, 0, s.Subset)
	assert.Equal(t, 1, s.Split)
	assert.Equal(t, []int{2, 3, 5, 7}, s.Intersection)
	assert.Equal(t, []int{4, 0, 6, 1, 8, 9}, s.Difference)
	checkInvariants(t, p)

	require.NoError(t, p.Refine([]int{2, 4, 6, 8}, res))
	require.Equal(t, 2, res.Len())

	// Records follow the original subset id, new ids follow discovery order.
	assert.Equal(t, SplitSet{
		Subset:       0,
		Split:        3,
		Intersection: []int{4, 6, 8},
		Difference:   []int{1, 0, 9},
	}, res.At(0))
	assert.Equal(t, SplitSet{
		Subset:       1,
		Split:        2,
		Intersection: []int{2},
		Difference:   []int{3, 5, 7},
	}, res.At(1))
	checkInvariants(t, p)

	require.NoError(t, p.Refine([]int{2}, res))
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, 4, p.NumSubsets())
	checkInvariants(t, p)

	want := [][]int{{1, 0, 9}, {3, 5, 7}, {2}, {4, 6, 8}}
	all, err := p.Subsets()
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

func TestRefineAdjacency(t *testing.T) {
	p, err := NewRange(8)
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())
	require.NoError(t, p.Refine([]int{6, 1, 3}, res))
	require.Equal(t, 1, res.Len())

	s := res.At(0)

	// Intersection immediately precedes Difference in the shared array.
	require.NotEmpty(t, s.Intersection)
	require.NotEmpty(t, s.Difference)
	assert.Equal(t, p.place[s.Intersection[len(s.Intersection)-1]]+1, p.place[s.Difference[0]])
	assert.Equal(t, p.begin[s.Split], p.place[s.Intersection[0]])
}

func TestRefineEmpty(t *testing.T) {
	p, err := NewRange(5)
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())
	require.NoError(t, p.Refine([]int{0, 1}, res))
	require.Equal(t, 1, res.Len())

	require.NoError(t, p.Refine(nil, res))
	assert.Equal(t, 0, res.Len(), "results are overwritten, not accumulated")
	assert.Equal(t, 2, p.NumSubsets())
}

func TestRefineWholeUniverse(t *testing.T) {
	p, err := NewRange(5)
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())
	require.NoError(t, p.Refine([]int{4, 3, 2, 1, 0}, res))

	assert.Equal(t, 0, res.Len())
	assert.Equal(t, 1, p.NumSubsets())
	checkInvariants(t, p)
}

func TestRefineIdempotent(t *testing.T) {
	rng := testutil.NewRNG(4711)

	p, err := New(rng.Perm(200))
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())
	for range 20 {
		x := rng.Sample(200, 1+rng.Intn(60))

		require.NoError(t, p.Refine(x, res))
		before := p.NumSubsets()

		require.NoError(t, p.Refine(x, res))
		assert.Equal(t, 0, res.Len())
		assert.Equal(t, before, p.NumSubsets())
	}
}

func TestRefineDuplicates(t *testing.T) {
	p, err := NewRange(6)
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(p.Len())
	require.NoError(t, p.Refine([]int{3, 1, 3, 3, 1}, res))

	require.Equal(t, 1, res.Len())
	assert.ElementsMatch(t, []int{1, 3}, res.At(0).Intersection)
	assert.ElementsMatch(t, []int{0, 2, 4, 5}, res.At(0).Difference)
	checkInvariants(t, p)
}

func TestRefineInvalidItem(t *testing.T) {
	p, err := NewRange(6)
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Refine([]int{0, 1}, nil))

	res := NewResults(p.Len())
	require.NoError(t, p.Refine([]int{2}, res))
	prev := res.Len()
	data := slices.Clone(p.data)

	for _, x := range [][]int{{3, 6}, {-1}, {4, 5, 100}} {
		err := p.Refine(x, res)
		var e *ErrInvalidItem
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 6, e.Size)

		// Nothing moved, nothing reported.
		assert.Equal(t, data, p.data)
		assert.Equal(t, 3, p.NumSubsets())
		assert.Equal(t, prev, res.Len())
		checkInvariants(t, p)
	}
}

func TestRefineUnchecked(t *testing.T) {
	p, err := NewRange(4, WithUnchecked())
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Refine([]int{1, 2}, nil))
	assert.Equal(t, 2, p.NumSubsets())
	checkInvariants(t, p)

	assert.Panics(t, func() {
		_ = p.Refine([]int{7}, nil)
	})
}

// TestRefineRandom compares every refinement against a naive model.
func TestRefineRandom(t *testing.T) {
	const n = 300

	rng := testutil.NewRNG(42)

	p, err := New(rng.Perm(n))
	require.NoError(t, err)
	defer p.Close()

	res := NewResults(n)
	for round := range 100 {
		var x []int
		if round%3 == 0 {
			x = rng.Items(n, rng.Intn(80))
		} else {
			x = rng.Sample(n, rng.Intn(120))
		}
		inX := make(map[int]bool, len(x))
		for _, item := range x {
			inX[item] = true
		}

		before, err := p.Subsets()
		require.NoError(t, err)
		snapshot := make([][]int, len(before))
		for id, s := range before {
			snapshot[id] = slices.Clone(s)
		}
		count := p.NumSubsets()

		require.NoError(t, p.Refine(x, res))
		checkInvariants(t, p)

		// Monotonicity.
		assert.Equal(t, count+res.Len(), p.NumSubsets())

		reported := make(map[int]SplitSet, res.Len())
		last := -1
		for _, s := range res.Sets() {
			assert.Greater(t, s.Subset, last, "records ordered by subset id")
			last = s.Subset
			assert.GreaterOrEqual(t, s.Split, count, "split ids are fresh")
			reported[s.Subset] = s
		}

		for id, items := range snapshot {
			var in, out []int
			for _, item := range items {
				if inX[item] {
					in = append(in, item)
				} else {
					out = append(out, item)
				}
			}

			s, ok := reported[id]
			if len(in) == 0 || len(out) == 0 {
				assert.False(t, ok, "subset %d must not split", id)
				cur, err := p.Subset(id)
				require.NoError(t, err)
				assert.ElementsMatch(t, items, cur)
				continue
			}
			require.True(t, ok, "subset %d must split", id)
			assert.ElementsMatch(t, in, s.Intersection)
			assert.ElementsMatch(t, out, s.Difference)

			cur, err := p.Subset(s.Split)
			require.NoError(t, err)
			assert.Equal(t, s.Intersection, cur)
		}
	}
}

func BenchmarkRefine(b *testing.B) {
	const n = 1 << 16

	rng := testutil.NewRNG(1)
	queries := make([][]int, 64)
	for i := range queries {
		queries[i] = rng.Sample(n, 256)
	}

	p, err := NewRange(n)
	require.NoError(b, err)
	defer p.Close()

	res := NewResults(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Refine(queries[i%len(queries)], res); err != nil {
			b.Fatal(err)
		}
	}
}
