package partition

import (
	"iter"
	"slices"
)

// SplitSet reports one subset S split by a Refine call.
//
// Intersection and Difference are adjacent in the Partition's storage:
// Intersection immediately precedes Difference.
type SplitSet struct {
	// Subset is the id of S, which now holds S \ X.
	Subset int
	// Split is the id created for S ∩ X.
	Split int
	// Intersection holds the items of S ∩ X.
	Intersection []int
	// Difference holds the items of S \ X.
	Difference []int
}

// Clone returns a copy of s that does not alias the Partition.
func (s SplitSet) Clone() SplitSet {
	return SplitSet{
		Subset:       s.Subset,
		Split:        s.Split,
		Intersection: slices.Clone(s.Intersection),
		Difference:   slices.Clone(s.Difference),
	}
}

// Results collects the SplitSets of one Refine call. It is meant to be
// allocated once and reused: every Refine overwrites its contents.
type Results struct {
	sets []SplitSet
}

// NewResults creates a Results with room for capacity SplitSets without
// reallocating. A single Refine never splits more subsets than exist, so
// the universe size is always enough.
func NewResults(capacity int) *Results {
	return &Results{
		sets: make([]SplitSet, 0, max(capacity, 0)),
	}
}

// Len returns the number of subsets split by the last Refine.
func (r *Results) Len() int {
	return len(r.sets)
}

// At returns the i-th SplitSet.
func (r *Results) At(i int) SplitSet {
	return r.sets[i]
}

// Sets returns the SplitSets of the last Refine. The slice is reused by the
// next Refine.
func (r *Results) Sets() []SplitSet {
	return r.sets
}

// All iterates over the SplitSets of the last Refine.
func (r *Results) All() iter.Seq2[int, SplitSet] {
	return func(yield func(int, SplitSet) bool) {
		for i, s := range r.sets {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Reset empties r, keeping its capacity.
func (r *Results) Reset() {
	clear(r.sets)
	r.sets = r.sets[:0]
}
