// Package partition provides partition refinement over a fixed universe of
// dense integer items.
//
// A Partition divides the items 0..n-1 into disjoint subsets. Refine takes a
// query set X and replaces every subset S it touches by S ∩ X and S \ X in
// time proportional to |X|, independent of n. This is the building block of
// DFA minimization, lexicographic breadth-first search and modular
// decomposition.
//
// # Quick Start
//
//	p, _ := partition.NewRange(10)
//	defer p.Close()
//
//	res := partition.NewResults(p.Len())
//	_ = p.Refine([]int{2, 3, 5, 7}, res)
//	for _, s := range res.Sets() {
//	    fmt.Println(s.Intersection, s.Difference) // [2 3 5 7] [4 0 6 1 8 9]
//	}
//
// # Memory Layout
//
// All subsets share one permutation array. Each subset id owns a contiguous
// range of it; a split swaps the items of S ∩ X to the front of S's range
// and hands that prefix to a new id:
//
//	before:  | ........ S ........ |
//	after:   | S ∩ X  |   S \ X    |
//	           new id    old id
//
// Subset ids are stable: an id always names the same (shrinking) subset and
// every id in 0..NumSubsets()-1 names a nonempty subset.
//
// # Views
//
// Subset, Subsets and the SplitSets in Results return slices that alias the
// Partition's storage. They are invalidated by the next Refine; copy them
// (SplitSet.Clone, SubsetBitmap) to keep them.
//
// # Validation
//
// By default every item passed to New or Refine is checked and invalid input
// is reported as *ErrInvalidItem or *ErrDuplicateItem without modifying the
// Partition. WithUnchecked skips these checks.
//
// # Concurrency
//
// A Partition is not safe for concurrent use. Wrap it with NewLocked to
// share it between goroutines, or give each goroutine its own Partition.
package partition
