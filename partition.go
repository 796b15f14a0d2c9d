package partition

import (
	"slices"
	"time"
)

// Partition maintains a partition of the universe 0..n-1 into disjoint subsets.
//
// All subsets live in one permutation array: subset id owns the half-open
// range [begin[id], end[id]) of data. Refine splits subsets in place by
// swapping items inside data, so no refinement ever copies or allocates
// per item.
//
// Invariants (between calls):
//   - data is a permutation of 0..n-1 and data[place[x]] == x
//   - place[x] lies in [begin[member[x]], end[member[x]])
//   - the ranges of ids 0..next-1 are nonempty (for n > 0), disjoint and cover data
//   - marks is all zero
//
// A Partition is not safe for concurrent use. See Locked.
type Partition struct {
	data   []int // permutation of the universe
	member []int // item -> subset id
	place  []int // item -> index into data
	begin  []int // subset id -> first index
	end    []int // subset id -> one past the last index
	next   int   // next subset id to hand out

	// Split workspace, only meaningful inside one Refine call.
	marks   []int // subset id -> length of its marked prefix
	split   []int // subset id -> id split off from it
	touched []int // subsets with a nonzero mark, in discovery order

	scratch []int // RefineBitmap buffer

	closed bool
	opts   options
	logger *Logger
}

// New creates a Partition holding the single subset 0 with the items of
// universe, which must be a permutation of 0..len(universe)-1. The order of
// universe becomes the initial order of subset 0. The slice is copied.
func New(universe []int, optFns ...Option) (*Partition, error) {
	return newPartition(slices.Clone(universe), applyOptions(optFns))
}

// NewRange creates a Partition over 0..n-1 in ascending order.
func NewRange(n int, optFns ...Option) (*Partition, error) {
	o := applyOptions(optFns)
	if n < 0 {
		err := &ErrInvalidUniverse{Size: n}
		o.metricsCollector.RecordInit(n, 0, err)
		o.logger.LogInit(n, err)
		return nil, err
	}

	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return newPartition(data, o)
}

// newPartition takes ownership of data.
func newPartition(data []int, o options) (*Partition, error) {
	start := time.Now()
	n := len(data)

	p, err := build(data, o)
	o.metricsCollector.RecordInit(n, time.Since(start), err)
	o.logger.LogInit(n, err)
	if err != nil {
		return nil, err
	}
	p.logger = o.logger.WithUniverse(n)
	return p, nil
}

func build(data []int, o options) (*Partition, error) {
	n := len(data)
	slots := max(n, 1) // subset 0 exists even for an empty universe

	p := &Partition{
		data:    data,
		member:  make([]int, n),
		place:   make([]int, n),
		begin:   make([]int, slots),
		end:     make([]int, slots),
		next:    1,
		marks:   make([]int, slots),
		split:   make([]int, slots),
		touched: make([]int, 0, slots),
		opts:    o,
	}

	if o.unchecked {
		for i, x := range data {
			p.place[x] = i
		}
	} else {
		for i := range p.place {
			p.place[i] = -1
		}
		for i, x := range data {
			if x < 0 || x >= n {
				return nil, &ErrInvalidItem{Item: x, Size: n}
			}
			if p.place[x] != -1 {
				return nil, &ErrDuplicateItem{Item: x}
			}
			p.place[x] = i
		}
	}

	p.end[0] = n
	return p, nil
}

func (p *Partition) check() error {
	if p == nil || p.closed {
		return ErrClosed
	}
	return nil
}

// Len returns the size of the universe.
func (p *Partition) Len() int {
	if p == nil {
		return 0
	}
	return len(p.data)
}

// NumSubsets returns the number of subset ids allocated so far, including
// the initial subset 0. Valid ids are 0..NumSubsets()-1. It returns 0 after
// Close.
func (p *Partition) NumSubsets() int {
	if p.check() != nil {
		return 0
	}
	return p.next
}

// Subset returns the items of subset id.
//
// The returned slice aliases internal storage: it must not be modified and
// is invalidated by the next Refine.
func (p *Partition) Subset(id int) ([]int, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if id < 0 || id >= p.next {
		return nil, &ErrInvalidSubset{ID: id, Count: p.next}
	}
	return p.view(id), nil
}

// Member returns the id of the subset currently holding item.
func (p *Partition) Member(item int) (int, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	if item < 0 || item >= len(p.data) {
		return 0, &ErrInvalidItem{Item: item, Size: len(p.data)}
	}
	return p.member[item], nil
}

// Subsets returns every subset ordered by id. The inner slices alias internal
// storage like those returned by Subset.
func (p *Partition) Subsets() ([][]int, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	out := make([][]int, p.next)
	for id := range out {
		out[id] = p.view(id)
	}
	return out, nil
}

// view caps the slice so appends by the caller cannot clobber a neighbour.
func (p *Partition) view(id int) []int {
	b, e := p.begin[id], p.end[id]
	return p.data[b:e:e]
}
