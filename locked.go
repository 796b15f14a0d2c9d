package partition

import (
	"slices"
	"sync"
)

// Locked serializes access to a Partition so it can be shared between
// goroutines. Results are returned as owned copies because views into the
// Partition would be invalidated by another goroutine's Refine.
type Locked struct {
	mu  sync.Mutex
	p   *Partition
	res *Results
}

// NewLocked wraps p. The caller must not use p directly afterwards.
func NewLocked(p *Partition) *Locked {
	return &Locked{
		p:   p,
		res: NewResults(p.Len()),
	}
}

// Refine refines the wrapped Partition by x and returns copies of the
// resulting SplitSets.
func (l *Locked) Refine(x []int) ([]SplitSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.p.Refine(x, l.res); err != nil {
		return nil, err
	}
	out := make([]SplitSet, l.res.Len())
	for i, s := range l.res.Sets() {
		out[i] = s.Clone()
	}
	l.res.Reset()
	return out, nil
}

// Subset returns a copy of subset id.
func (l *Locked) Subset(id int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.p.Subset(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// Member returns the id of the subset currently holding item.
func (l *Locked) Member(item int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.p.Member(item)
}

// NumSubsets returns the number of subset ids allocated so far.
func (l *Locked) NumSubsets() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.p.NumSubsets()
}

// Close closes the wrapped Partition.
func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.p.Close()
}
