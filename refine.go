package partition

import (
	"slices"
	"time"
)

// Refine splits every subset S that x touches into S ∩ x and S \ x.
//
// S ∩ x receives a fresh subset id while S keeps its id for S \ x. Fresh ids
// are handed out in the order x first touches each subset. A subset that x
// contains entirely is left as is and consumes no id, so refining twice with
// the same x splits nothing the second time. Duplicates in x are ignored.
//
// If res is non-nil it is overwritten with one SplitSet per split subset,
// ordered by the id of the original subset. The slices in res alias internal
// storage and are invalidated by the next Refine.
//
// Unless the Partition was built WithUnchecked, every item of x is validated
// before anything is modified; an item outside the universe yields
// *ErrInvalidItem and leaves the Partition unchanged.
//
// Refine runs in O(|x|) plus O(k log k) to order k reported splits.
func (p *Partition) Refine(x []int, res *Results) error {
	if p == nil {
		return ErrClosed
	}
	start := time.Now()

	splits, err := p.refine(x, res)

	p.opts.metricsCollector.RecordRefine(len(x), splits, time.Since(start), err)
	p.logger.LogRefine(len(x), splits, p.next, err)
	return err
}

func (p *Partition) refine(x []int, res *Results) (int, error) {
	if p.closed {
		return 0, ErrClosed
	}
	if !p.opts.unchecked {
		n := len(p.data)
		for _, item := range x {
			if item < 0 || item >= n {
				return 0, &ErrInvalidItem{Item: item, Size: n}
			}
		}
	}

	// Move each item to the marked prefix of its subset.
	touched := p.touched[:0]
	for _, item := range x {
		s := p.member[item]
		k := p.marks[s]
		boundary := p.begin[s] + k
		a := p.place[item]
		if a < boundary {
			continue // duplicate
		}
		if k == 0 {
			touched = append(touched, s)
		}
		p.swap(a, boundary)
		p.marks[s] = k + 1
	}

	// Turn proper marked prefixes into new subsets. split reuses the
	// backing array of touched; it never overtakes the read position.
	split := touched[:0]
	for _, s := range touched {
		k := p.marks[s]
		p.marks[s] = 0
		if k == p.end[s]-p.begin[s] {
			continue
		}

		ss := p.next
		p.next++
		p.split[s] = ss
		p.begin[ss] = p.begin[s]
		p.end[ss] = p.begin[s] + k
		for _, item := range p.data[p.begin[ss]:p.end[ss]] {
			p.member[item] = ss
		}
		p.begin[s] = p.end[ss]

		split = append(split, s)
	}
	p.touched = touched[:0]

	if res != nil {
		slices.Sort(split)
		res.Reset()
		for _, s := range split {
			ss := p.split[s]
			res.sets = append(res.sets, SplitSet{
				Subset:       s,
				Split:        ss,
				Intersection: p.view(ss),
				Difference:   p.view(s),
			})
		}
	}
	return len(split), nil
}

// swap exchanges the items at positions a and b of data.
func (p *Partition) swap(a, b int) {
	x, y := p.data[a], p.data[b]
	p.data[a], p.data[b] = y, x
	p.place[x], p.place[y] = b, a
}
