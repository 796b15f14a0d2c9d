package partition

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// SubsetBitmap returns a copy of subset id as a roaring bitmap.
//
// Unlike Subset the result is owned by the caller and survives Refine, which
// makes it the cheap way to keep a class around or combine classes with
// bitmap algebra.
func (p *Partition) SubsetBitmap(id int) (*roaring.Bitmap, error) {
	items, err := p.Subset(id)
	if err != nil {
		return nil, err
	}
	rb := roaring.New()
	for _, item := range items {
		rb.Add(uint32(item))
	}
	return rb, nil
}

// RefineBitmap is Refine with the query set given as a roaring bitmap.
// Items are visited in ascending order.
func (p *Partition) RefineBitmap(x *roaring.Bitmap, res *Results) error {
	if p.check() != nil {
		return p.Refine(nil, res)
	}

	p.scratch = p.scratch[:0]
	if x != nil {
		it := x.Iterator()
		for it.HasNext() {
			p.scratch = append(p.scratch, int(it.Next()))
		}
	}
	return p.Refine(p.scratch, res)
}
