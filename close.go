package partition

// Close releases the storage held by the Partition.
//
// Close is idempotent and safe on a nil Partition. Every other method
// returns ErrClosed (or a zero value) afterwards, and slices previously
// returned by Subset or Refine must no longer be used.
func (p *Partition) Close() error {
	if p == nil || p.closed {
		return nil
	}
	subsets := p.next

	p.data = nil
	p.member = nil
	p.place = nil
	p.begin = nil
	p.end = nil
	p.marks = nil
	p.split = nil
	p.touched = nil
	p.scratch = nil
	p.next = 0
	p.closed = true

	p.opts.metricsCollector.RecordClose()
	p.logger.LogClose(subsets)
	return nil
}
