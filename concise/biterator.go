package concise

import "math/bits"

// BitIterator walks a ConciseSet's members in ascending order.
//
// An iterator is tied to the generation of the ConciseSet it was created
// from; a mutation of that set made through any of its methods on the
// same goroutine is detected on the iterator's next call and reported as
// ErrConcurrentModification. This is a best-effort safety net, not a
// substitute for synchronizing access to a shared set.
type BitIterator struct {
	host       *ConciseSet
	generation uint64
	it         wordIterator
	base       int
	cursor     int
	pending    int
}

// Iterator returns a BitIterator over s's members, ascending.
func (s *ConciseSet) Iterator() *BitIterator {
	bi := &BitIterator{
		host:       s,
		generation: s.generation,
		it:         newWordIterator(s.words),
	}
	bi.pending = bi.findNext()
	return bi
}

// HasNext reports whether Next has another value to return.
func (bi *BitIterator) HasNext() (bool, error) {
	if bi.generation != bi.host.generation {
		return false, ErrConcurrentModification
	}
	return bi.pending >= 0, nil
}

// Next returns the next member in ascending order.
func (bi *BitIterator) Next() (int, error) {
	if bi.generation != bi.host.generation {
		return 0, ErrConcurrentModification
	}
	if bi.pending < 0 {
		return 0, ErrEmpty
	}
	v := bi.pending
	bi.cursor = v - bi.base + 1
	bi.pending = bi.findNext()
	return v, nil
}

// Remove is not supported; BitIterator is read-only.
func (bi *BitIterator) Remove() error {
	return ErrUnsupported
}

// findNext scans forward from (base, cursor) for the next set bit,
// bulk-skipping whole zero-run spans rather than visiting them block by
// block, and returns its absolute value or -1 once exhausted.
func (bi *BitIterator) findNext() int {
	for !bi.it.endOfWords() {
		lit := bi.it.currentLiteral & payloadMask
		masked := lit &^ (bitMask(bi.cursor) - 1)
		if masked != 0 {
			return bi.base + bits.TrailingZeros32(masked)
		}
		if !isLiteral(bi.it.wordCopy) && isZeroSequence(bi.it.wordCopy) && sequenceCount(bi.it.wordCopy) > 0 {
			n := sequenceCount(bi.it.wordCopy)
			bi.base += blockBits * (1 + int(n))
			skipOneSequence(&bi.it)
			bi.it.advance()
			bi.cursor = 0
			continue
		}
		bi.base += blockBits
		bi.it.advance()
		bi.cursor = 0
	}
	return -1
}

// DescendingIterator walks a ConciseSet's members in descending order.
// Unlike BitIterator it materializes the full member list up front, since
// CONCISE's run-length words don't support an efficient reverse walk.
type DescendingIterator struct {
	host       *ConciseSet
	generation uint64
	values     []int
	idx        int
}

// DescendingIterator returns a DescendingIterator over s's members.
func (s *ConciseSet) DescendingIterator() *DescendingIterator {
	values := make([]int, 0, s.size)
	it := s.Iterator()
	for {
		has, _ := it.HasNext()
		if !has {
			break
		}
		v, _ := it.Next()
		values = append(values, v)
	}
	return &DescendingIterator{
		host:       s,
		generation: s.generation,
		values:     values,
		idx:        len(values) - 1,
	}
}

// HasNext reports whether Next has another value to return.
func (di *DescendingIterator) HasNext() (bool, error) {
	if di.generation != di.host.generation {
		return false, ErrConcurrentModification
	}
	return di.idx >= 0, nil
}

// Next returns the next member in descending order.
func (di *DescendingIterator) Next() (int, error) {
	if di.generation != di.host.generation {
		return 0, ErrConcurrentModification
	}
	if di.idx < 0 {
		return 0, ErrEmpty
	}
	v := di.values[di.idx]
	di.idx--
	return v, nil
}
