package concise

import "sort"

// FromSortedIter builds a ConciseSet from values, which must already be
// strictly ascending and within [0, maxAllowed]. This is the fast
// constructor: each value is appended in O(1) amortized time.
func FromSortedIter(values []int) (*ConciseSet, error) {
	s := New()
	prev := -1
	for _, v := range values {
		if v < 0 || v > maxAllowed {
			return nil, &OutOfRangeError{Value: int64(v)}
		}
		if v <= prev {
			return nil, &NotAscendingError{Previous: prev, Value: v}
		}
		s.growInto(v)
		prev = v
	}
	return s, nil
}

// FromCollection builds a ConciseSet from values in any order, sorting
// and deduplicating them first.
func FromCollection(values []int) (*ConciseSet, error) {
	cp := append([]int(nil), values...)
	sort.Ints(cp)

	out := cp[:0]
	first := true
	prev := 0
	for _, v := range cp {
		if first || v != prev {
			out = append(out, v)
			prev = v
			first = false
		}
	}
	return FromSortedIter(out)
}
