// Package concise implements CONCISE (COmpressed 'N' Composable Integer
// SEt), a word-aligned run-length-encoded bitmap for sets of non-negative
// integers. Every exported mutation and query runs in time linear in the
// number of compressed words, not in the cardinality of the set or the
// size of its universe.
package concise

// ConciseSet is a compressed, sorted set of non-negative integers.
//
// The zero value is not ready to use; construct one with New,
// FromSortedIter, or FromCollection. A ConciseSet is not safe for
// concurrent use: Iterator and DescendingIterator detect same-goroutine
// mutation-during-iteration on a best-effort basis via a generation
// counter, but that is not a substitute for external synchronization.
type ConciseSet struct {
	words []uint32

	// lastSetBitOfLastWord is the bit position (0..30) of the highest
	// member represented by the last word, or -1 when the set is empty.
	lastSetBitOfLastWord int

	// maxSetBit is the largest member currently in the set, or -1 when
	// the set is empty.
	maxSetBit int

	size int

	generation uint64

	observer Observer
}

// New returns an empty ConciseSet.
func New() *ConciseSet {
	return &ConciseSet{maxSetBit: -1, lastSetBitOfLastWord: -1}
}

// Clone returns an independent copy of s.
func (s *ConciseSet) Clone() *ConciseSet {
	c := &ConciseSet{
		maxSetBit:            s.maxSetBit,
		lastSetBitOfLastWord: s.lastSetBitOfLastWord,
		size:                 s.size,
	}
	if len(s.words) > 0 {
		c.words = append([]uint32(nil), s.words...)
	}
	return c
}
