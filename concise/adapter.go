package concise

import (
	"fmt"

	"github.com/chronos-tachyon/conciseset/extendedset"
)

// Iterate calls f for every member of s in ascending order, stopping
// early if f returns false. It satisfies extendedset.ExtendedSet.
func (s *ConciseSet) Iterate(f func(int) bool) {
	it := s.Iterator()
	for {
		has, err := it.HasNext()
		if err != nil || !has {
			return
		}
		v, err := it.Next()
		if err != nil {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Compact returns s itself: a ConciseSet is already maximally compacted
// after every mutation, so there is no further work to do. The method
// exists so callers depending on extendedset.ExtendedSet can request
// compaction uniformly across implementations.
func (s *ConciseSet) Compact() extendedset.ExtendedSet {
	return s
}

// String returns a short human-readable summary of s.
func (s *ConciseSet) String() string {
	return fmt.Sprintf("ConciseSet{len=%d, words=%d, max=%d}", s.size, len(s.words), s.maxSetBit)
}
