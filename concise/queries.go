package concise

import "math/bits"

// Len returns the number of members in s.
func (s *ConciseSet) Len() int {
	return s.size
}

// IsEmpty reports whether s has no members.
func (s *ConciseSet) IsEmpty() bool {
	return s.size == 0
}

// MaxSetBit returns the largest member of s, or -1 if s is empty.
func (s *ConciseSet) MaxSetBit() int {
	return s.maxSetBit
}

// LastSetBitOfLastWord returns the highest bit position materialized in
// s's final word, used by conciseio to reconstruct cached scalars without
// rescanning the word array on load.
func (s *ConciseSet) LastSetBitOfLastWord() int {
	return s.lastSetBitOfLastWord
}

// Words returns the raw compressed word array backing s. Callers must not
// modify the returned slice; it is intended for serialization via
// conciseio, not general manipulation.
func (s *ConciseSet) Words() []uint32 {
	return s.words
}

// FromRawParts reconstructs a ConciseSet from a previously dumped word
// array and its cached scalars, without recomputing them by scanning
// words. Used by conciseio.Load; callers elsewhere should prefer
// FromCollection or FromSortedIter.
func FromRawParts(words []uint32, size, maxSetBit, lastSetBitOfLastWord int) *ConciseSet {
	return &ConciseSet{
		words:                words,
		size:                 size,
		maxSetBit:            maxSetBit,
		lastSetBitOfLastWord: lastSetBitOfLastWord,
	}
}

// First returns s's smallest member.
func (s *ConciseSet) First() (int, error) {
	if s.size == 0 {
		return 0, ErrEmpty
	}
	it := newWordIterator(s.words)
	base := 0
	for !it.endOfWords() {
		lit := it.currentLiteral & payloadMask
		if lit != 0 {
			return base + bits.TrailingZeros32(lit), nil
		}
		if !isLiteral(it.wordCopy) && isZeroSequence(it.wordCopy) {
			n := sequenceCount(it.wordCopy)
			base += blockBits * (1 + int(n))
			skipOneSequence(&it)
			it.advance()
			continue
		}
		base += blockBits
		it.advance()
	}
	return 0, ErrEmpty
}

// Last returns s's largest member.
func (s *ConciseSet) Last() (int, error) {
	if s.maxSetBit < 0 {
		return 0, ErrEmpty
	}
	return s.maxSetBit, nil
}

// Contains reports whether x is a member of s.
func (s *ConciseSet) Contains(x int) bool {
	if x < 0 || x > s.maxSetBit {
		return false
	}
	blockIndex := x / blockBits
	bitPos := x % blockBits
	for _, w := range s.words {
		if isLiteral(w) {
			if blockIndex == 0 {
				return w&bitMask(bitPos) != 0
			}
			blockIndex--
			continue
		}
		count := int(sequenceCount(w))
		if blockIndex > count {
			blockIndex -= count + 1
			continue
		}
		var lit uint32
		switch {
		case blockIndex == 0:
			lit = literalOf(w)
		case isOneSequence(w):
			lit = literalMarker | payloadMask
		default:
			lit = literalMarker
		}
		return lit&bitMask(bitPos) != 0
	}
	return false
}

// ContainsAll reports whether every member of other is also a member of s.
func (s *ConciseSet) ContainsAll(other *ConciseSet) bool {
	if other.size == 0 {
		return true
	}
	if other.maxSetBit > s.maxSetBit {
		return false
	}
	ia := newWordIterator(s.words)
	ib := newWordIterator(other.words)
	for !ib.endOfWords() {
		if ia.endOfWords() {
			return false
		}
		a := ia.currentLiteral
		b := ib.currentLiteral
		if b&^a&payloadMask != 0 {
			return false
		}
		if canSkipBothSequences(&ia, &ib) {
			skipBothSequences(&ia, &ib)
		}
		ia.advance()
		ib.advance()
	}
	return true
}

// ContainsAny reports whether s and other share at least one member.
func (s *ConciseSet) ContainsAny(other *ConciseSet) bool {
	ia := newWordIterator(s.words)
	ib := newWordIterator(other.words)
	for !ia.endOfWords() && !ib.endOfWords() {
		if ia.currentLiteral&ib.currentLiteral&payloadMask != 0 {
			return true
		}
		if canSkipBothSequences(&ia, &ib) {
			skipBothSequences(&ia, &ib)
		}
		ia.advance()
		ib.advance()
	}
	return false
}

// ContainsAtLeast reports whether s and other share at least n members.
//
// It short-circuits to true the moment the running intersection count
// reaches n, inside the pair-wise walk; it does not keep counting past
// that point. A caller that needs the exact shared count, even when it
// exceeds n, should use IntersectionSize instead.
func (s *ConciseSet) ContainsAtLeast(other *ConciseSet, n int) bool {
	if n <= 0 {
		return true
	}
	count := 0
	ia := newWordIterator(s.words)
	ib := newWordIterator(other.words)
	for !ia.endOfWords() && !ib.endOfWords() {
		common := ia.currentLiteral & ib.currentLiteral & payloadMask
		count += bits.OnesCount32(common)
		if count >= n {
			return true
		}
		if canSkipBothSequences(&ia, &ib) {
			isOne := isOneSequence(ia.wordCopy)
			skipped := skipBothSequences(&ia, &ib)
			if isOne {
				count += blockBits * int(skipped)
				if count >= n {
					return true
				}
			}
		}
		ia.advance()
		ib.advance()
	}
	return false
}

// IntersectionSize returns len(s.Intersection(other)) without allocating
// the intersection itself.
func (s *ConciseSet) IntersectionSize(other *ConciseSet) int {
	count := 0
	ia := newWordIterator(s.words)
	ib := newWordIterator(other.words)
	for !ia.endOfWords() && !ib.endOfWords() {
		common := ia.currentLiteral & ib.currentLiteral & payloadMask
		count += bits.OnesCount32(common)
		if canSkipBothSequences(&ia, &ib) {
			isOne := isOneSequence(ia.wordCopy)
			skipped := skipBothSequences(&ia, &ib)
			if isOne {
				count += blockBits * int(skipped)
			}
		}
		ia.advance()
		ib.advance()
	}
	return count
}

// ComplementSize returns len(s.Complemented()) without allocating the
// complement itself.
func (s *ConciseSet) ComplementSize() int {
	if s.maxSetBit < 0 {
		return 0
	}
	return s.maxSetBit + 1 - s.size
}

// BitmapCompressionRatio returns the ratio of compressed words to the
// words an uncompressed bitmap covering the same universe would need.
func (s *ConciseSet) BitmapCompressionRatio() float64 {
	if s.maxSetBit < 0 {
		return 0
	}
	denom := (s.maxSetBit + 1 + 31) / 32
	return float64(len(s.words)) / float64(denom)
}

// CollectionCompressionRatio returns the ratio of compressed words to the
// set's cardinality.
func (s *ConciseSet) CollectionCompressionRatio() float64 {
	if s.size == 0 {
		return 0
	}
	return float64(len(s.words)) / float64(s.size)
}

// Intersection returns s ∩ other as a new set.
func (s *ConciseSet) Intersection(other *ConciseSet) *ConciseSet {
	return combine(OpAND, s, other)
}

// Union returns s ∪ other as a new set.
func (s *ConciseSet) Union(other *ConciseSet) *ConciseSet {
	return combine(OpOR, s, other)
}

// Difference returns s \ other as a new set.
func (s *ConciseSet) Difference(other *ConciseSet) *ConciseSet {
	return combine(OpANDNOT, s, other)
}

// SymmetricDifference returns (s \ other) ∪ (other \ s) as a new set.
func (s *ConciseSet) SymmetricDifference(other *ConciseSet) *ConciseSet {
	return combine(OpXOR, s, other)
}
