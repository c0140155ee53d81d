package concise

// Complement replaces s in place with its complement relative to the
// universe [0, maxSetBit] implied by s's own current maximum. The empty
// set's complement is itself, since it has no maximum to bound a universe.
func (s *ConciseSet) Complement() {
	if s.maxSetBit < 0 {
		return
	}
	s.notify("complement")
	savedLastBit := s.lastSetBitOfLastWord
	for i, w := range s.words {
		if isLiteral(w) {
			s.words[i] = (^w) | literalMarker
		} else {
			s.words[i] = w ^ runPolarity
		}
	}

	lastIdx := len(s.words) - 1
	if isLiteral(s.words[lastIdx]) && savedLastBit < blockBits-1 {
		keepMask := rangeMaskInclusive(0, savedLastBit)
		s.words[lastIdx] = (s.words[lastIdx] &^ payloadMask) | (s.words[lastIdx] & keepMask)
	}

	s.compactTail()
	s.words = trimZeros(s.words)
	if len(s.words) == 0 {
		s.Clear()
		return
	}
	size, maxBit, lastBit := computeStats(s.words)
	s.size = size
	s.maxSetBit = maxBit
	s.lastSetBitOfLastWord = lastBit
	s.generation++
}

// Complemented returns s's complement as a new set, leaving s untouched.
func (s *ConciseSet) Complemented() *ConciseSet {
	c := s.Clone()
	c.Complement()
	return c
}
