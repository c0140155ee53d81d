package concise

// GrowthFactor controls how aggressively resize grows a ConciseSet's
// backing word array past its current capacity, expressed as a multiplier
// applied to the existing capacity (e.g. 1.5 grows capacity by 50%).
// Values <= 1 fall back to exact-new-size growth. Callers (e.g.
// cmd/concise-inspect, from conciseconfig's Storage.GrowthFactor) may
// tune this via SetGrowthFactor; it is a package-wide
// setting, not per-set, since it only affects allocation behavior, never
// observable set contents.
var GrowthFactor = 1.5

// SetGrowthFactor installs f as the package-wide growth factor used by
// resize. It has no effect on sets already built, only on words appended
// afterward.
func SetGrowthFactor(f float64) {
	GrowthFactor = f
}

// resize ensures words has capacity for at least minLen elements,
// growing geometrically by GrowthFactor (or to the exact size needed, if
// GrowthFactor is <= 1) rather than relying solely on the capacity curve
// of Go's builtin append.
func resize(words []uint32, minLen int) []uint32 {
	if cap(words) >= minLen {
		return words
	}
	newCap := minLen
	if GrowthFactor > 1 {
		if grown := int(float64(cap(words)) * GrowthFactor); grown > newCap {
			newCap = grown
		}
	}
	grown := make([]uint32, len(words), newCap)
	copy(grown, words)
	return grown
}

// pushWord appends w to s.words, pre-growing capacity via resize.
func (s *ConciseSet) pushWord(w uint32) {
	s.words = resize(s.words, len(s.words)+1)
	s.words = append(s.words, w)
}

// growInto appends x to s, where x is required to be strictly greater
// than s.maxSetBit (the caller's responsibility — this is the tail-growth
// half of Add, not a general insert).
func (s *ConciseSet) growInto(x int) {
	if len(s.words) == 0 {
		s.appendFirst(x)
		return
	}
	s.appendNext(x)
}

func (s *ConciseSet) appendFirst(x int) {
	block := x / blockBits
	bit := x % blockBits
	if block > 0 {
		if block == 1 {
			s.pushWord(literalMarker)
		} else {
			s.pushWord(sequenceWord(0, false, uint32(block-1)))
		}
	}
	s.pushWord(literalMarker | bitMask(bit))
	s.lastSetBitOfLastWord = bit
	s.maxSetBit = x
	s.size++
	if bit == blockBits-1 {
		s.compactTail()
	}
}

func (s *ConciseSet) appendNext(x int) {
	d := x - s.maxSetBit
	newPos := s.lastSetBitOfLastWord + d
	tailIdx := len(s.words) - 1

	if newPos < blockBits {
		s.words[tailIdx] |= bitMask(newPos)
		s.lastSetBitOfLastWord = newPos
		s.maxSetBit = x
		s.size++
		if newPos == blockBits-1 {
			s.compactTail()
		}
		return
	}

	zeroBlocks := newPos/blockBits - 1
	tail := s.words[tailIdx]
	canAbsorb := isLiteral(tail) && literalBitCount(tail) == 1

	switch {
	case zeroBlocks == 0:
		s.pushWord(literalMarker)
	case canAbsorb:
		bitPos := singleSetBitPosition(tail)
		s.words[tailIdx] = sequenceWord(bitPos+1, false, uint32(zeroBlocks))
		s.pushWord(literalMarker)
	case zeroBlocks == 1:
		s.pushWord(literalMarker)
		s.pushWord(literalMarker)
	default:
		s.pushWord(sequenceWord(0, false, uint32(zeroBlocks-1)))
		s.pushWord(literalMarker)
	}

	newBit := newPos % blockBits
	last := len(s.words) - 1
	s.words[last] |= bitMask(newBit)
	s.lastSetBitOfLastWord = newBit
	s.maxSetBit = x
	s.size++
	if newBit == blockBits-1 {
		s.compactTail()
	}
}

// compactAt merges words[i] into words[i-1] in place when words[i] is an
// all-zero or all-one literal, returning whether a merge happened. On a
// merge the caller is responsible for dropping words[i] (it has been
// folded into its predecessor).
func compactAt(words []uint32, i int) bool {
	if i <= 0 {
		return false
	}
	w := words[i]
	if !isLiteral(w) {
		return false
	}
	bits := literalBitCount(w)
	var isOne bool
	switch bits {
	case 0:
		isOne = false
	case blockBits:
		isOne = true
	default:
		return false
	}

	prev := words[i-1]
	if !isLiteral(prev) {
		if isOneSequence(prev) != isOne {
			return false
		}
		words[i-1] = incrementSequenceCount(prev)
		return true
	}

	var adjCount int
	if isOne {
		adjCount = blockBits - literalBitCount(prev)
	} else {
		adjCount = literalBitCount(prev)
	}
	switch adjCount {
	case 0:
		words[i-1] = sequenceWord(0, isOne, 1)
	case 1:
		var bitPos int
		if isOne {
			bitPos = singleUnsetBitPosition(prev)
		} else {
			bitPos = singleSetBitPosition(prev)
		}
		words[i-1] = sequenceWord(bitPos+1, isOne, 1)
	default:
		return false
	}
	return true
}

// compactTail tries to fold the last word into its predecessor.
func (s *ConciseSet) compactTail() {
	i := len(s.words) - 1
	if compactAt(s.words, i) {
		s.words = s.words[:i]
	}
}

// trimZeros strips a wholly-zero tail from words: trailing all-zero
// literals are dropped, and a trailing zero-run is rewritten as the
// literal for its exception block (if any) or dropped entirely.
func trimZeros(words []uint32) []uint32 {
	n := len(words)
	for n > 0 {
		w := words[n-1]
		if isLiteral(w) {
			if literalBitCount(w) == 0 {
				n--
				continue
			}
			break
		}
		if isOneSequence(w) {
			break
		}
		b := exceptionBit(w)
		if b == 0 {
			n--
			continue
		}
		words[n-1] = literalMarker | bitMask(b-1)
		break
	}
	return words[:n]
}

// computeStats derives size, the highest member, and the bit position of
// that member within its (final) word, by scanning words left to right.
// It is used to restore a ConciseSet's cached counters after building or
// rewriting its words directly, bypassing the incremental append path.
func computeStats(words []uint32) (size int, maxBit int, lastWordBit int) {
	maxBit = -1
	block := 0
	for i, w := range words {
		last := i == len(words)-1
		if isLiteral(w) {
			payload := w & payloadMask
			size += onesCount(payload)
			if payload != 0 {
				maxBit = block*blockBits + highestSetBit(payload)
			}
			if last {
				lastWordBit = highestSetBit(payload)
			}
			block++
			continue
		}
		count := int(sequenceCount(w))
		blocksInRun := count + 1
		b := exceptionBit(w)
		if isOneSequence(w) {
			size += blocksInRun * blockBits
			if b != 0 {
				size--
			}
			maxBit = (block+blocksInRun-1)*blockBits + (blockBits - 1)
			if last {
				lastWordBit = blockBits - 1
			}
		} else {
			if b != 0 {
				size++
				maxBit = block*blockBits + (b - 1)
			}
			if last {
				lastWordBit = blockBits - 1
			}
		}
		block += blocksInRun
	}
	return size, maxBit, lastWordBit
}
