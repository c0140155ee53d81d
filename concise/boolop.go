package concise

// Operator names a boolean set operation for the pair-wise engine that
// backs Intersection, Union, Difference and SymmetricDifference.
type Operator uint8

const (
	OpAND Operator = iota
	OpOR
	OpXOR
	OpANDNOT
)

func (op Operator) String() string {
	switch op {
	case OpAND:
		return "AND"
	case OpOR:
		return "OR"
	case OpXOR:
		return "XOR"
	case OpANDNOT:
		return "ANDNOT"
	default:
		return "UNKNOWN"
	}
}

// combineLiterals applies op to a single pair of 31-bit literal blocks,
// always returning the result in literal form.
func combineLiterals(op Operator, a, b uint32) uint32 {
	switch op {
	case OpAND:
		return (a & b) | literalMarker
	case OpOR:
		return (a | b) | literalMarker
	case OpXOR:
		return (a ^ b) | literalMarker
	case OpANDNOT:
		return (a &^ b) | literalMarker
	default:
		panic("concise: unknown operator")
	}
}

// combine is the entry point for every pair-wise set operation. It takes
// the documented empty-operand fast paths before falling back to the full
// two-iterator walk.
func combine(op Operator, a, b *ConciseSet) *ConciseSet {
	aEmpty := a.size == 0
	bEmpty := b.size == 0
	switch op {
	case OpAND:
		if aEmpty || bEmpty {
			return New()
		}
	case OpOR, OpXOR:
		if aEmpty && bEmpty {
			return New()
		}
		if aEmpty {
			return b.Clone()
		}
		if bEmpty {
			return a.Clone()
		}
	case OpANDNOT:
		if aEmpty {
			return New()
		}
		if bEmpty {
			return a.Clone()
		}
	}
	return combineNonEmpty(op, a, b)
}

func combineNonEmpty(op Operator, a, b *ConciseSet) *ConciseSet {
	scratch := make([]uint32, 0, len(a.words)+len(b.words)+1)
	ia := newWordIterator(a.words)
	ib := newWordIterator(b.words)

	for !ia.endOfWords() && !ib.endOfWords() {
		r := combineLiterals(op, ia.currentLiteral, ib.currentLiteral)
		scratch = append(scratch, r)
		idx := len(scratch) - 1
		if compactAt(scratch, idx) {
			scratch = scratch[:idx]
			idx--
		}
		if idx >= 0 && !isLiteral(scratch[idx]) && canSkipBothSequences(&ia, &ib) {
			n := skipBothSequences(&ia, &ib)
			scratch[idx] = incrementSequenceCountBy(scratch[idx], n)
		}
		ia.advance()
		ib.advance()
	}

	switch op {
	case OpAND:
		// Neither side contributes once the other runs out.
	case OpOR, OpXOR:
		if !ia.endOfWords() {
			appendRemaining(&scratch, &ia)
		} else if !ib.endOfWords() {
			appendRemaining(&scratch, &ib)
		}
	case OpANDNOT:
		if !ia.endOfWords() {
			appendRemaining(&scratch, &ia)
		}
	}

	return finishResult(scratch)
}

// appendRemaining copies the rest of it's blocks into scratch, bulk-adding
// any whole remaining run rather than replaying it block by block.
func appendRemaining(scratch *[]uint32, it *wordIterator) {
	for !it.endOfWords() {
		lit := it.currentLiteral
		*scratch = append(*scratch, lit)
		idx := len(*scratch) - 1
		if compactAt(*scratch, idx) {
			*scratch = (*scratch)[:idx]
			idx--
		}
		if idx >= 0 && !isLiteral((*scratch)[idx]) && !isLiteral(it.wordCopy) {
			n := skipOneSequence(it)
			(*scratch)[idx] = incrementSequenceCountBy((*scratch)[idx], n)
		}
		it.advance()
	}
}

// finishResult trims a trailing zero tail from scratch and rebuilds the
// cached size/max-bit counters from what remains.
func finishResult(scratch []uint32) *ConciseSet {
	scratch = trimZeros(scratch)
	if len(scratch) == 0 {
		return New()
	}
	size, maxBit, lastBit := computeStats(scratch)
	return &ConciseSet{
		words:                scratch,
		size:                 size,
		maxSetBit:            maxBit,
		lastSetBitOfLastWord: lastBit,
	}
}
