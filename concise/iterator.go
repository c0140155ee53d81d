package concise

// wordIterator walks a words slice one 31-bit block at a time, exposing
// each block as a literal via currentLiteral regardless of whether the
// underlying word is a literal or a run. It mutates its own copy of the
// current run word as blocks are consumed, never the host's slice.
type wordIterator struct {
	words          []uint32
	wordIndex      int
	wordCopy       uint32
	currentLiteral uint32

	// remainingWords is len(words)-wordIndex-1, or -1 once exhausted.
	remainingWords int
}

func newWordIterator(words []uint32) wordIterator {
	it := wordIterator{words: words, remainingWords: -1}
	if len(words) == 0 {
		return it
	}
	it.wordCopy = words[0]
	it.currentLiteral = literalOf(it.wordCopy)
	it.remainingWords = len(words) - 1
	return it
}

func (it *wordIterator) endOfWords() bool {
	return it.remainingWords < 0
}

// hasMoreLiterals reports whether there is at least one more block after
// the current one.
func (it *wordIterator) hasMoreLiterals() bool {
	if it.remainingWords < 0 {
		return false
	}
	if it.remainingWords > 0 {
		return true
	}
	if isLiteral(it.wordCopy) {
		return false
	}
	return sequenceCount(it.wordCopy) > 0
}

// advance moves to the next block, crossing into the next word when the
// current one (literal, or a run with no blocks left) is exhausted.
func (it *wordIterator) advance() {
	if isLiteral(it.wordCopy) || sequenceCount(it.wordCopy) == 0 {
		it.wordIndex++
		it.remainingWords--
		if it.remainingWords < 0 {
			return
		}
		it.wordCopy = it.words[it.wordIndex]
		it.currentLiteral = literalOf(it.wordCopy)
		return
	}
	count := sequenceCount(it.wordCopy) - 1
	w := sequenceWithoutException(it.wordCopy)
	w = (w &^ sequenceCountMask) | (count & sequenceCountMask)
	it.wordCopy = w
	it.currentLiteral = literalOf(w)
}

// canSkipBothSequences reports whether both iterators currently sit on a
// no-exception run of the same polarity, so that a whole shared span of
// blocks can be advanced in one step instead of block by block.
func canSkipBothSequences(a, b *wordIterator) bool {
	return !isLiteral(a.wordCopy) && !isLiteral(b.wordCopy) &&
		isSequenceWithNoBits(a.wordCopy) && isSequenceWithNoBits(b.wordCopy) &&
		isOneSequence(a.wordCopy) == isOneSequence(b.wordCopy)
}

// skipBothSequences consumes min(count_a, count_b) additional blocks from
// both iterators' current runs, returning that shared count. Callers must
// have checked canSkipBothSequences first.
func skipBothSequences(a, b *wordIterator) uint32 {
	ca := sequenceCount(a.wordCopy)
	cb := sequenceCount(b.wordCopy)
	n := ca
	if cb < n {
		n = cb
	}
	a.wordCopy = (a.wordCopy &^ sequenceCountMask) | ((ca - n) & sequenceCountMask)
	b.wordCopy = (b.wordCopy &^ sequenceCountMask) | ((cb - n) & sequenceCountMask)
	a.currentLiteral = literalOf(a.wordCopy)
	b.currentLiteral = literalOf(b.wordCopy)
	return n
}

// skipOneSequence drains every remaining block out of it's current run,
// returning how many there were.
func skipOneSequence(it *wordIterator) uint32 {
	n := sequenceCount(it.wordCopy)
	it.wordCopy = it.wordCopy &^ sequenceCountMask
	it.currentLiteral = literalOf(it.wordCopy)
	return n
}
