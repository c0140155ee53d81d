package concise

// Fill replaces s with s ∪ [from, to].
func (s *ConciseSet) Fill(from, to int) error {
	r, err := rangeSet(from, to)
	if err != nil {
		return err
	}
	s.notify("fill")
	s.replaceWith(combine(OpOR, s, r))
	return nil
}

// ClearRange replaces s with s \ [from, to].
func (s *ConciseSet) ClearRange(from, to int) error {
	r, err := rangeSet(from, to)
	if err != nil {
		return err
	}
	s.notify("clear_range")
	s.replaceWith(combine(OpANDNOT, s, r))
	return nil
}

// rangeSet builds, in O(1) words, the ConciseSet containing exactly
// [from, to].
func rangeSet(from, to int) (*ConciseSet, error) {
	if from < 0 || to > maxAllowed {
		bad := from
		if from >= 0 {
			bad = to
		}
		return nil, &OutOfRangeError{Value: int64(bad)}
	}
	if from > to {
		return nil, &OutOfRangeError{Value: int64(from)}
	}

	fromBlock := from / blockBits
	toBlock := to / blockBits
	fromBit := from % blockBits
	toBit := to % blockBits

	var words []uint32
	if fromBlock > 0 {
		if fromBlock == 1 {
			words = append(words, literalMarker)
		} else {
			words = append(words, sequenceWord(0, false, uint32(fromBlock-1)))
		}
	}
	if fromBlock == toBlock {
		words = append(words, literalMarker|rangeMaskInclusive(fromBit, toBit))
	} else {
		words = append(words, literalMarker|rangeMaskInclusive(fromBit, blockBits-1))
		midBlocks := toBlock - fromBlock - 1
		if midBlocks > 0 {
			words = append(words, sequenceWord(0, true, uint32(midBlocks-1)))
		}
		words = append(words, literalMarker|rangeMaskInclusive(0, toBit))
	}
	words = compactForward(words)

	size, maxBit, lastBit := computeStats(words)
	return &ConciseSet{
		words:                words,
		size:                 size,
		maxSetBit:            maxBit,
		lastSetBitOfLastWord: lastBit,
	}, nil
}

// compactForward folds any directly-constructed all-zero/all-one literals
// into neighboring runs, left to right. rangeSet only ever produces at
// most four words, so the repeated scan is not worth optimizing further.
func compactForward(words []uint32) []uint32 {
	i := 1
	for i < len(words) {
		if compactAt(words, i) {
			words = append(words[:i], words[i+1:]...)
			continue
		}
		i++
	}
	return words
}
