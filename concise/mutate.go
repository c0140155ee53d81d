package concise

// Add inserts x into s, reporting whether it was not already present.
// x must be in [0, maxAllowed]; otherwise Add returns an *OutOfRangeError.
//
// Appending past the current maximum, setting a bit in a literal word that
// has fewer than blockBits-2 bits set, and setting a one-run's exception
// bit all happen in place. Inserting into a zero run, or into a literal
// that is nearly full, falls back to replacing s's state with the result
// of ORing s with a one-element set — the open question of giving that fallback its own
// fast path was decided against: matching the OR engine's output exactly,
// word for word, is worth more than a marginal constant-factor win on an
// already-rare path.
func (s *ConciseSet) Add(x int) (bool, error) {
	if x < 0 || x > maxAllowed {
		return false, &OutOfRangeError{Value: int64(x)}
	}
	s.notify("add")
	if len(s.words) == 0 || x > s.maxSetBit {
		s.growInto(x)
		s.generation++
		return true, nil
	}

	blockIndex := x / blockBits
	bitPos := x % blockBits

	for i, w := range s.words {
		if isLiteral(w) {
			if blockIndex == 0 {
				if w&bitMask(bitPos) != 0 {
					return false, nil
				}
				if literalBitCount(w) >= blockBits-2 {
					break
				}
				s.words[i] = w | bitMask(bitPos)
				s.size++
				s.generation++
				return true, nil
			}
			blockIndex--
			continue
		}

		count := int(sequenceCount(w))
		if blockIndex == 0 {
			if isOneSequence(w) {
				b := exceptionBit(w)
				if b == 0 {
					return false, nil
				}
				if bitPos == b-1 {
					s.words[i] = sequenceWithoutException(w)
					s.size++
					s.generation++
					return true, nil
				}
				return false, nil
			}
			b := exceptionBit(w)
			if b != 0 && bitPos == b-1 {
				return false, nil
			}
			break
		}
		if blockIndex <= count {
			if isOneSequence(w) {
				return false, nil
			}
			break
		}
		blockIndex -= count + 1
	}

	singleton := singletonSet(x)
	s.replaceWith(combine(OpOR, s, singleton))
	return true, nil
}

// Remove deletes x from s, reporting whether it had been present.
// Clearing a bit in a literal word with more than two bits set, and
// clearing a zero run's exception bit, happen in place. Removing from a
// one-run, or from a literal with two or fewer bits set, falls back to
// replacing s's state with the result of ANDNOTing s by a one-element
// set, mirroring Add's fallback.
func (s *ConciseSet) Remove(x int) bool {
	if x < 0 || x > s.maxSetBit {
		return false
	}
	s.notify("remove")

	blockIndex := x / blockBits
	bitPos := x % blockBits

	for i, w := range s.words {
		if isLiteral(w) {
			if blockIndex == 0 {
				if w&bitMask(bitPos) == 0 {
					return false
				}
				// Mirrors Add's near-all-ones threshold.
				if literalBitCount(w) <= 2 {
					break
				}
				s.words[i] = w &^ bitMask(bitPos)
				s.size--
				s.generation++
				if x == s.maxSetBit {
					s.refreshMaxAfterShrink()
				}
				return true
			}
			blockIndex--
			continue
		}

		count := int(sequenceCount(w))
		if blockIndex == 0 {
			if isOneSequence(w) {
				b := exceptionBit(w)
				if b != 0 && bitPos == b-1 {
					return false
				}
				break
			}
			b := exceptionBit(w)
			if b == 0 {
				return false
			}
			if bitPos == b-1 {
				s.words[i] = sequenceWithoutException(w)
				s.size--
				s.generation++
				if x == s.maxSetBit {
					s.refreshMaxAfterShrink()
				}
				return true
			}
			return false
		}
		if blockIndex <= count {
			if isOneSequence(w) {
				break
			}
			return false
		}
		blockIndex -= count + 1
	}

	singleton := singletonSet(x)
	s.replaceWith(combine(OpANDNOT, s, singleton))
	return true
}

// Flip toggles x's membership in s.
func (s *ConciseSet) Flip(x int) error {
	if s.Contains(x) {
		s.Remove(x)
		return nil
	}
	_, err := s.Add(x)
	return err
}

// Clear empties s in place.
func (s *ConciseSet) Clear() {
	s.notify("clear")
	s.words = nil
	s.size = 0
	s.maxSetBit = -1
	s.lastSetBitOfLastWord = -1
	s.generation++
}

// AddAll replaces s with s ∪ other.
func (s *ConciseSet) AddAll(other *ConciseSet) {
	s.notify("add_all")
	if other.size == 1 {
		s.Add(other.maxSetBit)
		return
	}
	s.replaceWith(combine(OpOR, s, other))
}

// RemoveAll replaces s with s \ other.
func (s *ConciseSet) RemoveAll(other *ConciseSet) {
	s.notify("remove_all")
	if other.size == 1 {
		s.Remove(other.maxSetBit)
		return
	}
	s.replaceWith(combine(OpANDNOT, s, other))
}

// RetainAll replaces s with s ∩ other.
func (s *ConciseSet) RetainAll(other *ConciseSet) {
	s.notify("retain_all")
	s.replaceWith(combine(OpAND, s, other))
}

func (s *ConciseSet) replaceWith(result *ConciseSet) {
	savedGen := s.generation
	observer := s.observer
	*s = *result
	s.generation = savedGen + 1
	s.observer = observer
}

func (s *ConciseSet) refreshMaxAfterShrink() {
	if len(s.words) == 0 {
		s.maxSetBit = -1
		s.lastSetBitOfLastWord = -1
		return
	}
	_, maxBit, lastBit := computeStats(s.words)
	s.maxSetBit = maxBit
	s.lastSetBitOfLastWord = lastBit
}

func singletonSet(x int) *ConciseSet {
	s := New()
	s.growInto(x)
	return s
}
