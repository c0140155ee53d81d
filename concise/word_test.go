package concise

import "testing"

func TestLiteralOfPassthrough(t *testing.T) {
	lit := literalMarker | 0x5
	if got := literalOf(lit); got != lit {
		t.Errorf("literalOf(%#x) = %#x, want unchanged", lit, got)
	}
}

func TestLiteralOfFromSequence(t *testing.T) {
	rows := []struct {
		bitPosition int
		isOne       bool
		expected    uint32
	}{
		{0, false, literalMarker},
		{0, true, literalMarker | payloadMask},
		{3, false, literalMarker | bitMask(2)},
		{3, true, (literalMarker | payloadMask) &^ bitMask(2)},
	}
	for i, row := range rows {
		w := sequenceWord(row.bitPosition, row.isOne, 0)
		got := literalOf(w)
		if got != row.expected {
			t.Errorf("case %d: literalOf(sequenceWord(%d,%v,0)) = %#x, want %#x", i, row.bitPosition, row.isOne, got, row.expected)
		}
	}
}

func TestSequenceWordRoundTrip(t *testing.T) {
	rows := []struct {
		isOne       bool
		bitPosition int
		extra       uint32
	}{
		{false, 0, 0},
		{true, 0, 5},
		{false, 17, 1<<25 - 1},
		{true, 31, 12345},
	}
	for i, row := range rows {
		w := sequenceWord(row.bitPosition, row.isOne, row.extra)
		if isLiteral(w) {
			t.Fatalf("case %d: sequenceWord produced a literal", i)
		}
		if row.isOne != isOneSequence(w) {
			t.Errorf("case %d: polarity mismatch", i)
		}
		if got := exceptionBit(w); got != row.bitPosition {
			t.Errorf("case %d: exceptionBit = %d, want %d", i, got, row.bitPosition)
		}
		if got := sequenceCount(w); got != row.extra {
			t.Errorf("case %d: sequenceCount = %d, want %d", i, got, row.extra)
		}
	}
}

func TestHighestSetBit(t *testing.T) {
	rows := []struct {
		payload  uint32
		expected int
	}{
		{1, 0},
		{1 << 30, 30},
		{1<<30 | 1, 30},
		{3, 1},
	}
	for i, row := range rows {
		got := highestSetBit(row.payload)
		if got != row.expected {
			t.Errorf("case %d: highestSetBit(%#x) = %d, want %d", i, row.payload, got, row.expected)
		}
	}
}

func TestIncrementSequenceCount(t *testing.T) {
	w := sequenceWord(3, true, 10)
	w = incrementSequenceCountBy(w, 5)
	if sequenceCount(w) != 15 {
		t.Errorf("incrementSequenceCountBy: count = %d, want 15", sequenceCount(w))
	}
	if exceptionBit(w) != 3 || !isOneSequence(w) {
		t.Errorf("incrementSequenceCountBy: polarity/exception bit not preserved")
	}
}
