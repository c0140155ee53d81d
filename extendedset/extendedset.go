// Package extendedset defines ExtendedSet, a common abstraction over
// concise.ConciseSet and fastset.FastSet, so callers can depend on the
// set-of-integers contract and swap the concrete representation without
// touching call sites.
package extendedset

// ExtendedSet is the common contract satisfied by both
// *concise.ConciseSet and *fastset.FastSet.
type ExtendedSet interface {
	// Contains reports whether x is a member of the set.
	Contains(x int) bool

	// Iterate calls f for every member in ascending order, stopping
	// early if f returns false.
	Iterate(f func(int) bool)

	// Len returns the number of members.
	Len() int

	// IsEmpty reports whether the set has no members.
	IsEmpty() bool

	// Compact returns an equivalent set in the implementation's most
	// compact internal form. For concise.ConciseSet this is a no-op
	// (it is already maximally compacted after every mutation); for
	// fastset.FastSet it is also effectively a no-op, since FastSet
	// performs no run compaction by design — the method exists so
	// callers can request compaction uniformly regardless of which
	// concrete implementation they're holding.
	Compact() ExtendedSet

	// String returns a short human-readable summary of the set.
	String() string
}
