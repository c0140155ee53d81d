// Package indexedset provides IndexedSet, a generic facade over
// concise.ConciseSet that lets callers store sets of arbitrary comparable
// values instead of raw integer indices. Each distinct value is assigned
// an index the first time it is seen; membership, mutation and the
// Boolean operators all forward to the wrapped ConciseSet of indices.
package indexedset

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/conciseset/concise"
)

// IndexedSet is a set of T, backed by a shared universe/index mapping and
// a *concise.ConciseSet of the assigned indices.
type IndexedSet[T comparable] struct {
	universe *[]T
	index    map[T]int
	bits     *concise.ConciseSet
	log      *logrus.Entry
}

// New returns an empty IndexedSet with its own fresh universe.
func New[T comparable]() *IndexedSet[T] {
	universe := make([]T, 0)
	return &IndexedSet[T]{
		universe: &universe,
		index:    make(map[T]int),
		bits:     concise.New(),
		log:      logrus.WithField("component", "indexedset"),
	}
}

// NewSharing returns an empty IndexedSet that shares its universe/index
// mapping with other — so values added through either set resolve to the
// same index, letting the two be combined directly with Union,
// Intersection and friends.
func NewSharing[T comparable](other *IndexedSet[T]) *IndexedSet[T] {
	return &IndexedSet[T]{
		universe: other.universe,
		index:    other.index,
		bits:     concise.New(),
		log:      other.log,
	}
}

func (s *IndexedSet[T]) resolve(v T) (int, bool) {
	idx, ok := s.index[v]
	return idx, ok
}

func (s *IndexedSet[T]) intern(v T) int {
	if idx, ok := s.index[v]; ok {
		return idx
	}
	idx := len(*s.universe)
	*s.universe = append(*s.universe, v)
	s.index[v] = idx
	return idx
}

// Add inserts v, reporting whether it was not already present.
func (s *IndexedSet[T]) Add(v T) (bool, error) {
	idx := s.intern(v)
	added, err := s.bits.Add(idx)
	if err != nil {
		return false, errors.Wrapf(err, "indexedset: add %v (index %d)", v, idx)
	}
	return added, nil
}

// Remove deletes v, reporting whether it had been present.
func (s *IndexedSet[T]) Remove(v T) bool {
	idx, ok := s.resolve(v)
	if !ok {
		return false
	}
	return s.bits.Remove(idx)
}

// Index returns the index assigned to v and whether v has been interned
// into s's universe at all (which is independent of whether v is
// currently a member of s — an index, once assigned, is never reused).
func (s *IndexedSet[T]) Index(v T) (int, bool) {
	return s.resolve(v)
}

// Contains reports whether v is a member of s.
func (s *IndexedSet[T]) Contains(v T) bool {
	idx, ok := s.resolve(v)
	if !ok {
		return false
	}
	return s.bits.Contains(idx)
}

// Len returns the number of members in s.
func (s *IndexedSet[T]) Len() int { return s.bits.Len() }

// IsEmpty reports whether s has no members.
func (s *IndexedSet[T]) IsEmpty() bool { return s.bits.IsEmpty() }

// Iterate returns an iter.Seq[T] over s's members, ascending by index.
func (s *IndexedSet[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		u := *s.universe
		s.bits.Iterate(func(idx int) bool {
			return yield(u[idx])
		})
	}
}

// combinePreflight reports an error if any value interned in other's
// mapping is missing from s's mapping or has a different index there;
// combining two IndexedSets whose mappings diverge would silently compare
// unrelated index spaces, so indexedset refuses rather than guess — the
// caller must reindex one set into the other's universe first. Two
// independently built sets whose mappings happen to agree pass the check.
func (s *IndexedSet[T]) combinePreflight(other *IndexedSet[T]) error {
	for v, idx := range other.index {
		if got, ok := s.index[v]; !ok || got != idx {
			s.log.WithFields(logrus.Fields{"value": v, "other_index": idx}).
				Warn("indexedset: peer universe diverges, refusing to combine")
			return errors.Errorf("indexedset: %v combined sets do not share a universe", v)
		}
	}
	return nil
}

// Union returns s ∪ other as a new IndexedSet sharing s's universe.
func (s *IndexedSet[T]) Union(other *IndexedSet[T]) (*IndexedSet[T], error) {
	if err := s.combinePreflight(other); err != nil {
		return nil, err
	}
	return s.wrap(s.bits.Union(other.bits)), nil
}

// Intersection returns s ∩ other as a new IndexedSet sharing s's universe.
func (s *IndexedSet[T]) Intersection(other *IndexedSet[T]) (*IndexedSet[T], error) {
	if err := s.combinePreflight(other); err != nil {
		return nil, err
	}
	return s.wrap(s.bits.Intersection(other.bits)), nil
}

// Difference returns s \ other as a new IndexedSet sharing s's universe.
func (s *IndexedSet[T]) Difference(other *IndexedSet[T]) (*IndexedSet[T], error) {
	if err := s.combinePreflight(other); err != nil {
		return nil, err
	}
	return s.wrap(s.bits.Difference(other.bits)), nil
}

func (s *IndexedSet[T]) wrap(bits *concise.ConciseSet) *IndexedSet[T] {
	return &IndexedSet[T]{universe: s.universe, index: s.index, bits: bits, log: s.log}
}
