// Package pairset provides PairSet, a binary matrix of fixed width backed
// by a single concise.ConciseSet of packed (row, col) indices, and
// PairMap, a transaction/item variant for frequent-itemset-style
// workloads built atop an indexedset.IndexedSet[string] item dictionary.
//
// Both pack a 2-D coordinate into a single sortable index, generalized
// from a byte range's Lo/Hi pair to an arbitrary-width row/col index.
package pairset

import (
	"iter"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/conciseset/concise"
	"github.com/chronos-tachyon/conciseset/indexedset"
)

// PairSet is a binary matrix with a fixed column width, stored as the set
// of row*maxCol+col indices present.
type PairSet struct {
	maxCol int
	bits   *concise.ConciseSet
}

// NewPairSet returns an empty PairSet with the given column width. maxCol
// must be positive.
func NewPairSet(maxCol int) (*PairSet, error) {
	if maxCol <= 0 {
		return nil, errors.Errorf("pairset: maxCol must be positive, got %d", maxCol)
	}
	return &PairSet{maxCol: maxCol, bits: concise.New()}, nil
}

func (p *PairSet) pack(row, col int) (int, error) {
	if row < 0 || col < 0 || col >= p.maxCol {
		return 0, errors.Errorf("pairset: (%d,%d) out of range for maxCol=%d", row, col, p.maxCol)
	}
	return row*p.maxCol + col, nil
}

// Set marks (row, col), reporting whether it was not already set.
func (p *PairSet) Set(row, col int) (bool, error) {
	idx, err := p.pack(row, col)
	if err != nil {
		return false, err
	}
	added, err := p.bits.Add(idx)
	if err != nil {
		return false, errors.Wrapf(err, "pairset: set (%d,%d)", row, col)
	}
	return added, nil
}

// Clear unmarks (row, col), reporting whether it had been set.
func (p *PairSet) Clear(row, col int) (bool, error) {
	idx, err := p.pack(row, col)
	if err != nil {
		return false, err
	}
	return p.bits.Remove(idx), nil
}

// Test reports whether (row, col) is marked.
func (p *PairSet) Test(row, col int) (bool, error) {
	idx, err := p.pack(row, col)
	if err != nil {
		return false, err
	}
	return p.bits.Contains(idx), nil
}

// Row returns an iter.Seq[int] over the columns set in row, ascending.
// It iterates the underlying ConciseSet from its smallest member and stops
// at the first index at or past row*maxCol+maxCol, so every marked cell in
// earlier rows is visited and skipped; the cost is not bounded by maxCol.
func (p *PairSet) Row(row int) iter.Seq[int] {
	lo := row * p.maxCol
	hi := lo + p.maxCol
	return func(yield func(int) bool) {
		p.bits.Iterate(func(idx int) bool {
			if idx < lo {
				return true
			}
			if idx >= hi {
				return false
			}
			return yield(idx - lo)
		})
	}
}

// Len returns the number of marked cells.
func (p *PairSet) Len() int { return p.bits.Len() }

// PairMap is a transaction/item pair set for frequent-itemset-style
// workloads: each transaction is a ConciseSet of item indices drawn from
// a shared item dictionary. Transactions are keyed by a minted uuid.UUID
// rather than a sequential index, so transaction identifiers remain
// stable across merges of PairMaps built independently (e.g. batches
// ingested from different sources).
type PairMap struct {
	items        *indexedset.IndexedSet[string]
	order        []uuid.UUID
	transactions map[uuid.UUID]*concise.ConciseSet
}

// NewPairMap returns an empty PairMap with a fresh item dictionary.
func NewPairMap() *PairMap {
	return &PairMap{
		items:        indexedset.New[string](),
		transactions: make(map[uuid.UUID]*concise.ConciseSet),
	}
}

// NewTransaction starts a new, empty transaction and returns its id.
func (m *PairMap) NewTransaction() uuid.UUID {
	id := uuid.New()
	m.transactions[id] = concise.New()
	m.order = append(m.order, id)
	return id
}

// AddItem marks item as present in the given transaction, interning item
// into the shared dictionary if it has not been seen before.
func (m *PairMap) AddItem(transaction uuid.UUID, item string) error {
	txn, ok := m.transactions[transaction]
	if !ok {
		return errors.Errorf("pairmap: unknown transaction %s", transaction)
	}
	if _, err := m.items.Add(item); err != nil {
		return errors.Wrapf(err, "pairmap: add item %q", item)
	}
	itemIdx, _ := m.items.Index(item)
	if _, err := txn.Add(itemIdx); err != nil {
		return errors.Wrapf(err, "pairmap: mark item %q in transaction %s", item, transaction)
	}
	return nil
}

// Transaction returns the ConciseSet of item indices for the given
// transaction id, and whether that transaction exists.
func (m *PairMap) Transaction(id uuid.UUID) (*concise.ConciseSet, bool) {
	txn, ok := m.transactions[id]
	return txn, ok
}

// Transactions returns every transaction's ConciseSet of item indices, in
// minting order.
func (m *PairMap) Transactions() []*concise.ConciseSet {
	out := make([]*concise.ConciseSet, len(m.order))
	for i, id := range m.order {
		out[i] = m.transactions[id]
	}
	return out
}

// Items returns the shared item dictionary.
func (m *PairMap) Items() *indexedset.IndexedSet[string] {
	return m.items
}
