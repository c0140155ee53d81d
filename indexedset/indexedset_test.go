package indexedset

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s *IndexedSet[string]) []string {
	t.Helper()
	var out []string
	for v := range s.Iterate() {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func TestAddContainsRemove(t *testing.T) {
	s := New[string]()

	added, err := s.Add("alpha")
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.Add("alpha")
	require.NoError(t, err)
	require.False(t, added, "re-adding an existing value should report false")

	require.True(t, s.Contains("alpha"))
	require.False(t, s.Contains("beta"))

	require.True(t, s.Remove("alpha"))
	require.False(t, s.Contains("alpha"))
	require.False(t, s.Remove("alpha"), "removing twice should report false")
}

func TestSharedUniverseBooleanOps(t *testing.T) {
	a := New[string]()
	b := NewSharing(a)

	for _, v := range []string{"a", "b", "c"} {
		_, err := a.Add(v)
		require.NoError(t, err)
	}
	for _, v := range []string{"b", "c", "d"} {
		_, err := b.Add(v)
		require.NoError(t, err)
	}

	union, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, collect(t, union))

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, collect(t, inter))

	diff, err := a.Difference(b)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, collect(t, diff))
}

func TestCombineRefusesDivergentUniverse(t *testing.T) {
	a := New[string]()
	b := New[string]() // independent universe, not NewSharing(a)

	_, err := a.Add("x")
	require.NoError(t, err)
	_, err = b.Add("x")
	require.NoError(t, err)
	_, err = b.Add("y")
	require.NoError(t, err)

	_, err = a.Union(b)
	require.Error(t, err, "combining sets with independently assigned indices must fail, not silently misbehave")
}

func TestLenAndIsEmpty(t *testing.T) {
	s := New[string]()
	require.True(t, s.IsEmpty())
	_, err := s.Add("x")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.False(t, s.IsEmpty())
}
