package equaset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equapath/equaset.go/equaset"
	"github.com/equapath/equaset.go/equivalence"
)

func newMod10Path() *equaset.Path[int] {
	return equaset.NewPath[int](equivalence.ByOrdered(func(n int) int { return ((n % 10) + 10) % 10 }))
}

func TestTreeSet_Deduplication(t *testing.T) {
	path := newMod10Path()
	set, err := path.NewTreeSet(3, 13, 7)
	require.NoError(t, err)

	require.Equal(t, 2, set.Size(), "3 and 13 should collapse mod 10")
	require.True(t, set.Has(23), "membership should be evaluated mod 10")
	require.Equal(t, []int{13, 7}, set.ToSlice(), "iteration should be ascending mod 10 with the last class value retained")
}

func TestTreeSet_OrderingAgreement(t *testing.T) {
	path := equaset.NewPath[int](equivalence.NaturalOrdered[int]())
	set, err := path.NewTreeSet(5, 1, 4, 2, 3)
	require.NoError(t, err)

	elements := set.ToSlice()
	require.Equal(t, []int{1, 2, 3, 4, 5}, elements, "iteration should follow the strategy's order")
	for i := 1; i < len(elements); i++ {
		require.Less(t, elements[i-1], elements[i], "adjacent elements should be strictly increasing")
	}
}

func TestTreeSet_MinMax(t *testing.T) {
	path := newMod10Path()
	set, err := path.NewTreeSet(3, 13, 7)
	require.NoError(t, err)

	min, exists := set.Min()
	require.True(t, exists, "the set should have a minimum")
	require.Equal(t, 13, min, "the minimum is the retained representative of the smallest class")

	max, exists := set.Max()
	require.True(t, exists, "the set should have a maximum")
	require.Equal(t, 7, max, "the maximum is the largest class")

	first, _ := set.First()
	last, _ := set.Last()
	require.Equal(t, min, first, "First should be the minimum")
	require.Equal(t, max, last, "Last should be the maximum")
}

func TestTreeSet_EmptyAccess(t *testing.T) {
	path := newMod10Path()
	set, err := path.NewTreeSet()
	require.NoError(t, err)

	require.True(t, set.IsEmpty(), "the set should be empty")
	_, exists := set.Min()
	require.False(t, exists, "an empty set has no minimum")
	_, exists = set.Max()
	require.False(t, exists, "an empty set has no maximum")
}

func TestTreeSet_Algebra(t *testing.T) {
	path := equaset.NewPath[int](equivalence.NaturalOrdered[int]())
	left, err := path.NewTreeSet(1, 2, 3)
	require.NoError(t, err)
	right, err := path.NewTreeSet(3, 4)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 4}, left.Union(right).ToSlice(), "the union should be sorted")
	require.Equal(t, []int{3}, left.Intersect(right).ToSlice(), "wrong intersection")
	require.Equal(t, []int{1, 2}, left.Diff(right).ToSlice(), "wrong difference")
	require.True(t, right.Intersect(left).SubsetOf(left), "the intersection should be a subset")
}

func TestTreeSet_CrossKindEquality(t *testing.T) {
	path := equaset.NewPath[int](equivalence.NaturalOrdered[int]())
	treeSet, err := path.NewTreeSet(2, 1)
	require.NoError(t, err)
	fastSet := path.NewFastSet(1, 2)

	require.True(t, treeSet.Equals(fastSet), "sets of the same path and elements should be equal regardless of backing")
	require.True(t, fastSet.Equals(treeSet), "equality should be symmetric")
}

func TestTreeSet_PathIdentityGating(t *testing.T) {
	left, err := newMod10Path().NewTreeSet(1)
	require.NoError(t, err)
	right, err := newMod10Path().NewTreeSet(2)
	require.NoError(t, err)

	require.PanicsWithError(t, equaset.ErrIncompatiblePaths.Error(), func() { left.Union(right) }, "union across paths should panic")
}

func TestTreeSet_SequenceAccess(t *testing.T) {
	path := equaset.NewPath[int](equivalence.NaturalOrdered[int]())
	set, err := path.NewTreeSet(4, 1, 3, 2)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2}, set.Take(2).ToSlice(), "Take should keep the smallest elements")
	require.Equal(t, []int{3, 4}, set.Drop(2).ToSlice(), "Drop should keep the largest elements")

	chunks, err := set.Grouped(3)
	require.NoError(t, err)
	require.Len(t, chunks, 2, "wrong number of chunks")
	require.Equal(t, []int{1, 2, 3}, chunks[0].ToSlice(), "chunks should be cut in ascending order")

	matching, rest := set.Partition(func(element int) bool { return element%2 == 0 })
	require.Equal(t, []int{2, 4}, matching.ToSlice(), "wrong matching partition")
	require.Equal(t, []int{1, 3}, rest.ToSlice(), "wrong rest partition")
}

func TestTreeSet_String(t *testing.T) {
	path := equaset.NewPath[int](equivalence.NaturalOrdered[int]())
	set, err := path.NewTreeSet(2, 1)
	require.NoError(t, err)

	require.Equal(t, "TreeSet(1, 2)", set.String(), "wrong rendering")
}
