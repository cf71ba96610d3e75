package equaset_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equapath/equaset.go/equaset"
	"github.com/equapath/equaset.go/equivalence"
)

func TestView_IsLazy(t *testing.T) {
	path := newCaseInsensitivePath()
	set := path.NewFastSet("a", "b", "c")

	transformCalls := 0
	view := equaset.MapView(set.View(), func(element string) string {
		transformCalls++

		return strings.ToUpper(element)
	})
	require.Zero(t, transformCalls, "no transform should run before the view is forced")

	forced := view.Force(path)
	require.Equal(t, 3, transformCalls, "forcing should run the transform once per element")
	require.True(t, forced.Equals(path.NewFastSet("A", "B", "C")), "wrong forced set")
}

func TestView_RetainsDuplicatesUntilForced(t *testing.T) {
	view := equaset.NewView("Bob", "BOB", "Alice")

	require.Len(t, view.ToSlice(), 3, "a view should retain duplicates")

	path := newCaseInsensitivePath()
	require.Equal(t, 2, view.Force(path).Size(), "forcing should deduplicate under the target strategy")
}

func TestView_FilterTakeDrop(t *testing.T) {
	view := equaset.NewView(1, 2, 3, 4, 5)

	require.Equal(t, []int{2, 4}, view.Filter(func(element int) bool { return element%2 == 0 }).ToSlice(), "wrong filtered elements")
	require.Equal(t, []int{1, 2}, view.Take(2).ToSlice(), "wrong taken elements")
	require.Equal(t, []int{4, 5}, view.Drop(3).ToSlice(), "wrong remaining elements")
	require.Equal(t, []int{1, 2, 3, 4, 5}, view.Take(9).ToSlice(), "overlong takes should be clamped")
}

func TestView_FlatMapAndCollect(t *testing.T) {
	view := equaset.NewView(1, 2)

	flattened := equaset.FlatMapView(view, func(element int) []string {
		return []string{strconv.Itoa(element), strconv.Itoa(element * 10)}
	})
	require.Equal(t, []string{"1", "10", "2", "20"}, flattened.ToSlice(), "wrong flattened elements")

	collected := equaset.CollectView(view, func(element int) (string, bool) {
		return strconv.Itoa(element), element%2 == 1
	})
	require.Equal(t, []string{"1"}, collected.ToSlice(), "wrong collected elements")
}

func TestView_Scans(t *testing.T) {
	view := equaset.NewView(1, 2, 3)

	require.Equal(t, []int{0, 1, 3, 6}, view.Scan(0, func(acc, element int) int { return acc + element }).ToSlice(), "wrong left scan")

	scannedRight := equaset.ScanRightView(view, 0, func(element, acc int) int { return element + acc })
	require.Equal(t, []int{6, 5, 3, 0}, scannedRight.ToSlice(), "wrong right scan")
}

func TestView_Zips(t *testing.T) {
	letters := equaset.NewView("a", "b", "c")
	numbers := equaset.NewView(1, 2)

	zipped := equaset.Zip(letters, numbers)
	require.Equal(t, []equaset.Pair[string, int]{{A: "a", B: 1}, {A: "b", B: 2}}, zipped.ToSlice(), "zip should truncate to the shorter side")

	zippedAll := equaset.ZipAll(letters, numbers, "?", 0)
	require.Equal(t, equaset.NewPair("c", 0), zippedAll.ToSlice()[2], "zipAll should pad the shorter side")

	indexed := equaset.ZipWithIndex(numbers)
	require.Equal(t, []equaset.Pair[int, int]{{A: 1, B: 0}, {A: 2, B: 1}}, indexed.ToSlice(), "wrong indexed pairs")

	left, right := equaset.Unzip(zipped)
	require.Equal(t, []string{"a", "b"}, left.ToSlice(), "wrong unzipped left side")
	require.Equal(t, []int{1, 2}, right.ToSlice(), "wrong unzipped right side")
}

func TestView_Unzip3(t *testing.T) {
	view := equaset.NewView(equaset.NewTriple("a", 1, true), equaset.NewTriple("b", 2, false))

	first, second, third := equaset.Unzip3(view)
	require.Equal(t, []string{"a", "b"}, first.ToSlice(), "wrong first components")
	require.Equal(t, []int{1, 2}, second.ToSlice(), "wrong second components")
	require.Equal(t, []bool{true, false}, third.ToSlice(), "wrong third components")
}

func TestView_ForceSorted(t *testing.T) {
	view := equaset.NewView(3, 13, 7)

	sortedPath := newMod10Path()
	treeSet, err := view.ForceSorted(sortedPath)
	require.NoError(t, err)
	require.Equal(t, []int{13, 7}, treeSet.ToSlice(), "forcing sorted should deduplicate and order by the target strategy")

	unorderedPath := equaset.NewPath[int](equivalence.Natural[int]())
	_, err = view.ForceSorted(unorderedPath)
	require.ErrorIs(t, err, equaset.ErrUnorderedPath, "forcing sorted into an unordered path should fail")
}

func TestView_SourceSetIsNotConsultedEagerly(t *testing.T) {
	path := newCaseInsensitivePath()
	set := path.NewFastSet("x", "y")

	view := set.View()
	otherPath := newCaseInsensitivePath()
	forced := view.Force(otherPath)

	require.Same(t, otherPath, forced.Path(), "forcing should bind the result to the target path")
	require.Equal(t, 2, forced.Size(), "the forced set should hold the source elements")
}
