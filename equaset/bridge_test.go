package equaset_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equapath/equaset.go/equaset"
	"github.com/equapath/equaset.go/equivalence"
)

func TestBridge_MapChangesEquivalenceDomain(t *testing.T) {
	sourcePath := equaset.NewPath[string](equivalence.Natural[string]())
	source := sourcePath.NewFastSet("A", "a", "b")
	require.Equal(t, 3, source.Size(), "native equality should keep both casings")

	targetPath := newCaseInsensitivePath()
	bridged := equaset.Into[string, string](source, targetPath).Map(func(element string) string { return element })

	require.Same(t, targetPath, bridged.Path(), "the result should be minted by the target path")
	require.Equal(t, 2, bridged.Size(), "re-boxing should deduplicate under the target strategy")
}

func TestBridge_FlatMapAndCollect(t *testing.T) {
	sourcePath := equaset.NewPath[int](equivalence.Natural[int]())
	source := sourcePath.NewFastSet(1, 2)
	targetPath := equaset.NewPath[string](equivalence.Natural[string]())
	bridge := equaset.Into[int, string](source, targetPath)

	flattened := bridge.FlatMap(func(element int) []string {
		return []string{strconv.Itoa(element), strconv.Itoa(element)}
	})
	require.Equal(t, 2, flattened.Size(), "duplicates emitted by the transform should collapse")

	collected := bridge.Collect(func(element int) (string, bool) {
		return strconv.Itoa(element), element > 1
	})
	require.True(t, collected.Is("2"), "only the passing element should land in the target")
}

func TestBridge_Scans(t *testing.T) {
	sourcePath := equaset.NewPath[int](equivalence.Natural[int]())
	source := sourcePath.NewFastSet(1, 2, 3)
	targetPath := equaset.NewPath[int](equivalence.Natural[int]())

	scanned := equaset.Into[int, int](source, targetPath).ScanLeft(0, func(acc, element int) int { return acc + element })
	require.True(t, scanned.Equals(targetPath.NewFastSet(0, 1, 3, 6)), "wrong left scan result")

	scannedRight := equaset.Into[int, int](source, targetPath).ScanRight(0, func(element, acc int) int { return element + acc })
	require.True(t, scannedRight.Equals(targetPath.NewFastSet(6, 5, 3, 0)), "wrong right scan result")
}

func TestSortedBridge(t *testing.T) {
	sourcePath := equaset.NewPath[int](equivalence.Natural[int]())
	source := sourcePath.NewFastSet(3, 1, 2)

	orderedTarget := equaset.NewPath[string](equivalence.NaturalOrdered[string]())
	bridge, err := equaset.IntoSorted[int, string](source, orderedTarget)
	require.NoError(t, err)

	mapped := bridge.Map(strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, mapped.ToSlice(), "the result should iterate in the target order")

	unorderedTarget := equaset.NewPath[string](equivalence.Natural[string]())
	_, err = equaset.IntoSorted[int, string](source, unorderedTarget)
	require.ErrorIs(t, err, equaset.ErrUnorderedPath, "a sorted bridge needs an ordered target")
}
