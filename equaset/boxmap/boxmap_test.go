package boxmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equapath/equaset.go/equaset/boxmap"
	"github.com/equapath/equaset.go/equivalence"
)

func newCaseInsensitiveMap() *boxmap.OrderedMap[string, int] {
	return boxmap.New[string, int](
		func(key string) uint64 { return equivalence.HashString(strings.ToLower(key)) },
		strings.EqualFold,
	)
}

func TestOrderedMap_SetGet(t *testing.T) {
	m := newCaseInsensitiveMap()

	_, existed := m.Set("Bob", 1)
	require.False(t, existed, "the key should not exist yet")
	require.Equal(t, 1, m.Size(), "wrong size")

	value, exists := m.Get("BOB")
	require.True(t, exists, "an equivalent key should be found")
	require.Equal(t, 1, value, "wrong value")

	_, exists = m.Get("Alice")
	require.False(t, exists, "a missing key should not be found")
}

func TestOrderedMap_SetReplacesKey(t *testing.T) {
	m := newCaseInsensitiveMap()

	m.Set("Bob", 1)
	m.Set("Alice", 2)

	previous, existed := m.Set("BOB", 3)
	require.True(t, existed, "an equivalent key should already exist")
	require.Equal(t, 1, previous, "wrong previous value")
	require.Equal(t, 2, m.Size(), "replacing should not grow the map")

	key, value, exists := m.Head()
	require.True(t, exists, "the map should not be empty")
	require.Equal(t, "BOB", key, "the key supplied last should be retained")
	require.Equal(t, 3, value, "the value supplied last should be retained")
}

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := newCaseInsensitiveMap()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	keys := make([]string, 0)
	m.ForEach(func(key string, _ int) bool {
		keys = append(keys, key)

		return true
	})
	require.Equal(t, []string{"c", "a", "b"}, keys, "iteration should follow insertion order")

	keys = keys[:0]
	m.ForEachReverse(func(key string, _ int) bool {
		keys = append(keys, key)

		return true
	})
	require.Equal(t, []string{"b", "a", "c"}, keys, "reverse iteration should invert insertion order")
}

func TestOrderedMap_Delete(t *testing.T) {
	m := newCaseInsensitiveMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	require.True(t, m.Delete("B"), "an equivalent key should be deletable")
	require.False(t, m.Delete("b"), "the key should be gone")
	require.Equal(t, 2, m.Size(), "wrong size")

	key, _, exists := m.Tail()
	require.True(t, exists, "the map should not be empty")
	require.Equal(t, "c", key, "the tail should be intact after deleting in the middle")

	require.True(t, m.Delete("a"), "the head should be deletable")
	key, _, exists = m.Head()
	require.True(t, exists, "the map should not be empty")
	require.Equal(t, "c", key, "the head should advance after deleting it")
}

func TestOrderedMap_Clone(t *testing.T) {
	m := newCaseInsensitiveMap()
	m.Set("a", 1)
	m.Set("b", 2)

	cloned := m.Clone()
	require.Equal(t, 2, cloned.Size(), "wrong size")

	cloned.Set("c", 3)
	require.Equal(t, 2, m.Size(), "the original should be unaffected by the clone")
	require.True(t, cloned.Has("A"), "the clone should share the equality functions")
}

func TestOrderedMap_Clear(t *testing.T) {
	m := newCaseInsensitiveMap()
	m.Set("a", 1)

	m.Clear()
	require.True(t, m.IsEmpty(), "the map should be empty after Clear")
	_, _, exists := m.Head()
	require.False(t, exists, "the head should be gone after Clear")
}
