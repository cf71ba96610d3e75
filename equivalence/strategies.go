package equivalence

import (
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Natural returns a Strategy that mirrors the native equality of the value type.
func Natural[T comparable]() Strategy[T] {
	return New[T](
		func(a, b T) bool { return a == b },
		func(v T) uint64 { return HashValue(v) },
	)
}

// NaturalOrdered returns an OrderedStrategy that mirrors the native equality and ordering of the value type.
func NaturalOrdered[T constraints.Ordered]() OrderedStrategy[T] {
	return NewOrdered[T](lo.Comparator[T], func(v T) uint64 { return HashValue(v) })
}

// By returns a Strategy that considers two values equivalent if the given key projection maps them to the same key.
// Since the relation is inherited from the key's native equality, it is a lawful equivalence relation and its hash
// agrees with it by construction.
func By[T any, K comparable](key func(T) K) Strategy[T] {
	return New[T](
		func(a, b T) bool { return key(a) == key(b) },
		func(v T) uint64 { return HashValue(key(v)) },
	)
}

// ByOrdered returns an OrderedStrategy that orders and equates values by the given key projection.
func ByOrdered[T any, K constraints.Ordered](key func(T) K) OrderedStrategy[T] {
	return NewOrdered[T](
		func(a, b T) int { return lo.Comparator(key(a), key(b)) },
		func(v T) uint64 { return HashValue(key(v)) },
	)
}

// CaseInsensitive returns an OrderedStrategy that compares strings without regard to case.
func CaseInsensitive() OrderedStrategy[string] {
	return ByOrdered(strings.ToLower)
}
