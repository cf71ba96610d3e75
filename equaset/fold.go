package equaset

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// The folds and conversions whose result type differs from the element type cannot be methods of the Set interface
// (Go methods take no additional type parameters), so they live here as free generic functions over any Set.

// FoldLeft folds the elements in iteration order, starting with initial.
func FoldLeft[T, A any](s Set[T], initial A, combine func(acc A, element T) A) A {
	return lo.Reduce(s.ToSlice(), combine, initial)
}

// FoldRight folds the elements in reverse iteration order, starting with initial.
func FoldRight[T, A any](s Set[T], initial A, combine func(element T, acc A) A) A {
	elements := s.ToSlice()
	for i := len(elements) - 1; i >= 0; i-- {
		initial = combine(elements[i], initial)
	}

	return initial
}

// Reduce folds the elements pairwise in iteration order. It returns ErrEmptySet if the set has no elements.
func Reduce[T any](s Set[T], combine func(a, b T) T) (reduced T, err error) {
	elements := s.ToSlice()
	if len(elements) == 0 {
		return reduced, ierrors.Wrap(ErrEmptySet, "cannot reduce")
	}

	return lo.Reduce(elements[1:], combine, elements[0]), nil
}

// ReduceRight folds the elements pairwise in reverse iteration order. It returns ErrEmptySet if the set has no
// elements.
func ReduceRight[T any](s Set[T], combine func(a, b T) T) (reduced T, err error) {
	elements := s.ToSlice()
	if len(elements) == 0 {
		return reduced, ierrors.Wrap(ErrEmptySet, "cannot reduce")
	}

	reduced = elements[len(elements)-1]
	for i := len(elements) - 2; i >= 0; i-- {
		reduced = combine(elements[i], reduced)
	}

	return reduced, nil
}

// Aggregate folds the elements with accumulate, starting with initial. The combine function merges partial
// accumulators and is only consulted when evaluation is split into partitions; the sequential evaluator folds with
// accumulate alone.
func Aggregate[T, A any](s Set[T], initial A, accumulate func(acc A, element T) A, _ func(a, b A) A) A {
	return FoldLeft(s, initial, accumulate)
}

// Sum returns the sum of the set's elements.
func Sum[T constraints.Numeric](s Set[T]) T {
	return lo.Sum(s.ToSlice()...)
}

// Product returns the product of the set's elements.
func Product[T constraints.Numeric](s Set[T]) T {
	var product T = 1
	s.Range(func(element T) {
		product *= element
	})

	return product
}

// CountBy returns the number of elements satisfying the predicate.
func CountBy[T any](s Set[T], predicate func(element T) bool) int {
	return len(lo.Filter(s.ToSlice(), predicate))
}

// GroupBy buckets the elements by the given key projection into a native map, preserving iteration order within each
// bucket.
func GroupBy[T any, K comparable](s Set[T], key func(element T) K) map[K][]T {
	grouped := make(map[K][]T)
	s.Range(func(element T) {
		k := key(element)
		grouped[k] = append(grouped[k], element)
	})

	return grouped
}

// ToNativeSet converts the set into a native map-backed set of unboxed values. The native set uses the element
// type's native equality, so equivalence classes that native equality distinguishes stay distinguished.
func ToNativeSet[T comparable](s Set[T]) map[T]struct{} {
	native := make(map[T]struct{}, s.Size())
	s.Range(func(element T) {
		native[element] = struct{}{}
	})

	return native
}

// ToNativeMap converts the set into a native map by projecting every element to a key-value pair.
func ToNativeMap[T any, K comparable, V any](s Set[T], project func(element T) (K, V)) map[K]V {
	native := make(map[K]V, s.Size())
	s.Range(func(element T) {
		key, value := project(element)
		native[key] = value
	})

	return native
}
