package equaset

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// region NonEmpty /////////////////////////////////////////////////////////////////////////////////////////////////////

// NonEmpty is a refinement of Set that is known to contain at least one element, which makes the head-style accessors
// total. It is constructed either from a set that was verified to be nonempty or through the Path factories that take
// a mandatory first element.
type NonEmpty[T any] struct {
	Set[T]
}

// NewNonEmpty verifies that the given set contains at least one element and wraps it. It returns ErrEmptySet
// otherwise.
func NewNonEmpty[T any](set Set[T]) (*NonEmpty[T], error) {
	if set.IsEmpty() {
		return nil, ierrors.Wrap(ErrEmptySet, "cannot refine to a nonempty set")
	}

	return &NonEmpty[T]{Set: set}, nil
}

// First returns the first element in iteration order. Unlike the Set accessor it is total.
func (n *NonEmpty[T]) First() T {
	element, _ := n.Set.First()

	return element
}

// Last returns the last element in iteration order. Unlike the Set accessor it is total.
func (n *NonEmpty[T]) Last() T {
	element, _ := n.Set.Last()

	return element
}

// ReduceTotal folds the elements pairwise in iteration order. Unlike Reduce it cannot fail.
func (n *NonEmpty[T]) ReduceTotal(combine func(a, b T) T) T {
	reduced, _ := Reduce[T](n.Set, combine)

	return reduced
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
