package equaset

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// The sequence-style and algebraic operations are implemented once over the iteration-order slice of a set and a
// rebuild function that materializes a result of the receiver's kind and path. Both concrete set types dispatch into
// these helpers instead of re-declaring the full operation surface per variant.

// rebuildFunc materializes elements into a set of the receiver's kind, bound to the receiver's path.
type rebuildFunc[T any] func(elements ...T) Set[T]

func unionSets[T any](receiver, other Set[T], rebuild rebuildFunc[T]) Set[T] {
	requireSamePath(receiver, other)

	return rebuild(append(receiver.ToSlice(), other.ToSlice()...)...)
}

func intersectSets[T any](receiver, other Set[T], rebuild rebuildFunc[T]) Set[T] {
	requireSamePath(receiver, other)

	return rebuild(lo.Filter(receiver.ToSlice(), other.Has)...)
}

func diffSets[T any](receiver, other Set[T], rebuild rebuildFunc[T]) Set[T] {
	requireSamePath(receiver, other)

	return rebuild(lo.Filter(receiver.ToSlice(), func(element T) bool { return !other.Has(element) })...)
}

func subsetOf[T any](receiver, other Set[T]) bool {
	requireSamePath(receiver, other)

	return receiver.ForEach(func(element T) error {
		if !other.Has(element) {
			return ierrors.New("element not found")
		}

		return nil
	}) == nil
}

func hasAll[T any](receiver, other Set[T]) bool {
	return other.ForEach(func(element T) error {
		if !receiver.Has(element) {
			return ierrors.New("element not found")
		}

		return nil
	}) == nil
}

func setsEqual[T any](receiver, other Set[T]) bool {
	if other == nil || receiver.Path() != other.Path() {
		return false
	}

	return receiver.Size() == other.Size() && hasAll[T](receiver, other)
}

func mapElements[T any](elements []T, transform func(T) T, rebuild rebuildFunc[T]) Set[T] {
	return rebuild(lo.Map(elements, transform)...)
}

func collectElements[T any](elements []T, transform func(T) (T, bool), rebuild rebuildFunc[T]) Set[T] {
	collected := make([]T, 0, len(elements))
	for _, element := range elements {
		if transformed, include := transform(element); include {
			collected = append(collected, transformed)
		}
	}

	return rebuild(collected...)
}

func takeElements[T any](elements []T, n int, rebuild rebuildFunc[T]) Set[T] {
	return rebuild(elements[:clampPosition(n, len(elements))]...)
}

func dropElements[T any](elements []T, n int, rebuild rebuildFunc[T]) Set[T] {
	return rebuild(elements[clampPosition(n, len(elements)):]...)
}

func sliceElements[T any](elements []T, from, until int, rebuild rebuildFunc[T]) Set[T] {
	from = clampPosition(from, len(elements))
	until = clampPosition(until, len(elements))
	if until < from {
		until = from
	}

	return rebuild(elements[from:until]...)
}

func splitElements[T any](elements []T, n int, rebuild rebuildFunc[T]) (prefix, suffix Set[T]) {
	n = clampPosition(n, len(elements))

	return rebuild(elements[:n]...), rebuild(elements[n:]...)
}

func spanElements[T any](elements []T, predicate func(T) bool, rebuild rebuildFunc[T]) (prefix, suffix Set[T]) {
	boundary := len(elements)
	for i, element := range elements {
		if !predicate(element) {
			boundary = i

			break
		}
	}

	return rebuild(elements[:boundary]...), rebuild(elements[boundary:]...)
}

func partitionElements[T any](elements []T, predicate func(T) bool, rebuild rebuildFunc[T]) (matching, rest Set[T]) {
	return rebuild(lo.Filter(elements, predicate)...),
		rebuild(lo.Filter(elements, func(element T) bool { return !predicate(element) })...)
}

func groupedSets[T any](elements []T, size int, rebuild rebuildFunc[T]) ([]Set[T], error) {
	if size < 1 {
		return nil, ierrors.Wrapf(ErrInvalidSize, "grouped called with size %d", size)
	}

	chunks := make([]Set[T], 0, (len(elements)+size-1)/size)
	for from := 0; from < len(elements); from += size {
		until := from + size
		if until > len(elements) {
			until = len(elements)
		}
		chunks = append(chunks, rebuild(elements[from:until]...))
	}

	return chunks, nil
}

func slidingSets[T any](elements []T, size int, rebuild rebuildFunc[T]) ([]Set[T], error) {
	if size < 1 {
		return nil, ierrors.Wrapf(ErrInvalidSize, "sliding called with size %d", size)
	}

	if len(elements) <= size {
		if len(elements) == 0 {
			return nil, nil
		}

		return []Set[T]{rebuild(elements...)}, nil
	}

	windows := make([]Set[T], 0, len(elements)-size+1)
	for from := 0; from+size <= len(elements); from++ {
		windows = append(windows, rebuild(elements[from:from+size]...))
	}

	return windows, nil
}

// clampPosition clamps an iteration-order position into [0, size].
func clampPosition(position, size int) int {
	if position < 0 {
		return 0
	}
	if position > size {
		return size
	}

	return position
}
