package equaset

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/lo"

	"github.com/equapath/equaset.go/equaset/boxmap"
)

// region FastSet //////////////////////////////////////////////////////////////////////////////////////////////////////

// FastSet is the hash-backed implementation of the Set interface. Its backing store keeps the boxed elements in
// first-insertion order, bucketed by the strategy's hash.
type FastSet[T any] struct {
	path  *Path[T]
	boxes *boxmap.OrderedMap[*Box[T], void]
}

// newFastSet creates an empty FastSet bound to the given path.
func newFastSet[T any](path *Path[T]) *FastSet[T] {
	return &FastSet[T]{
		path: path,
		boxes: boxmap.New[*Box[T], void](
			(*Box[T]).Hash,
			func(a, b *Box[T]) bool { return a.Equal(b) },
		),
	}
}

// Path returns the Path that minted the set.
func (s *FastSet[T]) Path() *Path[T] {
	return s.path
}

// Has returns true if the set contains an element equivalent to the given one.
func (s *FastSet[T]) Has(element T) bool {
	return s.boxes.Has(s.path.Box(element))
}

// HasAll returns true if the set contains an equivalent of every element of the given set.
func (s *FastSet[T]) HasAll(other Set[T]) bool {
	return hasAll[T](s, other)
}

// Size returns the number of elements in the set.
func (s *FastSet[T]) Size() int {
	return s.boxes.Size()
}

// IsEmpty returns true if the set is empty.
func (s *FastSet[T]) IsEmpty() bool {
	return s.boxes.IsEmpty()
}

// Equals returns true if both sets were minted by the same Path and contain the same elements.
func (s *FastSet[T]) Equals(other Set[T]) bool {
	return setsEqual[T](s, other)
}

// Is returns true if the given element is the only element in the set.
func (s *FastSet[T]) Is(element T) bool {
	return s.Size() == 1 && s.Has(element)
}

// ForEach iterates through all elements of the set in insertion order (returning an error will stop the iteration).
func (s *FastSet[T]) ForEach(callback func(element T) error) (err error) {
	s.boxes.ForEach(func(box *Box[T], _ void) bool {
		err = callback(box.value)

		return err == nil
	})

	return err
}

// Range iterates through all elements of the set in insertion order.
func (s *FastSet[T]) Range(callback func(element T)) {
	s.boxes.ForEach(func(box *Box[T], _ void) bool {
		callback(box.value)

		return true
	})
}

// ToSlice returns the elements of the set in insertion order.
func (s *FastSet[T]) ToSlice() (elements []T) {
	elements = make([]T, 0, s.Size())
	s.Range(func(element T) {
		elements = append(elements, element)
	})

	return elements
}

// ToBoxedSlice returns the boxed storage form of the set's elements in insertion order.
func (s *FastSet[T]) ToBoxedSlice() (boxes []*Box[T]) {
	boxes = make([]*Box[T], 0, s.Size())
	s.boxes.ForEach(func(box *Box[T], _ void) bool {
		boxes = append(boxes, box)

		return true
	})

	return boxes
}

// Union returns the union of the set and the given set.
func (s *FastSet[T]) Union(other Set[T]) Set[T] {
	return unionSets[T](s, other, s.rebuild)
}

// Intersect returns the intersection of the set and the given set.
func (s *FastSet[T]) Intersect(other Set[T]) Set[T] {
	return intersectSets[T](s, other, s.rebuild)
}

// Diff returns the elements of the set that have no equivalent in the given set.
func (s *FastSet[T]) Diff(other Set[T]) Set[T] {
	return diffSets[T](s, other, s.rebuild)
}

// SubsetOf returns true if every element of the set has an equivalent in the given set.
func (s *FastSet[T]) SubsetOf(other Set[T]) bool {
	return subsetOf[T](s, other)
}

// Map returns a new set with the transform applied to every element.
func (s *FastSet[T]) Map(transform func(element T) T) Set[T] {
	return mapElements(s.ToSlice(), transform, s.rebuild)
}

// Filter returns a new set with all elements that satisfy the given predicate.
func (s *FastSet[T]) Filter(predicate func(element T) bool) Set[T] {
	return s.rebuild(lo.Filter(s.ToSlice(), predicate)...)
}

// FilterNot returns a new set with all elements that do not satisfy the given predicate.
func (s *FastSet[T]) FilterNot(predicate func(element T) bool) Set[T] {
	return s.Filter(func(element T) bool { return !predicate(element) })
}

// Collect returns a new set with the transform applied to every element for which it returns true.
func (s *FastSet[T]) Collect(transform func(element T) (T, bool)) Set[T] {
	return collectElements(s.ToSlice(), transform, s.rebuild)
}

// First returns the first element in insertion order.
func (s *FastSet[T]) First() (element T, exists bool) {
	box, _, exists := s.boxes.Head()
	if !exists {
		return element, false
	}

	return box.value, true
}

// Last returns the last element in insertion order.
func (s *FastSet[T]) Last() (element T, exists bool) {
	box, _, exists := s.boxes.Tail()
	if !exists {
		return element, false
	}

	return box.value, true
}

// Take returns a new set holding the first n elements in insertion order.
func (s *FastSet[T]) Take(n int) Set[T] {
	return takeElements(s.ToSlice(), n, s.rebuild)
}

// Drop returns a new set holding all but the first n elements in insertion order.
func (s *FastSet[T]) Drop(n int) Set[T] {
	return dropElements(s.ToSlice(), n, s.rebuild)
}

// Slice returns a new set holding the elements at positions [from, until) in insertion order.
func (s *FastSet[T]) Slice(from, until int) Set[T] {
	return sliceElements(s.ToSlice(), from, until, s.rebuild)
}

// SplitAt splits the set at the given position in insertion order.
func (s *FastSet[T]) SplitAt(n int) (prefix, suffix Set[T]) {
	return splitElements(s.ToSlice(), n, s.rebuild)
}

// Span returns the longest prefix of elements satisfying the predicate and the remainder.
func (s *FastSet[T]) Span(predicate func(element T) bool) (prefix, suffix Set[T]) {
	return spanElements(s.ToSlice(), predicate, s.rebuild)
}

// Partition splits the set into the elements satisfying the predicate and those that do not.
func (s *FastSet[T]) Partition(predicate func(element T) bool) (matching, rest Set[T]) {
	return partitionElements(s.ToSlice(), predicate, s.rebuild)
}

// Grouped partitions the elements into chunks of the given size in insertion order.
func (s *FastSet[T]) Grouped(size int) ([]Set[T], error) {
	return groupedSets(s.ToSlice(), size, s.rebuild)
}

// Sliding returns all windows of the given size over the elements in insertion order.
func (s *FastSet[T]) Sliding(size int) ([]Set[T], error) {
	return slidingSets(s.ToSlice(), size, s.rebuild)
}

// View returns a lazy, path-agnostic view of the set's elements.
func (s *FastSet[T]) View() View[T] {
	return viewOf(s.ToSlice)
}

// Clone returns a copy of the set.
func (s *FastSet[T]) Clone() Set[T] {
	return s.rebuild(s.ToSlice()...)
}

// String returns a human-readable version of the set.
func (s *FastSet[T]) String() string {
	elementStrings := lo.Map(s.ToSlice(), func(element T) string { return fmt.Sprintf("%+v", element) })

	return fmt.Sprintf("FastSet(%s)", strings.Join(elementStrings, ", "))
}

// rebuild materializes elements into a new FastSet bound to the receiver's path.
func (s *FastSet[T]) rebuild(elements ...T) Set[T] {
	return s.path.NewFastSet(elements...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
