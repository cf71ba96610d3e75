package equaset

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/iotaledger/hive.go/lo"
)

// region TreeSet //////////////////////////////////////////////////////////////////////////////////////////////////////

// TreeSet is the order-backed implementation of the Set interface. Its backing store is a red-black tree whose
// comparator delegates to the path strategy's Compare, so iteration yields the elements in non-decreasing strategy
// order and elements that compare equal collapse into a single entry.
type TreeSet[T any] struct {
	path *Path[T]
	tree *redblacktree.Tree
}

// newTreeSet creates a TreeSet from the given elements. The caller guarantees that the path carries an ordered
// strategy; within an equivalence class the value inserted last is the retained representative.
func (p *Path[T]) newTreeSet(elements ...T) *TreeSet[T] {
	s := &TreeSet[T]{
		path: p,
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return p.ordered.Compare(a.(*Box[T]).value, b.(*Box[T]).value)
		}),
	}
	for _, element := range elements {
		s.tree.Put(p.Box(element), void{})
	}

	return s
}

// Path returns the Path that minted the set.
func (s *TreeSet[T]) Path() *Path[T] {
	return s.path
}

// Has returns true if the set contains an element equivalent to the given one.
func (s *TreeSet[T]) Has(element T) bool {
	_, found := s.tree.Get(s.path.Box(element))

	return found
}

// HasAll returns true if the set contains an equivalent of every element of the given set.
func (s *TreeSet[T]) HasAll(other Set[T]) bool {
	return hasAll[T](s, other)
}

// Size returns the number of elements in the set.
func (s *TreeSet[T]) Size() int {
	return s.tree.Size()
}

// IsEmpty returns true if the set is empty.
func (s *TreeSet[T]) IsEmpty() bool {
	return s.tree.Empty()
}

// Equals returns true if both sets were minted by the same Path and contain the same elements.
func (s *TreeSet[T]) Equals(other Set[T]) bool {
	return setsEqual[T](s, other)
}

// Is returns true if the given element is the only element in the set.
func (s *TreeSet[T]) Is(element T) bool {
	return s.Size() == 1 && s.Has(element)
}

// ForEach iterates through all elements of the set in ascending strategy order (returning an error will stop the
// iteration).
func (s *TreeSet[T]) ForEach(callback func(element T) error) (err error) {
	for iterator := s.tree.Iterator(); iterator.Next(); {
		if err = callback(iterator.Key().(*Box[T]).value); err != nil {
			return err
		}
	}

	return nil
}

// Range iterates through all elements of the set in ascending strategy order.
func (s *TreeSet[T]) Range(callback func(element T)) {
	for iterator := s.tree.Iterator(); iterator.Next(); {
		callback(iterator.Key().(*Box[T]).value)
	}
}

// ToSlice returns the elements of the set in ascending strategy order.
func (s *TreeSet[T]) ToSlice() (elements []T) {
	elements = make([]T, 0, s.Size())
	s.Range(func(element T) {
		elements = append(elements, element)
	})

	return elements
}

// ToBoxedSlice returns the boxed storage form of the set's elements in ascending strategy order.
func (s *TreeSet[T]) ToBoxedSlice() (boxes []*Box[T]) {
	boxes = make([]*Box[T], 0, s.Size())
	for iterator := s.tree.Iterator(); iterator.Next(); {
		boxes = append(boxes, iterator.Key().(*Box[T]))
	}

	return boxes
}

// Union returns the union of the set and the given set.
func (s *TreeSet[T]) Union(other Set[T]) Set[T] {
	return unionSets[T](s, other, s.rebuild)
}

// Intersect returns the intersection of the set and the given set.
func (s *TreeSet[T]) Intersect(other Set[T]) Set[T] {
	return intersectSets[T](s, other, s.rebuild)
}

// Diff returns the elements of the set that have no equivalent in the given set.
func (s *TreeSet[T]) Diff(other Set[T]) Set[T] {
	return diffSets[T](s, other, s.rebuild)
}

// SubsetOf returns true if every element of the set has an equivalent in the given set.
func (s *TreeSet[T]) SubsetOf(other Set[T]) bool {
	return subsetOf[T](s, other)
}

// Map returns a new set with the transform applied to every element.
func (s *TreeSet[T]) Map(transform func(element T) T) Set[T] {
	return mapElements(s.ToSlice(), transform, s.rebuild)
}

// Filter returns a new set with all elements that satisfy the given predicate.
func (s *TreeSet[T]) Filter(predicate func(element T) bool) Set[T] {
	return s.rebuild(lo.Filter(s.ToSlice(), predicate)...)
}

// FilterNot returns a new set with all elements that do not satisfy the given predicate.
func (s *TreeSet[T]) FilterNot(predicate func(element T) bool) Set[T] {
	return s.Filter(func(element T) bool { return !predicate(element) })
}

// Collect returns a new set with the transform applied to every element for which it returns true.
func (s *TreeSet[T]) Collect(transform func(element T) (T, bool)) Set[T] {
	return collectElements(s.ToSlice(), transform, s.rebuild)
}

// First returns the smallest element under the strategy's order.
func (s *TreeSet[T]) First() (element T, exists bool) {
	return s.Min()
}

// Last returns the largest element under the strategy's order.
func (s *TreeSet[T]) Last() (element T, exists bool) {
	return s.Max()
}

// Min returns the smallest element under the strategy's order.
func (s *TreeSet[T]) Min() (element T, exists bool) {
	node := s.tree.Left()
	if node == nil {
		return element, false
	}

	return node.Key.(*Box[T]).value, true
}

// Max returns the largest element under the strategy's order.
func (s *TreeSet[T]) Max() (element T, exists bool) {
	node := s.tree.Right()
	if node == nil {
		return element, false
	}

	return node.Key.(*Box[T]).value, true
}

// Take returns a new set holding the n smallest elements.
func (s *TreeSet[T]) Take(n int) Set[T] {
	return takeElements(s.ToSlice(), n, s.rebuild)
}

// Drop returns a new set holding all but the n smallest elements.
func (s *TreeSet[T]) Drop(n int) Set[T] {
	return dropElements(s.ToSlice(), n, s.rebuild)
}

// Slice returns a new set holding the elements at positions [from, until) in ascending order.
func (s *TreeSet[T]) Slice(from, until int) Set[T] {
	return sliceElements(s.ToSlice(), from, until, s.rebuild)
}

// SplitAt splits the set at the given position in ascending order.
func (s *TreeSet[T]) SplitAt(n int) (prefix, suffix Set[T]) {
	return splitElements(s.ToSlice(), n, s.rebuild)
}

// Span returns the longest prefix of elements satisfying the predicate and the remainder.
func (s *TreeSet[T]) Span(predicate func(element T) bool) (prefix, suffix Set[T]) {
	return spanElements(s.ToSlice(), predicate, s.rebuild)
}

// Partition splits the set into the elements satisfying the predicate and those that do not.
func (s *TreeSet[T]) Partition(predicate func(element T) bool) (matching, rest Set[T]) {
	return partitionElements(s.ToSlice(), predicate, s.rebuild)
}

// Grouped partitions the elements into chunks of the given size in ascending order.
func (s *TreeSet[T]) Grouped(size int) ([]Set[T], error) {
	return groupedSets(s.ToSlice(), size, s.rebuild)
}

// Sliding returns all windows of the given size over the elements in ascending order.
func (s *TreeSet[T]) Sliding(size int) ([]Set[T], error) {
	return slidingSets(s.ToSlice(), size, s.rebuild)
}

// View returns a lazy, path-agnostic view of the set's elements.
func (s *TreeSet[T]) View() View[T] {
	return viewOf(s.ToSlice)
}

// Clone returns a copy of the set.
func (s *TreeSet[T]) Clone() Set[T] {
	return s.rebuild(s.ToSlice()...)
}

// String returns a human-readable version of the set.
func (s *TreeSet[T]) String() string {
	elementStrings := lo.Map(s.ToSlice(), func(element T) string { return fmt.Sprintf("%+v", element) })

	return fmt.Sprintf("TreeSet(%s)", strings.Join(elementStrings, ", "))
}

// rebuild materializes elements into a new TreeSet bound to the receiver's path.
func (s *TreeSet[T]) rebuild(elements ...T) Set[T] {
	return s.path.newTreeSet(elements...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
