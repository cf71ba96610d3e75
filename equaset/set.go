package equaset

// void is the value type stored alongside the boxed keys of the hash-backed store.
type void = struct{}

// region Set //////////////////////////////////////////////////////////////////////////////////////////////////////////

// Set is an immutable collection of unique elements whose uniqueness is defined by the equivalence strategy of the
// Path that minted it. Every operation that looks like a mutation returns a new Set value; the receiver is never
// changed. Binary operations (Union, Intersect, Diff, SubsetOf) require both operands to originate from the identical
// Path instance and panic with ErrIncompatiblePaths otherwise.
type Set[T any] interface {
	// Path returns the Path that minted the set.
	Path() *Path[T]

	// Has returns true if the set contains an element equivalent to the given one.
	Has(element T) bool

	// HasAll returns true if the set contains an equivalent of every element of the given set, evaluated under the
	// receiver's strategy.
	HasAll(other Set[T]) bool

	// Size returns the number of elements in the set.
	Size() int

	// IsEmpty returns true if the set is empty.
	IsEmpty() bool

	// Equals returns true if both sets were minted by the same Path and contain the same elements. Sets from
	// different paths are never equal.
	Equals(other Set[T]) bool

	// Is returns true if the given element is the only element in the set.
	Is(element T) bool

	// ForEach iterates through all elements of the set (returning an error will stop the iteration).
	ForEach(callback func(element T) error) error

	// Range iterates through all elements of the set.
	Range(callback func(element T))

	// ToSlice returns the elements of the set in iteration order.
	ToSlice() []T

	// ToBoxedSlice returns the boxed storage form of the set's elements in iteration order.
	ToBoxedSlice() []*Box[T]

	// Union returns the union of the set and the given set.
	Union(other Set[T]) Set[T]

	// Intersect returns the intersection of the set and the given set.
	Intersect(other Set[T]) Set[T]

	// Diff returns the elements of the set that have no equivalent in the given set.
	Diff(other Set[T]) Set[T]

	// SubsetOf returns true if every element of the set has an equivalent in the given set.
	SubsetOf(other Set[T]) bool

	// Map returns a new set with the transform applied to every element. The transform stays within the element
	// type; landing in a different element type or equivalence domain is the job of the View and Bridge layers.
	Map(transform func(element T) T) Set[T]

	// Filter returns a new set with all elements that satisfy the given predicate.
	Filter(predicate func(element T) bool) Set[T]

	// FilterNot returns a new set with all elements that do not satisfy the given predicate.
	FilterNot(predicate func(element T) bool) Set[T]

	// Collect returns a new set with the transform applied to every element for which it returns true.
	Collect(transform func(element T) (T, bool)) Set[T]

	// First returns the first element in iteration order.
	First() (element T, exists bool)

	// Last returns the last element in iteration order.
	Last() (element T, exists bool)

	// Take returns a new set holding the first n elements in iteration order.
	Take(n int) Set[T]

	// Drop returns a new set holding all but the first n elements in iteration order.
	Drop(n int) Set[T]

	// Slice returns a new set holding the elements at positions [from, until) in iteration order. Out-of-range
	// bounds are clamped.
	Slice(from, until int) Set[T]

	// SplitAt splits the set at the given position in iteration order.
	SplitAt(n int) (prefix Set[T], suffix Set[T])

	// Span returns the longest prefix of elements satisfying the predicate and the remainder.
	Span(predicate func(element T) bool) (prefix Set[T], suffix Set[T])

	// Partition splits the set into the elements satisfying the predicate and those that do not.
	Partition(predicate func(element T) bool) (matching Set[T], rest Set[T])

	// Grouped partitions the elements into chunks of the given size in iteration order. It returns ErrInvalidSize
	// if size is not positive.
	Grouped(size int) ([]Set[T], error)

	// Sliding returns all windows of the given size over the elements in iteration order. It returns
	// ErrInvalidSize if size is not positive.
	Sliding(size int) ([]Set[T], error)

	// View returns a lazy, path-agnostic view of the set's elements.
	View() View[T]

	// Clone returns a copy of the set.
	Clone() Set[T]

	// String returns a human-readable version of the set.
	String() string
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
