package equaset

// region View /////////////////////////////////////////////////////////////////////////////////////////////////////////

// View is a lazy, path-agnostic transformation chain over a sequence of values. Transform steps stack thunks without
// evaluating anything; the underlying sequence is order-preserving and retains duplicates, and no equivalence strategy
// is consulted before the chain is forced into a concrete set. Transforms that change the element type cannot be
// methods in Go and are provided as free functions (MapView, FlatMapView, ...).
type View[T any] struct {
	materialize func() []T
}

// NewView creates a View over the given elements.
func NewView[T any](elements ...T) View[T] {
	return viewOf(func() []T { return elements })
}

// viewOf wraps a materialization thunk into a View.
func viewOf[T any](materialize func() []T) View[T] {
	return View[T]{materialize: materialize}
}

// ToSlice evaluates the transformation chain and returns the resulting sequence, duplicates included.
func (v View[T]) ToSlice() []T {
	return v.materialize()
}

// Filter returns a View that keeps only the elements satisfying the predicate.
func (v View[T]) Filter(predicate func(element T) bool) View[T] {
	return viewOf(func() []T {
		filtered := make([]T, 0)
		for _, element := range v.materialize() {
			if predicate(element) {
				filtered = append(filtered, element)
			}
		}

		return filtered
	})
}

// Take returns a View over the first n elements.
func (v View[T]) Take(n int) View[T] {
	return viewOf(func() []T {
		elements := v.materialize()

		return elements[:clampPosition(n, len(elements))]
	})
}

// Drop returns a View over all but the first n elements.
func (v View[T]) Drop(n int) View[T] {
	return viewOf(func() []T {
		elements := v.materialize()

		return elements[clampPosition(n, len(elements)):]
	})
}

// Scan returns a View over the intermediate results of folding the elements from the left, starting with initial.
// The result is one element longer than the input, with initial at its head.
func (v View[T]) Scan(initial T, combine func(acc, element T) T) View[T] {
	return ScanLeftView(v, initial, combine)
}

// Force evaluates the transformation chain and materializes it into a hash-backed set bound to the given path. This
// is the single point at which an equivalence strategy is consulted: every element is boxed with the target path and
// deduplicated under its strategy.
func (v View[T]) Force(path *Path[T]) *FastSet[T] {
	return path.NewFastSet(v.materialize()...)
}

// ForceSorted evaluates the transformation chain and materializes it into an order-backed set bound to the given
// path. It returns ErrUnorderedPath if the path's strategy defines no ordering.
func (v View[T]) ForceSorted(path *Path[T]) (*TreeSet[T], error) {
	return path.NewTreeSet(v.materialize()...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region view transforms //////////////////////////////////////////////////////////////////////////////////////////////

// MapView returns a View with the transform applied to every element.
func MapView[S, T any](v View[S], transform func(element S) T) View[T] {
	return viewOf(func() []T {
		source := v.materialize()
		target := make([]T, len(source))
		for i, element := range source {
			target[i] = transform(element)
		}

		return target
	})
}

// FlatMapView returns a View with the transform applied to every element and the resulting sequences concatenated.
func FlatMapView[S, T any](v View[S], transform func(element S) []T) View[T] {
	return viewOf(func() []T {
		target := make([]T, 0)
		for _, element := range v.materialize() {
			target = append(target, transform(element)...)
		}

		return target
	})
}

// CollectView returns a View with the transform applied to every element for which it returns true.
func CollectView[S, T any](v View[S], transform func(element S) (T, bool)) View[T] {
	return viewOf(func() []T {
		target := make([]T, 0)
		for _, element := range v.materialize() {
			if transformed, include := transform(element); include {
				target = append(target, transformed)
			}
		}

		return target
	})
}

// ScanLeftView returns a View over the intermediate results of folding the elements from the left, starting with
// initial. The result is one element longer than the input, with initial at its head.
func ScanLeftView[S, T any](v View[S], initial T, combine func(acc T, element S) T) View[T] {
	return viewOf(func() []T {
		source := v.materialize()
		target := make([]T, len(source)+1)
		target[0] = initial
		for i, element := range source {
			target[i+1] = combine(target[i], element)
		}

		return target
	})
}

// ScanRightView returns a View over the intermediate results of folding the elements from the right, starting with
// initial. The result is one element longer than the input, with initial at its end.
func ScanRightView[S, T any](v View[S], initial T, combine func(element S, acc T) T) View[T] {
	return viewOf(func() []T {
		source := v.materialize()
		target := make([]T, len(source)+1)
		target[len(source)] = initial
		for i := len(source) - 1; i >= 0; i-- {
			target[i] = combine(source[i], target[i+1])
		}

		return target
	})
}

// Zip pairs the elements of both Views positionally, truncating to the shorter sequence.
func Zip[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	return viewOf(func() []Pair[A, B] {
		left, right := a.materialize(), b.materialize()
		length := len(left)
		if len(right) < length {
			length = len(right)
		}

		pairs := make([]Pair[A, B], length)
		for i := 0; i < length; i++ {
			pairs[i] = NewPair(left[i], right[i])
		}

		return pairs
	})
}

// ZipAll pairs the elements of both Views positionally, padding the shorter sequence with the given fill values.
func ZipAll[A, B any](a View[A], b View[B], fillA A, fillB B) View[Pair[A, B]] {
	return viewOf(func() []Pair[A, B] {
		left, right := a.materialize(), b.materialize()
		length := len(left)
		if len(right) > length {
			length = len(right)
		}

		pairs := make([]Pair[A, B], length)
		for i := 0; i < length; i++ {
			elementA, elementB := fillA, fillB
			if i < len(left) {
				elementA = left[i]
			}
			if i < len(right) {
				elementB = right[i]
			}
			pairs[i] = NewPair(elementA, elementB)
		}

		return pairs
	})
}

// ZipWithIndex pairs every element with its position in the sequence.
func ZipWithIndex[T any](v View[T]) View[Pair[T, int]] {
	return viewOf(func() []Pair[T, int] {
		source := v.materialize()
		pairs := make([]Pair[T, int], len(source))
		for i, element := range source {
			pairs[i] = NewPair(element, i)
		}

		return pairs
	})
}

// Unzip splits a View of pairs into a View per component.
func Unzip[A, B any](v View[Pair[A, B]]) (View[A], View[B]) {
	return MapView(v, func(pair Pair[A, B]) A { return pair.A }),
		MapView(v, func(pair Pair[A, B]) B { return pair.B })
}

// Unzip3 splits a View of triples into a View per component.
func Unzip3[A, B, C any](v View[Triple[A, B, C]]) (View[A], View[B], View[C]) {
	return MapView(v, func(triple Triple[A, B, C]) A { return triple.A }),
		MapView(v, func(triple Triple[A, B, C]) B { return triple.B }),
		MapView(v, func(triple Triple[A, B, C]) C { return triple.C })
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
