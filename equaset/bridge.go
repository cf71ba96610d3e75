package equaset

// region Bridge ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Bridge is a one-shot adapter whose transforms originate in one path's element type and land directly in a different
// target path's set family. Ordinary Map cannot change which path governs equivalence; a Bridge re-boxes every result
// under the target path's strategy.
type Bridge[S, T any] struct {
	source Set[S]
	target *Path[T]
}

// Into creates a Bridge from the given source set into the given target path. Results of the bridge's transforms are
// hash-backed sets minted by the target path.
func Into[S, T any](source Set[S], target *Path[T]) *Bridge[S, T] {
	return &Bridge[S, T]{
		source: source,
		target: target,
	}
}

// Map applies the transform to every source element and lands the results in the target path.
func (b *Bridge[S, T]) Map(transform func(element S) T) *FastSet[T] {
	return MapView(b.source.View(), transform).Force(b.target)
}

// FlatMap applies the transform to every source element, concatenates the resulting sequences and lands them in the
// target path.
func (b *Bridge[S, T]) FlatMap(transform func(element S) []T) *FastSet[T] {
	return FlatMapView(b.source.View(), transform).Force(b.target)
}

// Collect applies the transform to every source element for which it returns true and lands the results in the
// target path.
func (b *Bridge[S, T]) Collect(transform func(element S) (T, bool)) *FastSet[T] {
	return CollectView(b.source.View(), transform).Force(b.target)
}

// ScanLeft lands the intermediate results of a left fold over the source elements in the target path.
func (b *Bridge[S, T]) ScanLeft(initial T, combine func(acc T, element S) T) *FastSet[T] {
	return ScanLeftView(b.source.View(), initial, combine).Force(b.target)
}

// ScanRight lands the intermediate results of a right fold over the source elements in the target path.
func (b *Bridge[S, T]) ScanRight(initial T, combine func(element S, acc T) T) *FastSet[T] {
	return ScanRightView(b.source.View(), initial, combine).Force(b.target)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SortedBridge /////////////////////////////////////////////////////////////////////////////////////////////////

// SortedBridge is a Bridge whose results are order-backed sets minted by the target path.
type SortedBridge[S, T any] struct {
	source Set[S]
	target *Path[T]
}

// IntoSorted creates a SortedBridge from the given source set into the given target path. It returns ErrUnorderedPath
// if the target path's strategy defines no ordering.
func IntoSorted[S, T any](source Set[S], target *Path[T]) (*SortedBridge[S, T], error) {
	if !target.Ordered() {
		return nil, ErrUnorderedPath
	}

	return &SortedBridge[S, T]{
		source: source,
		target: target,
	}, nil
}

// Map applies the transform to every source element and lands the results in the target path.
func (b *SortedBridge[S, T]) Map(transform func(element S) T) *TreeSet[T] {
	return b.target.newTreeSet(MapView(b.source.View(), transform).ToSlice()...)
}

// FlatMap applies the transform to every source element, concatenates the resulting sequences and lands them in the
// target path.
func (b *SortedBridge[S, T]) FlatMap(transform func(element S) []T) *TreeSet[T] {
	return b.target.newTreeSet(FlatMapView(b.source.View(), transform).ToSlice()...)
}

// Collect applies the transform to every source element for which it returns true and lands the results in the
// target path.
func (b *SortedBridge[S, T]) Collect(transform func(element S) (T, bool)) *TreeSet[T] {
	return b.target.newTreeSet(CollectView(b.source.View(), transform).ToSlice()...)
}

// ScanLeft lands the intermediate results of a left fold over the source elements in the target path.
func (b *SortedBridge[S, T]) ScanLeft(initial T, combine func(acc T, element S) T) *TreeSet[T] {
	return b.target.newTreeSet(ScanLeftView(b.source.View(), initial, combine).ToSlice()...)
}

// ScanRight lands the intermediate results of a right fold over the source elements in the target path.
func (b *SortedBridge[S, T]) ScanRight(initial T, combine func(element S, acc T) T) *TreeSet[T] {
	return b.target.newTreeSet(ScanRightView(b.source.View(), initial, combine).ToSlice()...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
