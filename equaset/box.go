package equaset

import (
	"fmt"
)

// region Box //////////////////////////////////////////////////////////////////////////////////////////////////////////

// Box wraps a single value together with a back-reference to the Path that minted it. Its equality and hash delegate
// entirely to the path's strategy, never to the wrapped value's native equality, which is the seam that lets the same
// value participate in different equivalence classes depending on which Path boxed it. Boxes are an implementation
// detail of the backing stores and only surface through the explicit boxed-view conversions.
type Box[T any] struct {
	value T
	path  *Path[T]
}

// Value returns the wrapped value.
func (b *Box[T]) Value() T {
	return b.value
}

// Path returns the Path that minted the box.
func (b *Box[T]) Path() *Path[T] {
	return b.path
}

// Equal returns true if both boxes were minted by the identical Path instance and their values belong to the same
// equivalence class under that path's strategy. Boxes from different paths are never equal, even if their values and
// strategies match behaviorally.
func (b *Box[T]) Equal(other *Box[T]) bool {
	return other != nil && b.path == other.path && b.path.strategy.Equal(b.value, other.value)
}

// Hash returns the hash of the wrapped value under the path's strategy.
func (b *Box[T]) Hash() uint64 {
	return b.path.strategy.Hash(b.value)
}

// String returns a human-readable version of the box, delegating to the wrapped value.
func (b *Box[T]) String() string {
	return fmt.Sprintf("%v", b.value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
