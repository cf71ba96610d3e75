package equaset

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrIncompatiblePaths is the panic value of binary set operations whose operands were minted by different Path
	// instances and therefore live in incompatible equivalence domains.
	ErrIncompatiblePaths = ierrors.New("sets originate from different paths")

	// ErrUnorderedPath is returned when a tree set is requested from a Path whose strategy defines no ordering.
	ErrUnorderedPath = ierrors.New("path strategy does not define an ordering")

	// ErrEmptySet is returned by reductions and refinement constructors that require at least one element.
	ErrEmptySet = ierrors.New("set is empty")

	// ErrInvalidSize is returned by Grouped and Sliding when the requested window size is not positive.
	ErrInvalidSize = ierrors.New("size must be positive")
)

// requireSamePath guards the binary set operations against operands from foreign paths. Compatibility is pointer
// identity of the Path instances, never behavioral equality of their strategies, so this is a programmer error and
// surfaces as a panic rather than a recoverable error value.
func requireSamePath[T any](a, b Set[T]) {
	if a.Path() != b.Path() {
		panic(ErrIncompatiblePaths)
	}
}
