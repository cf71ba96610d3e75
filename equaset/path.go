package equaset

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/equapath/equaset.go/equivalence"
)

// region Path /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Path ties one equivalence strategy to the boxes and sets it mints. Every collection of this package belongs to
// exactly one Path, and two collections can only be combined if they were minted by the identical Path instance:
// compatibility is pointer identity, not behavioral equality of the strategies, so a Path must be created once and
// shared by reference.
type Path[T any] struct {
	strategy equivalence.Strategy[T]

	// ordered is non-nil when the strategy additionally defines a total order, which enables minting tree sets.
	ordered equivalence.OrderedStrategy[T]
}

// NewPath creates a new Path holding the given strategy. If the strategy also implements
// equivalence.OrderedStrategy, the Path can additionally mint tree sets.
func NewPath[T any](strategy equivalence.Strategy[T]) *Path[T] {
	path := &Path[T]{strategy: strategy}
	if ordered, isOrdered := strategy.(equivalence.OrderedStrategy[T]); isOrdered {
		path.ordered = ordered
	}

	return path
}

// Strategy returns the equivalence strategy of the path.
func (p *Path[T]) Strategy() equivalence.Strategy[T] {
	return p.strategy
}

// Ordered returns true if the path's strategy defines a total order and the path can mint tree sets.
func (p *Path[T]) Ordered() bool {
	return p.ordered != nil
}

// Box wraps the given value together with a back-reference to this path.
func (p *Path[T]) Box(value T) *Box[T] {
	return &Box[T]{
		value: value,
		path:  p,
	}
}

// NewFastSet creates a hash-backed set from the given elements. Elements that are equivalent under the path's
// strategy collapse into a single entry whose retained value is the one supplied last; the order of the surviving
// equivalence classes is their first-insertion order.
func (p *Path[T]) NewFastSet(elements ...T) *FastSet[T] {
	s := newFastSet(p)
	for _, element := range elements {
		s.boxes.Set(p.Box(element), void{})
	}

	return s
}

// NewTreeSet creates an order-backed set from the given elements. It returns ErrUnorderedPath if the path's strategy
// defines no ordering.
func (p *Path[T]) NewTreeSet(elements ...T) (*TreeSet[T], error) {
	if p.ordered == nil {
		return nil, ierrors.Wrap(ErrUnorderedPath, "cannot mint a tree set")
	}

	return p.newTreeSet(elements...), nil
}

// NewNonEmptyFastSet creates a hash-backed set that is statically known to contain at least one element.
func (p *Path[T]) NewNonEmptyFastSet(first T, rest ...T) *NonEmpty[T] {
	return &NonEmpty[T]{Set: p.NewFastSet(append([]T{first}, rest...)...)}
}

// NewNonEmptyTreeSet creates an order-backed set that is statically known to contain at least one element. It returns
// ErrUnorderedPath if the path's strategy defines no ordering.
func (p *Path[T]) NewNonEmptyTreeSet(first T, rest ...T) (*NonEmpty[T], error) {
	treeSet, err := p.NewTreeSet(append([]T{first}, rest...)...)
	if err != nil {
		return nil, err
	}

	return &NonEmpty[T]{Set: treeSet}, nil
}

// String returns a human-readable version of the path.
func (p *Path[T]) String() string {
	return stringify.Struct("Path",
		stringify.NewStructField("ordered", p.Ordered()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
