package equivalence

// region Strategy /////////////////////////////////////////////////////////////////////////////////////////////////////

// Strategy defines a pluggable notion of equality for values of type T that replaces the type's native equality.
//
// A Strategy must describe a lawful equivalence relation: Equal has to be reflexive, symmetric and transitive, and
// Hash has to agree with it (Equal(a, b) implies Hash(a) == Hash(b)). These preconditions are not checked at runtime;
// a strategy that violates them silently corrupts the membership tests and deduplication of every collection built on
// top of it.
type Strategy[T any] interface {
	// Equal returns true if the two values belong to the same equivalence class.
	Equal(a, b T) bool

	// Hash returns a hash of the value that is consistent with Equal.
	Hash(v T) uint64
}

// New creates a Strategy from an explicit equality function and a matching hash function.
func New[T any](equal func(a, b T) bool, hash func(v T) uint64) Strategy[T] {
	return &strategy[T]{
		equal: equal,
		hash:  hash,
	}
}

// strategy is the function-backed implementation of the Strategy interface.
type strategy[T any] struct {
	equal func(a, b T) bool
	hash  func(v T) uint64
}

// Equal returns true if the two values belong to the same equivalence class.
func (s *strategy[T]) Equal(a, b T) bool {
	return s.equal(a, b)
}

// Hash returns a hash of the value that is consistent with Equal.
func (s *strategy[T]) Hash(v T) uint64 {
	return s.hash(v)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OrderedStrategy //////////////////////////////////////////////////////////////////////////////////////////////

// OrderedStrategy extends a Strategy with a total order that agrees with its equality (Compare(a, b) == 0 exactly when
// Equal(a, b) is true). Ties under Compare are the definition of equivalence for the strategy and override any native
// ordering the value type might have.
type OrderedStrategy[T any] interface {
	Strategy[T]

	// Compare returns -1 if a is smaller than b, 1 if a is larger than b and 0 if both belong to the same
	// equivalence class.
	Compare(a, b T) int
}

// NewOrdered creates an OrderedStrategy from an explicit comparator and a matching hash function. Equality is derived
// from the comparator, which keeps Compare and Equal in agreement by construction.
func NewOrdered[T any](compare func(a, b T) int, hash func(v T) uint64) OrderedStrategy[T] {
	return &orderedStrategy[T]{
		strategy: strategy[T]{
			equal: func(a, b T) bool { return compare(a, b) == 0 },
			hash:  hash,
		},
		compare: compare,
	}
}

// orderedStrategy is the function-backed implementation of the OrderedStrategy interface.
type orderedStrategy[T any] struct {
	strategy[T]

	compare func(a, b T) int
}

// Compare returns -1 if a is smaller than b, 1 if a is larger than b and 0 if both are equivalent.
func (o *orderedStrategy[T]) Compare(a, b T) int {
	return o.compare(a, b)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
