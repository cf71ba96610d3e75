package equaset

import "fmt"

// Pair groups two values of independent types, used by the zipping view transforms.
type Pair[A, B any] struct {
	A A
	B B
}

// NewPair creates a new Pair from the given values.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.A, p.B)
}

// Triple groups three values of independent types.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// NewTriple creates a new Triple from the given values.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{A: a, B: b, C: c}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.A, t.B, t.C)
}
