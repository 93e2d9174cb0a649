package point

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair holds two ordered values of the same type.
type Pair[T constraints.Ordered] struct {
	X, Y T
}

func NewPair[T constraints.Ordered](x, y T) Pair[T] { return Pair[T]{X: x, Y: y} }

// Largest returns the larger member. On a tie X is returned.
func (p Pair[T]) Largest() T {
	if p.Y > p.X {
		return p.Y
	}
	return p.X
}

// String names the larger member, e.g. "the largest member is x = 7".
func (p Pair[T]) String() string {
	if p.Y > p.X {
		return fmt.Sprintf("the largest member is y = %v", p.Y)
	}
	return fmt.Sprintf("the largest member is x = %v", p.X)
}
