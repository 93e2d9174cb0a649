// Package point holds small generic structs that pair two values.
package point

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ── Point[T] ──────────────────────────────────────────────────────────────────
// Both coordinates share one type parameter: Point[int]{5, 4.5} does not
// compile.

type Point[T any] struct {
	X, Y T
}

// XRef returns a pointer to p's X field.
func (p *Point[T]) XRef() *T { return &p.X }

func (p Point[T]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// DistanceFromOrigin is only defined for floating-point points. Go methods
// cannot be restricted to one instantiation, so this is a function with a
// narrower constraint than Point itself.
func DistanceFromOrigin[T constraints.Float](p Point[T]) T {
	x, y := float64(p.X), float64(p.Y)
	return T(math.Sqrt(x*x + y*y))
}

// ── MixedPoint[T, U] ──────────────────────────────────────────────────────────
// Each coordinate has its own type parameter.

type MixedPoint[T, U any] struct {
	X T
	Y U
}

func (p MixedPoint[T, U]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// Mixup builds a point from p's X and other's Y.
//
// V and W belong to Mixup, not to MixedPoint: methods cannot introduce type
// parameters, so the recombination is a top-level function.
func Mixup[T, U, V, W any](p MixedPoint[T, U], other MixedPoint[V, W]) MixedPoint[T, W] {
	return MixedPoint[T, W]{X: p.X, Y: other.Y}
}
