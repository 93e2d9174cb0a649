package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/largest/point"
)

func demoPoints(log *logrus.Logger) {
	fmt.Println("  Point[T] — both fields share T:")
	integer := point.Point[int]{X: 5, Y: 10}
	float := point.Point[float64]{X: 1.0, Y: 4.0}
	fmt.Println("    int point:", integer, " float point:", float)
	// point.Point[int]{X: 5, Y: 4.5} does not compile: 4.5 is not an int.

	fmt.Println("    integer.XRef() →", *integer.XRef())

	fp := point.Point[float32]{X: 3.0, Y: 5.3}
	fmt.Printf("    DistanceFromOrigin(%v) = %.4f\n", fp, point.DistanceFromOrigin(fp))

	fmt.Println("\n  MixedPoint[T, U] — independent field types:")
	mix := point.MixedPoint[int, float64]{X: 5, Y: 4.0}
	fmt.Println("    mixed point:", mix)

	p1 := point.MixedPoint[int, float64]{X: 5, Y: 10.4}
	p2 := point.MixedPoint[string, rune]{X: "hello", Y: 'c'}
	p3 := point.Mixup(p1, p2)
	fmt.Printf("    Mixup(%v, %v) = MixedPoint[%T, %T]{X: %v, Y: %q}\n", p1, p2, p3.X, p3.Y, p3.X, p3.Y)

	fmt.Println("\n  Pair[T] — largest as a method:")
	for _, p := range []point.Pair[int]{point.NewPair(7, 3), point.NewPair(2, 11), point.NewPair(4, 4)} {
		log.WithField("pair", fmt.Sprintf("(%d, %d)", p.X, p.Y)).Debug("comparing")
		fmt.Printf("    (%d, %d) → %d  %s\n", p.X, p.Y, p.Largest(), p)
	}
}
