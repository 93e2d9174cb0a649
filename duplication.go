package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/largest/largest"
)

// demoDuplication starts from an inline loop, extracts it into a function,
// then shows that a second element type needs a second copy of that
// function.
func demoDuplication(log *logrus.Logger) {
	// ── Inline loop ──────────────────────────────────────────────────────────
	numbers := []int32{34, 50, 25, 100, 65}
	biggest := numbers[0]
	for _, n := range numbers {
		if n > biggest {
			biggest = n
		}
	}
	fmt.Println("  inline loop:", numbers, "→", biggest)

	// ── Extracted into a function ────────────────────────────────────────────
	fmt.Println("\n  Int32s:")
	for _, list := range [][]int32{
		{102, 35, 7, 34, 5, 4, 4, 67543},
		{34, 6, 3, 2, 45, 787654, 234},
	} {
		v, _ := largest.Int32s(list)
		fmt.Printf("    %v → %d\n", list, v)
	}

	// ── Same body, different type ────────────────────────────────────────────
	fmt.Println("\n  Runes (same body as Int32s):")
	chars := []rune{'c', 'r', 'g', 's', 'e', 'm', 'q'}
	c, _ := largest.Runes(chars)
	fmt.Printf("    %q → %q\n", string(chars), c)

	fmt.Println("\n  Float64s (and again):")
	floats := []float64{1.5, -2.25, 9.75, 3}
	f, _ := largest.Float64s(floats)
	fmt.Printf("    %v → %g\n", floats, f)

	// ── Empty input ──────────────────────────────────────────────────────────
	// Indexing numbers[0] on an empty slice would panic; the functions
	// return an error instead.
	fmt.Println("\n  empty input:")
	if _, err := largest.Int32s(nil); err != nil {
		log.WithError(err).Warn("Int32s(nil)")
	}
}
