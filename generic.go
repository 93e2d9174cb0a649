package main

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/largest/largest"
)

// semver implements largest.Comparer[semver].
type semver struct{ Major, Minor, Patch int }

func (v semver) Compare(o semver) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

func (v semver) String() string { return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch) }

func demoGeneric(log *logrus.Logger) {
	// ── Of[T] replaces Int32s, Runes and Float64s ───────────────────────────
	fmt.Println("  Of — one function, instantiated per type:")
	n, _ := largest.Of([]int{34, 50, 24, 100, 65})
	c, _ := largest.Of([]rune{'y', 'm', 'a', 'q'})
	s, _ := largest.Of([]string{"go", "rust", "zig"})
	f, _ := largest.Of([]float32{0.5, 2.5, -1})
	fmt.Println("    Of([]int)     =", n)
	fmt.Printf("    Of([]rune)    = %q\n", c)
	fmt.Printf("    Of([]string)  = %q\n", s)
	fmt.Println("    Of([]float32) =", f)

	// Explicit instantiation is always available.
	fmt.Println("    Of[int8]      =", must(largest.Of[int8]([]int8{-3, 7, 2})))

	// ── Ties ─────────────────────────────────────────────────────────────────
	fmt.Println("\n  Index — ties keep the earliest element:")
	i, _ := largest.Index([]int{5, 9, 5, 9})
	fmt.Println("    Index([5 9 5 9]) =", i)

	fmt.Println("\n  Smallest:")
	fmt.Println("    Smallest([34 50 25 100 65]) =", must(largest.Smallest([]int{34, 50, 25, 100, 65})))

	// ── Func — caller decides the order ─────────────────────────────────────
	fmt.Println("\n  Func — longest word, case-insensitive fallback:")
	words := []string{"Go", "rust", "Zig", "haskell", "OCaml"}
	longest, _ := largest.Func(words, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(len(a), len(b)),
			cmp.Compare(strings.ToLower(a), strings.ToLower(b)),
		)
	})
	fmt.Printf("    %v → %q\n", words, longest)

	// ── Method constraint ────────────────────────────────────────────────────
	fmt.Println("\n  Comparable — T supplies its own Compare:")
	releases := []semver{{1, 22, 3}, {1, 9, 0}, {1, 24, 1}, {1, 24, 0}}
	fmt.Println("    newest of", releases, "=", must(largest.Comparable(releases)))

	// ── Iterators ────────────────────────────────────────────────────────────
	fmt.Println("\n  Seq — any iter.Seq[T]:")
	scores := map[string]int{"ana": 71, "bo": 93, "cy": 88}
	fmt.Println("    best score =", must(largest.Seq(maps.Values(scores))))

	// ── Empty input ──────────────────────────────────────────────────────────
	fmt.Println("\n  empty input:")
	_, err := largest.Of([]string{})
	var empty *largest.EmptyInputError
	if errors.As(err, &empty) {
		log.WithField("op", empty.Op).WithError(err).Warn("no elements")
	}
	fmt.Println("    errors.Is(err, ErrEmptyInput):", errors.Is(err, largest.ErrEmptyInput))
}

// must unwraps (value, error) for inputs known to be non-empty.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
