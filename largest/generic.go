// Package largest finds the largest element of a non-empty sequence.
//
// Every finder makes a single pass and only replaces the running maximum
// with a strictly greater element, so on ties the earliest element wins.
// An empty input is reported as an *EmptyInputError that matches
// ErrEmptyInput; no finder panics on it.
package largest

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Of is the generic form of Int32s, Runes and Float64s. The compiler
// instantiates it for each element type it is called with.
func Of[T constraints.Ordered](list []T) (T, error) {
	i, err := index(list, "Of")
	if err != nil {
		var zero T
		return zero, err
	}
	return list[i], nil
}

// Index returns the position of the earliest largest element of list.
func Index[T constraints.Ordered](list []T) (int, error) {
	i, err := index(list, "Index")
	if err != nil {
		return -1, err
	}
	return i, nil
}

func index[T constraints.Ordered](list []T, op string) (int, error) {
	if len(list) == 0 {
		return emptyInput[int](op)
	}
	best := 0
	for i := 1; i < len(list); i++ {
		if list[i] > list[best] {
			best = i
		}
	}
	return best, nil
}

// Smallest mirrors Of: it returns the earliest smallest element of list.
func Smallest[T constraints.Ordered](list []T) (T, error) {
	if len(list) == 0 {
		return emptyInput[T]("Smallest")
	}
	smallest := list[0]
	for _, item := range list[1:] {
		if item < smallest {
			smallest = item
		}
	}
	return smallest, nil
}

// Func returns the largest element of list under cmp, which reports a
// negative number when a < b, zero when they are equal and a positive
// number when a > b (the convention of cmp.Compare and slices.SortFunc).
func Func[T any](list []T, cmp func(a, b T) int) (T, error) {
	if len(list) == 0 {
		return emptyInput[T]("Func")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if cmp(item, largest) > 0 {
			largest = item
		}
	}
	return largest, nil
}

// Seq consumes seq and returns its largest element.
func Seq[T constraints.Ordered](seq iter.Seq[T]) (T, error) {
	var (
		largest T
		seen    bool
	)
	for item := range seq {
		if !seen || item > largest {
			largest = item
			seen = true
		}
	}
	if !seen {
		return emptyInput[T]("Seq")
	}
	return largest, nil
}
