package largest

// ── Method constraint ─────────────────────────────────────────────────────────
// Types outside constraints.Ordered (structs, versions, money amounts) can
// still be ranked if they describe how to compare themselves.

// Comparer is satisfied by types that can compare themselves to another value
// of the same type. Compare returns <0, 0 or >0 like cmp.Compare.
type Comparer[T any] interface {
	Compare(other T) int
}

// Comparable returns the largest element of list according to T's Compare
// method. list holds concrete values, not interface values.
func Comparable[T Comparer[T]](list []T) (T, error) {
	if len(list) == 0 {
		return emptyInput[T]("Comparable")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item.Compare(largest) > 0 {
			largest = item
		}
	}
	return largest, nil
}
