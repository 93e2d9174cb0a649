package largest

// ── One function per element type ─────────────────────────────────────────────
// The three functions below have identical bodies and differ only in the
// element type. This is the duplication the generic Of removes.

// Int32s returns the largest value in list.
func Int32s(list []int32) (int32, error) {
	if len(list) == 0 {
		return emptyInput[int32]("Int32s")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, nil
}

// Runes returns the largest rune in list.
func Runes(list []rune) (rune, error) {
	if len(list) == 0 {
		return emptyInput[rune]("Runes")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, nil
}

// Float64s returns the largest value in list. NaN is never greater than
// anything, so a NaN is only returned when it is the first element.
func Float64s(list []float64) (float64, error) {
	if len(list) == 0 {
		return emptyInput[float64]("Float64s")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, nil
}
