package largest_test

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/largest/largest"
)

func ExampleOf() {
	n, _ := largest.Of([]int{34, 50, 25, 100, 65})
	c, _ := largest.Of([]rune{'c', 'r', 'g', 's', 'e', 'm', 'q'})
	fmt.Println(n, string(c))
	// Output: 100 s
}

func ExampleOf_empty() {
	_, err := largest.Of([]float64{})
	fmt.Println(err)
	fmt.Println(errors.Is(err, largest.ErrEmptyInput))
	// Output:
	// largest.Of: empty input
	// true
}

func ExampleIndex() {
	i, _ := largest.Index([]string{"go", "zig", "rust", "zig"})
	fmt.Println(i)
	// Output: 1
}
