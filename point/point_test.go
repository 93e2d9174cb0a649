package point_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/largest/point"
)

func TestXRef(t *testing.T) {
	t.Parallel()

	p := point.Point[int]{X: 5, Y: 10}
	x := p.XRef()
	assert.Equal(t, 5, *x)

	*x = 7
	assert.Equal(t, 7, p.X, "XRef must point into the struct, not a copy")
}

func TestDistanceFromOrigin(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, point.DistanceFromOrigin(point.Point[float64]{X: 3, Y: 4}), 1e-12)

	got := point.DistanceFromOrigin(point.Point[float32]{X: 3.0, Y: 5.3})
	assert.InDelta(t, math.Sqrt(3*3+5.3*5.3), float64(got), 1e-5)
}

func TestMixup(t *testing.T) {
	t.Parallel()

	p1 := point.MixedPoint[int, float64]{X: 5, Y: 10.4}
	p2 := point.MixedPoint[string, rune]{X: "hello", Y: 'c'}

	got := point.Mixup(p1, p2)

	want := point.MixedPoint[int, rune]{X: 5, Y: 'c'}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mixup mismatch (-want +got):\n%s", diff)
	}
	// inputs are untouched
	assert.Equal(t, 10.4, p1.Y)
	assert.Equal(t, "hello", p2.X)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1, 4)", point.Point[float64]{X: 1, Y: 4}.String())
	assert.Equal(t, "(5, 4.5)", point.MixedPoint[int, float64]{X: 5, Y: 4.5}.String())
}
