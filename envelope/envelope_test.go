package envelope

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

// Every shape must start at zero and reach the full amplitude at the end of
// its segment, otherwise rise and decay would join with a discontinuity.
func TestShapeEndpoints(t *testing.T) {
	const (
		A = 2.5
		T = 0.8
	)

	for _, name := range GetShapeNames() {
		t.Run(name, func(t *testing.T) {
			shape, err := GetShapeFromName(name)
			assert.NilError(t, err)

			assert.Assert(t, math.Abs(shape(0, A, T)) < 1e-9, "shape %s not zero at t=0", name)
			assert.Assert(t, math.Abs(shape(T, A, T)-A) < 1e-9, "shape %s not A at t=T", name)
		})
	}
}

func TestLinearRampMidpoint(t *testing.T) {
	shape, err := GetShapeFromName("linear")
	assert.NilError(t, err)

	assert.Equal(t, 5.0, shape(0.5, 10.0, 1.0))
}

func TestShapeMonotonicRise(t *testing.T) {
	const (
		A = 1.0
		T = 1.0
	)

	for _, name := range GetShapeNames() {
		t.Run(name, func(t *testing.T) {
			shape, err := GetShapeFromName(name)
			assert.NilError(t, err)

			prev := shape(0, A, T)
			for i := 1; i <= 20; i++ {
				v := shape(float64(i)/20*T, A, T)
				assert.Assert(t, v >= prev, "shape %s not monotonic at step %d", name, i)
				prev = v
			}
		})
	}
}

func TestGetShapeFromNameUnknown(t *testing.T) {
	_, err := GetShapeFromName("triangle")
	assert.Error(t, err, "shape function not found")
}
