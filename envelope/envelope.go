package envelope

import (
	"errors"
	"math"
)

// A shape function y=f(t,A,T). Takes amplitude, A, and duration, T, as
// inputs and returns the envelope value at time, t. Shapes are expected to
// pass through y=0 at t=0 and y=A at t=T so that rise and decay segments
// join without a discontinuity.
type ShapeFunction func(t, A, T float64) float64

// A map between string name and shape function pairs
var shapeFunctions = map[string]ShapeFunction{
	"linear":     linearRamp,
	"sine":       sineRamp,
	"parabolic":  parabolicRamp,
	"smoothstep": smoothstepRamp,
}

func GetShapeNames() []string {
	names := make([]string, 0, len(shapeFunctions))
	for name := range shapeFunctions {
		names = append(names, name)
	}
	return names
}

// Returns the named shape function. The name must be one of GetShapeNames.
func GetShapeFromName(name string) (ShapeFunction, error) {
	shapeFunc, ok := shapeFunctions[name]
	if !ok {
		return nil, errors.New("shape function not found")
	}

	return shapeFunc, nil
}

// Returns a linear ramp y=(A/T)*t where A is the magnitude of the ramp, T is
// its duration, and t is elapsed time.
func linearRamp(t, A, T float64) float64 {
	m := A / T // slope of the ramp
	return m * t
}

// Returns a quarter sine wave y=A*sin(pi*t/(2*T)), reaching A at t=T.
func sineRamp(t, A, T float64) float64 {
	return A * math.Sin(math.Pi*t/(2*T))
}

// Returns a parabolic ramp y=A*(t/T)^2.
func parabolicRamp(t, A, T float64) float64 {
	return A * (t / T) * (t / T) // faster than math.Pow(t/T, 2)
}

// Returns the Hermite smoothstep y=A*(3*x^2 - 2*x^3) with x=t/T.
func smoothstepRamp(t, A, T float64) float64 {
	x := t / T
	return A * x * x * (3 - 2*x)
}
