package gust

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/springbone/windforce/envelope"
)

// Gust is one transient wind event: a fixed unit push direction and a
// rise-then-decay intensity envelope. Gusts are plain owned records; the
// generator ages them in place and removes them once expired.
type Gust struct {
	id          uuid.UUID
	orientation mgl64.Vec3 // unit direction of push, fixed at creation
	rise        float64    // seconds to ramp from zero to peak
	sit         float64    // seconds to decay from peak back to zero
	total       float64    // rise+sit, fixed at creation
	peak        float64    // peak intensity
	elapsed     float64    // seconds since creation, advanced by the generator

	riseShape  envelope.ShapeFunction
	decayShape envelope.ShapeFunction
}

// New returns a gust with the linear envelope shapes, checking for invalid
// values. The orientation is normalised before use.
func New(orientation mgl64.Vec3, rise, sit, peak float64) (Gust, error) {
	linear, _ := envelope.GetShapeFromName("linear")
	return newGust(orientation, rise, sit, peak, linear, linear)
}

func newGust(orientation mgl64.Vec3, rise, sit, peak float64, riseShape, decayShape envelope.ShapeFunction) (Gust, error) {
	if rise <= 0 {
		return Gust{}, errors.New("rise duration must be greater than 0")
	}
	if sit <= 0 {
		return Gust{}, errors.New("sit duration must be greater than 0")
	}
	if peak < 0 {
		return Gust{}, errors.New("peak intensity must be greater than or equal to 0")
	}
	if orientation.Len() == 0 {
		return Gust{}, errors.New("orientation must have non-zero length")
	}

	return Gust{
		id:          uuid.New(),
		orientation: orientation.Normalize(),
		rise:        rise,
		sit:         sit,
		total:       rise + sit,
		peak:        peak,
		riseShape:   riseShape,
		decayShape:  decayShape,
	}, nil
}

// Intensity returns the envelope value at the gust's current age: zero at
// creation, peak at the end of the rise segment, and back to zero at the end
// of the sit segment.
func (g *Gust) Intensity() float64 {
	if g.elapsed < g.rise {
		return g.riseShape(g.elapsed, g.peak, g.rise)
	}
	return g.peak - g.decayShape(g.elapsed-g.rise, g.peak, g.sit)
}

// Expired reports whether the gust has reached the end of its envelope and
// should be removed this tick.
func (g *Gust) Expired() bool {
	return g.elapsed >= g.total
}

// Getters

func (g *Gust) ID() uuid.UUID {
	return g.id
}

func (g *Gust) Orientation() mgl64.Vec3 {
	return g.orientation
}

func (g *Gust) Rise() float64 {
	return g.rise
}

func (g *Gust) Sit() float64 {
	return g.sit
}

// Total returns the full envelope duration, rise plus sit.
func (g *Gust) Total() float64 {
	return g.total
}

func (g *Gust) Peak() float64 {
	return g.peak
}

func (g *Gust) Elapsed() float64 {
	return g.elapsed
}
