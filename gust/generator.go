package gust

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springbone/windforce/envelope"
)

// minOrientationLen is the length below which a jittered direction is
// treated as degenerate and the base direction is used instead.
const minOrientationLen = 1e-9

// Generator owns the live gust set and the spawn countdown for one
// character instance. It is stepped by the engine and never shared across
// characters.
type Generator struct {
	Logger zerolog.Logger

	params     Params
	base       mgl64.Vec3 // normalised Params.Base
	riseShape  envelope.ShapeFunction
	decayShape envelope.ShapeFunction

	countdown float64 // seconds until the next gust spawns
	gusts     []Gust
}

// NewGenerator returns a generator for the given parameters, checking for
// invalid values. The countdown starts at zero, so the first enabled step
// spawns a gust immediately.
func NewGenerator(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees both names resolve
	riseShape, _ := envelope.GetShapeFromName(params.RiseFunc)
	decayShape, _ := envelope.GetShapeFromName(params.DecayFunc)

	return &Generator{
		Logger:     zerolog.Nop(),
		params:     params,
		base:       params.Base.Normalize(),
		riseShape:  riseShape,
		decayShape: decayShape,
	}, nil
}

// Step advances the generator by deltaTime seconds: it counts down to the
// next spawn, spawns at most one gust, then ages every live gust and removes
// the expired ones. At most one gust spawns per step no matter how large
// deltaTime is; hosts with large or variable frame times get a coarser
// cadence rather than a burst of catch-up gusts.
func (g *Generator) Step(r *rand.Rand, deltaTime float64) {
	g.countdown -= deltaTime
	if g.countdown <= 0 {
		g.spawn(r)
		g.countdown = g.params.Interval.draw(r) * g.params.TimeFactor
	}

	live := g.gusts[:0]
	for i := range g.gusts {
		g.gusts[i].elapsed += deltaTime
		if g.gusts[i].Expired() {
			g.Logger.Debug().Str("gust", g.gusts[i].id.String()).Msg("gust expired")
			continue
		}
		live = append(live, g.gusts[i])
	}
	g.gusts = live
}

func (g *Generator) spawn(r *rand.Rand) {
	jitterRange := Range{Min: -g.params.RandomPower, Max: g.params.RandomPower}
	orientation := g.base.Add(mgl64.Vec3{
		jitterRange.draw(r),
		jitterRange.draw(r),
		jitterRange.draw(r),
	})
	if orientation.Len() < minOrientationLen {
		// jitter cancelled the base direction exactly
		orientation = g.base
	} else {
		orientation = orientation.Normalize()
	}

	gst := Gust{
		id:          uuid.New(),
		orientation: orientation,
		rise:        g.params.Rise.draw(r),
		sit:         g.params.Sit.draw(r),
		peak:        g.params.Strength.draw(r) * g.params.StrengthFactor,
		riseShape:   g.riseShape,
		decayShape:  g.decayShape,
	}
	gst.total = gst.rise + gst.sit
	g.gusts = append(g.gusts, gst)

	g.Logger.Debug().
		Str("gust", gst.id.String()).
		Float64("peak", gst.peak).
		Float64("rise", gst.rise).
		Float64("sit", gst.sit).
		Msg("gust spawned")
}

// Aggregate returns the combined force of all live gusts: the unnormalised
// sum of their orientations and the sum of their current intensities. The
// direction sum is deliberately not renormalised so that overlapping gusts
// compound the directional push. With no live gusts both results are zero.
func (g *Generator) Aggregate() (mgl64.Vec3, float64) {
	var direction mgl64.Vec3
	var power float64
	for i := range g.gusts {
		direction = direction.Add(g.gusts[i].orientation)
		power += g.gusts[i].Intensity()
	}
	return direction, power
}

// Add inserts a scripted gust alongside the randomly spawned ones and
// returns its id. The gust ages and expires like any other.
func (g *Generator) Add(gst Gust) uuid.UUID {
	g.gusts = append(g.gusts, gst)
	return gst.id
}

// Gusts returns a copy of the live gust set.
func (g *Generator) Gusts() []Gust {
	out := make([]Gust, len(g.gusts))
	copy(out, g.gusts)
	return out
}

// Countdown returns the seconds remaining until the next gust spawns.
func (g *Generator) Countdown() float64 {
	return g.countdown
}

// SetCountdown overrides the spawn countdown, for example to delay the
// onset of wind after load.
func (g *Generator) SetCountdown(seconds float64) {
	g.countdown = seconds
}

// Params returns the generator's parameter set with defaults applied.
func (g *Generator) Params() Params {
	return g.params
}
