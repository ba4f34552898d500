// Package windforce animates secondary motion on a rigged character by
// injecting a synthetic, time-varying wind force into the gravity settings
// of its spring joints. Overlapping gusts with rise-then-decay intensity
// envelopes are composed into one directional force per tick and overlaid
// on each joint's captured baseline, fully reversibly.
package windforce

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/springbone/windforce/gust"
)

// minDirectionLen is the length below which an overlaid gravity direction is
// treated as degenerate and the joint's baseline direction is kept.
const minDirectionLen = 1e-9

// Joint is the boundary to one externally simulated spring joint. The engine
// reads gravity once at load to capture a baseline and writes gravity every
// enabled tick; it never inspects the joint otherwise.
type Joint interface {
	Gravity() (direction mgl64.Vec3, power float64)
	SetGravity(direction mgl64.Vec3, power float64)
}

// binding pairs a joint with its gravity settings as captured at load time.
// The captured values are the restoration point for disable and expiry.
type binding struct {
	joint         Joint
	baseDirection mgl64.Vec3
	basePower     float64
}

// Engine drives the wind simulation for one character instance. It owns the
// gust generator and the joint bindings exclusively; a host simulating
// several characters gives each its own Engine.
type Engine struct {
	log      zerolog.Logger
	gen      *gust.Generator
	bindings []binding
	enabled  bool
	r        *rand.Rand
}

// New returns an engine for the given wind parameters, checking for invalid
// values. The engine starts enabled unless params.Off is set, and unloaded;
// call Load to bind joints.
func New(log zerolog.Logger, params gust.Params) (*Engine, error) {
	gen, err := gust.NewGenerator(params)
	if err != nil {
		return nil, err
	}
	gen.Logger = log

	return &Engine{
		log:     log,
		gen:     gen,
		enabled: !params.Off,
		r:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}, nil
}

// SetLogger replaces the engine's logger and propagates it to the gust
// generator.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
	e.gen.Logger = log
}

// SetRand replaces the engine's random source, for deterministic gust draws.
func (e *Engine) SetRand(r *rand.Rand) {
	e.r = r
}

// Generator exposes the engine's gust generator for scripted gusts and
// diagnostics.
func (e *Engine) Generator() *gust.Generator {
	return e.gen
}

// Load replaces the binding set, capturing each joint's current gravity
// direction and power as its baseline. It returns an error when the joint
// set is empty, leaving the previous bindings in place. Live gusts and the
// spawn countdown persist across a reload.
func (e *Engine) Load(joints []Joint) error {
	if len(joints) == 0 {
		return errors.New("no spring joints to bind")
	}

	bindings := make([]binding, 0, len(joints))
	for _, j := range joints {
		direction, power := j.Gravity()
		bindings = append(bindings, binding{
			joint:         j,
			baseDirection: direction,
			basePower:     power,
		})
	}
	e.bindings = bindings

	e.log.Info().Int("joints", len(bindings)).Msg("spring joints bound")
	return nil
}

// Unload clears the binding set. Live gusts and the spawn countdown are kept.
func (e *Engine) Unload() {
	e.bindings = nil
	e.log.Info().Msg("spring joints released")
}

// Loaded reports whether any joints are bound.
func (e *Engine) Loaded() bool {
	return len(e.bindings) > 0
}

// Enabled reports whether the engine is advancing and writing to joints.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled switches the wind effect on or off. Disabling immediately
// restores every bound joint to its baseline and freezes the generator in
// place: neither the spawn countdown nor any gust's age advances until the
// engine is re-enabled, at which point the simulation resumes exactly where
// it left off.
func (e *Engine) SetEnabled(enabled bool) {
	if e.enabled == enabled {
		return
	}
	e.enabled = enabled

	if enabled {
		e.log.Info().Msg("wind enabled")
		return
	}

	for i := range e.bindings {
		b := &e.bindings[i]
		b.joint.SetGravity(b.baseDirection, b.basePower)
	}
	e.log.Info().Msg("wind disabled, joint baselines restored")
}

// Step advances the simulation by deltaTime seconds and writes the composed
// wind force to every bound joint. While the engine is disabled Step is a
// strict no-op.
func (e *Engine) Step(deltaTime float64) {
	if !e.enabled {
		return
	}

	e.gen.Step(e.r, deltaTime)
	direction, power := e.gen.Aggregate()
	e.apply(direction, power)
}

// apply overlays the aggregate wind force on each joint's baseline. The
// write happens every enabled tick, with zero live gusts included, so late
// baseline changes by the host still take effect.
func (e *Engine) apply(windDirection mgl64.Vec3, windPower float64) {
	for i := range e.bindings {
		b := &e.bindings[i]

		direction := b.baseDirection.Add(windDirection)
		if l := direction.Len(); l < minDirectionLen {
			// wind cancelled the baseline exactly
			direction = b.baseDirection
		} else {
			direction = direction.Mul(1 / l)
		}

		b.joint.SetGravity(direction, b.basePower+windPower)
	}
}
