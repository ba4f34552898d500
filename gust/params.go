package gust

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/springbone/windforce/envelope"
)

// Range is a closed interval that spawn parameters are drawn from uniformly.
type Range struct {
	Min float64 `yaml:"Min"`
	Max float64 `yaml:"Max"`
}

// draw returns a uniform sample from the range.
func (r Range) draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range: min %v is greater than max %v", name, r.Min, r.Max)
	}
	return nil
}

// Params configures gust spawning. All fields map onto yaml keys so a wind
// profile can be loaded from configuration; invalid values are rejected by
// Validate (called by NewGenerator and when unmarshalling).
type Params struct {
	Off bool `yaml:"Off"` // true: engine starts disabled, false: enabled

	Base        mgl64.Vec3 `yaml:"Base"`        // base wind direction in world space, need not be unit length
	RandomPower float64    `yaml:"RandomPower"` // per-component orientation jitter drawn from [-RandomPower, RandomPower]

	Strength Range `yaml:"Strength"` // peak intensity of each gust
	Interval Range `yaml:"Interval"` // seconds between gust spawns
	Rise     Range `yaml:"Rise"`     // seconds for a gust to ramp up to peak
	Sit      Range `yaml:"Sit"`      // seconds for a gust to decay back to zero

	StrengthFactor float64 `yaml:"StrengthFactor"` // multiplier on drawn peak intensity, 0 defaults to 1
	TimeFactor     float64 `yaml:"TimeFactor"`     // multiplier on drawn spawn interval, 0 defaults to 1

	RiseFunc  string `yaml:"RiseFunc"`  // name of the envelope shape for the rise segment, empty defaults to "linear"
	DecayFunc string `yaml:"DecayFunc"` // name of the envelope shape for the decay segment, empty defaults to "linear"
}

// Validate checks the parameter set and fills in defaults for the
// multipliers and envelope shape names.
func (p *Params) Validate() error {
	if p.Base.Len() == 0 {
		return errors.New("base direction must have non-zero length")
	}
	if p.RandomPower < 0 {
		return errors.New("random power must be greater than or equal to 0")
	}

	for _, rv := range []struct {
		name string
		r    Range
	}{
		{"strength", p.Strength},
		{"interval", p.Interval},
		{"rise", p.Rise},
		{"sit", p.Sit},
	} {
		if err := rv.r.validate(rv.name); err != nil {
			return err
		}
	}

	if p.Strength.Min < 0 {
		return errors.New("strength range must not be negative")
	}
	if p.Interval.Min < 0 {
		return errors.New("interval range must not be negative")
	}
	if p.Rise.Min <= 0 {
		return errors.New("rise range must be greater than 0")
	}
	if p.Sit.Min <= 0 {
		return errors.New("sit range must be greater than 0")
	}

	if p.StrengthFactor < 0 {
		return errors.New("strength factor must not be negative")
	}
	if p.StrengthFactor == 0 {
		p.StrengthFactor = 1
	}
	if p.TimeFactor < 0 {
		return errors.New("time factor must not be negative")
	}
	if p.TimeFactor == 0 {
		p.TimeFactor = 1
	}

	if p.RiseFunc == "" {
		p.RiseFunc = "linear"
	}
	if _, err := envelope.GetShapeFromName(p.RiseFunc); err != nil {
		return fmt.Errorf("rise shape %q: %w", p.RiseFunc, err)
	}
	if p.DecayFunc == "" {
		p.DecayFunc = "linear"
	}
	if _, err := envelope.GetShapeFromName(p.DecayFunc); err != nil {
		return fmt.Errorf("decay shape %q: %w", p.DecayFunc, err)
	}

	return nil
}
