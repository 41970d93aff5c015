// Package daynight models the time of day as a phase in [0, 1) and the
// one-shot forced nightfall triggered by story progress.
package daynight

import (
	"math"

	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
)

// Cycle is the day/night clock.
type Cycle struct {
	Phase  float64
	Forced bool    // Natural advance is suspended while forcing
	Target float64 // Phase the forced night drives toward
	Blend  float64 // Vignette progress, 0..1

	triggered bool // Forced night already fired this session
	cfg       config.DayNightConfig
}

// New creates a cycle at the configured start phase.
func New(cfg config.DayNightConfig) *Cycle {
	c := &Cycle{cfg: cfg}
	c.Reset()
	return c
}

// Reset returns to the start phase and re-arms the forced night.
func (c *Cycle) Reset() {
	c.Phase = c.cfg.StartPhase
	c.Forced = false
	c.Target = c.cfg.ForceTarget
	c.Blend = 0
	c.triggered = false
}

// Update advances the clock by dt. clues is the number of clues collected so far.
func (c *Cycle) Update(dt float64, clues int) {
	if !c.Forced {
		c.Phase += dt * c.cfg.Rate
		if c.Phase >= 1 {
			c.Phase = math.Mod(c.Phase, 1)
		}

		if !c.triggered && clues >= c.cfg.ForceAtClues && c.Phase < c.cfg.ForceBefore {
			c.Forced = true
			c.triggered = true
			c.Target = c.cfg.ForceTarget
			c.Blend = 0
		}
		return
	}

	c.Blend = math.Min(1, c.Blend+dt*c.cfg.BlendRate)
	c.Phase = core.Lerp(c.Phase, c.Target, math.Min(1, dt*c.cfg.ForceRate))
	if math.Abs(c.Phase-c.Target) < c.cfg.ForceTolerance {
		c.Phase = c.Target
		c.Forced = false
	}
}

// Triggered reports whether the forced night has fired since the last Reset.
func (c *Cycle) Triggered() bool {
	return c.triggered
}

// IsNight reports whether the phase is inside the night window.
func (c *Cycle) IsNight() bool {
	return c.Phase > c.cfg.NightStart && c.Phase < c.cfg.NightEnd
}

// Night returns 1 at night and 0 by day, for blending.
func (c *Cycle) Night() float64 {
	if c.IsNight() {
		return 1
	}
	return 0
}

// Sky returns the backdrop color for the current phase.
func (c *Cycle) Sky() core.Color {
	switch {
	case c.Phase < c.cfg.NightStart:
		return core.RGB(120, 170, 210)
	case c.Phase < c.cfg.NightStart+0.10:
		return core.RGB(60, 80, 120) // Dusk
	case c.Phase < c.cfg.NightEnd:
		return core.RGB(18, 20, 28)
	default:
		return core.RGB(80, 110, 160) // Dawn
	}
}
