// Package camera follows the player with frame-rate independent smoothing,
// derives zoom from the player's scale and applies a decaying shake.
package camera

import (
	"math"

	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
)

// Camera maps world space to a viewport. Target is the world point shown at
// Offset, which is a viewport position.
type Camera struct {
	Target core.Vec2
	Offset core.Vec2
	Zoom   float64

	center core.Vec2 // Smoothed offset before shake
	viewW  float64
	viewH  float64
	shake  float64
	clock  float64
	cfg    config.CameraConfig
}

// New creates a camera for a viewport of the given size.
func New(cfg config.CameraConfig, viewW, viewH float64) *Camera {
	c := &Camera{cfg: cfg}
	c.SetViewport(viewW, viewH)
	c.Reset(core.Vec2{})
	return c
}

// SetViewport changes the viewport size. The offset eases to the new center.
func (c *Camera) SetViewport(w, h float64) {
	c.viewW, c.viewH = w, h
}

// Viewport returns the viewport size.
func (c *Camera) Viewport() (w, h float64) {
	return c.viewW, c.viewH
}

// Reset snaps the camera onto focus with the widest zoom and no shake.
func (c *Camera) Reset(focus core.Vec2) {
	c.Target = focus
	c.center = core.V(c.viewW/2, c.viewH/2)
	c.Offset = c.center
	c.Zoom = c.cfg.MaxZoom
	c.shake = 0
	c.clock = 0
}

// Update eases the camera toward the player at pos drawn at scale.
func (c *Camera) Update(dt float64, pos core.Vec2, scale float64) {
	c.clock += dt
	s := core.SmoothFactor(c.cfg.Smoothing, dt)

	goal := pos.Sub(core.V(0, c.cfg.VerticalOffset*scale))
	c.Target = c.Target.Lerp(goal, s)
	c.center = c.center.Lerp(core.V(c.viewW/2, c.viewH/2), s)

	zoomGoal := c.cfg.MaxZoom
	if scale > 0 {
		zoomGoal = core.ClampF(1/scale, c.cfg.MinZoom, c.cfg.MaxZoom)
	}
	c.Zoom += (zoomGoal - c.Zoom) * s

	c.Offset = c.center
	if c.shake > 0 {
		amp := c.cfg.ShakeAmplitude * c.shake
		c.Offset = c.Offset.Add(core.V(
			math.Sin(c.clock*50)*amp,
			math.Cos(c.clock*45)*amp,
		))
		c.shake = math.Max(0, c.shake-c.cfg.ShakeDecay*dt)
	}
}

// Shake (re)arms the shake timer to its configured duration.
func (c *Camera) Shake() {
	c.shake = c.cfg.ShakeDuration
}

// ShakeTime returns the remaining shake.
func (c *Camera) ShakeTime() float64 {
	return c.shake
}

// WorldToScreen converts a world point to viewport coordinates.
func (c *Camera) WorldToScreen(p core.Vec2) core.Vec2 {
	return p.Sub(c.Target).Scale(c.Zoom).Add(c.Offset)
}

// ScreenToWorld converts a viewport point to world coordinates.
func (c *Camera) ScreenToWorld(p core.Vec2) core.Vec2 {
	if c.Zoom == 0 {
		return c.Target
	}
	return p.Sub(c.Offset).Scale(1 / c.Zoom).Add(c.Target)
}
