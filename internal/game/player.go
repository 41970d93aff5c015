package game

import (
	"math"

	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

// Facing is the sprite direction.
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingRight
	FacingUp
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	}
	return "unknown"
}

// Player is the survivor.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Scale  float64
	Radius float64 // Collision radius before scale

	Facing Facing
	Aim    float64 // Radians, toward the pointer

	Health    int
	MaxHealth int
	Hunger    float64
	Thirst    float64

	Food   int
	Water  int
	Sticks int

	HasSpear       bool
	AttackCooldown float64
}

func newPlayer(cfg config.Config, spawn core.Vec2) *Player {
	pc := cfg.Player
	return &Player{
		Pos:       spawn,
		Scale:     pc.Scale,
		Radius:    pc.BaseRadius,
		Facing:    FacingDown,
		Health:    pc.MaxHealth,
		MaxHealth: pc.MaxHealth,
		Hunger:    pc.StartHunger,
		Thirst:    pc.StartThirst,
		Food:      pc.StartFood,
		Water:     pc.StartWater,
		Sticks:    pc.StartSticks,
	}
}

// drainNeeds lowers hunger and thirst, and costs health while either is exhausted.
func (p *Player) drainNeeds(dt float64, night bool, nc config.NeedsConfig) {
	heat := nc.ThirstDayFactor
	if night {
		heat = nc.ThirstNightFactor
	}
	p.Hunger -= nc.HungerRate * dt
	p.Thirst -= nc.ThirstRate * dt * heat

	if p.Hunger <= 0 || p.Thirst <= 0 {
		if p.Hunger <= 0 && p.Thirst <= 0 {
			p.Health -= 2
		} else {
			p.Health--
		}
		p.Health = max(p.Health, 0)
		p.Hunger = math.Max(p.Hunger, 0)
		p.Thirst = math.Max(p.Thirst, 0)
	}
}

// intent builds the raw movement vector from held directions.
func intent(in core.InputFrame) core.Vec2 {
	var a core.Vec2
	if in.Down(core.ActionUp) {
		a.Y--
	}
	if in.Down(core.ActionDown) {
		a.Y++
	}
	if in.Down(core.ActionLeft) {
		a.X--
	}
	if in.Down(core.ActionRight) {
		a.X++
	}
	return a
}

// faceToward picks the sprite direction from the dominant axis of a raw
// intent vector. Ties go to the horizontal axis.
func faceToward(a core.Vec2, current Facing) Facing {
	if a.IsZero() {
		return current
	}
	if math.Abs(a.X) >= math.Abs(a.Y) {
		if a.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if a.Y > 0 {
		return FacingDown
	}
	return FacingUp
}

// move integrates input into velocity and position, then clamps to bounds.
func (p *Player) move(dt float64, in core.InputFrame, pc config.PlayerConfig, bounds world.Bounds) {
	raw := intent(in)
	p.Facing = faceToward(raw, p.Facing)

	var accel core.Vec2
	if !raw.IsZero() {
		accel = raw.Normalize().Scale(pc.Accel)
	}

	p.Vel = p.Vel.Add(accel.Scale(dt))
	p.Vel = p.Vel.Scale(math.Exp(-pc.Friction * dt))

	limit := pc.MaxSpeed
	if in.Down(core.ActionSprint) {
		limit *= pc.SprintMultiplier
	}
	if speed := p.Vel.Len(); speed > limit {
		p.Vel = p.Vel.Scale(limit / speed)
	}

	p.Pos = bounds.Clamp(p.Pos.Add(p.Vel.Scale(dt)))
}

// aimAt turns the aim angle toward target unless it sits on the player.
func (p *Player) aimAt(target core.Vec2, epsilon float64) {
	d := target.Sub(p.Pos)
	if d.LenSqr() > epsilon {
		p.Aim = math.Atan2(d.Y, d.X)
	}
}

// Eat consumes one food when hungry. It reports whether anything happened.
func (p *Player) Eat(nc config.NeedsConfig) bool {
	if p.Food <= 0 || p.Hunger >= nc.Max {
		return false
	}
	p.Food--
	p.Hunger = math.Min(p.Hunger+nc.EatRestore, nc.Max)
	return true
}

// Drink consumes one water when thirsty. It reports whether anything happened.
func (p *Player) Drink(nc config.NeedsConfig) bool {
	if p.Water <= 0 || p.Thirst >= nc.Max {
		return false
	}
	p.Water--
	p.Thirst = math.Min(p.Thirst+nc.DrinkRestore, nc.Max)
	return true
}

// Craft turns cost sticks into a spear. It is a no-op when a spear is
// already held or sticks are short.
func (p *Player) Craft(cost int) bool {
	if p.HasSpear || p.Sticks < cost {
		return false
	}
	p.Sticks -= cost
	p.HasSpear = true
	return true
}

// CollisionRadius is the scaled body radius.
func (p *Player) CollisionRadius() float64 {
	return p.Radius * p.Scale
}
