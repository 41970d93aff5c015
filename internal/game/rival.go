package game

import (
	"math"

	"github.com/vovakirdan/survivors-oath/internal/audio"
	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
)

// Rival is the pursuer. Once dead it stays inert until the session resets.
type Rival struct {
	Pos         core.Vec2
	Alive       bool
	Age         float64
	Scale       float64
	HitCooldown float64 // Seconds until contact can hurt again
}

func newRival(rc config.RivalConfig) *Rival {
	return &Rival{
		Pos:   core.V(rc.SpawnX, rc.SpawnY),
		Alive: true,
		Scale: rc.Scale,
	}
}

// seek steps toward goal at speed. It returns the distance to goal measured
// before the step. The step never passes the goal.
func (r *Rival) seek(goal core.Vec2, speed, dt, epsilon float64) float64 {
	to := goal.Sub(r.Pos)
	d := to.Len()
	if d > epsilon {
		step := math.Min(speed*dt, d)
		r.Pos = r.Pos.Add(to.Scale(step / d))
	}
	return d
}

// updateRival runs pursuit, contact damage and the player's counter-attack.
func (s *Session) updateRival(dt float64, in core.InputFrame) {
	r, p := s.rival, s.player
	if !r.Alive || s.state != StatePlaying {
		return
	}
	rc := s.cfg.Rival

	r.Age += dt
	if r.HitCooldown > 0 {
		r.HitCooldown = math.Max(0, r.HitCooldown-dt)
	}

	speed := rc.BaseSpeed + rc.NightBonus*s.cycle.Night()
	d := r.seek(p.Pos, speed, dt, rc.SeekEpsilon)

	if d < rc.ContactRadius*r.Scale && r.HitCooldown <= 0 {
		p.Health = max(p.Health-1, 0)
		r.HitCooldown = rc.HitCooldown
		s.hitFlash = s.cfg.Session.HitFlash
		s.cam.Shake()
		s.audio.Play(audio.SoundHit)
		s.log.Debug("rival hit", "health", p.Health)
	}

	if p.HasSpear && p.AttackCooldown <= 0 && in.JustPressed(core.ActionAttack) {
		p.AttackCooldown = s.cfg.Player.AttackCooldown
		if p.Pos.Dist(r.Pos) < rc.MeleeRange*r.Scale {
			r.Alive = false
			s.rivalSlain = true
			s.pops.Push(r.Pos, colorSlain, "Slain!")
			s.audio.Play(audio.SoundKill)
			s.log.Info("rival slain", "age", r.Age)
		}
	}
}
