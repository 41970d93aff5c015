// Package game is the simulation core: the session state machine and the
// player and rival models it drives. A Session is advanced one frame at a
// time with Update and observed through Snapshot. It never touches input
// devices, the terminal or the audio device directly.
package game

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/survivors-oath/internal/audio"
	"github.com/vovakirdan/survivors-oath/internal/camera"
	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/daynight"
	"github.com/vovakirdan/survivors-oath/internal/popfx"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

// Outcome describes a finished run.
type Outcome struct {
	RunID      string
	Won        bool
	Clues      int
	Survived   time.Duration
	RivalSlain bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions and events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAudio routes sound requests to out.
func WithAudio(out *audio.Output) Option {
	return func(s *Session) {
		s.audio = out
	}
}

// WithOutcome registers fn to be called when a run reaches GameOver or Win.
func WithOutcome(fn func(Outcome)) Option {
	return func(s *Session) {
		s.onOutcome = fn
	}
}

// WithViewport sets the camera viewport, in screen units. The default is
// the runtime screen size.
func WithViewport(w, h float64) Option {
	return func(s *Session) {
		s.viewW, s.viewH = w, h
	}
}

// Session is the complete mutable state of one playthrough.
type Session struct {
	cfg   config.Config
	rt    core.RuntimeConfig
	rng   *rand.Rand
	log   *log.Logger
	audio *audio.Output

	onOutcome func(Outcome)

	viewW, viewH float64

	state State
	frame uint64
	quit  bool
	runID string

	// Intro
	menuIndex  int
	showHelp   bool
	introAlpha float64
	introTimer float64

	// Story
	storyIndex int
	storyTimer float64

	// World
	bounds world.Bounds
	nodes  *world.Table
	player *Player
	rival  *Rival
	pops   *popfx.Queue
	cam    *camera.Camera
	cycle  *daynight.Cycle
	mixer  *audio.Mixer

	clues       int
	hitFlash    float64
	lightRadius float64
	survived    float64
	rivalSlain  bool
}

// New creates a session in the Intro state. A zero rt.Seed seeds from the clock.
func New(cfg config.Config, rt core.RuntimeConfig, opts ...Option) *Session {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:    cfg,
		rt:     rt,
		rng:    rand.New(rand.NewSource(seed)),
		log:    log.New(io.Discard),
		bounds: world.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		viewW:  float64(rt.ScreenW),
		viewH:  float64(rt.ScreenH),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cam = camera.New(cfg.Camera, s.viewW, s.viewH)
	s.cycle = daynight.New(cfg.DayNight)
	s.mixer = audio.NewMixer(cfg.Audio, 0)
	s.reset()
	return s
}

// reset recreates every owned entity and returns to the intro.
func (s *Session) reset() {
	s.state = StateIntro
	s.runID = uuid.NewString()
	s.menuIndex = MenuNewGame
	s.showHelp = false
	s.introAlpha = 0
	s.introTimer = 0
	s.storyIndex = 0
	s.storyTimer = 0

	s.nodes = world.NewTable(s.cfg.World.NodeCapacity)
	wc := s.cfg.World
	for _, spawn := range []struct {
		typ world.NodeType
		num int
	}{
		{world.NodeFood, wc.Nodes.Food},
		{world.NodeWater, wc.Nodes.Water},
		{world.NodeMaterial, wc.Nodes.Material},
		{world.NodeClue, wc.Nodes.Clue},
	} {
		s.nodes.Scatter(s.rng, s.bounds, wc.ScatterInset, spawn.typ, spawn.num)
	}

	s.player = newPlayer(s.cfg, core.V(s.bounds.W/2, s.bounds.H/2))
	s.rival = newRival(s.cfg.Rival)
	s.pops = popfx.New(s.cfg.Feedback.Capacity, s.cfg.Feedback.Lifetime, s.cfg.Feedback.LabelMax)
	s.cam.Reset(s.player.Pos)
	s.cycle.Reset()
	s.mixer.Reset(s.cycle.Night())
	s.mixer.Apply(s.audio)

	s.clues = 0
	s.hitFlash = 0
	s.lightRadius = s.cfg.Session.LightRadius
	s.survived = 0
	s.rivalSlain = false

	s.log.Debug("session reset", "run", s.runID, "nodes", s.nodes.Len())
}

// Update advances the session by dt seconds with the given input.
func (s *Session) Update(dt float64, in core.InputFrame) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s.frame++

	if in.JustPressed(core.ActionHardQuit) {
		s.requestQuit("hard quit")
	}

	switch s.state {
	case StateIntro:
		s.updateIntro(dt, in)
	case StateStory:
		s.updateStory(dt, in)
	case StatePlaying:
		s.updatePlaying(dt, in)
	case StatePaused:
		if in.JustPressed(core.ActionCancel) {
			s.setState(StatePlaying)
		}
	case StateGameOver, StateWin:
		if in.JustPressed(core.ActionConfirm) {
			s.reset()
		}
	}
}

func (s *Session) updateIntro(dt float64, in core.InputFrame) {
	s.introTimer += dt
	s.introAlpha = math.Min(1, s.introAlpha+dt*s.cfg.Session.IntroFadeRate)

	// Sampled up front so the cancel that closes help does not also quit.
	helpWasOpen := s.showHelp
	n := s.cfg.Session.MenuItems

	if helpWasOpen {
		if in.JustPressed(core.ActionConfirm) || in.JustPressed(core.ActionCancel) || in.JustPressed(core.ActionHelp) {
			s.showHelp = false
		}
		return
	}

	if in.JustPressed(core.ActionMenuUp) {
		s.menuIndex = (s.menuIndex + n - 1) % n
	}
	if in.JustPressed(core.ActionMenuDown) {
		s.menuIndex = (s.menuIndex + 1) % n
	}

	switch {
	case in.JustPressed(core.ActionConfirm):
		switch s.menuIndex {
		case MenuNewGame:
			s.beginStory()
		case MenuHowToPlay:
			s.showHelp = true
		case MenuQuit:
			s.requestQuit("menu")
		}
	case in.JustPressed(core.ActionHelp):
		s.showHelp = true
	}

	if in.JustPressed(core.ActionCancel) && s.state == StateIntro {
		s.requestQuit("cancel")
	}
}

// beginStory starts a clean run: progression and the day clock are rewound.
func (s *Session) beginStory() {
	s.clues = 0
	s.cycle.Reset()
	s.storyIndex = 0
	s.storyTimer = 0
	s.setState(StateStory)
}

func (s *Session) updateStory(dt float64, in core.InputFrame) {
	s.storyTimer += dt

	if in.JustPressed(core.ActionConfirm) && s.storyTimer > s.cfg.Session.StoryDebounce {
		s.storyTimer = 0
		s.storyIndex++
		if s.storyIndex >= s.cfg.Session.StoryLines {
			s.setState(StatePlaying)
		}
	}

	if in.JustPressed(core.ActionCancel) {
		s.requestQuit("cancel")
	}
}

func (s *Session) updatePlaying(dt float64, in core.InputFrame) {
	if in.JustPressed(core.ActionCancel) {
		s.setState(StatePaused)
		return
	}

	s.mixer.Update(dt, s.cycle.Night(), s.audio)

	if s.hitFlash > 0 {
		s.hitFlash = math.Max(0, s.hitFlash-dt*s.cfg.Session.HitFlashDecay)
	}

	wasForced := s.cycle.Triggered()
	s.cycle.Update(dt, s.clues)
	if !wasForced && s.cycle.Triggered() {
		s.log.Info("night falls", "clues", s.clues, "phase", s.cycle.Phase)
	}

	s.updatePlayer(dt, in)
	s.updateRival(dt, in)
	s.cam.Update(dt, s.player.Pos, s.player.Scale)
	s.pops.Update(dt)
	s.survived += dt

	switch {
	case s.clues >= s.cfg.Session.CluesRequired:
		s.finish(StateWin)
	case s.player.Health <= 0:
		s.finish(StateGameOver)
	}
}

func (s *Session) updatePlayer(dt float64, in core.InputFrame) {
	p := s.player
	pc := s.cfg.Player

	p.drainNeeds(dt, s.cycle.IsNight(), s.cfg.Needs)
	p.move(dt, in, pc, s.bounds)
	if in.HasAim {
		p.aimAt(in.Aim, pc.AimEpsilon)
	}

	if in.JustPressed(core.ActionCraft) && p.Craft(pc.CraftCost) {
		s.pops.Push(p.Pos, colorSpear, "Spear!")
		s.audio.Play(audio.SoundCraft)
	}
	if in.JustPressed(core.ActionInteract) {
		s.gather()
	}
	if in.JustPressed(core.ActionEat) {
		p.Eat(s.cfg.Needs)
	}
	if in.JustPressed(core.ActionDrink) {
		p.Drink(s.cfg.Needs)
	}

	if p.AttackCooldown > 0 {
		p.AttackCooldown = math.Max(0, p.AttackCooldown-dt)
	}
}

// gatherRadius is the scaled interaction radius for a node type.
func (s *Session) gatherRadius(t world.NodeType) float64 {
	gr := s.cfg.World.GatherRadius
	r := gr.Food
	switch t {
	case world.NodeMaterial:
		r = gr.Material
	case world.NodeWater:
		r = gr.Water
	case world.NodeClue:
		r = gr.Clue
	}
	return r * s.cfg.World.NodeScale
}

// nearest returns the index of the first available node in reach, or -1.
// Table order decides, not distance.
func (s *Session) nearest() int {
	for i := 0; i < s.nodes.Len(); i++ {
		n := s.nodes.At(i)
		if !n.Available() {
			continue
		}
		if s.player.Pos.Dist(n.Pos) <= s.gatherRadius(n.Type) {
			return i
		}
	}
	return -1
}

// gather acts on at most one node per press.
func (s *Session) gather() {
	i := s.nearest()
	if i < 0 {
		return
	}
	n := s.nodes.At(i)
	p := s.player

	var sound audio.Sound
	switch n.Type {
	case world.NodeFood:
		p.Food++
		sound = audio.SoundFood
	case world.NodeMaterial:
		p.Sticks++
		sound = audio.SoundStick
	case world.NodeWater:
		p.Water++
		sound = audio.SoundDrink
	case world.NodeClue:
		s.clues++
		sound = audio.SoundClue
		s.log.Info("clue found", "clues", s.clues, "required", s.cfg.Session.CluesRequired)
	default:
		return
	}
	s.nodes.Take(i)
	s.pops.Push(n.Pos, gatherColors[n.Type], gatherLabels[n.Type])
	s.audio.Play(sound)
}

func (s *Session) finish(state State) {
	s.setState(state)
	out := Outcome{
		RunID:      s.runID,
		Won:        state == StateWin,
		Clues:      s.clues,
		Survived:   time.Duration(s.survived * float64(time.Second)),
		RivalSlain: s.rivalSlain,
	}
	s.log.Info("run over", "run", out.RunID, "won", out.Won, "clues", out.Clues, "survived", out.Survived)
	if s.onOutcome != nil {
		s.onOutcome(out)
	}
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.log.Debug("state", "from", s.state, "to", state)
	s.state = state
}

func (s *Session) requestQuit(reason string) {
	if !s.quit {
		s.log.Debug("quit requested", "reason", reason, "state", s.state)
	}
	s.quit = true
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// QuitRequested reports whether the host should terminate.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// RunID identifies the current run.
func (s *Session) RunID() string {
	return s.runID
}

// SetViewport resizes the camera viewport, in screen units.
func (s *Session) SetViewport(w, h float64) {
	s.cam.SetViewport(w, h)
}

// ScreenToWorld converts a viewport point to world coordinates.
func (s *Session) ScreenToWorld(p core.Vec2) core.Vec2 {
	return s.cam.ScreenToWorld(p)
}

// WorldToScreen converts a world point to viewport coordinates.
func (s *Session) WorldToScreen(p core.Vec2) core.Vec2 {
	return s.cam.WorldToScreen(p)
}
