package game

import (
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/popfx"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

// Popup is a feedback event together with its current opacity.
type Popup struct {
	popfx.Event
	Alpha float64
}

// CameraView is the camera state for one frame.
type CameraView struct {
	Target core.Vec2
	Offset core.Vec2
	Zoom   float64
	Shake  float64
}

// Snapshot is a read-only copy of everything the presentation layer draws.
// Mutating it has no effect on the session.
type Snapshot struct {
	State State
	Frame uint64
	RunID string
	Quit  bool

	MenuIndex  int
	ShowHelp   bool
	IntroAlpha float64
	IntroTimer float64

	StoryIndex int
	StoryLine  string
	StoryLast  bool // Current line is the final one

	Bounds world.Bounds
	Player Player
	Rival  Rival
	Nodes  []world.Node
	Popups []Popup
	Camera CameraView
	Prompt string // Context hint for the node in reach, if any

	Phase       float64
	Night       bool
	ForcedNight bool
	NightBlend  float64
	Sky         core.Color

	Clues         int
	CluesRequired int
	HitFlash      float64
	LightRadius   float64
	Survived      float64
	RivalSlain    bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State: s.state,
		Frame: s.frame,
		RunID: s.runID,
		Quit:  s.quit,

		MenuIndex:  s.menuIndex,
		ShowHelp:   s.showHelp,
		IntroAlpha: s.introAlpha,
		IntroTimer: s.introTimer,

		StoryIndex: s.storyIndex,
		StoryLine:  storyLine(s.storyIndex),
		StoryLast:  s.storyIndex >= s.cfg.Session.StoryLines-1,

		Bounds: s.bounds,
		Player: *s.player,
		Rival:  *s.rival,
		Nodes:  s.nodes.Nodes(),
		Popups: s.Popups(),
		Camera: CameraView{
			Target: s.cam.Target,
			Offset: s.cam.Offset,
			Zoom:   s.cam.Zoom,
			Shake:  s.cam.ShakeTime(),
		},

		Phase:       s.cycle.Phase,
		Night:       s.cycle.IsNight(),
		ForcedNight: s.cycle.Forced,
		NightBlend:  s.cycle.Blend,
		Sky:         s.cycle.Sky(),

		Clues:         s.clues,
		CluesRequired: s.cfg.Session.CluesRequired,
		HitFlash:      s.hitFlash,
		LightRadius:   s.lightRadius,
		Survived:      s.survived,
		RivalSlain:    s.rivalSlain,
	}
	if i := s.nearest(); i >= 0 {
		snap.Prompt = promptLabels[s.nodes.At(i).Type]
	}
	return snap
}

// Popups returns the active feedback events.
func (s *Session) Popups() []Popup {
	events := s.pops.Events()
	out := make([]Popup, len(events))
	for i, e := range events {
		out[i] = Popup{Event: e, Alpha: s.pops.Alpha(e)}
	}
	return out
}

// storyLine clamps i to the available lines.
func storyLine(i int) string {
	if len(StoryLines) == 0 {
		return ""
	}
	return StoryLines[core.Clamp(i, 0, len(StoryLines)-1)]
}
