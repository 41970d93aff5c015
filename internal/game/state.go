package game

// State is a top-level session state.
type State int

const (
	StateIntro State = iota
	StateStory
	StatePlaying
	StatePaused
	StateGameOver
	StateWin
)

var stateNames = map[State]string{
	StateIntro:    "intro",
	StateStory:    "story",
	StatePlaying:  "playing",
	StatePaused:   "paused",
	StateGameOver: "gameover",
	StateWin:      "win",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}
