package core

// Action represents a semantic game action, abstracted from physical keys.
// The simulation never sees raw devices, only these intents.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move up
	ActionDown            // S, Down arrow - move down
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionConfirm         // Enter, Space in menus
	ActionCancel          // Escape - pause / back / quit from title
	ActionInteract        // E - gather, drink from pond, inspect clue
	ActionEat             // 1
	ActionDrink           // 2
	ActionCraft           // F - craft spear
	ActionAttack          // Space in play
	ActionSprint          // Shift modifier
	ActionMenuUp          // W, Up arrow in menus
	ActionMenuDown        // S, Down arrow in menus
	ActionHelp            // H - help overlay
	ActionHardQuit        // ` - quit from anywhere
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionConfirm:  "Confirm",
	ActionCancel:   "Cancel",
	ActionInteract: "Interact",
	ActionEat:      "Eat",
	ActionDrink:    "Drink",
	ActionCraft:    "Craft",
	ActionAttack:   "Attack",
	ActionSprint:   "Sprint",
	ActionMenuUp:   "MenuUp",
	ActionMenuDown: "MenuDown",
	ActionHelp:     "Help",
	ActionHardQuit: "HardQuit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input snapshot for one frame: which actions are held
// down and which went down this frame, plus an optional aim point.
type InputFrame struct {
	// Held maps actions to whether they are currently held.
	Held map[Action]bool
	// Pressed maps actions to whether they were pressed this frame.
	Pressed map[Action]bool

	// Aim is the pointer position in world units; valid when HasAim is set.
	Aim    Vec2
	HasAim bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Press marks an action as pressed this frame. A press also counts as held,
// so a single tap moves the player for the frame it lands in.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a fresh press edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetAim records the pointer position in world units.
func (f *InputFrame) SetAim(p Vec2) {
	f.Aim = p
	f.HasAim = true
}

// Down returns true if the action is held.
func (f InputFrame) Down(a Action) bool {
	return f.Held[a]
}

// JustPressed returns true if the action was pressed this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets held and pressed actions for the next frame.
// The aim point is kept; pointers only report motion.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// ClearPressed drops the edges but keeps held state.
func (f *InputFrame) ClearPressed() {
	clear(f.Pressed)
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Held {
		c.Held[k] = v
	}
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	c.Aim = f.Aim
	c.HasAim = f.HasAim
	return c
}
