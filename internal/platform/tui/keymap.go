package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/survivors-oath/internal/core"
)

// KeyMap defines the key bindings for a session.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Sprint   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Interact key.Binding
	Eat      key.Binding
	Drink    key.Binding
	Craft    key.Binding
	Attack   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Interact, k.Eat, k.Drink, k.Craft, k.Attack, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Sprint},
		{k.Interact, k.Eat, k.Drink, k.Craft, k.Attack},
		{k.Confirm, k.Cancel, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Shifted movement keys sprint.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W", "shift+up"),
			key.WithHelp("w/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S", "shift+down"),
			key.WithHelp("s/down", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A", "shift+left"),
			key.WithHelp("a/left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D", "shift+right"),
			key.WithHelp("d/right", "move right"),
		),
		Sprint: key.NewBinding(
			key.WithKeys("W", "A", "S", "D", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift", "sprint"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/back"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "gather"),
		),
		Eat: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "eat"),
		),
		Drink: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "drink"),
		),
		Craft: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "craft spear"),
		),
		Attack: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "attack"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "H", "?"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("`", "ctrl+c"),
			key.WithHelp("`", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// One key can carry several actions: up moves and steps the menu.
type KeyMapper struct {
	keys  KeyMap
	binds []binding
}

type binding struct {
	key     *key.Binding
	actions []core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper for the given bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.binds = []binding{
		{&k.Up, []core.Action{core.ActionUp, core.ActionMenuUp}},
		{&k.Down, []core.Action{core.ActionDown, core.ActionMenuDown}},
		{&k.Left, []core.Action{core.ActionLeft}},
		{&k.Right, []core.Action{core.ActionRight}},
		{&k.Sprint, []core.Action{core.ActionSprint}},
		{&k.Confirm, []core.Action{core.ActionConfirm}},
		{&k.Cancel, []core.Action{core.ActionCancel}},
		{&k.Interact, []core.Action{core.ActionInteract}},
		{&k.Eat, []core.Action{core.ActionEat}},
		{&k.Drink, []core.Action{core.ActionDrink}},
		{&k.Craft, []core.Action{core.ActionCraft}},
		{&k.Attack, []core.Action{core.ActionAttack}},
		{&k.Help, []core.Action{core.ActionHelp}},
		{&k.Quit, []core.Action{core.ActionHardQuit}},
	}
	return km
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey returns every action bound to the key, in binding order.
// Unbound keys return nil.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	for _, b := range km.binds {
		if key.Matches(msg, *b.key) {
			actions = append(actions, b.actions...)
		}
	}
	return actions
}

// MapKeyToFrame presses every action bound to the key on frame and returns
// them.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) []core.Action {
	actions := km.MapKey(msg)
	for _, a := range actions {
		frame.Press(a)
	}
	return actions
}

// Hold durations for HeldKeys. Terminals report key presses and auto-repeat
// but never releases, so a key counts as held until its repeats stop. The
// first press waits out the terminal's initial repeat delay.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 150 * time.Millisecond
)

// heldActions are the continuous actions; everything else is an edge.
var heldActions = map[core.Action]bool{
	core.ActionUp:     true,
	core.ActionDown:   true,
	core.ActionLeft:   true,
	core.ActionRight:  true,
	core.ActionSprint: true,
}

// HeldKeys turns a stream of key presses into held state.
type HeldKeys struct {
	first  time.Duration
	repeat time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker. Non-positive durations use the defaults.
func NewHeldKeys(first, repeat time.Duration) *HeldKeys {
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HeldKeys{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Action]time.Time),
	}
}

// Touch records a press of a at now. Edge-only actions are ignored.
func (h *HeldKeys) Touch(a core.Action, now time.Time) {
	if !heldActions[a] {
		return
	}
	hold := h.first
	if h.Held(a, now) {
		hold = h.repeat
	}
	h.until[a] = now.Add(hold)
}

// Held reports whether a is still held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Apply marks every action still held at now on frame and forgets the
// expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if !now.Before(until) {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}

// Release drops every hold, e.g. when the terminal loses focus.
func (h *HeldKeys) Release() {
	clear(h.until)
}
