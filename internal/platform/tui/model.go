package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/survivors-oath/internal/audio"
	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/game"
	"github.com/vovakirdan/survivors-oath/internal/storage"
)

// Options wires a Model to its surroundings. Every field is optional.
type Options struct {
	Store    *storage.Store     // Finished runs are recorded here
	Logger   *log.Logger        // Host and session logging; discarded when nil
	Audio    *audio.Output      // Sound requests; silent when nil
	Renderer *lipgloss.Renderer // Color profile; the process default when nil
}

// Model is the Bubble Tea model for one session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	renderer *Renderer
	painter  *Painter
	keys     *KeyMapper
	held     *HeldKeys
	frame    core.InputFrame
	config   core.RuntimeConfig
	log      *log.Logger
	now      func() time.Time

	last     time.Time // Previous tick
	mouseX   int
	mouseY   int
	hasMouse bool
	quitting bool
}

// NewModel creates a model running a fresh session.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := NewKeyMapper()
	renderer := NewRenderer(keys.Keys())
	vw, vh := renderer.Viewport(rt.ScreenW, rt.ScreenH)

	gameOpts := []game.Option{
		game.WithLogger(logger),
		game.WithAudio(opts.Audio),
		game.WithViewport(vw, vh),
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts, game.WithOutcome(recordOutcome(opts.Store, logger)))
	}

	return Model{
		session:  game.New(cfg, rt, gameOpts...),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		renderer: renderer,
		painter:  NewPainter(opts.Renderer),
		keys:     keys,
		held:     NewHeldKeys(DefaultFirstHold, DefaultRepeatHold),
		frame:    core.NewInputFrame(),
		config:   rt,
		log:      logger,
		now:      time.Now,
	}
}

// recordOutcome saves each finished run. Failures are logged; the game goes on.
func recordOutcome(store *storage.Store, logger *log.Logger) func(game.Outcome) {
	return func(o game.Outcome) {
		if err := store.RecordOutcome(o); err != nil {
			logger.Warn("could not record run", "run", o.RunID, "error", err)
		}
	}
}

// Session returns the hosted session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.held.Release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	now := m.now()
	for _, a := range m.keys.MapKeyToFrame(msg, &m.frame) {
		m.held.Touch(a, now)
	}
	return m, nil
}

// handleMouse tracks the pointer for aiming; a left click attacks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	m.hasMouse = true
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.frame.Press(core.ActionAttack)
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// the camera eases onto the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.SetViewport(m.renderer.Viewport(msg.Width, msg.Height))
	return m, nil
}

// handleTick advances the simulation by the time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.last, now, m.config.TickRate)
	m.last = now

	m.held.Apply(&m.frame, now)
	if m.hasMouse {
		// The pointer stays put on screen while the camera moves, so the
		// aim is re-projected every frame.
		aim := m.session.ScreenToWorld(m.renderer.CellCenter(m.mouseX, m.mouseY))
		m.frame.SetAim(aim)
	}

	m.session.Update(dt, m.frame)
	m.frame.Clear()

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.session.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".oath", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("oath_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.session.Snapshot())
	return m.painter.Paint(m.screen)
}

// Run starts the Bubble Tea program with a new session.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
