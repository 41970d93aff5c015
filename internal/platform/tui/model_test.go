package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/game"
	"github.com/vovakirdan/survivors-oath/internal/storage"
)

func newTestModel(cfg config.Config, opts Options) Model {
	rt := core.RuntimeConfig{ScreenW: testCols, ScreenH: testRows, TickRate: 60, Seed: 12345}
	return NewModel(cfg, rt, opts)
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// tick advances the model 100ms past its previous tick.
func tick(m Model) Model {
	now := time.Unix(1000, 0)
	if !m.last.IsZero() {
		now = m.last.Add(100 * time.Millisecond)
	}
	return send(m, TickMsg(now))
}

func enter(m Model) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

// startPlaying walks the model through the intro and the story.
func startPlaying(t *testing.T, m Model) Model {
	t.Helper()
	m = tick(enter(m))
	for i := 0; i < 10 && m.Session().State() == game.StateStory; i++ {
		m = tick(m)
		m = tick(m)
		m = tick(enter(m))
	}
	if m.Session().State() != game.StatePlaying {
		t.Fatalf("State = %v, expected Playing", m.Session().State())
	}
	return m
}

func TestModelConfirmStartsStory(t *testing.T) {
	m := newTestModel(config.Default(), Options{})
	m = tick(m)
	if m.Session().State() != game.StateIntro {
		t.Fatalf("State = %v, expected Intro", m.Session().State())
	}

	m = tick(enter(m))
	if m.Session().State() != game.StateStory {
		t.Errorf("State = %v, expected Story", m.Session().State())
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newTestModel(config.Default(), Options{})
	m = enter(m)
	if !m.frame.JustPressed(core.ActionConfirm) {
		t.Fatal("Expected Confirm pressed before the tick")
	}
	m = tick(m)
	if m.frame.JustPressed(core.ActionConfirm) {
		t.Error("Expected press edges cleared after the tick")
	}
}

func TestModelHardQuit(t *testing.T) {
	m := newTestModel(config.Default(), Options{})
	m = send(m, runeKey('`'))
	updated, cmd := m.Update(TickMsg(time.Unix(1000, 0)))
	m = updated.(Model)

	if !m.Session().QuitRequested() {
		t.Error("Expected quit requested")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := startPlaying(t, newTestModel(config.Default(), Options{}))
	start := m.Session().Snapshot().Player.Pos

	m.now = func() time.Time { return m.last }
	m = send(m, runeKey('d'))
	m = tick(m)
	m = tick(m) // No new key, the hold carries

	if got := m.Session().Snapshot().Player.Pos; got.X <= start.X {
		t.Errorf("Player.X = %v, expected movement right of %v", got.X, start.X)
	}
}

func TestModelMouseAim(t *testing.T) {
	m := startPlaying(t, newTestModel(config.Default(), Options{}))
	snap := m.Session().Snapshot()
	px, py := m.renderer.toCell(snap.Camera, snap.Player.Pos)

	// Point straight below the player.
	m = send(m, tea.MouseMsg{X: px, Y: py + 5, Action: tea.MouseActionMotion})
	m = tick(m)

	aim := m.Session().Snapshot().Player.Aim
	if aim < 1.2 || aim > 1.9 {
		t.Errorf("Aim = %v, expected roughly pi/2", aim)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(config.Default(), Options{})
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("View() has %d lines, expected 40", lines)
	}
}

func TestModelRecordsOutcome(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.Default()
	cfg.Player.StartHunger = 0
	cfg.Player.StartThirst = 0
	m := startPlaying(t, newTestModel(cfg, Options{Store: store}))
	runID := m.Session().RunID()

	for i := 0; i < 5 && m.Session().State() == game.StatePlaying; i++ {
		m = tick(m)
	}
	if m.Session().State() != game.StateGameOver {
		t.Fatalf("State = %v, expected GameOver", m.Session().State())
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("Expected the finished run to be recorded")
	}
	if r.Won || r.Clues != 0 {
		t.Errorf("run = %+v, expected a death with no clues", r)
	}
}
