package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/survivors-oath/internal/audio"
	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

const frame = 1.0 / 60

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 12345}
}

func newTestSession(opts ...Option) *Session {
	return New(config.Default(), testRuntime(), opts...)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// startPlaying drives the session from the intro through the story.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	s.Update(frame, press(core.ActionConfirm))
	for i := 0; i < len(StoryLines); i++ {
		s.Update(0.25, press(core.ActionConfirm))
	}
	if s.State() != StatePlaying {
		t.Fatalf("State() = %v after story, expected playing", s.State())
	}
}

// isolate clears the node table and parks the rival far from the player.
func isolate(s *Session) {
	s.nodes = world.NewTable(s.cfg.World.NodeCapacity)
	s.player.Pos = core.V(2000, 1500)
	s.rival.Pos = core.V(100, 100)
}

func TestNewSessionStartsAtIntro(t *testing.T) {
	s := newTestSession()
	snap := s.Snapshot()

	if snap.State != StateIntro {
		t.Errorf("State = %v, expected intro", snap.State)
	}
	if len(snap.Nodes) != 50 {
		t.Errorf("len(Nodes) = %d, expected 50", len(snap.Nodes))
	}
	if snap.Player.Pos != core.V(2000, 1500) {
		t.Errorf("Player.Pos = %v, expected world center", snap.Player.Pos)
	}
	if snap.Rival.Pos != core.V(300, 300) || !snap.Rival.Alive {
		t.Errorf("Rival = %+v, expected alive at (300, 300)", snap.Rival)
	}
	if snap.Phase != 0.20 || snap.CluesRequired != 4 || snap.RunID == "" {
		t.Errorf("phase=%v required=%d run=%q", snap.Phase, snap.CluesRequired, snap.RunID)
	}
}

func TestDeterministicScatter(t *testing.T) {
	a := newTestSession().Snapshot().Nodes
	b := newTestSession().Snapshot().Nodes

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d differs with the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestIntroMenuWraps(t *testing.T) {
	s := newTestSession()

	s.Update(frame, press(core.ActionMenuUp))
	if s.menuIndex != MenuQuit {
		t.Errorf("menuIndex = %d after up from 0, expected %d", s.menuIndex, MenuQuit)
	}
	s.Update(frame, press(core.ActionMenuDown))
	if s.menuIndex != MenuNewGame {
		t.Errorf("menuIndex = %d after down from 2, expected 0", s.menuIndex)
	}
}

func TestIntroFadeIn(t *testing.T) {
	s := newTestSession()
	s.Update(0.25, idle())
	if s.introAlpha != 0.5 {
		t.Errorf("introAlpha = %v, expected 0.5", s.introAlpha)
	}
	s.Update(1, idle())
	if s.introAlpha != 1 {
		t.Errorf("introAlpha = %v, expected capped at 1", s.introAlpha)
	}
}

func TestIntroHelpOverlay(t *testing.T) {
	s := newTestSession()
	s.Update(frame, press(core.ActionMenuDown))
	s.Update(frame, press(core.ActionConfirm))

	if !s.showHelp {
		t.Fatal("confirm on How To Play did not open help")
	}

	s.Update(frame, press(core.ActionMenuDown))
	if s.menuIndex != MenuHowToPlay {
		t.Errorf("menu moved to %d while help open", s.menuIndex)
	}

	s.Update(frame, press(core.ActionCancel))
	if s.showHelp {
		t.Error("cancel did not close help")
	}
	if s.QuitRequested() {
		t.Error("cancel that closed help also requested quit")
	}

	s.Update(frame, press(core.ActionHelp))
	if !s.showHelp {
		t.Error("help key did not open help")
	}
	s.Update(frame, press(core.ActionHelp))
	if s.showHelp {
		t.Error("help key did not close help")
	}

	s.Update(frame, press(core.ActionCancel))
	if !s.QuitRequested() {
		t.Error("cancel with help closed did not request quit")
	}
}

func TestIntroMenuQuit(t *testing.T) {
	s := newTestSession()
	s.Update(frame, press(core.ActionMenuUp))
	s.Update(frame, press(core.ActionConfirm))

	if !s.QuitRequested() {
		t.Error("confirm on Quit did not request quit")
	}
	if s.State() != StateIntro {
		t.Errorf("State() = %v, expected intro", s.State())
	}
}

func TestStoryDebounce(t *testing.T) {
	s := newTestSession()
	s.Update(frame, press(core.ActionConfirm))
	if s.State() != StateStory {
		t.Fatalf("State() = %v, expected story", s.State())
	}

	s.Update(0.1, press(core.ActionConfirm))
	if s.storyIndex != 0 {
		t.Errorf("storyIndex = %d, expected debounce to hold at 0", s.storyIndex)
	}

	s.Update(0.15, press(core.ActionConfirm))
	if s.storyIndex != 1 {
		t.Errorf("storyIndex = %d after 0.25s, expected 1", s.storyIndex)
	}

	s.Update(0.05, press(core.ActionConfirm))
	if s.storyIndex != 1 {
		t.Errorf("storyIndex = %d, expected the timer to restart after advancing", s.storyIndex)
	}
}

func TestStoryCancelQuits(t *testing.T) {
	s := newTestSession()
	s.Update(frame, press(core.ActionConfirm))
	s.Update(frame, press(core.ActionCancel))

	if !s.QuitRequested() {
		t.Error("cancel in story did not request quit")
	}
}

func TestHardQuitFromAnyState(t *testing.T) {
	for _, state := range []State{StateIntro, StateStory, StatePlaying, StatePaused, StateGameOver, StateWin} {
		s := newTestSession()
		s.state = state
		s.Update(frame, press(core.ActionHardQuit))
		if !s.QuitRequested() {
			t.Errorf("hard quit ignored in %v", state)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)

	s.Update(frame, press(core.ActionCancel))
	if s.State() != StatePaused {
		t.Fatalf("State() = %v, expected paused", s.State())
	}

	hunger := s.player.Hunger
	rivalPos := s.rival.Pos
	for i := 0; i < 60; i++ {
		in := idle()
		in.Hold(core.ActionRight)
		s.Update(frame, in)
	}
	if s.player.Hunger != hunger || s.rival.Pos != rivalPos || s.player.Pos != core.V(2000, 1500) {
		t.Error("simulation advanced while paused")
	}

	s.Update(frame, press(core.ActionCancel))
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
}

func TestNeedsExhaustionScenario(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.player.Hunger, s.player.Thirst = 1, 1

	s.Update(1.0, idle())

	p := s.player
	if p.Hunger != 0 || p.Thirst != 0 {
		t.Errorf("needs = %v/%v, expected 0/0", p.Hunger, p.Thirst)
	}
	if p.Health != 1 {
		t.Errorf("Health = %d, expected 1", p.Health)
	}
}

func TestCraftScenario(t *testing.T) {
	rec := &audio.Recorder{}
	bank := audio.NewBank()
	craft := bank.SetSound(audio.SoundCraft, "craft.wav")
	s := newTestSession(WithAudio(audio.NewOutput(bank, rec)))
	startPlaying(t, s)
	isolate(s)
	s.player.Sticks = 2

	s.Update(frame, press(core.ActionCraft))
	if s.player.Sticks != 0 || !s.player.HasSpear {
		t.Fatalf("sticks=%d spear=%v, expected 0 and true", s.player.Sticks, s.player.HasSpear)
	}
	if len(rec.Played) != 1 || rec.Played[0] != craft {
		t.Errorf("Played = %v, expected craft sound", rec.Played)
	}
	if s.pops.Len() != 1 {
		t.Errorf("popups = %d, expected 1", s.pops.Len())
	}

	s.Update(frame, press(core.ActionCraft))
	if s.player.Sticks != 0 || !s.player.HasSpear || s.pops.Len() != 1 {
		t.Error("second craft had an effect")
	}
}

func TestGatherIdempotent(t *testing.T) {
	for _, typ := range []world.NodeType{world.NodeFood, world.NodeMaterial, world.NodeClue} {
		t.Run(typ.String(), func(t *testing.T) {
			s := newTestSession()
			startPlaying(t, s)
			isolate(s)
			s.nodes.Add(world.Node{Pos: s.player.Pos.Add(core.V(10, 0)), Type: typ})

			food, sticks := s.player.Food, s.player.Sticks
			s.Update(frame, press(core.ActionInteract))
			s.Update(frame, press(core.ActionInteract))

			if !s.nodes.At(0).Taken {
				t.Error("node not taken")
			}
			gained := (s.player.Food - food) + (s.player.Sticks - sticks) + s.clues
			if gained != 1 {
				t.Errorf("gained %d items over two presses, expected 1", gained)
			}
		})
	}
}

func TestGatherWaterIsInexhaustible(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.nodes.Add(world.Node{Pos: s.player.Pos.Add(core.V(0, 80)), Type: world.NodeWater})

	for i := 0; i < 150; i++ {
		s.Update(frame, press(core.ActionInteract))
	}

	if s.nodes.At(0).Taken {
		t.Error("water node marked taken")
	}
	if s.player.Water != 151 {
		t.Errorf("Water = %d, expected 151 (uncapped)", s.player.Water)
	}
}

func TestGatherOneNodePerPress(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.nodes.Add(world.Node{Pos: s.player.Pos, Type: world.NodeFood})
	s.nodes.Add(world.Node{Pos: s.player.Pos, Type: world.NodeMaterial})

	s.Update(frame, press(core.ActionInteract))
	if !s.nodes.At(0).Taken || s.nodes.At(1).Taken {
		t.Errorf("taken = %v/%v, expected only the first node", s.nodes.At(0).Taken, s.nodes.At(1).Taken)
	}

	s.Update(frame, press(core.ActionInteract))
	if !s.nodes.At(1).Taken {
		t.Error("second press did not reach the next node")
	}
}

func TestGatherOutOfRange(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	// Food reach is 24 * 1.8 = 43.2.
	s.nodes.Add(world.Node{Pos: s.player.Pos.Add(core.V(50, 0)), Type: world.NodeFood})

	s.Update(frame, press(core.ActionInteract))
	if s.nodes.At(0).Taken || s.player.Food != 1 {
		t.Error("gathered a node out of reach")
	}
}

func TestPromptForNodeInReach(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)

	if p := s.Snapshot().Prompt; p != "" {
		t.Errorf("Prompt = %q with nothing in reach", p)
	}
	s.nodes.Add(world.Node{Pos: s.player.Pos, Type: world.NodeWater})
	if p := s.Snapshot().Prompt; p != "E: Drink water" {
		t.Errorf("Prompt = %q, expected water hint", p)
	}
}

func TestEatDrinkThroughSession(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.player.Hunger, s.player.Thirst = 50, 50

	s.Update(frame, press(core.ActionEat, core.ActionDrink))

	p := s.player
	if p.Food != 0 || p.Water != 0 {
		t.Errorf("inventory = %d/%d, expected 0/0", p.Food, p.Water)
	}
	if p.Hunger < 84 || p.Thirst < 94 {
		t.Errorf("needs = %v/%v, expected restored", p.Hunger, p.Thirst)
	}
}

func TestRivalKillScenario(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.player.HasSpear = true
	s.player.AttackCooldown = 0
	// Outside contact (32.4) and inside melee (75.6).
	s.rival.Pos = s.player.Pos.Add(core.V(50, 0))

	s.Update(frame, press(core.ActionAttack))

	if s.rival.Alive {
		t.Error("rival survived a spear hit in range")
	}
	if s.player.AttackCooldown != 0.5 {
		t.Errorf("AttackCooldown = %v, expected 0.5", s.player.AttackCooldown)
	}
	if s.player.Health != 3 {
		t.Errorf("Health = %d, expected no contact damage", s.player.Health)
	}
	if !s.Snapshot().RivalSlain {
		t.Error("RivalSlain not reported")
	}
}

func TestAttackOutOfRangeOnlyStartsCooldown(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.player.HasSpear = true

	s.Update(frame, press(core.ActionAttack))
	if !s.rival.Alive {
		t.Error("rival died out of range")
	}
	if s.player.AttackCooldown != 0.5 {
		t.Errorf("AttackCooldown = %v, expected 0.5", s.player.AttackCooldown)
	}

	// Within cooldown the attack is ignored even in range.
	s.rival.Pos = s.player.Pos.Add(core.V(50, 0))
	s.Update(frame, press(core.ActionAttack))
	if !s.rival.Alive {
		t.Error("attack landed during cooldown")
	}
}

func TestAttackWithoutSpear(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.rival.Pos = s.player.Pos.Add(core.V(50, 0))

	s.Update(frame, press(core.ActionAttack))
	if !s.rival.Alive || s.player.AttackCooldown != 0 {
		t.Error("attack without a spear had an effect")
	}
}

func TestDeadRivalIsInert(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.rival.Alive = false
	s.rival.Pos = s.player.Pos

	for i := 0; i < 120; i++ {
		s.Update(frame, idle())
	}

	if s.rival.Pos != s.player.Pos && s.rival.Pos != core.V(2000, 1500) {
		t.Errorf("dead rival moved to %v", s.rival.Pos)
	}
	if s.rival.Age != 0 {
		t.Errorf("dead rival aged to %v", s.rival.Age)
	}
	if s.player.Health != 3 {
		t.Errorf("Health = %d, dead rival dealt damage", s.player.Health)
	}
}

func TestRivalContactCooldown(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.rival.Pos = s.player.Pos

	s.Update(0.01, idle())
	if s.player.Health != 2 {
		t.Fatalf("Health = %d after first contact, expected 2", s.player.Health)
	}
	snap := s.Snapshot()
	if snap.HitFlash != 0.6 {
		t.Errorf("HitFlash = %v, expected 0.6", snap.HitFlash)
	}
	if snap.Camera.Shake <= 0 {
		t.Error("camera shake not armed")
	}

	for i := 0; i < 3; i++ {
		s.Update(0.25, idle())
		if s.player.Health != 2 {
			t.Fatalf("hit again %v s after contact", 0.25*float64(i+1))
		}
	}

	s.Update(0.25, idle())
	if s.player.Health != 1 {
		t.Errorf("Health = %d after 1s of contact, expected 1", s.player.Health)
	}
}

func TestRivalSeeksFasterAtNight(t *testing.T) {
	day := newTestSession()
	startPlaying(t, day)
	isolate(day)

	night := newTestSession()
	startPlaying(t, night)
	isolate(night)
	night.cycle.Phase = 0.70

	day.Update(0.1, idle())
	night.Update(0.1, idle())

	dayStep := day.rival.Pos.Dist(core.V(100, 100))
	nightStep := night.rival.Pos.Dist(core.V(100, 100))
	if math.Abs(dayStep-12) > 1e-9 || math.Abs(nightStep-20) > 1e-9 {
		t.Errorf("steps = %v/%v, expected 12/20", dayStep, nightStep)
	}
}

func TestWinOnLastClue(t *testing.T) {
	var got []Outcome
	s := newTestSession(WithOutcome(func(o Outcome) { got = append(got, o) }))
	startPlaying(t, s)
	isolate(s)
	s.clues = 3
	s.nodes.Add(world.Node{Pos: s.player.Pos, Type: world.NodeClue})

	s.Update(frame, press(core.ActionInteract))

	if s.State() != StateWin {
		t.Fatalf("State() = %v, expected win", s.State())
	}
	if len(got) != 1 || !got[0].Won || got[0].Clues != 4 || got[0].RunID != s.RunID() {
		t.Errorf("outcomes = %+v", got)
	}
}

func TestWinCheckedBeforeGameOver(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.clues = 4
	s.player.Health = 0

	s.Update(frame, idle())
	if s.State() != StateWin {
		t.Errorf("State() = %v, expected win to take priority", s.State())
	}
}

func TestGameOverAndReset(t *testing.T) {
	var got []Outcome
	s := newTestSession(WithOutcome(func(o Outcome) { got = append(got, o) }))
	startPlaying(t, s)
	isolate(s)
	oldRun := s.RunID()
	s.clues = 2
	s.player.Health = 1
	s.player.HasSpear = true
	s.rival.Pos = s.player.Pos

	s.Update(frame, idle())
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected gameover", s.State())
	}
	if len(got) != 1 || got[0].Won || got[0].Clues != 2 {
		t.Errorf("outcomes = %+v", got)
	}

	// Terminal states ignore everything but confirm.
	s.Update(frame, press(core.ActionInteract))
	if s.State() != StateGameOver {
		t.Fatal("left gameover without confirm")
	}

	s.Update(frame, press(core.ActionConfirm))
	snap := s.Snapshot()
	if snap.State != StateIntro {
		t.Errorf("State = %v, expected intro", snap.State)
	}
	if snap.Clues != 0 || snap.Phase != 0.20 || snap.ForcedNight {
		t.Errorf("clues=%d phase=%v forced=%v, expected a clean run", snap.Clues, snap.Phase, snap.ForcedNight)
	}
	if snap.Player.Health != 3 || snap.Player.HasSpear || snap.Player.Food != 1 {
		t.Errorf("Player = %+v, expected defaults", snap.Player)
	}
	if !snap.Rival.Alive || snap.Rival.Pos != core.V(300, 300) {
		t.Errorf("Rival = %+v, expected fresh rival", snap.Rival)
	}
	if len(snap.Nodes) != 50 {
		t.Errorf("len(Nodes) = %d, expected re-scattered 50", len(snap.Nodes))
	}
	for _, n := range snap.Nodes {
		if n.Taken {
			t.Fatal("node still taken after reset")
		}
	}
	if snap.RunID == oldRun {
		t.Error("RunID not renewed on reset")
	}
}

func TestForcedNightDuringPlay(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.clues = 3

	s.Update(frame, idle())
	if !s.Snapshot().ForcedNight {
		t.Fatal("forced night did not start at 3 clues")
	}

	for i := 0; i < 600 && s.cycle.Forced; i++ {
		s.Update(frame, idle())
	}
	snap := s.Snapshot()
	if snap.ForcedNight || snap.Phase != 0.70 || !snap.Night {
		t.Errorf("forced=%v phase=%v night=%v, expected settled night at 0.70", snap.ForcedNight, snap.Phase, snap.Night)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession()
	snap := s.Snapshot()
	snap.Player.Health = 0
	snap.Nodes[0].Taken = true

	if s.player.Health != 3 || s.nodes.At(0).Taken {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestPopupsExpireDuringPlay(t *testing.T) {
	s := newTestSession()
	startPlaying(t, s)
	isolate(s)
	s.nodes.Add(world.Node{Pos: s.player.Pos, Type: world.NodeWater})

	s.Update(frame, press(core.ActionInteract))
	pops := s.Popups()
	if len(pops) != 1 || pops[0].Label != "+Water" {
		t.Fatalf("Popups() = %+v, expected one +Water", pops)
	}

	for i := 0; i < 60; i++ {
		s.Update(frame, idle())
	}
	if len(s.Popups()) != 0 {
		t.Errorf("Popups() = %d after 1s, expected expired", len(s.Popups()))
	}
}

// TestInvariantsUnderRandomInput drives the whole state machine with random
// input and frame times and checks the entity bounds every frame.
func TestInvariantsUnderRandomInput(t *testing.T) {
	s := newTestSession()
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionConfirm, core.ActionCancel, core.ActionInteract, core.ActionEat,
		core.ActionDrink, core.ActionCraft, core.ActionAttack, core.ActionSprint,
		core.ActionMenuUp, core.ActionMenuDown, core.ActionHelp,
	}
	dts := []float64{0, frame, 0.05, 0.25, 1, 3}

	for i := 0; i < 20000; i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			switch rng.Intn(8) {
			case 0:
				in.Press(a)
			case 1, 2:
				in.Hold(a)
			}
		}
		if rng.Intn(4) == 0 {
			in.SetAim(core.V(rng.Float64()*4000, rng.Float64()*3000))
		}
		s.Update(dts[rng.Intn(len(dts))], in)

		p := s.player
		if p.Health < 0 || p.Health > 3 {
			t.Fatalf("frame %d: Health = %d", i, p.Health)
		}
		if p.Hunger < 0 || p.Hunger > 100 || p.Thirst < 0 || p.Thirst > 100 {
			t.Fatalf("frame %d: needs = %v/%v", i, p.Hunger, p.Thirst)
		}
		if p.Food < 0 || p.Water < 0 || p.Sticks < 0 {
			t.Fatalf("frame %d: inventory = %d/%d/%d", i, p.Food, p.Water, p.Sticks)
		}
		if !s.bounds.Contains(p.Pos) {
			t.Fatalf("frame %d: player at %v outside world", i, p.Pos)
		}
		if s.cycle.Phase < 0 || s.cycle.Phase >= 1 {
			t.Fatalf("frame %d: phase = %v", i, s.cycle.Phase)
		}
		if s.pops.Len() > s.pops.Cap() {
			t.Fatalf("frame %d: %d popups over capacity", i, s.pops.Len())
		}
	}
}
