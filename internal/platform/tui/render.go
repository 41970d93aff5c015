package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/game"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

// Default cell size in viewport units. A terminal cell is about twice as
// tall as it is wide.
const (
	DefaultCellW = 8.0
	DefaultCellH = 16.0
)

const (
	groundGrid = 60.0 // World spacing of ground speckles
	nightShade = 0.65 // Darkening outside the light radius at full night
)

var (
	colorHealth = core.RGB(230, 41, 55)
	colorHunger = core.RGB(255, 161, 0)
	colorThirst = core.RGB(0, 121, 241)
	colorPrompt = core.RGB(250, 240, 190)
	colorRival  = core.RGB(190, 33, 55)
	colorEdge   = core.RGB(90, 80, 60)
)

type glyph struct {
	r rune
	c core.Color
}

var nodeGlyphs = map[world.NodeType]glyph{
	world.NodeFood:     {'♣', core.RGB(230, 80, 90)},
	world.NodeMaterial: {'/', core.RGB(160, 120, 80)},
	world.NodeWater:    {'≈', core.RGB(60, 150, 230)},
	world.NodeClue:     {'?', core.ColorGold},
}

// Renderer draws a session snapshot into a screen buffer.
type Renderer struct {
	CellW float64
	CellH float64

	keys KeyMap
	help help.Model
}

// NewRenderer creates a renderer with the default cell size. keys feeds the
// help line on the pause screen.
func NewRenderer(keys KeyMap) *Renderer {
	h := help.New()
	h.Styles = help.Styles{} // Plain text; the screen carries the color
	return &Renderer{
		CellW: DefaultCellW,
		CellH: DefaultCellH,
		keys:  keys,
		help:  h,
	}
}

// Viewport returns the camera viewport for a screen of cols x rows cells.
func (r *Renderer) Viewport(cols, rows int) (w, h float64) {
	return float64(cols) * r.CellW, float64(rows) * r.CellH
}

// CellCenter returns the viewport position of the center of cell (x, y).
func (r *Renderer) CellCenter(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)*r.CellW, (float64(y)+0.5)*r.CellH)
}

// toCell projects a world point through the snapshot's camera.
func (r *Renderer) toCell(cam game.CameraView, p core.Vec2) (int, int) {
	v := p.Sub(cam.Target).Scale(cam.Zoom).Add(cam.Offset)
	return int(math.Floor(v.X / r.CellW)), int(math.Floor(v.Y / r.CellH))
}

// toWorld is the inverse of toCell for a cell center.
func (r *Renderer) toWorld(cam game.CameraView, x, y int) core.Vec2 {
	if cam.Zoom == 0 {
		return cam.Target
	}
	return r.CellCenter(x, y).Sub(cam.Offset).Scale(1 / cam.Zoom).Add(cam.Target)
}

// Draw renders snap into s.
func (r *Renderer) Draw(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	switch snap.State {
	case game.StateIntro:
		r.drawIntro(s, snap)
	case game.StateStory:
		r.drawStory(s, snap)
	case game.StatePlaying:
		r.drawWorld(s, snap)
		r.drawHUD(s, snap)
	case game.StatePaused:
		r.drawWorld(s, snap)
		r.drawHUD(s, snap)
		r.drawPause(s)
	case game.StateGameOver, game.StateWin:
		r.drawWorld(s, snap)
		r.drawEnd(s, snap)
	}
}

func (r *Renderer) drawIntro(s *core.Screen, snap game.Snapshot) {
	h := s.Height()
	top := h / 3

	s.DrawTextCentered(top, game.Title, core.ColorGold.Fade(snap.IntroAlpha))
	s.DrawTextCentered(top+1, strings.Repeat("─", utf8.RuneCountInString(game.Title)), core.ColorGray.Fade(snap.IntroAlpha))

	for i, item := range game.MenuItems {
		label := "  " + item + "  "
		c := core.ColorGray
		if i == snap.MenuIndex {
			label = "> " + item + " <"
			c = core.ColorWhite
		}
		s.DrawTextCentered(top+3+i*2, label, c.Fade(snap.IntroAlpha))
	}

	s.DrawTextCentered(h-2, "w/s: choose   enter: select   esc: quit", core.ColorGray)

	if snap.ShowHelp {
		lines := append([]string{"How To Play", ""}, game.HelpLines...)
		lines = append(lines, "", "enter/esc: close")
		r.drawPanel(s, lines, core.ColorWhite, core.ColorGray)
	}
}

func (r *Renderer) drawStory(s *core.Screen, snap game.Snapshot) {
	h := s.Height()
	s.DrawTextCentered(h/4, game.Title, core.ColorGray)

	lines := wrap(snap.StoryLine, s.Width()-8)
	y := h/2 - len(lines)/2
	for i, line := range lines {
		s.DrawTextCentered(y+i, line, core.ColorWhite)
	}

	hint := "enter: continue"
	if snap.StoryLast {
		hint = "enter: begin"
	}
	s.DrawTextCentered(h-3, hint, core.ColorGray)
	s.DrawTextCentered(h-2, fmt.Sprintf("%d / %d", snap.StoryIndex+1, len(game.StoryLines)), core.ColorGray)
}

// darkness is how much the world outside the light radius is dimmed.
func darkness(snap game.Snapshot) float64 {
	d := nightShade * snap.NightBlend
	if snap.Night {
		d = nightShade
	}
	return d
}

// shade dims c for world points outside the player's light at night.
func shade(snap game.Snapshot, p core.Vec2, c core.Color) core.Color {
	d := darkness(snap)
	if d <= 0 || p.Dist(snap.Player.Pos) <= snap.LightRadius {
		return c
	}
	return c.Fade(1 - d)
}

func (r *Renderer) drawWorld(s *core.Screen, snap game.Snapshot) {
	cam := snap.Camera
	w, h := s.Width(), s.Height()

	// Ground speckles on a fixed world grid, so motion reads on screen.
	lo := r.toWorld(cam, 0, 0)
	hi := r.toWorld(cam, w-1, h-1)
	x0 := math.Max(0, math.Floor(lo.X/groundGrid)*groundGrid)
	y0 := math.Max(0, math.Floor(lo.Y/groundGrid)*groundGrid)
	x1 := math.Min(snap.Bounds.W, hi.X)
	y1 := math.Min(snap.Bounds.H, hi.Y)
	for wy := y0; wy <= y1; wy += groundGrid {
		for wx := x0; wx <= x1; wx += groundGrid {
			p := core.V(wx, wy)
			cx, cy := r.toCell(cam, p)
			s.SetColor(cx, cy, speckle(wx, wy), shade(snap, p, snap.Sky))
		}
	}

	r.drawEdges(s, snap)

	for _, n := range snap.Nodes {
		if !n.Available() {
			continue
		}
		g, ok := nodeGlyphs[n.Type]
		if !ok {
			continue
		}
		cx, cy := r.toCell(cam, n.Pos)
		c := shade(snap, n.Pos, g.c)
		if n.Type == world.NodeWater {
			s.DrawTextColor(cx-1, cy, "≈≈≈", c)
			continue
		}
		s.SetColor(cx, cy, g.r, c)
	}

	rv := snap.Rival
	rx, ry := r.toCell(cam, rv.Pos)
	if rv.Alive {
		s.SetColor(rx, ry, 'R', shade(snap, rv.Pos, colorRival))
	} else {
		s.SetColor(rx, ry, '%', shade(snap, rv.Pos, core.ColorGray))
	}

	p := snap.Player
	px, py := r.toCell(cam, p.Pos)
	pc := core.ColorWhite
	if snap.HitFlash > 0 {
		pc = colorHealth
	}
	s.SetColor(px, py, '@', pc)
	if p.HasSpear {
		dx, dy, sr := spearGlyph(p.Aim)
		s.SetColor(px+dx, py+dy, sr, core.RGB(220, 220, 150))
	}

	for _, pop := range snap.Popups {
		origin := pop.Pos.Sub(core.V(0, pop.Rise()))
		cx, cy := r.toCell(cam, origin)
		n := utf8.RuneCountInString(pop.Label)
		s.DrawTextColor(cx-n/2, cy-1, pop.Label, pop.Color.Fade(pop.Alpha))
	}

	if snap.HitFlash > 0 {
		s.DrawBox(core.NewRect(0, 0, w, h), colorHealth.Fade(0.4+0.6*core.ClampF(snap.HitFlash, 0, 1)))
	}
}

// drawEdges marks the island boundary where it is on screen.
func (r *Renderer) drawEdges(s *core.Screen, snap game.Snapshot) {
	cam := snap.Camera
	left, top := r.toCell(cam, core.V(0, 0))
	right, bottom := r.toCell(cam, core.V(snap.Bounds.W, snap.Bounds.H))
	c := shade(snap, snap.Player.Pos, colorEdge)

	for y := top; y <= bottom; y++ {
		if y < 0 || y >= s.Height() {
			continue
		}
		s.SetColor(left-1, y, '▒', c)
		s.SetColor(right+1, y, '▒', c)
	}
	for x := left - 1; x <= right+1; x++ {
		if x < 0 || x >= s.Width() {
			continue
		}
		s.SetColor(x, top-1, '▒', c)
		s.SetColor(x, bottom+1, '▒', c)
	}
}

// speckle picks a stable ground rune for a grid point.
func speckle(wx, wy float64) rune {
	h := (int64(wx)*73856093 ^ int64(wy)*19349663) & 7
	switch h {
	case 0:
		return ','
	case 1:
		return '\''
	case 2, 3:
		return '.'
	}
	return ' '
}

// spearGlyph places the spear one cell from the player along angle a.
func spearGlyph(a float64) (dx, dy int, r rune) {
	// Octant, 0 is +X, counting toward +Y (screen down).
	o := int(math.Round(a/(math.Pi/4))) & 7
	switch o {
	case 0:
		return 1, 0, '─'
	case 1:
		return 1, 1, '\\'
	case 2:
		return 0, 1, '│'
	case 3:
		return -1, 1, '/'
	case 4:
		return -1, 0, '─'
	case 5:
		return -1, -1, '\\'
	case 6:
		return 0, -1, '│'
	default:
		return 1, -1, '/'
	}
}

func (r *Renderer) drawHUD(s *core.Screen, snap game.Snapshot) {
	w, h := s.Width(), s.Height()
	p := snap.Player

	s.DrawRect(core.NewRect(0, 0, w, 2), ' ', core.ColorDefault)

	x := 1
	for i := 0; i < p.MaxHealth; i++ {
		r := '♡'
		if i < p.Health {
			r = '♥'
		}
		s.SetColor(x, 0, r, colorHealth)
		x += 2
	}
	x++

	bar := 10
	s.DrawTextColor(x, 0, "Food", colorHunger)
	s.DrawBar(x+5, 0, bar, p.Hunger/100, colorHunger)
	x += 5 + bar + 2
	s.DrawTextColor(x, 0, "Water", colorThirst)
	s.DrawBar(x+6, 0, bar, p.Thirst/100, colorThirst)

	clues := fmt.Sprintf("Clues %d/%d", snap.Clues, snap.CluesRequired)
	clock := "Day"
	if snap.Night {
		clock = "Night"
	}
	right := fmt.Sprintf("%s   %s", clues, clock)
	s.DrawTextColor(w-utf8.RuneCountInString(right)-1, 0, right, core.ColorGold)

	inv := fmt.Sprintf("Berries %d  Water %d  Sticks %d", p.Food, p.Water, p.Sticks)
	if p.HasSpear {
		inv += "  Spear"
		if p.AttackCooldown > 0 {
			inv += " (ready soon)"
		}
	}
	s.DrawTextColor(1, 1, inv, core.ColorGray)

	if snap.Prompt != "" {
		s.DrawTextCentered(h-1, snap.Prompt, colorPrompt)
	} else if snap.ForcedNight && !snap.Night {
		s.DrawTextCentered(h-1, "Night is falling…", colorPrompt)
	}
}

func (r *Renderer) drawPause(s *core.Screen) {
	r.drawPanel(s, []string{
		"PAUSED",
		"",
		r.help.ShortHelpView(r.keys.ShortHelp()),
		"",
		"esc: resume   `: quit",
	}, core.ColorWhite, core.ColorGray)
}

func (r *Renderer) drawEnd(s *core.Screen, snap game.Snapshot) {
	title, titleColor := "YOU DIED", colorHealth
	verdict := "The island keeps its secrets."
	if snap.State == game.StateWin {
		title, titleColor = "YOU FOUND HIM", core.ColorGold
		verdict = "The oath is kept."
	}

	survived := time.Duration(snap.Survived * float64(time.Second)).Round(time.Second)
	lines := []string{
		title,
		"",
		verdict,
		fmt.Sprintf("Survived %s   Clues %d/%d", survived, snap.Clues, snap.CluesRequired),
	}
	if snap.RivalSlain {
		lines = append(lines, "The rival is dead.")
	}
	lines = append(lines, "", "enter: back to title   `: quit")

	r.drawPanel(s, lines, titleColor, core.ColorGray)
}

// drawPanel draws a centered framed box. The first line uses head, the rest body.
func (r *Renderer) drawPanel(s *core.Screen, lines []string, head, body core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	bw := min(inner+6, s.Width())
	bh := min(len(lines)+4, s.Height())
	box := core.NewRect((s.Width()-bw)/2, (s.Height()-bh)/2, bw, bh)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		c := body
		if i == 0 {
			c = head
		}
		s.DrawTextCentered(box.Y+2+i, l, c)
	}
}

// wrap breaks text into lines of at most width cells.
func wrap(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}
	out := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
