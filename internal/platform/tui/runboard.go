package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/survivors-oath/internal/storage"
)

// DefaultRunLimit is how many runs the board loads.
const DefaultRunLimit = 50

// RunBoardKeyMap defines the key bindings for the run board.
type RunBoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Quit},
	}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "newest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "oldest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// RunBoardModel is the Bubble Tea model for the run history screen.
type RunBoardModel struct {
	runs     []storage.Run
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     RunBoardKeyMap
	width    int
	height   int
	now      func() time.Time
	quitting bool
}

// NewRunBoardModel creates a run board over the given runs and totals.
func NewRunBoardModel(runs []storage.Run, stats storage.Stats, width, height int) RunBoardModel {
	h := help.New()
	h.ShowAll = false

	m := RunBoardModel{
		runs:   runs,
		stats:  stats,
		help:   h,
		keys:   DefaultRunBoardKeyMap(),
		width:  width,
		height: height,
		now:    time.Now,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// LoadRunBoard reads the most recent runs and totals from store.
func LoadRunBoard(store *storage.Store, limit, width, height int) (RunBoardModel, error) {
	if limit <= 0 {
		limit = DefaultRunLimit
	}
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return RunBoardModel{}, err
	}
	stats, err := store.Stats()
	if err != nil {
		return RunBoardModel{}, err
	}
	return NewRunBoardModel(runs, stats, width, height), nil
}

// createTable creates a new table sized to the window.
func (m *RunBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 8},
		{Title: "Clues", Width: 6},
		{Title: "Survived", Width: 10},
		{Title: "Rival", Width: 6},
		{Title: "When", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, totals and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded runs.
func (m *RunBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(r, m.now())
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// runRow formats one run for display.
func runRow(r storage.Run, now time.Time) table.Row {
	rival := "-"
	if r.RivalSlain {
		rival = "slain"
	}
	return table.Row{
		fmt.Sprintf("%d", r.ID),
		r.Outcome(),
		fmt.Sprintf("%d", r.Clues),
		r.Survived.Round(time.Second).String(),
		rival,
		humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
	}
}

// SummaryLine describes the totals in one line.
func SummaryLine(st storage.Stats, now time.Time) string {
	if st.Runs == 0 {
		return "No runs recorded yet."
	}
	parts := []string{
		fmt.Sprintf("%s %s", humanize.Comma(int64(st.Runs)), plural(st.Runs, "run", "runs")),
		fmt.Sprintf("%d %s", st.Wins, plural(st.Wins, "win", "wins")),
		fmt.Sprintf("%d rival %s", st.Kills, plural(st.Kills, "kill", "kills")),
		fmt.Sprintf("best %d clues", st.BestClues),
		fmt.Sprintf("longest %s", st.LongestRun.Round(time.Second)),
	}
	if !st.LastPlayedAt.IsZero() {
		parts = append(parts, "last played "+humanize.RelTime(st.LastPlayedAt, now, "ago", "from now"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Init initializes the run board model.
func (m RunBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunBoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(centerText(SummaryLine(m.stats, m.now()), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunBoardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nSurvive a night to make history!")
	}

	return m.table.View()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunRunBoard shows the run board until the user quits.
func RunRunBoard(store *storage.Store, limit, width, height int) error {
	model, err := LoadRunBoard(store, limit, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
