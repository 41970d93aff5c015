// Package tui hosts a game session in the terminal with Bubble Tea.
// It turns key and mouse messages into input frames, drives the session
// from a tick loop and paints its snapshot as colored cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// maxFrameDT caps the step taken after a stalled tick.
const maxFrameDT = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds between two ticks, clamped to [0, maxFrameDT].
// The first tick, with no previous time, advances one nominal frame.
func frameDT(last, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if last.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return 0
	}
	if dt > maxFrameDT {
		return maxFrameDT
	}
	return dt
}
