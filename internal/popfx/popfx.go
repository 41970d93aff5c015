// Package popfx implements the floating feedback labels shown when the
// player gathers, crafts or fights.
//
// Events live in a fixed-capacity slice with swap-remove semantics: removing
// index i moves the last event into i. Order is never meaningful.
package popfx

import (
	"unicode/utf8"

	"github.com/vovakirdan/survivors-oath/internal/core"
)

// RiseSpeed is how fast a label floats upward, in world units per second.
const RiseSpeed = 40.0

// Event is a single floating label.
type Event struct {
	Pos   core.Vec2
	Age   float64
	Label string
	Color core.Color
}

// Queue holds active events.
type Queue struct {
	events   []Event
	lifetime float64
	labelMax int
}

// New creates a queue with room for capacity events, each living lifetime
// seconds, with labels cut to labelMax bytes.
func New(capacity int, lifetime float64, labelMax int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		events:   make([]Event, 0, capacity),
		lifetime: lifetime,
		labelMax: labelMax,
	}
}

// Push adds an event at pos. When the queue is full, slot 0 is evicted by
// moving the last event into it before appending. Push never fails.
func (q *Queue) Push(pos core.Vec2, c core.Color, label string) {
	if len(q.events) == cap(q.events) {
		q.removeAt(0)
	}
	q.events = append(q.events, Event{
		Pos:   pos,
		Color: c,
		Label: truncate(label, q.labelMax),
	})
}

// Update ages every event by dt and drops the ones past their lifetime.
func (q *Queue) Update(dt float64) {
	for i := 0; i < len(q.events); {
		q.events[i].Age += dt
		if q.events[i].Age > q.lifetime {
			// The moved-in event has not been aged yet; revisit i.
			q.removeAt(i)
			continue
		}
		i++
	}
}

func (q *Queue) removeAt(i int) {
	last := len(q.events) - 1
	q.events[i] = q.events[last]
	q.events = q.events[:last]
}

// Len returns the number of active events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.events)
}

// Reset drops all events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}

// Events returns a copy of the active events for rendering.
func (q *Queue) Events() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Alpha is the label opacity for an event: 1 when fresh, 0 at expiry.
func (q *Queue) Alpha(e Event) float64 {
	if q.lifetime <= 0 {
		return 0
	}
	return core.ClampF(1-e.Age/q.lifetime, 0, 1)
}

// Rise is how far the label has floated above its origin.
func (e Event) Rise() float64 {
	return e.Age * RiseSpeed
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
