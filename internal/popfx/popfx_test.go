package popfx

import (
	"testing"

	"github.com/vovakirdan/survivors-oath/internal/core"
)

func TestPushAndExpire(t *testing.T) {
	q := New(8, 0.9, 15)
	q.Push(core.V(1, 2), core.ColorGold, "Clue!")

	if q.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", q.Len())
	}

	q.Update(0.5)
	if q.Len() != 1 {
		t.Errorf("event expired early at age 0.5")
	}
	q.Update(0.3)
	if q.Len() != 1 {
		t.Errorf("event expired at age 0.8, lifetime is 0.9")
	}
	q.Update(0.2)
	if q.Len() != 0 {
		t.Errorf("Len() = %d after lifetime, expected 0", q.Len())
	}
}

func TestPushWhenFullEvictsSlotZero(t *testing.T) {
	q := New(3, 0.9, 15)
	q.Push(core.V(0, 0), core.ColorWhite, "a")
	q.Push(core.V(1, 0), core.ColorWhite, "b")
	q.Push(core.V(2, 0), core.ColorWhite, "c")

	q.Push(core.V(3, 0), core.ColorWhite, "d")

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}
	// "a" is evicted by moving "c" into slot 0, then "d" is appended.
	got := []string{}
	for _, e := range q.Events() {
		got = append(got, e.Label)
	}
	want := []string{"c", "b", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, expected %v", got, want)
		}
	}
}

func TestUpdateAgesSwappedEventOnce(t *testing.T) {
	q := New(4, 0.9, 15)
	q.Push(core.V(0, 0), core.ColorWhite, "old")
	q.Update(0.8)
	q.Push(core.V(0, 0), core.ColorWhite, "new")

	// "old" expires and "new" is swapped into slot 0; it must age exactly once.
	q.Update(0.2)

	events := q.Events()
	if len(events) != 1 {
		t.Fatalf("Len() = %d, expected 1", len(events))
	}
	if events[0].Label != "new" || events[0].Age != 0.2 {
		t.Errorf("remaining event = %+v, expected new at age 0.2", events[0])
	}
}

func TestLabelTruncation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+Food", "+Food"},
		{"exactly15chars!", "exactly15chars!"},
		{"this label is far too long", "this label is f"},
		{"ééééééééé", "ééééééé"}, // 2-byte runes, cut before the split one
	}

	for _, tt := range tests {
		q := New(1, 1, 15)
		q.Push(core.Vec2{}, core.ColorWhite, tt.in)
		got := q.Events()[0].Label
		if got != tt.want {
			t.Errorf("Push(%q) label = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestAlphaAndRise(t *testing.T) {
	q := New(1, 1.0, 15)
	e := Event{Age: 0.25}

	if a := q.Alpha(e); a != 0.75 {
		t.Errorf("Alpha() = %v, expected 0.75", a)
	}
	if r := e.Rise(); r != 10 {
		t.Errorf("Rise() = %v, expected 10", r)
	}
	if a := q.Alpha(Event{Age: 5}); a != 0 {
		t.Errorf("Alpha() past lifetime = %v, expected 0", a)
	}
}

func TestManyPushesNeverExceedCapacity(t *testing.T) {
	q := New(64, 0.9, 15)
	for i := 0; i < 500; i++ {
		q.Push(core.V(float64(i), 0), core.ColorWhite, "+Stick")
		if q.Len() > q.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", q.Len(), q.Cap())
		}
	}
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Len() after Reset = %d", q.Len())
	}
}
