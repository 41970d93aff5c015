package world

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/survivors-oath/internal/core"
)

func TestScatterStaysInsideInset(t *testing.T) {
	b := Bounds{W: 4000, H: 3000}
	tbl := NewTable(256)
	rng := rand.New(rand.NewSource(42))

	tbl.Scatter(rng, b, 100, NodeFood, 22)
	tbl.Scatter(rng, b, 100, NodeWater, 6)
	tbl.Scatter(rng, b, 100, NodeMaterial, 18)
	tbl.Scatter(rng, b, 100, NodeClue, 4)

	if tbl.Len() != 50 {
		t.Fatalf("Len() = %d, expected 50", tbl.Len())
	}
	for i, n := range tbl.Nodes() {
		if n.Pos.X < 100 || n.Pos.X > 3900 || n.Pos.Y < 100 || n.Pos.Y > 2900 {
			t.Errorf("node %d at %v outside inset bounds", i, n.Pos)
		}
		if n.Taken {
			t.Errorf("node %d starts taken", i)
		}
	}
}

func TestScatterKeepsTypeOrder(t *testing.T) {
	tbl := NewTable(16)
	rng := rand.New(rand.NewSource(1))
	tbl.Scatter(rng, Bounds{W: 500, H: 500}, 10, NodeFood, 2)
	tbl.Scatter(rng, Bounds{W: 500, H: 500}, 10, NodeClue, 1)

	want := []NodeType{NodeFood, NodeFood, NodeClue}
	for i, typ := range want {
		if tbl.At(i).Type != typ {
			t.Errorf("At(%d).Type = %v, expected %v", i, tbl.At(i).Type, typ)
		}
	}
}

func TestScatterStopsAtCapacity(t *testing.T) {
	tbl := NewTable(5)
	rng := rand.New(rand.NewSource(7))

	placed := tbl.Scatter(rng, Bounds{W: 1000, H: 1000}, 100, NodeMaterial, 8)
	if placed != 5 {
		t.Errorf("Scatter() placed %d, expected 5", placed)
	}
	if tbl.Len() != tbl.Cap() {
		t.Errorf("Len() = %d, expected full table of %d", tbl.Len(), tbl.Cap())
	}
	if tbl.Add(Node{Type: NodeFood}) {
		t.Error("Add() on a full table reported success")
	}
}

func TestScatterDeterministic(t *testing.T) {
	a, b := NewTable(10), NewTable(10)
	a.Scatter(rand.New(rand.NewSource(99)), Bounds{W: 800, H: 600}, 50, NodeFood, 10)
	b.Scatter(rand.New(rand.NewSource(99)), Bounds{W: 800, H: 600}, 50, NodeFood, 10)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("node %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestTakeIgnoresWater(t *testing.T) {
	tbl := NewTable(4)
	tbl.Add(Node{Type: NodeWater})
	tbl.Add(Node{Type: NodeClue})

	tbl.Take(0)
	tbl.Take(1)

	if tbl.At(0).Taken {
		t.Error("water node was marked taken")
	}
	if !tbl.At(0).Available() {
		t.Error("water node should stay available")
	}
	if !tbl.At(1).Taken || tbl.At(1).Available() {
		t.Error("clue node should be taken and unavailable")
	}
	if tbl.Remaining(NodeClue) != 0 || tbl.Remaining(NodeWater) != 1 {
		t.Errorf("Remaining() = clue %d water %d, expected 0 and 1",
			tbl.Remaining(NodeClue), tbl.Remaining(NodeWater))
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	tbl := NewTable(2)
	tbl.Add(Node{Type: NodeFood})

	nodes := tbl.Nodes()
	nodes[0].Taken = true
	if tbl.At(0).Taken {
		t.Error("mutating Nodes() result changed the table")
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{W: 100, H: 50}
	tests := []struct {
		in, want core.Vec2
	}{
		{core.V(-5, 10), core.V(0, 10)},
		{core.V(150, 60), core.V(100, 50)},
		{core.V(40, -1), core.V(40, 0)},
		{core.V(40, 20), core.V(40, 20)},
	}
	for _, tt := range tests {
		got := b.Clamp(tt.in)
		if got != tt.want {
			t.Errorf("Clamp(%v) = %v, expected %v", tt.in, got, tt.want)
		}
		if !b.Contains(got) {
			t.Errorf("Contains(Clamp(%v)) = false", tt.in)
		}
	}
}
