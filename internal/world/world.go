// Package world holds the static island: its bounds and the table of
// interactable resource nodes scattered across it.
package world

import (
	"math/rand"

	"github.com/vovakirdan/survivors-oath/internal/core"
)

// NodeType identifies what a node yields when gathered.
type NodeType int

const (
	NodeFood NodeType = iota // Berry bush
	NodeMaterial             // Stick
	NodeWater                // Pond, never depleted
	NodeClue                 // Story clue
)

var nodeTypeNames = map[NodeType]string{
	NodeFood:     "food",
	NodeMaterial: "material",
	NodeWater:    "water",
	NodeClue:     "clue",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Consumable reports whether gathering the node marks it taken.
func (t NodeType) Consumable() bool {
	return t != NodeWater
}

// Node is a placed resource.
type Node struct {
	Pos   core.Vec2
	Type  NodeType
	Taken bool // Always false for water
}

// Available reports whether the node can still be gathered.
func (n Node) Available() bool {
	return !n.Type.Consumable() || !n.Taken
}

// Bounds is the playable area, spanning [0, W] x [0, H].
type Bounds struct {
	W, H float64
}

// Clamp pulls p inside the bounds axis by axis.
func (b Bounds) Clamp(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, 0, b.W),
		Y: core.ClampF(p.Y, 0, b.H),
	}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p core.Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// Table is a fixed-capacity node collection. Nodes are appended only while
// scattering; at runtime they are flagged taken but never removed, so an
// index stays valid for the life of the table.
type Table struct {
	nodes []Node
}

// NewTable creates an empty table that holds at most capacity nodes.
func NewTable(capacity int) *Table {
	if capacity < 0 {
		capacity = 0
	}
	return &Table{nodes: make([]Node, 0, capacity)}
}

// Len returns the number of placed nodes.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Cap returns the table capacity.
func (t *Table) Cap() int {
	return cap(t.nodes)
}

// At returns the node at index i.
func (t *Table) At(i int) Node {
	return t.nodes[i]
}

// Take flags the node at i as gathered. Water nodes are left untouched.
func (t *Table) Take(i int) {
	if t.nodes[i].Type.Consumable() {
		t.nodes[i].Taken = true
	}
}

// Add appends a node. It reports false and drops the node when the table is full.
func (t *Table) Add(n Node) bool {
	if len(t.nodes) == cap(t.nodes) {
		return false
	}
	t.nodes = append(t.nodes, n)
	return true
}

// Nodes returns a copy of all nodes in table order.
func (t *Table) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Remaining counts available nodes of the given type.
func (t *Table) Remaining(typ NodeType) int {
	count := 0
	for _, n := range t.nodes {
		if n.Type == typ && n.Available() {
			count++
		}
	}
	return count
}

// Scatter places up to num nodes of typ uniformly inside b shrunk by inset on
// every side. It stops early when the table fills and returns how many were placed.
func (t *Table) Scatter(rng *rand.Rand, b Bounds, inset float64, typ NodeType, num int) int {
	placed := 0
	for i := 0; i < num; i++ {
		pos := core.Vec2{
			X: inset + rng.Float64()*(b.W-2*inset),
			Y: inset + rng.Float64()*(b.H-2*inset),
		}
		if !t.Add(Node{Pos: pos, Type: typ}) {
			break
		}
		placed++
	}
	return placed
}
