package game

import (
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/world"
)

// Title is the game title shown on the intro and story screens.
const Title = "Survivor's Oath: Blood & Bonds"

// Menu entries on the intro screen.
const (
	MenuNewGame = iota
	MenuHowToPlay
	MenuQuit
)

// MenuItems are the intro menu labels, indexed by the Menu constants.
var MenuItems = []string{"New Game", "How To Play (H)", "Quit"}

// StoryLines are shown one at a time before play starts.
var StoryLines = []string{
	"A storm took the ship. I woke up alone.",
	"No sign of my son… only broken crates and footprints in the sand.",
	"This island breathes: water, berries, dangers. And someone else is here.",
	"I made an oath: survive, track the clues, and bring him home.",
}

// HelpLines is the how-to-play card.
var HelpLines = []string{
	"- WASD / arrows: Move (Shift: sprint)",
	"- Mouse: Aim",
	"- E: Interact (gather, drink, clue)",
	"- 1/2: Eat / Drink from inventory",
	"- F: Craft spear (2 sticks)",
	"- SPACE: Attack (with spear)",
	"- Find 4 clues. After 3, night falls…",
}

// Popup labels and colors.
var (
	colorFood  = core.RGB(230, 80, 90)
	colorStick = core.RGB(160, 120, 80)
	colorWater = core.RGB(60, 150, 230)
	colorClue  = core.RGB(255, 220, 80)
	colorSpear = core.RGB(220, 220, 150)
	colorSlain = core.RGB(200, 60, 60)
)

var gatherLabels = map[world.NodeType]string{
	world.NodeFood:     "+Food",
	world.NodeMaterial: "+Stick",
	world.NodeWater:    "+Water",
	world.NodeClue:     "Clue!",
}

var gatherColors = map[world.NodeType]core.Color{
	world.NodeFood:     colorFood,
	world.NodeMaterial: colorStick,
	world.NodeWater:    colorWater,
	world.NodeClue:     colorClue,
}

// promptLabels is the context hint shown when a node is in reach.
var promptLabels = map[world.NodeType]string{
	world.NodeFood:     "E: Gather berries",
	world.NodeMaterial: "E: Pick up stick",
	world.NodeWater:    "E: Drink water",
	world.NodeClue:     "E: Inspect clue",
}
