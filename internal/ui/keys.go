package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRun
	ActionDescend
	ActionDrop // Opens the pack; the next letter picks the item
	ActionNextMessage
	ActionQuit
)

// Command is a decoded key press. Dir is set for moves and runs.
type Command struct {
	Action Action
	Dir    world.Direction
}

// Vi-style movement letters; the shifted letter runs.
var runeDirections = map[rune]world.Direction{
	'k': world.Up,
	'j': world.Down,
	'h': world.Left,
	'l': world.Right,
	'y': world.UpLeft,
	'u': world.UpRight,
	'b': world.DownLeft,
	'n': world.DownRight,
}

var keyDirections = map[tcell.Key]world.Direction{
	tcell.KeyUp:    world.Up,
	tcell.KeyDown:  world.Down,
	tcell.KeyLeft:  world.Left,
	tcell.KeyRight: world.Right,
	tcell.KeyHome:  world.UpLeft,
	tcell.KeyPgUp:  world.UpRight,
	tcell.KeyEnd:   world.DownLeft,
	tcell.KeyPgDn:  world.DownRight,
}

// CommandFor maps a key press to a command. Unknown keys map to ActionNone.
func CommandFor(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyEnter:
		return Command{Action: ActionNextMessage}
	case tcell.KeyRune:
		return commandForRune(r)
	}
	if dir, ok := keyDirections[key]; ok {
		return Command{Action: ActionMove, Dir: dir}
	}
	return Command{}
}

func commandForRune(r rune) Command {
	switch r {
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	case '>':
		return Command{Action: ActionDescend}
	case 'd':
		return Command{Action: ActionDrop}
	case ' ':
		return Command{Action: ActionNextMessage}
	}
	if dir, ok := runeDirections[r]; ok {
		return Command{Action: ActionMove, Dir: dir}
	}
	if r >= 'A' && r <= 'Z' {
		if dir, ok := runeDirections[r-'A'+'a']; ok {
			return Command{Action: ActionRun, Dir: dir}
		}
	}
	return Command{}
}

// PackIndex converts a pack letter (a, b, c...) to an item index.
func PackIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// PackLetter is the inverse of PackIndex.
func PackLetter(index int) rune {
	return 'a' + rune(index)
}
