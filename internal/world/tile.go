// Package world provides dungeon generation, the cell grid and the per-cell
// perception state that movement updates.
package world

// LocationType is what a single cell is made of.
type LocationType int

const (
	Undetermined LocationType = iota
	Floor
	Hallway
	Door
	VerticalWall
	HorizontalWall
	UpLeftWall
	UpRightWall
	DownLeftWall
	DownRightWall
)

// String returns the type name.
func (t LocationType) String() string {
	switch t {
	case Undetermined:
		return "undetermined"
	case Floor:
		return "floor"
	case Hallway:
		return "hallway"
	case Door:
		return "door"
	case VerticalWall:
		return "verticalWall"
	case HorizontalWall:
		return "horizontalWall"
	case UpLeftWall:
		return "upLeftWall"
	case UpRightWall:
		return "upRightWall"
	case DownLeftWall:
		return "downLeftWall"
	case DownRightWall:
		return "downRightWall"
	default:
		return "unknown"
	}
}

// IsWall returns true for every wall variant.
func (t LocationType) IsWall() bool {
	return t >= VerticalWall && t <= DownRightWall
}

// IsTraversable returns true if the cell can be walked on.
func (t LocationType) IsTraversable() bool {
	return t == Floor || t == Hallway || t == Door
}

// Rune returns the type's display character. Corner walls are named after
// the directions their two arms extend.
func (t LocationType) Rune() rune {
	switch t {
	case Floor:
		return '.'
	case Hallway:
		return '#'
	case Door:
		return '+'
	case VerticalWall:
		return '│'
	case HorizontalWall:
		return '─'
	case UpLeftWall:
		return '┘'
	case UpRightWall:
		return '└'
	case DownLeftWall:
		return '┐'
	case DownRightWall:
		return '┌'
	default:
		return ' '
	}
}
