package world

// Direction is one of the eight compass steps.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// AllDirections lists diagonals before cardinals, the order the run engine
// examines a floor cell's neighbours in.
var AllDirections = []Direction{UpLeft, UpRight, DownRight, DownLeft, Up, Down, Left, Right}

// CardinalDirections lists the four orthogonal steps.
var CardinalDirections = []Direction{Up, Down, Left, Right}

// Delta returns the x and y offset of one step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case DownRight:
		return UpLeft
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	default:
		return d
	}
}

// IsCardinal returns true for up, down, left and right.
func (d Direction) IsCardinal() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case UpLeft:
		return "upLeft"
	case UpRight:
		return "upRight"
	case DownLeft:
		return "downLeft"
	case DownRight:
		return "downRight"
	default:
		return "unknown"
	}
}

// IsDiagonalMove reports whether from and to are one diagonal step apart.
func IsDiagonalMove(from, to *Location) bool {
	return abs(from.X-to.X) == 1 && abs(from.Y-to.Y) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
