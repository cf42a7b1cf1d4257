package world

// Room is a rectangular chamber. The closed rectangle [X, X+Width] x
// [Y, Y+Height] is the room, walls included.
type Room struct {
	X, Y          int
	Width, Height int
	Lit           bool
	Locations     []*Location

	LeftDoor  *Location
	RightDoor *Location
	UpDoor    *Location
	DownDoor  *Location
}

// Contains returns true if the given point is inside the room or on its walls.
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r *Room) Intersects(other *Room) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Doors returns the room's door locations.
func (r *Room) Doors() []*Location {
	doors := make([]*Location, 0, 4)
	for _, d := range []*Location{r.LeftDoor, r.RightDoor, r.UpDoor, r.DownDoor} {
		if d != nil {
			doors = append(doors, d)
		}
	}
	return doors
}

// FloorLocations returns the room's floor cells.
func (r *Room) FloorLocations() []*Location {
	floor := make([]*Location, 0, len(r.Locations))
	for _, loc := range r.Locations {
		if loc.Type == Floor {
			floor = append(floor, loc)
		}
	}
	return floor
}
