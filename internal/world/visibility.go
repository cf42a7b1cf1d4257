package world

// UpdateVisibility refreshes the flags around a move from one cell to
// another: floor cells next to from fall back to their room's lighting, and
// cells next to to become seen, mapped and visible.
func (d *Dungeon) UpdateVisibility(from, to *Location) {
	for _, loc := range d.Neighborhood(from.X, from.Y) {
		if loc.Type != Floor || loc.Room == nil {
			continue
		}
		if loc.Item == nil || from.Room != to.Room {
			loc.Visible = loc.Room.Lit
		}
	}
	d.RevealAround(to)
}

// RevealAround reveals the 3x3 block around loc. In a hallway only the four
// orthogonal neighbours are revealed, so corridors do not light up diagonals.
func (d *Dungeon) RevealAround(loc *Location) {
	for _, n := range d.Neighborhood(loc.X, loc.Y) {
		if loc.Type == Hallway && abs(n.X-loc.X)+abs(n.Y-loc.Y) >= 2 {
			continue
		}
		n.reveal()
	}
}

// TransitionRooms hides the room being left and reveals a lit room being
// entered. Nothing happens when both cells share a room.
func (d *Dungeon) TransitionRooms(from, to *Location) {
	if from.Room == to.Room {
		return
	}
	if from.Room != nil {
		for _, loc := range from.Room.FloorLocations() {
			loc.Visible = false
		}
	}
	if to.Room != nil && to.Room.Lit {
		d.RevealRoom(to.Room)
	}
}

// RevealRoom marks every cell of the room seen, mapped and visible.
func (d *Dungeon) RevealRoom(room *Room) {
	for _, loc := range room.Locations {
		loc.reveal()
	}
}
