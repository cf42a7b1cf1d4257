package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
)

// ErrInvalidLevel wraps every check failure reported by Validate and
// ValidateFresh.
var ErrInvalidLevel = errors.New("invalid level")

// ValidateFresh checks a level straight out of Generate: everything Validate
// checks, and the player starting on an empty cell.
func (d *Dungeon) ValidateFresh(player *entity.Player) error {
	if err := d.Validate(player); err != nil {
		return err
	}
	if item := d.At(player.X, player.Y).Item; item != nil {
		if item.IsStaircase() {
			return fmt.Errorf("%w: staircase under the player", ErrInvalidLevel)
		}
		return fmt.Errorf("%w: player starts on %s", ErrInvalidLevel, item.Label())
	}
	return nil
}

// Validate checks the layout of a level at any point of play: a full room
// matrix of disjoint rooms inside the grid, the player standing where the
// grid says, exactly one staircase, and every walkable cell reachable from
// the player by orthogonal steps.
func (d *Dungeon) Validate(player *entity.Player) error {
	rooms := d.AllRooms()
	if len(rooms) != NumRoomCols*NumRoomRows {
		return fmt.Errorf("%w: %d rooms", ErrInvalidLevel, len(rooms))
	}
	for i, a := range rooms {
		if a.X < 0 || a.Y < 0 || a.X+a.Width >= d.Width || a.Y+a.Height >= d.Height {
			return fmt.Errorf("%w: room at (%d,%d) leaves the grid", ErrInvalidLevel, a.X, a.Y)
		}
		for _, b := range rooms[i+1:] {
			if a.Intersects(b) {
				return fmt.Errorf("%w: rooms at (%d,%d) and (%d,%d) overlap", ErrInvalidLevel, a.X, a.Y, b.X, b.Y)
			}
		}
	}

	if !d.InBounds(player.X, player.Y) || d.At(player.X, player.Y).Character != player {
		return fmt.Errorf("%w: player not on its cell (%d,%d)", ErrInvalidLevel, player.X, player.Y)
	}

	staircases := 0
	for _, loc := range d.Locations() {
		if loc.Item != nil && loc.Item.IsStaircase() {
			staircases++
		}
	}
	if staircases != 1 {
		return fmt.Errorf("%w: %d staircases", ErrInvalidLevel, staircases)
	}

	reached := d.reachableFrom(d.At(player.X, player.Y))
	for _, loc := range d.Locations() {
		if loc.CanTraverse() && !reached[loc] {
			return fmt.Errorf("%w: (%d,%d) unreachable", ErrInvalidLevel, loc.X, loc.Y)
		}
	}
	return nil
}

func (d *Dungeon) reachableFrom(start *Location) map[*Location]bool {
	reached := map[*Location]bool{start: true}
	queue := []*Location{start}
	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		for _, dir := range CardinalDirections {
			next := d.Step(loc, dir)
			if next == nil || reached[next] || !next.CanTraverse() {
				continue
			}
			reached[next] = true
			queue = append(queue, next)
		}
	}
	return reached
}
