// Package worldtest builds small hand-made dungeons for tests.
package worldtest

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

// sequentialIDs hands out predictable item IDs.
type sequentialIDs struct{ n int }

func (s *sequentialIDs) New() string {
	s.n++
	return fmt.Sprintf("test-%d", s.n)
}

// NewDungeon returns an empty dungeon that never spawns random items.
func NewDungeon(width, height int) *world.Dungeon {
	return world.NewDungeon(width, height, rand.New(rand.NewSource(1)),
		world.WithItems(gamedata.NewItemRegistry(nil)),
		world.WithIDGenerator(&sequentialIDs{}),
	)
}

// Room stamps walls and floor for the closed rectangle [x, x+w] x [y, y+h].
func Room(d *world.Dungeon, x, y, w, h int, lit bool) *world.Room {
	room := &world.Room{X: x, Y: y, Width: w, Height: h, Lit: lit}
	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			loc := d.At(i, j)
			loc.Room = room
			room.Locations = append(room.Locations, loc)

			top, bottom := j == y, j == y+h
			left, right := i == x, i == x+w
			switch {
			case top && left:
				loc.Type = world.DownRightWall
			case top && right:
				loc.Type = world.DownLeftWall
			case bottom && left:
				loc.Type = world.UpRightWall
			case bottom && right:
				loc.Type = world.UpLeftWall
			case top || bottom:
				loc.Type = world.HorizontalWall
			case left || right:
				loc.Type = world.VerticalWall
			default:
				loc.Type = world.Floor
			}
		}
	}
	return room
}

// Door turns a wall cell into a door.
func Door(d *world.Dungeon, x, y int) *world.Location {
	loc := d.At(x, y)
	loc.Type = world.Door
	return loc
}

// Hallway carves hallway cells along a path of waypoints, walking
// horizontally then vertically between consecutive points.
func Hallway(d *world.Dungeon, points ...[2]int) {
	for i, p := range points {
		if i == 0 {
			d.At(p[0], p[1]).Type = world.Hallway
			continue
		}
		prev := points[i-1]
		x, y := prev[0], prev[1]
		for x != p[0] {
			x += sign(p[0] - x)
			d.At(x, y).Type = world.Hallway
		}
		for y != p[1] {
			y += sign(p[1] - y)
			d.At(x, y).Type = world.Hallway
		}
	}
}

// Put places the player on the cell without touching perception flags.
func Put(d *world.Dungeon, p *entity.Player, x, y int) *world.Location {
	loc := d.At(x, y)
	loc.Character = p
	p.MoveTo(x, y)
	return loc
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
