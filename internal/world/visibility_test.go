package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
	"github.com/samdwyer/dungeonsofdoom/internal/world/worldtest"
)

// twoRooms builds a lit room and a dark room joined by a straight hallway:
//
//	x: 1......7 8...12 13.....18
//	   [ lit  ]+#####+[ dark  ]   door row y=3
func twoRooms(t *testing.T) (*world.Dungeon, *world.Room, *world.Room) {
	t.Helper()
	d := worldtest.NewDungeon(20, 10)
	lit := worldtest.Room(d, 1, 1, 6, 5, true)
	dark := worldtest.Room(d, 13, 1, 5, 5, false)
	lit.RightDoor = worldtest.Door(d, 7, 3)
	dark.LeftDoor = worldtest.Door(d, 13, 3)
	worldtest.Hallway(d, [2]int{8, 3}, [2]int{12, 3})
	return d, lit, dark
}

func TestRevealAroundFloor(t *testing.T) {
	d, _, _ := twoRooms(t)

	d.RevealAround(d.At(3, 3))
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			loc := d.At(x, y)
			assert.True(t, loc.Seen && loc.Mapped && loc.Visible, "(%d,%d)", x, y)
		}
	}
	assert.False(t, d.At(5, 3).Visible)
}

func TestRevealAroundHallwaySkipsDiagonals(t *testing.T) {
	d, _, _ := twoRooms(t)

	d.RevealAround(d.At(10, 3))
	for _, c := range [][2]int{{10, 3}, {9, 3}, {11, 3}, {10, 2}, {10, 4}} {
		assert.True(t, d.At(c[0], c[1]).Visible, "(%d,%d) should be revealed", c[0], c[1])
	}
	for _, c := range [][2]int{{9, 2}, {11, 2}, {9, 4}, {11, 4}} {
		loc := d.At(c[0], c[1])
		assert.False(t, loc.Visible || loc.Seen || loc.Mapped, "(%d,%d) diagonal should stay dark", c[0], c[1])
	}
}

func TestUpdateVisibilityDarkensUnlitFloor(t *testing.T) {
	d, _, dark := twoRooms(t)
	from := d.At(15, 3)
	to := d.At(16, 3)

	d.RevealAround(from)
	withItem := d.At(14, 2)
	withItem.Item = entity.NewGold("g", 5)

	d.UpdateVisibility(from, to)

	assert.False(t, d.At(14, 3).Visible, "unlit floor left behind goes dark")
	assert.True(t, d.At(14, 3).Seen, "seen never reverts")
	assert.True(t, d.At(14, 3).Mapped, "mapped never reverts")
	assert.True(t, withItem.Visible, "items stay in view while in the same room")
	assert.True(t, d.At(17, 3).Visible)
	assert.False(t, dark.Lit)
}

func TestUpdateVisibilityKeepsLitFloor(t *testing.T) {
	d, _, _ := twoRooms(t)
	from := d.At(3, 3)
	to := d.At(4, 3)

	d.RevealAround(from)
	d.UpdateVisibility(from, to)

	assert.True(t, d.At(2, 3).Visible, "lit room floor stays visible")
}

func TestTransitionRoomsLeavingLitRoom(t *testing.T) {
	d, lit, _ := twoRooms(t)
	d.RevealRoom(lit)

	d.TransitionRooms(d.At(7, 3), d.At(8, 3))

	for _, loc := range lit.FloorLocations() {
		assert.False(t, loc.Visible)
		assert.True(t, loc.Seen)
		assert.True(t, loc.Mapped)
	}
	// Walls keep their flags
	assert.True(t, d.At(1, 1).Visible)
}

func TestTransitionRoomsEnteringLitRoom(t *testing.T) {
	d, lit, _ := twoRooms(t)

	d.TransitionRooms(d.At(8, 3), d.At(7, 3))

	for _, loc := range lit.Locations {
		assert.True(t, loc.Seen && loc.Mapped && loc.Visible)
	}
}

func TestTransitionRoomsEnteringDarkRoom(t *testing.T) {
	d, _, dark := twoRooms(t)

	d.TransitionRooms(d.At(12, 3), d.At(13, 3))

	for _, loc := range dark.Locations {
		assert.False(t, loc.Visible || loc.Seen)
	}
}

func TestTransitionRoomsSameRoomIsNoop(t *testing.T) {
	d, lit, _ := twoRooms(t)
	d.RevealRoom(lit)

	d.TransitionRooms(d.At(3, 3), d.At(4, 3))

	for _, loc := range lit.Locations {
		assert.True(t, loc.Visible)
	}
}
