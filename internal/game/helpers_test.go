package game

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/logger"
	"github.com/samdwyer/dungeonsofdoom/internal/random"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
	"github.com/samdwyer/dungeonsofdoom/internal/world/worldtest"
)

// newTestGame wraps a hand-built dungeon with the player standing at (x, y).
func newTestGame(t *testing.T, d *world.Dungeon, x, y int) *Game {
	t.Helper()
	g := &Game{
		ID:       "test-game",
		level:    1,
		messages: []string{welcomeMessage},
		player:   entity.NewPlayer(),
		dungeon:  d,
		rng:      random.New(1),
		items:    gamedata.NewItemRegistry(nil),
		log:      logrus.NewEntry(logger.Discard()),
	}
	worldtest.Put(d, g.player, x, y)
	return g
}

// litRoomWithHallway builds:
//
//	a lit room spanning x 1..7, y 1..6 with a door at (7,3), and a hallway
//	leaving the door eastwards to (12,3) then turning south to (12,8).
func litRoomWithHallway() *world.Dungeon {
	d := worldtest.NewDungeon(20, 12)
	room := worldtest.Room(d, 1, 1, 6, 5, true)
	room.RightDoor = worldtest.Door(d, 7, 3)
	worldtest.Hallway(d, [2]int{8, 3}, [2]int{12, 8})
	return d
}

func goldAt(d *world.Dungeon, x, y, amount int) *entity.Item {
	item := entity.NewGold("gold", amount)
	d.At(x, y).Item = item
	return item
}

func potion(id, name string) *entity.Item {
	return &entity.Item{ID: id, Kind: entity.KindPotion, Name: name, Quantity: 1, Stackable: true}
}

type cellFlags struct {
	Seen, Mapped, Visible bool
	HasCharacter          bool
}

func snapshotFlags(d *world.Dungeon) map[string]cellFlags {
	flags := make(map[string]cellFlags)
	for _, loc := range d.Locations() {
		flags[loc.Key()] = cellFlags{loc.Seen, loc.Mapped, loc.Visible, loc.Character != nil}
	}
	return flags
}
