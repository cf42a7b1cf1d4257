package world

import (
	"sort"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
)

const (
	touchDoor      = "door"
	touchStaircase = "staircase"
)

// Perception is what the player can currently see that would make an
// automatic run stop: doors of the lit room they stand in, and doors or the
// staircase within reach.
type Perception struct {
	Doors     map[string]LocationType
	Touchable []string
}

// Perceive takes a snapshot from the given cell.
func (d *Dungeon) Perceive(at *Location) Perception {
	p := Perception{Doors: make(map[string]LocationType)}

	if at.Room != nil && at.Room.Lit {
		for _, loc := range at.Room.Locations {
			if loc.Type == Door {
				p.Doors[loc.Key()] = Door
			}
		}
	}

	for _, loc := range d.Neighborhood(at.X, at.Y) {
		if loc.Type == Door {
			p.Touchable = append(p.Touchable, touchDoor)
		}
		if loc.Item != nil && loc.Item.Kind == entity.KindStaircase {
			p.Touchable = append(p.Touchable, touchStaircase)
		}
	}
	sort.Strings(p.Touchable)
	return p
}

// Matches reports whether nothing new came into perception since previous.
// Features that disappear are tolerated; a new door in the room, or a
// touchable list that grew or changed, is not.
func (p Perception) Matches(previous Perception) bool {
	for key, t := range p.Doors {
		if previous.Doors[key] != t {
			return false
		}
	}

	if len(p.Touchable) == 0 {
		return true
	}
	if len(p.Touchable) > len(previous.Touchable) {
		return false
	}
	for i, t := range p.Touchable {
		if previous.Touchable[i] != t {
			return false
		}
	}
	return true
}
