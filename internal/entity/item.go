// Package entity provides the items and the player that occupy dungeon cells.
package entity

import (
	"fmt"
	"strings"

	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
)

// Kind discriminates item types. Values match the ids in items.json.
type Kind string

const (
	KindScroll    Kind = "scroll"
	KindRing      Kind = "ring"
	KindPotion    Kind = "potion"
	KindWeapon    Kind = "weapon"
	KindArmor     Kind = "armor"
	KindStick     Kind = "stick"
	KindGold      Kind = "gold"
	KindStaircase Kind = "staircase"
)

// Item is anything lying on a cell or carried in the pack.
type Item struct {
	ID        string
	Kind      Kind
	Name      string // Specific name, e.g. "potion of healing"
	Amount    int    // Gold pieces; zero for everything else
	Quantity  int    // Stack size in the pack
	Stackable bool
}

// NewItemFromDef creates a single item of the definition's kind.
func NewItemFromDef(id string, def *gamedata.ItemDef, name string) *Item {
	return &Item{
		ID:        id,
		Kind:      Kind(def.ID),
		Name:      name,
		Quantity:  1,
		Stackable: def.Stackable,
	}
}

// NewGold creates a pile of gold.
func NewGold(id string, amount int) *Item {
	return &Item{
		ID:       id,
		Kind:     KindGold,
		Name:     string(KindGold),
		Amount:   amount,
		Quantity: 1,
	}
}

// NewStaircase creates the level's staircase down.
func NewStaircase(id string) *Item {
	return &Item{
		ID:       id,
		Kind:     KindStaircase,
		Name:     string(KindStaircase),
		Quantity: 1,
	}
}

// IsStaircase reports whether the item is the staircase down.
func (i *Item) IsStaircase() bool {
	return i.Kind == KindStaircase
}

// MatchesForInventory reports whether other can be merged into this item's stack.
func (i *Item) MatchesForInventory(other *Item) bool {
	if other == nil || !i.Stackable || !other.Stackable {
		return false
	}
	return i.Kind == other.Kind && i.Name == other.Name
}

// Label returns the player-facing description of the item.
func (i *Item) Label() string {
	if i.Kind == KindGold {
		return fmt.Sprintf("%d pieces of gold", i.Amount)
	}
	if i.Quantity > 1 {
		return fmt.Sprintf("%d x %s", i.Quantity, i.Name)
	}
	return article(i.Name) + " " + i.Name
}

func article(name string) string {
	if name != "" && strings.ContainsRune("aeiou", rune(name[0])) {
		return "an"
	}
	return "a"
}
