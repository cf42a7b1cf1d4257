package entity

// MaxPackSize is the number of distinct stacks the pack holds.
const MaxPackSize = 25

// Stat is a current/maximum pair such as strength or hit points.
type Stat struct {
	Current int
	Maximum int
}

// Player is the adventurer. X and Y are authoritative; the dungeon cell at
// that position must point back at the player.
type Player struct {
	X, Y       int
	Symbol     rune
	Items      []*Item
	Gold       int
	Experience int
	Strength   Stat
	Hits       Stat
}

// NewPlayer creates a player carrying the given starting items.
func NewPlayer(kit ...*Item) *Player {
	return &Player{
		Symbol:   '@',
		Items:    append([]*Item(nil), kit...),
		Strength: Stat{Current: 16, Maximum: 16},
		Hits:     Stat{Current: 12, Maximum: 12},
	}
}

// StartingKit returns the mace and ring mail every adventurer starts with.
func StartingKit(newID func() string) []*Item {
	return []*Item{
		{ID: newID(), Kind: KindWeapon, Name: "mace", Quantity: 1},
		{ID: newID(), Kind: KindArmor, Name: "ring mail", Quantity: 1},
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// MoveTo sets the player's position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Level is derived from experience on every call: 1 below 10 points,
// otherwise floor(log10(experience)).
func (p *Player) Level() int {
	if p.Experience < 10 {
		return 1
	}
	level := 0
	for xp := p.Experience; xp >= 10; xp /= 10 {
		level++
	}
	return level
}

// NumItems returns the total number of carried items, counting stacks.
func (p *Player) NumItems() int {
	n := 0
	for _, item := range p.Items {
		n += item.Quantity
	}
	return n
}

// PackFull reports whether the pack is at capacity.
func (p *Player) PackFull() bool {
	return len(p.Items) >= MaxPackSize
}

// AddItem stacks the item onto a matching one or appends it.
// Returns false, leaving the pack untouched, when the pack is full.
func (p *Player) AddItem(item *Item) bool {
	if p.PackFull() {
		return false
	}
	for _, carried := range p.Items {
		if carried.MatchesForInventory(item) {
			carried.Quantity += item.Quantity
			return true
		}
	}
	p.Items = append(p.Items, item)
	return true
}

// RemoveItem takes the whole stack at index out of the pack.
func (p *Player) RemoveItem(index int) (*Item, bool) {
	if index < 0 || index >= len(p.Items) {
		return nil, false
	}
	item := p.Items[index]
	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	return item, true
}

// AddGold adds gold pieces to the purse.
func (p *Player) AddGold(amount int) {
	p.Gold += amount
}
