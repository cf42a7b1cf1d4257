package world

import (
	"fmt"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
)

// Location is one grid cell.
type Location struct {
	X, Y      int
	Type      LocationType
	Room      *Room          // Owning room; nil for hallways
	Item      *entity.Item   // At most one item
	Character *entity.Player // At most one character

	Seen    bool // Ever observed
	Mapped  bool // Ever revealed on the map
	Visible bool // Observed right now
}

// Key identifies the location in perception snapshots.
func (l *Location) Key() string {
	return fmt.Sprintf("%d-%d", l.X, l.Y)
}

// CanTraverse returns true if the player may step onto the cell.
func (l *Location) CanTraverse() bool {
	return l.Type.IsTraversable()
}

// IsWall returns true if the cell is any wall variant.
func (l *Location) IsWall() bool {
	return l.Type.IsWall()
}

// CanPlaceItem returns true if the cell is walkable and holds no item.
func (l *Location) CanPlaceItem() bool {
	return l.CanTraverse() && l.Item == nil
}

// CanPlacePlayer returns true if the cell is walkable and holds neither a
// character nor an item.
func (l *Location) CanPlacePlayer() bool {
	return l.CanTraverse() && l.Character == nil && l.Item == nil
}

// reveal marks the cell seen, mapped and visible.
func (l *Location) reveal() {
	l.Seen = true
	l.Mapped = true
	l.Visible = true
}
