package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/logger"
	"github.com/samdwyer/dungeonsofdoom/internal/random"
	"github.com/samdwyer/dungeonsofdoom/internal/telemetry"
	"github.com/samdwyer/dungeonsofdoom/internal/uuid"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 60
	DefaultHeight = 30

	// Fixed room topology: one room per cell of a 3x2 matrix
	NumRoomCols = 3
	NumRoomRows = 2

	minRoomWidth  = 4 // Cells spanned including walls
	minRoomHeight = 4
	litChance     = 0.95
)

// ErrNoPlacement means no cell could take the player or the staircase.
// The fixed layout guarantees candidates, so this signals a corrupted grid.
var ErrNoPlacement = errors.New("no valid location available")

// Dungeon is one level: the cell grid and its 3x2 matrix of rooms.
type Dungeon struct {
	Width  int
	Height int
	Rooms  [NumRoomCols][NumRoomRows]*Room

	cells [][]*Location
	rng   random.Source
	items *gamedata.ItemRegistry
	ids   uuid.Generator
	log   *logrus.Entry
}

// Option configures a Dungeon.
type Option func(*Dungeon)

// WithItems sets the registry items are spawned from.
func WithItems(items *gamedata.ItemRegistry) Option {
	return func(d *Dungeon) { d.items = items }
}

// WithIDGenerator sets the generator for item IDs.
func WithIDGenerator(ids uuid.Generator) Option {
	return func(d *Dungeon) { d.ids = ids }
}

// WithLogger sets the log entry generation reports to.
func WithLogger(log *logrus.Entry) Option {
	return func(d *Dungeon) { d.log = log }
}

// NewDungeon creates an empty dungeon of undetermined cells.
func NewDungeon(width, height int, rng random.Source, opts ...Option) *Dungeon {
	cells := make([][]*Location, height)
	for y := range cells {
		cells[y] = make([]*Location, width)
		for x := range cells[y] {
			cells[y][x] = &Location{X: x, Y: y}
		}
	}

	d := &Dungeon{
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.items == nil {
		d.items = gamedata.MustLoadItemRegistry()
	}
	if d.ids == nil {
		d.ids = uuid.NewGoogleUUIDGenerator()
	}
	if d.log == nil {
		d.log = logrus.NewEntry(logger.Discard())
	}
	d.log = d.log.WithField("component", "dungeon")
	return d
}

// InBounds returns true if the position lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// At returns the cell at the given position. Out-of-range access is a
// programming error and panics.
func (d *Dungeon) At(x, y int) *Location {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("location (%d,%d) outside %dx%d dungeon", x, y, d.Width, d.Height))
	}
	return d.cells[y][x]
}

// Step returns the cell one step from loc in the given direction, or nil if
// that would leave the grid.
func (d *Dungeon) Step(loc *Location, dir Direction) *Location {
	dx, dy := dir.Delta()
	x, y := loc.X+dx, loc.Y+dy
	if !d.InBounds(x, y) {
		return nil
	}
	return d.cells[y][x]
}

// Neighborhood returns the 3x3 block centred on (x, y), clamped to the grid.
func (d *Dungeon) Neighborhood(x, y int) []*Location {
	block := make([]*Location, 0, 9)
	for i := max(x-1, 0); i < min(x+2, d.Width); i++ {
		for j := max(y-1, 0); j < min(y+2, d.Height); j++ {
			block = append(block, d.cells[j][i])
		}
	}
	return block
}

// Locations returns every cell in row-major order.
func (d *Dungeon) Locations() []*Location {
	all := make([]*Location, 0, d.Width*d.Height)
	for _, row := range d.cells {
		all = append(all, row...)
	}
	return all
}

// AllRooms returns the rooms column by column.
func (d *Dungeon) AllRooms() []*Room {
	rooms := make([]*Room, 0, NumRoomCols*NumRoomRows)
	for i := range d.Rooms {
		for j := range d.Rooms[i] {
			if d.Rooms[i][j] != nil {
				rooms = append(rooms, d.Rooms[i][j])
			}
		}
	}
	return rooms
}

// Generate lays out rooms, doors, hallways and items, then places the player
// and the staircase.
func (d *Dungeon) Generate(ctx context.Context, player *entity.Player) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := d.addRooms(); err != nil {
		span.RecordError(err)
		return err
	}
	d.addDoors()
	d.addHallways()

	if err := d.PlacePlayer(player); err != nil {
		span.RecordError(err)
		return err
	}
	if err := d.PlaceStaircase(); err != nil {
		span.RecordError(err)
		return err
	}

	lit, items := 0, 0
	for _, room := range d.AllRooms() {
		if room.Lit {
			lit++
		}
	}
	for _, loc := range d.Locations() {
		if loc.Item != nil {
			items++
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.AllRooms())),
		attribute.Int("dungeon.lit_rooms", lit),
		attribute.Int("dungeon.item_count", items),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	d.log.WithFields(logrus.Fields{
		"rooms":    len(d.AllRooms()),
		"lit":      lit,
		"items":    items,
		"player_x": player.X,
		"player_y": player.Y,
	}).Debug("Dungeon generated.")

	return nil
}

// addRooms carves one room per cell of the room matrix. Each band's usable
// range keeps a one-cell border from the grid edge and leaves at least three
// cells between neighbouring bands for the hallway and its bend.
func (d *Dungeon) addRooms() error {
	cellWidth := d.Width / NumRoomCols
	cellHeight := d.Height / NumRoomRows
	if cellWidth-3 < 2*minRoomWidth-1 || cellHeight-3 < 2*minRoomHeight-1 {
		return fmt.Errorf("dungeon %dx%d too small for a %dx%d room matrix", d.Width, d.Height, NumRoomCols, NumRoomRows)
	}

	for i := 0; i < NumRoomCols; i++ {
		minX := i*cellWidth + 1
		maxX := i*cellWidth + cellWidth - 3
		for j := 0; j < NumRoomRows; j++ {
			minY := j*cellHeight + 1
			maxY := j*cellHeight + cellHeight - 3

			x := random.Between(d.rng, minX, maxX)
			y := random.Between(d.rng, minY, maxY)
			goRight := random.Chance(d.rng, 0.5)
			goDown := random.Chance(d.rng, 0.5)

			// Force growth away from an edge that is too close
			if maxX-x+1 < minRoomWidth {
				goRight = false
			}
			if x-minX+1 < minRoomWidth {
				goRight = true
			}
			if maxY-y+1 < minRoomHeight {
				goDown = false
			}
			if y-minY+1 < minRoomHeight {
				goDown = true
			}

			availWidth := x - minX + 1
			if goRight {
				availWidth = maxX - x + 1
			}
			availHeight := y - minY + 1
			if goDown {
				availHeight = maxY - y + 1
			}

			width := random.Between(d.rng, minRoomWidth, availWidth)
			height := random.Between(d.rng, minRoomHeight, availHeight)
			if !goRight {
				x = x - width + 1
			}
			if !goDown {
				y = y - height + 1
			}

			d.Rooms[i][j] = d.addRoom(x, y, width-1, height-1)
		}
	}
	return nil
}

// addRoom stamps walls and floor for the rectangle [x, x+w] x [y, y+h] and
// seeds its three item spots.
func (d *Dungeon) addRoom(x, y, w, h int) *Room {
	room := &Room{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Lit:    random.Chance(d.rng, litChance),
	}

	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			loc := d.cells[j][i]
			loc.Room = room
			room.Locations = append(room.Locations, loc)

			top, bottom := j == y, j == y+h
			left, right := i == x, i == x+w
			switch {
			case top && left:
				loc.Type = DownRightWall
			case top && right:
				loc.Type = DownLeftWall
			case bottom && left:
				loc.Type = UpRightWall
			case bottom && right:
				loc.Type = UpLeftWall
			case top || bottom:
				loc.Type = HorizontalWall
			case left || right:
				loc.Type = VerticalWall
			default:
				loc.Type = Floor
			}
		}
	}

	d.spawnRandomItem(x+1, y+1)
	d.spawnRandomItem(x+2, y+1)
	d.spawnRandomItem(x+1, y+2)
	return room
}

// addDoors puts one door on every side of a room that faces a neighbour.
func (d *Dungeon) addDoors() {
	for i := 0; i < NumRoomCols; i++ {
		for j := 0; j < NumRoomRows; j++ {
			room := d.Rooms[i][j]
			if i > 0 {
				y := room.Y + random.Between(d.rng, 1, room.Height-1)
				room.LeftDoor = d.makeDoor(room.X, y)
			}
			if i < NumRoomCols-1 {
				y := room.Y + random.Between(d.rng, 1, room.Height-1)
				room.RightDoor = d.makeDoor(room.X+room.Width, y)
			}
			if j > 0 {
				x := room.X + random.Between(d.rng, 1, room.Width-1)
				room.UpDoor = d.makeDoor(x, room.Y)
			}
			if j < NumRoomRows-1 {
				x := room.X + random.Between(d.rng, 1, room.Width-1)
				room.DownDoor = d.makeDoor(x, room.Y+room.Height)
			}
		}
	}
}

func (d *Dungeon) makeDoor(x, y int) *Location {
	loc := d.cells[y][x]
	loc.Type = Door
	return loc
}

// addHallways connects every pair of adjacent rooms.
func (d *Dungeon) addHallways() {
	for i := 0; i < NumRoomCols; i++ {
		for j := 0; j < NumRoomRows; j++ {
			room := d.Rooms[i][j]
			if i < NumRoomCols-1 {
				d.carveHorizontalHallway(room, d.Rooms[i+1][j])
			}
			if j < NumRoomRows-1 {
				d.carveVerticalHallway(room, d.Rooms[i][j+1])
			}
		}
	}
}

// carveHorizontalHallway runs from left's right door to right's left door,
// switching rows at a random bend column.
func (d *Dungeon) carveHorizontalHallway(left, right *Room) {
	y1 := left.RightDoor.Y
	y2 := right.LeftDoor.Y
	x1 := left.X + left.Width + 1
	x2 := right.X - 1
	xhat := random.Between(d.rng, x1+1, x2-1)

	for x := x1; x <= x2; x++ {
		y := y2
		if x < xhat {
			y = y1
		}
		d.cells[y][x].Type = Hallway
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		d.cells[y][xhat].Type = Hallway
	}
}

// carveVerticalHallway runs from up's down door to down's up door,
// switching columns at a random bend row.
func (d *Dungeon) carveVerticalHallway(up, down *Room) {
	x1 := up.DownDoor.X
	x2 := down.UpDoor.X
	y1 := up.Y + up.Height + 1
	y2 := down.Y - 1
	yhat := random.Between(d.rng, y1+1, y2-1)

	for y := y1; y <= y2; y++ {
		x := x2
		if y < yhat {
			x = x1
		}
		d.cells[y][x].Type = Hallway
	}
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		d.cells[yhat][x].Type = Hallway
	}
}

// spawnRandomItem draws a weighted item for the cell. The item is discarded
// when the cell cannot hold it.
func (d *Dungeon) spawnRandomItem(x, y int) {
	def := d.items.SpawnRandom(d.rng)
	if def == nil {
		return
	}

	var item *entity.Item
	if entity.Kind(def.ID) == entity.KindGold {
		item = entity.NewGold(d.ids.New(), random.Between(d.rng, gamedata.MinGold, gamedata.MaxGold))
	} else {
		item = entity.NewItemFromDef(d.ids.New(), def, d.items.RandomName(def, d.rng))
	}
	d.PlaceItem(item, x, y)
}

// PlaceItem puts item on the cell if it can hold one.
func (d *Dungeon) PlaceItem(item *entity.Item, x, y int) bool {
	loc := d.At(x, y)
	if !loc.CanPlaceItem() {
		return false
	}
	loc.Item = item
	return true
}

// PlacePlayer puts the player on a random free cell and reveals what they
// can see from there.
func (d *Dungeon) PlacePlayer(player *entity.Player) error {
	var candidates []*Location
	for _, loc := range d.Locations() {
		if loc.CanPlacePlayer() {
			candidates = append(candidates, loc)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("place player: %w", ErrNoPlacement)
	}

	loc := candidates[d.rng.Intn(len(candidates))]
	loc.Character = player
	player.MoveTo(loc.X, loc.Y)

	d.RevealAround(loc)
	if loc.Room != nil && loc.Room.Lit {
		d.RevealRoom(loc.Room)
	}
	return nil
}

// PlaceStaircase puts the staircase on a random empty floor cell.
func (d *Dungeon) PlaceStaircase() error {
	var candidates []*Location
	for _, loc := range d.Locations() {
		if loc.Type == Floor && loc.Item == nil && loc.Character == nil {
			candidates = append(candidates, loc)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("place staircase: %w", ErrNoPlacement)
	}

	loc := candidates[d.rng.Intn(len(candidates))]
	loc.Item = entity.NewStaircase(d.ids.New())
	return nil
}
