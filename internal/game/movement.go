package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/telemetry"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

// MoveOutcome reports what a single step did.
type MoveOutcome struct {
	Blocked bool
	// SteppedOnItem is true when the step ended on an item other than the
	// staircase, whether or not it was picked up.
	SteppedOnItem bool
}

// movePlayer steps the player from one cell to an adjacent one.
func (g *Game) movePlayer(from, to *world.Location) MoveOutcome {
	if !to.CanTraverse() {
		return MoveOutcome{Blocked: true}
	}
	if world.IsDiagonalMove(from, to) && g.cornerBlocks(from, to) {
		return MoveOutcome{Blocked: true}
	}

	g.dungeon.UpdateVisibility(from, to)

	from.Character = nil
	to.Character = g.player
	g.player.MoveTo(to.X, to.Y)

	stepped := false
	if to.Item != nil && !to.Item.IsStaircase() {
		stepped = true
		g.pickUp(to)
	}

	g.dungeon.TransitionRooms(from, to)
	g.notify(Event{Type: EventMoved, Level: g.level})
	return MoveOutcome{SteppedOnItem: stepped}
}

// cornerBlocks reports whether a wall sits on either cell a diagonal step
// would cut across.
func (g *Game) cornerBlocks(from, to *world.Location) bool {
	return g.dungeon.At(to.X, from.Y).IsWall() || g.dungeon.At(from.X, to.Y).IsWall()
}

// pickUp takes the item on loc into the pack or purse.
func (g *Game) pickUp(loc *world.Location) {
	item := loc.Item
	if item.Kind == entity.KindGold {
		g.player.AddGold(item.Amount)
		loc.Item = nil
		g.AddMessage(fmt.Sprintf("You picked up %s.", item.Label()))
		return
	}

	if !g.player.AddItem(item) {
		g.AddMessage("Your pack is full.")
		return
	}
	loc.Item = nil
	g.AddMessage(fmt.Sprintf("You picked up %s.", item.Label()))
}

// Move takes one step in the given direction. Steps off the grid, into
// walls, or across wall corners are ignored.
func (g *Game) Move(dir world.Direction) {
	from := g.current()
	to := g.dungeon.Step(from, dir)
	if to == nil {
		return
	}
	g.movePlayer(from, to)
}

func (g *Game) MoveUp()        { g.Move(world.Up) }
func (g *Game) MoveDown()      { g.Move(world.Down) }
func (g *Game) MoveLeft()      { g.Move(world.Left) }
func (g *Game) MoveRight()     { g.Move(world.Right) }
func (g *Game) MoveUpLeft()    { g.Move(world.UpLeft) }
func (g *Game) MoveUpRight()   { g.Move(world.UpRight) }
func (g *Game) MoveDownLeft()  { g.Move(world.DownLeft) }
func (g *Game) MoveDownRight() { g.Move(world.DownRight) }

// OnStaircase reports whether the player stands on the staircase.
func (g *Game) OnStaircase() bool {
	item := g.current().Item
	return item != nil && item.IsStaircase()
}

// Descend takes the staircase to a freshly generated level. The level
// counter, message log, pack and gold carry over. Does nothing unless the
// player stands on the staircase.
func (g *Game) Descend(ctx context.Context) error {
	if !g.OnStaircase() {
		return nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	g.level++
	if err := g.generateLevel(ctx); err != nil {
		g.level--
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int("game.level", g.level))
	g.log.WithField("level", g.level).Info("Descended.")
	g.notify(Event{Type: EventLevelChanged, Level: g.level})
	return nil
}

// CanDrop reports whether the player carries something and the current cell
// can take it.
func (g *Game) CanDrop() bool {
	return len(g.player.Items) > 0 && g.current().CanPlaceItem()
}

// DropItem puts the whole stack at index in the pack on the current cell.
func (g *Game) DropItem(index int) {
	loc := g.current()
	if !loc.CanPlaceItem() {
		return
	}
	item, ok := g.player.RemoveItem(index)
	if !ok {
		return
	}
	loc.Item = item
	g.AddMessage(fmt.Sprintf("You dropped %s.", item.Label()))
}
