package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsofdoom/internal/telemetry"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

// Run keeps stepping in a direction, following single-lane corridors, until
// something worth stopping for happens: a junction or dead end, an item
// underfoot, or a new door or the staircase coming into view.
// Nothing happens when the first step is impossible.
func (g *Game) Run(ctx context.Context, dir world.Direction) {
	to := g.dungeon.Step(g.current(), dir)
	if to == nil || !to.CanTraverse() {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.run")
	defer span.End()

	steps := g.runExcept(dir.Opposite())

	span.SetAttributes(
		attribute.String("run.direction", dir.String()),
		attribute.Int("run.steps", steps),
	)
}

func (g *Game) RunUp(ctx context.Context)        { g.Run(ctx, world.Up) }
func (g *Game) RunDown(ctx context.Context)      { g.Run(ctx, world.Down) }
func (g *Game) RunLeft(ctx context.Context)      { g.Run(ctx, world.Left) }
func (g *Game) RunRight(ctx context.Context)     { g.Run(ctx, world.Right) }
func (g *Game) RunUpLeft(ctx context.Context)    { g.Run(ctx, world.UpLeft) }
func (g *Game) RunUpRight(ctx context.Context)   { g.Run(ctx, world.UpRight) }
func (g *Game) RunDownLeft(ctx context.Context)  { g.Run(ctx, world.DownLeft) }
func (g *Game) RunDownRight(ctx context.Context) { g.Run(ctx, world.DownRight) }

// runExcept runs away from the excluded direction and returns the number of
// steps taken.
func (g *Game) runExcept(excluded world.Direction) int {
	steps := 0
	for {
		at := g.current()
		dir, ok := g.runDirection(at, excluded)
		if !ok {
			return steps
		}
		to := g.dungeon.Step(at, dir)

		before := g.dungeon.Perceive(at)
		outcome := g.movePlayer(at, to)
		if outcome.Blocked {
			return steps
		}
		steps++
		if outcome.SteppedOnItem {
			return steps
		}
		if !g.dungeon.Perceive(to).Matches(before) {
			return steps
		}
		excluded = dir.Opposite()
	}
}

// runDirection picks the next step of a run. Straight ahead wins; in a
// corridor a single open way is followed round bends. Anything else stops.
func (g *Game) runDirection(at *world.Location, excluded world.Direction) (world.Direction, bool) {
	corridor := at.Type == world.Hallway || at.Type == world.Door
	dirs := world.AllDirections
	if corridor {
		dirs = world.CardinalDirections
	}

	var candidates []world.Direction
	for _, dir := range dirs {
		if dir == excluded {
			continue
		}
		if to := g.dungeon.Step(at, dir); to != nil && to.CanTraverse() {
			candidates = append(candidates, dir)
		}
	}

	preferred := excluded.Opposite()
	for _, dir := range candidates {
		if dir == preferred {
			return dir, true
		}
	}
	if corridor && len(candidates) == 1 {
		return candidates[0], true
	}
	return 0, false
}
