// Package game holds the level state and the commands that mutate it:
// single steps, runs, descending and dropping items.
package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/logger"
	"github.com/samdwyer/dungeonsofdoom/internal/random"
	"github.com/samdwyer/dungeonsofdoom/internal/telemetry"
	"github.com/samdwyer/dungeonsofdoom/internal/uuid"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

const welcomeMessage = "Welcome to the Dungeons of Doom"

// Config selects how a game's levels are generated.
type Config struct {
	// Seed drives every random draw of level generation. Zero seeds from the
	// clock, so each game differs.
	Seed int64
}

// Game is the state of one adventure: the current level, the player and the
// message log. It is single-owner; commands run to completion before
// returning and must not be called concurrently on the same Game.
type Game struct {
	ID string

	level    int
	messages []string
	player   *entity.Player
	dungeon  *world.Dungeon

	rng       random.Source
	items     *gamedata.ItemRegistry
	ids       uuid.Generator
	observers []Observer
	log       *logrus.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithSource injects the randomness source, overriding Config.Seed.
func WithSource(rng random.Source) Option {
	return func(g *Game) { g.rng = rng }
}

// WithItems sets the item registry levels are seeded from.
func WithItems(items *gamedata.ItemRegistry) Option {
	return func(g *Game) { g.items = items }
}

// WithIDGenerator sets the generator for game and item IDs.
func WithIDGenerator(ids uuid.Generator) Option {
	return func(g *Game) { g.ids = ids }
}

// WithLogger sets the log entry the game reports to.
func WithLogger(log *logrus.Entry) Option {
	return func(g *Game) { g.log = log }
}

// New creates a game and generates its first level.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g := &Game{level: 1}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = random.New(cfg.Seed)
	}
	if g.items == nil {
		items, err := gamedata.LoadItemRegistry()
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("load items: %w", err)
		}
		g.items = items
	}
	if g.ids == nil {
		g.ids = uuid.NewGoogleUUIDGenerator()
	}
	if g.log == nil {
		g.log = logrus.NewEntry(logger.Discard())
	}

	g.ID = g.ids.New()
	g.log = g.log.WithFields(logrus.Fields{
		"component": "game",
		"game_id":   g.ID,
	})
	g.player = entity.NewPlayer(entity.StartingKit(g.ids.New)...)
	g.messages = []string{welcomeMessage}

	if err := g.generateLevel(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("game.id", g.ID),
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	g.log.WithField("seed", cfg.Seed).Debug("Game started.")
	return g, nil
}

// generateLevel replaces the dungeon with a freshly generated one.
func (g *Game) generateLevel(ctx context.Context) error {
	d := world.NewDungeon(world.DefaultWidth, world.DefaultHeight, g.rng,
		world.WithItems(g.items),
		world.WithIDGenerator(g.ids),
		world.WithLogger(g.log.WithField("level", g.level)),
	)
	if err := d.Generate(ctx, g.player); err != nil {
		return fmt.Errorf("generate level %d: %w", g.level, err)
	}
	g.dungeon = d
	return nil
}

// Width returns the grid width.
func (g *Game) Width() int { return g.dungeon.Width }

// Height returns the grid height.
func (g *Game) Height() int { return g.dungeon.Height }

// At returns the cell at (x, y). Out-of-range access panics.
func (g *Game) At(x, y int) *world.Location { return g.dungeon.At(x, y) }

// Rooms returns the current level's rooms.
func (g *Game) Rooms() []*world.Room { return g.dungeon.AllRooms() }

// Player returns the adventurer.
func (g *Game) Player() *entity.Player { return g.player }

// Level returns the dungeon depth, starting at 1.
func (g *Game) Level() int { return g.level }

// Messages returns the pending message log, oldest first.
func (g *Game) Messages() []string {
	return append([]string(nil), g.messages...)
}

// CurrentMessage returns the oldest pending message.
func (g *Game) CurrentMessage() (string, bool) {
	if len(g.messages) == 0 {
		return "", false
	}
	return g.messages[0], true
}

// ConsumeMessage drops the oldest pending message.
func (g *Game) ConsumeMessage() {
	if len(g.messages) == 0 {
		return
	}
	text := g.messages[0]
	g.messages = g.messages[1:]
	g.notify(Event{Type: EventMessageConsumed, Text: text, Level: g.level})
}

// AddMessage appends text to the message log.
func (g *Game) AddMessage(text string) {
	g.messages = append(g.messages, text)
	g.log.WithField("message", text).Debug("Message added.")
	g.notify(Event{Type: EventMessage, Text: text, Level: g.level})
}

// current returns the cell the player stands on.
func (g *Game) current() *world.Location {
	return g.dungeon.At(g.player.X, g.player.Y)
}

// Validate checks the current level's layout invariants. It holds at any
// point of play.
func (g *Game) Validate() error {
	return g.dungeon.Validate(g.player)
}

// ValidateFresh additionally checks the player started on an empty cell.
// Only meaningful before the first move on a level.
func (g *Game) ValidateFresh() error {
	return g.dungeon.ValidateFresh(g.player)
}
