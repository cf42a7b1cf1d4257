package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonsofdoom/internal/game"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
)

// App runs the input loop: draw, wait for a key, apply it to the game.
type App struct {
	game     *game.Game
	screen   *Screen
	renderer *Renderer
	log      *logrus.Entry

	dropping bool
	running  bool
}

// NewApp creates the terminal front end for a game.
func NewApp(g *game.Game, screen *Screen, items *gamedata.ItemRegistry, log *logrus.Entry) *App {
	return &App{
		game:     g,
		screen:   screen,
		renderer: NewRenderer(screen, items),
		log:      log.WithField("component", "ui"),
		running:  true,
	}
}

// Run executes the main loop until the player quits or a command fails.
func (a *App) Run(ctx context.Context) error {
	for a.Running() {
		a.renderer.Render(a.game, a.Dropping())

		switch ev := a.screen.Poll().(type) {
		case *tcell.EventKey:
			if err := a.HandleKey(ctx, ev.Key(), ev.Rune()); err != nil {
				return err
			}
		case *tcell.EventResize:
			a.screen.Resync()
		case nil:
			// Screen finalized
			return nil
		}
	}
	return nil
}

// Running reports whether the loop should continue.
func (a *App) Running() bool {
	return a.running
}

// Dropping reports whether the app is waiting for a pack letter.
func (a *App) Dropping() bool {
	return a.dropping
}

// HandleKey applies a single key press.
func (a *App) HandleKey(ctx context.Context, key tcell.Key, r rune) error {
	if a.dropping {
		a.dropping = false
		if key == tcell.KeyRune {
			if index, ok := PackIndex(r); ok {
				a.game.DropItem(index)
			}
		}
		return nil
	}

	cmd := CommandFor(key, r)
	switch cmd.Action {
	case ActionMove:
		a.game.Move(cmd.Dir)
	case ActionRun:
		a.game.Run(ctx, cmd.Dir)
	case ActionDescend:
		if err := a.game.Descend(ctx); err != nil {
			a.log.WithError(err).Error("Descend failed.")
			return err
		}
	case ActionDrop:
		a.dropping = a.game.CanDrop()
	case ActionNextMessage:
		a.game.ConsumeMessage()
	case ActionQuit:
		a.running = false
	}
	return nil
}
