package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/game"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/logger"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"arrow up", tcell.KeyUp, 0, Command{Action: ActionMove, Dir: world.Up}},
		{"arrow right", tcell.KeyRight, 0, Command{Action: ActionMove, Dir: world.Right}},
		{"page down", tcell.KeyPgDn, 0, Command{Action: ActionMove, Dir: world.DownRight}},
		{"h", tcell.KeyRune, 'h', Command{Action: ActionMove, Dir: world.Left}},
		{"y", tcell.KeyRune, 'y', Command{Action: ActionMove, Dir: world.UpLeft}},
		{"n", tcell.KeyRune, 'n', Command{Action: ActionMove, Dir: world.DownRight}},
		{"J runs", tcell.KeyRune, 'J', Command{Action: ActionRun, Dir: world.Down}},
		{"U runs", tcell.KeyRune, 'U', Command{Action: ActionRun, Dir: world.UpRight}},
		{"descend", tcell.KeyRune, '>', Command{Action: ActionDescend}},
		{"drop", tcell.KeyRune, 'd', Command{Action: ActionDrop}},
		{"space", tcell.KeyRune, ' ', Command{Action: ActionNextMessage}},
		{"enter", tcell.KeyEnter, 0, Command{Action: ActionNextMessage}},
		{"q", tcell.KeyRune, 'q', Command{Action: ActionQuit}},
		{"Q", tcell.KeyRune, 'Q', Command{Action: ActionQuit}},
		{"escape", tcell.KeyEscape, 0, Command{Action: ActionQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Command{Action: ActionQuit}},
		{"unknown letter", tcell.KeyRune, 'x', Command{}},
		{"unknown capital", tcell.KeyRune, 'X', Command{}},
		{"unknown key", tcell.KeyF1, 0, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandFor(tt.key, tt.r))
		})
	}
}

func TestPackIndex(t *testing.T) {
	i, ok := PackIndex('c')
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 'c', PackLetter(2))

	_, ok = PackIndex('C')
	assert.False(t, ok)
}

func newTestApp(t *testing.T) (*App, *game.Game) {
	t.Helper()
	g, err := game.New(context.Background(), game.Config{Seed: 11})
	require.NoError(t, err)
	return NewApp(g, nil, gamedata.MustLoadItemRegistry(), logrus.NewEntry(logger.Discard())), g
}

func TestAppDropFlow(t *testing.T) {
	ctx := context.Background()
	app, g := newTestApp(t)
	p := g.Player()
	require.Len(t, p.Items, 2)

	require.NoError(t, app.HandleKey(ctx, tcell.KeyRune, 'd'))
	assert.True(t, app.Dropping())

	require.NoError(t, app.HandleKey(ctx, tcell.KeyRune, 'b'))
	assert.False(t, app.Dropping())
	require.Len(t, p.Items, 1)
	assert.Equal(t, "mace", p.Items[0].Name)
	assert.Equal(t, "ring mail", g.At(p.X, p.Y).Item.Name)

	require.NoError(t, app.HandleKey(ctx, tcell.KeyRune, 'd'))
	assert.False(t, app.Dropping(), "cannot drop onto an occupied cell")
}

func TestAppMessagesAndQuit(t *testing.T) {
	ctx := context.Background()
	app, g := newTestApp(t)

	require.NoError(t, app.HandleKey(ctx, tcell.KeyRune, ' '))
	assert.Empty(t, g.Messages())

	require.NoError(t, app.HandleKey(ctx, tcell.KeyRune, '>'), "descending off the staircase is a no-op")
	assert.Equal(t, 1, g.Level())

	assert.True(t, app.Running())
	require.NoError(t, app.HandleKey(ctx, tcell.KeyEscape, 0))
	assert.False(t, app.Running())
}

func TestRendererCell(t *testing.T) {
	r := NewRenderer(nil, gamedata.MustLoadItemRegistry())

	loc := &world.Location{Type: world.Floor}
	ch, _ := r.cell(loc)
	assert.Equal(t, ' ', ch, "unmapped cells are blank")

	loc.Mapped = true
	loc.Item = entity.NewGold("g", 3)
	ch, style := r.cell(loc)
	assert.Equal(t, '.', ch, "remembered cells hide their items")
	assert.Equal(t, styleRemembered, style)

	loc.Visible = true
	ch, _ = r.cell(loc)
	assert.Equal(t, '*', ch)

	loc.Item = entity.NewStaircase("s")
	ch, _ = r.cell(loc)
	assert.Equal(t, '%', ch)

	loc.Character = entity.NewPlayer()
	ch, style = r.cell(loc)
	assert.Equal(t, '@', ch)
	assert.Equal(t, stylePlayer, style)
}

func TestStatusLine(t *testing.T) {
	_, g := newTestApp(t)
	g.Player().AddGold(42)

	assert.Equal(t, "Level: 1  Gold: 42     Hp: 12(12)  Str: 16(16)  Exp: 1/0", StatusLine(g))
}

func TestRenderSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(80, 40)

	_, g := newTestApp(t)
	r := NewRenderer(screen, gamedata.MustLoadItemRegistry())

	assert.NotPanics(t, func() {
		r.Render(g, false)
		r.Render(g, true)
	})
}
