package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/game"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

const (
	messageRow = 0
	mapTop     = 1
	packColumn = world.DefaultWidth + 2
	morePrompt = " --More--"
)

var (
	styleRemembered = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleVisible    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDoor       = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	items  *gamedata.ItemRegistry
}

// NewRenderer creates a new renderer for the given screen. Item glyphs and
// colours come from the registry.
func NewRenderer(screen *Screen, items *gamedata.ItemRegistry) *Renderer {
	return &Renderer{screen: screen, items: items}
}

// Render draws the oldest message, the map and the status line. With
// showPack set the pack listing is drawn beside the map.
func (r *Renderer) Render(g *game.Game, showPack bool) {
	r.screen.Begin()

	if msg, ok := g.CurrentMessage(); ok {
		if len(g.Messages()) > 1 {
			msg += morePrompt
		}
		r.screen.Text(0, messageRow, msg, styleText)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			ch, style := r.cell(g.At(x, y))
			r.screen.Put(x, mapTop+y, ch, style)
		}
	}

	r.screen.Text(0, mapTop+g.Height(), StatusLine(g), styleText)
	if showPack {
		r.renderPack(g.Player())
	}

	r.screen.Flush()
}

// cell returns what a location looks like. Unmapped cells are blank; mapped
// cells out of view show only their terrain.
func (r *Renderer) cell(loc *world.Location) (rune, tcell.Style) {
	if !loc.Mapped {
		return ' ', tcell.StyleDefault
	}
	if !loc.Visible {
		return loc.Type.Rune(), styleRemembered
	}
	if loc.Character != nil {
		return loc.Character.Symbol, stylePlayer
	}
	if loc.Item != nil {
		if def := r.items.GetByID(string(loc.Item.Kind)); def != nil {
			return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
		}
	}
	if loc.Type == world.Door {
		return loc.Type.Rune(), styleDoor
	}
	return loc.Type.Rune(), styleVisible
}

func (r *Renderer) renderPack(p *entity.Player) {
	r.screen.Text(packColumn, mapTop, "Drop which item?", styleText)
	for i, item := range p.Items {
		line := fmt.Sprintf("%c) %s", PackLetter(i), item.Label())
		r.screen.Text(packColumn, mapTop+2+i, line, styleText)
	}
}

// StatusLine formats the level, purse and player stats.
func StatusLine(g *game.Game) string {
	p := g.Player()
	return fmt.Sprintf("Level: %d  Gold: %-5d  Hp: %d(%d)  Str: %d(%d)  Exp: %d/%d",
		g.Level(), p.Gold,
		p.Hits.Current, p.Hits.Maximum,
		p.Strength.Current, p.Strength.Maximum,
		p.Level(), p.Experience)
}
