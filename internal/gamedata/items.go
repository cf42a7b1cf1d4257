package gamedata

import "github.com/gdamore/tcell/v2"

// Gold amounts are uniform in this closed range.
const (
	MinGold = 1
	MaxGold = 400
)

// ItemDef defines an item kind loaded from JSON.
type ItemDef struct {
	ID          string   `json:"id"`          // Kind identifier (e.g., "potion")
	Name        string   `json:"name"`        // Generic display name
	Glyph       string   `json:"glyph"`       // Single character for rendering (e.g., "!")
	Color       string   `json:"color"`       // Hex color code (e.g., "#FF00FF")
	SpawnWeight int      `json:"spawnWeight"` // Relative spawn frequency; 0 never spawns randomly
	Stackable   bool     `json:"stackable"`   // Whether equal items share one inventory slot
	Names       []string `json:"names"`       // Specific names drawn at spawn time
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
