package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts an "#RRGGBB" colour from the data files to a
// tcell.Color. The leading # may be omitted.
func ParseHexColor(hex string) (tcell.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want #RRGGBB", hex)
	}
	color := tcell.GetColor(hex)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("color %q: not a hex value", hex)
	}
	return color, nil
}
