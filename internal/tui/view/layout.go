package view

import (
	"strings"

	"trainctl/internal/color"
	"trainctl/internal/tui/model"
)

const (
	tileX      = 2
	tileY      = 2
	tileWidth  = 28
	tileHeight = 3
)

// TileBounds is where the tile is drawn, border included.
func TileBounds(m *model.Model) model.Rect {
	frameW := color.TileStyle.GetHorizontalBorderSize()
	frameH := color.TileStyle.GetVerticalBorderSize()
	return model.Rect{X: tileX, Y: tileY, Width: tileWidth + frameW, Height: tileHeight + frameH}
}

// placeAt draws box on a width x height canvas with its top-left corner at
// (x, y). Rows outside the box are filled by fill, which may be nil.
func placeAt(width, height, x, y int, box string, fill func(width int) string) string {
	lines := strings.Split(box, "\n")
	pad := strings.Repeat(" ", max(x, 0))

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		i := row - y
		switch {
		case i >= 0 && i < len(lines):
			rows = append(rows, pad+lines[i])
		case fill != nil:
			rows = append(rows, fill(width))
		default:
			rows = append(rows, "")
		}
	}
	return strings.Join(rows, "\n")
}

func backdropFill(width int) string {
	return color.BackdropStyle.Width(width).Render("")
}
