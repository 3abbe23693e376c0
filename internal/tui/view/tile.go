package view

import (
	"trainctl/internal/color"
	"trainctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func renderTile(m *model.Model, focused bool) string {
	style := color.TileStyle
	if focused {
		style = color.TileFocusedStyle
	}

	subtitle := ""
	if len(m.Plans) > 0 {
		subtitle = runewidth.Truncate(m.Plans[0].Title(), tileWidth, "…")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		"🚆 "+m.TileLabel,
		color.TileSubtitleStyle.Render(subtitle),
	)
	return style.Width(tileWidth).Height(tileHeight).Render(body)
}

func renderDashboard(m *model.Model, height int) string {
	header := color.HeaderStyle.Render("trainctl")
	tile := renderTile(m, m.ScheduleDialog() == nil)

	canvas := placeAt(m.Width, height-tileY, tileX, 0, tile, nil)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", canvas)
}
