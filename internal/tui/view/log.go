package view

import (
	"strings"

	"trainctl/internal/color"
	"trainctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

func logOverlaySize(m *model.Model) (width, height int) {
	// One row is reserved for the status bar.
	return int(float64(m.Width) * 0.8), int(float64(m.Height-1) * 0.7)
}

// SyncLogViewport fits the log viewport to the overlay and refreshes its
// content when the activity log changed. Call it from Update, never from View.
func SyncLogViewport(m *model.Model) {
	overlayWidth, overlayHeight := logOverlaySize(m)
	title := color.LogPanelTitleStyle.Render(logOverlayTitle)

	m.LogViewport.Width = max(overlayWidth-color.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	m.LogViewport.Height = max(overlayHeight-color.LogOverlayStyle.GetVerticalFrameSize()-lipgloss.Height(title), 0)
	if m.ActivityLogDirty {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}
}

func renderLogOverlay(m *model.Model, height int) string {
	title := color.LogPanelTitleStyle.Render(logOverlayTitle)
	overlayWidth, _ := logOverlaySize(m)

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := color.LogOverlayStyle.
		Width(max(overlayWidth-color.LogOverlayStyle.GetHorizontalBorderSize(), 0)).
		Render(content)
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, overlay)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.Contains(line, " ERROR "):
			out[i] = color.LogErrorStyle.Render(line)
		case strings.Contains(line, " WARN "):
			out[i] = color.LogWarnStyle.Render(line)
		case strings.Contains(line, " DEBUG "):
			out[i] = color.LogDebugStyle.Render(line)
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}
