package view

import (
	"strings"

	"trainctl/internal/color"
	"trainctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the whole screen for the current mode.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return "Goodbye.\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	// One row is reserved for the status bar.
	height := m.Height - 1

	var body string
	switch {
	case m.CurrentAppMode == model.ModeLogOverlay:
		body = renderLogOverlay(m, height)
	case m.CurrentAppMode == model.ModeHelpOverlay:
		body = renderHelpOverlay(m, height)
	case m.ScheduleDialog() != nil && m.ScheduleDialog().Visible:
		body = renderDialogCanvas(m, m.ScheduleDialog(), height)
	default:
		body = renderDashboard(m, height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, renderStatusBar(m))
}

func renderHelpOverlay(m *model.Model, height int) string {
	helpLines := []string{
		"Dashboard:",
		"  Enter / Space  Open the trains dialog",
		"  L              Show activity log",
		"  h or ?         Show/hide this help",
		"  q              Quit",
		"",
		"Trains dialog:",
		"  n / Tab        Next trip",
		"  y              Copy journeys to clipboard",
		"  Esc / d        Done",
		"",
		"In Overlays:",
		"  Esc            Close overlay",
		"  y              Copy content to clipboard",
		"  ↑/↓            Scroll content",
	}

	title := color.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	container := color.CenteredOverlayContainerStyle.Render(title + "\n" + strings.Join(helpLines, "\n"))
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, container)
}

func renderStatusBar(m *model.Model) string {
	if m.StatusBarMessage == "" {
		bar := m.Help
		bar.Width = m.Width
		return color.StatusBarStyle.Render(bar.View(m.Keys))
	}

	style := color.StatusBarStyle
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = color.StatusBarSuccessStyle
	case model.StatusBarError:
		style = color.StatusBarErrorStyle
	}
	return style.Render(m.StatusBarMessage)
}
