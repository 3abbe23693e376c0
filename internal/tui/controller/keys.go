package controller

import (
	"strings"
	"time"

	"trainctl/internal/dialog"
	"trainctl/internal/tui/model"
	"trainctl/internal/tui/view"
	"trainctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// TileAnchorID names the tile when it is used as an animation anchor.
const TileAnchorID = "trains-tile"

var writeClipboard = clipboard.WriteAll

func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc, m.Keys.Help) {
			m.CurrentAppMode = model.ModeDashboard
		}
		return m, nil
	}

	if d := m.ScheduleDialog(); d != nil {
		return handleDialogKey(m, d, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Open):
		openScheduleDialog(m)
	case key.Matches(keyMsg, m.Keys.Log):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		view.SyncLogViewport(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
	}
	return m, nil
}

// openScheduleDialog asks the controller for a dialog, anchored on the tile
// when animations are on. The controller ignores the request while a dialog
// is live.
func openScheduleDialog(m *model.Model) {
	var anchor *dialog.Anchor
	if m.Animate {
		r := view.TileBounds(m)
		anchor = &dialog.Anchor{ID: TileAnchorID, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
	m.Dialogs.Create(anchor)
}

func handleDialogKey(m *model.Model, d *model.ScheduleDialog, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.DialogKeys.Done):
		d.Dismiss()
		return m, nil
	case key.Matches(keyMsg, m.DialogKeys.NextPlan):
		if !d.NextPlan() {
			return m, m.SetStatusMessage("Still connecting to the schedule provider", model.StatusBarInfo, 3*time.Second)
		}
		return m, nil
	case key.Matches(keyMsg, m.DialogKeys.Copy):
		if len(d.Journeys) == 0 {
			return m, nil
		}
		if err := writeClipboard(view.FormatJourneys(d.CurrentPlan().Title(), d.Journeys)); err != nil {
			logging.Error(subsystem, err, "Failed to copy journeys")
			return m, m.SetStatusMessage("Copy journeys failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Journeys copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	case key.Matches(keyMsg, m.Keys.Open):
		openScheduleDialog(m)
		return m, nil
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "L", "esc":
		m.CurrentAppMode = model.ModeDashboard
		return m, nil
	case "y":
		if err := writeClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
			logging.Error(subsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

// quit tears the dialog down the same way Done does, then stops the program.
func quit(m *model.Model) (*model.Model, tea.Cmd) {
	if d := m.ScheduleDialog(); d != nil {
		d.Dismiss()
	}
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
