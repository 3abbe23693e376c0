package controller

import (
	"trainctl/internal/tui/model"
	"trainctl/internal/tui/view"
	"trainctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "TUI"

// Update is the central message router of the TUI.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case model.RunOnUIMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
		if m.CurrentAppMode == model.ModeLogOverlay {
			view.SyncLogViewport(m)
		}
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg)
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	default:
		if m.DebugMode {
			logging.Debug(subsystem, "Unhandled msg type: %T", msg)
		}
		return m, nil
	}
}
