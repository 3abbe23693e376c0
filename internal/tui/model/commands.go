package model

import (
	"time"

	"trainctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// SetStatusMessage shows msg in the status bar and clears it after clearAfter.
func (m *Model) SetStatusMessage(msg string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}

// ClearStatusMessage handles ClearStatusBarMsg. Stale clears are ignored.
func (m *Model) ClearStatusMessage(msg ClearStatusBarMsg) {
	if msg.Seq == m.statusSeq {
		m.StatusBarMessage = ""
	}
}
