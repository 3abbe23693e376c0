package model

import (
	"trainctl/internal/config"
	"trainctl/internal/dialog"
	"trainctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

const MaxActivityLogLines = 1000

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Model is the state of the trainctl TUI. Only the bubbletea Update loop
// touches it.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool
	Animate        bool
	TileLabel      string
	Plans          []config.Plan

	Keys       KeyMap
	DialogKeys DialogKeyMap
	Help       help.Model
	Spinner    spinner.Model

	// Dialogs owns the schedule dialog. View renders Dialogs.Current().
	Dialogs *dialog.Controller

	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	statusSeq            int
}

// Size implements dialog.Display.
func (m *Model) Size() (int, int) {
	return m.Width, m.Height
}

// ScheduleDialog returns the live schedule dialog, or nil.
func (m *Model) ScheduleDialog() *ScheduleDialog {
	if m.Dialogs == nil {
		return nil
	}
	d, _ := m.Dialogs.Current().(*ScheduleDialog)
	return d
}

var _ dialog.Display = (*Model)(nil)
