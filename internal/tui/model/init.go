package model

import (
	"time"

	"trainctl/internal/config"
	"trainctl/internal/dialog"
	"trainctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// InitializeModel builds the dashboard model. The dialog controller is wired
// separately because it needs the program's scheduler.
func InitializeModel(cfg config.Config, debugMode bool, logChannel <-chan logging.LogEntry) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	label := cfg.Tile.Label
	if label == "" {
		label = config.DefaultTileLabel
	}

	return &Model{
		CurrentAppMode: ModeDashboard,
		DebugMode:      debugMode,
		Animate:        cfg.Tile.AnimateEnabled(),
		TileLabel:      label,
		Plans:          cfg.Plans,
		Keys:           DefaultKeyMap(),
		DialogKeys:     DefaultDialogKeyMap(),
		Help:           help.New(),
		Spinner:        s,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     logChannel,
	}
}

// NewDialogFactory returns the factory the dialog controller builds schedule
// dialogs with.
func NewDialogFactory(deps DialogDeps) dialog.Factory {
	return dialog.FactoryFunc(func(display dialog.Display, scheduler dialog.Scheduler, owner *dialog.Controller) dialog.Dialog {
		return NewScheduleDialog(display, scheduler, owner, deps)
	})
}

// Init implements the first half of tea.Model for the wrapping AppModel.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
		m.SetStatusMessage("Press enter to see the next trains", StatusBarInfo, 5*time.Second),
	)
}
