package controller

import (
	"trainctl/internal/binding"
	"trainctl/internal/config"
	"trainctl/internal/dialog"
	"trainctl/internal/tui/model"
	"trainctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramOptions configures NewProgram.
type ProgramOptions struct {
	Config      config.Config
	Binder      binding.Binder
	DebugMode   bool
	NoAnimation bool
	LogChannel  <-chan logging.LogEntry

	// TeaOptions are passed to tea.NewProgram. Defaults to the alt screen.
	TeaOptions []tea.ProgramOption
}

// Program is a bubbletea program hosting the trains tile.
type Program struct {
	*tea.Program
	model     *model.Model
	scheduler *ProgramScheduler
}

// NewProgram creates the Bubble Tea program and wires the dialog controller
// to its scheduler.
func NewProgram(opts ProgramOptions) *Program {
	m := model.InitializeModel(opts.Config, opts.DebugMode, opts.LogChannel)
	if opts.NoAnimation {
		m.Animate = false
	}

	scheduler := NewProgramScheduler()
	WireDialogs(m, scheduler, model.DialogDeps{
		Binder:  opts.Binder,
		Plans:   opts.Config.Plans,
		Timeout: opts.Config.Provider.Timeout,
	})

	teaOpts := opts.TeaOptions
	if teaOpts == nil {
		teaOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(NewAppModel(m), teaOpts...)
	scheduler.Start(p.Send)

	return &Program{Program: p, model: m, scheduler: scheduler}
}

// WireDialogs gives m a dialog controller that builds schedule dialogs and
// animates them through scheduler.
func WireDialogs(m *model.Model, scheduler dialog.Scheduler, deps model.DialogDeps) {
	m.Dialogs = dialog.NewController(m, scheduler, model.NewDialogFactory(deps), NewExpandAnimator(scheduler))
}

// Run runs the program until it quits. A dialog still live at that point is
// dismissed so its binding is released.
func (p *Program) Run() error {
	_, err := p.Program.Run()
	p.scheduler.Stop()
	if d := p.model.ScheduleDialog(); d != nil {
		logging.Debug(subsystem, "Program stopped with the dialog open, dismissing it")
		d.Dismiss()
	}
	return err
}
