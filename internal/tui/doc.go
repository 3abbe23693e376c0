// Package tui hosts the trainctl terminal UI.
//
// The code follows a model/view/controller split:
//
//   - model: the bubbletea state, including the schedule dialog and its
//     provider plumbing
//   - view: pure rendering of the model with lipgloss
//   - controller: message routing, key handling, the program scheduler and the
//     expand animation
//
// The dashboard shows a single "Trains" tile. Opening it asks a
// dialog.Controller for the schedule dialog, so pressing Enter repeatedly
// never stacks dialogs. Work that finishes off the UI goroutine comes back
// through controller.ProgramScheduler as a RunOnUIMsg.
package tui
