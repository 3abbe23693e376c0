// Package dialog owns the lifecycle of the single schedule dialog.
//
// Controller has two states. It is Idle until Create builds a dialog through
// its Factory, and Showing until DestroyDialog clears the slot again. Create
// while Showing is a logged no-op, so at most one dialog exists at any time.
// Dialogs get the controller as their owner and call DestroyDialog when they
// are dismissed.
package dialog
