package dialog

// Dialog is a schedule dialog built by a Factory.
type Dialog interface {
	// Show makes the dialog visible without any transition.
	Show()
}

// Anchor is the screen element a dialog is opened from.
type Anchor struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// Display is whatever surface dialogs are drawn on.
type Display interface {
	Size() (width, height int)
}

// Scheduler runs functions on the UI goroutine.
type Scheduler interface {
	Post(fn func())
}

// Factory builds dialogs. NewDialog must not show the dialog.
type Factory interface {
	NewDialog(display Display, scheduler Scheduler, owner *Controller) Dialog
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(display Display, scheduler Scheduler, owner *Controller) Dialog

// NewDialog implements Factory.
func (f FactoryFunc) NewDialog(display Display, scheduler Scheduler, owner *Controller) Dialog {
	return f(display, scheduler, owner)
}

// Animator shows a dialog with an entrance transition from anchor. It returns
// immediately; the transition runs on its own.
type Animator interface {
	ShowFromView(d Dialog, anchor *Anchor, animateBackgroundBoundsChange bool)
}
