package dialog

import "trainctl/pkg/logging"

const subsystem = "DialogController"

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateShowing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateShowing:
		return "Showing"
	default:
		return "Unknown"
	}
}

// Controller keeps at most one schedule dialog alive. It is not safe for
// concurrent use; every call must come from the UI goroutine.
type Controller struct {
	display   Display
	scheduler Scheduler
	factory   Factory
	animator  Animator

	current Dialog
}

// NewController creates an idle controller. animator may be nil, in which
// case dialogs are always shown without a transition.
func NewController(display Display, scheduler Scheduler, factory Factory, animator Animator) *Controller {
	return &Controller{
		display:   display,
		scheduler: scheduler,
		factory:   factory,
		animator:  animator,
	}
}

// Create builds and shows a dialog, animated from anchor when it is not nil.
// It does nothing while a dialog is already live.
func (c *Controller) Create(anchor *Anchor) {
	if c.current != nil {
		logging.Debug(subsystem, "Schedule dialog is showing, not creating it twice")
		return
	}

	d := c.factory.NewDialog(c.display, c.scheduler, c)
	c.current = d

	if anchor != nil && c.animator != nil {
		c.animator.ShowFromView(d, anchor, true)
	} else {
		d.Show()
	}
}

// DestroyDialog forgets the current dialog. The dialog is expected to have
// torn itself down already. Calling it while idle is a no-op.
func (c *Controller) DestroyDialog() {
	logging.Debug(subsystem, "destroyDialog")
	c.current = nil
}

// State reports whether a dialog is live.
func (c *Controller) State() State {
	if c.current == nil {
		return StateIdle
	}
	return StateShowing
}

// Current returns the live dialog, or nil.
func (c *Controller) Current() Dialog {
	return c.current
}
