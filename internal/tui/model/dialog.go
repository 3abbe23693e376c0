package model

import (
	"context"
	"fmt"
	"time"

	"trainctl/internal/binding"
	"trainctl/internal/config"
	"trainctl/internal/dialog"
	"trainctl/internal/journey"
	"trainctl/internal/provider"
	"trainctl/pkg/logging"
)

const dialogSubsystem = "ScheduleDialog"

const (
	dialogMaxWidth  = 56
	dialogMaxHeight = 22
	dialogMinWidth  = 24
	dialogMinHeight = 8
)

// DialogDeps are the collaborators every schedule dialog shares.
type DialogDeps struct {
	Binder  binding.Binder
	Plans   []config.Plan
	Timeout time.Duration
}

// ScheduleDialog lists the next journeys of one plan at a time. The provider
// callback arrives on the binder's goroutine and only posts to the scheduler;
// everything else runs on the UI goroutine.
type ScheduleDialog struct {
	owner     *dialog.Controller
	display   dialog.Display
	scheduler dialog.Scheduler
	binder    binding.Binder
	conn      *provider.Connection
	timeout   time.Duration

	Plans     []config.Plan
	PlanIndex int
	Visible   bool
	Backdrop  bool
	Bounds    Rect
	Loading   bool
	Journeys  journey.List
	Err       error

	provider  provider.Provider
	seq       int
	bound     bool
	dismissed bool
}

// NewScheduleDialog builds a hidden dialog. It panics without plans.
func NewScheduleDialog(display dialog.Display, scheduler dialog.Scheduler, owner *dialog.Controller, deps DialogDeps) *ScheduleDialog {
	if len(deps.Plans) == 0 {
		panic("schedule dialog needs at least one plan")
	}

	d := &ScheduleDialog{
		owner:     owner,
		display:   display,
		scheduler: scheduler,
		binder:    deps.Binder,
		timeout:   deps.Timeout,
		Plans:     deps.Plans,
	}
	if d.timeout <= 0 {
		d.timeout = config.DefaultTimeout
	}
	d.conn = provider.NewConnection(d.onProvider)
	return d
}

// Show implements dialog.Dialog. The first call binds to the provider.
func (d *ScheduleDialog) Show() {
	if d.dismissed {
		return
	}
	d.Visible = true
	d.Bounds = d.FinalBounds()

	if d.bound {
		return
	}
	d.bound = true
	d.Loading = true
	if err := d.binder.Bind(context.Background(), provider.ScheduleIdentity, d.conn); err != nil {
		logging.Error(dialogSubsystem, err, "Binding %s failed", provider.ScheduleIdentity)
		d.bound = false
		d.Loading = false
		d.Err = fmt.Errorf("connecting to the schedule provider: %w", err)
	}
}

// Dismiss hides the dialog, releases the controller's slot and unbinds.
// Later calls do nothing.
func (d *ScheduleDialog) Dismiss() {
	if d.dismissed {
		return
	}
	d.dismissed = true
	d.Visible = false
	d.Loading = false

	d.owner.DestroyDialog()
	if d.bound {
		d.binder.Unbind(d.conn)
	}
}

// NextPlan moves to the next plan, wrapping around, and requests its
// journeys. It is ignored until the provider has been delivered.
func (d *ScheduleDialog) NextPlan() bool {
	if d.provider == nil {
		logging.Debug(dialogSubsystem, "Provider not connected yet, ignoring plan change")
		return false
	}
	d.PlanIndex = (d.PlanIndex + 1) % len(d.Plans)
	d.request()
	return true
}

// CurrentPlan returns the plan on screen.
func (d *ScheduleDialog) CurrentPlan() config.Plan {
	return d.Plans[d.PlanIndex]
}

// HasProvider reports whether the provider has been delivered.
func (d *ScheduleDialog) HasProvider() bool {
	return d.provider != nil
}

// Dismissed reports whether Dismiss has run.
func (d *ScheduleDialog) Dismissed() bool {
	return d.dismissed
}

// SetBounds moves and resizes the dialog. Used by the expand animation.
func (d *ScheduleDialog) SetBounds(r Rect) {
	d.Bounds = r
}

// SetBackdrop dims everything around the dialog while it is visible.
func (d *ScheduleDialog) SetBackdrop(on bool) {
	d.Backdrop = on
}

// FinalBounds is the centered rectangle the dialog settles in.
func (d *ScheduleDialog) FinalBounds() Rect {
	w, h := d.display.Size()
	width := clamp(w-4, dialogMinWidth, dialogMaxWidth)
	height := clamp(h-4, dialogMinHeight, dialogMaxHeight)
	return Rect{
		X:      max((w-width)/2, 0),
		Y:      max((h-height)/2, 0),
		Width:  width,
		Height: height,
	}
}

// onProvider is the connection's consumer.
func (d *ScheduleDialog) onProvider(p provider.Provider) {
	d.scheduler.Post(func() {
		d.providerReady(p)
	})
}

func (d *ScheduleDialog) providerReady(p provider.Provider) {
	if d.dismissed {
		return
	}
	d.provider = p
	d.request()
}

// request clears the list and fetches the current plan in the background.
func (d *ScheduleDialog) request() {
	d.seq++
	seq := d.seq
	plan := d.CurrentPlan()
	p := d.provider
	timeout := d.timeout

	d.Loading = true
	d.Journeys = nil
	d.Err = nil
	logging.Debug(dialogSubsystem, "Requesting journeys %s", plan.Title())

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		list, err := provider.RequestJourneys(ctx, p, provider.Query{From: plan.From, To: plan.To})
		d.scheduler.Post(func() {
			d.journeysLoaded(seq, list, err)
		})
	}()
}

func (d *ScheduleDialog) journeysLoaded(seq int, list journey.List, err error) {
	if d.dismissed || seq != d.seq {
		return
	}
	d.Loading = false
	if err != nil {
		logging.Error(dialogSubsystem, err, "Journey request failed")
		d.Err = err
		return
	}
	logging.Debug(dialogSubsystem, "Received %d journeys", len(list))
	d.Journeys = list
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

var _ dialog.Dialog = (*ScheduleDialog)(nil)
