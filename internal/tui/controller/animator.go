package controller

import (
	"math"
	"time"

	"trainctl/internal/dialog"
	"trainctl/internal/tui/model"
)

const (
	defaultAnimationFrames   = 8
	defaultAnimationInterval = 16 * time.Millisecond
)

// animatable is a dialog the expand animation can resize.
type animatable interface {
	dialog.Dialog
	SetBounds(r model.Rect)
	SetBackdrop(on bool)
	FinalBounds() model.Rect
}

// ExpandAnimator grows a dialog out of its anchor's rectangle. Frames are
// posted through the scheduler from a goroutine of their own.
type ExpandAnimator struct {
	scheduler dialog.Scheduler
	frames    int
	interval  time.Duration
}

// NewExpandAnimator returns an animator with the default frame count and pace.
func NewExpandAnimator(scheduler dialog.Scheduler) *ExpandAnimator {
	return &ExpandAnimator{
		scheduler: scheduler,
		frames:    defaultAnimationFrames,
		interval:  defaultAnimationInterval,
	}
}

// ShowFromView implements dialog.Animator.
func (a *ExpandAnimator) ShowFromView(d dialog.Dialog, anchor *dialog.Anchor, animateBackgroundBoundsChange bool) {
	target, ok := d.(animatable)
	if !ok || anchor == nil {
		a.scheduler.Post(d.Show)
		return
	}

	from := model.Rect{X: anchor.X, Y: anchor.Y, Width: anchor.Width, Height: anchor.Height}
	a.scheduler.Post(func() {
		target.Show()
		target.SetBackdrop(animateBackgroundBoundsChange)
		target.SetBounds(from)
	})

	go func() {
		for i := 1; i <= a.frames; i++ {
			time.Sleep(a.interval)
			progress := float64(i) / float64(a.frames)
			a.scheduler.Post(func() {
				target.SetBounds(Interpolate(from, target.FinalBounds(), progress))
			})
		}
	}()
}

// Interpolate returns the rectangle progress of the way from a to b.
// progress is clamped to [0, 1].
func Interpolate(a, b model.Rect, progress float64) model.Rect {
	progress = min(max(progress, 0), 1)
	lerp := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*progress))
	}
	return model.Rect{
		X:      lerp(a.X, b.X),
		Y:      lerp(a.Y, b.Y),
		Width:  lerp(a.Width, b.Width),
		Height: lerp(a.Height, b.Height),
	}
}

var _ dialog.Animator = (*ExpandAnimator)(nil)
