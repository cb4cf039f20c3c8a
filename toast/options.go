package toast

import "time"

type Options struct {
	// HideTimeout is how long a toast stays before it starts hiding.
	HideTimeout time.Duration
	// Stagger is added per position when timers restart after a pause.
	Stagger time.Duration
	// SweepDelay is the delay between a hide and the sweep that removes it.
	// It is raised to HideGrace when shorter.
	SweepDelay time.Duration
	// HideGrace is the minimum time a toast spends hiding before removal.
	HideGrace time.Duration

	Capacity   int
	BaseMargin int // rows between the bottom edge and the newest toast
	Width      int // box width in columns, borders included

	RenderEmpty   bool // View draws an empty placeholder when there are no toasts; Overlay never does
	ClickRestarts bool // a click on the stack restarts every timer
}

func DefaultOptions() Options {
	return Options{
		HideTimeout:   4 * time.Second,
		Stagger:       100 * time.Millisecond,
		SweepDelay:    time.Second,
		HideGrace:     700 * time.Millisecond,
		Capacity:      3,
		BaseMargin:    1,
		Width:         44,
		ClickRestarts: true,
	}
}

// normalize replaces unusable values with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.HideTimeout <= 0 {
		o.HideTimeout = d.HideTimeout
	}
	if o.Stagger < 0 {
		o.Stagger = 0
	}
	if o.SweepDelay <= 0 {
		o.SweepDelay = d.SweepDelay
	}
	if o.HideGrace < 0 {
		o.HideGrace = 0
	}
	// A sweep runs once per hide, so it must not come before the grace ends.
	if o.SweepDelay < o.HideGrace {
		o.SweepDelay = o.HideGrace
	}
	if o.Capacity <= 0 {
		o.Capacity = d.Capacity
	}
	if o.BaseMargin < 0 {
		o.BaseMargin = 0
	}
	if o.Width < minWidth {
		o.Width = d.Width
	}
	return o
}
