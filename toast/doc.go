// Package toast shows short-lived notifications stacked at the bottom of a
// Bubble Tea program.
//
// A Manager is the display: it owns the visible toasts, their auto-hide
// timers and the layout of the stack. Show is the process-wide entry point.
// It forwards to the mounted Manager, or buffers until one mounts.
//
//	m := toast.New(toast.DefaultOptions())
//	...
//	toast.ShowText("Saved")
//
// Toasts hide after Options.HideTimeout. Hovering the stack pauses every
// timer; leaving it restarts them with a small per-position stagger so the
// stack doesn't vanish at once. At most Options.Capacity toasts are active;
// older ones are pushed into their hiding phase and removed by a deferred
// sweep once Options.HideGrace has passed.
package toast
