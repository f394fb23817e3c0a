// Package stagger schedules per-item animation timing for collection
// animations.
//
// A staggered animation drives every item of a collection from one shared
// [animation.AnimationController], offsetting each item in time so the effect
// sweeps across the collection instead of firing all at once. The package has
// three pieces:
//
//   - [Partition]: splits the leading share of the shared progress range into
//     equal per-item windows.
//
//   - [Interval]: maps a window of shared progress onto a full 0-1 curve,
//     clamped outside the window.
//
//   - [Repeater]: keeps a controller running forever in one of three repeat
//     modes (forward, reverse, ping-pong).
//
// Typical use:
//
//	windows := stagger.Partition(len(items))
//	curves := make([]func(float64) float64, len(items))
//	for i, w := range windows {
//	    curves[i] = w.Interval(animation.EaseInOut)
//	}
//	repeater := stagger.NewRepeater(controller, stagger.RepeatPingPong)
//	repeater.Start()
//	// per frame: value for item i is curves[i](controller.Value)
package stagger

// FixedRange is the share of the shared progress range distributed across
// item windows. Items finish their individual sweeps by FixedRange; the
// remainder of the cycle is a hold so the collection is briefly at rest
// before the cycle repeats or reverses.
const FixedRange = 0.6

// Window is one item's sub-interval of shared animation progress.
type Window struct {
	Start float64
	End   float64
}

// Width returns the length of the window.
func (w Window) Width() float64 {
	return w.End - w.Start
}

// Interval returns a curve that samples this window from shared progress.
// See [Interval] for the clamping behavior.
func (w Window) Interval(curve func(float64) float64) func(float64) float64 {
	return Interval(w.Start, w.End, curve)
}

// Partition splits [0, FixedRange] into n equal, contiguous windows in item
// order. Window i covers [i*width, (i+1)*width] with width = FixedRange / n.
// Returns nil when n <= 0.
func Partition(n int) []Window {
	if n <= 0 {
		return nil
	}
	width := FixedRange / float64(n)
	windows := make([]Window, n)
	for i := range windows {
		start := float64(i) * width
		windows[i] = Window{Start: start, End: start + width}
	}
	return windows
}

// Interval maps the sub-range [start, end] of shared progress onto the full
// range of curve. Progress at or before start yields 0, at or after end
// yields 1; in between the normalized position is passed through curve.
//
// This is how one controller drives many items with individual timing: every
// item samples the same progress value through its own interval.
func Interval(start, end float64, curve func(float64) float64) func(float64) float64 {
	width := end - start
	return func(t float64) float64 {
		if t <= start {
			return 0
		}
		if t >= end || width <= 0 {
			return 1
		}
		local := (t - start) / width
		if curve == nil {
			return local
		}
		return curve(local)
	}
}
