package stagger

import (
	"fmt"

	"github.com/go-drift/drift/pkg/animation"
)

// RepeatMode selects how a [Repeater] cycles its controller.
type RepeatMode int

const (
	// RepeatPingPong alternates direction each sweep: up, down, up again.
	// This is the default mode.
	RepeatPingPong RepeatMode = iota
	// RepeatForward sweeps 0 to 1, snaps back to 0, and sweeps again.
	RepeatForward
	// RepeatReverse sweeps 1 to 0, snaps back to 1, and sweeps again.
	RepeatReverse
)

// String returns a human-readable representation of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatPingPong:
		return "ping-pong"
	case RepeatForward:
		return "forward"
	case RepeatReverse:
		return "reverse"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

// Repeater keeps an [animation.AnimationController] running indefinitely.
//
// The controller itself is a single-sweep primitive: it stops when it reaches
// a bound. Repeater subscribes to its status stream and re-triggers the next
// sweep according to the [RepeatMode], so a widget gets a perpetual cycle
// from one controller. One sweep takes the controller's Duration; a full
// ping-pong cycle is two sweeps.
//
// The Repeater does not own the controller. Dispose stops re-triggering and
// unsubscribes, but the controller must be disposed by whoever created it.
type Repeater struct {
	controller  *animation.AnimationController
	mode        RepeatMode
	unsubscribe func()
	running     bool
}

// NewRepeater creates a repeater for the controller in the given mode.
// The cycle does not begin until Start is called.
func NewRepeater(controller *animation.AnimationController, mode RepeatMode) *Repeater {
	r := &Repeater{
		controller: controller,
		mode:       mode,
	}
	r.unsubscribe = controller.AddStatusListener(r.onStatus)
	return r
}

// Mode returns the repeat mode.
func (r *Repeater) Mode() RepeatMode {
	return r.mode
}

// IsRunning returns true while the repeater is cycling its controller.
func (r *Repeater) IsRunning() bool {
	return r.running
}

// Start begins the perpetual cycle. Calling Start on a running repeater is a
// no-op.
func (r *Repeater) Start() {
	if r.running {
		return
	}
	r.running = true
	switch r.mode {
	case RepeatReverse:
		r.controller.Value = r.controller.UpperBound
		r.controller.Reverse()
	default:
		r.controller.Forward()
	}
}

// Stop halts the cycle at the current value. The controller stops
// synchronously; no further sweeps are triggered until Start is called again.
func (r *Repeater) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.controller.Stop()
}

// Dispose stops the cycle and detaches from the controller. The repeater
// must not be used afterwards.
func (r *Repeater) Dispose() {
	r.Stop()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

func (r *Repeater) onStatus(status animation.AnimationStatus) {
	if !r.running {
		return
	}
	switch r.mode {
	case RepeatForward:
		if status == animation.AnimationCompleted {
			r.controller.Reset()
			r.controller.Forward()
		}
	case RepeatReverse:
		if status == animation.AnimationDismissed {
			r.controller.Value = r.controller.UpperBound
			r.controller.Reverse()
		}
	case RepeatPingPong:
		switch status {
		case animation.AnimationCompleted:
			r.controller.Reverse()
		case animation.AnimationDismissed:
			r.controller.Forward()
		}
	}
}
