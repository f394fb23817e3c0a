package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

const (
	// DefaultHeartbeatDuration is the length of one beat (grow or shrink)
	// when [HeartbeatProgressIndicator].Duration is zero.
	DefaultHeartbeatDuration = 1200 * time.Millisecond

	// DefaultHeartbeatEnd is the peak scale factor when
	// [HeartbeatProgressIndicator].End is zero.
	DefaultHeartbeatEnd = 1.2
)

// HeartbeatProgressIndicator pulses its child between its natural size and
// End times that size, like a beating heart. Commonly wrapped around an
// icon while content loads.
type HeartbeatProgressIndicator struct {
	core.StatefulBase

	// Child is the widget to pulse.
	Child core.Widget

	// End is the peak scale factor. Zero means DefaultHeartbeatEnd.
	End float64

	// Duration is the length of one beat. Zero means
	// DefaultHeartbeatDuration.
	Duration time.Duration
}

func (h HeartbeatProgressIndicator) CreateState() core.State {
	return &heartbeatState{}
}

type heartbeatState struct {
	core.StateBase
	controller *animation.AnimationController
	repeater   *stagger.Repeater
}

func (s *heartbeatState) InitState() {
	w := s.Element().Widget().(HeartbeatProgressIndicator)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(cycleDuration(w.Duration, DefaultHeartbeatDuration))
		c.Curve = animation.EaseInOut
		return c
	})
	core.UseListenable(s, s.controller)
	s.repeater = stagger.NewRepeater(s.controller, stagger.RepeatPingPong)
	s.OnDispose(s.repeater.Dispose)
	s.repeater.Start()
}

func (s *heartbeatState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(HeartbeatProgressIndicator)
	s.controller.Duration = cycleDuration(w.Duration, DefaultHeartbeatDuration)
}

func (s *heartbeatState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(HeartbeatProgressIndicator)
	end := w.End
	if end == 0 {
		end = DefaultHeartbeatEnd
	}
	return ScaleTransition{
		Scale:       1 + (end-1)*s.controller.Value,
		ChildWidget: w.Child,
	}
}
