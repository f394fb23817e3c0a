package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// DefaultGlowDuration is the length of one fade (in or out) when
// [GlowingProgressIndicator].Duration is zero.
const DefaultGlowDuration = time.Second

// GlowingProgressIndicator fades its child in and out continuously.
type GlowingProgressIndicator struct {
	core.StatefulBase

	// Child is the widget to fade.
	Child core.Widget

	// Duration is the length of one fade. Zero means DefaultGlowDuration.
	Duration time.Duration
}

func (g GlowingProgressIndicator) CreateState() core.State {
	return &glowingState{}
}

type glowingState struct {
	core.StateBase
	controller *animation.AnimationController
	repeater   *stagger.Repeater
}

func (s *glowingState) InitState() {
	w := s.Element().Widget().(GlowingProgressIndicator)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(cycleDuration(w.Duration, DefaultGlowDuration))
		c.Curve = animation.EaseInOut
		return c
	})
	core.UseListenable(s, s.controller)
	s.repeater = stagger.NewRepeater(s.controller, stagger.RepeatPingPong)
	s.OnDispose(s.repeater.Dispose)
	s.repeater.Start()
}

func (s *glowingState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(GlowingProgressIndicator)
	s.controller.Duration = cycleDuration(w.Duration, DefaultGlowDuration)
}

func (s *glowingState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(GlowingProgressIndicator)
	return widgets.Opacity{
		Opacity: s.controller.Value,
		Child:   w.Child,
	}
}
