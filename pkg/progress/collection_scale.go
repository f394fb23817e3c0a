package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// DefaultScaleEnd is the peak scale factor when
// [CollectionScaleTransition].End is zero.
const DefaultScaleEnd = 2.0

// CollectionScaleTransition animates an ordered list of children from their
// natural size to End times that size and back, staggered so the growth
// sweeps across the collection. [ScalingText] is this widget applied to the
// characters of a string.
//
// Scaling happens at paint time only; layout keeps every child's unscaled
// size, so the row does not jitter while cells grow.
type CollectionScaleTransition struct {
	core.StatefulBase

	// Children are animated in order; the first child grows first.
	Children []core.Widget

	// End is the peak scale factor. Zero means DefaultScaleEnd.
	End float64

	// Duration is the length of one sweep. Zero means
	// DefaultCollectionDuration.
	Duration time.Duration

	// Direction selects how the cycle repeats.
	Direction stagger.RepeatMode

	// Alignment positions the children along the row's main axis.
	Alignment widgets.MainAxisAlignment
}

func (c CollectionScaleTransition) CreateState() core.State {
	return &collectionScaleState{}
}

type collectionScaleState struct {
	core.StateBase
	controller *animation.AnimationController
	repeater   *stagger.Repeater
	curves     []func(float64) float64
}

func (s *collectionScaleState) InitState() {
	w := s.Element().Widget().(CollectionScaleTransition)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(cycleDuration(w.Duration, DefaultCollectionDuration))
		c.Curve = animation.LinearCurve
		return c
	})
	core.UseListenable(s, s.controller)
	s.OnDispose(func() {
		if s.repeater != nil {
			s.repeater.Dispose()
		}
	})
	s.attach(w)
}

func (s *collectionScaleState) attach(w CollectionScaleTransition) {
	s.curves = staggerCurves(len(w.Children))
	if s.repeater != nil {
		s.repeater.Dispose()
	}
	s.repeater = stagger.NewRepeater(s.controller, w.Direction)
	if len(w.Children) > 0 {
		s.repeater.Start()
	}
}

func (s *collectionScaleState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(CollectionScaleTransition)
	w := s.Element().Widget().(CollectionScaleTransition)

	s.controller.Duration = cycleDuration(w.Duration, DefaultCollectionDuration)
	if len(w.Children) == len(old.Children) && w.Direction == old.Direction {
		return
	}
	if w.Direction != old.Direction {
		s.controller.Reset()
	}
	s.attach(w)
}

func (s *collectionScaleState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(CollectionScaleTransition)
	if len(w.Children) == 0 {
		return widgets.SizedBox{}
	}

	end := w.End
	if end == 0 {
		end = DefaultScaleEnd
	}
	t := s.controller.Value
	cells := make([]core.Widget, len(w.Children))
	for i, child := range w.Children {
		v := s.curves[i](t)
		cells[i] = ScaleTransition{
			Scale:       1 + (end-1)*v,
			ChildWidget: child,
		}
	}

	return widgets.Row{
		Children:           cells,
		MainAxisAlignment:  w.Alignment,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		MainAxisSize:       widgets.MainAxisSizeMin,
	}
}
