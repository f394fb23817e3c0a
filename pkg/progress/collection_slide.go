package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// DefaultCollectionDuration is the length of one sweep for the collection
// transitions when Duration is zero.
const DefaultCollectionDuration = 1250 * time.Millisecond

// DefaultSlideEnd is the slide target when [CollectionSlideTransition].End
// is zero: half the child's height upward.
var DefaultSlideEnd = graphics.Offset{Y: -0.5}

// CollectionSlideTransition animates an ordered list of children from their
// layout position to a fractional offset, staggered so the motion sweeps
// across the collection. [JumpingText] is this widget applied to the
// characters of a string, but children can be anything: icons, dots, badges.
//
// The offset is in units of each child's own size, so cells of different
// sizes travel proportionally.
type CollectionSlideTransition struct {
	core.StatefulBase

	// Children are animated in order; the first child moves first.
	Children []core.Widget

	// End is the target offset as a fraction of each child's size.
	// Zero means DefaultSlideEnd.
	End graphics.Offset

	// Duration is the length of one sweep. Zero means
	// DefaultCollectionDuration.
	Duration time.Duration

	// Direction selects how the cycle repeats.
	Direction stagger.RepeatMode

	// Alignment positions the children along the row's main axis.
	Alignment widgets.MainAxisAlignment
}

func (c CollectionSlideTransition) CreateState() core.State {
	return &collectionSlideState{}
}

type collectionSlideState struct {
	core.StateBase
	controller *animation.AnimationController
	repeater   *stagger.Repeater
	curves     []func(float64) float64
}

func (s *collectionSlideState) InitState() {
	w := s.Element().Widget().(CollectionSlideTransition)
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

func (s *collectionSlideState) attach(w CollectionSlideTransition) {
	s.curves = staggerCurves(len(w.Children))
	if s.repeater != nil {
		s.repeater.Dispose()
	}
	s.repeater = stagger.NewRepeater(s.controller, w.Direction)
	if len(w.Children) > 0 {
		s.repeater.Start()
	}
}

func (s *collectionSlideState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(CollectionSlideTransition)
	w := s.Element().Widget().(CollectionSlideTransition)

	s.controller.Duration = cycleDuration(w.Duration, DefaultCollectionDuration)
	if len(w.Children) == len(old.Children) && w.Direction == old.Direction {
		return
	}
	if w.Direction != old.Direction {
		s.controller.Reset()
	}
	s.attach(w)
}

func (s *collectionSlideState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(CollectionSlideTransition)
	if len(w.Children) == 0 {
		return widgets.SizedBox{}
	}

	end := w.End
	if end == (graphics.Offset{}) {
		end = DefaultSlideEnd
	}
	t := s.controller.Value
	cells := make([]core.Widget, len(w.Children))
	for i, child := range w.Children {
		v := s.curves[i](t)
		cells[i] = FractionalTranslation{
			Translation: graphics.Offset{X: end.X * v, Y: end.Y * v},
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
