package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// DefaultFadeDuration is the length of one fade sweep when
// [FadingText].Duration is zero.
const DefaultFadeDuration = 2 * time.Second

// FadingText renders a string with each character fading in sequence, the
// classic "Loading..." shimmer.
//
// One controller drives the whole string. Each character gets an equal
// window of the leading portion of the cycle (see [stagger.Partition]), so
// the fade sweeps from the first character to the last and the string rests
// fully opaque for the remainder of the cycle.
//
// # Creation Pattern
//
// Use struct literal:
//
//	progress.FadingText{Text: "Loading..."}
//
//	progress.FadingText{
//	    Text:      "Loading...",
//	    Style:     graphics.TextStyle{FontSize: 24, Color: colors.Primary},
//	    Duration:  3 * time.Second,
//	    Direction: stagger.RepeatForward,
//	}
//
// The animation starts on mount and stops on unmount. An empty Text renders
// nothing and schedules no animation.
type FadingText struct {
	core.StatefulBase

	// Text is the string to animate, one cell per character.
	Text string

	// Style controls the font, size, and color of every cell.
	// Zero means the theme's BodyLarge style.
	Style graphics.TextStyle

	// Duration is the length of one sweep. Zero means DefaultFadeDuration.
	Duration time.Duration

	// Direction selects how the cycle repeats.
	Direction stagger.RepeatMode

	// Alignment positions the cells along the row's main axis.
	Alignment widgets.MainAxisAlignment
}

func (f FadingText) CreateState() core.State {
	return &fadingTextState{}
}

type fadingTextState struct {
	core.StateBase
	controller *animation.AnimationController
	repeater   *stagger.Repeater
	curves     []func(float64) float64
}

func (s *fadingTextState) InitState() {
	w := s.Element().Widget().(FadingText)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(cycleDuration(w.Duration, DefaultFadeDuration))
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

// attach rebuilds the per-cell curves and restarts the repeat cycle for the
// current widget configuration.
func (s *fadingTextState) attach(w FadingText) {
	chars := splitCharacters(w.Text)
	s.curves = staggerCurves(len(chars))
	if s.repeater != nil {
		s.repeater.Dispose()
	}
	s.repeater = stagger.NewRepeater(s.controller, w.Direction)
	if len(chars) > 0 {
		s.repeater.Start()
	}
}

func (s *fadingTextState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(FadingText)
	w := s.Element().Widget().(FadingText)

	s.controller.Duration = cycleDuration(w.Duration, DefaultFadeDuration)
	if w.Text == old.Text && w.Direction == old.Direction {
		return
	}
	if w.Direction != old.Direction {
		s.controller.Reset()
	}
	s.attach(w)
}

func (s *fadingTextState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(FadingText)
	chars := splitCharacters(w.Text)
	if len(chars) == 0 {
		return widgets.SizedBox{}
	}

	style := resolveStyle(ctx, w.Style)
	t := s.controller.Value
	cells := make([]core.Widget, len(chars))
	for i, ch := range chars {
		cells[i] = widgets.Opacity{
			Opacity: s.curves[i](t),
			Child:   widgets.Text{Content: ch, Style: style},
		}
	}

	return widgets.Row{
		Children:           cells,
		MainAxisAlignment:  w.Alignment,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		MainAxisSize:       widgets.MainAxisSizeMin,
	}
}
