package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// ScalingText renders a string with each character growing and shrinking in
// sequence. Like [JumpingText] it is a thin adapter over the generic
// collection widget, here [CollectionScaleTransition]; zero End, Duration,
// and Direction pick up that widget's defaults (double size, ping-pong).
type ScalingText struct {
	core.StatelessBase

	// Text is the string to animate, one cell per character.
	Text string

	// Style controls the font, size, and color of every cell.
	// Zero means the theme's BodyLarge style.
	Style graphics.TextStyle

	// End is the peak scale factor.
	End float64

	// Duration is the length of one sweep.
	Duration time.Duration

	// Direction selects how the cycle repeats.
	Direction stagger.RepeatMode

	// Alignment positions the cells along the row's main axis.
	Alignment widgets.MainAxisAlignment
}

func (s ScalingText) Build(ctx core.BuildContext) core.Widget {
	return CollectionScaleTransition{
		Children:  characterCells(s.Text, resolveStyle(ctx, s.Style)),
		End:       s.End,
		Duration:  s.Duration,
		Direction: s.Direction,
		Alignment: s.Alignment,
	}
}
