package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// JumpingText renders a string with each character hopping upward in
// sequence.
//
// JumpingText is a thin adapter: it splits the string into per-character
// Text cells and hands them to [CollectionSlideTransition], which owns the
// animation. End, Duration, and Direction pass through unchanged, so their
// zero values pick up that widget's defaults (half a character height
// upward, ping-pong).
type JumpingText struct {
	core.StatelessBase

	// Text is the string to animate, one cell per character.
	Text string

	// Style controls the font, size, and color of every cell.
	// Zero means the theme's BodyLarge style.
	Style graphics.TextStyle

	// End is the jump target as a fraction of each character's size.
	End graphics.Offset

	// Duration is the length of one sweep.
	Duration time.Duration

	// Direction selects how the cycle repeats.
	Direction stagger.RepeatMode

	// Alignment positions the cells along the row's main axis.
	Alignment widgets.MainAxisAlignment
}

func (j JumpingText) Build(ctx core.BuildContext) core.Widget {
	return CollectionSlideTransition{
		Children:  characterCells(j.Text, resolveStyle(ctx, j.Style)),
		End:       j.End,
		Duration:  j.Duration,
		Direction: j.Direction,
		Alignment: j.Alignment,
	}
}
