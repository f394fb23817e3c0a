package progress

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// splitCharacters returns one cell string per Unicode code point of text.
// Returns nil for the empty string.
func splitCharacters(text string) []string {
	if text == "" {
		return nil
	}
	chars := make([]string, 0, len(text))
	for _, r := range text {
		chars = append(chars, string(r))
	}
	return chars
}

// characterCells builds one Text widget per character of text.
func characterCells(text string, style graphics.TextStyle) []core.Widget {
	chars := splitCharacters(text)
	cells := make([]core.Widget, len(chars))
	for i, ch := range chars {
		cells[i] = widgets.Text{Content: ch, Style: style}
	}
	return cells
}

// resolveStyle falls back to the theme's BodyLarge style when style is zero.
func resolveStyle(ctx core.BuildContext, style graphics.TextStyle) graphics.TextStyle {
	if style != (graphics.TextStyle{}) {
		return style
	}
	_, _, textTheme := theme.UseTheme(ctx)
	return textTheme.BodyLarge
}

// staggerCurves builds the per-cell interval curves for n cells.
func staggerCurves(n int) []func(float64) float64 {
	windows := stagger.Partition(n)
	curves := make([]func(float64) float64, len(windows))
	for i, w := range windows {
		curves[i] = w.Interval(animation.EaseInOut)
	}
	return curves
}

// cycleDuration resolves a widget's Duration field against its default.
func cycleDuration(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

func childOffset(child layout.RenderBox) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*layout.BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}
