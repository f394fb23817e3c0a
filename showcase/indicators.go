package main

import (
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/progress"
	"github.com/go-drift/progress-indicators/pkg/stagger"
)

// buildIndicatorsPage lays out one section per indicator family.
func buildIndicatorsPage(ctx core.BuildContext) core.Widget {
	colors := theme.ColorsOf(ctx)

	return widgets.ScrollView{
		Padding: layout.EdgeInsetsAll(20),
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children: []core.Widget{
				sectionTitle("Fading text", colors),
				widgets.VSpace(12),
				progress.FadingText{Text: "Loading..."},
				widgets.VSpace(8),
				progress.FadingText{
					Text:      "One-way sweep",
					Direction: stagger.RepeatForward,
					Style:     labelStyle(colors),
				},
				widgets.VSpace(24),

				sectionTitle("Jumping text", colors),
				widgets.VSpace(12),
				progress.JumpingText{Text: "Fetching results"},
				widgets.VSpace(8),
				progress.JumpingText{
					Text:     "Slow and high",
					End:      graphics.Offset{Y: -1},
					Duration: 2 * time.Second,
					Style:    labelStyle(colors),
				},
				widgets.VSpace(24),

				sectionTitle("Scaling text", colors),
				widgets.VSpace(12),
				progress.ScalingText{Text: "GO", End: 1.5},
				widgets.VSpace(24),

				sectionTitle("Collection transitions", colors),
				widgets.VSpace(12),
				widgets.Text{Content: "Any children, not just characters:", Style: labelStyle(colors)},
				widgets.VSpace(8),
				progress.CollectionSlideTransition{
					Children: dots(colors.Primary),
					End:      graphics.Offset{Y: -0.8},
				},
				widgets.VSpace(12),
				progress.CollectionScaleTransition{
					Children: dots(colors.Tertiary),
					End:      1.6,
				},
				widgets.VSpace(24),

				sectionTitle("Single-child indicators", colors),
				widgets.VSpace(12),
				widgets.Row{
					MainAxisAlignment:  widgets.MainAxisAlignmentStart,
					CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
					MainAxisSize:       widgets.MainAxisSizeMin,
					Children: []core.Widget{
						progress.HeartbeatProgressIndicator{
							Child: widgets.Container{Width: 16, Height: 16, Color: colors.Error},
						},
						widgets.HSpace(24),
						progress.GlowingProgressIndicator{
							Child: widgets.Container{Width: 16, Height: 16, Color: colors.Secondary},
						},
					},
				},
				widgets.VSpace(40),
			},
		},
	}
}

// dots builds a short row of square cells for the collection demos.
// Spacing is baked into each cell so every animated child is a dot.
func dots(color graphics.Color) []core.Widget {
	cells := make([]core.Widget, 5)
	for i := range cells {
		cells[i] = widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(3, 0),
			Child:   widgets.Container{Width: 10, Height: 10, Color: color},
		}
	}
	return cells
}
