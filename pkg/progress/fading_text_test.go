package progress_test

import (
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/progress-indicators/pkg/progress"
	"github.com/go-drift/progress-indicators/pkg/stagger"
)

func TestFadingText_OneCellPerCharacter(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "Load"})

	if got := tester.Find(drifttest.ByType[widgets.Opacity]()).Count(); got != 4 {
		t.Fatalf("expected 4 opacity cells, got %d", got)
	}
	if joined := joinTextCells(t, tester); joined != "Load" {
		t.Errorf("cells out of order: %q", joined)
	}
}

func TestFadingText_SplitsByCodePoint(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "Gö"})

	if got := tester.Find(drifttest.ByType[widgets.Opacity]()).Count(); got != 2 {
		t.Fatalf("expected 2 cells for 2 code points, got %d", got)
	}
	if joined := joinTextCells(t, tester); joined != "Gö" {
		t.Errorf("cells out of order: %q", joined)
	}
}

func TestFadingText_StaggersAcrossCells(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "AB"})

	// 300ms into the 2s cycle: progress 0.15 sits inside the first cell's
	// window [0, 0.3] and before the second cell's window [0.3, 0.6].
	tester.Clock().Advance(300 * time.Millisecond)
	tester.Pump()

	ops := cellOpacities(t, tester)
	if len(ops) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(ops))
	}
	if ops[0] <= 0 || ops[0] >= 1 {
		t.Errorf("first cell should be mid-fade, got %f", ops[0])
	}
	if ops[1] != 0 {
		t.Errorf("second cell should not have started, got %f", ops[1])
	}
}

func TestFadingText_HoldsFullyOpaqueAfterSweep(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "AB"})

	// Progress 0.7 is past every cell's window but before the cycle end.
	tester.Clock().Advance(1400 * time.Millisecond)
	tester.Pump()

	for i, op := range cellOpacities(t, tester) {
		if op != 1 {
			t.Errorf("cell %d should be fully opaque during the hold, got %f", i, op)
		}
	}
}

func TestFadingText_CustomDuration(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "AB", Duration: time.Second})

	// Same progress 0.15 as the default-duration case, reached sooner.
	tester.Clock().Advance(150 * time.Millisecond)
	tester.Pump()

	ops := cellOpacities(t, tester)
	if ops[0] <= 0 || ops[0] >= 1 {
		t.Errorf("first cell should be mid-fade, got %f", ops[0])
	}
	if ops[1] != 0 {
		t.Errorf("second cell should not have started, got %f", ops[1])
	}
}

func TestFadingText_ForwardModeWrapsToZero(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "AB", Direction: stagger.RepeatForward})

	// One full cycle: the sweep completes and snaps back to the start.
	tester.Clock().Advance(2 * time.Second)
	tester.Pump()

	for i, op := range cellOpacities(t, tester) {
		if op != 0 {
			t.Errorf("cell %d should be transparent at cycle start, got %f", i, op)
		}
	}
	if !animation.HasActiveTickers() {
		t.Error("forward mode should keep cycling")
	}
}

func TestFadingText_ReverseStartsOpaque(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "AB", Direction: stagger.RepeatReverse})

	for i, op := range cellOpacities(t, tester) {
		if op != 1 {
			t.Errorf("cell %d should start opaque in reverse mode, got %f", i, op)
		}
	}

	// 90% through the reverse sweep: progress 0.1, so the second cell has
	// faded out entirely and the first is mid-fade.
	tester.Clock().Advance(1800 * time.Millisecond)
	tester.Pump()

	ops := cellOpacities(t, tester)
	if ops[0] <= 0 || ops[0] >= 1 {
		t.Errorf("first cell should be mid-fade, got %f", ops[0])
	}
	if ops[1] != 0 {
		t.Errorf("second cell should have faded out, got %f", ops[1])
	}
}

func TestFadingText_EmptyStringRendersNothing(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{})

	if tester.Find(drifttest.ByType[widgets.Opacity]()).Exists() {
		t.Error("empty text should render no cells")
	}
	if tester.Find(drifttest.ByType[widgets.Text]()).Exists() {
		t.Error("empty text should render no text")
	}
	if animation.HasActiveTickers() {
		t.Error("empty text should schedule no animation")
	}
}

func TestFadingText_ReleasesClockOnUnmount(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.FadingText{Text: "Go"})
	if !animation.HasActiveTickers() {
		t.Fatal("animation should be running after mount")
	}

	tester.PumpWidget(widgets.SizedBox{})
	if animation.HasActiveTickers() {
		t.Error("animation should stop when the widget unmounts")
	}
}

func TestFadingText_CustomStylePropagatesToCells(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	style := graphicsStyle(28)
	tester.PumpWidget(progress.FadingText{Text: "Go", Style: style})

	for _, e := range tester.Find(drifttest.ByType[widgets.Text]()).All() {
		if got := e.Widget().(widgets.Text).Style.FontSize; got != 28 {
			t.Errorf("cell font size = %f, want 28", got)
		}
	}
}
