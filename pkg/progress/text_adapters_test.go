package progress_test

import (
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	drifttest "github.com/go-drift/drift/pkg/testing"

	"github.com/go-drift/progress-indicators/pkg/progress"
)

func TestJumpingText_DelegatesToCollectionSlide(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.JumpingText{Text: "Go!"})

	if !tester.Find(drifttest.ByType[progress.CollectionSlideTransition]()).Exists() {
		t.Fatal("expected a CollectionSlideTransition under JumpingText")
	}
	if got := tester.Find(drifttest.ByType[progress.FractionalTranslation]()).Count(); got != 3 {
		t.Fatalf("expected 3 cells, got %d", got)
	}
	if joined := joinTextCells(t, tester); joined != "Go!" {
		t.Errorf("cells out of order: %q", joined)
	}
}

func TestJumpingText_DefaultJumpHeight(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.JumpingText{Text: "Go"})

	// Past every stagger window: all cells at the full jump offset.
	tester.Clock().Advance(time.Second)
	tester.Pump()

	for i, e := range tester.Find(drifttest.ByType[progress.FractionalTranslation]()).All() {
		tr := e.Widget().(progress.FractionalTranslation).Translation
		if !almostEqual(tr.Y, -0.5) {
			t.Errorf("cell %d jump offset = %f, want -0.5", i, tr.Y)
		}
	}
}

func TestJumpingText_EmptyText(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.JumpingText{})

	if tester.Find(drifttest.ByType[progress.FractionalTranslation]()).Exists() {
		t.Error("empty text should render no cells")
	}
	if animation.HasActiveTickers() {
		t.Error("empty text should schedule no animation")
	}
}

func TestScalingText_DelegatesToCollectionScale(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.ScalingText{Text: "Up"})

	if !tester.Find(drifttest.ByType[progress.CollectionScaleTransition]()).Exists() {
		t.Fatal("expected a CollectionScaleTransition under ScalingText")
	}
	if got := tester.Find(drifttest.ByType[progress.ScaleTransition]()).Count(); got != 2 {
		t.Fatalf("expected 2 cells, got %d", got)
	}
}

func TestScalingText_CustomEnd(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(progress.ScalingText{Text: "Up", End: 3})

	tester.Clock().Advance(time.Second)
	tester.Pump()

	for i, e := range tester.Find(drifttest.ByType[progress.ScaleTransition]()).All() {
		if scale := e.Widget().(progress.ScaleTransition).Scale; !almostEqual(scale, 3) {
			t.Errorf("cell %d scale = %f, want 3", i, scale)
		}
	}
}
