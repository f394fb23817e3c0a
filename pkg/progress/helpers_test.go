package progress_test

import (
	"math"
	"testing"

	"github.com/go-drift/drift/pkg/graphics"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

func graphicsStyle(fontSize float64) graphics.TextStyle {
	return graphics.TextStyle{FontSize: fontSize}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// cellOpacities collects the Opacity values of all opacity cells in order.
func cellOpacities(t *testing.T, tester *drifttest.WidgetTester) []float64 {
	t.Helper()
	result := tester.Find(drifttest.ByType[widgets.Opacity]())
	values := make([]float64, 0, result.Count())
	for _, e := range result.All() {
		values = append(values, e.Widget().(widgets.Opacity).Opacity)
	}
	return values
}

// joinTextCells concatenates the contents of all Text cells in order.
func joinTextCells(t *testing.T, tester *drifttest.WidgetTester) string {
	t.Helper()
	var joined string
	for _, e := range tester.Find(drifttest.ByType[widgets.Text]()).All() {
		joined += e.Widget().(widgets.Text).Content
	}
	return joined
}
