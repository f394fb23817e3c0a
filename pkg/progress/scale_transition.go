package progress

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
)

// ScaleTransition scales its child around the child's center at paint time.
// Layout is unaffected: the widget occupies the child's unscaled size, so
// growing a cell overdraws its neighbors instead of pushing them aside.
//
// A Scale of zero or less paints nothing and ignores pointer events.
type ScaleTransition struct {
	core.RenderObjectBase
	Scale       float64
	ChildWidget core.Widget
}

func (s ScaleTransition) Child() core.Widget {
	return s.ChildWidget
}

func (s ScaleTransition) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderScaleTransition{scale: s.Scale}
	r.SetSelf(r)
	return r
}

func (s ScaleTransition) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderScaleTransition); ok {
		r.scale = s.Scale
		r.MarkNeedsPaint()
	}
}

type renderScaleTransition struct {
	layout.RenderBoxBase
	child layout.RenderBox
	scale float64
}

func (r *renderScaleTransition) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderScaleTransition) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderScaleTransition) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.SetSize(r.child.Size())
}

func (r *renderScaleTransition) Paint(ctx *layout.PaintContext) {
	if r.child == nil || r.scale <= 0 {
		return
	}
	size := r.Size()
	cx := size.Width / 2
	cy := size.Height / 2
	ctx.Canvas.Save()
	ctx.Canvas.Translate(cx, cy)
	ctx.Canvas.Scale(r.scale, r.scale)
	ctx.Canvas.Translate(-cx, -cy)
	ctx.PaintChild(r.child, childOffset(r.child))
	ctx.Canvas.Restore()
}

func (r *renderScaleTransition) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child == nil || r.scale <= 0 {
		return false
	}
	size := r.Size()
	cx := size.Width / 2
	cy := size.Height / 2
	base := childOffset(r.child)
	// Invert the paint transform so the pointer lands in child space.
	local := graphics.Offset{
		X: (position.X-cx)/r.scale + cx - base.X,
		Y: (position.Y-cy)/r.scale + cy - base.Y,
	}
	return r.child.HitTest(local, result)
}
