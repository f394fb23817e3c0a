package progress

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
)

// FractionalTranslation shifts its child by a fraction of the child's own
// size at paint time. Translation{Y: -0.5} paints the child half its height
// above its layout position.
//
// Layout reserves the untranslated bounds, so surrounding widgets do not
// move while the child animates. Hit testing follows the painted position.
type FractionalTranslation struct {
	core.RenderObjectBase
	// Translation is the offset in units of the child's width and height.
	Translation graphics.Offset
	ChildWidget core.Widget
}

func (f FractionalTranslation) Child() core.Widget {
	return f.ChildWidget
}

func (f FractionalTranslation) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderFractionalTranslation{translation: f.Translation}
	r.SetSelf(r)
	return r
}

func (f FractionalTranslation) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderFractionalTranslation); ok {
		r.translation = f.Translation
		r.MarkNeedsPaint()
	}
}

type renderFractionalTranslation struct {
	layout.RenderBoxBase
	child       layout.RenderBox
	translation graphics.Offset
}

func (r *renderFractionalTranslation) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderFractionalTranslation) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderFractionalTranslation) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.SetSize(r.child.Size())
}

// shift converts the fractional translation into logical pixels.
func (r *renderFractionalTranslation) shift() graphics.Offset {
	if r.child == nil {
		return graphics.Offset{}
	}
	size := r.child.Size()
	return graphics.Offset{
		X: r.translation.X * size.Width,
		Y: r.translation.Y * size.Height,
	}
}

func (r *renderFractionalTranslation) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	base := childOffset(r.child)
	shift := r.shift()
	ctx.PaintChild(r.child, graphics.Offset{X: base.X + shift.X, Y: base.Y + shift.Y})
}

func (r *renderFractionalTranslation) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child == nil {
		return false
	}
	// No bounds pre-check here: the translated child may extend outside
	// this box, and pointers should land where the child is painted.
	base := childOffset(r.child)
	shift := r.shift()
	local := graphics.Offset{
		X: position.X - base.X - shift.X,
		Y: position.Y - base.Y - shift.Y,
	}
	return r.child.HitTest(local, result)
}
