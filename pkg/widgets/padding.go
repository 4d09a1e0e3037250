package widgets

import (
	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

// EdgeInsets are the distances from each edge of a region.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets of v on every edge.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns horizontal insets on the left and right and
// vertical insets on the top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with each edge given explicitly.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Deflate returns the region left inside the insets. The result may be
// negative when the insets do not fit.
func (e EdgeInsets) Deflate(size graphics.Size) graphics.Size {
	return graphics.Size{Width: size.Width - e.Horizontal(), Height: size.Height - e.Vertical()}
}

// Padding builds its child inset from each edge of its region.
//
//	Padding{Padding: EdgeInsetsAll(16), Child: TextOf("padded")}
//
// Insets wider or taller than the region are an out-of-bounds error.
type Padding struct {
	Padding EdgeInsets
	Child   core.Widget
}

// IntrinsicSize returns the child's intrinsic size plus the insets, cut
// down to the region. A child that is not a Sizer fills the region.
func (p Padding) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	if p.Child == nil {
		return graphics.Size{Width: p.Padding.Horizontal(), Height: p.Padding.Vertical()}.Min(ctx.Size), nil
	}
	inner, err := ctx.ChildContext(p.Padding.Deflate(ctx.Size).Max(graphics.Size{}), ctx.Position)
	if err != nil {
		return graphics.Size{}, err
	}
	natural, ok, err := core.IntrinsicSizeOf(inner, p.Child)
	if err != nil {
		return graphics.Size{}, err
	}
	if !ok {
		return ctx.Size, nil
	}
	return graphics.Size{
		Width:  natural.Width + p.Padding.Horizontal(),
		Height: natural.Height + p.Padding.Vertical(),
	}.Min(ctx.Size), nil
}

// Build builds the child in the inset region.
func (p Padding) Build(ctx core.BuildContext) error {
	if p.Child == nil {
		return nil
	}
	childCtx, err := ctx.ChildContext(
		p.Padding.Deflate(ctx.Size),
		ctx.Position.Add(graphics.Offset{X: p.Padding.Left, Y: p.Padding.Top}),
	)
	if err != nil {
		return err
	}
	return core.BuildChild(childCtx, p.Child, -1)
}
