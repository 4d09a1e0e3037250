package widgets

import (
	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

// SizedBox is a rigid box of Width x Height. It draws nothing itself.
//
// Its intrinsic size is its own size, which makes it useful as a spacer in
// a shrink-wrapped [Row] or [Column]:
//
//	RowOf(MainAxisAlignmentStart, CrossAxisAlignmentCenter, MainAxisSizeMin,
//	    TextOf("a"),
//	    SizedBox{Width: 16},
//	    TextOf("b"),
//	)
//
// A child is built in a region of the box's size, cut down to the
// SizedBox's own region.
type SizedBox struct {
	Width  float64
	Height float64
	Child  core.Widget
}

// IntrinsicSize returns Width x Height.
func (s SizedBox) IntrinsicSize(core.BuildContext) (graphics.Size, error) {
	return graphics.Size{Width: s.Width, Height: s.Height}, nil
}

// Build builds the child, if any.
func (s SizedBox) Build(ctx core.BuildContext) error {
	if s.Child == nil {
		return nil
	}
	size := ctx.Size.Min(graphics.Size{Width: s.Width, Height: s.Height}).Max(graphics.Size{})
	childCtx, err := ctx.ChildContext(size, ctx.Position)
	if err != nil {
		return err
	}
	return core.BuildChild(childCtx, s.Child, -1)
}
