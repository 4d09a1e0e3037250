// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

// LayoutBox is a fixed-size colored box for layout testing. It fills the
// top-left corner of its region, clamped to the region.
type LayoutBox struct {
	Width  float64
	Height float64
	Color  graphics.Color
}

// Build draws the box when Color is set.
func (b LayoutBox) Build(ctx core.BuildContext) error {
	if b.Color == graphics.ColorTransparent {
		return nil
	}
	size := ctx.Size.Min(graphics.Size{Width: b.Width, Height: b.Height})
	ctx.Renderer.DrawRectangle(graphics.RectFromOffsetSize(ctx.Position, size), b.Color)
	return nil
}

// IntrinsicSize reports Width x Height.
func (b LayoutBox) IntrinsicSize(core.BuildContext) (graphics.Size, error) {
	return graphics.Size{Width: b.Width, Height: b.Height}, nil
}

// Failing is a widget whose Build always returns Err.
type Failing struct {
	Err error
}

// Build returns f.Err.
func (f Failing) Build(core.BuildContext) error {
	return f.Err
}

// Panicking is a widget whose Build panics with Value.
type Panicking struct {
	Value any
}

// Build panics.
func (p Panicking) Build(core.BuildContext) error {
	panic(fmt.Sprint(p.Value))
}
