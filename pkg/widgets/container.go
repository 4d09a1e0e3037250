package widgets

import (
	"math"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

var _ core.ConstrainedBox = Container{}

// ContainerMinSize is the floor every Container box is raised to.
var ContainerMinSize = graphics.Size{Width: 100, Height: 100}

// Container draws a filled box and builds its child inside it.
//
// # Sizing Behavior
//
// Each axis of the box is the requested extent raised to at least 100
// pixels and then cut down to the region, so an unset Width or Height gives
// a 100 pixel box and an oversized one fills the region. The box always
// starts at the region's position.
//
//	Container{Width: 300, Height: 300, Child: Label("Hello!")}
//
// When Color is transparent the theme's container color is used.
type Container struct {
	Child  core.Widget
	Color  graphics.Color
	Width  float64
	Height float64
}

// WithColor returns a copy of the container with the specified fill color.
func (c Container) WithColor(color graphics.Color) Container {
	c.Color = color
	return c
}

// WithSize returns a copy of the container with the specified width and height.
func (c Container) WithSize(width, height float64) Container {
	c.Width = width
	c.Height = height
	return c
}

// WithChild returns a copy of the container with the specified child.
func (c Container) WithChild(child core.Widget) Container {
	c.Child = child
	return c
}

// MinSize returns ContainerMinSize.
func (c Container) MinSize() graphics.Size { return ContainerMinSize }

// MaxSize is unbounded.
func (c Container) MaxSize() graphics.Size { return graphics.Unbounded }

// Box resolves the size of the drawn box within ctx.
func (c Container) Box(ctx core.BuildContext) graphics.Size {
	minSize, maxSize := c.MinSize(), c.MaxSize()
	return graphics.Size{
		Width:  resolveExtent(c.Width, minSize.Width, maxSize.Width, ctx.Size.Width),
		Height: resolveExtent(c.Height, minSize.Height, maxSize.Height, ctx.Size.Height),
	}
}

func resolveExtent(requested, lo, hi, available float64) float64 {
	return math.Min(math.Min(math.Max(requested, lo), hi), available)
}

// IntrinsicSize returns the resolved box.
func (c Container) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	return c.Box(ctx), nil
}

// Build draws the box and builds the child in a region of the box's size.
func (c Container) Build(ctx core.BuildContext) error {
	box := c.Box(ctx)
	color := c.Color
	if color == graphics.ColorTransparent {
		color = ctx.Theme.ContainerColor
	}
	ctx.Renderer.DrawRectangle(graphics.RectFromOffsetSize(ctx.Position, box), color)
	if c.Child == nil {
		return nil
	}
	childCtx, err := ctx.ChildContext(box, ctx.Position)
	if err != nil {
		return err
	}
	return core.BuildChild(childCtx, c.Child, -1)
}
