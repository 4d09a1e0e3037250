package core

import (
	"fmt"
	"math"

	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/theme"
)

// BuildContext is the layout input of a single Build call: the region a
// widget may occupy, the active theme, and the renderer to draw into.
//
// BuildContext is a value. Children receive derived copies and never see
// changes made to a parent's context after derivation.
type BuildContext struct {
	// Size is the extent of the region. Both dimensions are >= 0.
	Size graphics.Size
	// Position is the top-left corner of the region.
	Position graphics.Offset
	// Theme is this context's own copy of the theme.
	Theme theme.Theme
	// Renderer receives drawing commands and answers text measurements.
	// It is shared by every context of a frame.
	Renderer graphics.Renderer
}

// NewRootContext creates the context for the root of a frame: the full
// viewport, offset by margin.
func NewRootContext(r graphics.Renderer, viewport graphics.Size, margin graphics.Offset, th theme.Theme) BuildContext {
	return BuildContext{
		Size:     viewport,
		Position: margin,
		Theme:    th,
		Renderer: r,
	}
}

// ChildContext derives the context for a child occupying size at position.
// size must not exceed c.Size on either axis, nor be negative; otherwise
// the returned error is an *errors.OutOfBoundsError. The theme and
// renderer are inherited unchanged and the position is taken as given.
func (c BuildContext) ChildContext(size graphics.Size, position graphics.Offset) (BuildContext, error) {
	if err := checkExtent(errors.AxisHorizontal, size.Width, c.Size.Width); err != nil {
		return BuildContext{}, err
	}
	if err := checkExtent(errors.AxisVertical, size.Height, c.Size.Height); err != nil {
		return BuildContext{}, err
	}
	return BuildContext{
		Size:     size,
		Position: position,
		Theme:    c.Theme,
		Renderer: c.Renderer,
	}, nil
}

// Rect returns the region as a rectangle.
func (c BuildContext) Rect() graphics.Rect {
	return graphics.RectFromOffsetSize(c.Position, c.Size)
}

func (c BuildContext) String() string {
	return fmt.Sprintf("BuildContext(size=%s, position=%s)", c.Size, c.Position)
}

func checkExtent(axis errors.Axis, requested, available float64) error {
	if requested < 0 || math.IsNaN(requested) || requested > available+graphics.Epsilon {
		return &errors.OutOfBoundsError{Axis: axis, Requested: requested, Available: available}
	}
	return nil
}
