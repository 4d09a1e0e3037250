package widgets

import (
	"fmt"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

// Alignment is a point in a region: -1 is the left or top edge, 1 the right
// or bottom edge and 0 the center.
type Alignment struct {
	X, Y float64
}

// Common alignments.
var (
	AlignmentTopLeft      = Alignment{-1, -1}
	AlignmentTopCenter    = Alignment{0, -1}
	AlignmentTopRight     = Alignment{1, -1}
	AlignmentCenterLeft   = Alignment{-1, 0}
	AlignmentCenter       = Alignment{0, 0}
	AlignmentCenterRight  = Alignment{1, 0}
	AlignmentBottomLeft   = Alignment{-1, 1}
	AlignmentBottomCenter = Alignment{0, 1}
	AlignmentBottomRight  = Alignment{1, 1}
)

var alignmentNames = map[string]Alignment{
	"top_left":      AlignmentTopLeft,
	"top_center":    AlignmentTopCenter,
	"top_right":     AlignmentTopRight,
	"center_left":   AlignmentCenterLeft,
	"center":        AlignmentCenter,
	"center_right":  AlignmentCenterRight,
	"bottom_left":   AlignmentBottomLeft,
	"bottom_center": AlignmentBottomCenter,
	"bottom_right":  AlignmentBottomRight,
}

// ParseAlignment parses a name such as "bottom_right".
func ParseAlignment(s string) (Alignment, error) {
	if a, ok := alignmentNames[s]; ok {
		return a, nil
	}
	return Alignment{}, fmt.Errorf("unknown alignment %q", s)
}

// Within returns the origin of a child of size child placed at a inside
// the region of size parent.
func (a Alignment) Within(parent, child graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: (parent.Width - child.Width) * (a.X + 1) / 2,
		Y: (parent.Height - child.Height) * (a.Y + 1) / 2,
	}
}

// Align places its child at Alignment within its region. The child gets
// its intrinsic size cut down to the region; a child without one fills
// the region.
//
//	Align{Alignment: AlignmentBottomRight, Child: TextOf("Bottom right")}
type Align struct {
	Child     core.Widget
	Alignment Alignment
}

// Center is an Align with AlignmentCenter.
func Center(child core.Widget) Align {
	return Align{Child: child, Alignment: AlignmentCenter}
}

// Build builds the child at its aligned position.
func (a Align) Build(ctx core.BuildContext) error {
	if a.Child == nil {
		return nil
	}
	size, ok, err := core.IntrinsicSizeOf(ctx, a.Child)
	if err != nil {
		return &errors.BuildError{Widget: core.TypeName(a.Child), Index: -1, Err: err}
	}
	if !ok {
		size = ctx.Size
	}
	size = size.Min(ctx.Size).Max(graphics.Size{})
	childCtx, err := ctx.ChildContext(size, ctx.Position.Add(a.Alignment.Within(ctx.Size, size)))
	if err != nil {
		return err
	}
	return core.BuildChild(childCtx, a.Child, -1)
}
