package widgets

import (
	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

// Stack overlays children on top of each other.
//
// Every child is built with the Stack's own context, in order, so the
// first child is drawn at the bottom and the last child on top.
type Stack struct {
	Children []core.Widget
}

// StackOf creates a Stack of children.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

// Build builds each child against ctx and stops at the first failure.
func (s Stack) Build(ctx core.BuildContext) error {
	for i, child := range s.Children {
		if err := core.BuildChild(ctx, child, i); err != nil {
			return err
		}
	}
	return nil
}

// IntrinsicSize is the largest natural size among the children. Children
// without one count as filling the region.
func (s Stack) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	var out graphics.Size
	for _, child := range s.Children {
		size, ok, err := core.IntrinsicSizeOf(ctx, child)
		if err != nil {
			return graphics.Size{}, err
		}
		if !ok {
			size = ctx.Size
		}
		out = out.Max(size)
	}
	return out.Min(ctx.Size), nil
}
