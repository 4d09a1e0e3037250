package core

import "github.com/go-drift/flit/pkg/graphics"

// Widget is a node of the widget tree.
//
// Build lays the widget out within ctx and draws it, recursing into any
// children with derived contexts. It returns the first layout or render
// failure encountered; a failed Build may have already drawn part of the
// subtree.
type Widget interface {
	Build(ctx BuildContext) error
}

// Sizer is implemented by widgets with a natural size. Flex containers use
// it for shrink-wrapped and aligned layouts. The result is the size the
// widget would like within ctx; callers clamp it to the region.
type Sizer interface {
	IntrinsicSize(ctx BuildContext) (graphics.Size, error)
}

// ConstrainedBox is implemented by widgets that restrict the size of the
// box they draw, independent of the region they are given.
type ConstrainedBox interface {
	MinSize() graphics.Size
	MaxSize() graphics.Size
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(ctx BuildContext) error

// Build calls f(ctx).
func (f WidgetFunc) Build(ctx BuildContext) error {
	return f(ctx)
}
