// Package core defines the layout protocol shared by every widget.
//
// A frame is a single top-down traversal. The driver creates one root
// BuildContext (the viewport size, a margin as the origin, and a theme) and
// calls Build on the root widget. A container derives one context per child
// with ChildContext and builds the child with it; a leaf emits drawing
// commands to the context's Renderer. Sizing and drawing happen in the same
// pass: there is no separate measure phase, although flex containers may ask
// children that implement Sizer for their natural size first.
//
// # Widgets
//
// A Widget is any value with a Build(BuildContext) error method:
//
//	type Swatch struct{ Color graphics.Color }
//
//	func (s Swatch) Build(ctx core.BuildContext) error {
//	    ctx.Renderer.DrawRectangle(ctx.Rect(), s.Color)
//	    return nil
//	}
//
// Widgets own their children exclusively and are not mutated by Build. Trees
// are rebuilt from scratch every frame; nothing is carried between frames.
//
// # Containment
//
// A derived context must fit inside its parent on both axes. ChildContext
// returns an error matching errors.ErrOutOfBoundsLayout when it does not.
// Positions are not checked: a container may place a child anywhere.
package core
