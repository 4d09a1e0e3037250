package graphics

// Renderer receives the drawing commands emitted by widgets and measures text
// on their behalf. Implementations rasterize (see pkg/render/raster), map onto
// a terminal grid (pkg/render/cells) or record (pkg/testing).
//
// Calls are synchronous. A Renderer is not safe for concurrent use; each
// frame traversal owns the renderer it draws into.
type Renderer interface {
	// DrawRectangle fills rect with color.
	DrawRectangle(rect Rect, color Color)

	// DrawText draws text with its top-left corner at position.
	DrawText(text string, position Offset, style TextStyle)

	// MeasureText returns the extent text occupies when drawn at fontSize.
	MeasureText(text string, fontSize float64) (Size, error)
}

// Clearer is implemented by renderers that can reset their whole surface.
// The frame driver clears with the theme background before each frame.
type Clearer interface {
	Clear(color Color)
}
