package graphics

import "fmt"

// TextStyle describes how a run of text is drawn.
type TextStyle struct {
	// FontSize is the font size in logical pixels.
	FontSize float64
	// Color is the fill color of the glyphs.
	Color Color
	// Rotation is measured in degrees, counter-clockwise around the
	// center of the text's bounding box.
	Rotation float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithFontSize returns a copy of the TextStyle with the specified font size.
func (s TextStyle) WithFontSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

func (s TextStyle) String() string {
	return fmt.Sprintf("TextStyle(size=%g, color=%s, rotation=%g)", s.FontSize, s.Color, s.Rotation)
}
