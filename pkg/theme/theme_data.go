// Package theme defines the visual defaults threaded through every
// BuildContext.
//
// There is no ambient "current theme". A Theme is a plain value: the frame
// driver places one in the root context and every derived context receives
// its own copy, so changing a Theme variable never affects contexts that
// are already in flight.
package theme

import (
	"fmt"

	"github.com/go-drift/flit/pkg/graphics"
)

// Theme contains the default visual parameters for widgets.
type Theme struct {
	// BackgroundColor fills the surface before each frame.
	BackgroundColor graphics.Color
	// ContainerColor fills Containers that do not set their own color.
	ContainerColor graphics.Color
	// TextColor is used by text widgets without a color override.
	TextColor graphics.Color
	// FontSize is used by text widgets without a size override, in
	// logical pixels. Must be positive.
	FontSize int
}

// Default returns the fallback theme: dark grey background, mid grey
// containers, white 24px text.
func Default() Theme {
	return Theme{
		BackgroundColor: graphics.RGB(50, 50, 50),
		ContainerColor:  graphics.RGB(100, 100, 100),
		TextColor:       graphics.RGB(255, 255, 255),
		FontSize:        24,
	}
}

// Validate reports whether the theme can be used for layout.
func (t Theme) Validate() error {
	if t.FontSize <= 0 {
		return fmt.Errorf("theme font size must be positive, got %d", t.FontSize)
	}
	return nil
}

// WithFontSize returns a copy of the theme with the given font size.
func (t Theme) WithFontSize(size int) Theme {
	t.FontSize = size
	return t
}

// WithTextColor returns a copy of the theme with the given text color.
func (t Theme) WithTextColor(c graphics.Color) Theme {
	t.TextColor = c
	return t
}

// WithContainerColor returns a copy of the theme with the given container color.
func (t Theme) WithContainerColor(c graphics.Color) Theme {
	t.ContainerColor = c
	return t
}

// WithBackgroundColor returns a copy of the theme with the given background color.
func (t Theme) WithBackgroundColor(c graphics.Color) Theme {
	t.BackgroundColor = c
	return t
}
