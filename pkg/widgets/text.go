package widgets

import (
	"fmt"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

// Text displays a single line of text with optional style overrides.
//
// # Overrides
//
// FontSize and Color fall back to the context's theme when left at their
// zero values, so a bare Text{Value: "hi"} picks up the theme's font size
// and text color:
//
//	TextOf("Hello world!")
//	Text{Value: "Warning", Color: graphics.ColorRed, FontSize: 32}
//
// # Hard Wrapping
//
// By default Text refuses to draw past its region: when the measured
// string is wider or taller than the context, Build returns an
// [*errors.ContentOverflowError] and draws nothing. Set AllowOverflow (or
// call WithHardWrap(false)) to skip the check and let the text spill over.
type Text struct {
	// Value is the string to display.
	Value string
	// FontSize overrides the theme's font size. Zero means no override;
	// negative sizes are rejected.
	FontSize int
	// Color overrides the theme's text color. ColorTransparent means no
	// override.
	Color graphics.Color
	// Rotation turns the text counter-clockwise about its center, in degrees.
	Rotation float64
	// AllowOverflow disables hard wrapping.
	AllowOverflow bool
}

// TextOf creates a Text with no overrides.
func TextOf(value string) Text {
	return Text{Value: value}
}

// HardWrap reports whether overflowing the region is an error.
func (t Text) HardWrap() bool {
	return !t.AllowOverflow
}

// WithHardWrap returns a copy of t with hard wrapping set.
func (t Text) WithHardWrap(hardWrap bool) Text {
	t.AllowOverflow = !hardWrap
	return t
}

// WithFontSize returns a copy of t with the font size override set.
func (t Text) WithFontSize(size int) Text {
	t.FontSize = size
	return t
}

// WithColor returns a copy of t with the color override set.
func (t Text) WithColor(color graphics.Color) Text {
	t.Color = color
	return t
}

// WithRotation returns a copy of t rotated by degrees.
func (t Text) WithRotation(degrees float64) Text {
	t.Rotation = degrees
	return t
}

// Style resolves the overrides against the context's theme.
func (t Text) Style(ctx core.BuildContext) graphics.TextStyle {
	style := graphics.TextStyle{
		FontSize: float64(ctx.Theme.FontSize),
		Color:    ctx.Theme.TextColor,
		Rotation: t.Rotation,
	}
	if t.FontSize != 0 {
		style.FontSize = float64(t.FontSize)
	}
	if t.Color != graphics.ColorTransparent {
		style.Color = t.Color
	}
	return style
}

// IntrinsicSize measures the text at its resolved font size.
func (t Text) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	if err := t.validate("Text.IntrinsicSize"); err != nil {
		return graphics.Size{}, err
	}
	return measure(ctx, "Text.IntrinsicSize", t.Value, t.Style(ctx).FontSize)
}

// Build measures the text, checks it against the region when hard
// wrapping, and draws it once at the region's position.
func (t Text) Build(ctx core.BuildContext) error {
	if err := t.validate("Text.Build"); err != nil {
		return err
	}
	style := t.Style(ctx)
	measured, err := measure(ctx, "Text.Build", t.Value, style.FontSize)
	if err != nil {
		return err
	}
	if t.HardWrap() {
		if err := checkOverflow(t.Value, errors.AxisHorizontal, measured.Width, ctx.Size.Width); err != nil {
			return err
		}
		if err := checkOverflow(t.Value, errors.AxisVertical, measured.Height, ctx.Size.Height); err != nil {
			return err
		}
	}
	ctx.Renderer.DrawText(t.Value, ctx.Position, style)
	return nil
}

func (t Text) validate(op string) error {
	if t.FontSize < 0 {
		return &errors.FrameError{
			Op:   op,
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("font size %d must not be negative", t.FontSize),
		}
	}
	return nil
}

func measure(ctx core.BuildContext, op, text string, fontSize float64) (graphics.Size, error) {
	size, err := ctx.Renderer.MeasureText(text, fontSize)
	if err != nil {
		return graphics.Size{}, &errors.FrameError{Op: op, Kind: errors.KindRender, Err: err}
	}
	return size, nil
}

func checkOverflow(text string, axis errors.Axis, measured, available float64) error {
	if measured <= available+graphics.Epsilon {
		return nil
	}
	return &errors.ContentOverflowError{
		Text:      text,
		Axis:      axis,
		Measured:  measured,
		Available: available,
		Overflow:  measured - available,
	}
}

// Label is a bare string widget. It draws with the theme's font size and
// color and never checks its region.
type Label string

// Build draws the label at the region's position.
func (l Label) Build(ctx core.BuildContext) error {
	ctx.Renderer.DrawText(string(l), ctx.Position, graphics.TextStyle{
		FontSize: float64(ctx.Theme.FontSize),
		Color:    ctx.Theme.TextColor,
	})
	return nil
}

// IntrinsicSize measures the label at the theme's font size.
func (l Label) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	return measure(ctx, "Label.IntrinsicSize", string(l), float64(ctx.Theme.FontSize))
}
