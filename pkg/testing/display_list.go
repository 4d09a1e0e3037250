package testing

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/go-drift/flit/pkg/graphics"
)

// DisplayOp represents a serialized renderer call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RectCall is a recorded DrawRectangle call.
type RectCall struct {
	Rect  graphics.Rect
	Color graphics.Color
}

// TextCall is a recorded DrawText call.
type TextCall struct {
	Text     string
	Position graphics.Offset
	Style    graphics.TextStyle
}

// MeasureFunc computes text extents for a Recorder.
type MeasureFunc func(text string, fontSize float64) (graphics.Size, error)

// FixedMetrics returns a deterministic MeasureFunc: every rune advances by
// advance*fontSize and a line is lineHeight*fontSize tall.
func FixedMetrics(advance, lineHeight float64) MeasureFunc {
	return func(text string, fontSize float64) (graphics.Size, error) {
		n := float64(utf8.RuneCountInString(text))
		return graphics.Size{Width: n * advance * fontSize, Height: lineHeight * fontSize}, nil
	}
}

// DefaultMetrics measures each rune as half the font size wide and a line
// as one font size tall. "Hello" at 20px is 50x20.
var DefaultMetrics = FixedMetrics(0.5, 1)

// Recorder is a graphics.Renderer that records every call instead of
// drawing. It implements graphics.Clearer.
type Recorder struct {
	// Measure answers MeasureText. Nil means DefaultMetrics.
	Measure MeasureFunc

	ops      []DisplayOp
	rects    []RectCall
	texts    []TextCall
	measured []string
}

// NewRecorder creates a recorder using DefaultMetrics.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear records a surface clear.
func (r *Recorder) Clear(color graphics.Color) {
	r.ops = append(r.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

// DrawRectangle records a filled rectangle.
func (r *Recorder) DrawRectangle(rect graphics.Rect, color graphics.Color) {
	r.rects = append(r.rects, RectCall{Rect: rect, Color: color})
	r.ops = append(r.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(color)),
	})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	r.texts = append(r.texts, TextCall{Text: text, Position: position, Style: style})
	r.ops = append(r.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"fontSize", round2(style.FontSize),
			"color", serializeColor(style.Color),
			"rotation", round2(style.Rotation),
		),
	})
}

// MeasureText measures text with the configured metrics.
func (r *Recorder) MeasureText(text string, fontSize float64) (graphics.Size, error) {
	r.measured = append(r.measured, text)
	measure := r.Measure
	if measure == nil {
		measure = DefaultMetrics
	}
	return measure(text, fontSize)
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []DisplayOp {
	return r.ops
}

// OpsNamed returns the recorded operations with the given op name.
func (r *Recorder) OpsNamed(name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range r.ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// Rects returns the recorded DrawRectangle calls.
func (r *Recorder) Rects() []RectCall {
	return r.rects
}

// Texts returns the recorded DrawText calls.
func (r *Recorder) Texts() []TextCall {
	return r.texts
}

// Measured returns the strings passed to MeasureText.
func (r *Recorder) Measured() []string {
	return r.measured
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.rects = r.rects[:0]
	r.texts = r.texts[:0]
	r.measured = r.measured[:0]
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. Key order is
// restored by the JSON encoder, which sorts map keys.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
