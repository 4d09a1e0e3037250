// Package raster implements graphics.Renderer on an in-memory RGBA image.
//
// Text is drawn with golang.org/x/image fonts (Go Regular by default).
// Rotated text is rasterized upright into a scratch image, rotated with
// imaging and composited centered on its unrotated box. Finished frames are
// written as PNG through imaging.
//
// A Renderer is not safe for concurrent use.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

// Renderer draws into an *image.NRGBA.
type Renderer struct {
	img   *image.NRGBA
	fonts *FontManager
	err   error
}

// New creates a transparent width x height renderer using the default font.
func New(width, height int) (*Renderer, error) {
	fonts, err := NewFontManager(nil)
	if err != nil {
		return nil, err
	}
	return NewWithFonts(width, height, fonts)
}

// NewWithFonts creates a renderer that takes faces from fonts.
func NewWithFonts(width, height int, fonts *FontManager) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, &errors.FrameError{
			Op:   "raster.New",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("canvas %dx%d must be positive", width, height),
		}
	}
	return &Renderer{
		img:   imaging.New(width, height, color.Transparent),
		fonts: fonts,
	}, nil
}

// Size returns the canvas size in pixels.
func (r *Renderer) Size() graphics.Size {
	b := r.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Image returns the canvas. It is drawn into by later calls.
func (r *Renderer) Image() *image.NRGBA {
	return r.img
}

// Err returns the first drawing failure, if any. DrawText cannot report
// errors directly.
func (r *Renderer) Err() error {
	return r.err
}

// Clear fills the whole canvas with c.
func (r *Renderer) Clear(c graphics.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawRectangle fills rect, blending c over the canvas.
func (r *Renderer) DrawRectangle(rect graphics.Rect, c graphics.Color) {
	if c.Alpha() == 0 {
		return
	}
	bounds := toImageRect(rect).Intersect(r.img.Bounds())
	if bounds.Empty() {
		return
	}
	draw.Draw(r.img, bounds, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// MeasureText returns the advance width and line height of text.
func (r *Renderer) MeasureText(text string, fontSize float64) (graphics.Size, error) {
	face, err := r.fonts.Face(fontSize)
	if err != nil {
		return graphics.Size{}, &errors.FrameError{Op: "raster.MeasureText", Kind: errors.KindRender, Err: err}
	}
	return measure(face, text), nil
}

// DrawText draws text with its top-left corner at position.
func (r *Renderer) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	face, err := r.fonts.Face(style.FontSize)
	if err != nil {
		if r.err == nil {
			r.err = &errors.FrameError{Op: "raster.DrawText", Kind: errors.KindRender, Err: err}
		}
		return
	}
	src := image.NewUniform(style.Color.NRGBA())
	if math.Mod(style.Rotation, 360) == 0 {
		drawString(r.img, face, src, text, image.Pt(round(position.X), round(position.Y)))
		return
	}

	size := measure(face, text)
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w == 0 || h == 0 {
		return
	}
	scratch := imaging.New(w, h, color.Transparent)
	drawString(scratch, face, src, text, image.Point{})
	rotated := imaging.Rotate(scratch, style.Rotation, color.Transparent)

	cx := position.X + size.Width/2
	cy := position.Y + size.Height/2
	rb := rotated.Bounds()
	origin := image.Pt(round(cx-float64(rb.Dx())/2), round(cy-float64(rb.Dy())/2))
	draw.Draw(r.img, image.Rectangle{Min: origin, Max: origin.Add(rb.Size())}, rotated, rb.Min, draw.Over)
}

// Encode writes the canvas to w as PNG.
func (r *Renderer) Encode(w io.Writer) error {
	if err := imaging.Encode(w, r.img, imaging.PNG); err != nil {
		return &errors.FrameError{Op: "raster.Encode", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// Save writes the canvas to path. The format follows the extension.
func (r *Renderer) Save(path string) error {
	if err := imaging.Save(r.img, path); err != nil {
		return &errors.FrameError{Op: "raster.Save", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// Close releases the renderer's font faces.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

func measure(face font.Face, text string) graphics.Size {
	m := face.Metrics()
	return graphics.Size{
		Width:  fixedToFloat(font.MeasureString(face, text)),
		Height: fixedToFloat(m.Ascent + m.Descent),
	}
}

// drawString draws text with the top of its line box at topLeft.
func drawString(dst draw.Image, face font.Face, src image.Image, text string, topLeft image.Point) {
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(topLeft.X, topLeft.Y).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	d.DrawString(text)
}

func toImageRect(r graphics.Rect) image.Rectangle {
	return image.Rect(round(r.Left), round(r.Top), round(r.Right), round(r.Bottom))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func round(v float64) int {
	return int(math.Round(v))
}
