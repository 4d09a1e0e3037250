// Package cells implements graphics.Renderer on a character grid, for
// previewing frames in a terminal.
//
// Each cell stands for cellWidth x cellHeight pixels. Rectangles are filled
// with shade runes picked by luminance and text is written one column per
// display cell, so wide runes take two. Text is always one row tall and is
// never rotated.
package cells

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/flit/pkg/graphics"
)

// Shades are the fill runes from darkest to brightest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// wideTail marks the cell covered by the right half of a wide rune.
const wideTail rune = 0

// Renderer draws into a grid of runes.
type Renderer struct {
	cols, rows int
	cellWidth  float64
	cellHeight float64
	grid       [][]rune
}

// New creates a cols x rows grid where each cell covers cellWidth x
// cellHeight pixels.
func New(cols, rows int, cellWidth, cellHeight float64) *Renderer {
	cols, rows = max(cols, 0), max(rows, 0)
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}
	return &Renderer{
		cols:       cols,
		rows:       rows,
		cellWidth:  math.Max(cellWidth, 1),
		cellHeight: math.Max(cellHeight, 1),
		grid:       grid,
	}
}

// Size returns the pixel extent covered by the grid.
func (r *Renderer) Size() graphics.Size {
	return graphics.Size{Width: float64(r.cols) * r.cellWidth, Height: float64(r.rows) * r.cellHeight}
}

// Shade returns the fill rune for c. Fully transparent colors map to a
// space.
func Shade(c graphics.Color) rune {
	if c.Alpha() == 0 {
		return Shades[0]
	}
	i := int(math.Round(c.Luminance() * c.Alpha() * float64(len(Shades)-1)))
	return Shades[graphics.Clamp(i, 0, len(Shades)-1)]
}

// Clear fills every cell with the shade of c.
func (r *Renderer) Clear(c graphics.Color) {
	r.fill(0, 0, r.cols, r.rows, Shade(c))
}

// DrawRectangle fills the cells whose centers lie inside rect.
func (r *Renderer) DrawRectangle(rect graphics.Rect, c graphics.Color) {
	if c.Alpha() == 0 {
		return
	}
	x0 := int(math.Round(rect.Left / r.cellWidth))
	y0 := int(math.Round(rect.Top / r.cellHeight))
	x1 := int(math.Round(rect.Right / r.cellWidth))
	y1 := int(math.Round(rect.Bottom / r.cellHeight))
	r.fill(x0, y0, x1, y1, Shade(c))
}

// DrawText writes text starting at the cell containing position.
func (r *Renderer) DrawText(text string, position graphics.Offset, _ graphics.TextStyle) {
	row := int(math.Floor(position.Y / r.cellHeight))
	if row < 0 || row >= r.rows {
		return
	}
	col := int(math.Floor(position.X / r.cellWidth))
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= r.cols {
			r.grid[row][col] = ch
			if w == 2 {
				r.grid[row][col+1] = wideTail
			}
		}
		col += w
	}
}

// MeasureText returns the display width of text in cells, scaled to
// pixels, and one row of height. The font size is ignored.
func (r *Renderer) MeasureText(text string, _ float64) (graphics.Size, error) {
	return graphics.Size{
		Width:  float64(runewidth.StringWidth(text)) * r.cellWidth,
		Height: r.cellHeight,
	}, nil
}

// String renders the grid, one line per row.
func (r *Renderer) String() string {
	var sb strings.Builder
	for y, line := range r.grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, ch := range line {
			if ch != wideTail {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune) {
	x0, x1 = graphics.Clamp(x0, 0, r.cols), graphics.Clamp(x1, 0, r.cols)
	y0, y1 = graphics.Clamp(y0, 0, r.rows), graphics.Clamp(y1, 0, r.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.grid[y][x] = ch
		}
	}
}
