package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	// No space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

var mainAxisAlignmentNames = []string{"start", "end", "center", "space_between", "space_around", "space_evenly"}

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	if a >= 0 && int(a) < len(mainAxisAlignmentNames) {
		return mainAxisAlignmentNames[a]
	}
	return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
}

// ParseMainAxisAlignment returns the alignment whose String form is name.
func ParseMainAxisAlignment(name string) (MainAxisAlignment, error) {
	i, err := parseEnum("main axis alignment", name, mainAxisAlignmentNames)
	return MainAxisAlignment(i), err
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for [Row], horizontal for [Column]).
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch
)

var crossAxisAlignmentNames = []string{"start", "end", "center", "stretch"}

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	if a >= 0 && int(a) < len(crossAxisAlignmentNames) {
		return crossAxisAlignmentNames[a]
	}
	return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
}

// ParseCrossAxisAlignment returns the alignment whose String form is name.
func ParseCrossAxisAlignment(name string) (CrossAxisAlignment, error) {
	i, err := parseEnum("cross axis alignment", name, crossAxisAlignmentNames)
	return CrossAxisAlignment(i), err
}

// MainAxisSize controls how much space the flex container takes along its main axis.
type MainAxisSize int

const (
	// MainAxisSizeMin sizes children to their natural extents and
	// distributes the leftover space by MainAxisAlignment.
	MainAxisSizeMin MainAxisSize = iota
	// MainAxisSizeMax partitions the whole main axis equally between the
	// children, leaving no free space to align.
	MainAxisSizeMax
)

var mainAxisSizeNames = []string{"min", "max"}

// String returns a human-readable representation of the main axis size.
func (s MainAxisSize) String() string {
	if s >= 0 && int(s) < len(mainAxisSizeNames) {
		return mainAxisSizeNames[s]
	}
	return fmt.Sprintf("MainAxisSize(%d)", int(s))
}

// ParseMainAxisSize returns the size policy whose String form is name.
func ParseMainAxisSize(name string) (MainAxisSize, error) {
	i, err := parseEnum("main axis size", name, mainAxisSizeNames)
	return MainAxisSize(i), err
}

func parseEnum(what, name string, names []string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, name)
}

// Row lays out children horizontally from left to right.
//
// Row is a flex container where the main axis is horizontal. Children are
// laid out in a single horizontal run and do not wrap. Every child is built
// in a region derived from the Row's own, in index order.
//
// # Sizing Behavior
//
// With MainAxisSizeMax every child receives an equal share of the width,
// so child i starts at origin + i*(width/N). With MainAxisSizeMin (the
// zero value), children implementing [core.Sizer] take their natural width
// and the others share what is left; remaining space is then distributed
// by MainAxisAlignment. Children wider than the Row overflow past its
// right edge.
//
// # Alignment
//
// CrossAxisAlignmentStretch gives every child the full height. Start, End
// and Center give sizers their natural height and position them at the
// top, bottom or middle.
//
//	RowOf(MainAxisAlignmentSpaceEvenly, CrossAxisAlignmentStretch, MainAxisSizeMax,
//	    TextOf("Hello world!"),
//	    TextOf("Nice!"),
//	)
//
// For vertical layout, use [Column].
type Row struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	MainAxisSize       MainAxisSize
}

// RowOf creates a horizontal layout with the specified alignments and sizing behavior.
// This is a convenience helper for the common case of creating a Row with children.
func RowOf(alignment MainAxisAlignment, crossAlignment CrossAxisAlignment, size MainAxisSize, children ...core.Widget) Row {
	return Row{
		Children:           children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
		MainAxisSize:       size,
	}
}

func (r Row) flex() flexLayout {
	return flexLayout{
		direction:      errors.AxisHorizontal,
		alignment:      r.MainAxisAlignment,
		crossAlignment: r.CrossAxisAlignment,
		axisSize:       r.MainAxisSize,
	}
}

// Layout computes the region of every child without building them.
func (r Row) Layout(ctx core.BuildContext) ([]graphics.Rect, error) {
	return r.flex().rects(ctx, r.Children)
}

// Build lays out the children and builds each in its region.
func (r Row) Build(ctx core.BuildContext) error {
	return r.flex().build(ctx, r.Children)
}

// IntrinsicSize is the full region for MainAxisSizeMax, otherwise the
// bounding box of the laid out children.
func (r Row) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	return r.flex().intrinsicSize(ctx, r.Children)
}

// Column lays out children vertically from top to bottom.
//
// Column is a [Row] with the axes swapped: MainAxisSize and
// MainAxisAlignment act on the height and CrossAxisAlignment on the width.
type Column struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	MainAxisSize       MainAxisSize
}

// ColumnOf creates a vertical layout with the specified alignments and sizing behavior.
func ColumnOf(alignment MainAxisAlignment, crossAlignment CrossAxisAlignment, size MainAxisSize, children ...core.Widget) Column {
	return Column{
		Children:           children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
		MainAxisSize:       size,
	}
}

func (c Column) flex() flexLayout {
	return flexLayout{
		direction:      errors.AxisVertical,
		alignment:      c.MainAxisAlignment,
		crossAlignment: c.CrossAxisAlignment,
		axisSize:       c.MainAxisSize,
	}
}

// Layout computes the region of every child without building them.
func (c Column) Layout(ctx core.BuildContext) ([]graphics.Rect, error) {
	return c.flex().rects(ctx, c.Children)
}

// Build lays out the children and builds each in its region.
func (c Column) Build(ctx core.BuildContext) error {
	return c.flex().build(ctx, c.Children)
}

// IntrinsicSize is the full region for MainAxisSizeMax, otherwise the
// bounding box of the laid out children.
func (c Column) IntrinsicSize(ctx core.BuildContext) (graphics.Size, error) {
	return c.flex().intrinsicSize(ctx, c.Children)
}

// flexSlot is the region assigned to one child.
type flexSlot struct {
	size     graphics.Size
	position graphics.Offset
}

type flexLayout struct {
	direction      errors.Axis
	alignment      MainAxisAlignment
	crossAlignment CrossAxisAlignment
	axisSize       MainAxisSize
}

func (f flexLayout) mainAxis(size graphics.Size) float64 {
	if f.direction == errors.AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f flexLayout) crossAxis(size graphics.Size) float64 {
	if f.direction == errors.AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f flexLayout) makeSize(main, cross float64) graphics.Size {
	if f.direction == errors.AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f flexLayout) makeOffset(main, cross float64) graphics.Offset {
	if f.direction == errors.AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func (f flexLayout) splitOffset(o graphics.Offset) (main, cross float64) {
	if f.direction == errors.AxisHorizontal {
		return o.X, o.Y
	}
	return o.Y, o.X
}

// needsNaturalSizes reports whether the layout consults Sizer children.
func (f flexLayout) needsNaturalSizes() bool {
	return f.axisSize == MainAxisSizeMin || f.crossAlignment != CrossAxisAlignmentStretch
}

func (f flexLayout) layout(ctx core.BuildContext, children []core.Widget) ([]flexSlot, error) {
	n := len(children)
	if n == 0 {
		return nil, nil
	}
	maxMain := f.mainAxis(ctx.Size)
	maxCross := f.crossAxis(ctx.Size)

	natural := make([]graphics.Size, n)
	sized := make([]bool, n)
	if f.needsNaturalSizes() {
		for i, child := range children {
			size, ok, err := core.IntrinsicSizeOf(ctx, child)
			if err != nil {
				return nil, &errors.BuildError{Widget: core.TypeName(child), Index: i, Err: err}
			}
			natural[i], sized[i] = size, ok
		}
	}

	mains := make([]float64, n)
	if f.axisSize == MainAxisSizeMax {
		share := maxMain / float64(n)
		for i := range mains {
			mains[i] = share
		}
	} else {
		used := 0.0
		unsized := 0
		for i := range children {
			if !sized[i] {
				unsized++
				continue
			}
			mains[i] = graphics.Clamp(f.mainAxis(natural[i]), 0, maxMain)
			used += mains[i]
		}
		if unsized > 0 {
			share := math.Max(maxMain-used, 0) / float64(unsized)
			for i := range children {
				if !sized[i] {
					mains[i] = share
				}
			}
		}
	}

	total := 0.0
	for _, m := range mains {
		total += m
	}
	spacing, cursor := f.computeSpacing(math.Max(0, maxMain-total), n)

	origin, crossOrigin := f.splitOffset(ctx.Position)

	slots := make([]flexSlot, n)
	for i := range children {
		cross := maxCross
		if f.crossAlignment != CrossAxisAlignmentStretch && sized[i] {
			cross = graphics.Clamp(f.crossAxis(natural[i]), 0, maxCross)
		}
		main := cursor
		if f.axisSize == MainAxisSizeMax {
			main = float64(i) * mains[i]
		}
		slots[i] = flexSlot{
			size:     f.makeSize(mains[i], cross),
			position: f.makeOffset(origin+main, crossOrigin+f.crossAxisOffset(maxCross, cross)),
		}
		cursor += mains[i] + spacing
	}
	return slots, nil
}

func (f flexLayout) rects(ctx core.BuildContext, children []core.Widget) ([]graphics.Rect, error) {
	slots, err := f.layout(ctx, children)
	if err != nil {
		return nil, err
	}
	rects := make([]graphics.Rect, len(slots))
	for i, s := range slots {
		rects[i] = graphics.RectFromOffsetSize(s.position, s.size)
	}
	return rects, nil
}

func (f flexLayout) crossAxisOffset(available, extent float64) float64 {
	freeSpace := available - extent
	if freeSpace <= 0 {
		return 0
	}
	switch f.crossAlignment {
	case CrossAxisAlignmentEnd:
		return freeSpace
	case CrossAxisAlignmentCenter:
		return freeSpace * 0.5
	default:
		return 0
	}
}

func (f flexLayout) computeSpacing(freeSpace float64, n int) (spacing, offset float64) {
	switch f.alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}

func (f flexLayout) build(ctx core.BuildContext, children []core.Widget) error {
	slots, err := f.layout(ctx, children)
	if err != nil {
		return err
	}
	for i, child := range children {
		childCtx, err := ctx.ChildContext(slots[i].size, slots[i].position)
		if err != nil {
			return &errors.BuildError{Widget: core.TypeName(child), Index: i, Err: err}
		}
		if err := core.BuildChild(childCtx, child, i); err != nil {
			return err
		}
	}
	return nil
}

func (f flexLayout) intrinsicSize(ctx core.BuildContext, children []core.Widget) (graphics.Size, error) {
	if f.axisSize == MainAxisSizeMax {
		return ctx.Size, nil
	}
	slots, err := f.layout(ctx, children)
	if err != nil {
		return graphics.Size{}, err
	}
	main, cross := 0.0, 0.0
	for _, s := range slots {
		main += f.mainAxis(s.size)
		cross = math.Max(cross, f.crossAxis(s.size))
	}
	return f.makeSize(main, cross).Min(ctx.Size), nil
}
