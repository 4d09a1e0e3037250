package widgets_test

import (
	"fmt"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
	flittest "github.com/go-drift/flit/pkg/testing"
	"github.com/go-drift/flit/pkg/theme"
	"github.com/go-drift/flit/pkg/widgets"
)

func ExampleRow_Layout() {
	ctx := core.NewRootContext(flittest.NewRecorder(),
		graphics.Size{Width: 300, Height: 100}, graphics.Offset{}, theme.Default())

	row := widgets.RowOf(
		widgets.MainAxisAlignmentSpaceBetween,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,
		widgets.SizedBox{Width: 50, Height: 20},
		widgets.SizedBox{Width: 50, Height: 20},
	)
	rects, _ := row.Layout(ctx)
	for _, r := range rects {
		fmt.Println(r)
	}
	// Output:
	// Rect(0, 40, 50, 20)
	// Rect(250, 40, 50, 20)
}

func ExampleText_Build() {
	ctx := core.NewRootContext(flittest.NewRecorder(),
		graphics.Size{Width: 20, Height: 100}, graphics.Offset{}, theme.Default())

	err := widgets.TextOf("Hello").Build(ctx)
	fmt.Println(err)
	// Output:
	// text "Hello" overflowed by 40 pixels on the horizontal axis (measured 60, available 20); allow overflow to render past the region
}
