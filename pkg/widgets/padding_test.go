package widgets

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	flittest "github.com/go-drift/flit/pkg/testing"
)

func TestPadding_ChildRegion(t *testing.T) {
	tester := flittest.NewWidgetTester(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	tester.MustPump(Padding{Padding: EdgeInsetsOnly(10, 20, 30, 40), Child: tester.Probe("child", nil)})

	ctx := tester.Named("child")[0]
	if ctx.Position != (graphics.Offset{X: 10, Y: 20}) {
		t.Errorf("position = %s, want (10, 20)", ctx.Position)
	}
	if ctx.Size != (graphics.Size{Width: 160, Height: 140}) {
		t.Errorf("size = %s, want 160x140", ctx.Size)
	}
}

func TestPadding_InsetsLargerThanRegion(t *testing.T) {
	tester := flittest.NewWidgetTester(t)
	tester.SetSize(graphics.Size{Width: 20, Height: 200})

	err := tester.PumpWidget(Padding{Padding: EdgeInsetsAll(16), Child: TextOf("x")})
	if !stderrors.Is(err, errors.ErrOutOfBoundsLayout) {
		t.Fatalf("expected out-of-bounds error, got %v", err)
	}
}

func TestPadding_IntrinsicSize(t *testing.T) {
	ctx := regionContext(200, 200)
	tests := []struct {
		name string
		p    Padding
		want graphics.Size
	}{
		{"sizer child", Padding{Padding: EdgeInsetsOnly(10, 20, 30, 40), Child: SizedBox{Width: 50, Height: 50}}, graphics.Size{Width: 90, Height: 110}},
		{"no child", Padding{Padding: EdgeInsetsSymmetric(8, 4)}, graphics.Size{Width: 16, Height: 8}},
		{"clamped", Padding{Padding: EdgeInsetsAll(50), Child: SizedBox{Width: 150, Height: 10}}, graphics.Size{Width: 200, Height: 110}},
		{"non-sizer fills", Padding{Padding: EdgeInsetsAll(5), Child: core.WidgetFunc(func(core.BuildContext) error { return nil })}, graphics.Size{Width: 200, Height: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.IntrinsicSize(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("IntrinsicSize = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAlign_Positions(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		want      graphics.Offset
	}{
		{"top left", AlignmentTopLeft, graphics.Offset{X: 0, Y: 0}},
		{"center", AlignmentCenter, graphics.Offset{X: 75, Y: 40}},
		{"bottom right", AlignmentBottomRight, graphics.Offset{X: 150, Y: 80}},
		{"center right", AlignmentCenterRight, graphics.Offset{X: 150, Y: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := flittest.NewWidgetTester(t)
			tester.SetSize(graphics.Size{Width: 200, Height: 100})

			tester.MustPump(Align{Alignment: tt.alignment, Child: tester.SizedProbe("child", graphics.Size{Width: 50, Height: 20})})

			ctx := tester.Named("child")[0]
			if ctx.Position != tt.want {
				t.Errorf("position = %s, want %s", ctx.Position, tt.want)
			}
			if ctx.Size != (graphics.Size{Width: 50, Height: 20}) {
				t.Errorf("size = %s, want 50x20", ctx.Size)
			}
		})
	}
}

func TestCenter_ClampsAndFills(t *testing.T) {
	tester := flittest.NewWidgetTester(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	tester.MustPump(StackOf(
		Center(tester.SizedProbe("wide", graphics.Size{Width: 300, Height: 10})),
		Center(tester.Probe("fill", nil)),
	))

	wide := tester.Named("wide")[0]
	if wide.Size != (graphics.Size{Width: 100, Height: 10}) || wide.Position != (graphics.Offset{X: 0, Y: 45}) {
		t.Errorf("wide child got %s", wide)
	}
	fill := tester.Named("fill")[0]
	if fill.Size != (graphics.Size{Width: 100, Height: 100}) || fill.Position != (graphics.Offset{}) {
		t.Errorf("non-sizer child got %s", fill)
	}
}

func TestParseAlignment(t *testing.T) {
	a, err := ParseAlignment("bottom_center")
	if err != nil || a != AlignmentBottomCenter {
		t.Errorf("ParseAlignment = %v, %v", a, err)
	}
	if _, err := ParseAlignment("middle"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}
