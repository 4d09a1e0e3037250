package testing

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/testing/internal/testbed"
	"github.com/go-drift/flit/pkg/theme"
)

func TestNewWidgetTester_Defaults(t *testing.T) {
	tester := NewWidgetTester(t)

	ctx := tester.RootContext()
	if ctx.Size.Width != DefaultTestWidth || ctx.Size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %s", DefaultTestWidth, DefaultTestHeight, ctx.Size)
	}
	if ctx.Position != (graphics.Offset{}) {
		t.Errorf("expected root at origin, got %s", ctx.Position)
	}
	if ctx.Theme != theme.Default() {
		t.Errorf("expected default theme, got %+v", ctx.Theme)
	}
}

func TestPumpWidget_ClearsWithBackground(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.MustPump(nil)

	ops := tester.Ops()
	if len(ops) != 1 || ops[0].Op != "clear" {
		t.Fatalf("expected a single clear op, got %v", ops)
	}
	if got := ops[0].Params["color"]; got != "0xFF323232" {
		t.Errorf("expected background 0xFF323232, got %v", got)
	}
}

func TestPumpWidget_DiscardsPreviousFrame(t *testing.T) {
	tester := NewWidgetTester(t)
	box := testbed.LayoutBox{Width: 10, Height: 10, Color: graphics.ColorRed}

	tester.MustPump(box)
	tester.MustPump(box)

	if n := len(tester.Rects()); n != 1 {
		t.Errorf("expected 1 rect after second pump, got %d", n)
	}
}

func TestSetSizeAndMargin(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.SetSize(graphics.Size{Width: 375, Height: 667})
	tester.SetMargin(graphics.Offset{X: 50, Y: 50})

	tester.MustPump(tester.Probe("root", nil))

	got := tester.Named("root")
	if len(got) != 1 {
		t.Fatalf("expected one probe entry, got %d", len(got))
	}
	if got[0].Size != (graphics.Size{Width: 375, Height: 667}) {
		t.Errorf("size = %s", got[0].Size)
	}
	if got[0].Position != (graphics.Offset{X: 50, Y: 50}) {
		t.Errorf("position = %s", got[0].Position)
	}
}

func TestSetTheme(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.SetTheme(theme.Default().WithFontSize(40))

	tester.MustPump(tester.Probe("root", nil))

	if fs := tester.Named("root")[0].Theme.FontSize; fs != 40 {
		t.Errorf("expected font size 40, got %d", fs)
	}
}

func TestPumpWidget_ReturnsBuildError(t *testing.T) {
	tester := NewWidgetTester(t)
	cause := stderrors.New("boom")

	err := tester.PumpWidget(testbed.Failing{Err: cause})

	var be *errors.BuildError
	if !stderrors.As(err, &be) {
		t.Fatalf("expected *errors.BuildError, got %T", err)
	}
	if be.Widget != "Failing" || be.Index != -1 {
		t.Errorf("unexpected build error %+v", be)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the cause to be preserved")
	}
}

func TestPumpWidget_RecoversPanic(t *testing.T) {
	tester := NewWidgetTester(t)

	err := tester.PumpWidget(testbed.Panicking{Value: "bad"})

	var pe *errors.PanicError
	if !stderrors.As(err, &pe) {
		t.Fatalf("expected *errors.PanicError, got %T (%v)", err, err)
	}
	if pe.Value != "bad" {
		t.Errorf("expected panic value %q, got %v", "bad", pe.Value)
	}
}

func TestRecorder_DefaultMetrics(t *testing.T) {
	r := NewRecorder()

	size, err := r.MeasureText("Hello", 20)
	if err != nil {
		t.Fatal(err)
	}
	if size != (graphics.Size{Width: 50, Height: 20}) {
		t.Errorf("expected 50x20, got %s", size)
	}
	if m := r.Measured(); len(m) != 1 || m[0] != "Hello" {
		t.Errorf("measured = %v", m)
	}
}

func TestRecorder_MeasureOverride(t *testing.T) {
	r := NewRecorder()
	fail := stderrors.New("no font")
	r.Measure = func(string, float64) (graphics.Size, error) { return graphics.Size{}, fail }

	if _, err := r.MeasureText("x", 10); !stderrors.Is(err, fail) {
		t.Errorf("expected injected error, got %v", err)
	}
}

func TestRecorder_SerializesDrawText(t *testing.T) {
	r := NewRecorder()
	r.DrawText("hi", graphics.Offset{X: 1.234, Y: 5}, graphics.TextStyle{FontSize: 24, Color: graphics.ColorWhite})

	ops := r.OpsNamed("drawText")
	if len(ops) != 1 {
		t.Fatalf("expected one drawText op, got %d", len(ops))
	}
	p := ops[0].Params
	if p["text"] != "hi" || p["x"] != 1.23 || p["y"] != 5.0 || p["color"] != "0xFFFFFFFF" {
		t.Errorf("unexpected params %v", p)
	}
}
