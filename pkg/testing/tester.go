package testing

import (
	"testing"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/engine"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/theme"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
)

// WidgetTester builds widgets against a Recorder through the same frame
// driver the CLI uses. The root region starts at the origin unless a margin
// is set.
type WidgetTester struct {
	ContextLog

	t        testing.TB
	size     graphics.Size
	margin   graphics.Offset
	theme    theme.Theme
	recorder *Recorder
	driver   *engine.Driver
}

// NewWidgetTester creates a tester with an 800x600 viewport at the origin
// and the default theme.
func NewWidgetTester(t testing.TB) *WidgetTester {
	t.Helper()
	return &WidgetTester{
		t:        t,
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		theme:    theme.Default(),
		recorder: NewRecorder(),
	}
}

// SetSize sets the viewport size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
	t.driver = nil
}

// SetMargin sets the root origin. Must be called before PumpWidget.
func (t *WidgetTester) SetMargin(margin graphics.Offset) {
	t.margin = margin
	t.driver = nil
}

// SetTheme replaces the theme. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(th theme.Theme) {
	t.theme = th
	t.driver = nil
}

// SetMeasure replaces the recorder's text metrics.
func (t *WidgetTester) SetMeasure(m MeasureFunc) {
	t.recorder.Measure = m
}

// Recorder returns the recorder frames are drawn into.
func (t *WidgetTester) Recorder() *Recorder {
	return t.recorder
}

// RootContext returns the context PumpWidget builds the root with.
func (t *WidgetTester) RootContext() core.BuildContext {
	return core.NewRootContext(t.recorder, t.size, t.margin, t.theme)
}

// PumpWidget runs one frame with widget as the root. Recordings and probe
// entries from previous frames are discarded first. A failed frame is
// returned, never reported to an error handler.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.t.Helper()
	if t.driver == nil {
		d, err := engine.NewDriver(t.recorder, t.size,
			engine.WithMargin(t.margin),
			engine.WithTheme(t.theme),
			engine.WithHandler(nil),
		)
		if err != nil {
			t.t.Fatalf("creating driver: %v", err)
			return err
		}
		t.driver = d
	}
	t.recorder.Reset()
	t.ContextLog.Reset()
	return t.driver.Frame(widget)
}

// MustPump is PumpWidget failing the test on error.
func (t *WidgetTester) MustPump(widget core.Widget) {
	t.t.Helper()
	if err := t.PumpWidget(widget); err != nil {
		t.t.Fatalf("PumpWidget: %v", err)
	}
}

// Ops returns the operations recorded by the last frame.
func (t *WidgetTester) Ops() []DisplayOp {
	return t.recorder.Ops()
}

// Texts returns the DrawText calls of the last frame.
func (t *WidgetTester) Texts() []TextCall {
	return t.recorder.Texts()
}

// Rects returns the DrawRectangle calls of the last frame.
func (t *WidgetTester) Rects() []RectCall {
	return t.recorder.Rects()
}
