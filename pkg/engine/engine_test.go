package engine

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/theme"
)

type fakeRenderer struct {
	cleared []graphics.Color
	rects   int
}

func (f *fakeRenderer) Clear(c graphics.Color)                      { f.cleared = append(f.cleared, c) }
func (f *fakeRenderer) DrawRectangle(graphics.Rect, graphics.Color) { f.rects++ }
func (f *fakeRenderer) DrawText(string, graphics.Offset, graphics.TextStyle) {}
func (f *fakeRenderer) MeasureText(text string, fontSize float64) (graphics.Size, error) {
	return graphics.Size{Width: float64(len(text)) * fontSize / 2, Height: fontSize}, nil
}

type recordingHandler struct {
	frames []*errors.FrameError
	panics []*errors.PanicError
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(err *errors.FrameError)      { h.frames = append(h.frames, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)      { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) { h.builds = append(h.builds, err) }

func newDriver(t *testing.T, opts ...Option) (*Driver, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	d, err := NewDriver(r, graphics.Size{Width: 800, Height: 600}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return d, r
}

func TestNewDriver_Defaults(t *testing.T) {
	d, _ := newDriver(t)

	ctx := d.RootContext()
	if ctx.Position != DefaultMargin {
		t.Errorf("root position = %s, want %s", ctx.Position, DefaultMargin)
	}
	if ctx.Size != (graphics.Size{Width: 800, Height: 600}) {
		t.Errorf("root size = %s", ctx.Size)
	}
	if ctx.Theme != theme.Default() {
		t.Errorf("root theme = %+v", ctx.Theme)
	}
}

func TestNewDriver_Rejects(t *testing.T) {
	if _, err := NewDriver(nil, graphics.Size{}); err == nil {
		t.Error("expected error for nil renderer")
	}

	_, err := NewDriver(&fakeRenderer{}, graphics.Size{Width: -1, Height: 10})
	var fe *errors.FrameError
	if !stderrors.As(err, &fe) || fe.Kind != errors.KindConfig {
		t.Errorf("expected config error for negative viewport, got %v", err)
	}

	for _, size := range []graphics.Size{
		{Width: math.NaN(), Height: 10},
		{Width: 10, Height: math.Inf(1)},
		{Width: math.Inf(-1), Height: 10},
	} {
		_, err := NewDriver(&fakeRenderer{}, size)
		if !stderrors.As(err, &fe) || fe.Kind != errors.KindConfig {
			t.Errorf("expected config error for viewport %s, got %v", size, err)
		}
	}

	_, err = NewDriver(&fakeRenderer{}, graphics.Size{Width: 1, Height: 1}, WithTheme(theme.Theme{}))
	if !stderrors.As(err, &fe) || fe.Kind != errors.KindConfig {
		t.Errorf("expected config error for invalid theme, got %v", err)
	}
}

func TestFrame_ClearsAndBuildsRoot(t *testing.T) {
	th := theme.Default().WithBackgroundColor(graphics.ColorBlue)
	d, r := newDriver(t, WithTheme(th), WithMargin(graphics.Offset{X: 1, Y: 2}))

	var got core.BuildContext
	err := d.Frame(core.WidgetFunc(func(ctx core.BuildContext) error {
		got = ctx
		ctx.Renderer.DrawRectangle(ctx.Rect(), graphics.ColorRed)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.cleared) != 1 || r.cleared[0] != graphics.ColorBlue {
		t.Errorf("cleared = %v", r.cleared)
	}
	if r.rects != 1 {
		t.Errorf("expected root to draw, got %d rects", r.rects)
	}
	if got.Position != (graphics.Offset{X: 1, Y: 2}) || got.Theme != th {
		t.Errorf("root context = %s", got)
	}
}

func TestFrame_NilRoot(t *testing.T) {
	d, r := newDriver(t)
	if err := d.Frame(nil); err != nil {
		t.Fatal(err)
	}
	if len(r.cleared) != 1 {
		t.Error("expected the surface to be cleared")
	}
}

func TestFrame_ReportsFailures(t *testing.T) {
	h := &recordingHandler{}
	d, _ := newDriver(t, WithHandler(h))
	cause := stderrors.New("boom")

	err := d.Frame(core.WidgetFunc(func(core.BuildContext) error { return cause }))

	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause, got %v", err)
	}
	if len(h.builds) != 1 || h.builds[0].Widget != "WidgetFunc" || h.builds[0].Index != -1 {
		t.Errorf("handler saw %+v", h.builds)
	}
}

func TestFrame_RecoversPanic(t *testing.T) {
	h := &recordingHandler{}
	d, _ := newDriver(t, WithHandler(h))

	err := d.Frame(core.WidgetFunc(func(core.BuildContext) error { panic("kaboom") }))

	var pe *errors.PanicError
	if !stderrors.As(err, &pe) || pe.Value != "kaboom" || pe.Op != "engine.Frame" {
		t.Fatalf("expected recovered panic, got %v", err)
	}
	if len(h.panics) != 1 {
		t.Errorf("expected panic to be reported, got %d", len(h.panics))
	}
	if d.Stats().FailedFrames != 1 {
		t.Errorf("stats = %s", d.Stats())
	}
}

func TestRun_RebuildsEachFrame(t *testing.T) {
	d, _ := newDriver(t)
	var seen []int

	err := d.Run(3, func(frame int) core.Widget {
		return core.WidgetFunc(func(core.BuildContext) error {
			seen = append(seen, frame)
			return nil
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 || seen[0] != 0 || seen[2] != 2 {
		t.Errorf("built frames %v", seen)
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d", d.Frames())
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	d, _ := newDriver(t)
	cause := stderrors.New("bad frame")

	err := d.Run(5, func(frame int) core.Widget {
		return core.WidgetFunc(func(core.BuildContext) error {
			if frame == 1 {
				return cause
			}
			return nil
		})
	})

	if err == nil || !stderrors.Is(err, cause) {
		t.Fatalf("expected failure, got %v", err)
	}
	if got := err.Error(); got[:8] != "frame 1:" {
		t.Errorf("error = %q", got)
	}
	if d.Frames() != 2 {
		t.Errorf("expected to stop after frame 1, ran %d", d.Frames())
	}
}

func TestStats_TracksBuildTime(t *testing.T) {
	d, _ := newDriver(t)
	clock := time.Unix(0, 0)
	d.now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}

	_ = d.Frame(nil)
	_ = d.Frame(nil)

	s := d.Stats()
	if s.Frames != 2 || s.LastBuild != 5*time.Millisecond || s.TotalBuild != 10*time.Millisecond {
		t.Errorf("stats = %+v", s)
	}
	if s.AverageBuild() != 5*time.Millisecond {
		t.Errorf("average = %s", s.AverageBuild())
	}
	timeline := d.Timeline()
	if len(timeline.Samples) != 2 || timeline.Samples[1].Frame != 1 || timeline.Samples[0].BuildMs != 5 {
		t.Errorf("timeline = %+v", timeline)
	}
}

func TestSetViewport_RejectsNonFinite(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.SetViewport(graphics.Size{Width: math.Inf(1), Height: 100}); err == nil {
		t.Fatal("expected error for infinite viewport")
	}
	if got := d.RootContext().Size; got != (graphics.Size{Width: 800, Height: 600}) {
		t.Errorf("rejected viewport was applied: %s", got)
	}
}

func TestFrame_ReportsToFallbackHandler(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	d, _ := newDriver(t)
	err := d.Frame(core.WidgetFunc(func(ctx core.BuildContext) error {
		_, err := ctx.ChildContext(graphics.Size{Width: ctx.Size.Width + 1}, ctx.Position)
		return err
	}))

	if !stderrors.Is(err, errors.ErrOutOfBoundsLayout) {
		t.Fatalf("expected out of bounds error, got %v", err)
	}
	if len(h.builds) != 1 {
		t.Fatalf("fallback handler saw %d build errors, want 1", len(h.builds))
	}
}

func TestWithHandler_NilDisablesReporting(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	d, _ := newDriver(t, WithHandler(nil))
	if err := d.Frame(core.WidgetFunc(func(core.BuildContext) error { return stderrors.New("x") })); err == nil {
		t.Fatal("expected error")
	}
	if len(h.builds)+len(h.frames)+len(h.panics) != 0 {
		t.Errorf("quiet driver reported to the fallback handler: %+v", h)
	}
}

func TestTimeline_RecordsErrorKind(t *testing.T) {
	d, _ := newDriver(t, WithHandler(nil))
	_ = d.Frame(core.WidgetFunc(func(core.BuildContext) error { return nil }))
	_ = d.Frame(core.WidgetFunc(func(core.BuildContext) error {
		return &errors.ContentOverflowError{Text: "x", Measured: 2, Available: 1, Overflow: 1}
	}))

	samples := d.Timeline().Samples
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Kind != "" || samples[1].Kind != "overflow" {
		t.Errorf("kinds = %q, %q", samples[0].Kind, samples[1].Kind)
	}
}
