// Package engine drives frames: it builds the root context from the
// viewport, margin and theme, runs one top-down build of the widget tree
// per frame, and reports failures.
//
// A Driver is not safe for concurrent use. Independent drivers, each with
// its own renderer, may run in parallel.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/theme"
)

// DefaultMargin is the root origin used when no margin is configured.
var DefaultMargin = graphics.Offset{X: 50, Y: 50}

// Driver runs frames against a renderer.
type Driver struct {
	renderer graphics.Renderer
	viewport graphics.Size
	margin   graphics.Offset
	theme    theme.Theme
	handler  errors.ErrorHandler
	quiet    bool
	trace    *FrameTraceBuffer
	frames   int
	failed   int
	last     time.Duration
	total    time.Duration
	now      func() time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithMargin sets the root context's origin.
func WithMargin(margin graphics.Offset) Option {
	return func(d *Driver) { d.margin = margin }
}

// WithTheme sets the theme placed in every root context.
func WithTheme(t theme.Theme) Option {
	return func(d *Driver) { d.theme = t }
}

// WithHandler reports every failed frame to h in addition to returning
// the error. Without it the driver reports to errors.Handler() as it was
// when NewDriver ran. A nil h disables reporting; failures are then only
// returned.
func WithHandler(h errors.ErrorHandler) Option {
	return func(d *Driver) {
		d.handler = h
		d.quiet = h == nil
	}
}

// WithTrace records frame samples into buf.
func WithTrace(buf *FrameTraceBuffer) Option {
	return func(d *Driver) { d.trace = buf }
}

// NewDriver creates a driver for a viewport of the given size.
func NewDriver(r graphics.Renderer, viewport graphics.Size, opts ...Option) (*Driver, error) {
	if r == nil {
		return nil, fmt.Errorf("engine: renderer required")
	}
	d := &Driver{
		renderer: r,
		margin:   DefaultMargin,
		theme:    theme.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.handler == nil && !d.quiet {
		d.handler = errors.Handler()
	}
	if err := d.SetViewport(viewport); err != nil {
		return nil, err
	}
	if err := d.theme.Validate(); err != nil {
		return nil, &errors.FrameError{Op: "engine.NewDriver", Kind: errors.KindConfig, Err: err}
	}
	if d.trace == nil {
		d.trace = NewFrameTraceBuffer(0, 0)
	}
	return d, nil
}

// SetViewport changes the viewport used by subsequent frames. Both extents
// must be finite and non-negative.
func (d *Driver) SetViewport(size graphics.Size) error {
	if !finite(size.Width) || !finite(size.Height) {
		return &errors.FrameError{
			Op:   "engine.SetViewport",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("viewport %s must be finite", size),
		}
	}
	if size.Width < 0 || size.Height < 0 {
		return &errors.FrameError{
			Op:   "engine.SetViewport",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("viewport %s must not be negative", size),
		}
	}
	d.viewport = size
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RootContext returns the context the next frame's root will be built with.
func (d *Driver) RootContext() core.BuildContext {
	return core.NewRootContext(d.renderer, d.viewport, d.margin, d.theme)
}

// Frame runs one frame: it clears the surface with the theme background
// (when the renderer supports it) and builds root. A panic inside the
// build is recovered and returned as an *errors.PanicError.
func (d *Driver) Frame(root core.Widget) (err error) {
	index := d.frames
	d.frames++
	start := d.now()

	defer func() {
		if p := errors.Capture("engine.Frame", recover()); p != nil {
			err = p
		}
		elapsed := d.now().Sub(start)
		d.last = elapsed
		d.total += elapsed
		sample := FrameSample{
			Frame:     index,
			Timestamp: start.UnixMilli(),
			BuildMs:   durationToMillis(elapsed),
		}
		if err != nil {
			sample.Err = err.Error()
			sample.Kind = errors.KindOf(err).String()
			d.failed++
			errors.ReportTo(d.handler, err)
		}
		d.trace.Add(sample, elapsed)
	}()

	if c, ok := d.renderer.(graphics.Clearer); ok {
		c.Clear(d.theme.BackgroundColor)
	}
	if root == nil {
		return nil
	}
	return core.BuildChild(d.RootContext(), root, -1)
}

// Run executes frames frames. The tree is rebuilt from scratch for each
// one by calling build with the frame's index. Run stops at the first
// failing frame and returns its error.
func (d *Driver) Run(frames int, build func(frame int) core.Widget) error {
	for i := 0; i < frames; i++ {
		if err := d.Frame(build(i)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Frames returns the number of frames started so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Stats reports the frame count and build times so far.
func (d *Driver) Stats() Stats {
	return Stats{
		Frames:       d.frames,
		FailedFrames: d.failed,
		LastBuild:    d.last,
		TotalBuild:   d.total,
		Memory:       ReadRuntimeSample(),
	}
}

// Timeline returns the recorded frame samples.
func (d *Driver) Timeline() FrameTimeline {
	return d.trace.Snapshot()
}
