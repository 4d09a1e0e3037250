// Package errors provides structured error handling for the flit layout core.
//
// Layout contract violations are programming errors in the widget tree. They
// are returned as values rather than aborting the process, but carry the
// same information as a fatal assertion would: which axis, how far, and
// in which widget.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a child region exceeding its parent's region.
	KindLayout
	// KindOverflow indicates content exceeding its allotted region.
	KindOverflow
	// KindRender indicates a renderer failure (font loading, measurement, output).
	KindRender
	// KindConfig indicates an invalid theme, scene or project configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a widget build failure with no more specific cause.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindOverflow:
		return "overflow"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against the typed errors below.
var (
	// ErrOutOfBoundsLayout reports a derived region larger than its parent.
	ErrOutOfBoundsLayout = stderrors.New("out of bounds layout")
	// ErrContentOverflow reports hard-wrapped content larger than its region.
	ErrContentOverflow = stderrors.New("content overflow")
)

// Axis names the dimension a layout error refers to.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// dimension returns "width" or "height".
func (a Axis) dimension() string {
	if a == AxisVertical {
		return "height"
	}
	return "width"
}

// OutOfBoundsError reports a child region that exceeds its parent's region
// on one axis.
type OutOfBoundsError struct {
	// Axis is the offending dimension.
	Axis Axis
	// Requested is the child's extent on Axis.
	Requested float64
	// Available is the parent's extent on Axis.
	Available float64
}

func (e *OutOfBoundsError) Error() string {
	if e.Requested < 0 {
		return fmt.Sprintf("child %s %g must not be negative", e.Axis.dimension(), e.Requested)
	}
	return fmt.Sprintf("child %s %g exceeds parent %s %g",
		e.Axis.dimension(), e.Requested, e.Axis.dimension(), e.Available)
}

// Is reports whether target is ErrOutOfBoundsLayout.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBoundsLayout
}

// ContentOverflowError reports hard-wrapped text whose measured extent
// exceeds its region.
type ContentOverflowError struct {
	// Text is the content that overflowed.
	Text string
	// Axis is the overflowing dimension.
	Axis Axis
	// Measured is the content's extent on Axis.
	Measured float64
	// Available is the region's extent on Axis.
	Available float64
	// Overflow is Measured - Available, in pixels.
	Overflow float64
}

func (e *ContentOverflowError) Error() string {
	return fmt.Sprintf("text %q overflowed by %g pixels on the %s axis (measured %g, available %g); allow overflow to render past the region",
		e.Text, e.Overflow, e.Axis, e.Measured, e.Available)
}

// Is reports whether target is ErrContentOverflow.
func (e *ContentOverflowError) Is(target error) bool {
	return target == ErrContentOverflow
}

// FrameError represents a structured, non-layout error: renderer or
// configuration failures surfaced during a frame or while loading inputs.
type FrameError struct {
	// Op is the operation that failed (e.g., "raster.MeasureText").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panic value that is itself an error, so callers can
// match e.g. an *OutOfBoundsError a widget panicked with.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure during widget build. Containers wrap the
// errors of their children so the message traces the path to the failure.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Index is the child's position within its parent, or -1 for a root
	// or single-child slot.
	Index int
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	name := e.Widget
	if e.Index >= 0 {
		name = fmt.Sprintf("%s[%d]", e.Widget, e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s.Build(): %v", name, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", name)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// KindOf classifies err by its innermost known cause: containment and
// overflow violations are KindLayout and KindOverflow, a FrameError keeps
// its own kind, a recovered panic is KindPanic and any other failure below
// a BuildError is KindBuild. Nil and unrecognised errors are KindUnknown.
func KindOf(err error) ErrorKind {
	var (
		frame *FrameError
		p     *PanicError
		build *BuildError
	)
	switch {
	case err == nil:
		return KindUnknown
	case stderrors.Is(err, ErrOutOfBoundsLayout):
		return KindLayout
	case stderrors.Is(err, ErrContentOverflow):
		return KindOverflow
	case stderrors.As(err, &frame):
		return frame.Kind
	case stderrors.As(err, &p):
		return KindPanic
	case stderrors.As(err, &build):
		return KindBuild
	default:
		return KindUnknown
	}
}

// ErrorHandler receives errors reported by the flit framework.
type ErrorHandler interface {
	// HandleError is called when a renderer or configuration error occurs.
	HandleError(err *FrameError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
