package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	defaultHandler ErrorHandler = &LogHandler{}
	handlerMu      sync.RWMutex
)

// SetHandler configures the process-wide fallback handler. Drivers created
// without a handler option report to the handler set at creation time.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	defaultHandler = h
}

// Handler returns the current fallback handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// ReportTo dispatches err to h according to its concrete type. FrameError,
// PanicError and BuildError go to their dedicated methods; anything else is
// wrapped in a FrameError of KindUnknown. A nil h or err is ignored.
func ReportTo(h ErrorHandler, err error) {
	if h == nil || err == nil {
		return
	}
	switch e := err.(type) {
	case *FrameError:
		if e == nil {
			return
		}
		stamp(&e.Timestamp)
		h.HandleError(e)
	case *PanicError:
		if e == nil {
			return
		}
		stamp(&e.Timestamp)
		h.HandlePanic(e)
	case *BuildError:
		if e == nil {
			return
		}
		stamp(&e.Timestamp)
		h.HandleBuildError(e)
	default:
		h.HandleError(&FrameError{Op: "unknown", Kind: KindUnknown, Err: err, Timestamp: time.Now()})
	}
}

// Capture converts a value returned by recover() into a PanicError.
// It returns nil when r is nil.
func Capture(op string, r any) *PanicError {
	if r == nil {
		return nil
	}
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the runtime.Callers and CaptureStack frames.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
