package engine

import "time"

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FrameSample is a single frame trace sample.
type FrameSample struct {
	// Frame is the zero-based frame index within the driver's lifetime.
	Frame int `json:"frame"`
	// Timestamp is the frame start in Unix milliseconds.
	Timestamp int64 `json:"ts"`
	// BuildMs is the wall time spent building the tree.
	BuildMs float64 `json:"buildMs"`
	// Err is the frame's error message, empty on success.
	Err string `json:"err,omitempty"`
	// Kind is the errors.KindOf class of Err, empty on success.
	Kind string `json:"kind,omitempty"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	FailedFrames  int           `json:"failedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer. Frames
// slower than the threshold are counted as dropped.
type FrameTraceBuffer struct {
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	failed    int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a new frame trace buffer. Non-positive
// arguments select the defaults (240 samples, one 60 Hz frame).
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	return len(b.samples)
}

// Threshold returns the dropped frame threshold.
func (b *FrameTraceBuffer) Threshold() time.Duration {
	return b.threshold
}

// Add records a frame sample and updates the dropped and failed counts.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.dropped++
	}
	if sample.Err != "" {
		b.failed++
	}
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	timeline := FrameTimeline{
		DroppedFrames: b.dropped,
		FailedFrames:  b.failed,
		ThresholdMs:   durationToMillis(b.threshold),
	}
	if b.count == 0 {
		return timeline
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}
	timeline.Samples = result
	return timeline
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
