package engine

import (
	"testing"
	"time"
)

func TestFrameTraceBuffer_Defaults(t *testing.T) {
	b := NewFrameTraceBuffer(0, 0)
	if b.Capacity() != frameTraceSamplesDefault {
		t.Errorf("capacity = %d", b.Capacity())
	}
	if b.Threshold() != defaultFrameTraceThreshold {
		t.Errorf("threshold = %s", b.Threshold())
	}
	if s := b.Snapshot(); len(s.Samples) != 0 {
		t.Errorf("expected empty snapshot, got %d samples", len(s.Samples))
	}
}

func TestFrameTraceBuffer_WrapsChronologically(t *testing.T) {
	b := NewFrameTraceBuffer(3, 10*time.Millisecond)
	for i := 0; i < 5; i++ {
		b.Add(FrameSample{Frame: i}, time.Millisecond)
	}

	s := b.Snapshot()
	if len(s.Samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(s.Samples))
	}
	for i, sample := range s.Samples {
		if sample.Frame != i+2 {
			t.Errorf("sample %d is frame %d, want %d", i, sample.Frame, i+2)
		}
	}
}

func TestFrameTraceBuffer_CountsDroppedAndFailed(t *testing.T) {
	b := NewFrameTraceBuffer(4, 10*time.Millisecond)
	b.Add(FrameSample{Frame: 0}, 5*time.Millisecond)
	b.Add(FrameSample{Frame: 1}, 20*time.Millisecond)
	b.Add(FrameSample{Frame: 2, Err: "boom"}, time.Millisecond)

	s := b.Snapshot()
	if s.DroppedFrames != 1 || s.FailedFrames != 1 {
		t.Errorf("dropped=%d failed=%d", s.DroppedFrames, s.FailedFrames)
	}
	if s.ThresholdMs != 10 {
		t.Errorf("threshold = %g", s.ThresholdMs)
	}
}
