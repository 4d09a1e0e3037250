package engine

import (
	"fmt"
	"runtime"
	"time"
)

// Stats summarizes the frames a Driver has run.
type Stats struct {
	Frames       int           `json:"frames"`
	FailedFrames int           `json:"failedFrames"`
	LastBuild    time.Duration `json:"lastBuild"`
	TotalBuild   time.Duration `json:"totalBuild"`
	Memory       RuntimeSample `json:"memory"`
}

// AverageBuild returns the mean build time per frame.
func (s Stats) AverageBuild() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.TotalBuild / time.Duration(s.Frames)
}

func (s Stats) String() string {
	return fmt.Sprintf("%d frames (%d failed), last %s, avg %s, heap %d KiB",
		s.Frames, s.FailedFrames, s.LastBuild, s.AverageBuild(), s.Memory.HeapAlloc/1024)
}

// RuntimeSample captures a snapshot of runtime memory/GC stats.
type RuntimeSample struct {
	Timestamp    int64  `json:"ts"`
	HeapAlloc    uint64 `json:"heapAlloc"`
	HeapInuse    uint64 `json:"heapInuse"`
	NumGC        uint32 `json:"numGC"`
	PauseTotalNs uint64 `json:"pauseTotalNs"`
}

// ReadRuntimeSample reads the current memory statistics.
func ReadRuntimeSample() RuntimeSample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return RuntimeSample{
		Timestamp:    time.Now().UnixMilli(),
		HeapAlloc:    ms.HeapAlloc,
		HeapInuse:    ms.HeapInuse,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
	}
}
