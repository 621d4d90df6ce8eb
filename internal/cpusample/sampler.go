// Package cpusample reads cumulative CPU time for the current process so the
// profiler middleware can attribute a CPU-time delta to individual requests.
// Readings overlap for concurrent requests; the numbers are a per-request
// upper bound, not an exact attribution.
package cpusample

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// Sampler reads cumulative CPU time consumed by the process, in milliseconds.
type Sampler interface {
	CPUTimeMs() (float64, error)
}

// ProcessSampler implements Sampler on top of the OS process table.
type ProcessSampler struct {
	proc *process.Process
}

// NewProcessSampler resolves the current process. On platforms where the
// process table cannot be read the caller should fall back to a nil sampler;
// requests then carry a CPU time of 0.0.
func NewProcessSampler() (*ProcessSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessSampler{proc: p}, nil
}

// CPUTimeMs returns user plus system CPU time since process start.
func (s *ProcessSampler) CPUTimeMs() (float64, error) {
	times, err := s.proc.Times()
	if err != nil {
		return 0, err
	}
	return (times.User + times.System) * 1000, nil
}
