//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains resource usage of the process behind a log source
type Stats struct {
	CPU float64 // percent
	MEM float64 // resident set in MB
}

// Monitor samples resource usage by host PID
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
}

type monitor struct{}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

// GetStats returns zero stats for an unknown PID so sources without a process stay quiet
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}
