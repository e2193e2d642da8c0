package sysload

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Sampler reports current CPU utilization as a percentage in [0, 100].
// Each call takes a fresh point-in-time sample; results are never cached.
type Sampler interface {
	CPUPercent(ctx context.Context) (float64, error)
}

// CPUSampler samples system-wide CPU utilization over a fixed interval.
type CPUSampler struct {
	interval time.Duration
}

// NewCPUSampler creates a sampler with the given sampling interval.
// A non-positive interval falls back to 250ms.
func NewCPUSampler(interval time.Duration) *CPUSampler {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &CPUSampler{interval: interval}
}

// CPUPercent blocks for the sampling interval and returns the utilization
// across all cores combined.
func (s *CPUSampler) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, s.interval, false)
	if err != nil {
		return 0, fmt.Errorf("sample cpu utilization: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("sample cpu utilization: no data")
	}
	return percents[0], nil
}

// Static is a Sampler that always reports a fixed value. Useful in tests and
// for pinning the grid size from configuration.
type Static float64

// CPUPercent returns the fixed value.
func (s Static) CPUPercent(context.Context) (float64, error) {
	return float64(s), nil
}
