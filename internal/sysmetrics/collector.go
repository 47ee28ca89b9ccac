// Package sysmetrics samples host utilization for the metrics job.
package sysmetrics

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is one sample of host utilization.
type Snapshot struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	SwapUsedPercent   float64 `json:"swap_used_percent"`
	Load1             float64 `json:"load_1"`
	Load5             float64 `json:"load_5"`
	Load15            float64 `json:"load_15"`
	DiskUsedPercent   float64 `json:"disk_used_percent"`
}

type Collector interface {
	Collect(ctx context.Context) (Snapshot, error)
}

type collector struct {
	diskPath string
}

func New() Collector {
	return NewWithPath("/")
}

// NewWithPath collects disk usage for the given mount point.
func NewWithPath(diskPath string) Collector {
	return &collector{diskPath: diskPath}
}

func (c *collector) Collect(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	cpuPercents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return snap, fmt.Errorf("failed to collect cpu: %w", err)
	}
	if len(cpuPercents) > 0 {
		snap.CPUPercent = cpuPercents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to collect memory: %w", err)
	}
	snap.MemoryUsedPercent = vm.UsedPercent

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to collect swap: %w", err)
	}
	snap.SwapUsedPercent = swap.UsedPercent

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to collect load: %w", err)
	}
	snap.Load1 = avg.Load1
	snap.Load5 = avg.Load5
	snap.Load15 = avg.Load15

	usage, err := disk.UsageWithContext(ctx, c.diskPath)
	if err != nil {
		return snap, fmt.Errorf("failed to collect disk usage: %w", err)
	}
	snap.DiskUsedPercent = usage.UsedPercent

	return snap, nil
}
