package monitor

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type SysInfo interface {
	CPUPercent(ctx context.Context) (float64, error)
	MemoryStats(ctx context.Context) (*mem.VirtualMemoryStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	Uptime(ctx context.Context) (uint64, error)
}

type realSystemInfo struct{}

func NewSystemInfo() SysInfo {
	return &realSystemInfo{}
}

func (s *realSystemInfo) CPUPercent(ctx context.Context) (float64, error) {
	percentCPU := 0.0
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return percentCPU, err
	}

	if len(percents) == 1 {
		percentCPU = percents[0]
	}
	return percentCPU, err
}

func (s *realSystemInfo) MemoryStats(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (s *realSystemInfo) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (s *realSystemInfo) Uptime(ctx context.Context) (uint64, error) {
	return host.UptimeWithContext(ctx)
}
