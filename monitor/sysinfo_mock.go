package monitor

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type SysInfoMock struct {
	CPUPercentPayload float64
	MemoryPayload     *mem.VirtualMemoryStat
	DiskPayload       *disk.UsageStat
	UptimePayload     uint64
	ErrorPayload      error
}

func (s *SysInfoMock) CPUPercent(ctx context.Context) (float64, error) {
	return s.CPUPercentPayload, s.ErrorPayload
}

func (s *SysInfoMock) MemoryStats(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return s.MemoryPayload, s.ErrorPayload
}

func (s *SysInfoMock) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return s.DiskPayload, s.ErrorPayload
}

func (s *SysInfoMock) Uptime(ctx context.Context) (uint64, error) {
	return s.UptimePayload, s.ErrorPayload
}
