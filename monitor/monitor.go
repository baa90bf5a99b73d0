package monitor

import (
	"context"
	"time"

	"github.com/i3T4AN/Syspulse/share/logger"
	"github.com/i3T4AN/Syspulse/share/models"
)

type Config struct {
	DiskPath     string
	ProbeHost    string
	ProbePort    string
	ProbeTimeout time.Duration
}

// Monitor produces one Measurement per call, best-effort: a failed probe for
// one metric is logged and leaves the zero value in place, it never fails
// the whole measurement.
type Monitor struct {
	logger     *logger.Logger
	config     Config
	systemInfo SysInfo
	prober     LatencyProber
}

func NewMonitor(log *logger.Logger, config Config, systemInfo SysInfo, prober LatencyProber) *Monitor {
	return &Monitor{logger: log, config: config, systemInfo: systemInfo, prober: prober}
}

func (m *Monitor) CreateMeasurement(ctx context.Context) *models.Measurement {
	var newMeasurement = &models.Measurement{}

	newMeasurement.Timestamp = time.Now().UTC().Unix()

	cpuPercent, err := m.systemInfo.CPUPercent(ctx)
	if err == nil {
		newMeasurement.CPUPercent = cpuPercent
	} else {
		m.logger.Debugf("cannot measure cpu_percent: %v", err)
	}

	memStats, err := m.systemInfo.MemoryStats(ctx)
	if err == nil {
		newMeasurement.MemoryPercent = memStats.UsedPercent
		newMeasurement.MemoryUsedBytes = memStats.Used
		newMeasurement.MemoryTotalBytes = memStats.Total
	} else {
		m.logger.Debugf("cannot measure memory usage: %v", err)
	}

	diskStats, err := m.systemInfo.DiskUsage(ctx, m.config.DiskPath)
	if err == nil {
		newMeasurement.DiskPercent = diskStats.UsedPercent
		newMeasurement.DiskUsedBytes = diskStats.Used
		newMeasurement.DiskTotalBytes = diskStats.Total
	} else {
		m.logger.Debugf("cannot measure disk usage of %s: %v", m.config.DiskPath, err)
	}

	uptime, err := m.systemInfo.Uptime(ctx)
	if err == nil {
		newMeasurement.UptimeSeconds = uptime
	} else {
		m.logger.Debugf("cannot measure uptime: %v", err)
	}

	newMeasurement.NetworkLatencyMS = m.prober.Probe(ctx)
	if newMeasurement.NetworkLatencyMS == nil {
		m.logger.Debugf("network latency probe to %s:%s failed", m.config.ProbeHost, m.config.ProbePort)
	}

	return newMeasurement
}
