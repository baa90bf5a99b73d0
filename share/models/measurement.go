package models

import "time"

// Measurement is one host metrics snapshot. Rows are append-only: once
// written they are never updated, only bulk-deleted by a retention sweep.
//
// NetworkLatencyMS is nil when the probe failed or timed out, which is
// distinct from a measured latency of zero.
type Measurement struct {
	ID               int64    `json:"id" db:"id"`
	Timestamp        int64    `json:"timestamp" db:"timestamp"`
	CPUPercent       float64  `json:"cpu_percent" db:"cpu_percent"`
	MemoryPercent    float64  `json:"memory_percent" db:"memory_percent"`
	MemoryUsedBytes  uint64   `json:"memory_used_bytes" db:"memory_used_bytes"`
	MemoryTotalBytes uint64   `json:"memory_total_bytes" db:"memory_total_bytes"`
	DiskPercent      float64  `json:"disk_percent" db:"disk_percent"`
	DiskUsedBytes    uint64   `json:"disk_used_bytes" db:"disk_used_bytes"`
	DiskTotalBytes   uint64   `json:"disk_total_bytes" db:"disk_total_bytes"`
	UptimeSeconds    uint64   `json:"uptime_seconds" db:"uptime_seconds"`
	NetworkLatencyMS *float64 `json:"network_latency_ms" db:"network_latency_ms"`
}

func (m *Measurement) Time() time.Time {
	return time.Unix(m.Timestamp, 0).UTC()
}
