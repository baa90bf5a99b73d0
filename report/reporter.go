package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/i3T4AN/Syspulse/share/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

func ParseFormat(str string) (Format, error) {
	switch Format(str) {
	case FormatJSON, FormatCSV, FormatText:
		return Format(str), nil
	}
	return "", fmt.Errorf("invalid report format: %q", str)
}

const noDataAvailable = "No data available"

const recentRecordsLimit = 10

// Report is the JSON report envelope. Statistics are ordered newest first;
// Summary is omitted when the report covers zero records.
type Report struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	TotalRecords int                  `json:"total_records"`
	Statistics   []models.Measurement `json:"statistics"`
	Summary      *Summary             `json:"summary,omitempty"`
}

// Render produces the report in the requested encoding. The measurements are
// expected newest first, the order the monitoring store returns them in.
func Render(measurements []models.Measurement, format Format, now time.Time) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(measurements, now)
	case FormatCSV:
		return renderCSV(measurements)
	case FormatText:
		return renderText(measurements, now), nil
	}
	return "", fmt.Errorf("invalid report format: %q", format)
}

func renderJSON(measurements []models.Measurement, now time.Time) (string, error) {
	r := Report{
		GeneratedAt:  now,
		TotalRecords: len(measurements),
		Statistics:   measurements,
	}
	if len(measurements) > 0 {
		summary := Summarize(measurements).Rounded()
		r.Summary = &summary
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal report")
	}
	return string(b), nil
}

var csvHeader = []string{
	"id",
	"timestamp",
	"cpu_percent",
	"memory_percent",
	"memory_used_bytes",
	"memory_total_bytes",
	"disk_percent",
	"disk_used_bytes",
	"disk_total_bytes",
	"uptime_seconds",
	"network_latency_ms",
}

func renderCSV(measurements []models.Measurement) (string, error) {
	if len(measurements) == 0 {
		return noDataAvailable, nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", errors.Wrap(err, "failed to write csv header")
	}
	for i := range measurements {
		if err := w.Write(csvRow(&measurements[i])); err != nil {
			return "", errors.Wrap(err, "failed to write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "failed to flush csv")
	}
	return sb.String(), nil
}

func csvRow(m *models.Measurement) []string {
	latency := ""
	if m.NetworkLatencyMS != nil {
		latency = formatFloat(*m.NetworkLatencyMS)
	}
	return []string{
		strconv.FormatInt(m.ID, 10),
		strconv.FormatInt(m.Timestamp, 10),
		formatFloat(m.CPUPercent),
		formatFloat(m.MemoryPercent),
		strconv.FormatUint(m.MemoryUsedBytes, 10),
		strconv.FormatUint(m.MemoryTotalBytes, 10),
		formatFloat(m.DiskPercent),
		strconv.FormatUint(m.DiskUsedBytes, 10),
		strconv.FormatUint(m.DiskTotalBytes, 10),
		strconv.FormatUint(m.UptimeSeconds, 10),
		latency,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderText(measurements []models.Measurement, now time.Time) string {
	if len(measurements) == 0 {
		return noDataAvailable
	}

	banner := strings.Repeat("=", 70)
	divider := strings.Repeat("-", 70)

	lines := []string{
		banner,
		"SYSPULSE SYSTEM STATISTICS REPORT",
		banner,
		fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Total Records: %d", len(measurements)),
		"",
		"SUMMARY (All Records)",
		divider,
	}

	summary := Summarize(measurements)
	lines = append(lines,
		fmt.Sprintf("CPU Usage:        Avg: %.2f%%  Min: %.2f%%  Max: %.2f%%",
			summary.CPU.Avg, summary.CPU.Min, summary.CPU.Max),
		fmt.Sprintf("Memory Usage:     Avg: %.2f%%  Min: %.2f%%  Max: %.2f%%",
			summary.Memory.Avg, summary.Memory.Min, summary.Memory.Max),
		fmt.Sprintf("Disk Usage:       Avg: %.2f%%  Min: %.2f%%  Max: %.2f%%",
			summary.Disk.Avg, summary.Disk.Min, summary.Disk.Max),
	)
	if summary.Network != nil {
		lines = append(lines,
			fmt.Sprintf("Network Latency:  Avg: %.2fms  Min: %.2fms  Max: %.2fms",
				summary.Network.Avg, summary.Network.Min, summary.Network.Max))
	}

	lines = append(lines, "", fmt.Sprintf("RECENT RECORDS (Last %d)", recentRecordsLimit), divider)

	recent := measurements
	if len(recent) > recentRecordsLimit {
		recent = recent[:recentRecordsLimit]
	}
	for i := range recent {
		m := &recent[i]
		lines = append(lines,
			"",
			fmt.Sprintf("Timestamp: %s", m.Time().Format(time.RFC3339)),
			fmt.Sprintf("  CPU:     %.2f%%", m.CPUPercent),
			fmt.Sprintf("  Memory:  %.2f%% (%.2fGB / %.2fGB)",
				m.MemoryPercent, bytesToGB(m.MemoryUsedBytes), bytesToGB(m.MemoryTotalBytes)),
			fmt.Sprintf("  Disk:    %.2f%% (%.2fGB / %.2fGB)",
				m.DiskPercent, bytesToGB(m.DiskUsedBytes), bytesToGB(m.DiskTotalBytes)),
			fmt.Sprintf("  Uptime:  %s", FormatUptime(m.UptimeSeconds)),
		)
		if m.NetworkLatencyMS != nil {
			lines = append(lines, fmt.Sprintf("  Network: %.2fms", *m.NetworkLatencyMS))
		} else {
			lines = append(lines, "  Network: N/A")
		}
	}

	lines = append(lines, "", banner)

	return strings.Join(lines, "\n")
}

func bytesToGB(b uint64) float64 {
	return float64(b) / (1 << 30)
}
