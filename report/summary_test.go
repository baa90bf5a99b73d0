package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/i3T4AN/Syspulse/share/models"
	"github.com/i3T4AN/Syspulse/share/ptr"
)

func sample(cpu, memory, disk float64, latency *float64) models.Measurement {
	return models.Measurement{
		Timestamp:        1630454400,
		CPUPercent:       cpu,
		MemoryPercent:    memory,
		MemoryUsedBytes:  4 << 30,
		MemoryTotalBytes: 16 << 30,
		DiskPercent:      disk,
		DiskUsedBytes:    100 << 30,
		DiskTotalBytes:   200 << 30,
		UptimeSeconds:    3600,
		NetworkLatencyMS: latency,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	require.Equal(t, MetricSummary{}, summary.CPU)
	require.Equal(t, MetricSummary{}, summary.Memory)
	require.Equal(t, MetricSummary{}, summary.Disk)
	require.Nil(t, summary.Network)
}

func TestSummarizeAggregates(t *testing.T) {
	measurements := []models.Measurement{
		sample(10, 20, 30, ptr.Float64(5)),
		sample(50, 40, 60, nil),
		sample(90, 60, 90, ptr.Float64(15)),
	}

	summary := Summarize(measurements)

	require.Equal(t, MetricSummary{Avg: 50, Min: 10, Max: 90}, summary.CPU)
	require.Equal(t, MetricSummary{Avg: 40, Min: 20, Max: 60}, summary.Memory)
	require.Equal(t, MetricSummary{Avg: 60, Min: 30, Max: 90}, summary.Disk)

	// network aggregate covers only the samples with a latency reading
	require.NotNil(t, summary.Network)
	require.Equal(t, MetricSummary{Avg: 10, Min: 5, Max: 15}, *summary.Network)
}

func TestSummarizeNetworkAllAbsent(t *testing.T) {
	measurements := []models.Measurement{
		sample(10, 20, 30, nil),
		sample(50, 40, 60, nil),
	}

	summary := Summarize(measurements)
	require.Nil(t, summary.Network)
	require.Equal(t, MetricSummary{Avg: 30, Min: 10, Max: 50}, summary.CPU)
}

func TestSummarizeOrderingInvariant(t *testing.T) {
	sampleSets := [][]models.Measurement{
		{sample(42, 42, 42, ptr.Float64(1))},
		{sample(1, 99, 50, nil), sample(99, 1, 50, ptr.Float64(200))},
		{sample(33.3, 66.6, 11.1, ptr.Float64(0)), sample(66.6, 33.3, 22.2, ptr.Float64(7.5)), sample(50, 50, 50, nil)},
	}

	for _, measurements := range sampleSets {
		summary := Summarize(measurements)
		for _, m := range []MetricSummary{summary.CPU, summary.Memory, summary.Disk} {
			require.LessOrEqual(t, m.Min, m.Avg)
			require.LessOrEqual(t, m.Avg, m.Max)
		}
		if summary.Network != nil {
			require.LessOrEqual(t, summary.Network.Min, summary.Network.Avg)
			require.LessOrEqual(t, summary.Network.Avg, summary.Network.Max)
		}
	}
}

func TestSummaryRounded(t *testing.T) {
	measurements := []models.Measurement{
		sample(10, 10, 10, ptr.Float64(3)),
		sample(10.111, 20.555, 30.999, ptr.Float64(3.333)),
		sample(10.2, 20.4, 30.8, nil),
	}

	rounded := Summarize(measurements).Rounded()
	require.Equal(t, 10.1, rounded.CPU.Avg)
	require.Equal(t, 10.2, rounded.CPU.Max)
	require.Equal(t, 10.0, rounded.CPU.Min)
	require.Equal(t, 3.17, rounded.Network.Avg)
	require.Equal(t, 3.33, rounded.Network.Max)
}
