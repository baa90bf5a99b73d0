package report

import (
	"math"

	"github.com/i3T4AN/Syspulse/share/models"
)

type MetricSummary struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Summary holds per-metric aggregates over a sample set. Network is nil when
// no sample in the set carries a latency reading. A Summary is derived and
// never persisted: it is computed fresh from the given samples on every call.
type Summary struct {
	CPU     MetricSummary  `json:"cpu"`
	Memory  MetricSummary  `json:"memory"`
	Disk    MetricSummary  `json:"disk"`
	Network *MetricSummary `json:"network"`
}

// Summarize computes avg/min/max per metric. The network aggregate is
// restricted to samples with a present latency value, so its sample count
// may be smaller than len(measurements). Values are not rounded here;
// rounding is a presentation concern of the renderers.
func Summarize(measurements []models.Measurement) Summary {
	summary := Summary{}
	if len(measurements) == 0 {
		return summary
	}

	cpuValues := make([]float64, 0, len(measurements))
	memoryValues := make([]float64, 0, len(measurements))
	diskValues := make([]float64, 0, len(measurements))
	networkValues := make([]float64, 0, len(measurements))
	for _, m := range measurements {
		cpuValues = append(cpuValues, m.CPUPercent)
		memoryValues = append(memoryValues, m.MemoryPercent)
		diskValues = append(diskValues, m.DiskPercent)
		if m.NetworkLatencyMS != nil {
			networkValues = append(networkValues, *m.NetworkLatencyMS)
		}
	}

	summary.CPU = aggregate(cpuValues)
	summary.Memory = aggregate(memoryValues)
	summary.Disk = aggregate(diskValues)
	if len(networkValues) > 0 {
		network := aggregate(networkValues)
		summary.Network = &network
	}

	return summary
}

// Rounded returns a copy with all aggregates rounded to 2 decimal digits,
// for rendered output.
func (s Summary) Rounded() Summary {
	rounded := Summary{
		CPU:    s.CPU.rounded(),
		Memory: s.Memory.rounded(),
		Disk:   s.Disk.rounded(),
	}
	if s.Network != nil {
		network := s.Network.rounded()
		rounded.Network = &network
	}
	return rounded
}

func (m MetricSummary) rounded() MetricSummary {
	return MetricSummary{
		Avg: round2(m.Avg),
		Min: round2(m.Min),
		Max: round2(m.Max),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func aggregate(values []float64) MetricSummary {
	if len(values) == 0 {
		return MetricSummary{}
	}

	sum := 0.0
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return MetricSummary{
		Avg: sum / float64(len(values)),
		Min: min,
		Max: max,
	}
}
