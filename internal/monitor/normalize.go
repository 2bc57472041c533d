package monitor

import (
	"math"

	"github.com/rileyhilliard/sysgauge/internal/config"
)

// Normalize converts a raw Snapshot into gauge percentages.
//
// All values are rounded half away from zero (math.Round); inputs are never
// negative, so in practice this is round-half-up: 73.4 -> 73, 73.5 -> 74.
// Network throughput is converted to KB per tick, capped at
// config.NetworkCeilingKB and scaled so the ceiling reads as 100.
func Normalize(s Snapshot) DisplayGauges {
	return DisplayGauges{
		CPU:      percent(s.CPUPercent),
		Memory:   memoryPercent(s.MemoryUsed, s.MemoryTotal),
		Download: throughputPercent(s.DownloadBytes),
		Upload:   throughputPercent(s.UploadBytes),
	}
}

func memoryPercent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return percent(float64(used) / float64(total) * 100)
}

func throughputPercent(bytes uint64) int {
	kb := math.Min(float64(bytes)/1024.0, config.NetworkCeilingKB)
	return percent(kb * 100 / config.NetworkCeilingKB)
}

// percent rounds v and clamps it to [0,100]. NaN reads as 0.
func percent(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}
