package observability

import (
	"log/slog"
	"nlu-lab/neural"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// TrainingStats gathers what is reported once a training run is over.
type TrainingStats struct {
	Examples        int           `json:"examples"`
	Iterations      int           `json:"iterations"`
	Error           float64       `json:"error"`
	Duration        time.Duration `json:"duration"`
	EpochsPerSecond float64       `json:"epochs_per_second"`

	// --- PROCESS METRICS ---
	RssMb      uint64  `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
}

// TrainingMonitor keeps the stats of the last training run of this process.
type TrainingMonitor struct {
	log    *slog.Logger
	mu     sync.RWMutex
	latest TrainingStats
}

func NewTrainingMonitor(log *slog.Logger) *TrainingMonitor {
	return &TrainingMonitor{log: log}
}

// Record samples the process and stores the stats of a finished run.
func (tm *TrainingMonitor) Record(status neural.Status, examples int, duration time.Duration) TrainingStats {
	stats := TrainingStats{
		Examples:   examples,
		Iterations: status.Iterations,
		Error:      status.Error,
		Duration:   duration,
	}
	if seconds := duration.Seconds(); seconds > 0 {
		stats.EpochsPerSecond = float64(status.Iterations) / seconds
	}
	tm.sampleProcess(&stats)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC

	tm.mu.Lock()
	tm.latest = stats
	tm.mu.Unlock()

	tm.log.Info("Training stats",
		"examples", stats.Examples,
		"iterations", stats.Iterations,
		"error", stats.Error,
		"duration", stats.Duration,
		"epochs_per_second", stats.EpochsPerSecond,
		"rss_mb", stats.RssMb,
		"cpu_percent", stats.CPUPercent,
	)
	return stats
}

func (tm *TrainingMonitor) sampleProcess(stats *TrainingStats) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		tm.log.Debug("Error while retrieving process", "err", err)
		return
	}
	if info, err := p.MemoryInfo(); err != nil {
		tm.log.Debug("Error while finding process ram usage", "err", err)
	} else {
		stats.RssMb = info.RSS / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err != nil {
		tm.log.Debug("Error while finding process cpu usage", "err", err)
	} else {
		stats.CPUPercent = cpu
	}
}

func (tm *TrainingMonitor) GetLatest() TrainingStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.latest
}
