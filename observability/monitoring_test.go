package observability

import (
	"log/slog"
	"testing"
	"time"

	"nlu-lab/neural"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTrainingMonitor_Record(t *testing.T) {
	req := require.New(t)
	monitor := NewTrainingMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.Equal(TrainingStats{}, monitor.GetLatest())

	// When a run of 300 epochs over 1.5 seconds is recorded
	stats := monitor.Record(neural.Status{Iterations: 300, Error: 0.001}, 12, 1500*time.Millisecond)

	// Then
	req.Equal(12, stats.Examples)
	req.Equal(300, stats.Iterations)
	req.InDelta(200.0, stats.EpochsPerSecond, 1e-9)
	req.GreaterOrEqual(stats.CPUPercent, 0.0)
	req.Equal(stats, monitor.GetLatest())
}

func TestTrainingMonitor_Record_Without_Duration(t *testing.T) {
	req := require.New(t)
	monitor := NewTrainingMonitor(slog.New(slog.DiscardHandler))

	stats := monitor.Record(neural.Status{Iterations: 1}, 1, 0)

	req.Equal(0.0, stats.EpochsPerSecond)
}
