package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"echo-lab/runtime"
)

// EngineStats is the slice of engine telemetry the heartbeat reports.
type EngineStats interface {
	Stats() runtime.Stats
}

// HeartbeatWorker periodically logs process health (CPU, RSS, status) together
// with coordination gauges. It runs under the supervisor for the lifetime of
// the server process.
type HeartbeatWorker struct {
	log      *slog.Logger
	stats    EngineStats
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, stats EngineStats, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, stats: stats, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting coordination heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			stats := w.stats.Stats()
			w.log.Info("Heartbeat",
				"pid", os.Getpid(),
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"tracked_sessions", stats.TrackedSessions,
				"active_cycles", stats.ActiveCycles,
				"pending_replies", stats.PendingReplies,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (memory, CPU and OS status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
