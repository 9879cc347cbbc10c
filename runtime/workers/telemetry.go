package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"notify-lab/contract"
)

// TelemetryWorker periodically logs delivery-plane vitals: the number of
// online sessions plus the process RSS and CPU usage.
type TelemetryWorker struct {
	log      *slog.Logger
	interval time.Duration
	registry contract.SessionRegistry
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration,
	registry contract.SessionRegistry) *TelemetryWorker {
	return &TelemetryWorker{log: log, interval: interval, registry: registry}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	w.log.Info("Starting telemetry worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Delivery telemetry",
				"online", w.registry.OnlineCount(),
				"ram_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
