package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"inbox-lab/contract"
)

// TelemetryWorker periodically logs store level statistics together with the
// CPU and memory footprint of this process.
type TelemetryWorker struct {
	log      *slog.Logger
	store    contract.IEventStore
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, store contract.IEventStore, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, store: store, interval: interval}
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
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	stats, err := w.store.Stats("")
	if err != nil {
		w.log.Error("Error while collecting store statistics", "err", err)
		return
	}

	rss, cpu, err := selfUsage(p)
	if err != nil {
		w.log.Error("Error while collecting process usage", "err", err)
		return
	}

	w.log.Info("Telemetry",
		"total_events", stats.TotalEvents,
		"event_types", len(stats.ByEventType),
		"aggregate_types", len(stats.ByAggregateType),
		"rss_bytes", rss,
		"cpu_percent", cpu,
	)
}

// selfUsage retrieves technical metrics (Memory and CPU) for the given process.
func selfUsage(p *process.Process) (uint64, float64, error) {
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
