// Package observability aggregates notification flow metrics for logs,
// the debug server, and heartbeat reporting.
package observability

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// StatsSnapshot is one point-in-time view of the notification flow.
type StatsSnapshot struct {
	Queued          uint64            `json:"queued"`
	Sent            uint64            `json:"sent"`
	Suppressed      uint64            `json:"suppressed"`
	Errors          uint64            `json:"errors"`
	SkippedByReason map[string]uint64 `json:"skipped_by_reason"`
	ProcessRSS      uint64            `json:"process_rss_bytes"`
	ProcessCPU      float64           `json:"process_cpu_percent"`
	WorkerRestarts  uint64            `json:"worker_restarts"`
}

// Stats is safe for concurrent use; counters are atomic, the per-reason
// map is guarded separately since reasons arrive from many workers.
type Stats struct {
	log *slog.Logger

	queued         uint64
	sent           uint64
	suppressed     uint64
	errorCount     uint64
	workerRestarts uint64

	mu        sync.RWMutex
	byReason  map[string]uint64
	processMu sync.RWMutex
	rss       uint64
	cpu       float64
}

func NewStats(log *slog.Logger) *Stats {
	return &Stats{
		log:      log,
		byReason: make(map[string]uint64),
	}
}

func (s *Stats) IncrQueued()         { atomic.AddUint64(&s.queued, 1) }
func (s *Stats) IncrSent()           { atomic.AddUint64(&s.sent, 1) }
func (s *Stats) IncrErrors()         { atomic.AddUint64(&s.errorCount, 1) }
func (s *Stats) IncrWorkerRestarts() { atomic.AddUint64(&s.workerRestarts, 1) }

func (s *Stats) IncrSkipped(reason string) {
	atomic.AddUint64(&s.suppressed, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byReason[reason]++
}

// SetProcessStats records the latest self-measurement from the
// heartbeat worker.
func (s *Stats) SetProcessStats(rss uint64, cpu float64) {
	s.processMu.Lock()
	defer s.processMu.Unlock()
	s.rss = rss
	s.cpu = cpu
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	byReason := make(map[string]uint64, len(s.byReason))
	for k, v := range s.byReason {
		byReason[k] = v
	}
	s.mu.RUnlock()

	s.processMu.RLock()
	rss, cpu := s.rss, s.cpu
	s.processMu.RUnlock()

	return StatsSnapshot{
		Queued:          atomic.LoadUint64(&s.queued),
		Sent:            atomic.LoadUint64(&s.sent),
		Suppressed:      atomic.LoadUint64(&s.suppressed),
		Errors:          atomic.LoadUint64(&s.errorCount),
		SkippedByReason: byReason,
		ProcessRSS:      rss,
		ProcessCPU:      cpu,
		WorkerRestarts:  atomic.LoadUint64(&s.workerRestarts),
	}
}

// Listen periodically logs a snapshot until the context ends.
func (s *Stats) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Stats listener stopped")
			return
		case <-ticker.C:
			snap := s.Snapshot()
			s.log.Debug("Notification flow stats",
				"queued", snap.Queued,
				"sent", snap.Sent,
				"suppressed", snap.Suppressed,
				"errors", snap.Errors,
				"rss_mb", snap.ProcessRSS/1024/1024,
			)
		}
	}
}
