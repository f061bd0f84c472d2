package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"notify-lab/contract"
	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/observability"
	"notify-lab/projection"
	"notify-lab/repositories"
	"notify-lab/runtime/workers"
	"notify-lab/services"
	"notify-lab/sink"
)

// Options bundles the orchestrator tuning knobs read from config.
type Options struct {
	NumWorkers           int
	BufferSize           int
	SinkTimeout          time.Duration
	MetricInterval       time.Duration
	LowCapacityThreshold int
	FeedSize             int
}

// Orchestrator owns the channels and workers that move post events
// through the notification flow. Policy and building live in the
// service; this layer only routes, supervises, and fans out verdicts.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	opts           Options
	service        services.INotificationService
	supervisor     contract.ISupervisor
	stats          *observability.Stats
	history        repositories.IHistoryRepository
	feed           *projection.Feed
	permanentSinks []contract.EventSink
	queued         chan workers.PostEvent
	verdicts       chan event.Event
	telemetry      chan event.Event
}

// NewOrchestrator wires the queues around the service. The telemetry
// channel is shared with the supervisor so worker restarts surface as
// technical events.
func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	service services.INotificationService, history repositories.IHistoryRepository,
	stats *observability.Stats, telemetry chan event.Event, opts Options) *Orchestrator {
	return &Orchestrator{
		log:        log,
		opts:       opts,
		service:    service,
		supervisor: supervisor,
		stats:      stats,
		history:    history,
		feed:       projection.NewFeed(opts.FeedSize),
		queued:     make(chan workers.PostEvent, opts.BufferSize),
		verdicts:   make(chan event.Event, opts.BufferSize),
		telemetry:  telemetry,
	}
}

// Add registers extra verdict sinks before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Notify enqueues one post event for evaluation. The queue is bounded;
// under sustained overload events are dropped with a warning rather
// than blocking the caller.
func (o *Orchestrator) Notify(post domain.Post, props domain.MessageProps) {
	select {
	case o.queued <- workers.PostEvent{Post: post, Props: props}:
		o.stats.IncrQueued()
		o.emitQueued(post)
	default:
		o.log.Warn(fmt.Sprintf("Notification queue full, dropping post %s", post.ID))
	}
}

// emitQueued reports the enqueue on the telemetry stream, best-effort.
func (o *Orchestrator) emitQueued(post domain.Post) {
	now := time.Now().UTC()
	select {
	case o.telemetry <- event.Event{
		Type:      event.PostQueuedType,
		CreatedAt: now,
		Payload: event.PostQueued{
			PostID:    post.ID,
			ChannelID: post.ChannelID,
			UserID:    post.UserID,
			At:        now,
		},
	}:
	default:
	}
}

// RecentFeed exposes the in-memory projection of recent outcomes.
func (o *Orchestrator) RecentFeed() *projection.Feed {
	return o.feed
}

// History pages through persisted verdicts for a channel.
func (o *Orchestrator) History(channelID string, cursor *string) ([]repositories.VerdictRecord, *string, error) {
	return o.history.List(channelID, cursor)
}

// Start prepares all workers and hands them to the supervisor. It uses
// a preparation pattern to minimize mutex locking time.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (no lock).
	pool := o.prepareNotifierPool()
	fanout, newSinks := o.preparePipeline()
	telemetry := o.prepareTelemetry()
	capacity := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "queued", Channel: o.queued},
		{Name: "verdicts", Channel: o.verdicts},
	}, o.telemetry, o.opts.MetricInterval)
	heartbeat := workers.NewHeartbeatWorker(o.log, o.stats, o.opts.MetricInterval)

	// 2. Critical section (short lock).
	o.mu.Lock()
	o.permanentSinks = append(o.permanentSinks, newSinks...)
	o.supervisor.Add(fanout, telemetry, capacity, heartbeat)
	for _, w := range pool {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	// 3. Execution phase (no lock).
	go o.stats.Listen(ctx, o.opts.MetricInterval)
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) prepareNotifierPool() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.opts.NumWorkers; i++ {
		res = append(res, workers.NewNotifierWorker(o.service, o.queued, o.verdicts, o.log))
	}
	return res
}

// preparePipeline initializes the verdict sinks and the fanout worker.
func (o *Orchestrator) preparePipeline() (contract.Worker, []contract.EventSink) {
	newSinks := []contract.EventSink{
		o.feed,
		sink.NewHistorySink(o.history, o.log),
		sink.NewStatsSink(o.stats),
	}
	allSinks := append(append([]contract.EventSink(nil), o.permanentSinks...), newSinks...)

	fanout := workers.NewEventFanout(o.log, allSinks, o.verdicts, o.telemetry, o.opts.SinkTimeout)
	return fanout, newSinks
}

func (o *Orchestrator) prepareTelemetry() contract.Worker {
	handlers := []event.Handler{
		event.NewChannelCapacityHandler(o.log, o.opts.LowCapacityThreshold),
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.stats),
	}
	return workers.NewTelemetryWorker(o.log, o.telemetry, handlers)
}

// Stop initiates a graceful shutdown: the supervised context is
// canceled so workers stop blocking, then in-flight events drain.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
