package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"

	"notify-lab/dispatch"
	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/infrastructure/desktop"
	"notify-lab/infrastructure/state"
	"notify-lab/internal"
	"notify-lab/observability"
	"notify-lab/repositories"
	"notify-lab/runtime"
	"notify-lab/runtime/workers"
	"notify-lab/services"
)

// wireEvent is one line of the NDJSON ingest stream: the post to
// evaluate, its broadcast props, and optionally the state snapshot the
// decision should see.
type wireEvent struct {
	Post     domain.Post              `json:"post"`
	Props    domain.MessageProps      `json:"props"`
	Snapshot *domain.Snapshot         `json:"snapshot,omitempty"`
	Session  *domain.UserSessionState `json:"session,omitempty"`
	Prefs    *domain.UserNotifyPrefs  `json:"prefs,omitempty"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Databases (BadgerDB + bluge index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 3. Setup Supervision & Orchestration
	telemetry := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(log, config.RestartInterval, telemetry)
	registry := runtime.NewRegistry()
	history := repositories.NewHistoryRepository(db, index, log, config.LimitRecords)
	stats := observability.NewStats(log)

	store := state.NewMemoryStore(config.CurrentUserID, domain.ServerConfig{
		SiteURL:            config.SiteURL,
		DefaultSound:       config.DefaultSound,
		AllowPropsOverride: config.AllowPropsOverride,
		NativeShell:        config.NativeShell,
	})

	dispatcher := dispatch.NewDispatcher(log, store, registry,
		desktop.NewTerminalNotifier(log), desktop.NewLogSoundPlayer(log))
	service := services.NewNotificationService(log, registry, dispatcher)

	orchestrator := runtime.NewOrchestrator(log, sup, service, history, stats, telemetry,
		runtime.Options{
			NumWorkers:           config.NumberOfWorkers,
			BufferSize:           config.BufferSize,
			SinkTimeout:          config.SinkTimeout,
			MetricInterval:       config.MetricInterval,
			LowCapacityThreshold: config.LowCapacityThreshold,
			FeedSize:             config.FeedSize,
		})

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	internal.StartDebugServer(db, config.DebugPort, "/inspect", verdictMapper, func() map[string]any {
		snapshot := stats.Snapshot()
		return map[string]any{
			"queued":     snapshot.Queued,
			"sent":       snapshot.Sent,
			"suppressed": snapshot.Suppressed,
			"errors":     snapshot.Errors,
			"restarts":   snapshot.WorkerRestarts,
		}
	})

	// 6. Ingest loop over stdin, one JSON event per line
	errChan := make(chan error, 1)
	go func() {
		log.Info("Reading post events from stdin", "at", time.Now().UTC())
		errChan <- ingest(os.Stdin, store, orchestrator)
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		if err != nil {
			return err
		}
		log.Info("Input stream closed, shutting down...")
	}

	// 8. Final Cleanup
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

// ingest decodes NDJSON events, updates the local state view, and
// enqueues posts for evaluation. Malformed lines are skipped so one bad
// event cannot stall the stream.
func ingest(input *os.File, store *state.MemoryStore, orchestrator *runtime.Orchestrator) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var evt wireEvent
		if err := json.Unmarshal(line, &evt); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping malformed event: %v\n", err)
			continue
		}
		if evt.Session != nil {
			store.SetSession(*evt.Session)
		}
		if evt.Prefs != nil {
			store.SetPrefs(*evt.Prefs)
		}
		if evt.Snapshot != nil {
			store.Put(evt.Post.ID.String(), *evt.Snapshot)
		}
		orchestrator.Notify(evt.Post, evt.Props)
	}
	return scanner.Err()
}

func verdictMapper(key string, val []byte) internal.InspectRow {
	var record repositories.VerdictRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return internal.DefaultMapper(key, val)
	}

	detail := record.Title
	if record.Body != "" {
		detail = record.Title + " / " + record.Body
	}
	entityID := record.PostID.String()
	if len(entityID) > 8 {
		entityID = entityID[:8]
	}
	return internal.InspectRow{
		Key:       key,
		Status:    string(record.Status),
		Timestamp: record.At.Format("15:04:05"),
		EntityID:  entityID,
		Channel:   record.ChannelID,
		Detail:    detail,
		Reason:    string(record.Reason),
	}
}
