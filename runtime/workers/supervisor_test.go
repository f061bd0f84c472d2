package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"notify-lab/domain/event"
)

type panickingWorker struct {
	runs *atomic.Int32
}

func (w *panickingWorker) Run(_ context.Context) error {
	w.runs.Add(1)
	panic("worker exploded")
}

func TestSupervisor_RestartsPanickedWorker(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetry := make(chan event.Event, 10)

	var runs atomic.Int32
	sup := NewSupervisor(log, 10*time.Millisecond, telemetry)
	sup.Add(&panickingWorker{runs: &runs})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool { return runs.Load() >= 2 },
		time.Second, 5*time.Millisecond, "worker was not restarted after panicking")

	select {
	case evt := <-telemetry:
		req.Equal(event.RestartedAfterPanicType, evt.Type)
		restarted, ok := evt.Payload.(event.WorkerRestartedAfterPanic)
		req.True(ok)
		req.Equal("panickingWorker", restarted.WorkerName)
	case <-time.After(time.Second):
		req.Fail("no restart telemetry emitted")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("supervisor did not stop on cancellation")
	}
}

type finishingWorker struct {
	runs *atomic.Int32
}

func (w *finishingWorker) Run(_ context.Context) error {
	w.runs.Add(1)
	return nil
}

func TestSupervisor_CleanExitIsNotRestarted(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	var runs atomic.Int32
	sup := NewSupervisor(log, time.Millisecond, nil)
	sup.Add(&finishingWorker{runs: &runs})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("supervisor did not return after its only worker finished")
	}
	req.Equal(int32(1), runs.Load())
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	blocking := workerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	sup := NewSupervisor(log, time.Millisecond, nil)
	sup.Add(blocking)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	// Give the worker a moment to start blocking before stopping.
	time.Sleep(20 * time.Millisecond)
	sup.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Stop did not terminate the supervised workers")
	}
}

type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error { return f(ctx) }
