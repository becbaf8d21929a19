package datasync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a point-in-time view of a single-source run.
type Snapshot struct {
	DataSourceID uuid.UUID  `json:"dataSourceId"`
	State        State      `json:"state"`
	Step         int        `json:"step"`
	Steps        int        `json:"steps"`
	Percent      int        `json:"percent"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
}

// Tracker runs a simulated sync of one data source:
// idle -> syncing -> success | error.
type Tracker struct {
	dataSourceID uuid.UUID
	opts         Options

	// OnProgress is called after every step.
	OnProgress func(Snapshot)
	// OnSync is called once when a run reaches a terminal state.
	OnSync func(Result)

	mu         sync.Mutex
	state      State
	step       int
	finishedAt *time.Time
	disposed   bool
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewTracker(dataSourceID uuid.UUID, opts Options) *Tracker {
	return &Tracker{
		dataSourceID: dataSourceID,
		opts:         opts.withDefaults(),
		state:        StateIdle,
	}
}

// Start begins a run. It fails with ErrBusy while a run is in progress.
// The run is not bound to ctx's cancellation, only to its values.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startLocked(ctx)
}

// Retry restarts a failed run from step zero.
func (t *Tracker) Retry(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateError {
		return ErrNotRetryable
	}
	return t.startLocked(ctx)
}

func (t *Tracker) startLocked(ctx context.Context) error {
	if t.disposed {
		return ErrDisposed
	}
	if t.state == StateSyncing {
		return ErrBusy
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t.cancel = cancel
	t.done = make(chan struct{})
	t.state = StateSyncing
	t.step = 0
	t.finishedAt = nil

	t.opts.Log.Debug().Str("data_source_id", t.dataSourceID.String()).Msg("Sync started")
	go t.run(runCtx, t.done)
	return nil
}

func (t *Tracker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.opts.StepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		if ctx.Err() != nil {
			t.mu.Unlock()
			return
		}
		t.step++
		var result *Result
		if t.step >= t.opts.Steps {
			ok := t.opts.Outcome.Succeeded(t.dataSourceID)
			now := time.Now().UTC()
			t.finishedAt = &now
			t.state = StateError
			if ok {
				t.state = StateSuccess
			}
			result = &Result{DataSourceID: t.dataSourceID, Succeeded: ok, FinishedAt: now}
		}
		snap := t.snapshotLocked()
		t.mu.Unlock()

		if t.OnProgress != nil {
			t.OnProgress(snap)
		}
		if result != nil {
			t.opts.Log.Info().Str("data_source_id", t.dataSourceID.String()).
				Bool("succeeded", result.Succeeded).Msg("Sync finished")
			if t.OnSync != nil {
				t.OnSync(*result)
			}
			return
		}
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		DataSourceID: t.dataSourceID,
		State:        t.state,
		Step:         t.step,
		Steps:        t.opts.Steps,
		Percent:      percent(t.step, t.opts.Steps),
		FinishedAt:   t.finishedAt,
	}
}

// Wait blocks until the current run, if any, has exited.
func (t *Tracker) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close disposes the tracker unless a run is in progress.
func (t *Tracker) Close() error {
	t.mu.Lock()
	busy := t.state == StateSyncing
	t.mu.Unlock()
	if busy {
		return ErrBusy
	}
	t.Dispose()
	return nil
}

// Dispose cancels any run and waits for it to exit. No callbacks fire
// after Dispose returns.
func (t *Tracker) Dispose() {
	t.mu.Lock()
	t.disposed = true
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
