package datasync

import (
	"context"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

// Item is one data source inside a bulk run.
type Item struct {
	DataSourceID uuid.UUID `json:"dataSourceId"`
	Name         string    `json:"name"`
	State        State     `json:"state"`
}

// BulkSnapshot is a point-in-time view of a bulk run. SuccessCount plus
// ErrorCount always equals Processed.
type BulkSnapshot struct {
	State        State  `json:"state"`
	Items        []Item `json:"items"`
	SuccessCount int    `json:"successCount"`
	ErrorCount   int    `json:"errorCount"`
	Processed    int    `json:"processed"`
	Total        int    `json:"total"`
	Percent      int    `json:"percent"`
}

// BulkTracker syncs a fixed list of data sources strictly one after
// another: idle -> syncing -> completed.
type BulkTracker struct {
	opts Options

	// OnProgress is called after every item state change.
	OnProgress func(BulkSnapshot)
	// OnItem is called when an item reaches success or error.
	OnItem func(Result)
	// OnSyncAll is called once when a run completes.
	OnSyncAll func(BulkSnapshot)

	mu        sync.Mutex
	state     State
	items     []Item
	successes int
	failures  int
	processed int
	disposed  bool
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewBulkTracker(sources []models.DataSource, opts Options) *BulkTracker {
	items := make([]Item, 0, len(sources))
	for _, ds := range sources {
		items = append(items, Item{DataSourceID: ds.ID, Name: ds.Name, State: StatePending})
	}
	return &BulkTracker{
		opts:  opts.withDefaults(),
		state: StateIdle,
		items: items,
	}
}

// Start begins a run over every item.
func (b *BulkTracker) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.startLocked(ctx)
}

// RetryFailed re-runs a completed bulk sync. Every item is processed
// again, including those that succeeded.
func (b *BulkTracker) RetryFailed(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateCompleted {
		return ErrNotRetryable
	}
	return b.startLocked(ctx)
}

func (b *BulkTracker) startLocked(ctx context.Context) error {
	if b.disposed {
		return ErrDisposed
	}
	if b.state == StateSyncing {
		return ErrBusy
	}

	for i := range b.items {
		b.items[i].State = StatePending
	}
	b.successes, b.failures, b.processed = 0, 0, 0
	b.state = StateSyncing

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel
	b.done = make(chan struct{})

	b.opts.Log.Debug().Int("total", len(b.items)).Msg("Bulk sync started")
	go b.run(runCtx, b.done)
	return nil
}

func (b *BulkTracker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for i := range b.items {
		b.mu.Lock()
		if ctx.Err() != nil {
			b.mu.Unlock()
			return
		}
		b.items[i].State = StateSyncing
		snap := b.snapshotLocked()
		b.mu.Unlock()
		b.progress(snap)

		delay := time.NewTimer(b.opts.ItemDelay)
		select {
		case <-ctx.Done():
			delay.Stop()
			return
		case <-delay.C:
		}

		b.mu.Lock()
		if ctx.Err() != nil {
			b.mu.Unlock()
			return
		}
		id := b.items[i].DataSourceID
		ok := b.opts.Outcome.Succeeded(id)
		if ok {
			b.items[i].State = StateSuccess
			b.successes++
		} else {
			b.items[i].State = StateError
			b.failures++
		}
		b.processed++
		snap = b.snapshotLocked()
		b.mu.Unlock()

		if b.OnItem != nil {
			b.OnItem(Result{DataSourceID: id, Succeeded: ok, FinishedAt: time.Now().UTC()})
		}
		b.progress(snap)
	}

	b.mu.Lock()
	if ctx.Err() != nil {
		b.mu.Unlock()
		return
	}
	b.state = StateCompleted
	snap := b.snapshotLocked()
	b.mu.Unlock()

	b.opts.Log.Info().Int("succeeded", snap.SuccessCount).Int("failed", snap.ErrorCount).
		Msg("Bulk sync completed")
	b.progress(snap)
	if b.OnSyncAll != nil {
		b.OnSyncAll(snap)
	}
}

func (b *BulkTracker) progress(snap BulkSnapshot) {
	if b.OnProgress != nil {
		b.OnProgress(snap)
	}
}

func (b *BulkTracker) Snapshot() BulkSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *BulkTracker) snapshotLocked() BulkSnapshot {
	return BulkSnapshot{
		State:        b.state,
		Items:        append([]Item(nil), b.items...),
		SuccessCount: b.successes,
		ErrorCount:   b.failures,
		Processed:    b.processed,
		Total:        len(b.items),
		Percent:      percent(b.processed, len(b.items)),
	}
}

// Wait blocks until the current run, if any, has exited.
func (b *BulkTracker) Wait() {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close disposes the tracker unless a run is in progress.
func (b *BulkTracker) Close() error {
	b.mu.Lock()
	busy := b.state == StateSyncing
	b.mu.Unlock()
	if busy {
		return ErrBusy
	}
	b.Dispose()
	return nil
}

// Dispose cancels any run and waits for it to exit.
func (b *BulkTracker) Dispose() {
	b.mu.Lock()
	b.disposed = true
	cancel, done := b.cancel, b.done
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
