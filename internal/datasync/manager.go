package datasync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

// ErrNoRun is returned when a data source has no sync run to report on.
var ErrNoRun = errors.New("no sync run found")

// Manager owns the sync trackers of a process and writes their results
// back to the store. A data source is only updated once its run has
// reached success or error.
type Manager struct {
	Store    db.DataSourceStore
	Notifier events.Notifier
	Options  Options

	// OnSync and OnSyncAll are called after the result has been stored.
	OnSync    func(Result)
	OnSyncAll func(BulkSnapshot)

	mu       sync.Mutex
	trackers map[uuid.UUID]*Tracker
	bulk     *BulkTracker

	now func() time.Time
}

func NewManager(store db.DataSourceStore, notifier events.Notifier, opts Options) *Manager {
	return &Manager{
		Store:    store,
		Notifier: notifier,
		Options:  opts.withDefaults(),
		trackers: map[uuid.UUID]*Tracker{},
		now:      time.Now,
	}
}

// Sync starts a run for one data source. A source whose last run failed is
// retried from step zero. It fails with ErrBusy while the source is part of
// a bulk run in progress.
func (m *Manager) Sync(ctx context.Context, dataSourceID uuid.UUID) (Snapshot, error) {
	if _, err := m.Store.GetDataSource(ctx, dataSourceID); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bulkHoldsLocked(dataSourceID) {
		return Snapshot{}, fmt.Errorf("data source %s is in a bulk sync: %w", dataSourceID, ErrBusy)
	}
	m.pruneLocked()

	tracker, ok := m.trackers[dataSourceID]
	if !ok {
		tracker = NewTracker(dataSourceID, m.Options)
		tracker.OnSync = m.record
		m.trackers[dataSourceID] = tracker
	}

	var err error
	if tracker.Snapshot().State == StateError {
		err = tracker.Retry(ctx)
	} else {
		err = tracker.Start(ctx)
	}
	if err != nil {
		return tracker.Snapshot(), err
	}
	return tracker.Snapshot(), nil
}

// Status reports the run of one data source.
func (m *Manager) Status(dataSourceID uuid.UUID) (Snapshot, error) {
	m.mu.Lock()
	tracker, ok := m.trackers[dataSourceID]
	m.mu.Unlock()
	if !ok {
		return Snapshot{}, ErrNoRun
	}
	return tracker.Snapshot(), nil
}

// Tracker returns the tracker of one data source, if any.
func (m *Manager) Tracker(dataSourceID uuid.UUID) (*Tracker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tracker, ok := m.trackers[dataSourceID]
	return tracker, ok
}

// CloseSync discards a finished run. It fails with ErrBusy while the run
// is in progress.
func (m *Manager) CloseSync(dataSourceID uuid.UUID) error {
	m.mu.Lock()
	tracker, ok := m.trackers[dataSourceID]
	m.mu.Unlock()
	if !ok {
		return ErrNoRun
	}
	if err := tracker.Close(); err != nil {
		return err
	}

	m.mu.Lock()
	if m.trackers[dataSourceID] == tracker {
		delete(m.trackers, dataSourceID)
	}
	m.mu.Unlock()
	return nil
}

// SyncAll starts a bulk run over the given data sources, or over every
// data source when ids is empty. A nil outcome uses the manager's. It fails
// with ErrBusy while any of the sources has a single run in progress.
func (m *Manager) SyncAll(ctx context.Context, ids []uuid.UUID, outcome Outcome) (BulkSnapshot, error) {
	sources, err := m.Store.ListDataSources(ctx)
	if err != nil {
		return BulkSnapshot{}, fmt.Errorf("error listing data sources: %w", err)
	}
	if len(ids) > 0 {
		sources, err = selectSources(sources, ids)
		if err != nil {
			return BulkSnapshot{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids = make([]uuid.UUID, 0, len(sources))
	for _, ds := range sources {
		ids = append(ids, ds.ID)
	}
	if err := m.checkIdleLocked(ids); err != nil {
		return BulkSnapshot{}, err
	}

	if m.bulk != nil {
		if err := m.bulk.Close(); err != nil {
			return m.bulk.Snapshot(), err
		}
	}

	opts := m.Options
	if outcome != nil {
		opts.Outcome = outcome
	}
	bulk := NewBulkTracker(sources, opts)
	bulk.OnItem = m.record
	bulk.OnSyncAll = m.recordAll
	m.bulk = bulk

	if err := bulk.Start(ctx); err != nil {
		return bulk.Snapshot(), err
	}
	return bulk.Snapshot(), nil
}

// RetryBulk re-runs the last bulk sync over all of its items.
func (m *Manager) RetryBulk(ctx context.Context) (BulkSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bulk == nil {
		return BulkSnapshot{}, ErrNoRun
	}
	if snap := m.bulk.Snapshot(); snap.State == StateCompleted {
		ids := make([]uuid.UUID, 0, len(snap.Items))
		for _, item := range snap.Items {
			ids = append(ids, item.DataSourceID)
		}
		if err := m.checkIdleLocked(ids); err != nil {
			return snap, err
		}
	}
	if err := m.bulk.RetryFailed(ctx); err != nil {
		return m.bulk.Snapshot(), err
	}
	return m.bulk.Snapshot(), nil
}

// BulkStatus reports the last bulk run.
func (m *Manager) BulkStatus() (BulkSnapshot, error) {
	m.mu.Lock()
	bulk := m.bulk
	m.mu.Unlock()
	if bulk == nil {
		return BulkSnapshot{}, ErrNoRun
	}
	return bulk.Snapshot(), nil
}

// Bulk returns the current bulk tracker, if any.
func (m *Manager) Bulk() (*BulkTracker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bulk, m.bulk != nil
}

// Shutdown disposes every tracker, abandoning runs in progress.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	trackers := make([]*Tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	m.trackers = map[uuid.UUID]*Tracker{}
	bulk := m.bulk
	m.bulk = nil
	m.mu.Unlock()

	for _, t := range trackers {
		t.Dispose()
	}
	if bulk != nil {
		bulk.Dispose()
	}
}

// bulkHoldsLocked reports whether the bulk run in progress covers the data
// source.
func (m *Manager) bulkHoldsLocked(dataSourceID uuid.UUID) bool {
	if m.bulk == nil {
		return false
	}
	snap := m.bulk.Snapshot()
	if snap.State != StateSyncing {
		return false
	}
	for _, item := range snap.Items {
		if item.DataSourceID == dataSourceID {
			return true
		}
	}
	return false
}

func (m *Manager) checkIdleLocked(ids []uuid.UUID) error {
	for _, id := range ids {
		tracker, ok := m.trackers[id]
		if ok && tracker.Snapshot().State == StateSyncing {
			return fmt.Errorf("data source %s is syncing: %w", id, ErrBusy)
		}
	}
	return nil
}

// pruneLocked drops single-source runs that finished longer ago than the
// retention period.
func (m *Manager) pruneLocked() {
	cutoff := m.now().Add(-m.Options.Retention)
	for id, tracker := range m.trackers {
		snap := tracker.Snapshot()
		if snap.State == StateSyncing || snap.FinishedAt == nil {
			continue
		}
		if snap.FinishedAt.Before(cutoff) {
			delete(m.trackers, id)
		}
	}
}

func (m *Manager) record(r Result) {
	log := m.Options.Log
	ctx := context.Background()

	update := models.DataSourceUpdate{}
	status := models.ConnectionError
	eventType := events.DataSourceSyncFail
	if r.Succeeded {
		status = models.Connected
		eventType = events.DataSourceSynced
		finished := r.FinishedAt
		update.LastSync = &finished
	}
	update.Status = &status

	if _, err := m.Store.UpdateDataSource(ctx, r.DataSourceID, update); err != nil {
		log.Error().Err(err).Str("data_source_id", r.DataSourceID.String()).Msg("Failed to store sync result")
		return
	}

	if m.OnSync != nil {
		m.OnSync(r)
	}

	event := events.NewEvent(eventType)
	id := r.DataSourceID
	event.DataSourceID = &id
	event.Detail = r
	m.notify(event)
}

func (m *Manager) recordAll(snap BulkSnapshot) {
	if m.OnSyncAll != nil {
		m.OnSyncAll(snap)
	}

	event := events.NewEvent(events.BulkSyncCompleted)
	event.Detail = struct {
		SuccessCount int       `json:"successCount"`
		ErrorCount   int       `json:"errorCount"`
		Total        int       `json:"total"`
		CompletedAt  time.Time `json:"completedAt"`
	}{snap.SuccessCount, snap.ErrorCount, snap.Total, time.Now().UTC()}
	m.notify(event)
}

func (m *Manager) notify(event events.Event) {
	if m.Notifier == nil {
		return
	}
	if err := m.Notifier.Notify(event); err != nil {
		m.Options.Log.Warn().Err(err).Str("event_type", event.Type).Msg("Failed to publish event")
	}
}

func selectSources(all []models.DataSource, ids []uuid.UUID) ([]models.DataSource, error) {
	byID := make(map[uuid.UUID]models.DataSource, len(all))
	for _, ds := range all {
		byID[ds.ID] = ds
	}

	selected := make([]models.DataSource, 0, len(ids))
	for _, id := range ids {
		ds, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("data source %s: %w", id, db.ErrNotFound)
		}
		selected = append(selected, ds)
	}
	return selected, nil
}
