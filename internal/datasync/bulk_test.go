package datasync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(n int) []models.DataSource {
	out := make([]models.DataSource, n)
	for i := range out {
		out[i] = models.DataSource{ID: uuid.New(), Name: "source"}
	}
	return out
}

func TestBulkTracker_ForcedSuccess(t *testing.T) {
	bulk := NewBulkTracker(sources(5), fastOptions(ForcedOutcome(true)))

	var mu sync.Mutex
	var snaps []BulkSnapshot
	var completions, itemResults int
	bulk.OnProgress = func(s BulkSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		snaps = append(snaps, s)
	}
	bulk.OnItem = func(Result) {
		mu.Lock()
		defer mu.Unlock()
		itemResults++
	}
	bulk.OnSyncAll = func(BulkSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		completions++
	}

	require.NoError(t, bulk.Start(context.Background()))
	bulk.Wait()

	final := bulk.Snapshot()
	assert.Equal(t, StateCompleted, final.State)
	assert.Equal(t, 5, final.SuccessCount)
	assert.Equal(t, 0, final.ErrorCount)
	assert.Equal(t, 5, final.Processed)
	assert.Equal(t, 100, final.Percent)
	for _, item := range final.Items {
		assert.Equal(t, StateSuccess, item.State)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, completions)
	assert.Equal(t, 5, itemResults)
}

func TestBulkTracker_CountersStayConsistent(t *testing.T) {
	i := 0
	var mu sync.Mutex
	alternate := OutcomeFunc(func(uuid.UUID) bool {
		mu.Lock()
		defer mu.Unlock()
		i++
		return i%2 == 0
	})

	bulk := NewBulkTracker(sources(6), fastOptions(alternate))

	var snaps []BulkSnapshot
	bulk.OnProgress = func(s BulkSnapshot) { snaps = append(snaps, s) }

	require.NoError(t, bulk.Start(context.Background()))
	bulk.Wait()

	last := -1
	reachedTotal := 0
	for _, s := range snaps {
		assert.Equal(t, s.Processed, s.SuccessCount+s.ErrorCount)
		assert.GreaterOrEqual(t, s.Processed, last)
		assert.LessOrEqual(t, s.Processed-last, 1)
		if s.Processed != last && s.Processed == s.Total {
			reachedTotal++
		}
		last = s.Processed

		syncing := 0
		for _, item := range s.Items {
			if item.State == StateSyncing {
				syncing++
			}
		}
		assert.LessOrEqual(t, syncing, 1)
	}
	assert.Equal(t, 1, reachedTotal)

	final := bulk.Snapshot()
	assert.Equal(t, 3, final.SuccessCount)
	assert.Equal(t, 3, final.ErrorCount)
}

func TestBulkTracker_RetryFailedRerunsEveryItem(t *testing.T) {
	var mu sync.Mutex
	calls := map[uuid.UUID]int{}
	outcome := OutcomeFunc(func(id uuid.UUID) bool {
		mu.Lock()
		defer mu.Unlock()
		calls[id]++
		return calls[id] > 1
	})

	items := sources(3)
	bulk := NewBulkTracker(items, fastOptions(outcome))

	assert.ErrorIs(t, bulk.RetryFailed(context.Background()), ErrNotRetryable)

	require.NoError(t, bulk.Start(context.Background()))
	bulk.Wait()
	assert.Equal(t, 3, bulk.Snapshot().ErrorCount)

	require.NoError(t, bulk.RetryFailed(context.Background()))
	bulk.Wait()

	final := bulk.Snapshot()
	assert.Equal(t, StateCompleted, final.State)
	assert.Equal(t, 3, final.SuccessCount)
	assert.Equal(t, 0, final.ErrorCount)

	mu.Lock()
	defer mu.Unlock()
	for _, ds := range items {
		assert.Equal(t, 2, calls[ds.ID])
	}
}

func TestBulkTracker_CloseAndDispose(t *testing.T) {
	opts := fastOptions(ForcedOutcome(true))
	opts.ItemDelay = time.Hour
	bulk := NewBulkTracker(sources(2), opts)

	require.NoError(t, bulk.Close())
	assert.ErrorIs(t, bulk.Start(context.Background()), ErrDisposed)

	bulk = NewBulkTracker(sources(2), opts)
	require.NoError(t, bulk.Start(context.Background()))
	assert.ErrorIs(t, bulk.Close(), ErrBusy)
	assert.ErrorIs(t, bulk.Start(context.Background()), ErrBusy)

	bulk.Dispose()
	snap := bulk.Snapshot()
	assert.Equal(t, 0, snap.Processed)
	assert.Equal(t, StateSyncing, snap.State)
}

func TestBulkTracker_Empty(t *testing.T) {
	bulk := NewBulkTracker(nil, fastOptions(ForcedOutcome(true)))
	require.NoError(t, bulk.Start(context.Background()))
	bulk.Wait()

	snap := bulk.Snapshot()
	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, 0, snap.Total)
	assert.Equal(t, 0, snap.Percent)
}
