package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataSourcesService(t *testing.T) {
	svc, _ := newTestService(t)

	res := call(svc, GetDataSourcesService, http.MethodGet, "/datasources?status=connected", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var body models.DataSourcesResponse
	decode(t, res, &body)
	assert.Len(t, body.DataSources, 2)

	res = call(svc, GetDataSourcesService, http.MethodGet, "/datasources?status=flaky", nil, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateDataSourceService(t *testing.T) {
	svc, _ := newTestService(t)
	vars := map[string]string{"datasource-id": storefront}

	provider := "Shopify"
	kind := models.DataSourceCloud
	res := call(svc, UpdateDataSourceService, http.MethodPatch, "/datasources/x",
		models.DataSourceUpdate{Type: &kind, Provider: &provider}, vars)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var ds models.DataSource
	decode(t, res, &ds)
	assert.Equal(t, models.DataSourceCloud, ds.Type)
	assert.Equal(t, "Shopify", *ds.Provider)
	assert.Nil(t, ds.LastSync)

	bad := models.DataSourceType("Mainframe")
	res = call(svc, UpdateDataSourceService, http.MethodPatch, "/datasources/x",
		models.DataSourceUpdate{Type: &bad}, vars)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSyncDataSourceServices(t *testing.T) {
	svc, _ := newTestService(t)
	vars := map[string]string{"datasource-id": storefront}

	res := call(svc, GetDataSourceSyncService, http.MethodGet, "/datasources/x/sync", nil, vars)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = call(svc, SyncDataSourceService, http.MethodPost, "/datasources/x/sync", nil, vars)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	res.Body.Close()

	tracker, ok := svc.Sync.Tracker(uuid.MustParse(storefront))
	require.True(t, ok)
	tracker.Wait()

	res = call(svc, GetDataSourceSyncService, http.MethodGet, "/datasources/x/sync", nil, vars)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var snap datasync.Snapshot
	decode(t, res, &snap)
	assert.Equal(t, datasync.StateSuccess, snap.State)
	assert.Equal(t, 100, snap.Percent)

	ds, err := svc.Store.GetDataSource(context.Background(), uuid.MustParse(storefront))
	require.NoError(t, err)
	assert.Equal(t, models.Connected, ds.Status)

	res = call(svc, CloseDataSourceSyncService, http.MethodDelete, "/datasources/x/sync", nil, vars)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res = call(svc, SyncDataSourceService, http.MethodPost, "/datasources/x/sync", nil,
		map[string]string{"datasource-id": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestBulkSyncServices(t *testing.T) {
	svc, _ := newTestService(t)

	res := call(svc, GetBulkSyncService, http.MethodGet, "/datasources/sync", nil, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = call(svc, SyncAllService, http.MethodPost, "/datasources/sync", nil, nil)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	res.Body.Close()

	bulk, ok := svc.Sync.Bulk()
	require.True(t, ok)
	bulk.Wait()

	res = call(svc, GetBulkSyncService, http.MethodGet, "/datasources/sync", nil, nil)
	var snap datasync.BulkSnapshot
	decode(t, res, &snap)
	assert.Equal(t, datasync.StateCompleted, snap.State)
	assert.Equal(t, 4, snap.SuccessCount)
	assert.Equal(t, 100, snap.Percent)

	res = call(svc, RetryBulkSyncService, http.MethodPost, "/datasources/sync/retry", nil, nil)
	assert.Equal(t, http.StatusAccepted, res.StatusCode)
	bulk.Wait()

	res = call(svc, SyncAllService, http.MethodPost, "/datasources/sync",
		events.SyncRequest{DataSourceIDs: []uuid.UUID{uuid.MustParse(storefront)}, ForceSuccess: true}, nil)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	decode(t, res, &snap)
	assert.Equal(t, 1, snap.Total)
}

func TestSyncAllService_ConflictsWithSingleRun(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Sync.Options.StepInterval = time.Hour

	res := call(svc, SyncDataSourceService, http.MethodPost, "/datasources/x/sync", nil,
		map[string]string{"datasource-id": storefront})
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	res.Body.Close()

	res = call(svc, SyncAllService, http.MethodPost, "/datasources/sync", nil, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	ds, err := svc.Store.GetDataSource(context.Background(), uuid.MustParse(storefront))
	require.NoError(t, err)
	assert.Equal(t, models.Disconnected, ds.Status)
}
