package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
)

// @Summary List data sources
// @Tags datasources
// @Produce json
// @Param status query string false "Filter by connection status" Enums(connected, disconnected, error)
// @Success 200 {object} models.DataSourcesResponse
// @Router /datasources [get]
func GetDataSources(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetDataSourcesService(svc, w, r)
	}
}

// @Summary Edit a data source
// @Tags datasources
// @Accept json
// @Produce json
// @Param datasource-id path string true "Data source ID"
// @Param body body models.DataSourceUpdate true "Fields to change"
// @Success 200 {object} models.DataSource
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /datasources/{datasource-id} [patch]
func UpdateDataSource(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateDataSourceService(svc, w, r)
	}
}

// @Summary Sync a data source
// @Description Start a sync, or retry one that failed.
// @Tags sync
// @Produce json
// @Param datasource-id path string true "Data source ID"
// @Success 202 {object} datasync.Snapshot
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /datasources/{datasource-id}/sync [post]
func SyncDataSource(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.SyncDataSourceService(svc, w, r)
	}
}

// @Summary Get sync progress for a data source
// @Tags sync
// @Produce json
// @Param datasource-id path string true "Data source ID"
// @Success 200 {object} datasync.Snapshot
// @Failure 404 {object} models.Response
// @Router /datasources/{datasource-id}/sync [get]
func GetDataSourceSync(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetDataSourceSyncService(svc, w, r)
	}
}

// @Summary Close a finished sync
// @Tags sync
// @Param datasource-id path string true "Data source ID"
// @Success 204
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /datasources/{datasource-id}/sync [delete]
func CloseDataSourceSync(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CloseDataSourceSyncService(svc, w, r)
	}
}

// @Summary Sync all data sources
// @Tags sync
// @Accept json
// @Produce json
// @Param body body events.SyncRequest false "Restrict the run to some data sources"
// @Success 202 {object} datasync.BulkSnapshot
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /datasources/sync [post]
func SyncAll(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.SyncAllService(svc, w, r)
	}
}

// @Summary Get bulk sync progress
// @Tags sync
// @Produce json
// @Success 200 {object} datasync.BulkSnapshot
// @Failure 404 {object} models.Response
// @Router /datasources/sync [get]
func GetBulkSync(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetBulkSyncService(svc, w, r)
	}
}

// @Summary Retry a bulk sync
// @Description Re-run the last bulk sync. Every item is processed again.
// @Tags sync
// @Produce json
// @Success 202 {object} datasync.BulkSnapshot
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /datasources/sync/retry [post]
func RetryBulkSync(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RetryBulkSyncService(svc, w, r)
	}
}
