package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog"
)

// GetDataSourcesService lists data sources, optionally filtered by ?status=.
func GetDataSourcesService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	status := models.ConnectionStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid status %q", status))
		return
	}

	sources, err := svc.Store.ListDataSources(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve data sources")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	filtered := make([]models.DataSource, 0, len(sources))
	for _, ds := range sources {
		if status == "" || ds.Status == status {
			filtered = append(filtered, ds)
		}
	}

	WriteResponse(w, http.StatusOK, models.DataSourcesResponse{DataSources: filtered})
}

// UpdateDataSourceService edits the type, provider or status of a data
// source.
func UpdateDataSourceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	dataSourceID, err := pathID(r, "datasource-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid data source ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var payload models.DataSourceUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if payload.Type != nil && !payload.Type.Valid() {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid type %q", *payload.Type))
		return
	}
	if payload.Status != nil && !payload.Status.Valid() {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid status %q", *payload.Status))
		return
	}
	// Only a completed sync records lastSync
	payload.LastSync = nil

	ds, err := svc.Store.UpdateDataSource(r.Context(), dataSourceID, payload)
	if err != nil {
		logger.Warn().Err(err).Str("data_source_id", dataSourceID.String()).Msg("Failed to update data source")
		HandleError(w, err)
		return
	}

	logger.Info().Str("data_source_id", dataSourceID.String()).Msg("Data source updated")
	WriteResponse(w, http.StatusOK, *ds)
}

// SyncDataSourceService starts or retries the sync of one data source.
func SyncDataSourceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	dataSourceID, err := pathID(r, "datasource-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid data source ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	snap, err := svc.Sync.Sync(r.Context(), dataSourceID)
	if err != nil {
		logger.Warn().Err(err).Str("data_source_id", dataSourceID.String()).Msg("Failed to start sync")
		HandleError(w, err)
		return
	}

	logger.Info().Str("data_source_id", dataSourceID.String()).Msg("Sync started")
	WriteResponse(w, http.StatusAccepted, snap, r.URL.Path)
}

func GetDataSourceSyncService(svc *Service, w http.ResponseWriter, r *http.Request) {

	dataSourceID, err := pathID(r, "datasource-id")
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	snap, err := svc.Sync.Status(dataSourceID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, snap)
}

// CloseDataSourceSyncService discards a finished sync run.
func CloseDataSourceSyncService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	dataSourceID, err := pathID(r, "datasource-id")
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := svc.Sync.CloseSync(dataSourceID); err != nil {
		logger.Warn().Err(err).Str("data_source_id", dataSourceID.String()).Msg("Failed to close sync")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, nil)
}

// SyncAllService starts a bulk sync. The optional body restricts the run
// to a list of data sources.
func SyncAllService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload events.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var outcome datasync.Outcome
	if payload.ForceSuccess {
		outcome = datasync.ForcedOutcome(true)
	}

	snap, err := svc.Sync.SyncAll(r.Context(), payload.DataSourceIDs, outcome)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to start bulk sync")
		HandleError(w, err)
		return
	}

	logger.Info().Int("total", snap.Total).Msg("Bulk sync started")
	WriteResponse(w, http.StatusAccepted, snap, r.URL.Path)
}

func GetBulkSyncService(svc *Service, w http.ResponseWriter, r *http.Request) {

	snap, err := svc.Sync.BulkStatus()
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, snap)
}

// RetryBulkSyncService re-runs the last bulk sync over every item.
func RetryBulkSyncService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	snap, err := svc.Sync.RetryBulk(r.Context())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to retry bulk sync")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusAccepted, snap)
}
