package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog"
)

// GetClientsService lists clients, optionally filtered by ?status=.
func GetClientsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	status := models.ClientStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid status %q", status))
		return
	}

	clients, err := svc.Store.ListClients(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve clients")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if status == "" || c.Status == status {
			filtered = append(filtered, c)
		}
	}

	logger.Info().Int("client_count", len(filtered)).Msg("Successfully retrieved clients")
	WriteResponse(w, http.StatusOK, models.ClientsResponse{Clients: filtered})
}

func GetClientService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	clientID, err := pathID(r, "client-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid client ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	client, err := svc.Store.GetClient(r.Context(), clientID)
	if err != nil {
		logger.Warn().Err(err).Str("client_id", clientID.String()).Msg("Failed to retrieve client")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, *client)
}

// UpdateClientService edits a client. Fields missing from the payload keep
// their stored value, and the dashboard count is always derived from the
// assigned dashboards.
func UpdateClientService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	clientID, err := pathID(r, "client-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid client ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var payload models.ClientUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := payload.Validate(); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	client, err := svc.Store.UpdateClient(r.Context(), clientID, payload)
	if err != nil {
		logger.Warn().Err(err).Str("client_id", clientID.String()).Msg("Failed to update client")
		HandleError(w, err)
		return
	}

	logger.Info().Str("client_id", clientID.String()).Int("dashboard_count", client.DashboardCount).Msg("Client updated")
	WriteResponse(w, http.StatusOK, *client)
}
