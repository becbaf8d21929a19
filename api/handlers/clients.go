package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
)

// @Summary List clients
// @Tags clients
// @Produce json
// @Param status query string false "Filter by status" Enums(active, inactive, suspended)
// @Success 200 {object} models.ClientsResponse
// @Failure 400 {object} models.Response
// @Router /clients [get]
func GetClients(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetClientsService(svc, w, r)
	}
}

// @Summary Get a client
// @Tags clients
// @Produce json
// @Param client-id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} models.Response
// @Router /clients/{client-id} [get]
func GetClient(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetClientService(svc, w, r)
	}
}

// @Summary Update a client
// @Description Edit a client. Omitted fields keep their value; dashboardCount is derived from assignedDashboards.
// @Tags clients
// @Accept json
// @Produce json
// @Param client-id path string true "Client ID"
// @Param body body models.ClientUpdate true "Fields to change"
// @Success 200 {object} models.Client
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /clients/{client-id} [put]
func UpdateClient(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateClientService(svc, w, r)
	}
}
