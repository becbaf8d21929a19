package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/api/middleware"
	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
	"github.com/EO-DataHub/eodhp-admin-services/internal/authn"
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the console API on api. Every route requires an
// operator token.
func RegisterRoutes(api *mux.Router, svc *services.Service) {
	api.Use(middleware.WithLogger)
	api.Use(middleware.JWTMiddleware)
	api.Use(middleware.RequireRole(authn.AdminRole))

	// Pending account and onboarding routes
	api.HandleFunc("/accounts/pending", GetPendingAccounts(svc)).Methods(http.MethodGet)
	api.HandleFunc("/accounts/pending/{account-id}", GetPendingAccount(svc)).Methods(http.MethodGet)
	api.HandleFunc("/accounts/pending/{account-id}", UpdatePendingAccount(svc)).Methods(http.MethodPatch)
	api.HandleFunc("/accounts/pending/{account-id}/workspace", GenerateWorkspace(svc)).Methods(http.MethodPost)
	api.HandleFunc("/accounts/pending/{account-id}/dashboards", AssignDashboards(svc)).Methods(http.MethodPost)
	api.HandleFunc("/accounts/pending/{account-id}/approve", ApproveAccount(svc)).Methods(http.MethodPost)

	// Client routes
	api.HandleFunc("/clients", GetClients(svc)).Methods(http.MethodGet)
	api.HandleFunc("/clients/{client-id}", GetClient(svc)).Methods(http.MethodGet)
	api.HandleFunc("/clients/{client-id}", UpdateClient(svc)).Methods(http.MethodPut)

	// Data source and sync routes. The bulk routes come first so "sync" is
	// not taken for a data source ID.
	api.HandleFunc("/datasources", GetDataSources(svc)).Methods(http.MethodGet)
	api.HandleFunc("/datasources/sync", SyncAll(svc)).Methods(http.MethodPost)
	api.HandleFunc("/datasources/sync", GetBulkSync(svc)).Methods(http.MethodGet)
	api.HandleFunc("/datasources/sync/retry", RetryBulkSync(svc)).Methods(http.MethodPost)
	api.HandleFunc("/datasources/{datasource-id}", UpdateDataSource(svc)).Methods(http.MethodPatch)
	api.HandleFunc("/datasources/{datasource-id}/sync", SyncDataSource(svc)).Methods(http.MethodPost)
	api.HandleFunc("/datasources/{datasource-id}/sync", GetDataSourceSync(svc)).Methods(http.MethodGet)
	api.HandleFunc("/datasources/{datasource-id}/sync", CloseDataSourceSync(svc)).Methods(http.MethodDelete)

	// Catalog and analytics routes
	api.HandleFunc("/subscriptions", GetSubscriptions(svc)).Methods(http.MethodGet)
	api.HandleFunc("/catalog/plans", GetWorkspacePlans(svc)).Methods(http.MethodGet)
	api.HandleFunc("/catalog/dashboards", SearchDashboards(svc)).Methods(http.MethodGet)
	api.HandleFunc("/analytics/summary", GetAnalyticsSummary(svc)).Methods(http.MethodGet)
}
