package services

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/internal/analytics"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog"
)

func GetSubscriptionsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	subscriptions, err := svc.Store.ListSubscriptions(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve subscriptions")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if subscriptions == nil {
		subscriptions = []models.Subscription{}
	}

	WriteResponse(w, http.StatusOK, models.SubscriptionsResponse{Subscriptions: subscriptions})
}

func GetWorkspacePlansService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.WorkspacePlansResponse{Plans: svc.Onboarding.Catalog.Plans})
}

// SearchDashboardsService filters the dashboard catalog by ?q= against name
// and description.
func SearchDashboardsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	dashboards, noResults := svc.Onboarding.Catalog.FilterDashboards(r.URL.Query().Get("q"))
	if dashboards == nil {
		dashboards = []models.Dashboard{}
	}
	WriteResponse(w, http.StatusOK, models.DashboardSearchResponse{Dashboards: dashboards, NoResults: noResults})
}

func GetAnalyticsSummaryService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	summary, err := analytics.Summarize(r.Context(), svc.Store)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build analytics summary")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	WriteResponse(w, http.StatusOK, summary)
}
