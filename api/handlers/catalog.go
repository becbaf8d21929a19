package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
)

// @Summary List subscription tiers
// @Tags catalog
// @Produce json
// @Success 200 {object} models.SubscriptionsResponse
// @Router /subscriptions [get]
func GetSubscriptions(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetSubscriptionsService(svc, w, r)
	}
}

// @Summary List workspace plans
// @Tags catalog
// @Produce json
// @Success 200 {object} models.WorkspacePlansResponse
// @Router /catalog/plans [get]
func GetWorkspacePlans(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetWorkspacePlansService(svc, w, r)
	}
}

// @Summary Search dashboards
// @Tags catalog
// @Produce json
// @Param q query string false "Matched against name and description, ignoring case"
// @Success 200 {object} models.DashboardSearchResponse
// @Router /catalog/dashboards [get]
func SearchDashboards(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.SearchDashboardsService(svc, w, r)
	}
}

// @Summary Platform analytics summary
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Router /analytics/summary [get]
func GetAnalyticsSummary(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetAnalyticsSummaryService(svc, w, r)
	}
}
