package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
)

// @Summary List pending accounts
// @Description List signup requests awaiting onboarding with their computed onboarding stage.
// @Tags accounts
// @Produce json
// @Param status query string false "Filter by review status" Enums(pending, reviewing, rejected)
// @Success 200 {object} models.PendingAccountsResponse
// @Failure 400 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /accounts/pending [get]
func GetPendingAccounts(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetPendingAccountsService(svc, w, r)
	}
}

// @Summary Get a pending account
// @Tags accounts
// @Produce json
// @Param account-id path string true "Account ID"
// @Success 200 {object} models.PendingAccountView
// @Failure 404 {object} models.Response
// @Router /accounts/pending/{account-id} [get]
func GetPendingAccount(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetPendingAccountService(svc, w, r)
	}
}

// @Summary Update the review status of a pending account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account-id path string true "Account ID"
// @Param body body models.ReviewRequest true "Review status"
// @Success 200 {object} models.PendingAccountView
// @Failure 400 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /accounts/pending/{account-id} [patch]
func UpdatePendingAccount(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdatePendingAccountService(svc, w, r)
	}
}

// @Summary Generate a workspace
// @Description Select a workspace plan and generate the workspace ID. Calling it again replaces the ID.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param account-id path string true "Account ID"
// @Param body body models.GenerateWorkspaceRequest true "Workspace plan"
// @Success 200 {object} models.PendingAccountView
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /accounts/pending/{account-id}/workspace [post]
func GenerateWorkspace(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GenerateWorkspaceService(svc, w, r)
	}
}

// @Summary Assign dashboards
// @Tags onboarding
// @Accept json
// @Produce json
// @Param account-id path string true "Account ID"
// @Param body body models.AssignDashboardsRequest true "Dashboard IDs"
// @Success 200 {object} models.PendingAccountView
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /accounts/pending/{account-id}/dashboards [post]
func AssignDashboards(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.AssignDashboardsService(svc, w, r)
	}
}

// @Summary Approve an account
// @Description Promote an account at the confirmation stage to an inactive, unpaid client. acknowledgedUntil is when the approval notice should close.
// @Tags onboarding
// @Produce json
// @Param account-id path string true "Account ID"
// @Success 201 {object} models.ApprovalResponse
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /accounts/pending/{account-id}/approve [post]
func ApproveAccount(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ApproveAccountService(svc, w, r)
	}
}
