package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog"
)

// GetPendingAccountsService lists signup requests with their onboarding
// stage, optionally filtered by ?status=.
func GetPendingAccountsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	status := models.AccountStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		logger.Warn().Str("status", string(status)).Msg("Invalid account status filter")
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid status %q", status))
		return
	}

	accounts, err := svc.Store.ListPendingAccounts(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve pending accounts")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.PendingAccountView, 0, len(accounts))
	for _, a := range accounts {
		if status != "" && a.Status != status {
			continue
		}
		views = append(views, pendingAccountView(a))
	}

	logger.Info().Int("account_count", len(views)).Msg("Successfully retrieved pending accounts")
	WriteResponse(w, http.StatusOK, models.PendingAccountsResponse{Accounts: views})
}

// GetPendingAccountService retrieves a single pending account.
func GetPendingAccountService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	accountID, err := pathID(r, "account-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid account ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	account, err := svc.Store.GetPendingAccount(r.Context(), accountID)
	if err != nil {
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to retrieve pending account")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, pendingAccountView(*account))
}

// UpdatePendingAccountService changes the review status of a pending account.
func UpdatePendingAccountService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	accountID, err := pathID(r, "account-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid account ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var payload models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if !payload.Status.Valid() {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid status %q", payload.Status))
		return
	}

	account, err := svc.Onboarding.SetReviewStatus(r.Context(), accountID, payload.Status)
	if err != nil {
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to update pending account")
		HandleError(w, err)
		return
	}

	logger.Info().Str("account_id", accountID.String()).Str("status", string(account.Status)).Msg("Pending account updated")
	WriteResponse(w, http.StatusOK, pendingAccountView(*account))
}

// GenerateWorkspaceService completes stage one of onboarding.
func GenerateWorkspaceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	accountID, err := pathID(r, "account-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid account ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var payload models.GenerateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if payload.Plan == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("plan is required"))
		return
	}

	account, err := svc.Onboarding.GenerateWorkspace(r.Context(), accountID, payload.Plan)
	if err != nil {
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to generate workspace")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, pendingAccountView(*account))
}

// AssignDashboardsService completes stage two of onboarding.
func AssignDashboardsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	accountID, err := pathID(r, "account-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid account ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var payload models.AssignDashboardsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	account, err := svc.Onboarding.AssignDashboards(r.Context(), accountID, payload.Dashboards)
	if err != nil {
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to assign dashboards")
		HandleError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, pendingAccountView(*account))
}

// ApproveAccountService promotes an account at the confirmation stage to a
// client.
func ApproveAccountService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	accountID, err := pathID(r, "account-id")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid account ID")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	session, err := svc.Onboarding.Open(r.Context(), accountID)
	if err != nil {
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to open onboarding session")
		HandleError(w, err)
		return
	}

	// The session closes itself once the acknowledgement period is over
	client, err := session.Approve(r.Context())
	if err != nil {
		session.Close()
		logger.Warn().Err(err).Str("account_id", accountID.String()).Msg("Failed to approve account")
		HandleError(w, err)
		return
	}

	logger.Info().Str("account_id", accountID.String()).Str("client_id", client.ID.String()).Msg("Account approved")

	location := fmt.Sprintf("%s/clients/%s", svc.basePath(), client.ID)
	WriteResponse(w, http.StatusCreated, models.ApprovalResponse{
		Client:            *client,
		AcknowledgedUntil: session.AcknowledgedUntil(),
	}, location)
}
