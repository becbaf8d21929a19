package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/onboarding"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// HandleErrResponse writes err in the standard error envelope. Postgres
// errors carry their condition name as the error code.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	var pqErr *pq.Error
	var response models.Response

	if errors.As(err, &pqErr) {
		response = models.Response{
			Success:      0,
			ErrorCode:    pqErr.Code.Name(),
			ErrorDetails: pqErr.Message,
		}
	} else {
		response = models.Response{
			Success:      0,
			ErrorDetails: err.Error(),
		}
	}

	WriteResponse(w, statusCode, response)
}

// HandleError writes err with the status code matching its kind.
func HandleError(w http.ResponseWriter, err error) {
	HandleErrResponse(w, errorStatus(err), err)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, datasync.ErrNoRun):
		return http.StatusNotFound
	case errors.Is(err, onboarding.ErrWrongStage),
		errors.Is(err, onboarding.ErrRejected),
		errors.Is(err, datasync.ErrBusy),
		errors.Is(err, datasync.ErrNotRetryable),
		errors.Is(err, datasync.ErrDisposed):
		return http.StatusConflict
	case errors.Is(err, onboarding.ErrUnknownPlan),
		errors.Is(err, onboarding.ErrNoDashboards),
		errors.Is(err, onboarding.ErrUnknownDashboard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the UUID held in the named path variable.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func pendingAccountView(a models.PendingAccount) models.PendingAccountView {
	return models.PendingAccountView{
		PendingAccount: a,
		Stage:          int(onboarding.ComputeStage(a)),
	}
}
