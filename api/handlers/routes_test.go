package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	services "github.com/EO-DataHub/eodhp-admin-services/api/services"
	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/appconfig"
	"github.com/EO-DataHub/eodhp-admin-services/internal/authn"
	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/internal/onboarding"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	logger := zerolog.Nop()
	store := db.NewMemoryStore(db.SeedData())
	notifier := events.LogNotifier{Log: &logger}
	manager := datasync.NewManager(store, notifier, datasync.Options{
		StepInterval: time.Millisecond,
		ItemDelay:    time.Millisecond,
		Log:          &logger,
	})
	t.Cleanup(manager.Shutdown)

	svc := &services.Service{
		Config:     &appconfig.Config{BasePath: "/api"},
		Store:      store,
		Onboarding: onboarding.NewWorkflow(store, onboarding.DefaultCatalog(), notifier, &logger),
		Sync:       manager,
		Notifier:   notifier,
	}

	r := mux.NewRouter()
	RegisterRoutes(r.PathPrefix("/api").Subrouter(), svc)
	return r
}

func bearer(t *testing.T, roles ...string) string {
	t.Helper()
	claims := authn.Claims{Username: "operator"}
	claims.RealmAccess.Roles = roles
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRoutes_RequireAdmin(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"not an admin", bearer(t, "default-roles"), http.StatusForbidden},
		{"admin", bearer(t, authn.AdminRole), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoutes_BulkSyncIsNotADataSourceID(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/datasources/sync", nil)
	req.Header.Set("Authorization", bearer(t, authn.AdminRole))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// No bulk run has been started yet
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body models.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body.ErrorDetails, "no sync run")
}

func TestRoutes_PendingAccountStages(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/pending", nil)
	req.Header.Set("Authorization", bearer(t, authn.AdminRole))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.PendingAccountsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Accounts, 3)
}
