package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/appconfig"
	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/onboarding"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	northwindID = "6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a01"
	blueFjordID = "6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a02"
	acmeID      = "0b7e9a44-52c3-4d8e-8f0a-6b1f4c3d2e01"
	storefront  = "9d2f8c10-7a6b-4e3d-b2c1-5f4e3d2c1b02"
)

type serviceFunc func(*Service, http.ResponseWriter, *http.Request)

func newTestService(t *testing.T) (*Service, *MockNotifier) {
	t.Helper()

	logger := zerolog.Nop()
	store := db.NewMemoryStore(db.SeedData())

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything).Return(nil)

	workflow := onboarding.NewWorkflow(store, onboarding.DefaultCatalog(), notifier, &logger)
	manager := datasync.NewManager(store, notifier, datasync.Options{
		StepInterval: time.Millisecond,
		ItemDelay:    time.Millisecond,
		Outcome:      datasync.ForcedOutcome(true),
		Log:          &logger,
	})
	t.Cleanup(manager.Shutdown)

	return &Service{
		Config:     &appconfig.Config{BasePath: "/api"},
		Store:      store,
		Onboarding: workflow,
		Sync:       manager,
		Notifier:   notifier,
	}, notifier
}

// call runs fn against a request built from method, target, body and the
// mux path variables.
func call(svc *Service, fn serviceFunc, method, target string, body any, vars map[string]string) *http.Response {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	r := httptest.NewRequest(method, target, reader)
	logger := zerolog.Nop()
	r = r.WithContext(logger.WithContext(context.Background()))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}

	w := httptest.NewRecorder()
	fn(svc, w, r)
	return w.Result()
}

func decode(t *testing.T, res *http.Response, out any) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}
