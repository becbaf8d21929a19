package services

import (
	"context"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockNotifier) Close() {
	m.Called()
}

// MockStore overrides the read paths used by the error tests and falls
// through to the embedded store for everything else.
type MockStore struct {
	db.Store
	mock.Mock
}

func (m *MockStore) ListClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockStore) GetClient(ctx context.Context, clientID uuid.UUID) (*models.Client, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(*models.Client), args.Error(1)
}
