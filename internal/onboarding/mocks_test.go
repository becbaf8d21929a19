package onboarding

import (
	"context"

	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
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

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendApprovalEmail(ctx context.Context, client models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
