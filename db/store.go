package db

import (
	"context"
	"errors"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// AccountStore holds signup requests awaiting onboarding.
type AccountStore interface {
	ListPendingAccounts(ctx context.Context) ([]models.PendingAccount, error)
	GetPendingAccount(ctx context.Context, accountID uuid.UUID) (*models.PendingAccount, error)
	CreatePendingAccount(ctx context.Context, account models.PendingAccount) (*models.PendingAccount, error)
	UpdateAccount(ctx context.Context, accountID uuid.UUID, update models.AccountUpdate) (*models.PendingAccount, error)

	// PromoteToClient removes the pending account and creates its client
	// atomically. It returns ErrNotFound if the account has already gone.
	PromoteToClient(ctx context.Context, accountID uuid.UUID, data models.OnboardingData) (*models.Client, error)
}

// ClientStore holds onboarded clients.
type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*models.Client, error)
	// UpdateClient merges the update into the stored client. An empty update
	// only re-derives the dashboard count.
	UpdateClient(ctx context.Context, clientID uuid.UUID, update models.ClientUpdate) (*models.Client, error)
}

// DataSourceStore holds client data source connections.
type DataSourceStore interface {
	ListDataSources(ctx context.Context) ([]models.DataSource, error)
	GetDataSource(ctx context.Context, dataSourceID uuid.UUID) (*models.DataSource, error)
	UpdateDataSource(ctx context.Context, dataSourceID uuid.UUID, update models.DataSourceUpdate) (*models.DataSource, error)
}

// CatalogStore holds the read-only reference data of the console.
type CatalogStore interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
}

// Store is the data provider used by the workflows and the API.
type Store interface {
	AccountStore
	ClientStore
	DataSourceStore
	CatalogStore
	Close() error
}
