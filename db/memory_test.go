package db

import (
	"context"
	"testing"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PromoteToClientRemovesAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())

	accounts, err := store.ListPendingAccounts(ctx)
	require.NoError(t, err)
	account := accounts[0]

	data := models.OnboardingData{
		WorkspaceID:        "ws-test",
		WorkspacePlan:      "professional",
		AssignedDashboards: []string{"sales-overview", "marketing-funnel"},
	}

	client, err := store.PromoteToClient(ctx, account.ID, data)
	require.NoError(t, err)

	assert.Equal(t, account.CompanyName, client.Name)
	assert.Equal(t, 2, client.DashboardCount)
	assert.Equal(t, models.ClientInactive, client.Status)
	require.NotNil(t, client.PaymentStatus)
	assert.Equal(t, models.PaymentUnpaid, *client.PaymentStatus)

	_, err = store.GetPendingAccount(ctx, account.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// A second promotion must not create a duplicate client
	before, _ := store.ListClients(ctx)
	_, err = store.PromoteToClient(ctx, account.ID, data)
	assert.ErrorIs(t, err, ErrNotFound)
	after, _ := store.ListClients(ctx)
	assert.Len(t, after, len(before))
}

func TestMemoryStore_UpdateAccountMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())
	accounts, _ := store.ListPendingAccounts(ctx)
	id := accounts[0].ID

	workspaceID := "ws-1"
	plan := "basic"
	updated, err := store.UpdateAccount(ctx, id, models.AccountUpdate{WorkspaceID: &workspaceID, SelectedWorkspacePlan: &plan})
	require.NoError(t, err)
	assert.Equal(t, "ws-1", *updated.WorkspaceID)
	assert.Equal(t, accounts[0].CompanyName, updated.CompanyName)
	assert.Nil(t, updated.AssignedDashboards)

	updated, err = store.UpdateAccount(ctx, id, models.AccountUpdate{AssignedDashboards: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "ws-1", *updated.WorkspaceID)
	assert.Equal(t, []string{"a"}, updated.AssignedDashboards)

	_, err = store.UpdateAccount(ctx, uuid.New(), models.AccountUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())

	clients, _ := store.ListClients(ctx)
	clients[0].AssignedDashboards[0] = "mutated"
	*clients[0].WorkspaceID = "mutated"

	fresh, err := store.GetClient(ctx, clients[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.AssignedDashboards[0])
	assert.NotEqual(t, "mutated", *fresh.WorkspaceID)
}

func TestMemoryStore_UpdateClientDerivesDashboardCount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())
	clients, _ := store.ListClients(ctx)

	dashboards := []string{"only-one"}
	updated, err := store.UpdateClient(ctx, clients[0].ID, models.ClientUpdate{AssignedDashboards: &dashboards})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.DashboardCount)

	_, err = store.UpdateClient(ctx, uuid.New(), models.ClientUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateClientKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())
	clients, _ := store.ListClients(ctx)
	before := clients[0]

	name := "Renamed"
	updated, err := store.UpdateClient(ctx, before.ID, models.ClientUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, before.JoinDate, updated.JoinDate)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.UserCount, updated.UserCount)
	assert.Equal(t, before.WorkspaceID, updated.WorkspaceID)
	assert.Equal(t, before.PaymentStatus, updated.PaymentStatus)
	assert.Equal(t, before.AssignedDashboards, updated.AssignedDashboards)
}

func TestMemoryStore_SeedDashboardCounts(t *testing.T) {
	store := NewMemoryStore(SeedData())
	clients, err := store.ListClients(context.Background())
	require.NoError(t, err)

	for _, c := range clients {
		assert.Equal(t, len(c.AssignedDashboards), c.DashboardCount, c.Name)
	}
}

func TestMemoryStore_UpdateDataSource(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(SeedData())
	sources, _ := store.ListDataSources(ctx)

	status := models.Connected
	updated, err := store.UpdateDataSource(ctx, sources[1].ID, models.DataSourceUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.Connected, updated.Status)
	assert.Equal(t, sources[1].Name, updated.Name)

	_, err = store.UpdateDataSource(ctx, uuid.New(), models.DataSourceUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CreatePendingAccountDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{})

	created, err := store.CreatePendingAccount(ctx, models.PendingAccount{CompanyName: "New Co"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.AccountPending, created.Status)
	assert.False(t, created.RequestDate.IsZero())

	accounts, _ := store.ListPendingAccounts(ctx)
	assert.Len(t, accounts, 1)
}
