package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a disposable PostgreSQL and returns a migrated, seeded AdminDB.
func setupPostgresContainer(t *testing.T) *AdminDB {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "admin",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("could not start container: %s", err)
	}
	t.Cleanup(func() { postgresC.Terminate(ctx) })

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432/tcp")

	t.Setenv("DATABASE_URL", fmt.Sprintf("postgres://postgres:postgres@%s:%s/admin?sslmode=disable", host, port.Port()))

	logger := zerolog.New(os.Stdout)
	adminDB, err := NewAdminDB(&logger)
	require.NoError(t, err)
	t.Cleanup(func() { adminDB.Close() })

	require.NoError(t, adminDB.Migrate())
	require.NoError(t, adminDB.SeedDB(ctx, SeedData()))

	return adminDB
}

func TestAdminDB_OnboardingRoundTrip(t *testing.T) {
	adminDB := setupPostgresContainer(t)
	ctx := context.Background()

	accounts, err := adminDB.ListPendingAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, len(SeedData().Accounts))

	id := accounts[0].ID
	workspaceID := "ws-" + id.String()
	plan := "professional"

	updated, err := adminDB.UpdateAccount(ctx, id, models.AccountUpdate{WorkspaceID: &workspaceID, SelectedWorkspacePlan: &plan})
	require.NoError(t, err)
	assert.Equal(t, workspaceID, *updated.WorkspaceID)

	updated, err = adminDB.UpdateAccount(ctx, id, models.AccountUpdate{AssignedDashboards: []string{"sales-overview", "inventory-health"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sales-overview", "inventory-health"}, updated.AssignedDashboards)

	client, err := adminDB.PromoteToClient(ctx, id, models.OnboardingData{
		WorkspaceID:        workspaceID,
		WorkspacePlan:      plan,
		AssignedDashboards: updated.AssignedDashboards,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, client.DashboardCount)

	stored, err := adminDB.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClientInactive, stored.Status)
	require.NotNil(t, stored.PaymentStatus)
	assert.Equal(t, models.PaymentUnpaid, *stored.PaymentStatus)

	_, err = adminDB.GetPendingAccount(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = adminDB.PromoteToClient(ctx, id, models.OnboardingData{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminDB_UpdateDataSource(t *testing.T) {
	adminDB := setupPostgresContainer(t)
	ctx := context.Background()

	sources, err := adminDB.ListDataSources(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	now := time.Now().UTC().Truncate(time.Second)
	status := models.Connected
	updated, err := adminDB.UpdateDataSource(ctx, sources[0].ID, models.DataSourceUpdate{Status: &status, LastSync: &now})
	require.NoError(t, err)
	assert.Equal(t, models.Connected, updated.Status)
	require.NotNil(t, updated.LastSync)
	assert.True(t, now.Equal(*updated.LastSync))

	_, err = adminDB.UpdateDataSource(ctx, uuid.New(), models.DataSourceUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminDB_UpdateClientKeepsOmittedFields(t *testing.T) {
	adminDB := setupPostgresContainer(t)
	ctx := context.Background()

	clients, err := adminDB.ListClients(ctx)
	require.NoError(t, err)
	before := clients[0]

	status := models.ClientSuspended
	dashboards := []string{"sales-overview"}
	updated, err := adminDB.UpdateClient(ctx, before.ID, models.ClientUpdate{Status: &status, AssignedDashboards: &dashboards})
	require.NoError(t, err)
	assert.Equal(t, models.ClientSuspended, updated.Status)
	assert.Equal(t, 1, updated.DashboardCount)
	assert.True(t, before.JoinDate.Equal(updated.JoinDate))
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.PaymentStatus, updated.PaymentStatus)

	stored, err := adminDB.GetClient(ctx, before.ID)
	require.NoError(t, err)
	assert.True(t, before.JoinDate.Equal(stored.JoinDate))
	assert.Equal(t, before.UserCount, stored.UserCount)
	assert.Equal(t, before.WorkspaceID, stored.WorkspaceID)

	_, err = adminDB.UpdateClient(ctx, uuid.New(), models.ClientUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminDB_ListSubscriptions(t *testing.T) {
	adminDB := setupPostgresContainer(t)

	subscriptions, err := adminDB.ListSubscriptions(context.Background())
	require.NoError(t, err)
	require.Len(t, subscriptions, 3)
	assert.Equal(t, "Starter", subscriptions[0].Plan)
	assert.True(t, subscriptions[2].UnlimitedUsers())
}

func TestNullHelpers(t *testing.T) {
	assert.Equal(t, sql.NullString{}, nullString(nil))
	assert.Nil(t, stringPtr(sql.NullString{}))
	assert.NotNil(t, idList(nil))
	assert.Nil(t, timePtr(sql.NullTime{}))
}
