package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date with the embedded goose migrations.
func (w *AdminDB) Migrate() error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err := goose.Up(w.DB, "migrations"); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	w.Log.Info().Msg("Database migrations applied successfully")
	return nil
}

// SeedDB loads fixtures, skipping any record that already exists.
func (w *AdminDB) SeedDB(ctx context.Context, seed Seed) error {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for _, a := range seed.Accounts {
		err = w.execQuery(ctx, tx, `
			INSERT INTO pending_accounts (id, company_name, contact, email, requested_plan, request_date, status, workspace_id, selected_workspace_plan, assigned_dashboards)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING`,
			a.ID, a.CompanyName, a.Contact, a.Email, a.RequestedPlan, a.RequestDate, a.Status,
			nullString(a.WorkspaceID), nullString(a.SelectedWorkspacePlan), pq.Array(idList(a.AssignedDashboards)))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding pending account: %w", err)
		}
	}

	for _, c := range seed.Clients {
		c.Normalize()
		if err = w.insertClient(ctx, tx, c); err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding client: %w", err)
		}
	}

	for _, ds := range seed.DataSources {
		err = w.execQuery(ctx, tx, `
			INSERT INTO data_sources (id, name, client_name, source_type, status, consumers, last_sync, provider)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			ds.ID, ds.Name, ds.Client, ds.Type, ds.Status, ds.Consumers, nullTime(ds.LastSync), nullString(ds.Provider))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding data source: %w", err)
		}
	}

	for _, s := range seed.Subscriptions {
		err = w.execQuery(ctx, tx, `
			INSERT INTO subscriptions (plan, price, billing_interval, features, active_users, max_users, max_dashboards, storage)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (plan) DO NOTHING`,
			s.Plan, s.Price, s.Interval, pq.Array(idList(s.Features)), s.ActiveUsers, s.MaxUsers, s.MaxDashboards, s.Storage)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding subscription: %w", err)
		}
	}

	if err := w.CommitTransaction(tx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	w.Log.Info().Int("accounts", len(seed.Accounts)).Int("clients", len(seed.Clients)).
		Int("data_sources", len(seed.DataSources)).Msg("Seed data loaded")
	return nil
}
