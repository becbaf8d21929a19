package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const clientColumns = `id, name, client_type, email, plan, status, join_date, dashboard_count, user_count, last_active, workspace_id, assigned_dashboards, payment_status`

// ListClients retrieves all clients ordered by join date.
func (w *AdminDB) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := w.DB.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY join_date, id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning clients: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// GetClient retrieves a single client.
func (w *AdminDB) GetClient(ctx context.Context, clientID uuid.UUID) (*models.Client, error) {
	c, err := scanClient(w.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, clientID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning client: %w", err)
	}
	return c, nil
}

// UpdateClient merges the update into the stored client. The join date is
// never written.
func (w *AdminDB) UpdateClient(ctx context.Context, clientID uuid.UUID, update models.ClientUpdate) (*models.Client, error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	client, err := scanClient(tx.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1 FOR UPDATE`, clientID))
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error scanning client: %w", err)
	}

	update.Apply(client)

	err = w.execQuery(ctx, tx, `
		UPDATE clients
		SET name = $1, client_type = $2, email = $3, plan = $4, status = $5, dashboard_count = $6,
			user_count = $7, last_active = $8, workspace_id = $9, assigned_dashboards = $10, payment_status = $11
		WHERE id = $12`,
		client.Name, client.Type, client.Email, client.Plan, client.Status, client.DashboardCount,
		client.UserCount, client.LastActive, nullString(client.WorkspaceID),
		pq.Array(idList(client.AssignedDashboards)), nullString((*string)(client.PaymentStatus)), clientID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error updating client: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return client, nil
}

func (w *AdminDB) insertClient(ctx context.Context, tx *sql.Tx, c models.Client) error {
	return w.execQuery(ctx, tx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Type, c.Email, c.Plan, c.Status, c.JoinDate, c.DashboardCount, c.UserCount,
		c.LastActive, nullString(c.WorkspaceID), pq.Array(idList(c.AssignedDashboards)),
		nullString((*string)(c.PaymentStatus)))
}

func scanClient(row rowScanner) (*models.Client, error) {
	var c models.Client
	var workspaceID, payment sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Type,
		&c.Email,
		&c.Plan,
		&c.Status,
		&c.JoinDate,
		&c.DashboardCount,
		&c.UserCount,
		&c.LastActive,
		&workspaceID,
		pq.Array(&c.AssignedDashboards),
		&payment); err != nil {
		return nil, err
	}
	c.JoinDate = c.JoinDate.UTC()
	c.LastActive = c.LastActive.UTC()
	c.WorkspaceID = stringPtr(workspaceID)
	if payment.Valid {
		ps := models.PaymentStatus(payment.String)
		c.PaymentStatus = &ps
	}
	if len(c.AssignedDashboards) == 0 {
		c.AssignedDashboards = nil
	}
	return &c, nil
}
