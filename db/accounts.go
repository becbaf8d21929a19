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

const accountColumns = `id, company_name, contact, email, requested_plan, request_date, status, workspace_id, selected_workspace_plan, assigned_dashboards`

// ListPendingAccounts retrieves all accounts awaiting onboarding, oldest request first.
func (w *AdminDB) ListPendingAccounts(ctx context.Context) ([]models.PendingAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM pending_accounts ORDER BY request_date, id`
	rows, err := w.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving pending accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.PendingAccount{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending accounts: %w", err)
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

// GetPendingAccount retrieves a single pending account.
func (w *AdminDB) GetPendingAccount(ctx context.Context, accountID uuid.UUID) (*models.PendingAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM pending_accounts WHERE id = $1`
	a, err := scanAccount(w.DB.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning pending account: %w", err)
	}
	return a, nil
}

// CreatePendingAccount records a new signup request.
func (w *AdminDB) CreatePendingAccount(ctx context.Context, account models.PendingAccount) (*models.PendingAccount, error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.RequestDate.IsZero() {
		account.RequestDate = w.now()
	}
	if account.Status == "" {
		account.Status = models.AccountPending
	}

	err = w.execQuery(ctx, tx, `
		INSERT INTO pending_accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		account.ID, account.CompanyName, account.Contact, account.Email, account.RequestedPlan, account.RequestDate,
		account.Status, nullString(account.WorkspaceID), nullString(account.SelectedWorkspacePlan),
		pq.Array(idList(account.AssignedDashboards)))
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting pending account: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return &account, nil
}

// UpdateAccount merges the partial update into the stored account.
func (w *AdminDB) UpdateAccount(ctx context.Context, accountID uuid.UUID, update models.AccountUpdate) (*models.PendingAccount, error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	account, err := w.lockAccount(ctx, tx, accountID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	update.Apply(account)

	err = w.execQuery(ctx, tx, `
		UPDATE pending_accounts
		SET status = $1, workspace_id = $2, selected_workspace_plan = $3, assigned_dashboards = $4
		WHERE id = $5`,
		account.Status, nullString(account.WorkspaceID), nullString(account.SelectedWorkspacePlan),
		pq.Array(idList(account.AssignedDashboards)), accountID)
	if err != nil {
		tx.Rollback()
		w.Log.Error().Err(err).Str("account_id", accountID.String()).Msg("error updating pending account")
		return nil, fmt.Errorf("error updating pending account: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return account, nil
}

// PromoteToClient moves a pending account into the clients table.
func (w *AdminDB) PromoteToClient(ctx context.Context, accountID uuid.UUID, data models.OnboardingData) (*models.Client, error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	account, err := w.lockAccount(ctx, tx, accountID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	client := models.NewClientFromAccount(*account, data, w.now())
	if err := w.insertClient(ctx, tx, client); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting client: %w", err)
	}

	if err := w.execQuery(ctx, tx, `DELETE FROM pending_accounts WHERE id = $1`, accountID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error removing pending account: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	w.Log.Info().Str("account_id", accountID.String()).Str("client_id", client.ID.String()).Msg("Account promoted to client")
	return &client, nil
}

// lockAccount reads an account inside tx and holds its row lock until commit.
func (w *AdminDB) lockAccount(ctx context.Context, tx *sql.Tx, accountID uuid.UUID) (*models.PendingAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM pending_accounts WHERE id = $1 FOR UPDATE`
	account, err := scanAccount(tx.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning pending account: %w", err)
	}
	return account, nil
}

func scanAccount(row rowScanner) (*models.PendingAccount, error) {
	var a models.PendingAccount
	var workspaceID, plan sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.CompanyName,
		&a.Contact,
		&a.Email,
		&a.RequestedPlan,
		&a.RequestDate,
		&a.Status,
		&workspaceID,
		&plan,
		pq.Array(&a.AssignedDashboards)); err != nil {
		return nil, err
	}
	a.RequestDate = a.RequestDate.UTC()
	a.WorkspaceID = stringPtr(workspaceID)
	a.SelectedWorkspacePlan = stringPtr(plan)
	if len(a.AssignedDashboards) == 0 {
		a.AssignedDashboards = nil
	}
	return &a, nil
}
