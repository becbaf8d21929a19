package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

const dataSourceColumns = `id, name, client_name, source_type, status, consumers, last_sync, provider`

// ListDataSources retrieves every data source.
func (w *AdminDB) ListDataSources(ctx context.Context) ([]models.DataSource, error) {
	rows, err := w.DB.QueryContext(ctx, `SELECT `+dataSourceColumns+` FROM data_sources ORDER BY client_name, name`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving data sources: %w", err)
	}
	defer rows.Close()

	dataSources := []models.DataSource{}
	for rows.Next() {
		ds, err := scanDataSource(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning data sources: %w", err)
		}
		dataSources = append(dataSources, *ds)
	}
	return dataSources, rows.Err()
}

// GetDataSource retrieves a single data source.
func (w *AdminDB) GetDataSource(ctx context.Context, dataSourceID uuid.UUID) (*models.DataSource, error) {
	ds, err := scanDataSource(w.DB.QueryRowContext(ctx, `SELECT `+dataSourceColumns+` FROM data_sources WHERE id = $1`, dataSourceID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning data source: %w", err)
	}
	return ds, nil
}

// UpdateDataSource merges the partial update into the stored data source.
func (w *AdminDB) UpdateDataSource(ctx context.Context, dataSourceID uuid.UUID, update models.DataSourceUpdate) (*models.DataSource, error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	ds, err := scanDataSource(tx.QueryRowContext(ctx,
		`SELECT `+dataSourceColumns+` FROM data_sources WHERE id = $1 FOR UPDATE`, dataSourceID))
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error scanning data source: %w", err)
	}

	update.Apply(ds)

	err = w.execQuery(ctx, tx, `
		UPDATE data_sources SET source_type = $1, status = $2, last_sync = $3, provider = $4 WHERE id = $5`,
		ds.Type, ds.Status, nullTime(ds.LastSync), nullString(ds.Provider), dataSourceID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error updating data source: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return ds, nil
}

func scanDataSource(row rowScanner) (*models.DataSource, error) {
	var ds models.DataSource
	var lastSync sql.NullTime
	var provider sql.NullString
	if err := row.Scan(
		&ds.ID,
		&ds.Name,
		&ds.Client,
		&ds.Type,
		&ds.Status,
		&ds.Consumers,
		&lastSync,
		&provider); err != nil {
		return nil, err
	}
	ds.LastSync = timePtr(lastSync)
	ds.Provider = stringPtr(provider)
	return &ds, nil
}
