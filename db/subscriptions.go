package db

import (
	"context"
	"fmt"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/lib/pq"
)

// ListSubscriptions retrieves the subscription tiers, cheapest first.
func (w *AdminDB) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	rows, err := w.DB.QueryContext(ctx, `
		SELECT plan, price, billing_interval, features, active_users, max_users, max_dashboards, storage
		FROM subscriptions ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subscriptions: %w", err)
	}
	defer rows.Close()

	subscriptions := []models.Subscription{}
	for rows.Next() {
		var s models.Subscription
		if err := rows.Scan(&s.Plan, &s.Price, &s.Interval, pq.Array(&s.Features),
			&s.ActiveUsers, &s.MaxUsers, &s.MaxDashboards, &s.Storage); err != nil {
			return nil, fmt.Errorf("error scanning subscriptions: %w", err)
		}
		subscriptions = append(subscriptions, s)
	}
	return subscriptions, rows.Err()
}
