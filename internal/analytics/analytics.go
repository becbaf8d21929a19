// Package analytics aggregates platform-wide metrics for the console
// overview.
package analytics

import (
	"context"
	"fmt"

	"github.com/EO-DataHub/eodhp-admin-services/models"
)

// Source is the read side of the store needed to build a summary.
type Source interface {
	ListPendingAccounts(ctx context.Context) ([]models.PendingAccount, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	ListDataSources(ctx context.Context) ([]models.DataSource, error)
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
}

// Summary is the aggregate view of clients, signups, data sources and
// revenue.
type Summary struct {
	TotalClients        int                             `json:"totalClients"`
	ClientsByStatus     map[models.ClientStatus]int     `json:"clientsByStatus"`
	ClientsByPlan       map[string]int                  `json:"clientsByPlan"`
	UnpaidClients       int                             `json:"unpaidClients"`
	PendingAccounts     int                             `json:"pendingAccounts"`
	PendingByStatus     map[models.AccountStatus]int    `json:"pendingByStatus"`
	TotalDataSources    int                             `json:"totalDataSources"`
	DataSourcesByStatus map[models.ConnectionStatus]int `json:"dataSourcesByStatus"`
	TotalConsumers      int                             `json:"totalConsumers"`
	TotalUsers          int                             `json:"totalUsers"`
	TotalDashboards     int                             `json:"totalDashboards"`
	MonthlyRevenue      float64                         `json:"monthlyRevenue"`
}

// Summarize reads every collection once and aggregates it.
func Summarize(ctx context.Context, src Source) (*Summary, error) {
	clients, err := src.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	accounts, err := src.ListPendingAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing pending accounts: %w", err)
	}
	dataSources, err := src.ListDataSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing data sources: %w", err)
	}
	subscriptions, err := src.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}

	s := &Summary{
		TotalClients:        len(clients),
		ClientsByStatus:     map[models.ClientStatus]int{},
		ClientsByPlan:       map[string]int{},
		PendingAccounts:     len(accounts),
		PendingByStatus:     map[models.AccountStatus]int{},
		TotalDataSources:    len(dataSources),
		DataSourcesByStatus: map[models.ConnectionStatus]int{},
	}

	for _, c := range clients {
		s.ClientsByStatus[c.Status]++
		s.ClientsByPlan[c.Plan]++
		s.TotalUsers += c.UserCount
		s.TotalDashboards += len(c.AssignedDashboards)
		if c.PaymentStatus != nil && *c.PaymentStatus == models.PaymentUnpaid {
			s.UnpaidClients++
		}
	}
	for _, a := range accounts {
		s.PendingByStatus[a.Status]++
	}
	for _, ds := range dataSources {
		s.DataSourcesByStatus[ds.Status]++
		s.TotalConsumers += ds.Consumers
	}
	for _, sub := range subscriptions {
		s.MonthlyRevenue += MonthlyRevenue(sub)
	}

	return s, nil
}

// MonthlyRevenue is the price of a tier times its active users, normalised
// to a monthly figure.
func MonthlyRevenue(sub models.Subscription) float64 {
	revenue := sub.Price * float64(sub.ActiveUsers)
	switch sub.Interval {
	case "year", "yearly", "annual":
		return revenue / 12
	default:
		return revenue
	}
}
