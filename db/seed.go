package db

import (
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

// Seed is the initial content of a store.
type Seed struct {
	Accounts      []models.PendingAccount
	Clients       []models.Client
	DataSources   []models.DataSource
	Subscriptions []models.Subscription
}

// SeedData returns the demo fixtures loaded into a fresh store.
func SeedData() Seed {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	}
	str := func(s string) *string { return &s }
	paid := models.PaymentPaid

	return Seed{
		Accounts: []models.PendingAccount{
			{
				ID:            uuid.MustParse("6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a01"),
				CompanyName:   "Northwind Analytics",
				Contact:       "Dana Reyes",
				Email:         "dana@northwind.example",
				RequestedPlan: models.PlanProfessional,
				RequestDate:   day(2024, time.March, 4),
				Status:        models.AccountPending,
			},
			{
				ID:                    uuid.MustParse("6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a02"),
				CompanyName:           "Blue Fjord Shipping",
				Contact:               "Ola Nordmann",
				Email:                 "ola@bluefjord.example",
				RequestedPlan:         models.PlanEnterprise,
				RequestDate:           day(2024, time.March, 6),
				Status:                models.AccountReviewing,
				WorkspaceID:           str("ws-6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a02-1709715600000000000"),
				SelectedWorkspacePlan: str("enterprise"),
			},
			{
				ID:            uuid.MustParse("6f1c2b6e-1d0a-4c55-9a51-0d6c2f0e0a03"),
				CompanyName:   "Greenleaf Farms",
				Contact:       "Priya Shah",
				Email:         "priya@greenleaf.example",
				RequestedPlan: models.PlanStarter,
				RequestDate:   day(2024, time.March, 9),
				Status:        models.AccountPending,
			},
		},
		Clients: []models.Client{
			{
				ID:                 uuid.MustParse("0b7e9a44-52c3-4d8e-8f0a-6b1f4c3d2e01"),
				Name:               "Acme Retail",
				Type:               models.ClientOrganization,
				Email:              "ops@acme.example",
				Plan:               "Enterprise",
				Status:             models.ClientActive,
				JoinDate:           day(2023, time.June, 12),
				UserCount:          48,
				LastActive:         day(2024, time.March, 10),
				WorkspaceID:        str("ws-acme-retail"),
				AssignedDashboards: []string{"sales-overview", "inventory-health", "customer-insights"},
				PaymentStatus:      &paid,
			},
			{
				ID:                 uuid.MustParse("0b7e9a44-52c3-4d8e-8f0a-6b1f4c3d2e02"),
				Name:               "Jordan Lee",
				Type:               models.ClientIndividual,
				Email:              "jordan@lee.example",
				Plan:               "Starter",
				Status:             models.ClientSuspended,
				JoinDate:           day(2023, time.November, 2),
				UserCount:          1,
				LastActive:         day(2024, time.January, 18),
				AssignedDashboards: []string{"sales-overview"},
			},
		},
		DataSources: []models.DataSource{
			{
				ID:        uuid.MustParse("9d2f8c10-7a6b-4e3d-b2c1-5f4e3d2c1b01"),
				Name:      "Orders warehouse",
				Client:    "Acme Retail",
				Type:      models.DataSourceDatabase,
				Status:    models.Connected,
				Consumers: 12,
				Provider:  str("PostgreSQL"),
			},
			{
				ID:        uuid.MustParse("9d2f8c10-7a6b-4e3d-b2c1-5f4e3d2c1b02"),
				Name:      "Storefront events",
				Client:    "Acme Retail",
				Type:      models.DataSourceAPI,
				Status:    models.Disconnected,
				Consumers: 3,
			},
			{
				ID:        uuid.MustParse("9d2f8c10-7a6b-4e3d-b2c1-5f4e3d2c1b03"),
				Name:      "Monthly exports",
				Client:    "Jordan Lee",
				Type:      models.DataSourceFile,
				Status:    models.ConnectionError,
				Consumers: 1,
			},
			{
				ID:        uuid.MustParse("9d2f8c10-7a6b-4e3d-b2c1-5f4e3d2c1b04"),
				Name:      "Telemetry bucket",
				Client:    "Acme Retail",
				Type:      models.DataSourceCloud,
				Status:    models.Connected,
				Consumers: 7,
				Provider:  str("AWS S3"),
			},
		},
		Subscriptions: []models.Subscription{
			{
				Plan:          "Starter",
				Price:         29,
				Interval:      "month",
				Features:      []string{"5 dashboards", "Email support"},
				ActiveUsers:   120,
				MaxUsers:      5,
				MaxDashboards: 5,
				Storage:       "10 GB",
			},
			{
				Plan:          "Professional",
				Price:         99,
				Interval:      "month",
				Features:      []string{"25 dashboards", "Priority support", "API access"},
				ActiveUsers:   64,
				MaxUsers:      25,
				MaxDashboards: 25,
				Storage:       "100 GB",
			},
			{
				Plan:          "Enterprise",
				Price:         499,
				Interval:      "month",
				Features:      []string{"Unlimited dashboards", "Dedicated support", "SSO"},
				ActiveUsers:   18,
				MaxUsers:      models.Unlimited,
				MaxDashboards: models.Unlimited,
				Storage:       "1 TB",
			},
		},
	}
}
