package onboarding

import (
	"strings"

	"github.com/EO-DataHub/eodhp-admin-services/models"
)

// Catalog is the static reference data offered during onboarding.
type Catalog struct {
	Plans      []models.WorkspacePlan
	Dashboards []models.Dashboard
}

// DefaultCatalog returns the built-in workspace plans and dashboards.
func DefaultCatalog() Catalog {
	return Catalog{
		Plans: []models.WorkspacePlan{
			{ID: "basic", Name: "Basic", Storage: "10 GB", MaxUsers: 5},
			{ID: "professional", Name: "Professional", Storage: "100 GB", MaxUsers: 25},
			{ID: "enterprise", Name: "Enterprise", Storage: "1 TB", MaxUsers: models.Unlimited},
		},
		Dashboards: []models.Dashboard{
			{ID: "sales-overview", Name: "Sales Overview", Description: "Revenue, orders and conversion by channel", Category: "Sales"},
			{ID: "inventory-health", Name: "Inventory Health", Description: "Stock levels, turnover and reorder alerts", Category: "Operations"},
			{ID: "customer-insights", Name: "Customer Insights", Description: "Cohorts, retention and lifetime value", Category: "Marketing"},
			{ID: "marketing-funnel", Name: "Marketing Funnel", Description: "Campaign reach through to signup", Category: "Marketing"},
			{ID: "financial-summary", Name: "Financial Summary", Description: "Profit and loss, cash flow and budget variance", Category: "Finance"},
			{ID: "support-metrics", Name: "Support Metrics", Description: "Ticket volume, response times and satisfaction", Category: "Operations"},
		},
	}
}

// WithDefaults fills empty catalog sections from DefaultCatalog.
func (c Catalog) WithDefaults() Catalog {
	defaults := DefaultCatalog()
	if len(c.Plans) == 0 {
		c.Plans = defaults.Plans
	}
	if len(c.Dashboards) == 0 {
		c.Dashboards = defaults.Dashboards
	}
	return c
}

// Plan looks up a workspace plan by ID.
func (c Catalog) Plan(id string) (models.WorkspacePlan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.WorkspacePlan{}, false
}

// Dashboard looks up a dashboard by ID.
func (c Catalog) Dashboard(id string) (models.Dashboard, bool) {
	for _, d := range c.Dashboards {
		if d.ID == id {
			return d, true
		}
	}
	return models.Dashboard{}, false
}

// FilterDashboards returns the dashboards whose name or description contains
// query, ignoring case. The second result is true when nothing matched.
func (c Catalog) FilterDashboards(query string) ([]models.Dashboard, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	matches := []models.Dashboard{}
	for _, d := range c.Dashboards {
		if q == "" ||
			strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			matches = append(matches, d)
		}
	}
	return matches, len(matches) == 0
}
