package onboarding

import (
	"testing"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterDashboards(t *testing.T) {
	catalog := DefaultCatalog()

	all, none := catalog.FilterDashboards("")
	assert.False(t, none)
	assert.Len(t, all, len(catalog.Dashboards))

	// Matches on name, ignoring case
	byName, none := catalog.FilterDashboards("SALES")
	assert.False(t, none)
	assert.Equal(t, []string{"sales-overview"}, ids(byName))

	// Matches on description
	byDescription, _ := catalog.FilterDashboards("retention")
	assert.Equal(t, []string{"customer-insights"}, ids(byDescription))

	// Matches either field
	operations, _ := catalog.FilterDashboards("levels")
	assert.Equal(t, []string{"inventory-health"}, ids(operations))

	empty, none := catalog.FilterDashboards("no such dashboard")
	assert.True(t, none)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCatalogWithDefaults(t *testing.T) {
	custom := Catalog{Plans: []models.WorkspacePlan{{ID: "tiny"}}}.WithDefaults()

	_, ok := custom.Plan("tiny")
	assert.True(t, ok)
	_, ok = custom.Plan("basic")
	assert.False(t, ok)
	assert.NotEmpty(t, custom.Dashboards)
}

func ids(dashboards []models.Dashboard) []string {
	out := make([]string, 0, len(dashboards))
	for _, d := range dashboards {
		out = append(out, d.ID)
	}
	return out
}
