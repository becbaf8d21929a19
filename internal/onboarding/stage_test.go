package onboarding

import (
	"testing"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeStage(t *testing.T) {
	ws := "ws-1"
	empty := ""

	tests := []struct {
		name    string
		account models.PendingAccount
		want    Stage
	}{
		{"nothing set", models.PendingAccount{}, StagePlanSelection},
		{"empty workspace id", models.PendingAccount{WorkspaceID: &empty}, StagePlanSelection},
		{"dashboards without workspace", models.PendingAccount{AssignedDashboards: []string{"a"}}, StagePlanSelection},
		{"workspace only", models.PendingAccount{WorkspaceID: &ws}, StageDashboardAssignment},
		{"empty dashboard set", models.PendingAccount{WorkspaceID: &ws, AssignedDashboards: []string{}}, StageDashboardAssignment},
		{"workspace and dashboards", models.PendingAccount{WorkspaceID: &ws, AssignedDashboards: []string{"a"}}, StageConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStage(tt.account))
		})
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "plan-selection", StagePlanSelection.String())
	assert.Equal(t, "confirmation", StageConfirmation.String())
	assert.Equal(t, "unknown", Stage(0).String())
}
