package onboarding

import "github.com/EO-DataHub/eodhp-admin-services/models"

// Stage is the onboarding step a pending account is currently in.
type Stage int

const (
	StagePlanSelection       Stage = 1
	StageDashboardAssignment Stage = 2
	StageConfirmation        Stage = 3
)

func (s Stage) String() string {
	switch s {
	case StagePlanSelection:
		return "plan-selection"
	case StageDashboardAssignment:
		return "dashboard-assignment"
	case StageConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// ComputeStage derives the stage from the persisted onboarding fields only.
// An empty workspace ID or an empty dashboard set counts as unset.
func ComputeStage(a models.PendingAccount) Stage {
	switch {
	case !a.HasWorkspace():
		return StagePlanSelection
	case !a.HasDashboards():
		return StageDashboardAssignment
	default:
		return StageConfirmation
	}
}
