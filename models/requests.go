package models

import "time"

// ReviewRequest moves a pending account between review statuses.
type ReviewRequest struct {
	Status AccountStatus `json:"status"`
}

// GenerateWorkspaceRequest selects the workspace plan for stage one.
type GenerateWorkspaceRequest struct {
	Plan string `json:"plan"`
}

// AssignDashboardsRequest lists the dashboards chosen in stage two.
type AssignDashboardsRequest struct {
	Dashboards []string `json:"dashboards"`
}

// WorkspacePlansResponse holds the workspace plan catalog.
type WorkspacePlansResponse struct {
	Plans []WorkspacePlan `json:"plans"`
}

// ApprovalResponse is the client created on approval. The operator view
// shows its acknowledgement until AcknowledgedUntil.
type ApprovalResponse struct {
	Client
	AcknowledgedUntil time.Time `json:"acknowledgedUntil"`
}
