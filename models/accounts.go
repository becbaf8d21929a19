package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestedPlan is the subscription tier asked for at signup.
type RequestedPlan string

const (
	PlanStarter      RequestedPlan = "Starter"
	PlanProfessional RequestedPlan = "Professional"
	PlanEnterprise   RequestedPlan = "Enterprise"
)

// AccountStatus tracks the review state of a signup request.
type AccountStatus string

const (
	AccountPending   AccountStatus = "pending"
	AccountReviewing AccountStatus = "reviewing"
	AccountApproved  AccountStatus = "approved"
	AccountRejected  AccountStatus = "rejected"
)

// Valid reports whether s is a known account status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountPending, AccountReviewing, AccountApproved, AccountRejected:
		return true
	}
	return false
}

// PendingAccountsResponse holds a list of pending accounts.
type PendingAccountsResponse struct {
	Accounts []PendingAccountView `json:"accounts"`
}

// PendingAccount is a signup request awaiting onboarding.
type PendingAccount struct {
	ID                    uuid.UUID     `json:"id"`
	CompanyName           string        `json:"companyName"`
	Contact               string        `json:"contact"`
	Email                 string        `json:"email"`
	RequestedPlan         RequestedPlan `json:"requestedPlan"`
	RequestDate           time.Time     `json:"requestDate"`
	Status                AccountStatus `json:"status"`
	WorkspaceID           *string       `json:"workspaceId,omitempty"`
	SelectedWorkspacePlan *string       `json:"selectedWorkspacePlan,omitempty"`
	AssignedDashboards    []string      `json:"assignedDashboards,omitempty"`
}

// HasWorkspace reports whether stage one has been completed.
func (a PendingAccount) HasWorkspace() bool {
	return a.WorkspaceID != nil && *a.WorkspaceID != ""
}

// HasDashboards reports whether stage two has been completed.
func (a PendingAccount) HasDashboards() bool {
	return len(a.AssignedDashboards) > 0
}

// PendingAccountView is a pending account decorated with its onboarding stage.
type PendingAccountView struct {
	PendingAccount
	Stage int `json:"stage"`
}

// AccountUpdate carries the partial fields written back to a pending account.
// Nil fields are left untouched.
type AccountUpdate struct {
	Status                *AccountStatus `json:"status,omitempty"`
	WorkspaceID           *string        `json:"workspaceId,omitempty"`
	SelectedWorkspacePlan *string        `json:"selectedWorkspacePlan,omitempty"`
	AssignedDashboards    []string       `json:"assignedDashboards,omitempty"`
}

// Apply merges the update into the account.
func (u AccountUpdate) Apply(a *PendingAccount) {
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.WorkspaceID != nil {
		id := *u.WorkspaceID
		a.WorkspaceID = &id
	}
	if u.SelectedWorkspacePlan != nil {
		plan := *u.SelectedWorkspacePlan
		a.SelectedWorkspacePlan = &plan
	}
	if u.AssignedDashboards != nil {
		a.AssignedDashboards = append([]string(nil), u.AssignedDashboards...)
	}
}

// OnboardingData are the artifacts collected by the onboarding stages.
type OnboardingData struct {
	WorkspaceID        string   `json:"workspaceId"`
	WorkspacePlan      string   `json:"workspacePlan"`
	AssignedDashboards []string `json:"assignedDashboards"`
}
