package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ClientType string

const (
	ClientIndividual   ClientType = "Individual"
	ClientOrganization ClientType = "Organization"
)

func (t ClientType) Valid() bool {
	return t == ClientIndividual || t == ClientOrganization
}

type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientInactive  ClientStatus = "inactive"
	ClientSuspended ClientStatus = "suspended"
)

// Valid reports whether s is a known client status.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientSuspended:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

func (p PaymentStatus) Valid() bool {
	return p == PaymentPaid || p == PaymentUnpaid
}

// ClientsResponse holds a list of clients.
type ClientsResponse struct {
	Clients []Client `json:"clients"`
}

// Client is an onboarded customer of the platform.
type Client struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Type               ClientType     `json:"type"`
	Email              string         `json:"email"`
	Plan               string         `json:"plan"`
	Status             ClientStatus   `json:"status"`
	JoinDate           time.Time      `json:"joinDate"`
	DashboardCount     int            `json:"dashboardCount"`
	UserCount          int            `json:"userCount"`
	LastActive         time.Time      `json:"lastActive"`
	WorkspaceID        *string        `json:"workspaceId,omitempty"`
	AssignedDashboards []string       `json:"assignedDashboards,omitempty"`
	PaymentStatus      *PaymentStatus `json:"paymentStatus,omitempty"`
}

// Normalize re-derives DashboardCount from the assigned dashboard set.
// Every write path calls it so the two never drift apart.
func (c *Client) Normalize() {
	c.DashboardCount = len(c.AssignedDashboards)
}

// ClientUpdate carries the editable fields of a client. Nil fields are left
// as stored. The join date and dashboard count cannot be written.
type ClientUpdate struct {
	Name               *string        `json:"name,omitempty"`
	Type               *ClientType    `json:"type,omitempty"`
	Email              *string        `json:"email,omitempty"`
	Plan               *string        `json:"plan,omitempty"`
	Status             *ClientStatus  `json:"status,omitempty"`
	UserCount          *int           `json:"userCount,omitempty"`
	LastActive         *time.Time     `json:"lastActive,omitempty"`
	WorkspaceID        *string        `json:"workspaceId,omitempty"`
	AssignedDashboards *[]string      `json:"assignedDashboards,omitempty"`
	PaymentStatus      *PaymentStatus `json:"paymentStatus,omitempty"`
}

// Validate rejects values a client can never hold.
func (u ClientUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Type != nil && !u.Type.Valid() {
		return fmt.Errorf("invalid type %q", *u.Type)
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("invalid status %q", *u.Status)
	}
	if u.PaymentStatus != nil && !u.PaymentStatus.Valid() {
		return fmt.Errorf("invalid payment status %q", *u.PaymentStatus)
	}
	if u.UserCount != nil && *u.UserCount < 0 {
		return errors.New("userCount must not be negative")
	}
	return nil
}

// Apply merges the update into the client and re-derives the dashboard count.
func (u ClientUpdate) Apply(c *Client) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Plan != nil {
		c.Plan = *u.Plan
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.UserCount != nil {
		c.UserCount = *u.UserCount
	}
	if u.LastActive != nil {
		c.LastActive = *u.LastActive
	}
	if u.WorkspaceID != nil {
		workspaceID := *u.WorkspaceID
		c.WorkspaceID = &workspaceID
	}
	if u.AssignedDashboards != nil {
		c.AssignedDashboards = append([]string(nil), (*u.AssignedDashboards)...)
	}
	if u.PaymentStatus != nil {
		payment := *u.PaymentStatus
		c.PaymentStatus = &payment
	}
	c.Normalize()
}

// NewClientFromAccount builds the inactive, unpaid client created on approval.
func NewClientFromAccount(a PendingAccount, data OnboardingData, now time.Time) Client {
	workspaceID := data.WorkspaceID
	unpaid := PaymentUnpaid
	c := Client{
		ID:                 uuid.New(),
		Name:               a.CompanyName,
		Type:               ClientOrganization,
		Email:              a.Email,
		Plan:               string(a.RequestedPlan),
		Status:             ClientInactive,
		JoinDate:           now,
		UserCount:          1,
		LastActive:         now,
		WorkspaceID:        &workspaceID,
		AssignedDashboards: append([]string(nil), data.AssignedDashboards...),
		PaymentStatus:      &unpaid,
	}
	c.Normalize()
	return c
}
