package onboarding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrWrongStage       = errors.New("account is not at the required onboarding stage")
	ErrUnknownPlan      = errors.New("unknown workspace plan")
	ErrNoDashboards     = errors.New("at least one dashboard must be selected")
	ErrUnknownDashboard = errors.New("unknown dashboard")
	ErrRejected         = errors.New("account has been rejected")
)

// Mailer notifies a newly approved client.
type Mailer interface {
	SendApprovalEmail(ctx context.Context, client models.Client) error
}

// Hooks are called once after each successful terminal action, outside any
// workflow lock.
type Hooks struct {
	OnApprove       func(accountID uuid.UUID, data models.OnboardingData)
	OnUpdateAccount func(accountID uuid.UUID, update models.AccountUpdate)
}

// Workflow advances pending accounts through plan selection, dashboard
// assignment and approval. The current stage is never stored; it is
// recomputed from the account on every call.
type Workflow struct {
	Store       db.AccountStore
	Catalog     Catalog
	Notifier    events.Notifier
	Mailer      Mailer
	Hooks       Hooks
	Log         *zerolog.Logger
	AckDuration time.Duration

	Now func() time.Time

	mu sync.Mutex
}

// NewWorkflow creates a workflow over store using catalog.
func NewWorkflow(store db.AccountStore, catalog Catalog, notifier events.Notifier, log *zerolog.Logger) *Workflow {
	return &Workflow{
		Store:       store,
		Catalog:     catalog.WithDefaults(),
		Notifier:    notifier,
		Log:         log,
		AckDuration: 2 * time.Second,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

// Account returns a pending account together with its computed stage.
func (w *Workflow) Account(ctx context.Context, accountID uuid.UUID) (*models.PendingAccount, Stage, error) {
	account, err := w.Store.GetPendingAccount(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	return account, ComputeStage(*account), nil
}

// GenerateWorkspace provisions a workspace ID for the account on the chosen
// plan. Calling it again replaces the previous ID.
func (w *Workflow) GenerateWorkspace(ctx context.Context, accountID uuid.UUID, planID string) (*models.PendingAccount, error) {
	if _, ok := w.Catalog.Plan(planID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}

	w.mu.Lock()
	account, err := w.loadOnboardable(ctx, accountID)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}

	workspaceID := w.workspaceID(*account)
	update := models.AccountUpdate{
		WorkspaceID:           &workspaceID,
		SelectedWorkspacePlan: &planID,
	}

	account, err = w.Store.UpdateAccount(ctx, accountID, update)
	w.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("error saving workspace: %w", err)
	}

	w.Log.Info().Str("account_id", accountID.String()).Str("workspace_id", workspaceID).
		Str("plan", planID).Msg("Workspace generated")
	w.accountUpdated(accountID, update)
	return account, nil
}

// AssignDashboards stores the selected dashboards on the account. Duplicate
// IDs are dropped, keeping the first occurrence.
func (w *Workflow) AssignDashboards(ctx context.Context, accountID uuid.UUID, dashboardIDs []string) (*models.PendingAccount, error) {
	ids := dedupe(dashboardIDs)
	if len(ids) == 0 {
		return nil, ErrNoDashboards
	}
	for _, id := range ids {
		if _, ok := w.Catalog.Dashboard(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDashboard, id)
		}
	}

	w.mu.Lock()
	account, err := w.loadOnboardable(ctx, accountID)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if !account.HasWorkspace() {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: workspace not generated", ErrWrongStage)
	}

	update := models.AccountUpdate{AssignedDashboards: ids}
	account, err = w.Store.UpdateAccount(ctx, accountID, update)
	w.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("error saving dashboards: %w", err)
	}

	w.Log.Info().Str("account_id", accountID.String()).Int("dashboard_count", len(ids)).Msg("Dashboards assigned")
	w.accountUpdated(accountID, update)
	return account, nil
}

// Approve promotes an account at the confirmation stage into a client.
// Approving an account that has already been promoted returns db.ErrNotFound.
func (w *Workflow) Approve(ctx context.Context, accountID uuid.UUID) (*models.Client, error) {
	w.mu.Lock()
	account, err := w.loadOnboardable(ctx, accountID)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if stage := ComputeStage(*account); stage != StageConfirmation {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: account is at %s", ErrWrongStage, stage)
	}

	data := models.OnboardingData{
		WorkspaceID:        *account.WorkspaceID,
		AssignedDashboards: account.AssignedDashboards,
	}
	if account.SelectedWorkspacePlan != nil {
		data.WorkspacePlan = *account.SelectedWorkspacePlan
	}

	client, err := w.Store.PromoteToClient(ctx, accountID, data)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	w.Log.Info().Str("account_id", accountID.String()).Str("client_id", client.ID.String()).Msg("Account approved")

	if w.Hooks.OnApprove != nil {
		w.Hooks.OnApprove(accountID, data)
	}

	event := events.NewEvent(events.ClientApproved)
	event.AccountID = &accountID
	event.ClientID = &client.ID
	event.Detail = data
	w.notify(event)

	if w.Mailer != nil {
		if err := w.Mailer.SendApprovalEmail(ctx, *client); err != nil {
			w.Log.Warn().Err(err).Str("client_id", client.ID.String()).Msg("Failed to send approval email")
		}
	}

	return client, nil
}

// SetReviewStatus moves an account between pending, reviewing and rejected.
// Approval only happens through Approve.
func (w *Workflow) SetReviewStatus(ctx context.Context, accountID uuid.UUID, status models.AccountStatus) (*models.PendingAccount, error) {
	if !status.Valid() || status == models.AccountApproved {
		return nil, fmt.Errorf("%w: status %q cannot be set directly", ErrWrongStage, status)
	}

	w.mu.Lock()
	update := models.AccountUpdate{Status: &status}
	account, err := w.Store.UpdateAccount(ctx, accountID, update)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	w.accountUpdated(accountID, update)
	return account, nil
}

func (w *Workflow) loadOnboardable(ctx context.Context, accountID uuid.UUID) (*models.PendingAccount, error) {
	account, err := w.Store.GetPendingAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == models.AccountRejected {
		return nil, ErrRejected
	}
	return account, nil
}

// workspaceID builds a workspace ID from the account ID and the current
// time. It never returns the ID the account already holds.
func (w *Workflow) workspaceID(account models.PendingAccount) string {
	ts := w.Now().UnixNano()
	id := fmt.Sprintf("ws-%s-%d", account.ID, ts)
	for account.WorkspaceID != nil && *account.WorkspaceID == id {
		ts++
		id = fmt.Sprintf("ws-%s-%d", account.ID, ts)
	}
	return id
}

func (w *Workflow) accountUpdated(accountID uuid.UUID, update models.AccountUpdate) {
	if w.Hooks.OnUpdateAccount != nil {
		w.Hooks.OnUpdateAccount(accountID, update)
	}

	event := events.NewEvent(events.AccountUpdated)
	event.AccountID = &accountID
	event.Detail = update
	w.notify(event)
}

func (w *Workflow) notify(event events.Event) {
	if w.Notifier == nil {
		return
	}
	if err := w.Notifier.Notify(event); err != nil {
		w.Log.Warn().Err(err).Str("event_type", event.Type).Msg("Failed to publish event")
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
