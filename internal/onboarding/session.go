package onboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

var (
	ErrNoPlanSelected = errors.New("no workspace plan selected")
	ErrSessionClosed  = errors.New("onboarding session is closed")
)

// Session is one operator's open view of an account's onboarding. It only
// holds draft selections; everything committed lives on the account, so a
// closed session can be reopened at the same stage.
type Session struct {
	workflow  *Workflow
	accountID uuid.UUID

	mu           sync.Mutex
	plan         string
	selected     []string
	query        string
	acknowledged bool
	ackUntil     time.Time
	closed       bool
	ackTimer     *time.Timer
	done         chan struct{}
}

// Open starts a session for an existing pending account.
func (w *Workflow) Open(ctx context.Context, accountID uuid.UUID) (*Session, error) {
	if _, err := w.Store.GetPendingAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return &Session{
		workflow:  w,
		accountID: accountID,
		done:      make(chan struct{}),
	}, nil
}

// Stage recomputes the account's stage from the store.
func (s *Session) Stage(ctx context.Context) (Stage, error) {
	_, stage, err := s.workflow.Account(ctx, s.accountID)
	return stage, err
}

// SelectPlan picks a workspace plan from the catalog.
func (s *Session) SelectPlan(planID string) error {
	if _, ok := s.workflow.Catalog.Plan(planID); !ok {
		return ErrUnknownPlan
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = planID
	return nil
}

// CanGenerate reports whether "Generate Workspace" is enabled.
func (s *Session) CanGenerate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.plan != ""
}

func (s *Session) GenerateWorkspace(ctx context.Context) (*models.PendingAccount, error) {
	s.mu.Lock()
	plan, closed := s.plan, s.closed
	s.mu.Unlock()

	if closed {
		return nil, ErrSessionClosed
	}
	if plan == "" {
		return nil, ErrNoPlanSelected
	}
	return s.workflow.GenerateWorkspace(ctx, s.accountID, plan)
}

// ToggleDashboard adds or removes a dashboard from the draft selection and
// reports whether it is now selected.
func (s *Session) ToggleDashboard(dashboardID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	for i, id := range s.selected {
		if id == dashboardID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return false
		}
	}
	s.selected = append(s.selected, dashboardID)
	return true
}

// Selected returns the draft dashboard selection in toggle order.
func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selected...)
}

func (s *Session) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Dashboards lists the catalog dashboards matching the current search.
func (s *Session) Dashboards() ([]models.Dashboard, bool) {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()
	return s.workflow.Catalog.FilterDashboards(query)
}

// CanAssign reports whether "Assign Dashboards" is enabled.
func (s *Session) CanAssign() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && len(s.selected) > 0
}

func (s *Session) AssignDashboards(ctx context.Context) (*models.PendingAccount, error) {
	s.mu.Lock()
	selected, closed := append([]string(nil), s.selected...), s.closed
	s.mu.Unlock()

	if closed {
		return nil, ErrSessionClosed
	}
	return s.workflow.AssignDashboards(ctx, s.accountID, selected)
}

// Approve promotes the account and acknowledges the session. The session
// closes itself once the acknowledgement period has passed.
func (s *Session) Approve(ctx context.Context) (*models.Client, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrSessionClosed
	}

	client, err := s.workflow.Approve(ctx, s.accountID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.acknowledged = true
		s.ackUntil = s.workflow.Now().Add(s.workflow.AckDuration)
		s.ackTimer = time.AfterFunc(s.workflow.AckDuration, s.Close)
	}
	return client, nil
}

// Acknowledged reports whether the approval acknowledgement is showing.
func (s *Session) Acknowledged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acknowledged && !s.closed
}

// AcknowledgedUntil is when the approval acknowledgement closes the
// session. It is zero before approval.
func (s *Session) AcknowledgedUntil() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ackUntil
}

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close discards the draft state and stops any pending acknowledgement
// timer. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.ackTimer != nil {
		s.ackTimer.Stop()
	}
	s.closed = true
	s.plan = ""
	s.selected = nil
	s.query = ""
	close(s.done)
}
