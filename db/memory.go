package db

import (
	"context"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/google/uuid"
)

// MemoryStore is a Store kept in process memory. Records live for the
// lifetime of the process.
type MemoryStore struct {
	mu            sync.RWMutex
	accounts      []models.PendingAccount
	clients       []models.Client
	dataSources   []models.DataSource
	subscriptions []models.Subscription
	now           func() time.Time
}

// NewMemoryStore returns a store holding copies of the given fixtures.
func NewMemoryStore(seed Seed) *MemoryStore {
	s := &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
	for _, a := range seed.Accounts {
		s.accounts = append(s.accounts, copyAccount(a))
	}
	for _, c := range seed.Clients {
		c = copyClient(c)
		c.Normalize()
		s.clients = append(s.clients, c)
	}
	for _, ds := range seed.DataSources {
		s.dataSources = append(s.dataSources, copyDataSource(ds))
	}
	s.subscriptions = append(s.subscriptions, seed.Subscriptions...)
	return s
}

func (s *MemoryStore) ListPendingAccounts(ctx context.Context) ([]models.PendingAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.PendingAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, copyAccount(a))
	}
	return accounts, nil
}

func (s *MemoryStore) GetPendingAccount(ctx context.Context, accountID uuid.UUID) (*models.PendingAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.accountIndex(accountID)
	if i < 0 {
		return nil, ErrNotFound
	}
	a := copyAccount(s.accounts[i])
	return &a, nil
}

func (s *MemoryStore) CreatePendingAccount(ctx context.Context, account models.PendingAccount) (*models.PendingAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.RequestDate.IsZero() {
		account.RequestDate = s.now()
	}
	if account.Status == "" {
		account.Status = models.AccountPending
	}
	s.accounts = append(s.accounts, copyAccount(account))
	a := copyAccount(account)
	return &a, nil
}

func (s *MemoryStore) UpdateAccount(ctx context.Context, accountID uuid.UUID, update models.AccountUpdate) (*models.PendingAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.accountIndex(accountID)
	if i < 0 {
		return nil, ErrNotFound
	}
	update.Apply(&s.accounts[i])
	a := copyAccount(s.accounts[i])
	return &a, nil
}

func (s *MemoryStore) PromoteToClient(ctx context.Context, accountID uuid.UUID, data models.OnboardingData) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.accountIndex(accountID)
	if i < 0 {
		return nil, ErrNotFound
	}
	client := models.NewClientFromAccount(s.accounts[i], data, s.now())

	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	s.clients = append(s.clients, client)

	c := copyClient(client)
	return &c, nil
}

func (s *MemoryStore) ListClients(ctx context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, copyClient(c))
	}
	return clients, nil
}

func (s *MemoryStore) GetClient(ctx context.Context, clientID uuid.UUID) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.ID == clientID {
			c = copyClient(c)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateClient(ctx context.Context, clientID uuid.UUID, update models.ClientUpdate) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != clientID {
			continue
		}
		client := copyClient(s.clients[i])
		update.Apply(&client)
		s.clients[i] = client

		c := copyClient(client)
		return &c, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListDataSources(ctx context.Context) ([]models.DataSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dataSources := make([]models.DataSource, 0, len(s.dataSources))
	for _, ds := range s.dataSources {
		dataSources = append(dataSources, copyDataSource(ds))
	}
	return dataSources, nil
}

func (s *MemoryStore) GetDataSource(ctx context.Context, dataSourceID uuid.UUID) (*models.DataSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ds := range s.dataSources {
		if ds.ID == dataSourceID {
			ds = copyDataSource(ds)
			return &ds, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateDataSource(ctx context.Context, dataSourceID uuid.UUID, update models.DataSourceUpdate) (*models.DataSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dataSources {
		if s.dataSources[i].ID != dataSourceID {
			continue
		}
		update.Apply(&s.dataSources[i])
		ds := copyDataSource(s.dataSources[i])
		return &ds, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscriptions := make([]models.Subscription, len(s.subscriptions))
	copy(subscriptions, s.subscriptions)
	return subscriptions, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) accountIndex(accountID uuid.UUID) int {
	for i, a := range s.accounts {
		if a.ID == accountID {
			return i
		}
	}
	return -1
}

func copyAccount(a models.PendingAccount) models.PendingAccount {
	if a.WorkspaceID != nil {
		id := *a.WorkspaceID
		a.WorkspaceID = &id
	}
	if a.SelectedWorkspacePlan != nil {
		plan := *a.SelectedWorkspacePlan
		a.SelectedWorkspacePlan = &plan
	}
	if a.AssignedDashboards != nil {
		a.AssignedDashboards = append([]string(nil), a.AssignedDashboards...)
	}
	return a
}

func copyClient(c models.Client) models.Client {
	if c.WorkspaceID != nil {
		id := *c.WorkspaceID
		c.WorkspaceID = &id
	}
	if c.PaymentStatus != nil {
		ps := *c.PaymentStatus
		c.PaymentStatus = &ps
	}
	if c.AssignedDashboards != nil {
		c.AssignedDashboards = append([]string(nil), c.AssignedDashboards...)
	}
	return c
}

func copyDataSource(ds models.DataSource) models.DataSource {
	if ds.LastSync != nil {
		t := *ds.LastSync
		ds.LastSync = &t
	}
	if ds.Provider != nil {
		p := *ds.Provider
		ds.Provider = &p
	}
	return ds
}
