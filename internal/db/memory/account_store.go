// Package memory provides an in-process domain.AccountStore.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

// AccountStore implements domain.AccountStore on guarded maps. Records are
// copied on the way in and out so callers never share state with the store.
type AccountStore struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*domain.Account
	byNumber map[string]uuid.UUID
	now      func() time.Time
}

// NewAccountStore creates a new empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:     make(map[uuid.UUID]*domain.Account),
		byNumber: make(map[string]uuid.UUID),
		now:      time.Now,
	}
}

// Get retrieves an account by its unique identifier.
func (s *AccountStore) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account.Clone(), nil
}

// GetByNumber retrieves an account by its account number.
func (s *AccountStore) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNumber[accountNumber]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.byID[id].Clone(), nil
}

// ListByCustomer returns the customer's accounts, oldest first.
func (s *AccountStore) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	return s.collect(func(a *domain.Account) bool { return a.CustomerID == customerID }), nil
}

// List returns a page of accounts matching the filter, oldest first.
func (s *AccountStore) List(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error) {
	page = page.Normalize()
	matched := s.collect(func(a *domain.Account) bool {
		if filter.AccountType != "" && a.AccountType != filter.AccountType {
			return false
		}
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}
		return true
	})

	result := &domain.AccountPage{
		Items: []*domain.Account{},
		Page:  page.Page,
		Size:  page.Size,
		Total: int64(len(matched)),
	}
	if start := page.Offset(); start >= 0 && start < len(matched) {
		end := start + page.Size
		if end > len(matched) {
			end = len(matched)
		}
		result.Items = matched[start:end]
	}
	return result, nil
}

// Insert persists a new account and assigns its ID.
func (s *AccountStore) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byNumber[account.AccountNumber]; taken {
		return nil, domain.ErrConflict
	}

	stored := account.Clone()
	stored.ID = uuid.New()
	stored.Version = 0
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}

	s.byID[stored.ID] = stored
	s.byNumber[stored.AccountNumber] = stored.ID
	return stored.Clone(), nil
}

// ConditionalUpdate applies mutate if the stored version equals expectedVersion.
func (s *AccountStore) ConditionalUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate func(*domain.Account) error) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if current.Version != expectedVersion {
		return nil, domain.ErrVersionConflict
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	// Identity and audit creation fields are owned by the store
	next.ID = current.ID
	next.AccountNumber = current.AccountNumber
	next.CreatedAt = current.CreatedAt
	next.CreatedBy = current.CreatedBy
	next.Version = current.Version + 1
	next.UpdatedAt = s.now().UTC()

	s.byID[id] = next
	return next.Clone(), nil
}

func (s *AccountStore) collect(match func(*domain.Account) bool) []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0)
	for _, a := range s.byID {
		if match(a) {
			accounts = append(accounts, a.Clone())
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID.String() < accounts[j].ID.String()
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts
}
