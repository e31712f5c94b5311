package memory

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

func newAccount(number string) *domain.Account {
	return &domain.Account{
		AccountNumber:    number,
		CustomerID:       "CUST-1",
		AccountName:      "Everyday",
		AccountType:      domain.AccountTypeChecking,
		Currency:         "USD",
		Status:           domain.AccountStatusActive,
		Balance:          decimal.RequireFromString("10.00"),
		AvailableBalance: decimal.RequireFromString("10.00"),
		CreatedBy:        "teller-1",
		UpdatedBy:        "teller-1",
	}
}

func TestInsertAssignsIdentity(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, newAccount("1001000000000001"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if created.Version != 0 {
		t.Errorf("expected version 0, got %d", created.Version)
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected timestamps to be set, got created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	if _, err := store.Insert(ctx, newAccount("1001000000000001")); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict on duplicate number, got %v", err)
	}

	byNumber, err := store.GetByNumber(ctx, "1001000000000001")
	if err != nil {
		t.Fatalf("GetByNumber failed: %v", err)
	}
	if byNumber.ID != created.ID {
		t.Errorf("expected ID %s, got %s", created.ID, byNumber.ID)
	}
}

func TestGetReturnsCopies(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, newAccount("1001000000000002"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	created.Balance = decimal.RequireFromString("999.00")

	fetched, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !fetched.Balance.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("store state leaked through returned pointer, balance %s", fetched.Balance)
	}

	if _, err := store.Get(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetByNumber(ctx, "0000"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConditionalUpdate(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, newAccount("1001000000000003"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	updated, err := store.ConditionalUpdate(ctx, created.ID, 0, func(a *domain.Account) error {
		a.Balance = a.Balance.Add(decimal.NewFromInt(5))
		a.AccountNumber = "tampered"
		a.CreatedBy = "tampered"
		return nil
	})
	if err != nil {
		t.Fatalf("ConditionalUpdate failed: %v", err)
	}
	if updated.Version != 1 {
		t.Errorf("expected version 1, got %d", updated.Version)
	}
	if !updated.Balance.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("expected balance 15, got %s", updated.Balance)
	}
	if updated.AccountNumber != created.AccountNumber || updated.CreatedBy != "teller-1" {
		t.Error("store-owned fields must not change")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("expected updatedAt to advance")
	}

	if _, err := store.ConditionalUpdate(ctx, created.ID, 0, func(a *domain.Account) error { return nil }); !errors.Is(err, domain.ErrVersionConflict) {
		t.Errorf("expected ErrVersionConflict for stale version, got %v", err)
	}

	rejected := errors.New("rejected")
	if _, err := store.ConditionalUpdate(ctx, created.ID, 1, func(a *domain.Account) error {
		a.Balance = decimal.Zero
		return rejected
	}); !errors.Is(err, rejected) {
		t.Errorf("expected mutator error, got %v", err)
	}

	current, _ := store.Get(ctx, created.ID)
	if current.Version != 1 || !current.Balance.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("failed mutation must not commit, got version %d balance %s", current.Version, current.Balance)
	}

	if _, err := store.ConditionalUpdate(ctx, uuid.New(), 0, func(a *domain.Account) error { return nil }); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrderingAndPaging(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	numbers := []string{"1001000000000010", "1001000000000011", "1001000000000012"}
	for i, n := range numbers {
		a := newAccount(n)
		a.CreatedAt = base.Add(time.Duration(len(numbers)-i) * time.Hour)
		if i == 2 {
			a.AccountType = domain.AccountTypeSavings
			a.CustomerID = "CUST-2"
		}
		if _, err := store.Insert(ctx, a); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	all, err := store.List(ctx, domain.AccountFilter{}, domain.PageRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if all.Total != 3 || all.Size != domain.DefaultPageSize {
		t.Fatalf("unexpected page: total=%d size=%d", all.Total, all.Size)
	}
	if all.Items[0].AccountNumber != numbers[2] || all.Items[2].AccountNumber != numbers[0] {
		t.Errorf("expected oldest first, got %s..%s", all.Items[0].AccountNumber, all.Items[2].AccountNumber)
	}

	checking, err := store.List(ctx, domain.AccountFilter{AccountType: domain.AccountTypeChecking}, domain.PageRequest{Page: 1, Size: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if checking.Total != 2 || len(checking.Items) != 1 || checking.Items[0].AccountNumber != numbers[0] {
		t.Errorf("unexpected filtered page: %+v", checking)
	}

	beyond, err := store.List(ctx, domain.AccountFilter{}, domain.PageRequest{Page: 5, Size: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(beyond.Items) != 0 || beyond.Total != 3 {
		t.Errorf("expected empty page with total 3, got %d items total %d", len(beyond.Items), beyond.Total)
	}

	customer, err := store.ListByCustomer(ctx, "CUST-1")
	if err != nil {
		t.Fatalf("ListByCustomer failed: %v", err)
	}
	if len(customer) != 2 {
		t.Errorf("expected 2 accounts for CUST-1, got %d", len(customer))
	}
}

func TestListWithHugePageIndex(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	if _, err := store.Insert(ctx, newAccount("1001000000000020")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	for _, page := range []int{math.MaxInt / 50, math.MaxInt, domain.MaxPage} {
		result, err := store.List(ctx, domain.AccountFilter{}, domain.PageRequest{Page: page, Size: 100})
		if err != nil {
			t.Fatalf("List(page=%d) failed: %v", page, err)
		}
		if len(result.Items) != 0 || result.Total != 1 {
			t.Errorf("List(page=%d): expected empty page with total 1, got %d items total %d", page, len(result.Items), result.Total)
		}
	}
}
