package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abrar2030/FinovaBank/internal/db/memory"
	"github.com/abrar2030/FinovaBank/internal/domain"
)

// sequence returns a source that yields values in order and then repeats the last one.
func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestNewNumberGenerator(t *testing.T) {
	for _, code := range []string{"", "100", "10011", "10a1"} {
		if _, err := domain.NewNumberGenerator(code, 3); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("bank code %q: expected ErrInvalidArgument, got %v", code, err)
		}
	}

	g, err := domain.NewNumberGenerator("2002", 3)
	if err != nil {
		t.Fatalf("NewNumberGenerator failed: %v", err)
	}
	n := g.WithSource(sequence(42, 7)).Next()
	if n != "2002004200000007" {
		t.Errorf("expected 2002004200000007, got %s", n)
	}
	if len(n) != 16 || strings.Trim(n, "0123456789") != "" {
		t.Errorf("expected 16 digits, got %q", n)
	}
}

func TestAllocateRetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	if _, err := store.Insert(ctx, &domain.Account{AccountNumber: "1001000000000000"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	g, err := domain.NewNumberGenerator(domain.DefaultBankCode, 3)
	if err != nil {
		t.Fatalf("NewNumberGenerator failed: %v", err)
	}
	// First candidate collides with the seeded account, the second is free
	g.WithSource(sequence(0, 0, 0, 1))

	created, err := g.Allocate(ctx, store, &domain.Account{CustomerID: "CUST-1"})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if created.AccountNumber != "1001000000000001" {
		t.Errorf("expected 1001000000000001, got %s", created.AccountNumber)
	}
}

func TestAllocateExhausted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	if _, err := store.Insert(ctx, &domain.Account{AccountNumber: "1001000000000000"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	g, err := domain.NewNumberGenerator(domain.DefaultBankCode, 3)
	if err != nil {
		t.Fatalf("NewNumberGenerator failed: %v", err)
	}
	g.WithSource(sequence(0))

	if _, err := g.Allocate(ctx, store, &domain.Account{}); !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Errorf("expected ErrAllocationExhausted, got %v", err)
	}

	ledger, err := domain.NewLedger(store, domain.Options{Numbers: g})
	if err != nil {
		t.Fatalf("NewLedger failed: %v", err)
	}
	_, err = ledger.CreateAccount(domain.WithActor(ctx, "teller-1"), domain.CreateAccountRequest{
		CustomerID:  "CUST-1",
		AccountName: "Blocked",
		AccountType: domain.AccountTypeSavings,
	})
	if !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Errorf("expected ErrAllocationExhausted from CreateAccount, got %v", err)
	}
}
