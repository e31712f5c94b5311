package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	// DefaultBankCode prefixes generated account numbers.
	DefaultBankCode = "1001"
	// DefaultNumberAttempts bounds account number allocation retries.
	DefaultNumberAttempts = 10

	branchDigits   = 4
	sequenceDigits = 8
)

// NumberGenerator allocates 16-digit account numbers made of a fixed 4-digit
// bank code, a random 4-digit branch code and a random 8-digit sequence.
type NumberGenerator struct {
	bankCode    string
	maxAttempts int
	intn        func(n int) int
}

// NewNumberGenerator creates a new NumberGenerator.
func NewNumberGenerator(bankCode string, maxAttempts int) (*NumberGenerator, error) {
	if len(bankCode) != 4 || strings.Trim(bankCode, "0123456789") != "" {
		return nil, fmt.Errorf("%w: bank code must be 4 digits, got %q", ErrInvalidArgument, bankCode)
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultNumberAttempts
	}
	return &NumberGenerator{
		bankCode:    bankCode,
		maxAttempts: maxAttempts,
		intn:        rand.IntN,
	}, nil
}

// WithSource replaces the random source. Used by tests to force collisions.
func (g *NumberGenerator) WithSource(intn func(n int) int) *NumberGenerator {
	g.intn = intn
	return g
}

// Next returns a fresh candidate number. Uniqueness is established by Allocate.
func (g *NumberGenerator) Next() string {
	return g.bankCode +
		fmt.Sprintf("%0*d", branchDigits, g.intn(10_000)) +
		fmt.Sprintf("%0*d", sequenceDigits, g.intn(100_000_000))
}

// Allocate assigns a number to account and inserts it, drawing a new
// candidate whenever the store reports the number as taken.
func (g *NumberGenerator) Allocate(ctx context.Context, store AccountStore, account *Account) (*Account, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		account.AccountNumber = g.Next()

		created, err := store.Insert(ctx, account)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: no free number after %d attempts", ErrAllocationExhausted, g.maxAttempts)
}
