package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

func TestAccountViewKeepsSubSecondTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC)
	frozen := created.Add(1500 * time.Millisecond)
	lastTx := created.Add(250 * time.Microsecond)

	view := domain.NewAccountView(&domain.Account{
		ID:                  uuid.New(),
		Balance:             dec("12.5"),
		InterestRate:        dec("1.25"),
		FrozenAt:            &frozen,
		LastTransactionDate: &lastTx,
		CreatedAt:           created,
		UpdatedAt:           created,
	})

	for name, tc := range map[string]struct {
		got  *string
		want time.Time
	}{
		"createdAt":           {&view.CreatedAt, created},
		"updatedAt":           {&view.UpdatedAt, created},
		"frozenAt":            {view.FrozenAt, frozen},
		"lastTransactionDate": {view.LastTransactionDate, lastTx},
	} {
		if tc.got == nil {
			t.Errorf("%s: missing from view", name)
			continue
		}
		parsed, err := time.Parse(time.RFC3339Nano, *tc.got)
		if err != nil {
			t.Errorf("%s: %q does not parse: %v", name, *tc.got, err)
			continue
		}
		if !parsed.Equal(tc.want) {
			t.Errorf("%s: round trip lost precision, got %s want %s", name, parsed, tc.want)
		}
	}

	if view.CreatedAt != "2024-03-09T14:05:07.123456789Z" {
		t.Errorf("unexpected createdAt format %q", view.CreatedAt)
	}
	if view.ClosedAt != nil {
		t.Errorf("expected nil closedAt, got %q", *view.ClosedAt)
	}
	if view.Balance != "12.50" || view.InterestRate != "1.2500" {
		t.Errorf("unexpected fixed-scale values: %s %s", view.Balance, view.InterestRate)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.PageRequest
		expected domain.PageRequest
	}{
		{"defaults", domain.PageRequest{}, domain.PageRequest{Page: 0, Size: domain.DefaultPageSize}},
		{"negative page", domain.PageRequest{Page: -3, Size: 10}, domain.PageRequest{Page: 0, Size: 10}},
		{"oversized page", domain.PageRequest{Page: 2, Size: 500}, domain.PageRequest{Page: 2, Size: domain.MaxPageSize}},
		{"huge page index", domain.PageRequest{Page: math.MaxInt, Size: 100}, domain.PageRequest{Page: domain.MaxPage, Size: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got != tt.expected {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.expected)
			}
			if got.Offset() < 0 {
				t.Errorf("Offset() = %d, want non-negative", got.Offset())
			}
		})
	}
}
