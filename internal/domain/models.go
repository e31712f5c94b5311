package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive          AccountStatus = "ACTIVE"
	AccountStatusInactive        AccountStatus = "INACTIVE"
	AccountStatusSuspended       AccountStatus = "SUSPENDED"
	AccountStatusClosed          AccountStatus = "CLOSED"
	AccountStatusPendingApproval AccountStatus = "PENDING_APPROVAL"
	AccountStatusPendingClosure  AccountStatus = "PENDING_CLOSURE"
	AccountStatusFrozen          AccountStatus = "FROZEN"
	AccountStatusDormant         AccountStatus = "DORMANT"
)

// AccountType is the product category of an account.
type AccountType string

const (
	AccountTypeChecking             AccountType = "CHECKING"
	AccountTypeSavings              AccountType = "SAVINGS"
	AccountTypeMoneyMarket          AccountType = "MONEY_MARKET"
	AccountTypeCertificateOfDeposit AccountType = "CERTIFICATE_OF_DEPOSIT"
	AccountTypeBusinessChecking     AccountType = "BUSINESS_CHECKING"
	AccountTypeBusinessSavings      AccountType = "BUSINESS_SAVINGS"
	AccountTypeLoan                 AccountType = "LOAN"
	AccountTypeCreditCard           AccountType = "CREDIT_CARD"
	AccountTypeInvestment           AccountType = "INVESTMENT"
)

var accountTypes = map[AccountType]struct{}{
	AccountTypeChecking:             {},
	AccountTypeSavings:              {},
	AccountTypeMoneyMarket:          {},
	AccountTypeCertificateOfDeposit: {},
	AccountTypeBusinessChecking:     {},
	AccountTypeBusinessSavings:      {},
	AccountTypeLoan:                 {},
	AccountTypeCreditCard:           {},
	AccountTypeInvestment:           {},
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	_, ok := accountTypes[t]
	return ok
}

// TransactionKind is the direction of a balance transaction.
type TransactionKind string

const (
	TransactionKindCredit TransactionKind = "CREDIT"
	TransactionKindDebit  TransactionKind = "DEBIT"
)

// Account is the ledger aggregate: balances, limits and lifecycle metadata
// of a single bank account.
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	CustomerID    string
	AccountName   string
	AccountType   AccountType
	Currency      string
	Status        AccountStatus

	Balance          decimal.Decimal
	AvailableBalance decimal.Decimal
	OverdraftLimit   decimal.Decimal
	MinimumBalance   decimal.Decimal
	InterestRate     decimal.Decimal

	BranchCode    string
	RoutingNumber string
	IBAN          string
	SwiftCode     string

	IsFrozen     bool
	FreezeReason string
	FrozenAt     *time.Time
	FrozenBy     string

	LastTransactionDate *time.Time

	OpenedBy      string
	ClosedAt      *time.Time
	ClosedBy      string
	ClosureReason string

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
	Version   int64
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	c.FrozenAt = cloneTime(a.FrozenAt)
	c.LastTransactionDate = cloneTime(a.LastTransactionDate)
	c.ClosedAt = cloneTime(a.ClosedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// CanCredit reports whether the account accepts incoming funds.
func (a *Account) CanCredit() bool {
	if a.IsFrozen {
		return false
	}
	return a.Status == AccountStatusActive || a.Status == AccountStatusDormant
}

// CanDebitStatus reports whether the account state allows outgoing funds,
// regardless of the amount.
func (a *Account) CanDebitStatus() bool {
	return !a.IsFrozen && a.Status == AccountStatusActive
}

// HasFundsFor reports whether amount fits within the available balance plus
// the overdraft allowance.
func (a *Account) HasFundsFor(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(a.AvailableBalance.Add(a.OverdraftLimit))
}

// CanDebit reports whether amount can be withdrawn from the account.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.CanDebitStatus() && a.HasFundsFor(amount)
}

// Credit adds amount to both balances.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.AvailableBalance = a.AvailableBalance.Add(amount)
}

// Debit subtracts amount from both balances.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.AvailableBalance = a.AvailableBalance.Sub(amount)
}

// Overdrawn returns how far the balance is below zero, or zero.
func (a *Account) Overdrawn() decimal.Decimal {
	if a.Balance.IsNegative() {
		return a.Balance.Neg()
	}
	return decimal.Zero
}

// AccountFilter narrows ListAccounts results. Empty fields match everything.
type AccountFilter struct {
	AccountType AccountType
	Status      AccountStatus
}

// PageRequest selects a zero-based page of results.
type PageRequest struct {
	Page int
	Size int
}

const (
	// DefaultPageSize is used when a page request has no size.
	DefaultPageSize = 20
	// MaxPageSize caps the size of a single page.
	MaxPageSize = 100
	// MaxPage caps the page index so that Offset stays within int32.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Normalize fills defaults and clamps the page index and size.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of records preceding the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// AccountPage is one page of a filtered account listing.
type AccountPage struct {
	Items []*Account
	Page  int
	Size  int
	Total int64
}
