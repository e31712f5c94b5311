package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event types published after a mutation commits.
const (
	EventAccountCreated       = "account.created"
	EventAccountUpdated       = "account.updated"
	EventTransactionApplied   = "transaction.applied"
	EventAccountFrozen        = "account.frozen"
	EventAccountUnfrozen      = "account.unfrozen"
	EventAccountStatusChanged = "account.status_changed"
	EventAccountClosed        = "account.closed"
)

// AccountEvent describes a committed change to an account.
type AccountEvent struct {
	EventID        string `json:"eventId"`
	EventType      string `json:"eventType"`
	EventTimestamp string `json:"eventTimestamp"`
	AccountID      string `json:"accountId"`
	AccountNumber  string `json:"accountNumber"`
	CustomerID     string `json:"customerId"`
	Actor          string `json:"actor"`
	Version        int64  `json:"version"`
	Status         string `json:"status"`
	Balance        string `json:"balance"`
	Currency       string `json:"currency"`

	// Set for transaction.applied
	TransactionKind string `json:"transactionKind,omitempty"`
	Amount          string `json:"amount,omitempty"`
	Reference       string `json:"reference,omitempty"`
	Description     string `json:"description,omitempty"`

	// Set for freeze, status and closure events
	PreviousStatus string `json:"previousStatus,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// NewAccountEvent builds an event snapshot of the committed account state.
func NewAccountEvent(eventType string, account *Account, actor string, at time.Time) *AccountEvent {
	return &AccountEvent{
		EventID:        uuid.New().String(),
		EventType:      eventType,
		EventTimestamp: FormatTimestamp(at),
		AccountID:      account.ID.String(),
		AccountNumber:  account.AccountNumber,
		CustomerID:     account.CustomerID,
		Actor:          actor,
		Version:        account.Version,
		Status:         string(account.Status),
		Balance:        account.Balance.StringFixed(MoneyScale),
		Currency:       account.Currency,
	}
}
