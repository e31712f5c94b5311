package handlers

import (
	"github.com/google/uuid"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

// CreateAccountRequest is the body of POST /api/accounts.
type CreateAccountRequest struct {
	CustomerID     string `json:"customerId"`
	AccountName    string `json:"accountName"`
	AccountType    string `json:"accountType"`
	Currency       string `json:"currency"`
	InitialDeposit string `json:"initialDeposit"`
	OverdraftLimit string `json:"overdraftLimit"`
	MinimumBalance string `json:"minimumBalance"`
	InterestRate   string `json:"interestRate"`
	BranchCode     string `json:"branchCode"`
	RoutingNumber  string `json:"routingNumber"`
	IBAN           string `json:"iban"`
	SwiftCode      string `json:"swiftCode"`
}

// UpdateAccountRequest is the body of PUT /api/accounts/{id}.
type UpdateAccountRequest struct {
	AccountName    *string `json:"accountName"`
	OverdraftLimit *string `json:"overdraftLimit"`
	MinimumBalance *string `json:"minimumBalance"`
	InterestRate   *string `json:"interestRate"`
	BranchCode     *string `json:"branchCode"`
	RoutingNumber  *string `json:"routingNumber"`
	IBAN           *string `json:"iban"`
	SwiftCode      *string `json:"swiftCode"`
}

// TransactionRequest is the body of POST /api/accounts/{id}/transactions.
type TransactionRequest struct {
	Amount          string `json:"amount"`
	TransactionType string `json:"transactionType"`
	Description     string `json:"description"`
	Reference       string `json:"reference"`
}

// FreezeRequest is the optional body of PATCH /api/accounts/{id}/freeze.
type FreezeRequest struct {
	Reason string `json:"reason"`
}

// AccountPageResponse is a page of accounts.
type AccountPageResponse struct {
	Content       []*domain.AccountView `json:"content"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalElements int64                 `json:"totalElements"`
}

// BalanceResponse carries a single balance value.
type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

// ValidationResponse reports transaction eligibility.
type ValidationResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	ID          uuid.UUID `json:"id"`
}
