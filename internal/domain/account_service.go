package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an account is opened without a currency.
const DefaultCurrency = "USD"

// CreateAccountRequest carries the attributes of a new account.
type CreateAccountRequest struct {
	CustomerID     string
	AccountName    string
	AccountType    AccountType
	Currency       string
	InitialDeposit decimal.Decimal
	OverdraftLimit decimal.Decimal
	MinimumBalance decimal.Decimal
	InterestRate   decimal.Decimal
	BranchCode     string
	RoutingNumber  string
	IBAN           string
	SwiftCode      string
}

// UpdateAccountRequest carries the mutable account attributes. Nil fields
// are left unchanged.
type UpdateAccountRequest struct {
	AccountName    *string
	OverdraftLimit *decimal.Decimal
	MinimumBalance *decimal.Decimal
	InterestRate   *decimal.Decimal
	BranchCode     *string
	RoutingNumber  *string
	IBAN           *string
	SwiftCode      *string
}

// AccountService handles account creation, attribute updates and queries.
type AccountService struct {
	core *core
}

// CreateAccount opens a new ACTIVE account funded with the initial deposit
// and assigns it a unique account number.
func (s *AccountService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := s.core.now()
	account := &Account{
		CustomerID:       req.CustomerID,
		AccountName:      req.AccountName,
		AccountType:      req.AccountType,
		Currency:         req.Currency,
		Status:           AccountStatusActive,
		Balance:          req.InitialDeposit,
		AvailableBalance: req.InitialDeposit,
		OverdraftLimit:   req.OverdraftLimit,
		MinimumBalance:   req.MinimumBalance,
		InterestRate:     req.InterestRate,
		BranchCode:       req.BranchCode,
		RoutingNumber:    req.RoutingNumber,
		IBAN:             req.IBAN,
		SwiftCode:        req.SwiftCode,
		OpenedBy:         actor,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        actor,
		UpdatedBy:        actor,
	}

	created, err := s.core.numbers.Allocate(ctx, s.core.store, account)
	if err != nil {
		return nil, storeError(err)
	}

	s.core.logger.Info("account created",
		"account_id", created.ID, "account_number", created.AccountNumber,
		"customer_id", created.CustomerID, "actor", actor)
	s.core.publish(NewAccountEvent(EventAccountCreated, created, actor, now))

	return created, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.core.get(ctx, id)
}

// GetAccountByNumber retrieves an account by its account number.
func (s *AccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*Account, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return nil, fmt.Errorf("%w: account number is required", ErrInvalidArgument)
	}
	account, err := s.core.store.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, storeError(err)
	}
	return account, nil
}

// ListCustomerAccounts returns every account of a customer.
func (s *AccountService) ListCustomerAccounts(ctx context.Context, customerID string) ([]*Account, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidArgument)
	}
	accounts, err := s.core.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeError(err)
	}
	return accounts, nil
}

// ListAccounts returns a page of accounts matching the filter.
func (s *AccountService) ListAccounts(ctx context.Context, filter AccountFilter, page PageRequest) (*AccountPage, error) {
	if filter.AccountType != "" && !filter.AccountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, filter.AccountType)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, filter.Status)
	}
	result, err := s.core.store.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// UpdateAccount changes the mutable attributes of an open account.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, req UpdateAccountRequest) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}
	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	updated, err := s.core.mutate(ctx, id, func(a *Account) error {
		if a.Status == AccountStatusClosed {
			return fmt.Errorf("%w: cannot update a closed account", ErrInvalidState)
		}
		if req.OverdraftLimit != nil && req.OverdraftLimit.LessThan(a.Overdrawn()) {
			return fmt.Errorf("%w: overdraft limit %s is below the overdrawn amount %s",
				ErrInvalidState, req.OverdraftLimit.StringFixed(MoneyScale), a.Overdrawn().StringFixed(MoneyScale))
		}
		applyUpdate(a, req)
		a.UpdatedBy = actor
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.core.logger.Info("account updated", "account_id", id, "actor", actor, "version", updated.Version)
	s.core.publish(NewAccountEvent(EventAccountUpdated, updated, actor, updated.UpdatedAt))
	return updated, nil
}

// GetBalance returns the ledger balance of an account.
func (s *AccountService) GetBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	account, err := s.core.get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAvailableBalance returns the balance available for withdrawal,
// excluding the overdraft allowance.
func (s *AccountService) GetAvailableBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	account, err := s.core.get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return account.AvailableBalance, nil
}

func validateCreateRequest(req CreateAccountRequest) error {
	if err := checkRequired("customer id", req.CustomerID, maxCustomerIDLength); err != nil {
		return err
	}
	if err := checkRequired("account name", req.AccountName, maxAccountNameLength); err != nil {
		return err
	}
	if !req.AccountType.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, req.AccountType)
	}
	if err := ValidateCurrencyCode(req.Currency); err != nil {
		return err
	}
	if err := validateMoney("initial deposit", req.InitialDeposit, true); err != nil {
		return err
	}
	if err := validateMoney("overdraft limit", req.OverdraftLimit, true); err != nil {
		return err
	}
	if err := validateMoney("minimum balance", req.MinimumBalance, true); err != nil {
		return err
	}
	if err := validateRate(req.InterestRate); err != nil {
		return err
	}
	return validateIdentifiers(req.BranchCode, req.RoutingNumber, req.IBAN, req.SwiftCode)
}

func validateUpdateRequest(req UpdateAccountRequest) error {
	if req.AccountName != nil {
		if err := checkRequired("account name", *req.AccountName, maxAccountNameLength); err != nil {
			return err
		}
	}
	if req.OverdraftLimit != nil {
		if err := validateMoney("overdraft limit", *req.OverdraftLimit, true); err != nil {
			return err
		}
	}
	if req.MinimumBalance != nil {
		if err := validateMoney("minimum balance", *req.MinimumBalance, true); err != nil {
			return err
		}
	}
	if req.InterestRate != nil {
		if err := validateRate(*req.InterestRate); err != nil {
			return err
		}
	}
	return validateIdentifiers(deref(req.BranchCode), deref(req.RoutingNumber), deref(req.IBAN), deref(req.SwiftCode))
}

func validateIdentifiers(branchCode, routingNumber, iban, swiftCode string) error {
	if err := checkLength("branch code", branchCode, maxBranchCodeLength); err != nil {
		return err
	}
	if err := checkLength("routing number", routingNumber, maxRoutingNumberLength); err != nil {
		return err
	}
	if err := checkLength("iban", iban, maxIBANLength); err != nil {
		return err
	}
	return checkLength("swift code", swiftCode, maxSwiftCodeLength)
}

func applyUpdate(a *Account, req UpdateAccountRequest) {
	if req.AccountName != nil {
		a.AccountName = *req.AccountName
	}
	if req.OverdraftLimit != nil {
		a.OverdraftLimit = *req.OverdraftLimit
	}
	if req.MinimumBalance != nil {
		a.MinimumBalance = *req.MinimumBalance
	}
	if req.InterestRate != nil {
		a.InterestRate = *req.InterestRate
	}
	if req.BranchCode != nil {
		a.BranchCode = *req.BranchCode
	}
	if req.RoutingNumber != nil {
		a.RoutingNumber = *req.RoutingNumber
	}
	if req.IBAN != nil {
		a.IBAN = *req.IBAN
	}
	if req.SwiftCode != nil {
		a.SwiftCode = *req.SwiftCode
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
