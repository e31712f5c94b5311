package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/abrar2030/FinovaBank/internal/domain"
	pb "github.com/abrar2030/FinovaBank/proto/account/v1"
)

// Ledger is the set of ledger operations exposed over gRPC.
type Ledger interface {
	CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListCustomerAccounts(ctx context.Context, customerID string) ([]*domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req domain.UpdateAccountRequest) (*domain.Account, error)
	ApplyTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.Account, error)
	ValidateTransaction(ctx context.Context, id uuid.UUID, amount decimal.Decimal, kind domain.TransactionKind) (bool, error)
	FreezeAccount(ctx context.Context, id uuid.UUID, reason string) (*domain.Account, error)
	UnfreezeAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus, reason string) (*domain.Account, error)
	CloseAccount(ctx context.Context, id uuid.UUID, reason string) (*domain.Account, error)
}

// AccountServer implements pb.AccountServiceServer on top of the account ledger.
type AccountServer struct {
	pb.UnimplementedAccountServiceServer
	ledger Ledger
}

// NewAccountServer creates a new AccountServer.
func NewAccountServer(ledger Ledger) *AccountServer {
	return &AccountServer{
		ledger: ledger,
	}
}

// CreateAccount opens a new account.
func (s *AccountServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.AccountResponse, error) {
	createReq, err := toCreateAccountRequest(req)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	account, err := s.ledger.CreateAccount(ctx, createReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.GetAccount(ctx, id)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// GetAccountByNumber retrieves an account by its account number.
func (s *AccountServer) GetAccountByNumber(ctx context.Context, req *pb.GetAccountByNumberRequest) (*pb.AccountResponse, error) {
	if req.AccountNumber == "" {
		return nil, invalidArgument("account_number is required")
	}

	account, err := s.ledger.GetAccountByNumber(ctx, req.AccountNumber)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// ListCustomerAccounts lists every account of a customer.
func (s *AccountServer) ListCustomerAccounts(ctx context.Context, req *pb.ListCustomerAccountsRequest) (*pb.AccountListResponse, error) {
	if req.CustomerId == "" {
		return nil, invalidArgument("customer_id is required")
	}

	accounts, err := s.ledger.ListCustomerAccounts(ctx, req.CustomerId)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return &pb.AccountListResponse{
		Accounts: toProtoAccounts(accounts),
		Total:    int64(len(accounts)),
	}, nil
}

// ListAccounts lists a page of accounts.
func (s *AccountServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.AccountListResponse, error) {
	filter := domain.AccountFilter{
		AccountType: domain.AccountType(strings.ToUpper(req.AccountType)),
		Status:      domain.AccountStatus(strings.ToUpper(req.Status)),
	}

	page, err := s.ledger.ListAccounts(ctx, filter, domain.PageRequest{Page: int(req.Page), Size: int(req.Size)})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return &pb.AccountListResponse{
		Accounts: toProtoAccounts(page.Items),
		Page:     int32(page.Page),
		Size:     int32(page.Size),
		Total:    page.Total,
	}, nil
}

// UpdateAccount changes the mutable attributes of an account.
func (s *AccountServer) UpdateAccount(ctx context.Context, req *pb.UpdateAccountRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}
	updateReq, err := toUpdateAccountRequest(req)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	account, err := s.ledger.UpdateAccount(ctx, id, updateReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// ApplyTransaction credits or debits an account.
func (s *AccountServer) ApplyTransaction(ctx context.Context, req *pb.ApplyTransactionRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	account, err := s.ledger.ApplyTransaction(ctx, domain.TransactionRequest{
		AccountID:   id,
		Amount:      amount,
		Kind:        domain.TransactionKind(strings.ToUpper(req.TransactionType)),
		Description: req.Description,
		Reference:   req.Reference,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// ValidateTransaction reports whether a transaction would be accepted.
// Malformed amounts or types are reported as invalid, not as errors.
func (s *AccountServer) ValidateTransaction(ctx context.Context, req *pb.ValidateTransactionRequest) (*pb.ValidateTransactionResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	valid, err := s.ledger.ValidateTransaction(ctx, id, amount, domain.TransactionKind(strings.ToUpper(req.TransactionType)))
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return &pb.ValidateTransactionResponse{Valid: valid}, nil
}

// GetBalance returns the balances of an account.
func (s *AccountServer) GetBalance(ctx context.Context, req *pb.GetAccountRequest) (*pb.BalanceResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.GetAccount(ctx, id)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return &pb.BalanceResponse{
		AccountId:        account.ID.String(),
		Balance:          account.Balance.StringFixed(domain.MoneyScale),
		AvailableBalance: account.AvailableBalance.StringFixed(domain.MoneyScale),
		OverdraftLimit:   account.OverdraftLimit.StringFixed(domain.MoneyScale),
		Currency:         account.Currency,
		Timestamp:        domain.FormatTimestamp(time.Now()),
	}, nil
}

// FreezeAccount freezes an account.
func (s *AccountServer) FreezeAccount(ctx context.Context, req *pb.FreezeAccountRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, invalidArgument("reason is required")
	}

	account, err := s.ledger.FreezeAccount(ctx, id, req.Reason)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// UnfreezeAccount unfreezes an account.
func (s *AccountServer) UnfreezeAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.UnfreezeAccount(ctx, id)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// UpdateStatus moves an account to a new status.
func (s *AccountServer) UpdateStatus(ctx context.Context, req *pb.UpdateStatusRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}
	if req.Status == "" {
		return nil, invalidArgument("status is required")
	}

	account, err := s.ledger.UpdateStatus(ctx, id, domain.AccountStatus(strings.ToUpper(req.Status)), req.Reason)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

// CloseAccount closes an account with a zero balance.
func (s *AccountServer) CloseAccount(ctx context.Context, req *pb.CloseAccountRequest) (*pb.AccountResponse, error) {
	id, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.CloseAccount(ctx, id, req.Reason)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return accountResponse(account), nil
}

func accountResponse(account *domain.Account) *pb.AccountResponse {
	return &pb.AccountResponse{Account: toProtoAccount(account)}
}

// parseAccountID validates and parses an account ID, returning a gRPC status error.
func parseAccountID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, invalidArgument("account_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidArgument(fmt.Sprintf("invalid account_id: %v", err))
	}
	return id, nil
}

func toCreateAccountRequest(req *pb.CreateAccountRequest) (domain.CreateAccountRequest, error) {
	out := domain.CreateAccountRequest{
		CustomerID:    req.CustomerId,
		AccountName:   req.AccountName,
		AccountType:   domain.AccountType(strings.ToUpper(req.AccountType)),
		Currency:      strings.ToUpper(req.Currency),
		BranchCode:    req.BranchCode,
		RoutingNumber: req.RoutingNumber,
		IBAN:          req.Iban,
		SwiftCode:     req.SwiftCode,
	}

	var err error
	if out.InitialDeposit, err = optionalAmount("initial_deposit", req.InitialDeposit); err != nil {
		return out, err
	}
	if out.OverdraftLimit, err = optionalAmount("overdraft_limit", req.OverdraftLimit); err != nil {
		return out, err
	}
	if out.MinimumBalance, err = optionalAmount("minimum_balance", req.MinimumBalance); err != nil {
		return out, err
	}
	if out.InterestRate, err = domain.ParseInterestRate(req.InterestRate); err != nil {
		return out, fmt.Errorf("interest_rate: %w", err)
	}
	return out, nil
}

func toUpdateAccountRequest(req *pb.UpdateAccountRequest) (domain.UpdateAccountRequest, error) {
	out := domain.UpdateAccountRequest{
		AccountName:   req.AccountName,
		BranchCode:    req.BranchCode,
		RoutingNumber: req.RoutingNumber,
		IBAN:          req.Iban,
		SwiftCode:     req.SwiftCode,
	}

	for _, f := range []struct {
		name string
		src  *string
		dst  **decimal.Decimal
	}{
		{"overdraft_limit", req.OverdraftLimit, &out.OverdraftLimit},
		{"minimum_balance", req.MinimumBalance, &out.MinimumBalance},
	} {
		if f.src == nil {
			continue
		}
		v, err := domain.ParseNonNegativeAmount(*f.src)
		if err != nil {
			return out, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = &v
	}

	if req.InterestRate != nil {
		v, err := domain.ParseInterestRate(*req.InterestRate)
		if err != nil {
			return out, fmt.Errorf("interest_rate: %w", err)
		}
		out.InterestRate = &v
	}
	return out, nil
}

func optionalAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	v, err := domain.ParseNonNegativeAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// ErrorDomain identifies this service in the ErrorInfo details of failed calls.
const ErrorDomain = "accounts.finovabank"

// Error reasons carried in ErrorInfo. They match the HTTP error codes.
const (
	ReasonInvalidArgument        = "INVALID_ARGUMENT"
	ReasonNotFound               = "NOT_FOUND"
	ReasonAlreadyExists          = "ALREADY_EXISTS"
	ReasonConcurrentModification = "CONCURRENT_MODIFICATION"
	ReasonInsufficientFunds      = "INSUFFICIENT_FUNDS"
	ReasonInvalidState           = "INVALID_STATE"
	ReasonNonZeroBalance         = "NON_ZERO_BALANCE"
	ReasonAllocationExhausted    = "ALLOCATION_EXHAUSTED"
)

// mapDomainErrorToGRPC maps domain errors to gRPC status codes with an
// ErrorInfo detail naming the error kind.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	var (
		code   codes.Code
		reason string
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code, reason = codes.NotFound, ReasonNotFound
	case errors.Is(err, domain.ErrConflict):
		code, reason = codes.AlreadyExists, ReasonAlreadyExists
	case errors.Is(err, domain.ErrBusy), errors.Is(err, domain.ErrVersionConflict):
		code, reason = codes.Aborted, ReasonConcurrentModification
	case errors.Is(err, domain.ErrInsufficientFunds):
		code, reason = codes.FailedPrecondition, ReasonInsufficientFunds
	case errors.Is(err, domain.ErrNonZeroBalance):
		code, reason = codes.FailedPrecondition, ReasonNonZeroBalance
	case errors.Is(err, domain.ErrInvalidState):
		code, reason = codes.FailedPrecondition, ReasonInvalidState
	case errors.Is(err, domain.ErrInvalidArgument):
		code, reason = codes.InvalidArgument, ReasonInvalidArgument
	case errors.Is(err, domain.ErrAllocationExhausted):
		code, reason = codes.ResourceExhausted, ReasonAllocationExhausted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		// Store failures are not echoed to callers
		return status.Error(codes.Internal, "internal error")
	}
	return statusWithReason(code, err.Error(), reason)
}

func invalidArgument(msg string) error {
	return statusWithReason(codes.InvalidArgument, msg, ReasonInvalidArgument)
}

func statusWithReason(code codes.Code, msg, reason string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: ErrorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorReason returns the ErrorInfo reason attached to a gRPC error, or ""
// if there is none.
func ErrorReason(err error) string {
	for _, d := range status.Convert(err).Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
