package grpc_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/abrar2030/FinovaBank/internal/db/memory"
	"github.com/abrar2030/FinovaBank/internal/domain"
	grpcserver "github.com/abrar2030/FinovaBank/internal/grpc"
	pb "github.com/abrar2030/FinovaBank/proto/account/v1"
)

const bufSize = 1024 * 1024

// startServer runs the account service on an in-memory listener and
// returns a connected client.
func startServer(t *testing.T, ledger grpcserver.Ledger) (*grpcserver.Client, *grpc.ClientConn) {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpcserver.NewGRPCServer(ledger, slog.New(slog.DiscardHandler))
	go func() {
		if err := srv.Serve(lis); err != nil {
			t.Logf("grpc server error: %v", err)
		}
	}()
	t.Cleanup(srv.Stop)

	bufDialer := func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return grpcserver.NewClientFromConn(conn), conn
}

func newMemoryLedger(t *testing.T) *domain.Ledger {
	t.Helper()
	ledger, err := domain.NewLedger(memory.NewAccountStore(), domain.Options{
		Logger: slog.New(slog.DiscardHandler),
	})
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	return ledger
}

func TestAccountLifecycleOverGRPC(t *testing.T) {
	client, _ := startServer(t, newMemoryLedger(t))
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		CustomerId:     "CUST-1",
		AccountName:    "Everyday",
		AccountType:    "checking",
		InitialDeposit: "500.00",
		OverdraftLimit: "100",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	account := created.Account
	if account.Status != "ACTIVE" || account.Balance != "500.00" || account.OverdraftLimit != "100.00" {
		t.Errorf("unexpected account: %+v", account)
	}
	if account.Currency != "USD" || account.OpenedBy != "teller-1" {
		t.Errorf("expected USD opened by teller-1, got %s by %s", account.Currency, account.OpenedBy)
	}

	credited, err := client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{
		AccountId:       account.Id,
		Amount:          "250.00",
		TransactionType: "CREDIT",
	})
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if credited.Account.Balance != "750.00" || credited.Account.Version != 1 {
		t.Errorf("expected balance 750.00 at version 1, got %s at %d", credited.Account.Balance, credited.Account.Version)
	}

	_, err = client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{
		AccountId:       account.Id,
		Amount:          "1000.00",
		TransactionType: "DEBIT",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition for overdraw, got %v", err)
	}

	balance, err := client.GetBalance(ctx, &pb.GetAccountRequest{AccountId: account.Id})
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if balance.Balance != "750.00" || balance.AvailableBalance != "750.00" || balance.Currency != "USD" {
		t.Errorf("unexpected balance response: %+v", balance)
	}

	validation, err := client.ValidateTransaction(ctx, &pb.ValidateTransactionRequest{
		AccountId:       account.Id,
		Amount:          "850.00",
		TransactionType: "DEBIT",
	})
	if err != nil {
		t.Fatalf("ValidateTransaction failed: %v", err)
	}
	if !validation.Valid {
		t.Error("expected debit within overdraft to be valid")
	}

	frozen, err := client.FreezeAccount(ctx, &pb.FreezeAccountRequest{AccountId: account.Id, Reason: "fraud review"})
	if err != nil {
		t.Fatalf("FreezeAccount failed: %v", err)
	}
	if !frozen.Account.IsFrozen || frozen.Account.FrozenBy != "teller-1" || frozen.Account.FrozenAt == nil {
		t.Errorf("freeze metadata incomplete: %+v", frozen.Account)
	}

	if _, err := client.UnfreezeAccount(ctx, &pb.GetAccountRequest{AccountId: account.Id}); err != nil {
		t.Fatalf("UnfreezeAccount failed: %v", err)
	}

	if _, err := client.CloseAccount(ctx, &pb.CloseAccountRequest{AccountId: account.Id}); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition when closing with balance, got %v", err)
	}

	if _, err := client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{
		AccountId:       account.Id,
		Amount:          "750.00",
		TransactionType: "debit",
	}); err != nil {
		t.Fatalf("draining debit failed: %v", err)
	}

	closed, err := client.CloseAccount(ctx, &pb.CloseAccountRequest{AccountId: account.Id, Reason: "moving abroad"})
	if err != nil {
		t.Fatalf("CloseAccount failed: %v", err)
	}
	if closed.Account.Status != "CLOSED" || closed.Account.ClosureReason != "moving abroad" {
		t.Errorf("unexpected closed account: %+v", closed.Account)
	}

	byNumber, err := client.GetAccountByNumber(ctx, &pb.GetAccountByNumberRequest{AccountNumber: account.AccountNumber})
	if err != nil {
		t.Fatalf("GetAccountByNumber failed: %v", err)
	}
	if byNumber.Account.Id != account.Id {
		t.Errorf("expected %s, got %s", account.Id, byNumber.Account.Id)
	}
}

func TestListingOverGRPC(t *testing.T) {
	client, _ := startServer(t, newMemoryLedger(t))
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	for i := 0; i < 3; i++ {
		if _, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
			CustomerId:  fmt.Sprintf("CUST-%d", i%2),
			AccountName: "Account",
			AccountType: "SAVINGS",
		}); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}
	}

	customer, err := client.ListCustomerAccounts(ctx, &pb.ListCustomerAccountsRequest{CustomerId: "CUST-0"})
	if err != nil {
		t.Fatalf("ListCustomerAccounts failed: %v", err)
	}
	if len(customer.Accounts) != 2 || customer.Total != 2 {
		t.Errorf("expected 2 accounts for CUST-0, got %d", len(customer.Accounts))
	}

	page, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{AccountType: "savings", Size: 2})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if page.Total != 3 || len(page.Accounts) != 2 || page.Size != 2 {
		t.Errorf("unexpected page: total=%d accounts=%d size=%d", page.Total, len(page.Accounts), page.Size)
	}

	dormant, err := client.UpdateStatus(ctx, &pb.UpdateStatusRequest{AccountId: page.Accounts[0].Id, Status: "dormant"})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if dormant.Account.Status != "DORMANT" {
		t.Errorf("expected DORMANT, got %s", dormant.Account.Status)
	}

	name := "Renamed"
	updated, err := client.UpdateAccount(ctx, &pb.UpdateAccountRequest{AccountId: page.Accounts[1].Id, AccountName: &name})
	if err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}
	if updated.Account.AccountName != name {
		t.Errorf("expected name %s, got %s", name, updated.Account.AccountName)
	}
}

func TestRequestValidationOverGRPC(t *testing.T) {
	client, _ := startServer(t, newMemoryLedger(t))
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	tests := []struct {
		name        string
		call        func() error
		expectedErr codes.Code
	}{
		{
			name: "missing account id",
			call: func() error {
				_, err := client.GetAccount(ctx, &pb.GetAccountRequest{})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "malformed account id",
			call: func() error {
				_, err := client.GetAccount(ctx, &pb.GetAccountRequest{AccountId: "not-a-uuid"})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "unknown account",
			call: func() error {
				_, err := client.GetAccount(ctx, &pb.GetAccountRequest{AccountId: uuid.New().String()})
				return err
			},
			expectedErr: codes.NotFound,
		},
		{
			name: "amount with three decimals",
			call: func() error {
				_, err := client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{
					AccountId: uuid.New().String(), Amount: "1.001", TransactionType: "CREDIT",
				})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "bad initial deposit",
			call: func() error {
				_, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
					CustomerId: "C", AccountName: "A", AccountType: "SAVINGS", InitialDeposit: "-5",
				})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "missing actor",
			call: func() error {
				_, err := client.CreateAccount(context.Background(), &pb.CreateAccountRequest{
					CustomerId: "C", AccountName: "A", AccountType: "SAVINGS",
				})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "blank freeze reason",
			call: func() error {
				_, err := client.FreezeAccount(ctx, &pb.FreezeAccountRequest{AccountId: uuid.New().String()})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name: "missing status",
			call: func() error {
				_, err := client.UpdateStatus(ctx, &pb.UpdateStatusRequest{AccountId: uuid.New().String()})
				return err
			},
			expectedErr: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			st, ok := status.FromError(err)
			if !ok {
				t.Fatalf("expected gRPC status error, got %v", err)
			}
			if st.Code() != tt.expectedErr {
				t.Errorf("expected code %v, got %v (%s)", tt.expectedErr, st.Code(), st.Message())
			}
		})
	}
}

func TestValidateTransactionMalformedAmountIsInvalid(t *testing.T) {
	ledger := newMemoryLedger(t)
	client, _ := startServer(t, ledger)
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		CustomerId: "C", AccountName: "A", AccountType: "SAVINGS", InitialDeposit: "10",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	for _, amount := range []string{"abc", "0", "-1"} {
		resp, err := client.ValidateTransaction(ctx, &pb.ValidateTransactionRequest{
			AccountId: created.Account.Id, Amount: amount, TransactionType: "CREDIT",
		})
		if err != nil {
			t.Fatalf("ValidateTransaction(%q) failed: %v", amount, err)
		}
		if resp.Valid {
			t.Errorf("ValidateTransaction(%q) expected invalid", amount)
		}
	}
}

func TestHealthService(t *testing.T) {
	_, conn := startServer(t, newMemoryLedger(t))

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: grpcserver.ServiceName,
	})
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %v", resp.Status)
	}
}

// stubLedger fails every call with a fixed error.
type stubLedger struct {
	grpcserver.Ledger
	err error
}

func (s stubLedger) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return nil, s.err
}

func TestDomainErrorMapping(t *testing.T) {
	tests := []struct {
		err            error
		expectedCode   codes.Code
		expectedReason string
	}{
		{domain.ErrNotFound, codes.NotFound, grpcserver.ReasonNotFound},
		{domain.ErrConflict, codes.AlreadyExists, grpcserver.ReasonAlreadyExists},
		{domain.ErrBusy, codes.Aborted, grpcserver.ReasonConcurrentModification},
		{domain.ErrVersionConflict, codes.Aborted, grpcserver.ReasonConcurrentModification},
		{fmt.Errorf("%w: no funds", domain.ErrInsufficientFunds), codes.FailedPrecondition, grpcserver.ReasonInsufficientFunds},
		{domain.ErrInvalidState, codes.FailedPrecondition, grpcserver.ReasonInvalidState},
		{domain.ErrNonZeroBalance, codes.FailedPrecondition, grpcserver.ReasonNonZeroBalance},
		{domain.ErrInvalidArgument, codes.InvalidArgument, grpcserver.ReasonInvalidArgument},
		{domain.ErrAllocationExhausted, codes.ResourceExhausted, grpcserver.ReasonAllocationExhausted},
		{fmt.Errorf("%w: %w", domain.ErrStorage, errors.New("disk full")), codes.Internal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			client, _ := startServer(t, stubLedger{err: tt.err})

			_, err := client.GetAccount(context.Background(), &pb.GetAccountRequest{AccountId: uuid.New().String()})
			if code := status.Code(err); code != tt.expectedCode {
				t.Errorf("expected %v, got %v", tt.expectedCode, code)
			}
			if reason := grpcserver.ErrorReason(err); reason != tt.expectedReason {
				t.Errorf("expected reason %q, got %q", tt.expectedReason, reason)
			}
			if tt.expectedCode == codes.Internal && status.Convert(err).Message() != "internal error" {
				t.Errorf("store failure leaked to caller: %v", err)
			}
		})
	}
}

func TestFailedPreconditionReasonsOverGRPC(t *testing.T) {
	client, _ := startServer(t, newMemoryLedger(t))
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		CustomerId: "C", AccountName: "A", AccountType: "SAVINGS", InitialDeposit: "10",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	id := created.Account.Id

	_, err = client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{AccountId: id, Amount: "20", TransactionType: "DEBIT"})
	if reason := grpcserver.ErrorReason(err); reason != grpcserver.ReasonInsufficientFunds {
		t.Errorf("overdraw: expected %s, got %q (%v)", grpcserver.ReasonInsufficientFunds, reason, err)
	}

	_, err = client.CloseAccount(ctx, &pb.CloseAccountRequest{AccountId: id})
	if reason := grpcserver.ErrorReason(err); reason != grpcserver.ReasonNonZeroBalance {
		t.Errorf("close with balance: expected %s, got %q (%v)", grpcserver.ReasonNonZeroBalance, reason, err)
	}

	if _, err := client.FreezeAccount(ctx, &pb.FreezeAccountRequest{AccountId: id, Reason: "review"}); err != nil {
		t.Fatalf("FreezeAccount failed: %v", err)
	}
	_, err = client.ApplyTransaction(ctx, &pb.ApplyTransactionRequest{AccountId: id, Amount: "1", TransactionType: "CREDIT"})
	if reason := grpcserver.ErrorReason(err); reason != grpcserver.ReasonInvalidState {
		t.Errorf("credit on frozen account: expected %s, got %q (%v)", grpcserver.ReasonInvalidState, reason, err)
	}
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", status.Code(err))
	}
}

// panickingLedger panics on every read.
type panickingLedger struct {
	grpcserver.Ledger
}

func (panickingLedger) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	panic("boom")
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	client, conn := startServer(t, panickingLedger{})

	for i := 0; i < 2; i++ {
		_, err := client.GetAccount(context.Background(), &pb.GetAccountRequest{AccountId: uuid.New().String()})
		if status.Code(err) != codes.Internal {
			t.Fatalf("call %d: expected Internal, got %v", i, err)
		}
	}

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("server unusable after panic: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %v", resp.Status)
	}
}

func TestListAccountsWithHugePage(t *testing.T) {
	client, _ := startServer(t, newMemoryLedger(t))
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	if _, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		CustomerId: "C", AccountName: "A", AccountType: "SAVINGS",
	}); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	resp, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{Page: math.MaxInt32, Size: 100})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(resp.Accounts) != 0 || resp.Total != 1 {
		t.Errorf("expected empty page with total 1, got %d accounts total %d", len(resp.Accounts), resp.Total)
	}
	if resp.Page != domain.MaxPage {
		t.Errorf("expected page clamped to %d, got %d", domain.MaxPage, resp.Page)
	}
}

func TestGeneratedClientUsesProtoCodec(t *testing.T) {
	_, conn := startServer(t, newMemoryLedger(t))
	client := pb.NewAccountServiceClient(conn)
	ctx := grpcserver.WithActor(context.Background(), "teller-1")

	name := "Payroll"
	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		CustomerId:     "CUST-9",
		AccountName:    "Original",
		AccountType:    "BUSINESS_CHECKING",
		Currency:       "eur",
		InitialDeposit: "12.3",
		Iban:           "DE89370400440532013000",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	account := created.GetAccount()
	if account.GetCurrency() != "EUR" || account.GetBalance() != "12.30" || account.GetIban() != "DE89370400440532013000" {
		t.Errorf("unexpected account: %v", account)
	}
	if account.FrozenAt != nil || account.ClosedAt != nil {
		t.Errorf("expected unset optional timestamps, got %v", account)
	}

	updated, err := client.UpdateAccount(ctx, &pb.UpdateAccountRequest{AccountId: account.GetId(), AccountName: &name})
	if err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}
	if updated.GetAccount().GetAccountName() != name || updated.GetAccount().GetIban() != account.GetIban() {
		t.Errorf("expected only the name to change, got %v", updated.GetAccount())
	}
}
