package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

// Ledger is the set of ledger operations exposed over HTTP.
type Ledger interface {
	CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListCustomerAccounts(ctx context.Context, customerID string) ([]*domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req domain.UpdateAccountRequest) (*domain.Account, error)
	GetBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	GetAvailableBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	ApplyTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.Account, error)
	ValidateTransaction(ctx context.Context, id uuid.UUID, amount decimal.Decimal, kind domain.TransactionKind) (bool, error)
	FreezeAccount(ctx context.Context, id uuid.UUID, reason string) (*domain.Account, error)
	UnfreezeAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus, reason string) (*domain.Account, error)
	CloseAccount(ctx context.Context, id uuid.UUID, reason string) (*domain.Account, error)
}

// Handler serves the account REST API
type Handler struct {
	ledger Ledger
	logger *slog.Logger
}

// NewHandler creates a new Handler over the given ledger
func NewHandler(ledger Ledger, logger *slog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// CreateAccount handles POST /api/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	createReq := domain.CreateAccountRequest{
		CustomerID:    req.CustomerID,
		AccountName:   req.AccountName,
		AccountType:   domain.AccountType(strings.ToUpper(req.AccountType)),
		Currency:      strings.ToUpper(req.Currency),
		BranchCode:    req.BranchCode,
		RoutingNumber: req.RoutingNumber,
		IBAN:          req.IBAN,
		SwiftCode:     req.SwiftCode,
	}
	var err error
	if createReq.InitialDeposit, err = optionalAmount(req.InitialDeposit); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "initialDeposit: "+err.Error())
		return
	}
	if createReq.OverdraftLimit, err = optionalAmount(req.OverdraftLimit); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "overdraftLimit: "+err.Error())
		return
	}
	if createReq.MinimumBalance, err = optionalAmount(req.MinimumBalance); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "minimumBalance: "+err.Error())
		return
	}
	if createReq.InterestRate, err = domain.ParseInterestRate(req.InterestRate); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "interestRate: "+err.Error())
		return
	}

	account, err := h.ledger.CreateAccount(r.Context(), createReq)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, domain.NewAccountView(account))
}

// GetAccount handles GET /api/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.ledger.GetAccount(r.Context(), id)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// GetAccountByNumber handles GET /api/accounts/number/{accountNumber}
func (h *Handler) GetAccountByNumber(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.GetAccountByNumber(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// ListCustomerAccounts handles GET /api/accounts/customer/{customerId}
func (h *Handler) ListCustomerAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.ledger.ListCustomerAccounts(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountViews(accounts))
}

// ListAccounts handles GET /api/accounts?accountType=&status=&page=&size=
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "page must be an integer")
		return
	}
	size, err := queryInt(q.Get("size"))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "size must be an integer")
		return
	}

	filter := domain.AccountFilter{
		AccountType: domain.AccountType(strings.ToUpper(q.Get("accountType"))),
		Status:      domain.AccountStatus(strings.ToUpper(q.Get("status"))),
	}
	result, err := h.ledger.ListAccounts(r.Context(), filter, domain.PageRequest{Page: page, Size: size})
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, AccountPageResponse{
		Content:       domain.NewAccountViews(result.Items),
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.Total,
	})
}

// UpdateAccount handles PUT /api/accounts/{id}
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	var req UpdateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updateReq := domain.UpdateAccountRequest{
		AccountName:   req.AccountName,
		BranchCode:    req.BranchCode,
		RoutingNumber: req.RoutingNumber,
		IBAN:          req.IBAN,
		SwiftCode:     req.SwiftCode,
	}
	if req.OverdraftLimit != nil {
		v, err := domain.ParseNonNegativeAmount(*req.OverdraftLimit)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "overdraftLimit: "+err.Error())
			return
		}
		updateReq.OverdraftLimit = &v
	}
	if req.MinimumBalance != nil {
		v, err := domain.ParseNonNegativeAmount(*req.MinimumBalance)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "minimumBalance: "+err.Error())
			return
		}
		updateReq.MinimumBalance = &v
	}
	if req.InterestRate != nil {
		v, err := domain.ParseInterestRate(*req.InterestRate)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "interestRate: "+err.Error())
			return
		}
		updateReq.InterestRate = &v
	}

	account, err := h.ledger.UpdateAccount(r.Context(), id, updateReq)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// ApplyTransaction handles POST /api/accounts/{id}/transactions
func (h *Handler) ApplyTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	var req TransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	account, err := h.ledger.ApplyTransaction(r.Context(), domain.TransactionRequest{
		AccountID:   id,
		Amount:      amount,
		Kind:        domain.TransactionKind(strings.ToUpper(req.TransactionType)),
		Description: req.Description,
		Reference:   req.Reference,
	})
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// ValidateTransaction handles POST /api/accounts/{id}/validate-transaction?amount=&transactionType=
func (h *Handler) ValidateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	amount, err := domain.ParseAmount(q.Get("amount"))
	if err != nil {
		amount = decimal.Zero
	}

	valid, err := h.ledger.ValidateTransaction(r.Context(), id, amount,
		domain.TransactionKind(strings.ToUpper(q.Get("transactionType"))))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, ValidationResponse{Valid: valid})
}

// GetBalance handles GET /api/accounts/{id}/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	h.sendBalance(w, r, h.ledger.GetBalance)
}

// GetAvailableBalance handles GET /api/accounts/{id}/available-balance
func (h *Handler) GetAvailableBalance(w http.ResponseWriter, r *http.Request) {
	h.sendBalance(w, r, h.ledger.GetAvailableBalance)
}

func (h *Handler) sendBalance(w http.ResponseWriter, r *http.Request, get func(context.Context, uuid.UUID) (decimal.Decimal, error)) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	balance, err := get(r.Context(), id)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, BalanceResponse{
		AccountID: id.String(),
		Balance:   balance.StringFixed(domain.MoneyScale),
	})
}

// FreezeAccount handles PATCH /api/accounts/{id}/freeze. The reason comes
// from the reason query parameter or the JSON body.
func (h *Handler) FreezeAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	reason := r.URL.Query().Get("reason")
	if reason == "" && r.ContentLength != 0 {
		var req FreezeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		reason = req.Reason
	}

	account, err := h.ledger.FreezeAccount(r.Context(), id, reason)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// UnfreezeAccount handles PATCH /api/accounts/{id}/unfreeze
func (h *Handler) UnfreezeAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.ledger.UnfreezeAccount(r.Context(), id)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// UpdateStatus handles PATCH /api/accounts/{id}/status?status=&reason=
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("status") == "" {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", "status is required")
		return
	}

	account, err := h.ledger.UpdateStatus(r.Context(), id,
		domain.AccountStatus(strings.ToUpper(q.Get("status"))), q.Get("reason"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// CloseAccount handles DELETE /api/accounts/{id}?reason=
func (h *Handler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.ledger.CloseAccount(r.Context(), id, r.URL.Query().Get("reason"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, domain.NewAccountView(account))
}

// handleDomainError converts domain errors to HTTP responses
func (h *Handler) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		sendErrorResponse(w, http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", err.Error())
	case errors.Is(err, domain.ErrNonZeroBalance):
		sendErrorResponse(w, http.StatusConflict, "NON_ZERO_BALANCE", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		sendErrorResponse(w, http.StatusConflict, "INVALID_STATE", err.Error())
	case errors.Is(err, domain.ErrConflict):
		sendErrorResponse(w, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, domain.ErrBusy), errors.Is(err, domain.ErrVersionConflict):
		sendErrorResponse(w, http.StatusConflict, "CONCURRENT_MODIFICATION", err.Error())
	case errors.Is(err, domain.ErrAllocationExhausted):
		sendErrorResponse(w, http.StatusServiceUnavailable, "ALLOCATION_EXHAUSTED", err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		sendErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// sendErrorResponse sends an error response in the expected format
func sendErrorResponse(w http.ResponseWriter, statusCode int, code, description string) {
	sendJSON(w, statusCode, ErrorResponse{
		Code:        code,
		Description: description,
		ID:          uuid.New(),
	})
}

func sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse request body: "+err.Error())
		return false
	}
	return true
}

func accountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "INVALID_ARGUMENT", fmt.Sprintf("invalid account id: %v", err))
		return uuid.Nil, false
	}
	return id, true
}

func optionalAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return domain.ParseNonNegativeAmount(value)
}

func queryInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
