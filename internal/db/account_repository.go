package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// accountColumns is the select list shared by every account query.
// Numerics are read as text to keep their exact decimal value.
const accountColumns = `
	id, account_number, customer_id, account_name, account_type, currency, status,
	balance::text, available_balance::text, overdraft_limit::text, minimum_balance::text, interest_rate::text,
	COALESCE(branch_code, ''), COALESCE(routing_number, ''), COALESCE(iban, ''), COALESCE(swift_code, ''),
	is_frozen, COALESCE(freeze_reason, ''), frozen_at, COALESCE(frozen_by, ''),
	last_transaction_date, COALESCE(opened_by, ''),
	closed_at, COALESCE(closed_by, ''), COALESCE(closure_reason, ''),
	created_at, updated_at, COALESCE(created_by, ''), COALESCE(updated_by, ''), version`

// AccountRepository implements domain.AccountStore using PostgreSQL.
type AccountRepository struct {
	pool      *pgxpool.Pool
	txManager *TransactionManager
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:      pool,
		txManager: NewTransactionManager(pool),
	}
}

// Get retrieves an account by its unique identifier.
func (r *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.queryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByNumber retrieves an account by its account number.
func (r *AccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`

	account, err := scanAccount(r.queryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return account, nil
}

// ListByCustomer returns the customer's accounts, oldest first.
func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE customer_id = $1
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer accounts: %w", err)
	}
	return collectAccounts(rows)
}

// List returns a page of accounts matching the filter, oldest first.
func (r *AccountRepository) List(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error) {
	page = page.Normalize()
	where := `WHERE ($1 = '' OR account_type = $1) AND ($2 = '' OR status = $2)`

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts `+where,
		string(filter.AccountType), string(filter.Status)).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts ` + where + `
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query,
		string(filter.AccountType), string(filter.Status), page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	items, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}

	return &domain.AccountPage{
		Items: items,
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// Insert persists a new account and assigns its ID.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (
			id, account_number, customer_id, account_name, account_type, currency, status,
			balance, available_balance, overdraft_limit, minimum_balance, interest_rate,
			branch_code, routing_number, iban, swift_code,
			is_frozen, freeze_reason, frozen_at, frozen_by,
			last_transaction_date, opened_by, closed_at, closed_by, closure_reason,
			created_at, updated_at, created_by, updated_by, version
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, ''),
			$17, NULLIF($18, ''), $19, NULLIF($20, ''),
			$21, NULLIF($22, ''), $23, NULLIF($24, ''), NULLIF($25, ''),
			$26, $27, NULLIF($28, ''), NULLIF($29, ''), 0
		)
		RETURNING ` + accountColumns

	a := account.Clone()
	a.ID = uuid.New()

	created, err := scanAccount(r.queryRow(ctx, query,
		a.ID, a.AccountNumber, a.CustomerID, a.AccountName, string(a.AccountType), a.Currency, string(a.Status),
		money(a.Balance), money(a.AvailableBalance), money(a.OverdraftLimit), money(a.MinimumBalance), rate(a.InterestRate),
		a.BranchCode, a.RoutingNumber, a.IBAN, a.SwiftCode,
		a.IsFrozen, a.FreezeReason, a.FrozenAt, a.FrozenBy,
		a.LastTransactionDate, a.OpenedBy, a.ClosedAt, a.ClosedBy, a.ClosureReason,
		a.CreatedAt, a.UpdatedAt, a.CreatedBy, a.UpdatedBy,
	))
	if err != nil {
		return nil, mapWriteError("failed to insert account", err)
	}
	return created, nil
}

// ConditionalUpdate applies mutate if the stored version equals expectedVersion.
// The read and the versioned write share one transaction, so a missing row
// and a moved version are reported distinctly.
func (r *AccountRepository) ConditionalUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate func(*domain.Account) error) (*domain.Account, error) {
	var updated *domain.Account

	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := r.Get(txCtx, id)
		if err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return domain.ErrVersionConflict
		}

		next := current.Clone()
		if err := mutate(next); err != nil {
			return err
		}

		query := `
			UPDATE accounts
			SET account_name = $3,
			    status = $4,
			    balance = $5,
			    available_balance = $6,
			    overdraft_limit = $7,
			    minimum_balance = $8,
			    interest_rate = $9,
			    branch_code = NULLIF($10, ''),
			    routing_number = NULLIF($11, ''),
			    iban = NULLIF($12, ''),
			    swift_code = NULLIF($13, ''),
			    is_frozen = $14,
			    freeze_reason = NULLIF($15, ''),
			    frozen_at = $16,
			    frozen_by = NULLIF($17, ''),
			    last_transaction_date = $18,
			    closed_at = $19,
			    closed_by = NULLIF($20, ''),
			    closure_reason = NULLIF($21, ''),
			    updated_by = NULLIF($22, ''),
			    updated_at = NOW(),
			    version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING ` + accountColumns

		updated, err = scanAccount(r.queryRow(txCtx, query,
			id, expectedVersion,
			next.AccountName, string(next.Status),
			money(next.Balance), money(next.AvailableBalance), money(next.OverdraftLimit), money(next.MinimumBalance), rate(next.InterestRate),
			next.BranchCode, next.RoutingNumber, next.IBAN, next.SwiftCode,
			next.IsFrozen, next.FreezeReason, next.FrozenAt, next.FrozenBy,
			next.LastTransactionDate, next.ClosedAt, next.ClosedBy, next.ClosureReason,
			next.UpdatedBy,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrVersionConflict
		}
		if err != nil {
			return mapWriteError("failed to update account", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// queryRow uses the context transaction if available, otherwise the pool.
func (r *AccountRepository) queryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if tx := getTx(ctx); tx != nil {
		return tx.QueryRow(ctx, query, args...)
	}
	return r.pool.QueryRow(ctx, query, args...)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a                                                 domain.Account
		accountType, status                               string
		balance, available, overdraft, minimum, rateValue string
	)

	err := row.Scan(
		&a.ID, &a.AccountNumber, &a.CustomerID, &a.AccountName, &accountType, &a.Currency, &status,
		&balance, &available, &overdraft, &minimum, &rateValue,
		&a.BranchCode, &a.RoutingNumber, &a.IBAN, &a.SwiftCode,
		&a.IsFrozen, &a.FreezeReason, &a.FrozenAt, &a.FrozenBy,
		&a.LastTransactionDate, &a.OpenedBy,
		&a.ClosedAt, &a.ClosedBy, &a.ClosureReason,
		&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy, &a.Version,
	)
	if err != nil {
		return nil, err
	}

	a.AccountType = domain.AccountType(accountType)
	a.Status = domain.AccountStatus(status)
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&a.Balance, balance},
		{&a.AvailableBalance, available},
		{&a.OverdraftLimit, overdraft},
		{&a.MinimumBalance, minimum},
		{&a.InterestRate, rateValue},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return nil, fmt.Errorf("failed to parse numeric column %q: %w", f.src, err)
		}
	}

	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrConflict
		case pgCheckViolation:
			return fmt.Errorf("%w: constraint %s violated", domain.ErrInvalidState, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyScale)
}

func rate(d decimal.Decimal) string {
	return d.StringFixed(domain.RateScale)
}
