package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest describes a single credit or debit.
type TransactionRequest struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Kind        TransactionKind
	Actor       string
	Description string
	Reference   string
}

// TransactionEngine applies credits and debits under optimistic concurrency.
type TransactionEngine struct {
	core *core
}

// ApplyTransaction credits or debits the account. Eligibility is checked
// against the freshest committed state on every attempt, so two concurrent
// debits can never both pass against the same balance.
func (e *TransactionEngine) ApplyTransaction(ctx context.Context, req TransactionRequest) (*Account, error) {
	actor, err := resolveActor(ctx, req.Actor)
	if err != nil {
		return nil, err
	}
	if err := checkLength("description", req.Description, maxDescriptionLength); err != nil {
		return nil, err
	}
	if err := checkLength("reference", req.Reference, maxReferenceLength); err != nil {
		return nil, err
	}

	updated, err := e.core.mutate(ctx, req.AccountID, func(a *Account) error {
		if err := validateMoney("amount", req.Amount, false); err != nil {
			return err
		}

		switch req.Kind {
		case TransactionKindCredit:
			if !a.CanCredit() {
				return fmt.Errorf("%w: account cannot receive credits (status %s, frozen %t)", ErrInvalidState, a.Status, a.IsFrozen)
			}
			a.Credit(req.Amount)
		case TransactionKindDebit:
			if !a.CanDebitStatus() {
				return fmt.Errorf("%w: account cannot be debited (status %s, frozen %t)", ErrInvalidState, a.Status, a.IsFrozen)
			}
			if !a.HasFundsFor(req.Amount) {
				return fmt.Errorf("%w: requested %s, available %s with overdraft %s", ErrInsufficientFunds,
					req.Amount.StringFixed(MoneyScale), a.AvailableBalance.StringFixed(MoneyScale), a.OverdraftLimit.StringFixed(MoneyScale))
			}
			a.Debit(req.Amount)
		default:
			return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidArgument, req.Kind)
		}

		now := e.core.now()
		a.LastTransactionDate = &now
		a.UpdatedBy = actor
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.core.logger.Info("transaction applied",
		"account_id", req.AccountID, "kind", req.Kind, "amount", req.Amount.StringFixed(MoneyScale),
		"reference", req.Reference, "actor", actor, "version", updated.Version)

	event := NewAccountEvent(EventTransactionApplied, updated, actor, updated.UpdatedAt)
	event.TransactionKind = string(req.Kind)
	event.Amount = req.Amount.StringFixed(MoneyScale)
	event.Reference = req.Reference
	event.Description = req.Description
	e.core.publish(event)

	return updated, nil
}

// ValidateTransaction reports whether the transaction would currently be
// accepted, without changing the account. Only a missing account or a
// store failure is returned as an error.
func (e *TransactionEngine) ValidateTransaction(ctx context.Context, id uuid.UUID, amount decimal.Decimal, kind TransactionKind) (bool, error) {
	account, err := e.core.get(ctx, id)
	if err != nil {
		return false, err
	}
	if validateMoney("amount", amount, false) != nil {
		return false, nil
	}

	switch kind {
	case TransactionKindCredit:
		return account.CanCredit(), nil
	case TransactionKindDebit:
		return account.CanDebit(amount), nil
	default:
		return false, nil
	}
}
