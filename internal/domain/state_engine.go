package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// StateEngine applies freeze, unfreeze, status and closure changes.
type StateEngine struct {
	core *core
}

// FreezeAccount blocks all balance movement on the account and records who
// froze it and why. Freezing a frozen account overwrites the metadata.
func (e *StateEngine) FreezeAccount(ctx context.Context, id uuid.UUID, reason string) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}
	if err := checkRequired("freeze reason", reason, maxReasonLength); err != nil {
		return nil, err
	}

	var previous AccountStatus
	updated, err := e.core.mutate(ctx, id, func(a *Account) error {
		previous = a.Status
		return a.Freeze(reason, actor, e.core.now())
	})
	if err != nil {
		return nil, err
	}

	e.core.logger.Info("account frozen", "account_id", id, "actor", actor, "reason", reason)
	e.emit(EventAccountFrozen, updated, actor, previous, reason)
	return updated, nil
}

// UnfreezeAccount clears the freeze and reactivates the account. Applying
// it to an account that is not frozen still sets the status to ACTIVE.
func (e *StateEngine) UnfreezeAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}

	var previous AccountStatus
	updated, err := e.core.mutate(ctx, id, func(a *Account) error {
		previous = a.Status
		return a.Unfreeze(actor)
	})
	if err != nil {
		return nil, err
	}

	e.core.logger.Info("account unfrozen", "account_id", id, "actor", actor)
	e.emit(EventAccountUnfrozen, updated, actor, previous, "")
	return updated, nil
}

// UpdateStatus moves the account to a new status following the lifecycle
// table. Closing through UpdateStatus enforces the same zero balance rule
// as CloseAccount.
func (e *StateEngine) UpdateStatus(ctx context.Context, id uuid.UUID, status AccountStatus, reason string) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}
	status = AccountStatus(strings.ToUpper(string(status)))
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}
	if err := checkLength("reason", reason, maxReasonLength); err != nil {
		return nil, err
	}

	var previous AccountStatus
	updated, err := e.core.mutate(ctx, id, func(a *Account) error {
		previous = a.Status
		return a.TransitionTo(status, reason, actor, e.core.now())
	})
	if err != nil {
		return nil, err
	}

	e.core.logger.Info("account status changed",
		"account_id", id, "actor", actor, "from", previous, "to", updated.Status)

	eventType := EventAccountStatusChanged
	if updated.Status == AccountStatusClosed {
		eventType = EventAccountClosed
	}
	e.emit(eventType, updated, actor, previous, reason)
	return updated, nil
}

// CloseAccount permanently closes an account whose balance is zero.
func (e *StateEngine) CloseAccount(ctx context.Context, id uuid.UUID, reason string) (*Account, error) {
	actor, err := resolveActor(ctx, "")
	if err != nil {
		return nil, err
	}
	if err := checkLength("closure reason", reason, maxReasonLength); err != nil {
		return nil, err
	}

	var previous AccountStatus
	updated, err := e.core.mutate(ctx, id, func(a *Account) error {
		previous = a.Status
		return a.Close(reason, actor, e.core.now())
	})
	if err != nil {
		return nil, err
	}

	e.core.logger.Info("account closed", "account_id", id, "actor", actor, "reason", reason)
	e.emit(EventAccountClosed, updated, actor, previous, reason)
	return updated, nil
}

func (e *StateEngine) emit(eventType string, account *Account, actor string, previous AccountStatus, reason string) {
	event := NewAccountEvent(eventType, account, actor, account.UpdatedAt)
	event.PreviousStatus = string(previous)
	event.Reason = reason
	e.core.publish(event)
}
