package domain

import (
	"fmt"
	"time"
)

// transitions lists the statuses reachable from each status.
var transitions = map[AccountStatus][]AccountStatus{
	AccountStatusPendingApproval: {AccountStatusActive, AccountStatusClosed},
	AccountStatusActive: {
		AccountStatusFrozen, AccountStatusInactive, AccountStatusSuspended,
		AccountStatusDormant, AccountStatusPendingClosure, AccountStatusClosed,
	},
	AccountStatusFrozen:         {AccountStatusActive},
	AccountStatusDormant:        {AccountStatusActive, AccountStatusClosed},
	AccountStatusSuspended:      {AccountStatusActive, AccountStatusClosed},
	AccountStatusInactive:       {AccountStatusActive, AccountStatusClosed},
	AccountStatusPendingClosure: {AccountStatusClosed},
	AccountStatusClosed:         nil,
}

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Re-freezing a frozen account is the only accepted self-transition.
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	if s == AccountStatusFrozen && next == AccountStatusFrozen {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Freeze marks the account frozen. Freezing an already frozen account
// overwrites the freeze metadata.
func (a *Account) Freeze(reason, actor string, at time.Time) error {
	if a.Status == AccountStatusClosed {
		return fmt.Errorf("%w: cannot freeze a closed account", ErrInvalidState)
	}
	a.IsFrozen = true
	a.FreezeReason = reason
	a.FrozenAt = &at
	a.FrozenBy = actor
	a.Status = AccountStatusFrozen
	a.UpdatedBy = actor
	return nil
}

// Unfreeze clears the freeze metadata and reactivates the account.
func (a *Account) Unfreeze(actor string) error {
	if a.Status != AccountStatusFrozen && a.Status != AccountStatusActive &&
		!a.Status.CanTransitionTo(AccountStatusActive) {
		return fmt.Errorf("%w: cannot unfreeze an account in status %s", ErrInvalidState, a.Status)
	}
	a.IsFrozen = false
	a.FreezeReason = ""
	a.FrozenAt = nil
	a.FrozenBy = ""
	a.Status = AccountStatusActive
	a.UpdatedBy = actor
	return nil
}

// Close moves the account to CLOSED. The balance must be exactly zero.
func (a *Account) Close(reason, actor string, at time.Time) error {
	if !a.Status.CanTransitionTo(AccountStatusClosed) {
		return fmt.Errorf("%w: cannot close an account in status %s", ErrInvalidState, a.Status)
	}
	if !a.Balance.IsZero() {
		return fmt.Errorf("%w: current balance is %s", ErrNonZeroBalance, a.Balance.StringFixed(MoneyScale))
	}
	a.Status = AccountStatusClosed
	a.ClosedAt = &at
	a.ClosedBy = actor
	a.ClosureReason = reason
	a.UpdatedBy = actor
	return nil
}

// TransitionTo applies a status change through the lifecycle table.
// Entering FROZEN behaves like Freeze, leaving FROZEN like Unfreeze and
// entering CLOSED like Close.
func (a *Account) TransitionTo(next AccountStatus, reason, actor string, at time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, next)
	}
	if !a.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: transition from %s to %s is not allowed", ErrInvalidState, a.Status, next)
	}

	switch {
	case next == AccountStatusFrozen:
		if reason == "" {
			return fmt.Errorf("%w: freeze reason is required", ErrInvalidArgument)
		}
		return a.Freeze(reason, actor, at)
	case next == AccountStatusClosed:
		return a.Close(reason, actor, at)
	case a.Status == AccountStatusFrozen:
		return a.Unfreeze(actor)
	}

	a.Status = next
	a.UpdatedBy = actor
	return nil
}
