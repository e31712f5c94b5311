package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options configures a Ledger. Zero values fall back to defaults.
type Options struct {
	Retry     RetryPolicy
	Numbers   *NumberGenerator
	Publisher EventPublisher
	Logger    *slog.Logger
	Now       func() time.Time
}

// Ledger is the account ledger core. It groups the account service, the
// state engine and the transaction engine over a single store.
type Ledger struct {
	*AccountService
	*StateEngine
	*TransactionEngine

	core *core
}

// NewLedger creates a new Ledger backed by store.
// Pass a nil Publisher if no events should be emitted.
func NewLedger(store AccountStore, opts Options) (*Ledger, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: account store is required", ErrInvalidArgument)
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryPolicy()
	}
	if opts.Numbers == nil {
		numbers, err := NewNumberGenerator(DefaultBankCode, DefaultNumberAttempts)
		if err != nil {
			return nil, err
		}
		opts.Numbers = numbers
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &core{
		store:     store,
		numbers:   opts.Numbers,
		publisher: opts.Publisher,
		retry:     opts.Retry,
		logger:    opts.Logger,
		now:       func() time.Time { return opts.Now().UTC() },
	}
	return &Ledger{
		AccountService:    &AccountService{core: c},
		StateEngine:       &StateEngine{core: c},
		TransactionEngine: &TransactionEngine{core: c},
		core:              c,
	}, nil
}

// WaitForEvents blocks until every event publish started so far has
// finished, or until ctx is done. Call it before closing the publisher.
func (l *Ledger) WaitForEvents(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.core.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// core holds the collaborators shared by the ledger components.
type core struct {
	store     AccountStore
	numbers   *NumberGenerator
	publisher EventPublisher
	retry     RetryPolicy
	logger    *slog.Logger
	now       func() time.Time

	inflight sync.WaitGroup
}

// MaxActorLength matches the width of the audit columns.
const MaxActorLength = 100

// resolveActor picks the explicit actor, falling back to the context one.
func resolveActor(ctx context.Context, explicit string) (string, error) {
	actor := explicit
	if actor == "" {
		actor, _ = ActorFromContext(ctx)
	}
	if actor == "" {
		return "", fmt.Errorf("%w: actor is required", ErrInvalidArgument)
	}
	if err := checkLength("actor", actor, MaxActorLength); err != nil {
		return "", err
	}
	return actor, nil
}

// storeError keeps domain and context errors intact and tags the rest as
// store failures.
func storeError(err error) error {
	if err == nil || isDomainError(err) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// get reads an account, mapping store errors.
func (c *core) get(ctx context.Context, id uuid.UUID) (*Account, error) {
	account, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return account, nil
}

// mutate reads the account and applies fn through a conditional update,
// retrying on version conflicts.
func (c *core) mutate(ctx context.Context, id uuid.UUID, fn func(*Account) error) (*Account, error) {
	var updated *Account
	err := withRetry(ctx, c.retry, func(ctx context.Context) error {
		current, err := c.get(ctx, id)
		if err != nil {
			return err
		}

		updated, err = c.store.ConditionalUpdate(ctx, id, current.Version, fn)
		if errors.Is(err, ErrVersionConflict) {
			c.logger.Debug("version conflict, retrying",
				"account_id", id, "expected_version", current.Version)
		}
		return storeError(err)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// publish emits an event after commit. Publishing is best-effort and runs
// in the background so broker failures never fail a committed mutation.
func (c *core) publish(event *AccountEvent) {
	if c.publisher == nil {
		return
	}
	c.inflight.Add(1)
	go func(e *AccountEvent) {
		defer c.inflight.Done()
		if err := c.publisher.Publish(context.Background(), e); err != nil {
			c.logger.Warn("failed to publish account event",
				"event_type", e.EventType, "account_id", e.AccountID, "error", err)
		}
	}(event)
}
