package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountStore defines the persistence contract for accounts.
// Implementations must make ConditionalUpdate atomic per account.
type AccountStore interface {
	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByNumber retrieves an account by its account number.
	GetByNumber(ctx context.Context, accountNumber string) (*Account, error)

	// ListByCustomer returns every account owned by a customer, oldest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*Account, error)

	// List returns a page of accounts matching the filter, oldest first.
	List(ctx context.Context, filter AccountFilter, page PageRequest) (*AccountPage, error)

	// Insert persists a new account and assigns its ID.
	// Returns ErrConflict if the account number is already taken.
	Insert(ctx context.Context, account *Account) (*Account, error)

	// ConditionalUpdate applies mutate to the stored account only if its
	// version equals expectedVersion. On success the version is incremented
	// by one, UpdatedAt is stamped and the new state is returned.
	// Returns ErrVersionConflict or ErrNotFound otherwise. An error returned
	// by mutate aborts the update and is passed through.
	ConditionalUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate func(*Account) error) (*Account, error)
}

// EventPublisher publishes account events to external systems (e.g. RabbitMQ).
type EventPublisher interface {
	Publish(ctx context.Context, event *AccountEvent) error
}

// actorKey is the key type for storing the acting principal in context.
type actorKey struct{}

// WithActor returns a context carrying the identity performing mutations.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor, if any.
func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok && actor != ""
}
