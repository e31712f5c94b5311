package domain

import "errors"

var (
	// ErrNotFound is returned when an account doesn't exist
	ErrNotFound = errors.New("account not found")

	// ErrConflict is returned when an account number is already taken
	ErrConflict = errors.New("account number already exists")

	// ErrVersionConflict is returned by a conditional update when the stored
	// version no longer matches the expected one
	ErrVersionConflict = errors.New("account version conflict")

	// ErrBusy is returned when version conflicts persist past the retry limit
	ErrBusy = errors.New("account is busy, retry later")

	// ErrInvalidState is returned when the account status or freeze flag
	// forbids the operation
	ErrInvalidState = errors.New("invalid account state")

	// ErrInsufficientFunds is returned when a debit exceeds available balance plus overdraft
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidArgument is returned for malformed or out of range input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonZeroBalance is returned when closing an account that still holds funds
	ErrNonZeroBalance = errors.New("account balance must be zero to close")

	// ErrAllocationExhausted is returned when no free account number was found
	ErrAllocationExhausted = errors.New("account number allocation exhausted")

	// ErrStorage wraps failures of the underlying account store
	ErrStorage = errors.New("account store failure")
)

// isDomainError reports whether err already carries one of the sentinels above.
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrConflict, ErrVersionConflict, ErrBusy, ErrInvalidState,
		ErrInsufficientFunds, ErrInvalidArgument, ErrNonZeroBalance,
		ErrAllocationExhausted, ErrStorage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
