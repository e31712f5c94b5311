package domain

import "time"

// AccountView is the read projection of an account returned to callers.
// Every field of Account is carried over; decimals use their fixed scale
// and timestamps are RFC 3339 in UTC with full sub-second precision.
type AccountView struct {
	ID                  string  `json:"id"`
	AccountNumber       string  `json:"accountNumber"`
	CustomerID          string  `json:"customerId"`
	AccountName         string  `json:"accountName"`
	AccountType         string  `json:"accountType"`
	Currency            string  `json:"currency"`
	Status              string  `json:"status"`
	Balance             string  `json:"balance"`
	AvailableBalance    string  `json:"availableBalance"`
	OverdraftLimit      string  `json:"overdraftLimit"`
	MinimumBalance      string  `json:"minimumBalance"`
	InterestRate        string  `json:"interestRate"`
	BranchCode          string  `json:"branchCode,omitempty"`
	RoutingNumber       string  `json:"routingNumber,omitempty"`
	IBAN                string  `json:"iban,omitempty"`
	SwiftCode           string  `json:"swiftCode,omitempty"`
	IsFrozen            bool    `json:"isFrozen"`
	FreezeReason        string  `json:"freezeReason,omitempty"`
	FrozenAt            *string `json:"frozenAt,omitempty"`
	FrozenBy            string  `json:"frozenBy,omitempty"`
	LastTransactionDate *string `json:"lastTransactionDate,omitempty"`
	OpenedBy            string  `json:"openedBy,omitempty"`
	ClosedAt            *string `json:"closedAt,omitempty"`
	ClosedBy            string  `json:"closedBy,omitempty"`
	ClosureReason       string  `json:"closureReason,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
	CreatedBy           string  `json:"createdBy,omitempty"`
	UpdatedBy           string  `json:"updatedBy,omitempty"`
	Version             int64   `json:"version"`
}

// NewAccountView projects an account into its view.
func NewAccountView(a *Account) *AccountView {
	return &AccountView{
		ID:                  a.ID.String(),
		AccountNumber:       a.AccountNumber,
		CustomerID:          a.CustomerID,
		AccountName:         a.AccountName,
		AccountType:         string(a.AccountType),
		Currency:            a.Currency,
		Status:              string(a.Status),
		Balance:             a.Balance.StringFixed(MoneyScale),
		AvailableBalance:    a.AvailableBalance.StringFixed(MoneyScale),
		OverdraftLimit:      a.OverdraftLimit.StringFixed(MoneyScale),
		MinimumBalance:      a.MinimumBalance.StringFixed(MoneyScale),
		InterestRate:        a.InterestRate.StringFixed(RateScale),
		BranchCode:          a.BranchCode,
		RoutingNumber:       a.RoutingNumber,
		IBAN:                a.IBAN,
		SwiftCode:           a.SwiftCode,
		IsFrozen:            a.IsFrozen,
		FreezeReason:        a.FreezeReason,
		FrozenAt:            formatOptional(a.FrozenAt),
		FrozenBy:            a.FrozenBy,
		LastTransactionDate: formatOptional(a.LastTransactionDate),
		OpenedBy:            a.OpenedBy,
		ClosedAt:            formatOptional(a.ClosedAt),
		ClosedBy:            a.ClosedBy,
		ClosureReason:       a.ClosureReason,
		CreatedAt:           FormatTimestamp(a.CreatedAt),
		UpdatedAt:           FormatTimestamp(a.UpdatedAt),
		CreatedBy:           a.CreatedBy,
		UpdatedBy:           a.UpdatedBy,
		Version:             a.Version,
	}
}

// NewAccountViews projects a slice of accounts.
func NewAccountViews(accounts []*Account) []*AccountView {
	views := make([]*AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, NewAccountView(a))
	}
	return views
}

// FormatTimestamp formats a time.Time to RFC 3339 in UTC, keeping nanoseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
