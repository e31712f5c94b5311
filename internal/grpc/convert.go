package grpc

import (
	"github.com/abrar2030/FinovaBank/internal/domain"
	pb "github.com/abrar2030/FinovaBank/proto/account/v1"
)

// toProtoAccount converts a domain account to its proto message through
// the shared account view, so both transports render the same values.
func toProtoAccount(account *domain.Account) *pb.Account {
	v := domain.NewAccountView(account)
	return &pb.Account{
		Id:                  v.ID,
		AccountNumber:       v.AccountNumber,
		CustomerId:          v.CustomerID,
		AccountName:         v.AccountName,
		AccountType:         v.AccountType,
		Currency:            v.Currency,
		Status:              v.Status,
		Balance:             v.Balance,
		AvailableBalance:    v.AvailableBalance,
		OverdraftLimit:      v.OverdraftLimit,
		MinimumBalance:      v.MinimumBalance,
		InterestRate:        v.InterestRate,
		BranchCode:          v.BranchCode,
		RoutingNumber:       v.RoutingNumber,
		Iban:                v.IBAN,
		SwiftCode:           v.SwiftCode,
		IsFrozen:            v.IsFrozen,
		FreezeReason:        v.FreezeReason,
		FrozenAt:            v.FrozenAt,
		FrozenBy:            v.FrozenBy,
		LastTransactionDate: v.LastTransactionDate,
		OpenedBy:            v.OpenedBy,
		ClosedAt:            v.ClosedAt,
		ClosedBy:            v.ClosedBy,
		ClosureReason:       v.ClosureReason,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
		CreatedBy:           v.CreatedBy,
		UpdatedBy:           v.UpdatedBy,
		Version:             v.Version,
	}
}

func toProtoAccounts(accounts []*domain.Account) []*pb.Account {
	out := make([]*pb.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toProtoAccount(a))
	}
	return out
}
