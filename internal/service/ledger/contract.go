//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetTotals(ctx context.Context, driverID int64) (entities.BalanceTotals, error)
	CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error)
}
