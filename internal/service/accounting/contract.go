//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounting_test
package accounting

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Ledger interface {
	ComputeBalance(ctx context.Context, driverID int64, settings entities.DispatchSettings) (*entities.BalanceSnapshot, error)
	AppendPayment(ctx context.Context, driverID int64, amount float64, note string) (*entities.Payment, error)
	ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error)
}

type Evaluator interface {
	Evaluate(ctx context.Context, driverID int64, settings entities.DispatchSettings) (*entities.SuspensionEvaluation, error)
	EvaluateAll(ctx context.Context, settings entities.DispatchSettings) (entities.SweepResult, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*entities.DispatchSettings, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
