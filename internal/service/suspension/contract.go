//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suspension_test
package suspension

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetActivity(ctx context.Context, driverID int64) (bool, error)
	// CompareAndSetActive меняет is_active только если текущее значение равно expected.
	CompareAndSetActive(ctx context.Context, driverID int64, expected, next bool) (bool, error)
	SetActive(ctx context.Context, driverID int64, active bool) (*entities.Driver, error)
	ListDriverIDs(ctx context.Context) ([]int64, error)
}

type BalanceCalculator interface {
	ComputeBalance(ctx context.Context, driverID int64, settings entities.DispatchSettings) (*entities.BalanceSnapshot, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
