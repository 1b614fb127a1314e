//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suspension_sweep_test
package suspension_sweep

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type Service interface {
	CheckFleet(ctx context.Context) (entities.SweepResult, error)
}
