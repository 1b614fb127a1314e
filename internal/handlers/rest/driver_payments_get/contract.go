//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_payments_get_test
package driver_payments_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error)
}
