//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_orders_available_get_test
package driver_orders_available_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	ListAvailableOrders(ctx context.Context, driverID int64) ([]entities.AvailableOrder, error)
}
