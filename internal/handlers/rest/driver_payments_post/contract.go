//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_payments_post_test
package driver_payments_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type requestValidator interface {
	Struct(s any) error
}

type Service interface {
	RecordPayment(ctx context.Context, driverID int64, amount float64, note string) (*entities.PaymentReceipt, error)
}
