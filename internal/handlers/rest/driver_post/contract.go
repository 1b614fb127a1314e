//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_post_test
package driver_post

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
	RegisterDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error)
}
