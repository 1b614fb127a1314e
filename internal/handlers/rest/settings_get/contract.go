//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_get_test
package settings_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Get(ctx context.Context) (*entities.DispatchSettings, error)
}
