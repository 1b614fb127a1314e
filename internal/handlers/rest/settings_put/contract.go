//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_put_test
package settings_put

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
	Update(ctx context.Context, modify entities.DispatchSettingsModify) (*entities.SettingsUpdate, error)
}
