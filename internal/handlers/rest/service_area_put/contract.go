//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_area_put_test
package service_area_put

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
	UpsertServiceArea(ctx context.Context, area entities.ServiceArea) (*entities.ServiceArea, error)
}
