//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=servicearea_test
package servicearea

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetActive(ctx context.Context) ([]entities.ServiceArea, error)
	Upsert(ctx context.Context, area entities.ServiceArea) (*entities.ServiceArea, error)
}

// Cache found=false означает промах, ошибка только при сбое самого кеша.
type Cache interface {
	GetServiceAreas(ctx context.Context) ([]entities.ServiceArea, bool, error)
	SetServiceAreas(ctx context.Context, areas []entities.ServiceArea) error
	InvalidateServiceAreas(ctx context.Context) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
