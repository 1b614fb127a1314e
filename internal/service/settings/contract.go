//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_test
package settings

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetOrCreate(ctx context.Context, defaults entities.DispatchSettings) (*entities.DispatchSettings, error)
	Save(ctx context.Context, settings entities.DispatchSettings) (*entities.DispatchSettings, error)
}

type Cache interface {
	GetSettings(ctx context.Context) (*entities.DispatchSettings, bool, error)
	SetSettings(ctx context.Context, settings entities.DispatchSettings) error
	InvalidateSettings(ctx context.Context) error
}

type Sweeper interface {
	EvaluateAll(ctx context.Context, settings entities.DispatchSettings) (entities.SweepResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
