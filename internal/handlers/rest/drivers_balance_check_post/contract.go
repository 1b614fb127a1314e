//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_balance_check_post_test
package drivers_balance_check_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	CheckFleet(ctx context.Context) (entities.SweepResult, error)
}
