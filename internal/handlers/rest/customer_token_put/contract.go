//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_token_put_test
package customer_token_put

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type requestValidator interface {
	Struct(s any) error
}

type Service interface {
	SetNotificationToken(ctx context.Context, customerID int64, token string) error
}
