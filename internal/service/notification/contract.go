//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Gateway транспорт push-уведомлений. Невалидный токен возвращается как ErrInvalidToken.
type Gateway interface {
	Send(ctx context.Context, token string, message entities.PushMessage) error
}

type TokenStore interface {
	GetToken(ctx context.Context, target entities.PushTarget) (*string, error)
	ClearToken(ctx context.Context, target entities.PushTarget, token string) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
