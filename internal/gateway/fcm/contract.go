//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fcm_test
package fcm

import (
	"context"

	"firebase.google.com/go/v4/messaging"
)

type client interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
