//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type Dispatcher interface {
	DispatchNewOrder(ctx context.Context, orderID int64) (*entities.DispatchResult, error)
}

type StatusNotifier interface {
	NotifyOrderStatus(ctx context.Context, order entities.Order) error
}

type DriverEvaluator interface {
	Evaluate(ctx context.Context, driverID int64, settings entities.DispatchSettings) (*entities.SuspensionEvaluation, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*entities.DispatchSettings, error)
}

type (
	ExecuteFn      func(ctx context.Context, order entities.Order) error
	HandlerFactory interface {
		GetHandler(eventType entities.OrderEventType) (ExecuteFn, error)
	}
)
