//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/servicearea"
	"dispatch/pkg/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	ListPending(ctx context.Context, vehicleType entities.VehicleType) ([]entities.Order, error)
	// Claim pending -> accepted одним условным UPDATE. ErrOrderNotPending, если строка не обновилась.
	Claim(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	// TransitionStatus меняет статус только из from. ErrStatusConflict, если строка не обновилась.
	TransitionStatus(ctx context.Context, orderID int64, from, to entities.OrderStatusType) (*entities.Order, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	ListDispatchCandidates(ctx context.Context, vehicleType entities.VehicleType) ([]entities.Driver, error)
}

type AreaResolver interface {
	Load(ctx context.Context) (servicearea.Areas, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*entities.DispatchSettings, error)
}

type Notifier interface {
	NotifyNewOrder(ctx context.Context, driver entities.Driver, order entities.Order, distanceKm float64) error
	NotifyNoDrivers(ctx context.Context, order entities.Order) error
}

type BalanceEvaluator interface {
	Evaluate(ctx context.Context, driverID int64, settings entities.DispatchSettings) (*entities.SuspensionEvaluation, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type VehicleCatalog interface {
	Lookup(vehicleType entities.VehicleType) (entities.VehicleTypeInfo, bool)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
