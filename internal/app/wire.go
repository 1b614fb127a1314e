//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/handlers/tasks/suspension_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/service/accounting"
	customerService "dispatch/internal/service/customer"
	"dispatch/internal/service/dispatch"
	driverService "dispatch/internal/service/driver"
	"dispatch/internal/service/servicearea"
	settingsService "dispatch/internal/service/settings"
	"dispatch/internal/service/suspension"
	"dispatch/pkg/logger"

	"firebase.google.com/go/v4/messaging"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	messagingClient *messaging.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		coreSet,
		provideSweepInterval,
		provideCustomerRepository,
		provideServiceDriver,
		provideServiceCustomer,
		provideValidator,

		provideSuspensionSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceDispatch), new(*dispatch.Coordinator)),
		wire.Bind(new(ServiceAccounting), new(*accounting.Service)),
		wire.Bind(new(ServiceSuspension), new(*suspension.Machine)),
		wire.Bind(new(ServiceSettings), new(*settingsService.Service)),
		wire.Bind(new(ServiceArea), new(*servicearea.Resolver)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),

		wire.Bind(new(suspension_sweep.Service), new(*accounting.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	messagingClient *messaging.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		coreSet,
		provideEventHandlerFactory,
		provideOrderService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
