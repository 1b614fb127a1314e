package app

import (
	"context"
	"time"

	"dispatch/internal/cache"
	"dispatch/internal/gateway/fcm"
	"dispatch/internal/gateway/kafka/order_events"
	"dispatch/internal/handlers/tasks/suspension_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/factory/vehicle_catalog"
	"dispatch/internal/pkg/validator"

	customerRepo "dispatch/internal/repository/customer"
	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	paymentRepo "dispatch/internal/repository/payment"
	pushtargetRepo "dispatch/internal/repository/pushtarget"
	serviceareaRepo "dispatch/internal/repository/servicearea"
	settingsRepo "dispatch/internal/repository/settings"
	"dispatch/internal/service/accounting"
	customerService "dispatch/internal/service/customer"
	"dispatch/internal/service/dispatch"
	driverService "dispatch/internal/service/driver"
	"dispatch/internal/service/ledger"
	"dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	"dispatch/internal/service/servicearea"
	settingsService "dispatch/internal/service/settings"
	"dispatch/internal/service/suspension"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"firebase.google.com/go/v4/messaging"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// coreSet общая часть графа: хранилища, кэш, шлюзы и доменные сервисы.
var coreSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideCache,

	provideDriverRepository,
	provideOrderRepository,
	providePaymentRepository,
	providePushTargetRepository,
	provideSettingsRepository,
	provideServiceAreaRepository,

	providePushGateway,
	provideOrderEventsPublisher,
	vehicle_catalog.New,

	provideNotificationDispatcher,
	provideServiceAreaResolver,
	provideLedger,
	provideSuspensionMachine,
	provideSettingsService,
	provideAccounting,
	provideCoordinator,
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCache(client *goredis.Client, cfg *config.Config) *cache.Cache {
	return cache.New(client, cfg.Redis.CacheTTL)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func providePushTargetRepository(querier *querier.Querier) *pushtargetRepo.Repository {
	return pushtargetRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideServiceAreaRepository(querier *querier.Querier) *serviceareaRepo.Repository {
	return serviceareaRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func providePushGateway(client *messaging.Client) *fcm.PushGateway {
	return fcm.New(client)
}

func provideOrderEventsPublisher(producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(producer, cfg.Kafka.Topic)
}

func provideNotificationDispatcher(
	gateway *fcm.PushGateway,
	tokens *pushtargetRepo.Repository,
	log logger.Logger,
) *notification.Dispatcher {
	return notification.New(gateway, tokens, log)
}

func provideServiceAreaResolver(
	repository *serviceareaRepo.Repository,
	cache *cache.Cache,
	log logger.Logger,
) *servicearea.Resolver {
	return servicearea.New(repository, cache, log)
}

func provideLedger(repository *paymentRepo.Repository) *ledger.Ledger {
	return ledger.New(repository)
}

func provideSuspensionMachine(
	repository *driverRepo.Repository,
	balances *ledger.Ledger,
	log logger.Logger,
) *suspension.Machine {
	return suspension.New(repository, balances, log, 0)
}

func provideSettingsService(
	repository *settingsRepo.Repository,
	cache *cache.Cache,
	sweeper *suspension.Machine,
	txManager *tx.Manager,
	log logger.Logger,
) *settingsService.Service {
	return settingsService.New(repository, cache, sweeper, txManager, log)
}

func provideAccounting(
	balances *ledger.Ledger,
	evaluator *suspension.Machine,
	settings *settingsService.Service,
	log logger.Logger,
) *accounting.Service {
	return accounting.New(balances, evaluator, settings, log)
}

func provideCoordinator(
	orders *orderRepo.Repository,
	drivers *driverRepo.Repository,
	areas *servicearea.Resolver,
	settings *settingsService.Service,
	notifier *notification.Dispatcher,
	evaluator *suspension.Machine,
	publisher *order_events.Publisher,
	catalog *vehicle_catalog.Catalog,
	log logger.Logger,
	cfg *config.Config,
) *dispatch.Coordinator {
	return dispatch.New(
		orders,
		drivers,
		areas,
		settings,
		notifier,
		evaluator,
		publisher,
		catalog,
		log,
		dispatch.Config{
			FanoutLimit:     cfg.Dispatch.FanoutLimit,
			NotifyTimeout:   cfg.Dispatch.NotifyTimeout,
			ListLimit:       cfg.Dispatch.ListLimit,
			MaxExpansions:   cfg.Dispatch.MaxExpansions,
			ExpansionStepKm: cfg.Dispatch.ExpansionStepKm,
			ExpansionWait:   cfg.Dispatch.ExpansionWait,
		},
	)
}

func provideServiceDriver(repository *driverRepo.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceCustomer(repository *customerRepo.Repository) *customerService.Customer {
	return customerService.New(repository)
}

func provideValidator() (*validator.Validator, error) {
	return validator.New()
}

func provideEventHandlerFactory(
	dispatcher *dispatch.Coordinator,
	notifier *notification.Dispatcher,
	evaluator *suspension.Machine,
	settings *settingsService.Service,
) *order_handle.EventHandlerFactory {
	return order_handle.NewEventHandlerFactory(dispatcher, notifier, evaluator, settings)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	orders *orderRepo.Repository,
	factory *order_handle.EventHandlerFactory,
) *orderService.Service {
	return orderService.New(orders, factory)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.SuspensionSweepInterval)
}

func provideSuspensionSweepTask(
	log logger.Logger,
	service suspension_sweep.Service,
	interval SweepInterval,
) *suspension_sweep.SuspensionSweep {
	return suspension_sweep.NewSuspensionSweep(log, service, time.Duration(interval))
}

func provideTaskList(
	suspensionSweepTask *suspension_sweep.SuspensionSweep,
) []background.Task {
	return []background.Task{
		suspensionSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
