package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/servicearea"
	"dispatch/pkg/logger"
)

// Config нулевые значения заменяются значениями по умолчанию. ListLimit <= 0
// отдает все подходящие заказы, отрицательный MaxExpansions отключает
// расширение радиуса.
type Config struct {
	FanoutLimit     int
	NotifyTimeout   time.Duration
	ListLimit       int
	MaxExpansions   int
	ExpansionStepKm float64
	ExpansionWait   time.Duration
}

func DefaultConfig() Config {
	return Config{
		FanoutLimit:     16,
		NotifyTimeout:   5 * time.Second,
		ListLimit:       0,
		MaxExpansions:   3,
		ExpansionStepKm: 5,
		ExpansionWait:   12 * time.Second,
	}
}

type Coordinator struct {
	orders    OrderRepository
	drivers   DriverRepository
	areas     AreaResolver
	settings  SettingsProvider
	notifier  Notifier
	evaluator BalanceEvaluator
	publisher EventPublisher
	catalog   VehicleCatalog
	log       serviceLogger
	config    Config
}

func New(
	orders OrderRepository,
	drivers DriverRepository,
	areas AreaResolver,
	settings SettingsProvider,
	notifier Notifier,
	evaluator BalanceEvaluator,
	publisher EventPublisher,
	catalog VehicleCatalog,
	log serviceLogger,
	config Config,
) *Coordinator {
	defaults := DefaultConfig()
	if config.FanoutLimit <= 0 {
		config.FanoutLimit = defaults.FanoutLimit
	}
	if config.NotifyTimeout <= 0 {
		config.NotifyTimeout = defaults.NotifyTimeout
	}
	if config.ListLimit < 0 {
		config.ListLimit = 0
	}
	if config.ExpansionStepKm <= 0 {
		config.ExpansionStepKm = defaults.ExpansionStepKm
	}
	switch {
	case config.MaxExpansions == 0:
		config.MaxExpansions = defaults.MaxExpansions
	case config.MaxExpansions < 0:
		config.MaxExpansions = 0
	}
	if config.ExpansionWait <= 0 {
		config.ExpansionWait = defaults.ExpansionWait
	}

	return &Coordinator{
		orders:    orders,
		drivers:   drivers,
		areas:     areas,
		settings:  settings,
		notifier:  notifier,
		evaluator: evaluator,
		publisher: publisher,
		catalog:   catalog,
		log:       log,
		config:    config,
	}
}

// matchingContext настройки и зоны читаются один раз на операцию.
type matchingContext struct {
	settings entities.DispatchSettings
	areas    servicearea.Areas
}

func (c *Coordinator) loadMatchingContext(ctx context.Context) (matchingContext, error) {
	settings, err := c.settings.Get(ctx)
	if err != nil {
		return matchingContext{}, err
	}

	areas, err := c.areas.Load(ctx)
	if err != nil {
		// без зон работаем по глобальному радиусу
		c.log.Warn("service areas unavailable, using global radius", logger.NewField("error", err))
		areas = nil
	}

	return matchingContext{settings: *settings, areas: areas}, nil
}

func (m matchingContext) radiusFor(point entities.GeoPoint) entities.RadiusConfig {
	return m.areas.Resolve(point, m.settings.Radius)
}

func (c *Coordinator) publish(ctx context.Context, eventType entities.OrderEventType, order entities.Order) {
	event := entities.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		DriverID:   order.DriverID,
		Status:     order.Status,
		OccurredAt: time.Now().UTC(),
	}

	if err := c.publisher.Publish(ctx, event); err != nil {
		c.log.Error("failed to publish order event",
			logger.NewField("order_id", order.ID),
			logger.NewField("event_type", eventType.String()),
			logger.NewField("error", err),
		)
	}
}
