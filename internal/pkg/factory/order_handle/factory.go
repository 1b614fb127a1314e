package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/notification"
	"dispatch/internal/service/order"
)

type EventHandlerFactory struct {
	dispatcher order.Dispatcher
	notifier   order.StatusNotifier
	evaluator  order.DriverEvaluator
	settings   order.SettingsProvider
}

func NewEventHandlerFactory(
	dispatcher order.Dispatcher,
	notifier order.StatusNotifier,
	evaluator order.DriverEvaluator,
	settings order.SettingsProvider,
) *EventHandlerFactory {
	return &EventHandlerFactory{
		dispatcher: dispatcher,
		notifier:   notifier,
		evaluator:  evaluator,
		settings:   settings,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.OrderEventType) (order.ExecuteFn, error) {
	switch eventType {
	case entities.OrderEventCreated:
		return f.createdHandler, nil
	case entities.OrderEventAccepted:
		return f.acceptedHandler, nil
	case entities.OrderEventStatusChanged:
		return f.statusChangedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedEvent, eventType)
	}
}

func (f *EventHandlerFactory) createdHandler(ctx context.Context, o entities.Order) error {
	if _, err := f.dispatcher.DispatchNewOrder(ctx, o.ID); err != nil {
		return fmt.Errorf("dispatch created order %d: %w", o.ID, err)
	}
	return nil
}

func (f *EventHandlerFactory) acceptedHandler(ctx context.Context, o entities.Order) error {
	return f.notifyCustomer(ctx, o)
}

func (f *EventHandlerFactory) statusChangedHandler(ctx context.Context, o entities.Order) error {
	notifyErr := f.notifyCustomer(ctx, o)

	if o.Status != entities.OrderDelivered || o.DriverID == nil {
		return notifyErr
	}

	// повторная проверка идемпотентна, координатор уже делал ее синхронно
	return errors.Join(notifyErr, f.evaluateDriver(ctx, *o.DriverID))
}

func (f *EventHandlerFactory) notifyCustomer(ctx context.Context, o entities.Order) error {
	err := f.notifier.NotifyOrderStatus(ctx, o)
	if err == nil || errors.Is(err, notification.ErrNoPushTarget) {
		return nil
	}
	return fmt.Errorf("notify customer about order %d: %w", o.ID, err)
}

func (f *EventHandlerFactory) evaluateDriver(ctx context.Context, driverID int64) error {
	settings, err := f.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("get dispatch settings: %w", err)
	}

	if _, err := f.evaluator.Evaluate(ctx, driverID, *settings); err != nil {
		return fmt.Errorf("evaluate driver %d: %w", driverID, err)
	}
	return nil
}
