package dispatch

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// CreateOrder сохраняет заказ и публикует order.created. Рассылка водителям идет
// асинхронно через воркер, создание заказа от нее не зависит.
func (c *Coordinator) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if err := validateNewOrder(orderModify); err != nil {
		return nil, err
	}

	info, ok := c.catalog.Lookup(*orderModify.VehicleType)
	if !ok {
		return nil, ErrInvalidVehicleType
	}
	if !info.Enabled {
		return nil, fmt.Errorf("%s: %w", info.Type, ErrVehicleTypeDisabled)
	}

	if orderModify.Price == nil {
		price := info.BasePrice
		orderModify.Price = &price
	}

	pending := entities.OrderPending
	orderModify.Status = &pending
	orderModify.DriverID = nil

	order, err := c.orders.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	c.publish(ctx, entities.OrderEventCreated, *order)
	return order, nil
}

func (c *Coordinator) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// AcceptOrder единственная точка сериализации: условный UPDATE pending -> accepted.
func (c *Coordinator) AcceptOrder(ctx context.Context, driverID, orderID int64) (*entities.Order, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	driver, err := c.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if driver.VehicleType != order.VehicleType {
		return nil, ErrVehicleMismatch
	}
	if !driver.IsActive {
		return nil, ErrDriverSuspended
	}
	if order.Status != entities.OrderPending {
		return nil, ErrOrderNotPending
	}

	claimed, err := c.orders.Claim(ctx, orderID, driverID)
	if err != nil {
		if errors.Is(err, ErrOrderNotPending) {
			claimConflictsTotal.Inc()
		}
		return nil, fmt.Errorf("claim order: %w", err)
	}

	c.log.Info("order accepted",
		logger.NewField("order_id", orderID),
		logger.NewField("driver_id", driverID),
	)
	c.publish(ctx, entities.OrderEventAccepted, *claimed)
	return claimed, nil
}

// UpdateOrderStatus переводит заказ по жизненному циклу. После delivered баланс
// водителя пересчитывается сразу; ошибка пересчета только логируется.
func (c *Coordinator) UpdateOrderStatus(
	ctx context.Context,
	orderID int64,
	next entities.OrderStatusType,
) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	current, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, next, ErrInvalidTransition)
	}

	updated, err := c.orders.TransitionStatus(ctx, orderID, current.Status, next)
	if err != nil {
		return nil, fmt.Errorf("transition order status: %w", err)
	}

	if updated.Status == entities.OrderDelivered && updated.DriverID != nil {
		c.evaluateDriver(ctx, *updated.DriverID)
	}

	c.publish(ctx, entities.OrderEventStatusChanged, *updated)
	return updated, nil
}

func (c *Coordinator) evaluateDriver(ctx context.Context, driverID int64) {
	settings, err := c.settings.Get(ctx)
	if err != nil {
		c.log.Error("failed to load settings for balance evaluation",
			logger.NewField("driver_id", driverID),
			logger.NewField("error", err),
		)
		return
	}

	if _, err := c.evaluator.Evaluate(ctx, driverID, *settings); err != nil {
		c.log.Error("balance evaluation after delivery failed",
			logger.NewField("driver_id", driverID),
			logger.NewField("error", err),
		)
	}
}
