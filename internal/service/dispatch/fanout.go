package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	"dispatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// DispatchNewOrder рассылает новый заказ подходящим водителям. Для external
// заказов без кандидатов радиус расширяется раундами, пока заказ ждет водителя.
func (c *Coordinator) DispatchNewOrder(ctx context.Context, orderID int64) (*entities.DispatchResult, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status != entities.OrderPending {
		c.log.Info("order is no longer pending, dispatch skipped",
			logger.NewField("order_id", orderID),
			logger.NewField("status", order.Status.String()),
		)
		return &entities.DispatchResult{}, nil
	}

	ref, ok := order.CustomerReferencePoint()
	if !ok {
		c.log.Warn("order has no customer reference point, dispatch skipped", logger.NewField("order_id", orderID))
		return &entities.DispatchResult{}, nil
	}

	mc, err := c.loadMatchingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dispatch settings: %w", err)
	}

	radius := mc.radiusFor(ref)
	result := &entities.DispatchResult{Radius: radius}

	eligible, skipped, err := c.findEligible(ctx, *order, ref, radius)
	if err != nil {
		return nil, err
	}

	for len(eligible) == 0 &&
		order.DeliveryType == entities.DeliveryExternal &&
		result.Expansions < c.config.MaxExpansions {
		next, ok := expandExternal(radius, c.config.ExpansionStepKm)
		if !ok {
			break
		}

		// раунд должен успеть до дедлайна вместе с рассылкой no-drivers
		if !fitsDeadline(ctx, c.config.ExpansionWait+c.config.NotifyTimeout) {
			c.log.Warn("radius expansion stopped, processing deadline is too close",
				logger.NewField("order_id", orderID),
				logger.NewField("expansions", result.Expansions),
			)
			break
		}

		if err := wait(ctx, c.config.ExpansionWait); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				c.log.Warn("radius expansion hit processing deadline",
					logger.NewField("order_id", orderID),
					logger.NewField("expansions", result.Expansions),
				)
				return result, nil
			}
			return result, fmt.Errorf("radius expansion interrupted: %w", err)
		}

		current, err := c.orders.GetByID(ctx, orderID)
		if err != nil {
			return result, fmt.Errorf("recheck order: %w", err)
		}
		if current.Status != entities.OrderPending {
			c.log.Info("order taken during radius expansion",
				logger.NewField("order_id", orderID),
				logger.NewField("expansions", result.Expansions),
			)
			return result, nil
		}

		radius = next
		result.Radius = radius
		result.Expansions++
		expansionsTotal.Inc()

		eligible, skipped, err = c.findEligible(ctx, *order, ref, radius)
		if err != nil {
			return result, err
		}
	}

	result.Skipped = skipped
	fanoutTotal.WithLabelValues(resultSkipped).Add(float64(skipped))

	if len(eligible) == 0 {
		noDriversTotal.WithLabelValues(order.DeliveryType.String()).Inc()
		if err := c.notifier.NotifyNoDrivers(ctx, *order); err != nil {
			c.log.Warn("failed to notify customer about missing drivers",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		}
		return result, nil
	}

	result.Notified, result.Failed = c.fanout(ctx, *order, eligible)

	c.log.Info("order dispatched",
		logger.NewField("order_id", orderID),
		logger.NewField("notified", result.Notified),
		logger.NewField("skipped", result.Skipped),
		logger.NewField("failed", result.Failed),
		logger.NewField("expansions", result.Expansions),
	)
	return result, nil
}

func (c *Coordinator) findEligible(
	ctx context.Context,
	order entities.Order,
	ref entities.GeoPoint,
	radius entities.RadiusConfig,
) ([]geo.Ranked[entities.Driver], int, error) {
	candidates, err := c.drivers.ListDispatchCandidates(ctx, order.VehicleType)
	if err != nil {
		return nil, 0, fmt.Errorf("list dispatch candidates: %w", err)
	}

	eligible, skipped := eligibleDrivers(candidates, ref, order.DeliveryType, radius)
	return eligible, skipped, nil
}

// fanout каждая отправка независима и ограничена NotifyTimeout, одновременно
// выполняется не больше FanoutLimit отправок.
func (c *Coordinator) fanout(ctx context.Context, order entities.Order, eligible []geo.Ranked[entities.Driver]) (int, int) {
	var (
		notified atomic.Int64
		failed   atomic.Int64
		g        errgroup.Group
	)
	g.SetLimit(c.config.FanoutLimit)

	for _, candidate := range eligible {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, c.config.NotifyTimeout)
			defer cancel()

			if err := c.notifier.NotifyNewOrder(sendCtx, candidate.Item, order, candidate.DistanceKm); err != nil {
				failed.Add(1)
				c.log.Warn("failed to notify driver about new order",
					logger.NewField("order_id", order.ID),
					logger.NewField("driver_id", candidate.Item.ID),
					logger.NewField("error", err),
				)
				return nil
			}

			notified.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	fanoutTotal.WithLabelValues(resultNotified).Add(float64(notified.Load()))
	fanoutTotal.WithLabelValues(resultFailed).Add(float64(failed.Load()))

	return int(notified.Load()), int(failed.Load())
}

// expandExternal следующее кольцо: новый min = старый max, max растет на step.
func expandExternal(radius entities.RadiusConfig, stepKm float64) (entities.RadiusConfig, bool) {
	if radius.ExternalMaxRadiusKm >= entities.MaxRadiusKm {
		return radius, false
	}

	next := radius
	next.ExternalMinRadiusKm = radius.ExternalMaxRadiusKm
	next.ExternalMaxRadiusKm = min(radius.ExternalMaxRadiusKm+stepKm, entities.MaxRadiusKm)
	return next, true
}

// fitsDeadline true, если до дедлайна контекста остается не меньше d.
func fitsDeadline(ctx context.Context, d time.Duration) bool {
	deadline, ok := ctx.Deadline()
	if !ok {
		return true
	}
	return time.Until(deadline) >= d
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
