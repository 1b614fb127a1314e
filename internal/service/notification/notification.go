package notification

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Dispatcher доставляет push по принципу best-effort. Вызывающая сторона решает,
// что делать с ошибкой; в потоке заказа ошибки только логируются.
type Dispatcher struct {
	gateway Gateway
	tokens  TokenStore
	log     serviceLogger
}

func New(gateway Gateway, tokens TokenStore, log serviceLogger) *Dispatcher {
	return &Dispatcher{
		gateway: gateway,
		tokens:  tokens,
		log:     log,
	}
}

func (d *Dispatcher) Send(ctx context.Context, target entities.PushTarget, message entities.PushMessage) error {
	token, err := d.tokens.GetToken(ctx, target)
	if err != nil {
		return fmt.Errorf("get push token for %s: %w", target, err)
	}
	if token == nil {
		return fmt.Errorf("%s: %w", target, ErrNoPushTarget)
	}

	return d.SendToToken(ctx, target, *token, message)
}

// SendToToken для случаев, когда токен уже прочитан вместе с получателем.
func (d *Dispatcher) SendToToken(
	ctx context.Context,
	target entities.PushTarget,
	token string,
	message entities.PushMessage,
) error {
	if token == "" {
		return fmt.Errorf("%s: %w", target, ErrNoPushTarget)
	}

	err := d.gateway.Send(ctx, token, message)
	if err == nil {
		d.log.Debug("push sent",
			logger.NewField("target", target.String()),
			logger.NewField("title", message.Title),
		)
		return nil
	}

	if errors.Is(err, ErrInvalidToken) {
		if clearErr := d.tokens.ClearToken(ctx, target, token); clearErr != nil {
			d.log.Warn("failed to deregister invalid push token",
				logger.NewField("target", target.String()),
				logger.NewField("error", clearErr),
			)
		}
	}
	return fmt.Errorf("send push to %s: %w", target, err)
}

func (d *Dispatcher) NotifyOrderStatus(ctx context.Context, order entities.Order) error {
	return d.Send(ctx, customerTarget(order), StatusMessage(order))
}

func (d *Dispatcher) NotifyNoDrivers(ctx context.Context, order entities.Order) error {
	return d.Send(ctx, customerTarget(order), NoDriversMessage(order))
}

func (d *Dispatcher) NotifyNewOrder(
	ctx context.Context,
	driver entities.Driver,
	order entities.Order,
	distanceKm float64,
) error {
	target := entities.PushTarget{Kind: entities.PushTargetDriver, ID: driver.ID}
	if driver.NotificationToken == nil {
		return fmt.Errorf("%s: %w", target, ErrNoPushTarget)
	}
	return d.SendToToken(ctx, target, *driver.NotificationToken, NewOrderMessage(order, distanceKm))
}

func customerTarget(order entities.Order) entities.PushTarget {
	return entities.PushTarget{Kind: entities.PushTargetCustomer, ID: order.CustomerID}
}
