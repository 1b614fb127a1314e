package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	orders       OrderRepository
	eventFactory HandlerFactory
}

func New(orders OrderRepository, eventFactory HandlerFactory) *Service {
	return &Service{
		orders:       orders,
		eventFactory: eventFactory,
	}
}

// ProcessOrderEvent обрабатывает событие жизненного цикла по актуальному
// состоянию заказа из базы.
func (s *Service) ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) (*entities.Order, error) {
	if event.OrderID <= 0 || event.Type == "" {
		return nil, ErrInvalidEvent
	}

	order, err := s.orders.GetByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, event.OrderID)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	// устаревшее событие, о текущем статусе придет свое
	if event.Type == entities.OrderEventStatusChanged && order.Status != event.Status {
		return order, fmt.Errorf("%w: event %s, current %s", ErrStatusMismatch, event.Status, order.Status)
	}

	executeFn, err := s.eventFactory.GetHandler(event.Type)
	if err != nil {
		// неизвестные типы событий пропускаем
		if errors.Is(err, ErrUndefinedEvent) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, *order); err != nil {
		return nil, err
	}

	return order, nil
}
