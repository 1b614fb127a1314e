package order_events

import (
	"time"

	"dispatch/internal/entities"
)

type orderEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	DriverID   *int64    `json:"driver_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e orderEvent) toDomain() entities.OrderEvent {
	return entities.OrderEvent{
		ID:         e.EventID,
		Type:       entities.OrderEventType(e.Type),
		OrderID:    e.OrderID,
		CustomerID: e.CustomerID,
		DriverID:   e.DriverID,
		Status:     entities.OrderStatusType(e.Status),
		OccurredAt: e.OccurredAt,
	}
}
