package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventAccepted      OrderEventType = "order.accepted"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

func (t OrderEventType) String() string {
	return string(t)
}

type OrderEvent struct {
	ID         string
	Type       OrderEventType
	OrderID    int64
	CustomerID int64
	DriverID   *int64
	Status     OrderStatusType
	OccurredAt time.Time
}
