package entities

import "time"

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderOnTheWay  OrderStatusType = "on_the_way"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderOnTheWay, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo pending -> accepted только через захват заказа водителем.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderCancelled
	case OrderAccepted:
		return next == OrderOnTheWay || next == OrderCancelled
	case OrderOnTheWay:
		return next == OrderDelivered || next == OrderCancelled
	default:
		return false
	}
}

type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleCar   VehicleType = "car"
	VehicleCargo VehicleType = "cargo"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleBike, VehicleCar, VehicleCargo:
		return true
	default:
		return false
	}
}

type DeliveryType string

const (
	DeliveryInternal DeliveryType = "internal"
	DeliveryExternal DeliveryType = "external"
)

func (d DeliveryType) String() string {
	return string(d)
}

func (d DeliveryType) IsValid() bool {
	return d == DeliveryInternal || d == DeliveryExternal
}

// OrderDirection send - клиент отправляет (точка клиента = pickup),
// receive - клиент получает (точка клиента = dropoff).
type OrderDirection string

const (
	DirectionSend    OrderDirection = "send"
	DirectionReceive OrderDirection = "receive"
)

func (d OrderDirection) String() string {
	return string(d)
}

func (d OrderDirection) IsValid() bool {
	return d == DirectionSend || d == DirectionReceive
}

type Order struct {
	ID           int64
	CustomerID   int64
	DriverID     *int64
	Direction    OrderDirection
	VehicleType  VehicleType
	DeliveryType DeliveryType
	Status       OrderStatusType
	Pickup       *GeoPoint
	Dropoff      *GeoPoint
	Price        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AcceptedAt   *time.Time
}

// CustomerReferencePoint точка, от которой считается расстояние до водителя.
func (o Order) CustomerReferencePoint() (GeoPoint, bool) {
	var point *GeoPoint
	switch o.Direction {
	case DirectionSend:
		point = o.Pickup
	case DirectionReceive:
		point = o.Dropoff
	}
	if point == nil || !point.IsValid() {
		return GeoPoint{}, false
	}
	return *point, true
}

func (o Order) IsClaimable() bool {
	return o.Status == OrderPending && o.DriverID == nil
}

type OrderModify struct {
	ID           *int64
	CustomerID   *int64
	DriverID     *int64
	Direction    *OrderDirection
	VehicleType  *VehicleType
	DeliveryType *DeliveryType
	Status       *OrderStatusType
	Pickup       *GeoPoint
	Dropoff      *GeoPoint
	Price        *float64
}

type AvailableOrder struct {
	Order      Order
	DistanceKm float64
}

type VehicleTypeInfo struct {
	Type      VehicleType
	Enabled   bool
	BasePrice float64
}
