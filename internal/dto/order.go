package dto

import "time"

type OrderCreate struct {
	CustomerID   int64     `json:"customer_id" validate:"required,gt=0"`
	Direction    string    `json:"direction" validate:"required,oneof=send receive"`
	VehicleType  string    `json:"vehicle_type" validate:"required,vehicle_type"`
	DeliveryType string    `json:"delivery_type" validate:"required,oneof=internal external"`
	Pickup       *Location `json:"pickup" validate:"omitempty"`
	Dropoff      *Location `json:"dropoff" validate:"omitempty"`
	Price        *float64  `json:"price" validate:"omitempty,gte=0"`
}

type OrderAccept struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

type OrderStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending accepted on_the_way delivered cancelled"`
}

type Order struct {
	ID           int64      `json:"id"`
	CustomerID   int64      `json:"customer_id"`
	DriverID     *int64     `json:"driver_id,omitempty"`
	Direction    string     `json:"direction"`
	VehicleType  string     `json:"vehicle_type"`
	DeliveryType string     `json:"delivery_type"`
	Status       string     `json:"status"`
	Pickup       *Location  `json:"pickup,omitempty"`
	Dropoff      *Location  `json:"dropoff,omitempty"`
	Price        float64    `json:"price"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
}

type AvailableOrder struct {
	Order
	DistanceKm float64 `json:"distance_km"`
}
