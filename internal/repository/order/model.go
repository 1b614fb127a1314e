package order

import "time"

type OrderDB struct {
	ID           int64
	CustomerID   int64
	DriverID     *int64
	Direction    string
	VehicleType  string
	DeliveryType string
	Status       string
	PickupLat    *float64
	PickupLng    *float64
	DropoffLat   *float64
	DropoffLng   *float64
	Price        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AcceptedAt   *time.Time
}
