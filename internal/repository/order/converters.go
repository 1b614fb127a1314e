package order

import (
	"dispatch/internal/entities"
)

func toPoint(lat, lng *float64) *entities.GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.GeoPoint{Lat: *lat, Lng: *lng}
}

func fromPoint(p *entities.GeoPoint) (lat, lng *float64) {
	if p == nil {
		return nil, nil
	}
	la, ln := p.Lat, p.Lng
	return &la, &ln
}

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		DriverID:     o.DriverID,
		Direction:    entities.OrderDirection(o.Direction),
		VehicleType:  entities.VehicleType(o.VehicleType),
		DeliveryType: entities.DeliveryType(o.DeliveryType),
		Status:       entities.OrderStatusType(o.Status),
		Pickup:       toPoint(o.PickupLat, o.PickupLng),
		Dropoff:      toPoint(o.DropoffLat, o.DropoffLng),
		Price:        o.Price,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		AcceptedAt:   o.AcceptedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
