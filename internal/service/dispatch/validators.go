package dispatch

import (
	"math"

	"dispatch/internal/entities"
)

func validateNewOrder(m entities.OrderModify) error {
	if m.CustomerID == nil ||
		m.Direction == nil ||
		m.VehicleType == nil ||
		m.DeliveryType == nil {
		return ErrMissingRequiredFields
	}

	if *m.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	if !m.Direction.IsValid() {
		return ErrInvalidDirection
	}
	if !m.DeliveryType.IsValid() {
		return ErrInvalidDeliveryType
	}
	if !m.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	if m.Pickup != nil && !m.Pickup.IsValid() {
		return ErrInvalidLocation
	}
	if m.Dropoff != nil && !m.Dropoff.IsValid() {
		return ErrInvalidLocation
	}

	switch *m.Direction {
	case entities.DirectionSend:
		if m.Pickup == nil {
			return ErrMissingReferencePoint
		}
	case entities.DirectionReceive:
		if m.Dropoff == nil {
			return ErrMissingReferencePoint
		}
	}

	if m.Price != nil && (*m.Price < 0 || math.IsNaN(*m.Price) || math.IsInf(*m.Price, 0)) {
		return ErrInvalidPrice
	}
	return nil
}

// checkListingPreconditions водитель должен быть на линии, активен и с координатами.
func checkListingPreconditions(driver entities.Driver) error {
	if !driver.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	if !driver.HasValidLocation() {
		return ErrDriverLocationNotSet
	}
	if !driver.IsAvailable {
		return ErrDriverUnavailable
	}
	if !driver.IsActive {
		return ErrDriverSuspended
	}
	return nil
}
