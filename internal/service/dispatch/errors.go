package dispatch

import (
	"errors"

	"dispatch/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidDirection      = errors.New("invalid order direction")
	ErrInvalidDeliveryType   = errors.New("invalid delivery type")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrVehicleTypeDisabled   = errors.New("vehicle type is disabled")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrMissingReferencePoint = errors.New("order has no customer reference point")

	// предусловия выдачи заказов водителю
	ErrDriverLocationNotSet = errors.New("driver location is not set")
	ErrDriverUnavailable    = errors.New("driver is not available")
	ErrDriverSuspended      = errors.New("driver is suspended")

	ErrVehicleMismatch   = errors.New("driver vehicle type does not match order")
	ErrOrderNotPending   = errors.New("order is no longer pending")
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrStatusConflict    = errors.New("order status changed concurrently")

	ErrDriverNotFound = entities.ErrDriverNotFound
	ErrOrderNotFound  = entities.ErrOrderNotFound
)
