package order_post

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/dispatch"
)

type Handler struct {
	log       handlerLogger
	validator requestValidator
	service   Service
}

func New(log handlerLogger, validator requestValidator, service Service) *Handler {
	return &Handler{
		log:       log,
		validator: validator,
		service:   service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderCreate
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	direction := entities.OrderDirection(req.Direction)
	vehicleType := entities.VehicleType(req.VehicleType)
	deliveryType := entities.DeliveryType(req.DeliveryType)
	orderModify := entities.OrderModify{
		CustomerID:   &req.CustomerID,
		Direction:    &direction,
		VehicleType:  &vehicleType,
		DeliveryType: &deliveryType,
		Pickup:       req.Pickup.ToEntity(),
		Dropoff:      req.Dropoff.ToEntity(),
		Price:        req.Price,
	}

	order, err := h.service.CreateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrMissingRequiredFields),
			errors.Is(err, dispatch.ErrInvalidCustomerID),
			errors.Is(err, dispatch.ErrInvalidLocation),
			errors.Is(err, dispatch.ErrInvalidDirection),
			errors.Is(err, dispatch.ErrInvalidDeliveryType),
			errors.Is(err, dispatch.ErrInvalidVehicleType),
			errors.Is(err, dispatch.ErrInvalidPrice),
			errors.Is(err, dispatch.ErrMissingReferencePoint):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, dispatch.ErrVehicleTypeDisabled):
			httpx.WriteError(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusCreated, dto.OrderFromEntity(*order))
}
