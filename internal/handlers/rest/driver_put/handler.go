package driver_put

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/driver"
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
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.DriverUpdate
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	driverModify := entities.DriverModify{
		ID:                &id,
		Name:              req.Name,
		Phone:             req.Phone,
		IsAvailable:       req.IsAvailable,
		Location:          req.Location.ToEntity(),
		NotificationToken: req.NotificationToken,
	}
	if req.VehicleType != nil {
		vehicleType := entities.VehicleType(*req.VehicleType)
		driverModify.VehicleType = &vehicleType
	}

	updated, err := h.service.UpdateDriver(r.Context(), driverModify)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidVehicleType),
			errors.Is(err, driver.ErrInvalidLocation):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, driver.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, driver.ErrConflict):
			httpx.WriteError(w, h.log, http.StatusConflict, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.DriverFromEntity(*updated))
}
