package order_accept_post

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
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
	orderID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.OrderAccept
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	order, err := h.service.AcceptOrder(r.Context(), req.DriverID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDriverID),
			errors.Is(err, dispatch.ErrInvalidOrderID):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, dispatch.ErrVehicleMismatch):
			httpx.WriteError(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, dispatch.ErrDriverSuspended),
			errors.Is(err, dispatch.ErrOrderNotPending):
			httpx.WriteError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, dispatch.ErrDriverNotFound),
			errors.Is(err, dispatch.ErrOrderNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.OrderFromEntity(*order))
}
