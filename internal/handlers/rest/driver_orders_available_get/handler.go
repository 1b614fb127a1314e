package driver_orders_available_get

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/dispatch"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP отдает заказы от ближайшего к дальнему. Пустой список означает,
// что подходящих заказов сейчас нет.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	orders, err := h.service.ListAvailableOrders(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDriverID),
			errors.Is(err, dispatch.ErrDriverLocationNotSet),
			errors.Is(err, dispatch.ErrDriverUnavailable),
			errors.Is(err, dispatch.ErrDriverSuspended),
			errors.Is(err, dispatch.ErrInvalidVehicleType):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, dispatch.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.AvailableOrdersFromEntity(orders))
}
