package driver_get

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/driver"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	driverEntity, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, driver.ErrInvalidDriverID):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.DriverFromEntity(*driverEntity))
}
