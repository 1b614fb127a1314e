package driver_suspension_post

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/suspension"
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
	driverID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.SuspensionOverride
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	driver, err := h.service.Override(r.Context(), driverID, *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, suspension.ErrInvalidDriverID):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, suspension.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, suspension.ErrConcurrentUpdate):
			httpx.WriteError(w, h.log, http.StatusConflict, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.DriverFromEntity(*driver))
}
