package driver_balance_get

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/accounting"
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
	driverID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	snapshot, err := h.service.Balance(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, accounting.ErrInvalidDriverID):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, accounting.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.BalanceFromEntity(*snapshot))
}
